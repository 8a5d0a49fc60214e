package domain

// User is the registered visitor. The ID is assigned by the
// registration service and never changes for the life of the session.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Language    string `json:"language,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

// ContactRecord holds the contact details captured for a follow-up
// call. It exists only between form submission and the contact
// collaborator call.
type ContactRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
