package api

import "github.com/avickers/phonescout/internal/domain"

// ChatRequest is the wire payload of POST /chat.
type ChatRequest struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply, with zero or more
// recommended products.
type ChatResponse struct {
	Response        string             `json:"response"`
	Recommendations []domain.CellPhone `json:"recommendations,omitempty"`
}

// UserCreate is the wire payload of POST /users. All fields are
// optional; the service assigns the ID.
type UserCreate struct {
	Name        string `json:"name,omitempty"`
	Language    string `json:"language,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

// CellPhoneCreate is the wire payload of POST /cellphones.
type CellPhoneCreate struct {
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Storage     string  `json:"storage,omitempty"`
	BatteryLife string  `json:"battery_life,omitempty"`
}

// ContactSubmission is the wire payload of POST /contact-info: the
// captured contact record plus the selected phone and session user.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CellphoneID int    `json:"cellphone_id"`
	UserID      int    `json:"user_id"`
}

// ContactAck is the contact service's acknowledgement.
type ContactAck struct {
	Message     string            `json:"message"`
	ContactInfo ContactSubmission `json:"contact_info"`
}
