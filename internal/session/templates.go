package session

import (
	"fmt"

	"github.com/avickers/phonescout/internal/domain"
)

// FallbackText replaces the assistant's reply when the chat
// collaborator fails.
const FallbackText = "Sorry, I encountered an error. Please try again."

// ContactFailureText is appended when a contact submission fails.
const ContactFailureText = "Sorry, there was an error submitting your contact information. Please try again."

// ContactSummary renders the synthetic user turn describing a
// submitted contact record.
func ContactSummary(item domain.CellPhone, rec domain.ContactRecord) string {
	return fmt.Sprintf("I've submitted my contact information for the %s %s. My details: %s, %s, %s",
		item.Brand, item.Model, rec.Name, rec.Email, rec.Phone)
}

// ContactConfirmation renders the synthetic assistant turn confirming
// receipt of a contact record and the follow-up steps.
func ContactConfirmation(item domain.CellPhone, rec domain.ContactRecord) string {
	return fmt.Sprintf("Perfect! Thank you %s for your interest in the %s %s. "+
		"We've received your contact information and will call you at %s within 24 hours "+
		"to confirm your purchase and arrange delivery or pickup. "+
		"You'll also receive a confirmation email at %s.",
		rec.Name, item.Brand, item.Model, rec.Phone, rec.Email)
}
