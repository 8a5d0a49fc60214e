// Package tui renders conversation state for the terminal and runs
// the interactive forms. Rendering is stateless: every function maps
// domain values to text and nothing here mutates session state.
package tui

import (
	"fmt"
	"strings"

	"github.com/avickers/phonescout/internal/domain"
)

// TypingIndicator is shown while an assistant request is in flight.
const TypingIndicator = "Assistant is typing..."

// RenderTurn formats one chat turn as a bubble line. A zero timestamp
// drops the time label.
func RenderTurn(t domain.Turn) string {
	marker := "assistant"
	if t.Sender == domain.RoleUser {
		marker = "you"
	}
	if t.CreatedAt.IsZero() {
		return fmt.Sprintf("[%s] %s", marker, t.Text)
	}
	return fmt.Sprintf("[%s %s] %s", marker, t.CreatedAt.Local().Format("15:04"), t.Text)
}

// RenderCard formats one recommended phone with its selection ordinal.
func RenderCard(p domain.CellPhone, ordinal int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  [%d] %s %s - $%.0f (%d", ordinal, p.Brand, p.Model, p.Price, p.Year)
	if p.Storage != "" {
		fmt.Fprintf(&b, ", %s", p.Storage)
	}
	if p.BatteryLife != "" {
		fmt.Fprintf(&b, ", %s battery", p.BatteryLife)
	}
	b.WriteString(")")
	return b.String()
}

// RenderRecommendations formats a recommendation list with selection
// hints.
func RenderRecommendations(phones []domain.CellPhone) string {
	var b strings.Builder
	b.WriteString("Recommended phones:\n")
	for i, p := range phones {
		b.WriteString(RenderCard(p, i+1))
		b.WriteString("\n")
	}
	b.WriteString("Pick one with /select N")
	return b.String()
}
