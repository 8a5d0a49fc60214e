package domain

import "time"

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Mode is the session's top-level state.
type Mode string

const (
	ModeChatting         Mode = "chatting"
	ModeCapturingContact Mode = "capturingContact"
)

// Turn is a single message in a conversation, optionally carrying the
// recommendations the assistant attached to it. The ordered sequence of
// turns forms the transcript; turn IDs order lexically in causal order.
type Turn struct {
	ID              string      `json:"id"`
	Text            string      `json:"text"`
	Sender          Role        `json:"sender"`
	CreatedAt       time.Time   `json:"createdAt"`
	Recommendations []CellPhone `json:"recommendations,omitempty"`
}
