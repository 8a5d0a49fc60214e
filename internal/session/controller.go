// Package session implements the conversation session controller: the
// single owner of the transcript, the in-flight request flag, the
// selected recommendation, and the chatting/contact-capture mode
// toggle. Views never mutate session state; they call the operations
// here and render from change events and read-only snapshots.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avickers/phonescout/internal/api"
	"github.com/avickers/phonescout/internal/domain"
	"github.com/avickers/phonescout/internal/logging"
)

// Config configures a Controller.
type Config struct {
	// UserID is the registered user driving this session.
	UserID int

	// Notify, if set, receives a change event after every state
	// mutation. Called outside the controller's lock.
	Notify func(Event)
}

// Controller drives one conversation session. One instance exists per
// active session; state is mutated only through its operations.
type Controller struct {
	id        string
	userID    int
	assistant api.Assistant
	contacts  api.ContactSubmitter
	notify    func(Event)
	log       *logging.Logger

	mu         sync.Mutex
	mode       domain.Mode
	pending    bool
	selected   *domain.CellPhone
	transcript []domain.Turn
	lastStamp  int64
}

// New creates a session controller for the given user.
func New(cfg Config, assistant api.Assistant, contacts api.ContactSubmitter, log *logging.Logger) *Controller {
	c := &Controller{
		id:        uuid.New().String(),
		userID:    cfg.UserID,
		assistant: assistant,
		contacts:  contacts,
		notify:    cfg.Notify,
		log:       log.Sub("session"),
		mode:      domain.ModeChatting,
	}
	c.log.Debug().Str("sessionId", c.id).Int("userId", cfg.UserID).Msg("session started")
	return c
}

// ID returns the session's unique identifier.
func (c *Controller) ID() string { return c.id }

// Send submits a user message to the assistant. Empty or
// whitespace-only text, an in-flight request, or contact-capture mode
// all make this a no-op. The user's turn is appended before the
// assistant call resolves; any assistant failure is swallowed into a
// fixed fallback turn and never surfaced to the caller.
func (c *Controller) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.mode != domain.ModeChatting || c.pending {
		c.mu.Unlock()
		return
	}
	userTurn := c.appendLocked(domain.RoleUser, text, nil)
	c.pending = true
	c.mu.Unlock()
	c.emit(Event{Kind: EventTurnAppended, Turn: &userTurn})
	c.emit(Event{Kind: EventPendingChanged, Pending: true})

	// The in-flight flag clears exactly once the call settles,
	// success or failure.
	defer func() {
		c.mu.Lock()
		c.pending = false
		c.mu.Unlock()
		c.emit(Event{Kind: EventPendingChanged, Pending: false})
	}()

	resp, err := c.assistant.Chat(ctx, api.ChatRequest{UserID: c.userID, Message: text})

	c.mu.Lock()
	var reply domain.Turn
	if err != nil {
		c.log.Warn().Err(err).Str("sessionId", c.id).Msg("assistant call failed")
		reply = c.appendLocked(domain.RoleAssistant, FallbackText, nil)
	} else {
		reply = c.appendLocked(domain.RoleAssistant, resp.Response, resp.Recommendations)
	}
	c.mu.Unlock()
	c.emit(Event{Kind: EventTurnAppended, Turn: &reply})
}

// SelectItem marks a recommendation as chosen and enters
// contact-capture mode. A no-op outside chatting mode, so a repeated
// selection while already capturing does nothing.
func (c *Controller) SelectItem(item domain.CellPhone) {
	c.mu.Lock()
	if c.mode != domain.ModeChatting {
		c.mu.Unlock()
		return
	}
	c.selected = &item
	c.mode = domain.ModeCapturingContact
	c.mu.Unlock()

	c.log.Info().Str("sessionId", c.id).Int("cellphoneId", item.ID).Msg("recommendation selected")
	c.emit(Event{Kind: EventModeChanged, Mode: domain.ModeCapturingContact})
}

// SubmitContact delivers the captured contact record for the selected
// phone. Whatever the outcome, the contact sub-flow is exited: mode
// returns to chatting and the selection is cleared. Success appends a
// summary turn and a confirmation turn; failure appends a single fixed
// error turn.
func (c *Controller) SubmitContact(ctx context.Context, rec domain.ContactRecord) {
	c.mu.Lock()
	if c.mode != domain.ModeCapturingContact || c.selected == nil {
		c.mu.Unlock()
		return
	}
	item := *c.selected
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.mode = domain.ModeChatting
		c.selected = nil
		c.mu.Unlock()
		c.emit(Event{Kind: EventModeChanged, Mode: domain.ModeChatting})
	}()

	_, err := c.contacts.SubmitContact(ctx, api.ContactSubmission{
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		CellphoneID: item.ID,
		UserID:      c.userID,
	})

	c.mu.Lock()
	if err != nil {
		c.log.Warn().Err(err).Str("sessionId", c.id).Msg("contact submission failed")
		errTurn := c.appendLocked(domain.RoleAssistant, ContactFailureText, nil)
		c.mu.Unlock()
		c.emit(Event{Kind: EventTurnAppended, Turn: &errTurn})
		return
	}
	summary := c.appendLocked(domain.RoleUser, ContactSummary(item, rec), nil)
	confirm := c.appendLocked(domain.RoleAssistant, ContactConfirmation(item, rec), nil)
	c.mu.Unlock()

	c.log.Info().Str("sessionId", c.id).Int("cellphoneId", item.ID).Msg("contact submitted")
	c.emit(Event{Kind: EventTurnAppended, Turn: &summary})
	c.emit(Event{Kind: EventTurnAppended, Turn: &confirm})
}

// CancelContact abandons the contact sub-flow without touching the
// transcript. A no-op outside contact-capture mode.
func (c *Controller) CancelContact() {
	c.mu.Lock()
	if c.mode != domain.ModeCapturingContact {
		c.mu.Unlock()
		return
	}
	c.mode = domain.ModeChatting
	c.selected = nil
	c.mu.Unlock()
	c.emit(Event{Kind: EventModeChanged, Mode: domain.ModeChatting})
}

// Mode returns the current session mode.
func (c *Controller) Mode() domain.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Pending reports whether an assistant request is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// SelectedItem returns a copy of the selected recommendation, or nil.
func (c *Controller) SelectedItem() *domain.CellPhone {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	item := *c.selected
	return &item
}

// Transcript returns a snapshot of the conversation so far.
func (c *Controller) Transcript() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Turn, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// LatestRecommendations returns the recommendation list carried by the
// newest assistant turn, or nil when the latest reply had none.
func (c *Controller) LatestRecommendations() []domain.CellPhone {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.transcript) - 1; i >= 0; i-- {
		if c.transcript[i].Sender == domain.RoleAssistant {
			return c.transcript[i].Recommendations
		}
	}
	return nil
}

// appendLocked creates a turn with the next monotonic ID and appends
// it. Caller holds c.mu.
func (c *Controller) appendLocked(sender domain.Role, text string, recs []domain.CellPhone) domain.Turn {
	now := time.Now()
	t := domain.Turn{
		ID:              c.nextTurnIDLocked(now),
		Text:            text,
		Sender:          sender,
		CreatedAt:       now,
		Recommendations: recs,
	}
	c.transcript = append(c.transcript, t)
	return t
}

// nextTurnIDLocked produces strictly increasing, zero-padded
// millisecond stamps. Turns created within the same millisecond get
// bumped stamps, so IDs never collide on rapid succession.
func (c *Controller) nextTurnIDLocked(now time.Time) string {
	stamp := now.UnixMilli()
	if stamp <= c.lastStamp {
		stamp = c.lastStamp + 1
	}
	c.lastStamp = stamp
	return fmt.Sprintf("%013d", stamp)
}

func (c *Controller) emit(evt Event) {
	if c.notify != nil {
		c.notify(evt)
	}
}
