package session

import "github.com/avickers/phonescout/internal/domain"

// EventKind classifies a session change event.
type EventKind string

const (
	// EventTurnAppended fires for every turn added to the transcript.
	// Views should scroll to the newest turn on this event.
	EventTurnAppended EventKind = "turnAppended"

	// EventPendingChanged fires when an assistant request starts or
	// settles. Views show a composing indicator while pending is true.
	EventPendingChanged EventKind = "pendingChanged"

	// EventModeChanged fires on entering or leaving contact capture.
	EventModeChanged EventKind = "modeChanged"
)

// Event is a notification of a session state change.
type Event struct {
	Kind    EventKind
	Turn    *domain.Turn // set for EventTurnAppended
	Pending bool         // set for EventPendingChanged
	Mode    domain.Mode  // set for EventModeChanged
}
