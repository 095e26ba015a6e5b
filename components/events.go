package components

import (
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/yohamta/donburi"
)

// EventKind identifies a semantic event emitted for external collaborators.
type EventKind int

const (
	EventJumped EventKind = iota
	EventImpulse
	EventThrown
	EventBlown
	EventHit
	EventAppeared
	EventModeChanged
	EventLanded
)

var eventNames = [...]string{
	EventJumped:      "jumped",
	EventImpulse:     "impulse",
	EventThrown:      "thrown",
	EventBlown:       "blown",
	EventHit:         "hit",
	EventAppeared:    "appeared",
	EventModeChanged: "mode-changed",
	EventLanded:      "landed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is one notification. Fields beyond Kind are set when relevant.
type Event struct {
	Kind    EventKind
	X, Y    float64 // body position when emitted
	SourceX float64 // hit source
	From    locomotion.Mode
	To      locomotion.Mode
}

// EventsData is an outbox drained by whoever consumes the events.
type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()

// Emit appends an event to the outbox.
func (e *EventsData) Emit(ev Event) {
	e.Pending = append(e.Pending, ev)
}

// Drain returns and clears the pending events.
func (e *EventsData) Drain() []Event {
	out := e.Pending
	e.Pending = nil
	return out
}
