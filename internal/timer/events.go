package timer

import (
	"time"

	"lentora/internal/models"
)

// EventType defines the type of PhaseTimer event.
type EventType string

const (
	EventTimeUpdated  EventType = "time_updated"
	EventPhaseChanged EventType = "phase_changed"
	EventFocusEnded   EventType = "focus_ended"
	EventBreakEnded   EventType = "break_ended"
	EventStarted      EventType = "started"
	EventPaused       EventType = "paused"
	EventReset        EventType = "reset"
	EventSkipped      EventType = "skipped"
)

// Event is a PhaseTimer update for observers.
//
// Phase is the phase the event is about: the new phase for PhaseChanged,
// the break that just ended for BreakEnded, the current phase otherwise.
type Event struct {
	Type             EventType         `json:"type"`
	Phase            models.Phase      `json:"phase"`
	PreviousPhase    models.Phase      `json:"previous_phase,omitempty"`
	RemainingSeconds int               `json:"remaining_seconds"`
	SessionNumber    int               `json:"session_number,omitempty"`
	SessionsPerCycle int               `json:"sessions_per_cycle,omitempty"`
	State            models.TimerState `json:"state"`
	At               time.Time         `json:"at"`
}
