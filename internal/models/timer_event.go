package models

import "time"

// Event log types.
const (
	EventStart       = "START"
	EventPause       = "PAUSE"
	EventReset       = "RESET"
	EventSkip        = "SKIP"
	EventPhaseChange = "PHASE_CHANGE"
	EventFocusEnded  = "FOCUS_ENDED"
	EventBreakEnded  = "BREAK_ENDED"
	EventRollover    = "ROLLOVER"
)

// TimerEvent is a single log entry.
type TimerEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // START | PAUSE | RESET | SKIP | PHASE_CHANGE | FOCUS_ENDED | BREAK_ENDED | ROLLOVER
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
