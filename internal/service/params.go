package service

import "time"

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "START", "PAUSE", "RESET", "SKIP", "PHASE_CHANGE", "FOCUS_ENDED", "BREAK_ENDED", "ROLLOVER"
}

// TaskInput holds the editable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    string // low | medium | high; empty means medium
	Shared      bool
}

// Task list filters.
const (
	TaskFilterAll       = "all"
	TaskFilterActive    = "active"
	TaskFilterCompleted = "completed"
)
