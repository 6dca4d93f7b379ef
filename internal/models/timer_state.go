package models

// TimerState is a snapshot of the focus timer.
type TimerState struct {
	Phase                  Phase  `json:"phase"`
	PhaseLabel             string `json:"phase_label"`
	RemainingSeconds       int    `json:"remaining_seconds"`
	TotalSeconds           int    `json:"total_seconds"` // full duration of the current phase
	IsRunning              bool   `json:"is_running"`
	SessionsCompletedCycle int    `json:"sessions_completed_in_cycle"`
	SessionsCompletedToday int    `json:"sessions_completed_today"`
	FocusMinutesToday      int    `json:"total_focus_minutes_today"`
	SessionNumber          int    `json:"session_number"` // e.g. 2 in "2/4"
	SessionsPerCycle       int    `json:"sessions_per_cycle"`
}

// DailyCounters are the cumulative per-day counters the timer carries.
type DailyCounters struct {
	SessionsCompleted int `json:"sessions_completed"`
	FocusMinutes      int `json:"focus_minutes"`
}
