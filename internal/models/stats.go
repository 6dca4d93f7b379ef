package models

// DailyStats is the persisted statistics row for one calendar day.
type DailyStats struct {
	Day               string `json:"day"` // YYYY-MM-DD
	SessionsCompleted int    `json:"sessions_completed"`
	FocusMinutes      int    `json:"focus_minutes"`
	TasksCompleted    int    `json:"tasks_completed"`
}
