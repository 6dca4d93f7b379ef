package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lentora/internal/models"
)

type StatsSQLite struct {
	db *sql.DB
}

func NewStatsSQLite(db *sql.DB) *StatsSQLite { return &StatsSQLite{db: db} }

const (
	selectDayStatsSQL = `SELECT day, sessions, focus_min, tasks_completed FROM daily_stats WHERE day = ?`

	upsertDayCountersSQL = `
		INSERT INTO daily_stats (day, sessions, focus_min, tasks_completed)
		VALUES (?, ?, ?, 0)
		ON CONFLICT(day) DO UPDATE SET
			sessions=excluded.sessions,
			focus_min=excluded.focus_min
	`

	// tasks_completed never goes below zero
	addTasksCompletedSQL = `
		INSERT INTO daily_stats (day, sessions, focus_min, tasks_completed)
		VALUES (?, 0, 0, MAX(?, 0))
		ON CONFLICT(day) DO UPDATE SET
			tasks_completed=MAX(daily_stats.tasks_completed + ?, 0)
	`

	selectStatsRangeSQL = `
		SELECT day, sessions, focus_min, tasks_completed FROM daily_stats
		WHERE day >= ? AND day <= ?
		ORDER BY day ASC
	`
)

// Load returns the row for day, or a zero row for that day if none exists.
func (r *StatsSQLite) Load(ctx context.Context, day string) (models.DailyStats, error) {
	var s models.DailyStats
	err := r.db.QueryRowContext(ctx, selectDayStatsSQL, day).
		Scan(&s.Day, &s.SessionsCompleted, &s.FocusMinutes, &s.TasksCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyStats{Day: day}, nil
		}
		return models.DailyStats{}, fmt.Errorf("select stats for %s: %w", day, err)
	}
	return s, nil
}

// SaveCounters writes the absolute timer counters for day.
func (r *StatsSQLite) SaveCounters(ctx context.Context, day string, c models.DailyCounters) error {
	if _, err := r.db.ExecContext(ctx, upsertDayCountersSQL, day, c.SessionsCompleted, c.FocusMinutes); err != nil {
		return fmt.Errorf("save counters for %s: %w", day, err)
	}
	return nil
}

// AddTasksCompleted adjusts the completed-task count for day by delta.
func (r *StatsSQLite) AddTasksCompleted(ctx context.Context, day string, delta int) error {
	if _, err := r.db.ExecContext(ctx, addTasksCompletedSQL, day, delta, delta); err != nil {
		return fmt.Errorf("add tasks completed for %s: %w", day, err)
	}
	return nil
}

// Range returns the stored rows between fromDay and toDay inclusive.
func (r *StatsSQLite) Range(ctx context.Context, fromDay, toDay string) ([]models.DailyStats, error) {
	rows, err := r.db.QueryContext(ctx, selectStatsRangeSQL, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("select stats range: %w", err)
	}
	defer rows.Close()

	var out []models.DailyStats
	for rows.Next() {
		var s models.DailyStats
		if err := rows.Scan(&s.Day, &s.SessionsCompleted, &s.FocusMinutes, &s.TasksCompleted); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
