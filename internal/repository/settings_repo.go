package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lentora/internal/models"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

const (
	settingsRowID = 1

	upsertSettingsSQL = `
		INSERT INTO settings (id, focus_min, short_break_min, long_break_min, long_break_interval,
			auto_start_breaks, auto_start_focus, sound_enabled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			focus_min=excluded.focus_min,
			short_break_min=excluded.short_break_min,
			long_break_min=excluded.long_break_min,
			long_break_interval=excluded.long_break_interval,
			auto_start_breaks=excluded.auto_start_breaks,
			auto_start_focus=excluded.auto_start_focus,
			sound_enabled=excluded.sound_enabled,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `
		SELECT focus_min, short_break_min, long_break_min, long_break_interval,
			auto_start_breaks, auto_start_focus, sound_enabled, updated_at
		FROM settings WHERE id=?
	`
)

// Save updates or inserts the settings row (id always 1).
func (r *SettingsSQLite) Save(ctx context.Context, s models.Settings) error {
	// persist UpdatedAt as UTC; set if zero
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertSettingsSQL,
		settingsRowID,
		s.FocusMinutes,
		s.ShortBreakMinutes,
		s.LongBreakMinutes,
		s.LongBreakInterval,
		s.AutoStartBreaks,
		s.AutoStartFocus,
		s.SoundEnabled,
		ts,
	)
	return err
}

// Load fetches the settings row. The bool is false when nothing was saved yet.
func (r *SettingsSQLite) Load(ctx context.Context) (models.Settings, bool, error) {
	row := r.db.QueryRowContext(ctx, selectSettingsSQL, settingsRowID)

	var s models.Settings
	if err := row.Scan(
		&s.FocusMinutes,
		&s.ShortBreakMinutes,
		&s.LongBreakMinutes,
		&s.LongBreakInterval,
		&s.AutoStartBreaks,
		&s.AutoStartFocus,
		&s.SoundEnabled,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, false, nil
		}
		return models.Settings{}, false, err
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, true, nil
}
