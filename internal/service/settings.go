package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/timer"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Accepted ranges of the settings form, in minutes (interval in sessions).
const (
	minFocusMinutes      = 1
	maxFocusMinutes      = 60
	minShortBreakMinutes = 1
	maxShortBreakMinutes = 30
	minLongBreakMinutes  = 5
	maxLongBreakMinutes  = 60
	minLongBreakInterval = 1
	maxLongBreakInterval = 12
)

type SettingsService struct {
	repo     repository.SettingsRepo
	pt       *timer.PhaseTimer
	defaults models.Settings
}

func NewSettingsService(repo repository.SettingsRepo, pt *timer.PhaseTimer, defaults models.Settings) *SettingsService {
	return &SettingsService{repo: repo, pt: pt, defaults: timer.Sanitize(defaults)}
}

// Get returns the saved settings, or the configured defaults if nothing was saved.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	st, found, err := s.repo.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if !found {
		return s.defaults, nil
	}
	return st, nil
}

// Update validates and persists patch, then applies it to the running timer.
func (s *SettingsService) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return s.save(ctx, patch.Apply(current))
}

// ExportYAML renders the current settings as a YAML document.
func (s *SettingsService) ExportYAML(ctx context.Context) ([]byte, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportYAML overlays the keys present in data onto the current settings.
// Unknown keys are rejected.
func (s *SettingsService) ImportYAML(ctx context.Context, data []byte) (models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	next := current
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return s.save(ctx, next)
}

func (s *SettingsService) save(ctx context.Context, next models.Settings) (models.Settings, error) {
	if err := validateSettings(next); err != nil {
		return models.Settings{}, err
	}
	next.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, next); err != nil {
		return models.Settings{}, err
	}
	s.pt.ApplyConfiguration(next.Full())
	return next, nil
}

func validateSettings(st models.Settings) error {
	checks := []struct {
		name     string
		val      int
		min, max int
	}{
		{"focus_duration", st.FocusMinutes, minFocusMinutes, maxFocusMinutes},
		{"short_break_duration", st.ShortBreakMinutes, minShortBreakMinutes, maxShortBreakMinutes},
		{"long_break_duration", st.LongBreakMinutes, minLongBreakMinutes, maxLongBreakMinutes},
		{"long_break_interval", st.LongBreakInterval, minLongBreakInterval, maxLongBreakInterval},
	}
	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidSettings, c.name, c.min, c.max, c.val)
		}
	}
	return nil
}
