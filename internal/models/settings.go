package models

import "time"

// Default timer configuration.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultLongBreakInterval = 4
)

// Settings is the timer configuration a user edits on the dashboard.
type Settings struct {
	FocusMinutes      int       `json:"focus_duration" yaml:"focus_duration"`             // minutes
	ShortBreakMinutes int       `json:"short_break_duration" yaml:"short_break_duration"` // minutes
	LongBreakMinutes  int       `json:"long_break_duration" yaml:"long_break_duration"`   // minutes
	LongBreakInterval int       `json:"long_break_interval" yaml:"long_break_interval"`   // focus sessions per cycle
	AutoStartBreaks   bool      `json:"auto_start_breaks" yaml:"auto_start_breaks"`
	AutoStartFocus    bool      `json:"auto_start_focus" yaml:"auto_start_focus"`
	SoundEnabled      bool      `json:"sound_enabled" yaml:"sound_enabled"`
	UpdatedAt         time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      DefaultFocusMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
		LongBreakInterval: DefaultLongBreakInterval,
		AutoStartBreaks:   true,
		AutoStartFocus:    true,
		SoundEnabled:      true,
	}
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	FocusMinutes      *int  `json:"focus_duration,omitempty"`
	ShortBreakMinutes *int  `json:"short_break_duration,omitempty"`
	LongBreakMinutes  *int  `json:"long_break_duration,omitempty"`
	LongBreakInterval *int  `json:"long_break_interval,omitempty"`
	AutoStartBreaks   *bool `json:"auto_start_breaks,omitempty"`
	AutoStartFocus    *bool `json:"auto_start_focus,omitempty"`
	SoundEnabled      *bool `json:"sound_enabled,omitempty"`
}

// Apply returns s with every non-nil field of p written over it.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.FocusMinutes != nil {
		s.FocusMinutes = *p.FocusMinutes
	}
	if p.ShortBreakMinutes != nil {
		s.ShortBreakMinutes = *p.ShortBreakMinutes
	}
	if p.LongBreakMinutes != nil {
		s.LongBreakMinutes = *p.LongBreakMinutes
	}
	if p.LongBreakInterval != nil {
		s.LongBreakInterval = *p.LongBreakInterval
	}
	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartFocus != nil {
		s.AutoStartFocus = *p.AutoStartFocus
	}
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	return s
}

// Full converts complete settings into a patch that overwrites every field.
func (s Settings) Full() SettingsPatch {
	return SettingsPatch{
		FocusMinutes:      &s.FocusMinutes,
		ShortBreakMinutes: &s.ShortBreakMinutes,
		LongBreakMinutes:  &s.LongBreakMinutes,
		LongBreakInterval: &s.LongBreakInterval,
		AutoStartBreaks:   &s.AutoStartBreaks,
		AutoStartFocus:    &s.AutoStartFocus,
		SoundEnabled:      &s.SoundEnabled,
	}
}
