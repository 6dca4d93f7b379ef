package timer

import (
	"time"

	"lentora/internal/models"
)

// Runtime defaults.
const (
	DefaultTick           = time.Second
	DefaultAutoStartDelay = 500 * time.Millisecond
)

// Options contains runtime knobs that are not user settings.
type Options struct {
	Tick           time.Duration
	AutoStartDelay time.Duration
	Clock          Clock
}

func (o Options) withDefaults() Options {
	if o.Tick <= 0 {
		o.Tick = DefaultTick
	}
	if o.AutoStartDelay <= 0 {
		o.AutoStartDelay = DefaultAutoStartDelay
	}
	if o.Clock == nil {
		o.Clock = SystemClock{}
	}
	return o
}

// Sanitize replaces non-positive durations and interval with the defaults.
func Sanitize(s models.Settings) models.Settings {
	if s.FocusMinutes <= 0 {
		s.FocusMinutes = models.DefaultFocusMinutes
	}
	if s.ShortBreakMinutes <= 0 {
		s.ShortBreakMinutes = models.DefaultShortBreakMinutes
	}
	if s.LongBreakMinutes <= 0 {
		s.LongBreakMinutes = models.DefaultLongBreakMinutes
	}
	if s.LongBreakInterval <= 0 {
		s.LongBreakInterval = models.DefaultLongBreakInterval
	}
	return s
}

// DurationOf returns the configured length of phase in minutes,
// falling back to the default when the value is not positive.
func DurationOf(s models.Settings, phase models.Phase) int {
	switch phase {
	case models.PhaseShortBreak:
		if s.ShortBreakMinutes > 0 {
			return s.ShortBreakMinutes
		}
		return models.DefaultShortBreakMinutes
	case models.PhaseLongBreak:
		if s.LongBreakMinutes > 0 {
			return s.LongBreakMinutes
		}
		return models.DefaultLongBreakMinutes
	default:
		if s.FocusMinutes > 0 {
			return s.FocusMinutes
		}
		return models.DefaultFocusMinutes
	}
}

// SessionDisplay returns the "n of m" pair shown next to the timer.
// In Focus it is the session in progress; in a break it is the one just completed.
func SessionDisplay(phase models.Phase, inCycle, interval int) (int, int) {
	if interval <= 0 {
		interval = models.DefaultLongBreakInterval
	}
	if phase == models.PhaseFocus {
		return inCycle%interval + 1, interval
	}
	if inCycle == 0 {
		return interval, interval
	}
	return inCycle, interval
}
