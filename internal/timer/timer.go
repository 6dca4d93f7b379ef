package timer

import (
	"errors"
	"sync"

	"lentora/internal/models"
)

var (
	// ErrConfirmationRequired is returned by ChangePhase when the countdown is
	// running and the caller has not confirmed discarding it.
	ErrConfirmationRequired = errors.New("timer is running: confirm to change phase")
	// ErrInvalidPhase indicates an unknown phase name.
	ErrInvalidPhase = errors.New("invalid phase: must be focus, short_break or long_break")
)

// PhaseTimer is the focus-timer state machine: Focus, ShortBreak and
// LongBreak, each either running or paused.
type PhaseTimer struct {
	mu       sync.Mutex
	settings models.Settings
	options  Options

	phase             models.Phase
	remaining         int // seconds
	running           bool
	inCycle           int
	focusMinutesToday int
	sessionsToday     int

	stopCh       chan struct{} // current countdown, nil when idle
	autoStart    Stopper
	autoStartGen int

	subscribers []chan Event
	dropped     int
	closed      bool
}

// New creates a paused PhaseTimer in Focus with a full focus duration.
func New(settings models.Settings, options Options) *PhaseTimer {
	t := &PhaseTimer{
		settings: Sanitize(settings),
		options:  options.withDefaults(),
		phase:    models.PhaseFocus,
	}
	t.remaining = t.durationLocked(t.phase)
	return t
}

// Subscribe registers a new observer channel. The returned func
// unregisters and closes it.
func (t *PhaseTimer) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	t.subscribers = append(t.subscribers, ch)
	t.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { t.unsubscribe(ch) })
	}
}

func (t *PhaseTimer) unsubscribe(ch chan Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, sub := range t.subscribers {
		if sub == ch {
			t.subscribers = append(t.subscribers[:i], t.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// Close stops the countdown and closes every observer channel.
func (t *PhaseTimer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.cancelAutoStartLocked()
	t.stopLocked()
	t.closed = true
	for _, ch := range t.subscribers {
		close(ch)
	}
	t.subscribers = nil
}

// Start begins the countdown. Starting a running timer is a no-op.
func (t *PhaseTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAutoStartLocked()
	t.startLocked()
}

// Pause stops the countdown, keeping the remaining time.
func (t *PhaseTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAutoStartLocked()
	if !t.running {
		return
	}
	t.stopLocked()
	t.emitLocked(t.eventLocked(EventPaused))
	t.emitLocked(t.eventLocked(EventTimeUpdated))
}

// Toggle pauses a running timer and starts a paused one.
func (t *PhaseTimer) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAutoStartLocked()
	if t.running {
		t.stopLocked()
		t.emitLocked(t.eventLocked(EventPaused))
		t.emitLocked(t.eventLocked(EventTimeUpdated))
		return
	}
	t.startLocked()
}

// Reset stops the countdown and restores the full duration of the current phase.
// Phase and session counters are unchanged.
func (t *PhaseTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAutoStartLocked()
	t.stopLocked()
	t.remaining = t.durationLocked(t.phase)
	t.emitLocked(t.eventLocked(EventReset))
	t.emitLocked(t.eventLocked(EventTimeUpdated))
}

// Skip moves to the next phase without counting the current one as completed.
// The new phase is not started.
func (t *PhaseTimer) Skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAutoStartLocked()
	t.stopLocked()
	skipped := t.eventLocked(EventSkipped)
	t.emitLocked(skipped)
	t.transitionToLocked(t.determineNextPhaseLocked(false))
}

// ChangePhase switches to target on the user's request. A running countdown
// is only discarded when confirmed is true.
func (t *PhaseTimer) ChangePhase(target models.Phase, confirmed bool) error {
	if !target.Valid() {
		return ErrInvalidPhase
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if target == t.phase {
		return nil
	}
	if t.running && !confirmed {
		return ErrConfirmationRequired
	}
	t.cancelAutoStartLocked()
	t.stopLocked()
	t.transitionToLocked(target)
	return nil
}

// ApplyConfiguration merges patch into the settings. The remaining time is
// reseeded from the new durations only while the timer is not running.
func (t *PhaseTimer) ApplyConfiguration(patch models.SettingsPatch) models.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settings = Sanitize(patch.Apply(t.settings))
	if t.inCycle >= t.settings.LongBreakInterval {
		t.inCycle = t.settings.LongBreakInterval - 1
	}
	if !t.running {
		t.remaining = t.durationLocked(t.phase)
	}
	t.emitLocked(t.eventLocked(EventTimeUpdated))
	return t.settings
}

// Settings returns the sanitized configuration in use.
func (t *PhaseTimer) Settings() models.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings
}

// Restore seeds the daily counters from persisted statistics.
func (t *PhaseTimer) Restore(c models.DailyCounters) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessionsToday = max(c.SessionsCompleted, 0)
	t.focusMinutesToday = max(c.FocusMinutes, 0)
	t.emitLocked(t.eventLocked(EventTimeUpdated))
}

// ResetDailyCounters zeroes the per-day counters at a day boundary.
func (t *PhaseTimer) ResetDailyCounters() {
	t.Restore(models.DailyCounters{})
}

// Snapshot returns the current state.
func (t *PhaseTimer) Snapshot() models.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Dropped reports how many events were discarded because an observer was full.
func (t *PhaseTimer) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

func (t *PhaseTimer) startLocked() {
	if t.running || t.closed {
		return
	}
	if t.remaining <= 0 {
		t.remaining = t.durationLocked(t.phase)
	}
	t.running = true
	stop := make(chan struct{})
	t.stopCh = stop
	ticker := t.options.Clock.NewTicker(t.options.Tick)
	go t.run(ticker, stop)

	t.emitLocked(t.eventLocked(EventStarted))
	t.emitLocked(t.eventLocked(EventTimeUpdated))
}

func (t *PhaseTimer) stopLocked() {
	if t.stopCh != nil {
		close(t.stopCh)
		t.stopCh = nil
	}
	t.running = false
}

func (t *PhaseTimer) run(ticker Ticker, stop chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !t.tick(stop) {
				return
			}
		}
	}
}

// tick advances the countdown owned by stop. Ticks from a countdown that
// has since been stopped are ignored.
func (t *PhaseTimer) tick(stop chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopCh != stop || !t.running {
		return false
	}

	t.remaining--
	if t.remaining > 0 {
		t.emitLocked(t.eventLocked(EventTimeUpdated))
		return true
	}

	t.remaining = 0
	t.stopLocked()
	t.emitLocked(t.eventLocked(EventTimeUpdated))
	t.completeNaturallyLocked()
	return false
}

func (t *PhaseTimer) completeNaturallyLocked() {
	ended := t.phase
	next := t.determineNextPhaseLocked(true)
	t.transitionToLocked(next)

	if ended == models.PhaseFocus {
		t.focusMinutesToday += t.settings.FocusMinutes
		t.sessionsToday++
		t.emitLocked(t.eventLocked(EventFocusEnded))
	} else {
		ev := t.eventLocked(EventBreakEnded)
		ev.Phase = ended
		t.emitLocked(ev)
	}

	autoStart := t.settings.AutoStartBreaks
	if next == models.PhaseFocus {
		autoStart = t.settings.AutoStartFocus
	}
	if autoStart {
		t.scheduleAutoStartLocked()
	}
}

// determineNextPhaseLocked picks the phase after the current one. Only a
// natural Focus completion counts toward the long break.
func (t *PhaseTimer) determineNextPhaseLocked(naturalCompletion bool) models.Phase {
	if t.phase != models.PhaseFocus {
		return models.PhaseFocus
	}
	if naturalCompletion {
		t.inCycle++
	}
	if t.inCycle >= t.settings.LongBreakInterval {
		t.inCycle = 0
		return models.PhaseLongBreak
	}
	return models.PhaseShortBreak
}

func (t *PhaseTimer) transitionToLocked(phase models.Phase) {
	previous := t.phase
	t.phase = phase
	t.remaining = t.durationLocked(phase)

	ev := t.eventLocked(EventPhaseChanged)
	ev.PreviousPhase = previous
	t.emitLocked(ev)
	t.emitLocked(t.eventLocked(EventTimeUpdated))
}

func (t *PhaseTimer) durationLocked(phase models.Phase) int {
	return DurationOf(t.settings, phase) * 60
}

func (t *PhaseTimer) scheduleAutoStartLocked() {
	t.cancelAutoStartLocked()
	gen := t.autoStartGen
	t.autoStart = t.options.Clock.AfterFunc(t.options.AutoStartDelay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.autoStartGen {
			return
		}
		t.autoStart = nil
		t.startLocked()
	})
}

func (t *PhaseTimer) cancelAutoStartLocked() {
	t.autoStartGen++
	if t.autoStart != nil {
		t.autoStart.Stop()
		t.autoStart = nil
	}
}

func (t *PhaseTimer) snapshotLocked() models.TimerState {
	num, den := SessionDisplay(t.phase, t.inCycle, t.settings.LongBreakInterval)
	return models.TimerState{
		Phase:                  t.phase,
		PhaseLabel:             t.phase.Label(),
		RemainingSeconds:       max(t.remaining, 0),
		TotalSeconds:           t.durationLocked(t.phase),
		IsRunning:              t.running,
		SessionsCompletedCycle: t.inCycle,
		SessionsCompletedToday: t.sessionsToday,
		FocusMinutesToday:      t.focusMinutesToday,
		SessionNumber:          num,
		SessionsPerCycle:       den,
	}
}

func (t *PhaseTimer) eventLocked(typ EventType) Event {
	state := t.snapshotLocked()
	return Event{
		Type:             typ,
		Phase:            state.Phase,
		RemainingSeconds: state.RemainingSeconds,
		SessionNumber:    state.SessionNumber,
		SessionsPerCycle: state.SessionsPerCycle,
		State:            state,
		At:               t.options.Clock.Now(),
	}
}

func (t *PhaseTimer) emitLocked(event Event) {
	for _, ch := range t.subscribers {
		select {
		case ch <- event:
		default:
			t.dropped++
		}
	}
}
