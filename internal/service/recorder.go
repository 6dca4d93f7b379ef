package service

import (
	"context"
	"fmt"

	"lentora/internal/logger"
	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/timer"

	"github.com/google/uuid"
)

// recorderBuffer sizes the recorder's subscription; a full buffer drops
// events rather than stalling the timer.
const recorderBuffer = 256

// RecorderService persists timer events: the event log for every lifecycle
// event and today's statistics when a focus session ends.
type RecorderService struct {
	pt        *timer.PhaseTimer
	eventRepo repository.EventRepo
	statsRepo repository.StatsRepo
	quotes    Quotes
	log       *logger.Logger
}

func NewRecorderService(pt *timer.PhaseTimer, eventRepo repository.EventRepo, statsRepo repository.StatsRepo, quotes Quotes, log *logger.Logger) *RecorderService {
	return &RecorderService{pt: pt, eventRepo: eventRepo, statsRepo: statsRepo, quotes: quotes, log: log}
}

// Run consumes events until ctx is canceled or the timer is closed.
func (r *RecorderService) Run(ctx context.Context) {
	events, unsubscribe := r.pt.Subscribe(recorderBuffer)
	defer unsubscribe()
	r.consume(ctx, events)
}

func (r *RecorderService) consume(ctx context.Context, events <-chan timer.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			r.handle(ctx, ev)
		}
	}
}

// handle isolates one event: failures are logged and never reach the timer.
func (r *RecorderService) handle(ctx context.Context, ev timer.Event) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Errorw("recorder_panic", "event", ev.Type, "panic", p)
		}
	}()

	if ev.Type == timer.EventFocusEnded {
		counters := models.DailyCounters{
			SessionsCompleted: ev.State.SessionsCompletedToday,
			FocusMinutes:      ev.State.FocusMinutesToday,
		}
		if err := r.statsRepo.SaveCounters(ctx, dayOf(ev.At), counters); err != nil {
			r.log.Errorw("stats_save_failed", "err", err)
		}
	}

	entry, ok := r.logEntry(ev)
	if !ok {
		return
	}
	if err := r.eventRepo.Append(ctx, entry); err != nil {
		r.log.Errorw("event_append_failed", "type", entry.Type, "err", err)
		return
	}
	r.log.Debugw("timer_event", "type", entry.Type, "phase", ev.Phase, "remaining", ev.RemainingSeconds)
}

// logEntry maps a timer event to its event-log row. TimeUpdated is not logged.
func (r *RecorderService) logEntry(ev timer.Event) (models.TimerEvent, bool) {
	e := models.TimerEvent{
		EventID:    uuid.NewString(),
		OccurredAt: ev.At.UTC(),
		Metadata: map[string]any{
			"phase":             ev.Phase,
			"remaining_seconds": ev.RemainingSeconds,
		},
	}
	label := ev.Phase.Label()

	switch ev.Type {
	case timer.EventStarted:
		e.Type, e.Description = models.EventStart, label+" started"
	case timer.EventPaused:
		e.Type, e.Description = models.EventPause, label+" paused"
	case timer.EventReset:
		e.Type, e.Description = models.EventReset, label+" reset"
	case timer.EventSkipped:
		e.Type, e.Description = models.EventSkip, label+" skipped"
	case timer.EventPhaseChanged:
		e.Type = models.EventPhaseChange
		e.Description = fmt.Sprintf("Phase changed from %s to %s", ev.PreviousPhase.Label(), label)
		e.Metadata = map[string]any{"from": ev.PreviousPhase, "to": ev.Phase}
	case timer.EventFocusEnded:
		e.Type = models.EventFocusEnded
		e.Description = r.quotes.Message()
		e.Metadata = map[string]any{
			"sessions_today":      ev.State.SessionsCompletedToday,
			"focus_minutes_today": ev.State.FocusMinutesToday,
			"next_phase":          ev.State.Phase,
		}
	case timer.EventBreakEnded:
		e.Type, e.Description = models.EventBreakEnded, label+" ended"
	default:
		return models.TimerEvent{}, false
	}
	return e, true
}
