package service

import (
	"context"
	"sync"
	"time"

	"lentora/internal/logger"
	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/timer"

	"github.com/google/uuid"
)

// RolloverService keeps the timer's daily counters tied to the local date.
type RolloverService struct {
	pt        *timer.PhaseTimer
	statsRepo repository.StatsRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time

	mu  sync.Mutex
	day string
}

func NewRolloverService(pt *timer.PhaseTimer, statsRepo repository.StatsRepo, eventRepo repository.EventRepo, log *logger.Logger) *RolloverService {
	return &RolloverService{pt: pt, statsRepo: statsRepo, eventRepo: eventRepo, log: log, now: time.Now}
}

// Restore seeds the timer with today's persisted counters.
func (s *RolloverService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := dayOf(s.now())
	row, err := s.statsRepo.Load(ctx, day)
	if err != nil {
		return err
	}
	s.day = day
	s.pt.Restore(models.DailyCounters{
		SessionsCompleted: row.SessionsCompleted,
		FocusMinutes:      row.FocusMinutes,
	})
	return nil
}

// Run checks the date at the given interval until ctx is canceled.
func (s *RolloverService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.check(ctx)
		}
	}
}

// check resets the counters once per date change. It reports whether a
// rollover happened.
func (s *RolloverService) check(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	day := dayOf(now)
	if day == s.day {
		return false
	}
	previous := s.day
	s.day = day
	if previous == "" {
		return false
	}

	s.pt.ResetDailyCounters()
	s.log.Infow("day_rollover", "from", previous, "to", day)

	err := s.eventRepo.Append(ctx, models.TimerEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now.UTC(),
		Type:        models.EventRollover,
		Description: "New day: daily counters reset",
		Metadata:    map[string]any{"from": previous, "to": day},
	})
	if err != nil {
		s.log.Errorw("event_append_failed", "type", models.EventRollover, "err", err)
	}
	return true
}
