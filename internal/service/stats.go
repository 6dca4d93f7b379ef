package service

import (
	"context"
	"errors"
	"time"

	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/timer"
)

// maxStatsDays bounds a Range query (a year of daily rows).
const maxStatsDays = 366

var ErrInvalidDateRange = errors.New("invalid date range: expected YYYY-MM-DD with from <= to, at most 366 days")

type StatsService struct {
	repo repository.StatsRepo
	pt   *timer.PhaseTimer
	now  func() time.Time
}

func NewStatsService(repo repository.StatsRepo, pt *timer.PhaseTimer) *StatsService {
	return &StatsService{repo: repo, pt: pt, now: time.Now}
}

// Today combines the live timer counters with today's stored task count.
func (s *StatsService) Today(ctx context.Context) (models.DailyStats, error) {
	day := dayOf(s.now())
	row, err := s.repo.Load(ctx, day)
	if err != nil {
		return models.DailyStats{}, err
	}
	snap := s.pt.Snapshot()
	row.Day = day
	row.SessionsCompleted = snap.SessionsCompletedToday
	row.FocusMinutes = snap.FocusMinutesToday
	return row, nil
}

// Range returns one row per day in [from, to], zero-filling days without
// activity. Empty bounds default to the last seven days.
func (s *StatsService) Range(ctx context.Context, from, to string) ([]models.DailyStats, error) {
	start, end, err := s.parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Range(ctx, start.Format(dayLayout), end.Format(dayLayout))
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]models.DailyStats, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}

	out := make([]models.DailyStats, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		row, ok := byDay[key]
		if !ok {
			row = models.DailyStats{Day: key}
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *StatsService) parseRange(from, to string) (time.Time, time.Time, error) {
	today, _ := time.Parse(dayLayout, dayOf(s.now()))

	end := today
	if to != "" {
		t, err := time.Parse(dayLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		end = t
	}
	start := end.AddDate(0, 0, -6)
	if from != "" {
		t, err := time.Parse(dayLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		start = t
	}
	if start.After(end) || end.Sub(start) >= maxStatsDays*24*time.Hour {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}
