package service

import (
	"context"
	"sort"
	"sync"

	"lentora/internal/logger"
	"lentora/internal/models"
	"lentora/internal/repository"
)

func nopLogger() *logger.Logger {
	return logger.Nop()
}

type fakeSettingsRepo struct {
	saved   *models.Settings
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s models.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.saved = &s
	return nil
}

func (f *fakeSettingsRepo) Load(ctx context.Context) (models.Settings, bool, error) {
	if f.loadErr != nil {
		return models.Settings{}, false, f.loadErr
	}
	if f.saved == nil {
		return models.Settings{}, false, nil
	}
	return *f.saved, true, nil
}

// fakeStatsRepo keeps daily rows in memory.
type fakeStatsRepo struct {
	mu      sync.Mutex
	rows    map[string]models.DailyStats
	saveErr error
	saves   int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{rows: map[string]models.DailyStats{}}
}

func (f *fakeStatsRepo) Load(ctx context.Context, day string) (models.DailyStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[day]
	if !ok {
		return models.DailyStats{Day: day}, nil
	}
	return row, nil
}

func (f *fakeStatsRepo) SaveCounters(ctx context.Context, day string, c models.DailyCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	row := f.rows[day]
	row.Day = day
	row.SessionsCompleted = c.SessionsCompleted
	row.FocusMinutes = c.FocusMinutes
	f.rows[day] = row
	return nil
}

func (f *fakeStatsRepo) AddTasksCompleted(ctx context.Context, day string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := f.rows[day]
	row.Day = day
	row.TasksCompleted = max(row.TasksCompleted+delta, 0)
	f.rows[day] = row
	return nil
}

func (f *fakeStatsRepo) Range(ctx context.Context, fromDay, toDay string) ([]models.DailyStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DailyStats
	for day, row := range f.rows {
		if day >= fromDay && day <= toDay {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (f *fakeStatsRepo) get(day string) models.DailyStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[day]
}

type fakeTaskRepo struct {
	tasks map[string]models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]models.Task{}}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t models.Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t models.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Get(ctx context.Context, id string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTaskRepo) List(ctx context.Context, completed *bool) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range f.tasks {
		if completed == nil || t.Completed == *completed {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) (bool, error) {
	_, ok := f.tasks[id]
	delete(f.tasks, id)
	return ok, nil
}

type fakeInviteRepo struct {
	invites []models.Invite
}

func (f *fakeInviteRepo) Create(ctx context.Context, inv models.Invite) error {
	f.invites = append(f.invites, inv)
	return nil
}

func (f *fakeInviteRepo) List(ctx context.Context) ([]models.Invite, error) {
	return f.invites, nil
}
