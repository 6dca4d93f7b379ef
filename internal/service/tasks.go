package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"lentora/internal/models"
	"lentora/internal/repository"

	"github.com/google/uuid"
)

const maxTaskTitleLen = 200

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTask       = errors.New("invalid task: title is required (max 200 chars), priority must be low, medium or high")
	ErrInvalidTaskFilter = errors.New("invalid filter: must be all, active or completed")
)

type TaskService struct {
	taskRepo  repository.TaskRepo
	statsRepo repository.StatsRepo
	now       func() time.Time
}

func NewTaskService(taskRepo repository.TaskRepo, statsRepo repository.StatsRepo) *TaskService {
	return &TaskService{taskRepo: taskRepo, statsRepo: statsRepo, now: time.Now}
}

func (s *TaskService) List(ctx context.Context, filter string) ([]models.Task, error) {
	var completed *bool
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", TaskFilterAll:
	case TaskFilterActive:
		v := false
		completed = &v
	case TaskFilterCompleted:
		v := true
		completed = &v
	default:
		return nil, ErrInvalidTaskFilter
	}
	return s.taskRepo.List(ctx, completed)
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (models.Task, error) {
	in, err := normalizeTaskInput(in)
	if err != nil {
		return models.Task{}, err
	}
	t := models.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Shared:      in.Shared,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id string, in TaskInput) (models.Task, error) {
	in, err := normalizeTaskInput(in)
	if err != nil {
		return models.Task{}, err
	}
	t, err := s.get(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	t.Title = in.Title
	t.Description = in.Description
	t.Priority = in.Priority
	t.Shared = in.Shared
	if err := s.update(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// SetCompleted marks the task done or not done and adjusts the completed
// count of the day the task was completed on.
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) (models.Task, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if t.Completed == completed {
		return t, nil
	}

	var (
		day   string
		delta int
	)
	if completed {
		now := s.now().UTC()
		t.CompletedAt = &now
		day, delta = dayOf(now), 1
	} else {
		day, delta = dayOf(s.now()), -1
		if t.CompletedAt != nil {
			day = dayOf(*t.CompletedAt)
		}
		t.CompletedAt = nil
	}
	t.Completed = completed

	if err := s.update(ctx, t); err != nil {
		return models.Task{}, err
	}
	if err := s.statsRepo.AddTasksCompleted(ctx, day, delta); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	ok, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) get(ctx context.Context, id string) (models.Task, error) {
	t, err := s.taskRepo.Get(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil {
		return models.Task{}, ErrTaskNotFound
	}
	return *t, nil
}

func (s *TaskService) update(ctx context.Context, t models.Task) error {
	err := s.taskRepo.Update(ctx, t)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func normalizeTaskInput(in TaskInput) (TaskInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Priority = strings.ToLower(strings.TrimSpace(in.Priority))
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if in.Title == "" || len([]rune(in.Title)) > maxTaskTitleLen {
		return TaskInput{}, ErrInvalidTask
	}
	switch in.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return TaskInput{}, ErrInvalidTask
	}
	return in, nil
}
