package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lentora/internal/models"
)

func newTaskFixture(now time.Time) (*TaskService, *fakeTaskRepo, *fakeStatsRepo) {
	tasks := newFakeTaskRepo()
	stats := newFakeStatsRepo()
	svc := NewTaskService(tasks, stats)
	svc.now = fixedNow(now)
	return svc, tasks, stats
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc, _, _ := newTaskFixture(time.Now())
	ctx := context.Background()

	for _, in := range []TaskInput{
		{Title: "   "},
		{Title: "ok", Priority: "urgent"},
		{Title: string(make([]rune, 201))},
	} {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidTask) {
			t.Fatalf("Create(%+v): expected ErrInvalidTask, got %v", in, err)
		}
	}

	task, err := svc.Create(ctx, TaskInput{Title: "  Write report ", Priority: "HIGH"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == "" || task.Title != "Write report" || task.Priority != models.PriorityHigh || task.Completed {
		t.Fatalf("unexpected task: %+v", task)
	}

	def, err := svc.Create(ctx, TaskInput{Title: "Read"})
	if err != nil || def.Priority != models.PriorityMedium {
		t.Fatalf("expected default medium priority, got %+v %v", def, err)
	}
}

func TestTaskService_CompleteAdjustsStats(t *testing.T) {
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local)
	svc, _, stats := newTaskFixture(now)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: "Plan sprint"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done, err := svc.SetCompleted(ctx, task.ID, true)
	if err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("expected completed task, got %+v", done)
	}
	if got := stats.get("2025-03-05").TasksCompleted; got != 1 {
		t.Fatalf("tasks_completed = %d, want 1", got)
	}

	// completing twice does not double count
	if _, err := svc.SetCompleted(ctx, task.ID, true); err != nil {
		t.Fatalf("SetCompleted again: %v", err)
	}
	if got := stats.get("2025-03-05").TasksCompleted; got != 1 {
		t.Fatalf("tasks_completed = %d after repeat, want 1", got)
	}

	undone, err := svc.SetCompleted(ctx, task.ID, false)
	if err != nil {
		t.Fatalf("SetCompleted(false): %v", err)
	}
	if undone.Completed || undone.CompletedAt != nil {
		t.Fatalf("expected active task, got %+v", undone)
	}
	if got := stats.get("2025-03-05").TasksCompleted; got != 0 {
		t.Fatalf("tasks_completed = %d, want 0", got)
	}
}

func TestTaskService_UncompleteNeverNegative(t *testing.T) {
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local)
	svc, tasks, stats := newTaskFixture(now)
	tasks.tasks["old"] = models.Task{ID: "old", Title: "Legacy", Priority: "low", Completed: true}

	if _, err := svc.SetCompleted(context.Background(), "old", false); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if got := stats.get("2025-03-05").TasksCompleted; got != 0 {
		t.Fatalf("tasks_completed = %d, want 0", got)
	}
}

func TestTaskService_ListFilters(t *testing.T) {
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	svc, tasks, _ := newTaskFixture(base)
	tasks.tasks["a"] = models.Task{ID: "a", Title: "A", CreatedAt: base}
	tasks.tasks["b"] = models.Task{ID: "b", Title: "B", Completed: true, CreatedAt: base.Add(time.Minute)}
	ctx := context.Background()

	cases := []struct {
		filter string
		want   []string
	}{
		{"", []string{"b", "a"}},
		{"all", []string{"b", "a"}},
		{"active", []string{"a"}},
		{"Completed", []string{"b"}},
	}
	for _, c := range cases {
		got, err := svc.List(ctx, c.filter)
		if err != nil {
			t.Fatalf("List(%q): %v", c.filter, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("List(%q) = %+v, want ids %v", c.filter, got, c.want)
		}
		for i, id := range c.want {
			if got[i].ID != id {
				t.Fatalf("List(%q)[%d] = %s, want %s", c.filter, i, got[i].ID, id)
			}
		}
	}

	if _, err := svc.List(ctx, "overdue"); !errors.Is(err, ErrInvalidTaskFilter) {
		t.Fatalf("expected ErrInvalidTaskFilter, got %v", err)
	}
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	svc, _, _ := newTaskFixture(time.Now())
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: "Draft"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	updated, err := svc.Update(ctx, task.ID, TaskInput{Title: "Final", Description: "v2", Priority: "low", Shared: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Final" || !updated.Shared || updated.Priority != models.PriorityLow || !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := svc.Update(ctx, "missing", TaskInput{Title: "x"}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}
