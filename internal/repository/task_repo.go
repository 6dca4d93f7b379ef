package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lentora/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

const (
	insertTaskSQL = `
		INSERT INTO tasks (id, title, description, priority, completed, shared, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	updateTaskSQL = `
		UPDATE tasks SET title=?, description=?, priority=?, completed=?, shared=?, completed_at=?
		WHERE id=?
	`
	selectTaskColumns = `SELECT id, title, description, priority, completed, shared, created_at, completed_at FROM tasks`
	selectTaskByIDSQL = selectTaskColumns + ` WHERE id=?`
	deleteTaskSQL     = `DELETE FROM tasks WHERE id=?`
)

// ErrTaskNotFound is returned by Update when no row matches the task ID.
var ErrTaskNotFound = errors.New("task not found")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (models.Task, error) {
	var (
		t           models.Task
		completedAt sql.NullTime
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.Shared, &t.CreatedAt, &completedAt); err != nil {
		return models.Task{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	if completedAt.Valid {
		ts := completedAt.Time.UTC()
		t.CompletedAt = &ts
	}
	return t, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func (r *TaskSQLite) Create(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.ID, t.Title, t.Description, t.Priority, t.Completed, t.Shared,
		t.CreatedAt.UTC(), nullTime(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task %q: %w", t.ID, err)
	}
	return nil
}

func (r *TaskSQLite) Update(ctx context.Context, t models.Task) error {
	res, err := r.db.ExecContext(ctx, updateTaskSQL,
		t.Title, t.Description, t.Priority, t.Completed, t.Shared, nullTime(t.CompletedAt), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task %q: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for task %q: %w", t.ID, err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Get returns (nil, nil) when the task does not exist.
func (r *TaskSQLite) Get(ctx context.Context, id string) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTaskByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %q: %w", id, err)
	}
	return &t, nil
}

// List returns tasks newest first. A non-nil completed filters by state.
func (r *TaskSQLite) List(ctx context.Context, completed *bool) ([]models.Task, error) {
	q := selectTaskColumns
	var args []any
	if completed != nil {
		q += " WHERE completed = ?"
		args = append(args, *completed)
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete reports whether a row was removed.
func (r *TaskSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete task %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
