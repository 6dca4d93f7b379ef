package repository

import (
	"context"
	"database/sql"
	"time"

	"lentora/internal/models"
)

type Authorization interface {
	Create(name, email, hash string) (int, error)
	GetByEmail(email string) (*models.User, error)
}

type SettingsRepo interface {
	Save(ctx context.Context, s models.Settings) error
	Load(ctx context.Context) (models.Settings, bool, error)
}

type StatsRepo interface {
	Load(ctx context.Context, day string) (models.DailyStats, error)
	SaveCounters(ctx context.Context, day string, c models.DailyCounters) error
	AddTasksCompleted(ctx context.Context, day string, delta int) error
	Range(ctx context.Context, fromDay, toDay string) ([]models.DailyStats, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.TimerEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.TimerEvent, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t models.Task) error
	Update(ctx context.Context, t models.Task) error
	Get(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, completed *bool) ([]models.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type InviteRepo interface {
	Create(ctx context.Context, inv models.Invite) error
	List(ctx context.Context) ([]models.Invite, error)
}

type Repository struct {
	SettingsRepo SettingsRepo
	StatsRepo    StatsRepo
	EventRepo    EventRepo
	TaskRepo     TaskRepo
	InviteRepo   InviteRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SettingsRepo: NewSettingsSQLite(db),
		StatsRepo:    NewStatsSQLite(db),
		EventRepo:    NewEventSQLite(db),
		TaskRepo:     NewTaskSQLite(db),
		InviteRepo:   NewInviteSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
