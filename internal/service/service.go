package service

import (
	"context"
	"time"

	"lentora/internal/logger"
	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/timer"
)

type Authorization interface {
	SignUp(name, email, password string) (int, error)
	GenerateToken(email, password string) (string, error)
	GuestToken() (string, error)
	ParseToken(accessToken string) (int, error)
}

// Timer exposes the focus timer controls to the HTTP layer.
type Timer interface {
	State() models.TimerState
	Start()
	Pause()
	Toggle()
	Reset()
	Skip()
	ChangePhase(phase string, confirm bool) error
	Subscribe(buffer int) (<-chan timer.Event, func())
}

// Settings reads and writes the persisted timer configuration.
type Settings interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
	ExportYAML(ctx context.Context) ([]byte, error)
	ImportYAML(ctx context.Context, data []byte) (models.Settings, error)
}

type Stats interface {
	Today(ctx context.Context) (models.DailyStats, error)
	Range(ctx context.Context, from, to string) ([]models.DailyStats, error)
}

type Tasks interface {
	List(ctx context.Context, filter string) ([]models.Task, error)
	Create(ctx context.Context, in TaskInput) (models.Task, error)
	Update(ctx context.Context, id string, in TaskInput) (models.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (models.Task, error)
	Delete(ctx context.Context, id string) error
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.TimerEvent, error)
}

type Invites interface {
	Send(ctx context.Context, email, message string) (models.Invite, error)
	List(ctx context.Context) ([]models.Invite, error)
}

type Quotes interface {
	Quote() string
	Message() string
}

// Recorder consumes timer events until ctx is canceled.
type Recorder interface {
	Run(ctx context.Context)
}

// Rollover resets the daily counters when the local date changes.
// Stop via context cancellation in main() for graceful shutdown.
type Rollover interface {
	Restore(ctx context.Context) error
	Run(ctx context.Context, tick time.Duration)
}

// Config carries the values main() reads from viper.
type Config struct {
	Defaults   models.Settings
	SigningKey string
	TokenTTL   time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Timer
	Settings
	Stats
	Tasks
	EventLog
	Invites
	Quotes
	Authorization
	Recorder
	Rollover
}

// NewService wires the repository layer and the running PhaseTimer into
// concrete services.
func NewService(repos *repository.Repository, pt *timer.PhaseTimer, cfg Config, log *logger.Logger) *Service {
	quotes := NewQuoteService()
	return &Service{
		Timer:         NewTimerService(pt),
		Settings:      NewSettingsService(repos.SettingsRepo, pt, cfg.Defaults),
		Stats:         NewStatsService(repos.StatsRepo, pt),
		Tasks:         NewTaskService(repos.TaskRepo, repos.StatsRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Invites:       NewInviteService(repos.InviteRepo),
		Quotes:        quotes,
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
		Recorder:      NewRecorderService(pt, repos.EventRepo, repos.StatsRepo, quotes, log),
		Rollover:      NewRolloverService(pt, repos.StatsRepo, repos.EventRepo, log),
	}
}

// dayLayout is the key format of daily statistics rows.
const dayLayout = "2006-01-02"

func dayOf(t time.Time) string {
	return t.Local().Format(dayLayout)
}
