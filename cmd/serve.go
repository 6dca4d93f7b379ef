package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lentora/docs"
	"lentora/internal/handlers"
	"lentora/internal/logger"
	"lentora/internal/models"
	"lentora/internal/repository"
	"lentora/internal/repository/db"
	"lentora/internal/server"
	"lentora/internal/service"
	"lentora/internal/timer"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, WebSocket stream and focus timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Errorw("failed to init sqlite", "err", err)
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// context for background goroutines
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// wire dependencies
	repos := repository.NewRepository(conn)
	defaults := settingsFromConfig(viper.GetViper())
	current, err := startupSettings(ctx, repos.SettingsRepo, defaults, log)
	if err != nil {
		return err
	}

	pt := timer.New(current, timer.Options{
		Tick:           viper.GetDuration("timer.tick"),
		AutoStartDelay: viper.GetDuration("timer.auto_start_delay"),
	})
	defer pt.Close()

	services := service.NewService(repos, pt, service.Config{
		Defaults:   defaults,
		SigningKey: signingKey(log),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	// today's counters survive a restart
	if err := services.Rollover.Restore(ctx); err != nil {
		log.Errorw("failed to restore daily counters", "err", err)
	}

	// event log + stats writer, and the midnight reset
	go services.Recorder.Run(ctx)
	go services.Rollover.Run(ctx, viper.GetDuration("stats.rollover_check"))

	// start HTTP server
	srv := server.New(server.Config{
		ReadHeaderTimeout: viper.GetDuration("server.read_header_timeout"),
		WriteTimeout:      viper.GetDuration("server.write_timeout"),
		IdleTimeout:       viper.GetDuration("server.idle_timeout"),
	})
	errCh := runHTTPServer(srv, viper.GetString("port"), apiHandler, log)
	log.Infow("lentora_started", "port", viper.GetString("port"), "db", viper.GetString("db.path"))

	// graceful shutdown
	return waitForShutdown(ctx, cancel, pt, srv, errCh, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "lentora.db")
		dbPath = "lentora.db"
	}
	return db.InitDB(dbPath)
}

// settingsFromConfig builds the factory settings from the timer.* keys.
func settingsFromConfig(v *viper.Viper) models.Settings {
	return models.Settings{
		FocusMinutes:      v.GetInt("timer.focus_minutes"),
		ShortBreakMinutes: v.GetInt("timer.short_break_minutes"),
		LongBreakMinutes:  v.GetInt("timer.long_break_minutes"),
		LongBreakInterval: v.GetInt("timer.long_break_interval"),
		AutoStartBreaks:   v.GetBool("timer.auto_start_breaks"),
		AutoStartFocus:    v.GetBool("timer.auto_start_focus"),
		SoundEnabled:      v.GetBool("timer.sound_enabled"),
	}
}

// startupSettings prefers the persisted row over config defaults.
func startupSettings(ctx context.Context, repo repository.SettingsRepo, defaults models.Settings, log *logger.Logger) (models.Settings, error) {
	st, ok, err := repo.Load(ctx)
	if err != nil {
		log.Errorw("failed to load settings", "err", err)
		return models.Settings{}, err
	}
	if !ok {
		log.Infow("no saved settings; using config defaults")
		return defaults, nil
	}
	return st, nil
}

// signingKey returns auth.signing_key, or a per-process random key so that
// an unconfigured server still refuses forged tokens.
func signingKey(log *logger.Logger) string {
	if key := viper.GetString("auth.signing_key"); key != "" {
		return key
	}
	log.Warnw("auth.signing_key not set; tokens will not survive a restart")
	return uuid.NewString() + uuid.NewString()
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Errorw("error starting server", "err", err)
			errCh <- err
		}
	}()
	return errCh
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(ctx context.Context, cancel context.CancelFunc, pt *timer.PhaseTimer, srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	// closes every subscription, which ends the WebSocket streams
	pt.Close()
	log.Infow("timer_closed", "dropped_events", pt.Dropped())

	// allow in-flight requests to complete
	timeout := viper.GetDuration("server.shutdown_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return runErr
}
