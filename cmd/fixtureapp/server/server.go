package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/atlanticdynamic/fixtureapp/internal/config"
	"github.com/atlanticdynamic/fixtureapp/internal/server/apps/fixture"
	"github.com/atlanticdynamic/fixtureapp/internal/server/runnables/listeners/http"
)

// Option configures Run
type Option func(*options)

type options struct {
	requestLogHandler slog.Handler
}

// WithRequestLogHandler sends the per-request lines to handler instead of the logger's handler
func WithRequestLogHandler(handler slog.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.requestLogHandler = handler
		}
	}
}

// Run serves the fixture app described by cfg until ctx is cancelled or the process receives
// SIGINT/SIGTERM. It returns an error if the listener cannot be started.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config, opts ...Option) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logHandler := logger.Handler()

	o := &options{requestLogHandler: logHandler}
	for _, opt := range opts {
		opt(o)
	}

	if err := http.CheckBind(cfg.ListenAddr()); err != nil {
		logger.Error("Cannot start HTTP listener", "address", cfg.ListenAddr(), "error", err)
		return err
	}

	app := fixture.New(cfg.AppName, cfg.Version)

	httpRunner, err := http.NewRunner(
		cfg.ListenAddr(),
		app,
		http.WithLogger(logger.With("component", "http")),
		http.WithRequestLogHandler(o.requestLogHandler),
		http.WithTimeouts(http.TimeoutOptions{
			ReadTimeout:  cfg.HTTP.ReadTimeout.AsDuration(),
			WriteTimeout: cfg.HTTP.WriteTimeout.AsDuration(),
			IdleTimeout:  cfg.HTTP.IdleTimeout.AsDuration(),
			DrainTimeout: cfg.HTTP.DrainTimeout.AsDuration(),
		}),
		http.WithBanner(
			Banner(cfg),
			"profile", string(cfg.Profile),
			"address", cfg.ListenAddr(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener runner: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(httpRunner),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}

// Banner is the startup line announcing what is being served and where
func Banner(cfg *config.Config) string {
	return fmt.Sprintf("%s v%s running on port %d", cfg.AppName, cfg.Version, cfg.Port)
}
