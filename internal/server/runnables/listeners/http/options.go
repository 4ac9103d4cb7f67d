package http

import (
	"log/slog"
	"time"
)

type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner's own messages.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("http.Runner")
		}
	}
}

// WithLogger sets a logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRequestLogHandler sets where the per-request log lines go. Defaults to the slog default handler.
func WithRequestLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.requestLogHandler = handler
		}
	}
}

// WithTimeouts sets the listener timeouts, zero values keep the server defaults.
func WithTimeouts(timeouts TimeoutOptions) Option {
	return func(r *Runner) {
		r.timeouts = timeouts
	}
}

// WithBanner sets the message logged once the listen address is confirmed free.
func WithBanner(msg string, attrs ...any) Option {
	return func(r *Runner) {
		r.banner = msg
		r.bannerAttrs = attrs
	}
}

// TimeoutOptions contains timeout configuration for the HTTP server
type TimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}
