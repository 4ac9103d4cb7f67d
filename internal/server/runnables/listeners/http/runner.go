// Package http provides the HTTP listener that serves the fixture app under go-supervisor.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/atlanticdynamic/fixtureapp/internal/server/runnables/listeners/http/middleware/logger"
)

// ErrListenerBind is returned by Run when the listen address cannot be bound
var ErrListenerBind = errors.New("failed to bind listen address")

const (
	routeID      = "fixture"
	stateRunning = "Running"
)

// App is the request handler served on every path
type App interface {
	String() string
	HandleHTTP(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// serverImplementation abstracts the go-supervisor httpserver runnable
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// Runner serves one App on one address
type Runner struct {
	address string
	app     App
	server  serverImplementation
	// set once the wrapped server has been handed control, Stop is a no-op before that
	started atomic.Bool

	logger            *slog.Logger
	requestLogHandler slog.Handler
	timeouts          TimeoutOptions
	banner            string
	bannerAttrs       []any
}

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
	_ supervisor.Readiness = (*Runner)(nil)
)

// NewRunner creates a runner for app listening on address
func NewRunner(address string, app App, options ...Option) (*Runner, error) {
	if app == nil {
		return nil, errors.New("app cannot be nil")
	}
	if address == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	r := &Runner{
		address: address,
		app:     app,
		logger:  slog.Default().WithGroup("http.Runner"),
	}
	for _, option := range options {
		option(r)
	}
	if r.requestLogHandler == nil {
		r.requestLogHandler = slog.Default().Handler()
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(r.buildConfig),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	r.server = runner

	return r, nil
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("HTTPRunner[%s]", r.address)
}

// Run checks the address is free, logs the banner and serves until ctx is cancelled or Stop is called
func (r *Runner) Run(ctx context.Context) error {
	if err := CheckBind(r.address); err != nil {
		r.logger.Error("Cannot start HTTP listener", "address", r.address, "error", err)
		return err
	}

	if r.banner != "" {
		r.logger.Info(r.banner, r.bannerAttrs...)
	}
	r.logger.Debug("Starting HTTP server", "address", r.address, "app", r.app.String())

	r.started.Store(true)
	return r.server.Run(ctx)
}

// Stop stops the HTTP server. It returns immediately when Run never got past the bind check.
func (r *Runner) Stop() {
	if !r.started.Load() {
		r.logger.Debug("HTTP server was never started", "address", r.address)
		return
	}
	r.logger.Debug("Stopping HTTP server", "address", r.address)
	r.server.Stop()
}

// GetState returns the current state of the server
func (r *Runner) GetState() string {
	return r.server.GetState()
}

// IsReady reports whether the server is accepting connections
func (r *Runner) IsReady() bool {
	return r.server.IsReady()
}

// IsRunning returns whether the server is in the Running state
func (r *Runner) IsRunning() bool {
	return r.server.GetState() == stateRunning
}

// GetStateChan returns a channel that emits state changes
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.server.GetStateChan(ctx)
}

// buildConfig is the httpserver config callback
func (r *Runner) buildConfig() (*httpserver.Config, error) {
	routes, err := r.routes()
	if err != nil {
		return nil, err
	}

	options := []httpserver.ConfigOption{}
	if r.timeouts.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(r.timeouts.ReadTimeout))
	}
	if r.timeouts.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(r.timeouts.WriteTimeout))
	}
	if r.timeouts.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(r.timeouts.IdleTimeout))
	}
	if r.timeouts.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(r.timeouts.DrainTimeout))
	}

	// serve the route directly: the mux would redirect non-canonical paths before the app sees them
	options = append(options, httpserver.WithServerCreator(serverCreator(&routes[0])))

	cfg, err := httpserver.NewConfig(r.address, routes, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

// routes builds the single catch-all route, the app dispatches on the path itself
func (r *Runner) routes() (httpserver.Routes, error) {
	handler := func(w http.ResponseWriter, req *http.Request) {
		if err := r.app.HandleHTTP(req.Context(), w, req); err != nil {
			r.logger.Error("Request handling failed",
				"app", r.app.String(),
				"path", req.URL.Path,
				"error", err)
		}
	}

	route, err := httpserver.NewRouteFromHandlerFunc(
		routeID,
		"/",
		handler,
		logger.New(r.requestLogHandler).Middleware(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return httpserver.Routes{*route}, nil
}

// serverCreator builds the http.Server around handler, ignoring the mux go-supervisor assembles
func serverCreator(handler http.Handler) httpserver.ServerCreator {
	return func(addr string, _ http.Handler, cfg *httpserver.Config) httpserver.HttpServer {
		return &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
	}
}

// CheckBind fails fast when something already owns the address
func CheckBind(address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListenerBind, address, err)
	}
	return ln.Close()
}
