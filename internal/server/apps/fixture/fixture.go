// Package fixture implements the fixture responder: a health document on /health and a
// greeting on every other path, both JSON.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// App answers fixture requests. It holds only read-only startup values.
type App struct {
	name    string
	version string
	now     func() time.Time
}

// Option configures an App
type Option func(*App)

// WithClock replaces the wall clock used for health timestamps
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an App reporting the given name and version
func New(name, version string, opts ...Option) *App {
	a := &App{
		name:    name,
		version: version,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// String returns the app name
func (a *App) String() string {
	return a.name
}

// Health builds a fresh health document stamped with the current UTC time
func (a *App) Health() HealthResponse {
	return HealthResponse{
		Status:    StatusHealthy,
		App:       a.name,
		Version:   a.version,
		Timestamp: a.now().UTC().Format(time.RFC3339Nano),
	}
}

// Greeting builds the greeting document
func (a *App) Greeting() GreetingResponse {
	return GreetingResponse{
		Message: fmt.Sprintf("Hello from %s!", a.name),
		Version: a.version,
	}
}

// HandleHTTP serves GET only, any other method gets 501. The query string, headers and body are
// never read.
func (a *App) HandleHTTP(_ context.Context, w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		http.Error(w, "Unsupported method ("+r.Method+")", http.StatusNotImplemented)
		return nil
	}

	var body any
	if r.URL.Path == HealthPath {
		body = a.Health()
	} else {
		body = a.Greeting()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
