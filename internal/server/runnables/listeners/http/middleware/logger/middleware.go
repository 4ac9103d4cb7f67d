// Package logger provides the request logging middleware: one log record per request,
// written after the handler chain has finished.
package logger

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrDuration  = "duration"
	attrClientIP  = "client_ip"
	attrRequestID = "request_id"
	attrBodySize  = "body_size"

	logMessage = "HTTP request"

	// RequestIDHeader carries the request ID in both directions
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLength = 128
)

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// RequestLogger writes one record per request
type RequestLogger struct {
	logger lgr
	newID  func() (uuid.UUID, error)
}

// Option configures a RequestLogger
type Option func(*RequestLogger)

// WithIDGenerator replaces the request ID source
func WithIDGenerator(gen func() (uuid.UUID, error)) Option {
	return func(l *RequestLogger) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// New creates a RequestLogger writing to handler. A nil handler uses the default slog handler.
func New(handler slog.Handler, opts ...Option) *RequestLogger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	l := &RequestLogger{
		logger: slog.New(handler),
		newID:  uuid.NewV7,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Middleware returns the middleware function
func (l *RequestLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		requestID := l.requestID(r)
		if requestID != "" {
			rp.Writer().Header().Set(RequestIDHeader, requestID)
		}

		rp.Next()

		rw := rp.Writer()
		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []slog.Attr{
			slog.String(attrMethod, r.Method),
			slog.String(attrPath, r.URL.Path),
			slog.Int(attrStatus, status),
			slog.Duration(attrDuration, time.Since(start)),
			slog.String(attrClientIP, clientIP(r)),
			slog.Int(attrBodySize, rw.Size()),
		}
		if requestID != "" {
			attrs = append(attrs, slog.String(attrRequestID, requestID))
		}

		l.logger.LogAttrs(r.Context(), levelForStatus(status), logMessage, attrs...)
	}
}

// requestID reuses a caller supplied ID when it is sane, otherwise mints a new one
func (l *RequestLogger) requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" && len(id) <= maxRequestIDLength {
		return id
	}
	id, err := l.newID()
	if err != nil {
		return ""
	}
	return id.String()
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
