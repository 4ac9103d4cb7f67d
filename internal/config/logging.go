package config

import "strings"

// LoggingConfig contains logging-related configuration options
type LoggingConfig struct {
	Format LogFormat
	Level  LogLevel
	Output string
}

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (f LogFormat) String() string {
	return string(f)
}

func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogLevel is valid. "warning" is accepted as an alias of warn.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "warning":
		return true
	default:
		return false
	}
}

func normalizeFormat(s string) LogFormat {
	return LogFormat(strings.ToLower(strings.TrimSpace(s)))
}

func normalizeLevel(s string) LogLevel {
	return LogLevel(strings.ToLower(strings.TrimSpace(s)))
}

// RequestLevel is the level the request log handler runs at. It never goes above info, so
// raising LOG_LEVEL quiets the service's own messages but keeps one line per request.
func (c LoggingConfig) RequestLevel() LogLevel {
	switch c.Level {
	case LogLevelTrace, LogLevelDebug:
		return c.Level
	default:
		return LogLevelInfo
	}
}
