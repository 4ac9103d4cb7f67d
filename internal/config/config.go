// Package config holds the process-wide fixture settings. They are read once at startup from
// built-in defaults, an optional TOML file and the environment, and never mutated afterwards.
package config

import (
	"net"
	"strconv"
)

// Profile selects which of the fixture variants is being served
type Profile string

const (
	// ProfileStandard takes its port from PORT, defaulting to 8080
	ProfileStandard Profile = "standard"
	// ProfileFlask pins the port to 5000 and ignores any override
	ProfileFlask Profile = "flask"
)

const (
	DefaultPort     = 8080
	FlaskPort       = 5000
	DefaultAppName  = "python-app"
	DefaultVersion  = "1.0.0"
	DefaultBindHost = "0.0.0.0"
)

// Environment variable names
const (
	EnvPort      = "PORT"
	EnvAppName   = "APP_NAME"
	EnvVersion   = "VERSION"
	EnvProfile   = "PROFILE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLogOutput = "LOG_OUTPUT"
)

// Config is the effective configuration of the fixture responder
type Config struct {
	Profile Profile `validate:"oneof=standard flask"`
	Port    int     `validate:"min=1,max=65535"`
	AppName string  `validate:"required" name:"app_name"`
	Version string  `validate:"required" name:"version"`
	Logging LoggingConfig
	HTTP    HTTPConfig
}

// HTTPConfig carries listener timeouts. Zero values leave the server defaults in place.
type HTTPConfig struct {
	ReadTimeout  Duration `validate:"gte=0" name:"http.read_timeout"`
	WriteTimeout Duration `validate:"gte=0" name:"http.write_timeout"`
	IdleTimeout  Duration `validate:"gte=0" name:"http.idle_timeout"`
	DrainTimeout Duration `validate:"gte=0" name:"http.drain_timeout"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Profile: ProfileStandard,
		Port:    DefaultPort,
		AppName: DefaultAppName,
		Version: DefaultVersion,
		Logging: LoggingConfig{
			Format: LogFormatText,
			Level:  LogLevelInfo,
			Output: "stdout",
		},
	}
}

// ListenAddr returns the address the responder binds, on all interfaces
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(DefaultBindHost, strconv.Itoa(c.Port))
}

// LocalURL returns the base URL for reaching the responder from the same host
func (c *Config) LocalURL() string {
	return "http://" + net.JoinHostPort("localhost", strconv.Itoa(c.Port))
}

// pinPort enforces the profile's fixed port, if it has one
func (c *Config) pinPort() {
	if c.Profile == ProfileFlask {
		c.Port = FlaskPort
	}
}
