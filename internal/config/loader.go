package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LookupFunc reads one environment variable, os.LookupEnv has this shape
type LookupFunc func(key string) (string, bool)

// fileConfig is the on-disk TOML shape. Pointers distinguish "absent" from "set to empty".
type fileConfig struct {
	Profile string  `toml:"profile"`
	Port    *int    `toml:"port"`
	AppName *string `toml:"app_name"`
	Version *string `toml:"version"`

	Logging struct {
		Format string `toml:"format"`
		Level  string `toml:"level"`
		Output string `toml:"output"`
	} `toml:"logging"`

	HTTP struct {
		ReadTimeout  Duration `toml:"read_timeout"`
		WriteTimeout Duration `toml:"write_timeout"`
		IdleTimeout  Duration `toml:"idle_timeout"`
		DrainTimeout Duration `toml:"drain_timeout"`
	} `toml:"http"`
}

// Load builds the effective configuration: defaults, then the TOML file at path (skipped when
// path is empty), then the environment. The result is validated before it is returned.
func Load(path string, lookup LookupFunc) (*Config, error) {
	if path == "" {
		return LoadFromReader(nil, lookup)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	defer func() { _ = f.Close() }()

	return LoadFromReader(f, lookup)
}

// LoadFromBytes is Load for TOML content already in memory
func LoadFromBytes(data []byte, lookup LookupFunc) (*Config, error) {
	return LoadFromReader(bytes.NewReader(data), lookup)
}

// LoadFromReader is Load for TOML content read from r. A nil reader means no file.
func LoadFromReader(r io.Reader, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if r != nil {
		fc, err := decodeFile(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}
		fc.applyTo(cfg)
	}

	if lookup == nil {
		lookup = noEnv
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg.pinPort()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}
	return cfg, nil
}

func decodeFile(r io.Reader) (*fileConfig, error) {
	fc := &fileConfig{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys in config file: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return fc, nil
}

func (fc *fileConfig) applyTo(cfg *Config) {
	if fc.Profile != "" {
		cfg.Profile = Profile(strings.ToLower(fc.Profile))
	}
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.AppName != nil {
		cfg.AppName = *fc.AppName
	}
	if fc.Version != nil {
		cfg.Version = *fc.Version
	}
	if fc.Logging.Format != "" {
		cfg.Logging.Format = normalizeFormat(fc.Logging.Format)
	}
	if fc.Logging.Level != "" {
		cfg.Logging.Level = normalizeLevel(fc.Logging.Level)
	}
	if fc.Logging.Output != "" {
		cfg.Logging.Output = fc.Logging.Output
	}
	cfg.HTTP = HTTPConfig{
		ReadTimeout:  fc.HTTP.ReadTimeout,
		WriteTimeout: fc.HTTP.WriteTimeout,
		IdleTimeout:  fc.HTTP.IdleTimeout,
		DrainTimeout: fc.HTTP.DrainTimeout,
	}
}

// applyEnv overlays the environment. Empty values count as unset.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvProfile); ok {
		cfg.Profile = Profile(strings.ToLower(v))
	}
	if v, ok := get(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidPort, EnvPort, v)
		}
		cfg.Port = port
	}
	if v, ok := get(EnvAppName); ok {
		cfg.AppName = v
	}
	if v, ok := get(EnvVersion); ok {
		cfg.Version = v
	}
	if v, ok := get(EnvLogFormat); ok {
		cfg.Logging.Format = normalizeFormat(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Logging.Level = normalizeLevel(v)
	}
	if v, ok := get(EnvLogOutput); ok {
		cfg.Logging.Output = v
	}
	return nil
}

func noEnv(string) (string, bool) { return "", false }
