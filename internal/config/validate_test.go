package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantErrs []error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "lowest port",
			mutate: func(c *Config) { c.Port = 1 },
		},
		{
			name:   "highest port",
			mutate: func(c *Config) { c.Port = 65535 },
		},
		{
			name:   "warning alias",
			mutate: func(c *Config) { c.Logging.Level = "warning" },
		},
		{
			name:     "zero port",
			mutate:   func(c *Config) { c.Port = 0 },
			wantErrs: []error{ErrInvalidPort},
		},
		{
			name:     "unknown log level",
			mutate:   func(c *Config) { c.Logging.Level = "loud" },
			wantErrs: []error{ErrInvalidLogLevel},
		},
		{
			name: "every problem is reported",
			mutate: func(c *Config) {
				c.Profile = "rails"
				c.Port = -1
				c.AppName = ""
				c.Version = ""
				c.Logging.Format = "yaml"
				c.HTTP.ReadTimeout = -1
			},
			wantErrs: []error{
				ErrUnknownProfile,
				ErrInvalidPort,
				ErrEmptyField,
				ErrInvalidLogFormat,
				ErrInvalidValue,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidate_NamesFileKeys(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.AppName = ""
	cfg.HTTP.IdleTimeout = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app_name")
	assert.Contains(t, err.Error(), "http.idle_timeout is negative")
	assert.NotContains(t, err.Error(), "AppName")
}
