package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigTree(t *testing.T) {
	t.Parallel()

	t.Run("standard profile", func(t *testing.T) {
		cfg := Default()
		cfg.AppName = "tree-app"
		cfg.HTTP.DrainTimeout = Duration(5 * time.Second)

		out := cfg.String()
		assert.Contains(t, out, "Fixture Config (standard profile)")
		assert.Contains(t, out, "tree-app")
		assert.Contains(t, out, "1.0.0")
		assert.Contains(t, out, "0.0.0.0:8080")
		assert.Contains(t, out, "Drain timeout")
		assert.Contains(t, out, "5s")
		assert.NotContains(t, out, "Read timeout")
		assert.NotContains(t, out, "(pinned)")
		assert.Contains(t, out, "stdout")
		assert.Contains(t, out, "Request lines")
	})

	t.Run("flask profile marks the port as pinned", func(t *testing.T) {
		cfg := Default()
		cfg.Profile = ProfileFlask
		cfg.pinPort()

		out := ConfigTree(cfg)
		assert.Contains(t, out, "flask profile")
		assert.Contains(t, out, "(pinned)")
		assert.Contains(t, out, "5000")
	})
}
