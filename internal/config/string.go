package config

import (
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/fixtureapp/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Fixture Config (%s profile)", cfg.Profile)))

	app := fancy.BranchNode("App", fancy.AppStyle.Render(cfg.AppName))
	app.Child(fancy.KeyValue("Name", cfg.AppName))
	app.Child(fancy.KeyValue("Version", cfg.Version))
	t.Child(app)

	portNote := ""
	if cfg.Profile == ProfileFlask {
		portNote = "(pinned)"
	}
	listener := fancy.BranchNode("Listener", portNote)
	listener.Child(fancy.KeyValue("Address", cfg.ListenAddr()))
	listener.Child(fancy.KeyValue("Port", strconv.Itoa(cfg.Port)))
	for _, to := range []struct {
		name  string
		value Duration
	}{
		{"Read timeout", cfg.HTTP.ReadTimeout},
		{"Write timeout", cfg.HTTP.WriteTimeout},
		{"Idle timeout", cfg.HTTP.IdleTimeout},
		{"Drain timeout", cfg.HTTP.DrainTimeout},
	} {
		if to.value > 0 {
			listener.Child(fancy.KeyValue(to.name, to.value.String()))
		}
	}
	t.Child(listener)

	logging := fancy.BranchNode("Logging", "")
	logging.Child(fancy.KeyValue("Format", cfg.Logging.Format.String()))
	logging.Child(fancy.KeyValue("Level", cfg.Logging.Level.String()))
	logging.Child(fancy.KeyValue("Request lines", cfg.Logging.RequestLevel().String()))
	logging.Child(fancy.KeyValue("Output", cfg.Logging.Output))
	t.Child(logging)

	return t.String()
}
