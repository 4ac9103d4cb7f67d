package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/fixtureapp/cmd/fixtureapp/server"
	"github.com/atlanticdynamic/fixtureapp/internal/config"
	"github.com/atlanticdynamic/fixtureapp/internal/logging"
	"github.com/atlanticdynamic/fixtureapp/internal/logging/writers"
)

const envConfigPath = "FIXTURE_CONFIG"

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to an optional TOML configuration file, environment variables override it",
			Sources: cli.EnvVars(envConfigPath),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the fixture responder",
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	if err := serve(ctx, cmd.String("config"), os.LookupEnv); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// serve loads the configuration, sets up the default logger and blocks until shutdown
func serve(ctx context.Context, configPath string, lookup config.LookupFunc) error {
	cfg, err := config.Load(configPath, lookup)
	if err != nil {
		return err
	}

	out, err := writers.CreateWriter(cfg.Logging.Output)
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}
	defer func() { _ = out.Close() }()

	logger := logging.SetupLogger(cfg.Logging.Format.String(), cfg.Logging.Level.String(), out)
	logger.Debug("Loaded configuration", "profile", cfg.Profile, "port", cfg.Port, "config", configPath)

	requestLog := logging.SetupHandler(cfg.Logging.Format.String(), cfg.Logging.RequestLevel().String(), out)

	return server.Run(ctx, logger, cfg, server.WithRequestLogHandler(requestLog))
}
