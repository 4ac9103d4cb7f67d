package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/fixtureapp/internal/config"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate the effective configuration (file plus environment)",
		ArgsUsage: "[config.toml]",
		Action:    validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" && cmd.Args().Len() > 0 {
		configPath = cmd.Args().Get(0)
	}

	if err := validateConfig(stdout(cmd), configPath, os.LookupEnv); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func validateConfig(w io.Writer, configPath string, lookup config.LookupFunc) error {
	if w == nil {
		w = os.Stdout
	}

	cfg, err := config.Load(configPath, lookup)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Configuration is valid")
	fmt.Fprintln(w)
	fmt.Fprintln(w, cfg)
	return nil
}
