package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(stdout(cmd), "fixtureapp version %s\n", cmd.Root().Version)
			return nil
		},
	}
}
