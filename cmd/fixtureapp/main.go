package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "fixtureapp",
		Version: Version,
		Usage:   "Minimal HTTP responder used as a scan and deployment fixture",
		// the bare binary serves, so container images need no arguments
		Flags:  configFlags(),
		Action: serveAction,
		Commands: []*cli.Command{
			serveCmd(),
			healthCmd(),
			validateCmd(),
			versionCmd(),
		},
	}
}

// stdout is where commands print their results
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
