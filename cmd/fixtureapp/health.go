package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/fixtureapp/internal/config"
	"github.com/atlanticdynamic/fixtureapp/internal/server/apps/fixture"
)

const defaultHealthTimeout = 2 * time.Second

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check the health endpoint of a running responder, exits 1 when it is not healthy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "Health URL to check, defaults to the configured local port",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout",
				Value: defaultHealthTimeout,
			},
		},
		Action: healthAction,
	}
}

func healthAction(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	if url == "" {
		cfg, err := config.Load(cmd.String("config"), os.LookupEnv)
		if err != nil {
			return cli.Exit(err, 1)
		}
		url = cfg.LocalURL() + fixture.HealthPath
	}

	if !checkHealth(ctx, stdout(cmd), url, cmd.Duration("timeout")) {
		return cli.Exit("", 1)
	}
	return nil
}

// checkHealth GETs url and reports the outcome on w. Only a 200 counts as healthy.
func checkHealth(ctx context.Context, w io.Writer, url string, timeout time.Duration) bool {
	if w == nil {
		w = os.Stdout
	}
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(w, "Health check: FAILED (%v)\n", err)
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(w, "Health check: FAILED (%v)\n", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(w, "Health check: FAILED (status %d)\n", resp.StatusCode)
		return false
	}

	fmt.Fprintln(w, "Health check: OK")
	return true
}
