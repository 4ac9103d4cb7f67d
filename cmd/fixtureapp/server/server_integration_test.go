//go:build integration
// +build integration

package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/fixtureapp/internal/config"
	"github.com/atlanticdynamic/fixtureapp/internal/logging"
	"github.com/atlanticdynamic/fixtureapp/internal/testutil"
)

func TestRun_ServesUntilCancelled(t *testing.T) {
	port := testutil.GetRandomPort(t)
	cfg, err := config.LoadFromBytes([]byte(`
app_name = "orders"
version = "3.1.4"

[http]
drain_timeout = "1s"
`), func(key string) (string, bool) {
		if key == config.EnvPort {
			return fmt.Sprintf("%d", port), true
		}
		return "", false
	})
	require.NoError(t, err)

	buf := &testutil.ThreadSafeBuffer{}
	logger := logging.SetupLogger("text", "info", buf)
	requestLog := &testutil.ThreadSafeBuffer{}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Second)
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, logger, cfg, WithRequestLogHandler(logging.SetupHandlerText("info", requestLog)))
	}()

	url := fmt.Sprintf("http://localhost:%d/health", port)
	client := &http.Client{Timeout: 2 * time.Second}
	var body string
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 25*time.Millisecond)

	assert.Contains(t, body, `"app":"orders"`)
	assert.Contains(t, body, `"version":"3.1.4"`)
	assert.Contains(t, buf.String(), Banner(cfg))
	assert.Contains(t, requestLog.String(), "path=/health")
	assert.NotContains(t, buf.String(), "HTTP request", "request lines go to the request handler")

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down after cancel")
	}

	logs := buf.String()
	assert.Contains(t, logs, "Server shutdown complete")
	assert.Equal(t, 1, strings.Count(logs, Banner(cfg)))
}
