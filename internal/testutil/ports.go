// Package testutil holds helpers shared by the listener and server tests.
package testutil

import (
	"net"
	"sync"
	"testing"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that no other caller in this test binary has been handed.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	for {
		p := freePort(t)

		portMutex.Lock()
		_, taken := usedPorts[p]
		if !taken {
			usedPorts[p] = struct{}{}
		}
		portMutex.Unlock()

		if !taken {
			return p
		}
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to get random port: %v", err)
	}
	p := listener.Addr().(*net.TCPAddr).Port
	if err := listener.Close(); err != nil {
		t.Fatalf("Failed to close listener: %v", err)
	}
	return p
}

// OccupyPort binds a loopback port and keeps it bound until the test ends.
func OccupyPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to occupy port: %v", err)
	}
	t.Cleanup(func() { _ = listener.Close() })
	return listener.Addr().(*net.TCPAddr).Port
}
