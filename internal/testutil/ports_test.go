package testutil

import (
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomPortConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	portChan := make(chan int, 20)

	for range 20 {
		wg.Go(func() {
			portChan <- GetRandomPort(t)
		})
	}

	wg.Wait()
	close(portChan)

	ports := make(map[int]bool)
	for port := range portChan {
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestOccupyPort(t *testing.T) {
	port := OccupyPort(t)

	_, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.Error(t, err, "port should still be held")
}

func TestThreadSafeBuffer(t *testing.T) {
	buf := &ThreadSafeBuffer{}
	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			_, err := buf.Write([]byte("x"))
			assert.NoError(t, err)
		})
	}
	wg.Wait()
	assert.Len(t, buf.String(), 10)

	buf.Reset()
	assert.Empty(t, buf.String())
}
