package tcp

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/solo/http/status"
	"github.com/stretchr/testify/require"
)

func TestServerStop(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	server := NewServer(listener, func(net.Conn) {})
	stopCh := make(chan error)
	go func() {
		stopCh <- server.Start()
	}()

	require.NoError(t, server.Stop())
	require.Equal(t, status.ErrShutdown, <-stopCh)
}

func TestServerSequential(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	var (
		inFlight atomic.Int32
		overlap  atomic.Bool
	)
	entered := make(chan struct{}, 2)
	order := make(chan byte, 2)

	server := NewServer(listener, func(conn net.Conn) {
		entered <- struct{}{}

		if inFlight.Add(1) > 1 {
			overlap.Store(true)
		}
		defer inFlight.Add(-1)

		buff := make([]byte, 1)
		if _, err := conn.Read(buff); err == nil {
			// linger a bit so an overlapping handler would be caught
			time.Sleep(20 * time.Millisecond)
			order <- buff[0]
		}

		_ = conn.Close()
	})

	go func() { _ = server.Start() }()
	defer func() { _ = server.Stop() }()

	first, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer first.Close()
	_, err = first.Write([]byte{'a'})
	require.NoError(t, err)
	<-entered

	second, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer second.Close()
	_, err = second.Write([]byte{'b'})
	require.NoError(t, err)

	require.Equal(t, byte('a'), <-order, "first accepted connection must complete first")
	require.Equal(t, byte('b'), <-order)
	require.False(t, overlap.Load(), "handlers must never run concurrently")
}
