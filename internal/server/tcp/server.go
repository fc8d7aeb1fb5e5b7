package tcp

import (
	"errors"
	"log"
	"net"
	"sync/atomic"

	"github.com/indigo-web/solo/http/status"
)

type OnConn func(conn net.Conn)

// Server accepts connections in strict FIFO order and handles them one at a
// time: the callback for connection N returns before connection N+1 is
// accepted. There is deliberately no per-connection goroutine
type Server struct {
	sock     net.Listener
	onConn   OnConn
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
	}
}

// Start runs the accept loop until the listener is closed. Per-attempt accept
// failures are logged and the loop keeps going; only a closed listener ends it
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() || errors.Is(err, net.ErrClosed) {
				return status.ErrShutdown
			}

			log.Printf("tcp: accept: %s", err)
			continue
		}

		s.onConn(conn)
	}
}

// Stop closes the listener, which makes Start return. The connection being
// handled at that moment is served till the end, as the loop only notices the
// closed listener on its next accept
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}
