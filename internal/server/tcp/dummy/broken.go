package dummy

import (
	"errors"
	"net"
)

var errBrokenPipe = errors.New("broken pipe")

// BrokenClient fails every I/O operation. Used to exercise connection-fatal
// error paths
type BrokenClient struct {
	FailRead  bool
	FailWrite bool
	written   []byte
	closed    bool
}

func (b *BrokenClient) Read() ([]byte, error) {
	if b.FailRead {
		return nil, errBrokenPipe
	}

	return []byte("GET / HTTP/1.1\r\n\r\n"), nil
}

func (b *BrokenClient) Write(data []byte) error {
	if b.FailWrite {
		return errBrokenPipe
	}

	b.written = append(b.written, data...)

	return nil
}

func (b *BrokenClient) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

func (b *BrokenClient) Close() error {
	b.closed = true
	return nil
}

func (b *BrokenClient) Closed() bool {
	return b.closed
}

func (b *BrokenClient) Written() []byte {
	return b.written
}
