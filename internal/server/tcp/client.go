package tcp

import (
	"net"
)

// Client is a handle to one accepted connection. It is exclusively owned by
// the handler it was given to and must be closed on every exit path
type Client interface {
	// Read performs exactly one bounded read and returns the bytes received.
	// The returned slice is valid until the next Read
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn net.Conn
	buff []byte
}

// NewClient wraps a connection. The buffer caps how much of a request is ever
// read: anything beyond its capacity is silently truncated, there is no
// reassembly loop
func NewClient(conn net.Conn, buff []byte) Client {
	return &client{
		conn: conn,
		buff: buff,
	}
}

func (c *client) Read() ([]byte, error) {
	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
