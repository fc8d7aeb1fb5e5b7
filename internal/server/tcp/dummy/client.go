// Package dummy provides in-memory tcp.Client implementations for tests
package dummy

import (
	"io"
	"net"
)

// Client replays the pieces of data it was initialised with, one piece per
// read, then reports EOF. Everything written into it is recorded
type Client struct {
	data    [][]byte
	pointer int
	written []byte
	closed  bool
}

func NewClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

func (c *Client) Read() ([]byte, error) {
	if c.closed || c.pointer >= len(c.data) {
		return nil, io.EOF
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Written returns everything accumulated by Write so far
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Closed() bool {
	return c.closed
}
