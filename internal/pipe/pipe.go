// Package pipe owns the single duplex connection to the antivirus
// service endpoint and the blocking one-write-one-read exchange on it.
package pipe

import (
	"errors"
	"fmt"
	"net"
	"sync"
)

// readBufferSize bounds a service reply. One logical response is one
// OS-level read; larger replies are outside the protocol.
const readBufferSize = 4096

// ErrClosed is returned by Exchange once the connection is released.
var ErrClosed = errors.New("pipe: connection closed")

// Conn is the exclusively-owned connection to the service. A mutex
// serializes exchanges so two requests never interleave their
// writes and reads.
type Conn struct {
	mu     sync.Mutex
	nc     net.Conn
	closed bool
}

// Open dials the fixed service endpoint. A single attempt; there is
// no retry or backoff.
func Open() (*Conn, error) {
	nc, err := dial()
	if err != nil {
		return nil, fmt.Errorf("connecting to service pipe: %w", err)
	}
	return &Conn{nc: nc}, nil
}

// NewConn wraps an already-established connection. Open is the normal
// constructor; NewConn exists for tools and tests that dial their own
// endpoint.
func NewConn(nc net.Conn) *Conn {
	return &Conn{nc: nc}
}

// Exchange writes one complete request, then performs a single bounded
// read and returns the bytes of that read as the whole response. There
// is no length framing or read loop: the service is expected to write
// its entire reply before the next read, and replies are capped at the
// buffer size.
func (c *Conn) Exchange(req []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if _, err := c.nc.Write(req); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}

	buf := make([]byte, readBufferSize)
	n, err := c.nc.Read(buf)
	if n == 0 && err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return buf[:n], nil
}

// Close releases the connection exactly once. Safe to call repeatedly
// and before any exchange was made.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.nc.Close()
}
