//go:build linux || darwin

package pipe

import (
	"fmt"
	"net"

	"github.com/David2287/Client-App/internal/paths"
)

var dialEndpoint = func() (net.Conn, error) {
	return net.Dial("unix", paths.Endpoint())
}

// dial connects to the service socket and verifies the peer's
// credentials before the connection is trusted. The service runs
// privileged, so the listener must belong to root or to the current
// user (a development stub).
func dial() (net.Conn, error) {
	nc, err := dialEndpoint()
	if err != nil {
		return nil, err
	}

	ok, err := peerIsTrusted(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("checking service peer: %w", err)
	}
	if !ok {
		nc.Close()
		return nil, fmt.Errorf("service socket is not owned by root or the current user")
	}
	return nc, nil
}
