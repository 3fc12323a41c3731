//go:build windows

package pipe

import (
	"net"

	"gopkg.in/natefinch/npipe.v2"

	"github.com/David2287/Client-App/internal/paths"
)

// dial connects to the service's named pipe. Access control is the
// pipe ACL the service installed; no extra peer check is done here.
func dial() (net.Conn, error) {
	return npipe.Dial(paths.Endpoint())
}
