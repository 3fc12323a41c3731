//go:build !windows

package paths

// serviceSocket is the fixed Unix socket endpoint of the antivirus
// service. Rebindable at build time only, via -ldflags -X.
var serviceSocket = "/run/avservice/service.sock"

// Endpoint returns the service pipe endpoint for this platform.
func Endpoint() string {
	return serviceSocket
}
