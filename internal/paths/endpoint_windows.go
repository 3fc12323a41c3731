//go:build windows

package paths

// serviceSocket is the fixed named pipe of the antivirus service.
var serviceSocket = `\\.\pipe\AntivirusService`

// Endpoint returns the service pipe endpoint for this platform.
func Endpoint() string {
	return serviceSocket
}
