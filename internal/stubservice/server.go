// Package stubservice is a development stand-in for the antivirus
// service: it listens on a Unix socket and answers the pipe protocol
// from in-memory state. Used by integration tests and cmd/avstubd;
// not part of the client contract.
package stubservice

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/David2287/Client-App/internal/paths"
	"github.com/David2287/Client-App/internal/protocol"
)

const readBufferSize = 4096

// Server answers service protocol requests from in-memory state.
type Server struct {
	socketPath string
	log        zerolog.Logger
	listener   net.Listener
	wg         sync.WaitGroup

	mu       sync.Mutex
	users    map[string]string // username -> password
	licenses map[string]license
	settings protocol.Settings
	status   protocol.ServiceStatus
}

type license struct {
	expiresAt   uint64
	licenseType string
}

// New creates a stub server listening on socketPath once started.
func New(socketPath string, log zerolog.Logger) *Server {
	return &Server{
		socketPath: socketPath,
		log:        log,
		users:      make(map[string]string),
		licenses:   make(map[string]license),
		settings: protocol.Settings{
			RealTimeProtection: true,
			ScanOnAccess:       true,
			AutoUpdate:         true,
			ScanTime:           2,
		},
		status: protocol.ServiceStatus{
			IsRunning:          true,
			RealTimeProtection: true,
			DatabaseVersion:    1,
		},
	}
}

// AddUser registers credentials the stub will accept.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// SetStatus replaces the status document the stub reports.
func (s *Server) SetStatus(status protocol.ServiceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Start begins listening. It removes any stale socket file first.
func (s *Server) Start() error {
	if err := paths.EnsureDir(filepath.Dir(s.socketPath)); err != nil {
		return fmt.Errorf("creating socket directory: %w", err)
	}
	os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		ln.Close()
		os.Remove(s.socketPath)
		return fmt.Errorf("setting socket permissions: %w", err)
	}
	s.listener = ln

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptLoop()
	}()
	s.log.Info().Str("socket", s.socketPath).Msg("stub service listening")
	return nil
}

// Stop closes the listener and waits for in-flight connections.
func (s *Server) Stop() {
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	os.Remove(s.socketPath)
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return // listener closed
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			s.handleConn(conn)
		}()
	}
}

// handleConn serves one client connection. The client holds its
// connection for its whole lifetime, so requests loop until it hangs
// up: one bounded read per request, one write per reply.
func (s *Server) handleConn(conn net.Conn) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if n == 0 {
			return
		}
		reply := s.handle(buf[:n])
		if _, err := conn.Write(reply); err != nil {
			return
		}
		if err != nil {
			return
		}
	}
}
