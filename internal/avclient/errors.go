package avclient

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure.
type Kind int

const (
	// KindConnection: the endpoint was missing or unreachable when the
	// client was built. Fatal to the client instance.
	KindConnection Kind = iota + 1
	// KindCommunication: a write or read on the pipe failed. The call
	// failed; the client is not retried automatically.
	KindCommunication
	// KindSerialization: the request failed to encode, or the response
	// bytes do not parse as JSON at all.
	KindSerialization
	// KindService: the response parsed but signals a logical failure
	// or lacks a mandatory field.
	KindService
)

// Sentinels for errors.Is matching against a failure kind.
var (
	ErrConnectionFailed = errors.New("connection failed")
	ErrCommunication    = errors.New("communication error")
	ErrSerialization    = errors.New("serialization error")
	ErrService          = errors.New("service error")
)

// Error is the failure value returned by every client operation.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "get_settings"
	Msg  string // service-provided or generated message
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, kindString(e.Kind), e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, kindString(e.Kind), e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so callers can write
// errors.Is(err, avclient.ErrService).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConnectionFailed:
		return e.Kind == KindConnection
	case ErrCommunication:
		return e.Kind == KindCommunication
	case ErrSerialization:
		return e.Kind == KindSerialization
	case ErrService:
		return e.Kind == KindService
	}
	return false
}

func kindString(k Kind) string {
	switch k {
	case KindConnection:
		return "connection failed"
	case KindCommunication:
		return "communication error"
	case KindSerialization:
		return "serialization error"
	case KindService:
		return "service error"
	}
	return "unknown error"
}
