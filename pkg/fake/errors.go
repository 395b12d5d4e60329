package fake

import (
	"errors"
	"fmt"
)

// Operation errors
var (
	ErrLockFailure          = errors.New("attribute lock unavailable")
	ErrNotFound             = errors.New("not found")
	ErrMalformedModalias    = errors.New("malformed modalias")
	ErrUnimplemented        = errors.New("unimplemented")
	ErrDiscoveryUnavailable = errors.New("discovery unavailable")
	ErrDuplicateAdapter     = errors.New("adapter already registered")
	ErrForeignChild         = errors.New("child belongs to another parent")
	ErrOrphanedChild        = errors.New("child would be dropped from its parent")
)

// NotFoundError represents a failed lookup in a child registry
type NotFoundError struct {
	Resource string // "adapter", "device", "service", "characteristic", "descriptor", "addata"
	ID       string // empty for first-element lookups
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no %s found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is allows errors.Is(err, ErrNotFound)
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ModaliasError describes why a modalias string could not be decoded
type ModaliasError struct {
	Modalias string
	Reason   string
}

func (e *ModaliasError) Error() string {
	return fmt.Sprintf("malformed modalias %q: %s", e.Modalias, e.Reason)
}

// Is allows errors.Is(err, ErrMalformedModalias)
func (e *ModaliasError) Is(target error) bool {
	return target == ErrMalformedModalias
}

// ConnectionState represents the specific kind of connection state failure
type ConnectionState string

const (
	ConnectFailed    ConnectionState = "connect_failed"
	AlreadyConnected ConnectionState = "already_connected"
	NotConnectable   ConnectionState = "not_connectable"
	NotConnected     ConnectionState = "not_connected"
)

// ConnectionError represents a violated connection-state precondition
type ConnectionError struct {
	State  ConnectionState
	Device string
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Device == "" {
		return string(e.State)
	}
	return fmt.Sprintf("%s: %s", e.State, e.Device)
}

// Is compares ConnectionError values by State. ConnectFailed matches both
// AlreadyConnected and NotConnectable.
func (e *ConnectionError) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*ConnectionError)
	if !ok {
		return false
	}
	if t.State == ConnectFailed {
		return e.State == ConnectFailed || e.State == AlreadyConnected || e.State == NotConnectable
	}
	return e.State == t.State
}

// Predefined sentinel errors for connection states
var (
	ErrConnectFailed    = &ConnectionError{State: ConnectFailed}
	ErrAlreadyConnected = &ConnectionError{State: AlreadyConnected}
	ErrNotConnectable   = &ConnectionError{State: NotConnectable}
	ErrNotConnected     = &ConnectionError{State: NotConnected}
)

// IsConnectionState reports whether err is a ConnectionError with the given state
func IsConnectionState(err error, state ConnectionState) bool {
	var cerr *ConnectionError
	if errors.As(err, &cerr) {
		return cerr.State == state
	}
	return false
}
