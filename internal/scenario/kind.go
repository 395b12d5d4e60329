package scenario

import (
	"errors"

	"github.com/srg/blefake/pkg/fake"
)

// Error kinds accepted by Step.ExpectError
const (
	KindNotFound             = "not_found"
	KindConnectFailed        = "connect_failed"
	KindAlreadyConnected     = "already_connected"
	KindNotConnectable       = "not_connectable"
	KindNotConnected         = "not_connected"
	KindMalformedModalias    = "malformed_modalias"
	KindUnimplemented        = "unimplemented"
	KindLockFailure          = "lock_failure"
	KindDiscoveryUnavailable = "discovery_unavailable"
	KindUnknown              = "unknown"
)

// Kind classifies err into one of the error kinds
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fake.ErrNotFound):
		return KindNotFound
	case errors.Is(err, fake.ErrAlreadyConnected):
		return KindAlreadyConnected
	case errors.Is(err, fake.ErrNotConnectable):
		return KindNotConnectable
	case errors.Is(err, fake.ErrNotConnected):
		return KindNotConnected
	case errors.Is(err, fake.ErrMalformedModalias):
		return KindMalformedModalias
	case errors.Is(err, fake.ErrUnimplemented):
		return KindUnimplemented
	case errors.Is(err, fake.ErrLockFailure):
		return KindLockFailure
	case errors.Is(err, fake.ErrDiscoveryUnavailable):
		return KindDiscoveryUnavailable
	default:
		return KindUnknown
	}
}

// MatchesKind reports whether err belongs to kind. connect_failed matches
// both already_connected and not_connectable.
func MatchesKind(err error, kind string) bool {
	if kind == KindConnectFailed {
		return errors.Is(err, fake.ErrConnectFailed)
	}
	return Kind(err) == kind
}
