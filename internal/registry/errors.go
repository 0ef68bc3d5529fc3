package registry

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a registry failure.
type ErrorKind int

const (
	// ErrUnavailable covers network failures, timeouts, and non-success
	// HTTP statuses.
	ErrUnavailable ErrorKind = iota

	// ErrParse covers malformed response bodies.
	ErrParse

	// ErrCredential means the CurseForge credential could not be obtained.
	ErrCredential
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnavailable:
		return "unavailable"
	case ErrParse:
		return "parse error"
	case ErrCredential:
		return "credential unavailable"
	default:
		return "unknown"
	}
}

// Error is the only error type the registry clients return for expected
// failure modes. Callers treat every kind identically to "no compatible
// release found"; the kind exists for logging and tests.
type Error struct {
	Kind     ErrorKind
	Platform Platform
	ID       string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s registry, mod %s: %s: %v", e.Platform, e.ID, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s registry, mod %s: %s", e.Platform, e.ID, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a registry *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}
