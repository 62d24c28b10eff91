package chrono

import (
	"errors"
	"fmt"
)

// ErrorType categorizes clock failures for handling strategy
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeUnavailable           // clock kind not supported on this platform
	ErrorTypeSystem                // underlying OS query failed
)

// ClockError wraps clock failures with context and categorization
type ClockError struct {
	Type  ErrorType
	Op    string // OS call that failed, e.g. "clock_gettime"
	Clock Kind
	Err   error // native error, nil for unavailability
}

// Error implements error interface
func (e *ClockError) Error() string {
	switch e.Type {
	case ErrorTypeUnavailable:
		return fmt.Sprintf("%s clock is not supported on this platform", e.Clock)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s clock: %s failed: %v", e.Clock, e.Op, e.Err)
		}
		return fmt.Sprintf("%s clock: %s failed", e.Clock, e.Op)
	}
}

// Unwrap implements error unwrapping
func (e *ClockError) Unwrap() error {
	return e.Err
}

func newUnavailableError(kind Kind) *ClockError {
	return &ClockError{Type: ErrorTypeUnavailable, Clock: kind}
}

func newSystemError(kind Kind, op string, err error) *ClockError {
	return &ClockError{Type: ErrorTypeSystem, Op: op, Clock: kind, Err: err}
}

// IsUnavailable reports whether err means the requested clock kind does not
// exist on this platform.
func IsUnavailable(err error) bool {
	var ce *ClockError
	return errors.As(err, &ce) && ce.Type == ErrorTypeUnavailable
}

// IsSystemError reports whether err came from a failed OS timing call.
func IsSystemError(err error) bool {
	var ce *ClockError
	return errors.As(err, &ce) && ce.Type == ErrorTypeSystem
}
