package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks rejected durations, descriptions or session
	// parameters. It is always returned before any state is mutated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a referenced task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the task store could not be reached.
	// Sessions treat it as recoverable and keep running in memory.
	ErrStoreUnavailable = errors.New("task store unavailable")

	// ErrNoBoundTask is returned by task operations on a free session.
	ErrNoBoundTask = fmt.Errorf("%w: session has no bound task", ErrInvalidInput)
)

// invalidf wraps ErrInvalidInput with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
