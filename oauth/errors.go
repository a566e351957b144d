package oauth

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when starting a flow on a closed coordinator.
var ErrClosed = errors.New("oauth coordinator closed")

// InitiationError reports a failed or unrecognized provider initiation.
type InitiationError struct {
	Provider string
	Err      error
}

func (e *InitiationError) Error() string {
	return fmt.Sprintf("oauth initiation with %v failed: %v", e.Provider, e.Err)
}

func (e *InitiationError) Unwrap() error {
	return e.Err
}
