package credential

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmail is wrapped by ValidationError for a malformed email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrBusy is returned when a submission is already outstanding.
	ErrBusy = errors.New("login already in progress")
	// ErrClosed is returned once the authenticator has been closed.
	ErrClosed = errors.New("authenticator closed")
)

// ValidationError reports input rejected before any request was issued.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AuthError reports a login rejected by the console. Message is the server
// supplied text.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "login rejected: " + e.Message
}
