package auth

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an operation that needs a session is
// attempted without one.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError is a login or registration rejected by the backend. The message is
// the backend's own wording when the response body carried one.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError is a form field caught client-side before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
