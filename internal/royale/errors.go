package royale

import (
	"errors"
	"fmt"
)

// ErrNoRefreshToken is wrapped by the RequestError returned when a refresh is
// attempted without a stored refresh credential.
var ErrNoRefreshToken = errors.New("no refresh credential available")

// RequestError is the single failure shape of the HTTP client. Status is zero
// when the request never produced a response.
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ValidationError rejects caller input before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
