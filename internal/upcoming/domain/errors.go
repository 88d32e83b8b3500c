package domain

import "errors"

// ErrNotFound is returned when no upcoming project exists for a code.
var ErrNotFound = errors.New("upcoming project not found")

// ValidationError rejects a malformed payload. The message names the
// offending field and is surfaced verbatim in the HTTP error envelope.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is a payload validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
