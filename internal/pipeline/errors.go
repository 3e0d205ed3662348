package pipeline

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by read operations on unknown claim IDs
var ErrNotFound = errors.New("claim not found")

// ValidationError reports a rejected submission. It is surfaced before
// pipeline entry; no partial claim is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
