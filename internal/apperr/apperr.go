// Package apperr defines the typed domain errors shared by services and
// repositories. Handlers map them to HTTP status codes; everything else is
// treated as an internal error and never shown to clients verbatim.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError signals malformed or missing required input
// (empty name, empty items, non-positive quantity, ...).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidStateError signals an operation that is not legal from the
// record's current status.
type InvalidStateError struct {
	Entity  string
	ID      string
	Current string
	Op      string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s: cannot %s while status is %q", e.Entity, e.ID, e.Op, e.Current)
}

// NotFoundError signals an operation on an unknown id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidState reports whether err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var se *InvalidStateError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
