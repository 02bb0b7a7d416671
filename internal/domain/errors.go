package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a borrowing, copy, book, author or user
	// id does not resolve to a record.
	ErrNotFound = errors.New("record not found")

	// ErrIllegalTransition is returned when a borrowing action is not valid
	// from the request's current status. State is left untouched.
	ErrIllegalTransition = errors.New("illegal borrowing transition")

	// ErrPermissionDenied is returned when the acting user lacks the
	// required permission or does not own the borrowing.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrCopyUnavailable is a warning-grade outcome of approve: the copy is
	// not available, the request stays pending and staff can retry later.
	ErrCopyUnavailable = errors.New("book copy is not available")
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
