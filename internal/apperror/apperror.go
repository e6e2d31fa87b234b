// Package apperror defines the typed errors shared between the repository,
// service and handler layers. Handlers are the only place these are turned
// into HTTP responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Type categorizes an application error.
type Type int

const (
	Unknown Type = iota
	// Auth is an authentication failure (bad credentials, bad token).
	Auth
	// NotFound signals an absent row. Repositories return it instead of a
	// driver-specific error so callers never inspect error text.
	NotFound
	// Conflict is a uniqueness violation.
	Conflict
	// Validation is a malformed or out-of-bounds input.
	Validation
	// Internal covers everything else. Detail is logged, never returned.
	Internal
)

// Error is the application error type. Column is set for uniqueness
// violations and names the offending column.
type Error struct {
	Type    Type
	Message string
	Column  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to the HTTP status the API contract uses.
// Conflicts are reported as 400, not 409.
func (e *Error) StatusCode() int {
	switch e.Type {
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict, Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates an Error of the given type.
func New(t Type, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

// NewAuth creates an authentication error.
func NewAuth(message string, err error) *Error {
	return New(Auth, message, err)
}

// NewNotFound creates a not-found error.
func NewNotFound(message string) *Error {
	return New(NotFound, message, nil)
}

// NewConflict creates a conflict error.
func NewConflict(message string, err error) *Error {
	return New(Conflict, message, err)
}

// NewUniqueViolation creates a conflict error carrying the violated column.
func NewUniqueViolation(column string, err error) *Error {
	return &Error{
		Type:    Conflict,
		Message: fmt.Sprintf("duplicate value for %s", column),
		Column:  column,
		Err:     err,
	}
}

// NewInternal creates an internal error.
func NewInternal(message string, err error) *Error {
	return New(Internal, message, err)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == NotFound
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == Conflict
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == Auth
}

// AsUniqueViolation returns the violated column if err is a uniqueness
// violation.
func AsUniqueViolation(err error) (string, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Type == Conflict && appErr.Column != "" {
		return appErr.Column, true
	}
	return "", false
}
