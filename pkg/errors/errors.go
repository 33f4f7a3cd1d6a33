// Package errors provides structured error types for the cutlist tool.
//
// Error codes are machine-readable and stable, so both the CLI and the
// HTTP server can map failures to user-facing behavior without string
// matching. Errors carry an optional cause and stay compatible with
// the standard library's errors.Is/As.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidViewDirection marks an unsupported view direction
	// or plane passed to a shape render.
	ErrCodeInvalidViewDirection Code = "INVALID_VIEW_DIRECTION"
	// ErrCodeInvalidProject marks a malformed project file.
	ErrCodeInvalidProject Code = "INVALID_PROJECT"
	// ErrCodeEmptyGeometry marks a bar whose wire has no usable edges.
	ErrCodeEmptyGeometry Code = "EMPTY_GEOMETRY"
	// ErrCodeNotFound marks a missing bar or file.
	ErrCodeNotFound Code = "NOT_FOUND"
	// ErrCodeInternal marks unexpected internal failures.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
