// Package errors provides structured error types for the textmorph library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the augmentation engine and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_CONFIG: transform construction with out-of-range parameters
//   - INVALID_INPUT: malformed text batches
//   - MALFORMED_METADATA: intensity computation on records missing fields
//   - UNSUPPORTED / INTERNAL: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "aug_p out of range: %v", p)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "apply %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: raised at transform construction time, never
	// at apply time.
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeInvalidGranularity Code = "INVALID_GRANULARITY"
	ErrCodeUnknownFamily      Code = "UNKNOWN_FAMILY"

	// Input errors: malformed text batches.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Metadata errors: intensity computation on records missing required
	// fields, or records from a different transform family.
	ErrCodeMalformedMetadata Code = "MALFORMED_METADATA"

	// Fixture errors
	ErrCodeFixtureNotFound Code = "FIXTURE_NOT_FOUND"
	ErrCodeInvalidFixture  Code = "INVALID_FIXTURE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
