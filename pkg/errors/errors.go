// Package errors provides structured error types for algotrace.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the player and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly diagnostics for rejected input
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input normalization failures (generation is skipped)
//   - UNKNOWN_*: References to things that do not exist
//   - PLAYBACK_*: Misuse of the playback controller
//   - INTERNAL_*: Unexpected internal errors
//
// Degenerate but valid input (an empty array, an absent search target) is
// never an error: generators encode those outcomes as terminal steps.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidNumber, "token %q is not a number", tok)
//	if errors.Is(err, errors.ErrCodeInvalidNumber) {
//	    // Show diagnostic, keep previous visualization
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidGraph, origErr, "entry %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidNumber Code = "INVALID_NUMBER"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeUnknownNode      Code = "UNKNOWN_NODE"
	ErrCodeUnknownAlgorithm Code = "UNKNOWN_ALGORITHM"
	ErrCodeUnknownParam     Code = "UNKNOWN_PARAM"
	ErrCodeStepNotFound     Code = "STEP_NOT_FOUND"

	// Playback errors
	ErrCodePlayback Code = "PLAYBACK_REJECTED"

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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}

// IsInputError reports whether err was produced while normalizing user input.
// Input errors block generation but never invalidate an earlier trace.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidNumber, ErrCodeInvalidGraph,
		ErrCodeOutOfRange, ErrCodeUnknownNode, ErrCodeUnknownParam:
		return true
	}
	return false
}
