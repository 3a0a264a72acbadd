// Package errors provides structured error types for the omeganet application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_SYNTAX, EMPTY_CYCLE: parse failures (malformed cycle notation)
//   - INVALID_ADDRESS, DUPLICATE_ADDRESS: validation failures (the mapping
//     would not be a bijection over the address space)
//   - INTERNAL_ERROR: programming-logic errors that never represent a valid
//     runtime state
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidAddress, "address %d out of range", a)
//	if errors.Is(err, errors.ErrCodeInvalidAddress) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidSyntax, origErr, "parse %q", expr)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors: the expression text is not valid cycle notation.
	ErrCodeInvalidSyntax Code = "INVALID_SYNTAX"
	ErrCodeEmptyCycle    Code = "EMPTY_CYCLE"

	// Validation errors: the cycle list does not describe a bijection.
	ErrCodeInvalidAddress   Code = "INVALID_ADDRESS"
	ErrCodeDuplicateAddress Code = "DUPLICATE_ADDRESS"

	// Fixture configuration errors.
	ErrCodeInvalidFixture Code = "INVALID_FIXTURE"

	// Internal errors: invariant violations, never caused by user input.
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

// IsParse reports whether err is a cycle-notation parse error.
func IsParse(err error) bool {
	return Is(err, ErrCodeInvalidSyntax) || Is(err, ErrCodeEmptyCycle)
}

// IsValidation reports whether err is a permutation validation error.
func IsValidation(err error) bool {
	return Is(err, ErrCodeInvalidAddress) || Is(err, ErrCodeDuplicateAddress)
}
