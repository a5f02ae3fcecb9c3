// Package errors provides structured error types for diamondplot.
//
// Every failure raised by the library carries a machine-readable [Code] and,
// where it originates in an underlying call (number parsing, spreadsheet
// access, quantile lookup), the original error as its cause. Callers that
// care about the raw failure can still reach it with the standard
// errors.Is / errors.As functions.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: Malformed caller input (colours, quantiles, formats)
//   - COLUMN_*: Dataset column lookups
//   - *_DATA / DEGENERATE_FIT: Inputs that cannot support a statistic
//   - INTERNAL: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeColumnNotFound, "column %q not found", name)
//	if errors.Is(err, errors.ErrCodeColumnNotFound) {
//	    // Handle missing column
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidColor, parseErr, "parse %q", hex)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidQuantile Code = "INVALID_QUANTILE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Dataset errors
	ErrCodeColumnNotFound   Code = "COLUMN_NOT_FOUND"
	ErrCodeColumnNotNumeric Code = "COLUMN_NOT_NUMERIC"
	ErrCodeLengthMismatch   Code = "LENGTH_MISMATCH"
	ErrCodeEmptyData        Code = "EMPTY_DATA"
	ErrCodeDegenerateFit    Code = "DEGENERATE_FIT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
