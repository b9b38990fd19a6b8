// Package errors provides structured error types for PlantKit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the model, the facade and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Model errors are raised by the core packages:
//   - PRECEDED_NODE_MISSING: a relation endpoint is not a registered node
//   - UNRESOLVED_REFERENCE: an element id has no registered element
//   - FACADE_NOT_INITIALIZED: a facade method was called on a zero value
//   - DUPLICATE_ID: an element id was registered twice
//
// The remaining codes are used by the loader, pipeline and CLI layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnresolvedReference, "target %q is not registered", id)
//	if errors.Is(err, errors.ErrCodeUnresolvedReference) {
//	    // Handle the missing element
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Model errors
	ErrCodePrecededNodeMissing  Code = "PRECEDED_NODE_MISSING"
	ErrCodeUnresolvedReference  Code = "UNRESOLVED_REFERENCE"
	ErrCodeFacadeNotInitialized Code = "FACADE_NOT_INITIALIZED"
	ErrCodeDuplicateID          Code = "DUPLICATE_ID"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Side names the end of a reference that failed to resolve.
type Side string

// Reference sides reported by UNRESOLVED_REFERENCE and PRECEDED_NODE_MISSING.
const (
	SideSource Side = "source"
	SideTarget Side = "target"
	SideParent Side = "parent"
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

// Unresolved reports that the element id on the given side of a reference
// has no registered element.
func Unresolved(side Side, id string) *Error {
	return New(ErrCodeUnresolvedReference, "%s %q does not resolve to a registered element", side, id)
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
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
