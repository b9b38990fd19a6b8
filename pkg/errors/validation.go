package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds element ids accepted from model files.
const maxIDLength = 256

// ValidateElementID validates an element id read from a model file.
// Ids are opaque to the renderer (names are normalized separately), so the
// rules only reject values that cannot be referenced reliably:
//   - No empty ids
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 256 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "element id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element id %q contains control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "element id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidatePath validates a local file path given on the command line or in
// a model file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
