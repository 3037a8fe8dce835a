package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a document ID is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Loader errors. Reported per document, never fatal to a batch.

	// ErrSizeExceeded indicates an upload is larger than the configured
	// ceiling. It is raised before any byte of content is parsed.
	ErrSizeExceeded = errors.New("size ceiling exceeded")

	// ErrUnsupportedFormat indicates an upload is not one of the
	// recognised source kinds.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCorruptDocument indicates format-specific parsing could not
	// recover any text from the upload.
	ErrCorruptDocument = errors.New("corrupt document")

	// Query errors.

	// ErrMatchTimeout indicates pattern evaluation exceeded its time
	// budget for one document. Other documents still complete.
	ErrMatchTimeout = errors.New("match timeout")

	// ErrOutOfRange indicates a viewer request past the end of a
	// document. Caller error, no state change.
	ErrOutOfRange = errors.New("out of range")
)

// PatternSyntaxError reports an invalid search pattern. It carries the
// regexp compiler's diagnostic and is surfaced once per query, not per
// document.
type PatternSyntaxError struct {
	// Pattern is the offending pattern.
	Pattern string

	// Cause is the compiler diagnostic.
	Cause error
}

// Error implements the error interface.
func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Cause)
}

// Unwrap exposes the compiler diagnostic to errors.Is/As.
func (e *PatternSyntaxError) Unwrap() error {
	return e.Cause
}
