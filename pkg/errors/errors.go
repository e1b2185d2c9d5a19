// Package errors defines the typed failures surfaced by the glaze tool
// layer: unreadable theme documents, schema violations and pack
// operations. Engine-level shape violations live in pkg/theme next to the
// resolver that raises them.
package errors

import (
	"fmt"
)

// ParseError represents a theme document that could not be decoded, with
// optional line metadata extracted from the YAML error.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a theme document that decoded but failed
// schema validation (bad mode string, non-color value, missing name).
type ValidationError struct {
	Path    string
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError for a document field.
func NewValidationError(path, field, message string, err error) error {
	return &ValidationError{Path: path, Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("validation error: %s: %s: %s", e.Path, e.Field, e.Message)
	case e.Field != "":
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PackError indicates a failed operation on a theme pack repository.
type PackError struct {
	Pack string
	Op   string
	Err  error
}

// NewPackError constructs a PackError for the given pack and operation.
func NewPackError(pack, op string, err error) error {
	return &PackError{Pack: pack, Op: op, Err: err}
}

func (e *PackError) Error() string {
	if e == nil {
		return ""
	}
	if e.Pack != "" {
		return fmt.Sprintf("pack %s: %s: %v", e.Pack, e.Op, e.Err)
	}
	return fmt.Sprintf("pack %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
