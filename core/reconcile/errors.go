package reconcile

import (
	"errors"
	"fmt"
)

// Error categories of a run. Every one of them is fatal.
var (
	// ErrParse indicates a record row that could not be decoded.
	ErrParse = errors.New("record parse error")

	// ErrLookup indicates the identity lookup failed.
	ErrLookup = errors.New("identity lookup failed")

	// ErrSave indicates the collection could not be written back.
	ErrSave = errors.New("record save failed")
)

// ParseError describes a row that could not be decoded into a Record.
type ParseError struct {
	// Line is the 1-based line of the row in the source, header included.
	Line int
	// Column is the header name of the offending cell, if known.
	Column string
	// Value is the raw cell content, if known.
	Value string
	cause error
}

// NewParseError creates a ParseError wrapping cause.
func NewParseError(line int, column, value string, cause error) *ParseError {
	return &ParseError{Line: line, Column: column, Value: value, cause: cause}
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.cause)
	}
	return fmt.Sprintf("line %d, column %q (value %q): %v", e.Line, e.Column, e.Value, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
