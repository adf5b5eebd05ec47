package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when a required header column is absent
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnknownFormat is returned for an unsupported Format value
	ErrUnknownFormat = errors.New("unknown edge list format")
)

// ParseError reports a malformed value in the input
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: invalid node id %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Err
}
