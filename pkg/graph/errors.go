package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("edge not found")
)

// GraphError provides structured error information for graph lookups.
type GraphError struct {
	Op     string // Operation that failed (e.g., "GetNode", "GetEdge")
	Entity string // Entity type ("node" or "edge")
	ID     int64
	Cause  error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func nodeNotFound(op string, id int64) error {
	return &GraphError{Op: op, Entity: "node", ID: id, Cause: ErrNodeNotFound}
}

func edgeNotFound(op string, id uint64) error {
	return &GraphError{Op: op, Entity: "edge", ID: int64(id), Cause: ErrEdgeNotFound}
}
