package algorithms

import "errors"

var (
	// ErrEmptyGraph is returned by measures that are undefined without nodes
	ErrEmptyGraph = errors.New("graph has no nodes")
	// ErrNoConvergence is returned when an iterative method exhausts its budget
	ErrNoConvergence = errors.New("power iteration failed to converge")
)
