package graph

// Node represents a vertex identified by the integer ID from the input
type Node struct {
	ID    int64
	Index int // Position in first-appearance order
}

// Edge represents a directed arc between two nodes
type Edge struct {
	ID         uint64
	FromNodeID int64
	ToNodeID   int64
}

// IsSelfLoop reports whether the arc starts and ends at the same node
func (e *Edge) IsSelfLoop() bool {
	return e.FromNodeID == e.ToNodeID
}

// Statistics tracks graph size
type Statistics struct {
	NodeCount     uint64
	EdgeCount     uint64
	SelfLoops     uint64
	DuplicateArcs uint64 // Arcs collapsed because they already existed
}
