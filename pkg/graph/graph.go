// Package graph holds the in-memory directed graph the analytics read from.
//
// A Graph is built once and is read-only afterwards, so concurrent readers
// need no locking. Repeated arcs collapse into one edge.
package graph

// Graph is a simple directed graph keyed by int64 node IDs
type Graph struct {
	nodes    map[int64]*Node
	order    []int64
	edges    []*Edge
	arcs     map[[2]int64]uint64 // (from, to) -> edge ID
	outgoing map[int64][]uint64
	incoming map[int64][]uint64
	stats    Statistics
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		nodes:    make(map[int64]*Node),
		arcs:     make(map[[2]int64]uint64),
		outgoing: make(map[int64][]uint64),
		incoming: make(map[int64][]uint64),
	}
}

// AddNode adds a node if it does not exist yet and returns it
func (g *Graph) AddNode(id int64) *Node {
	if node, ok := g.nodes[id]; ok {
		return node
	}
	node := &Node{ID: id, Index: len(g.order)}
	g.nodes[id] = node
	g.order = append(g.order, id)
	g.stats.NodeCount++
	return node
}

// AddEdge adds the arc from -> to, creating missing endpoints.
// Returns false when the arc already existed.
func (g *Graph) AddEdge(from, to int64) (*Edge, bool) {
	g.AddNode(from)
	g.AddNode(to)

	key := [2]int64{from, to}
	if id, ok := g.arcs[key]; ok {
		g.stats.DuplicateArcs++
		return g.edges[id-1], false
	}

	edge := &Edge{
		ID:         uint64(len(g.edges)) + 1,
		FromNodeID: from,
		ToNodeID:   to,
	}
	g.edges = append(g.edges, edge)
	g.arcs[key] = edge.ID
	g.outgoing[from] = append(g.outgoing[from], edge.ID)
	g.incoming[to] = append(g.incoming[to], edge.ID)

	g.stats.EdgeCount++
	if edge.IsSelfLoop() {
		g.stats.SelfLoops++
	}
	return edge, true
}

// HasNode reports whether the node exists
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the arc from -> to exists
func (g *Graph) HasEdge(from, to int64) bool {
	_, ok := g.arcs[[2]int64{from, to}]
	return ok
}

// GetNode retrieves a node by ID
func (g *Graph) GetNode(id int64) (*Node, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, nodeNotFound("GetNode", id)
	}
	return node, nil
}

// GetEdge retrieves an edge by ID
func (g *Graph) GetEdge(id uint64) (*Edge, error) {
	if id == 0 || id > uint64(len(g.edges)) {
		return nil, edgeNotFound("GetEdge", id)
	}
	return g.edges[id-1], nil
}

// GetOutgoingEdges returns the arcs leaving a node in insertion order
func (g *Graph) GetOutgoingEdges(id int64) ([]*Edge, error) {
	if !g.HasNode(id) {
		return nil, nodeNotFound("GetOutgoingEdges", id)
	}
	return g.collect(g.outgoing[id]), nil
}

// GetIncomingEdges returns the arcs entering a node in insertion order
func (g *Graph) GetIncomingEdges(id int64) ([]*Edge, error) {
	if !g.HasNode(id) {
		return nil, nodeNotFound("GetIncomingEdges", id)
	}
	return g.collect(g.incoming[id]), nil
}

func (g *Graph) collect(ids []uint64) []*Edge {
	edges := make([]*Edge, len(ids))
	for i, id := range ids {
		edges[i] = g.edges[id-1]
	}
	return edges
}

// Successors returns the targets of a node's outgoing arcs.
// Unknown nodes have no successors.
func (g *Graph) Successors(id int64) []int64 {
	ids := g.outgoing[id]
	result := make([]int64, len(ids))
	for i, edgeID := range ids {
		result[i] = g.edges[edgeID-1].ToNodeID
	}
	return result
}

// Predecessors returns the sources of a node's incoming arcs
func (g *Graph) Predecessors(id int64) []int64 {
	ids := g.incoming[id]
	result := make([]int64, len(ids))
	for i, edgeID := range ids {
		result[i] = g.edges[edgeID-1].FromNodeID
	}
	return result
}

// OutDegree returns the number of outgoing arcs
func (g *Graph) OutDegree(id int64) int {
	return len(g.outgoing[id])
}

// InDegree returns the number of incoming arcs
func (g *Graph) InDegree(id int64) int {
	return len(g.incoming[id])
}

// NodeIDs returns node IDs in order of first appearance.
// The returned slice must not be modified.
func (g *Graph) NodeIDs() []int64 {
	return g.order
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct arcs
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// GetStatistics returns a copy of the graph statistics
func (g *Graph) GetStatistics() Statistics {
	return g.stats
}

// Subgraph returns the subgraph induced by ids. Node order follows ids and
// edges keep their relative insertion order. Unknown IDs are skipped.
func (g *Graph) Subgraph(ids []int64) *Graph {
	sub := New()
	keep := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if g.HasNode(id) {
			sub.AddNode(id)
			keep[id] = true
		}
	}

	for _, edge := range g.edges {
		if keep[edge.FromNodeID] && keep[edge.ToNodeID] {
			sub.AddEdge(edge.FromNodeID, edge.ToNodeID)
		}
	}
	return sub
}
