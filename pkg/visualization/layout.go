// Package visualization lays out and draws a subset of a graph.
package visualization

import (
	"encoding/json"
	"fmt"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// SubsetNodes returns the first limit node IDs in graph order, or all of
// them when the graph is smaller
func SubsetNodes(g *graph.Graph, limit int) []int64 {
	ids := g.NodeIDs()
	if limit < 0 || limit >= len(ids) {
		limit = len(ids)
	}
	subset := make([]int64, limit)
	copy(subset, ids[:limit])
	return subset
}

// NewVisualization lays out the subgraph induced by the first limit nodes
func NewVisualization(g *graph.Graph, limit int, layout Layout) (*Visualization, error) {
	nodes := SubsetNodes(g, limit)
	sub := g.Subgraph(nodes)

	positions, err := layout.ComputeLayout(sub, nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to compute layout: %w", err)
	}

	return &Visualization{
		Nodes:     nodes,
		Edges:     sub.Edges(),
		Positions: positions,
	}, nil
}

// ExportJSON exports the visualization to JSON
func (v *Visualization) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		ID int64   `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}

	type EdgeViz struct {
		ID         uint64 `json:"id"`
		FromNodeID int64  `json:"from"`
		ToNodeID   int64  `json:"to"`
	}

	type VizData struct {
		Nodes []NodeViz `json:"nodes"`
		Edges []EdgeViz `json:"edges"`
	}

	data := VizData{
		Nodes: make([]NodeViz, 0, len(v.Nodes)),
		Edges: make([]EdgeViz, 0, len(v.Edges)),
	}

	for _, id := range v.Nodes {
		pos := v.Positions[id]
		data.Nodes = append(data.Nodes, NodeViz{ID: id, X: pos.X, Y: pos.Y})
	}

	for _, edge := range v.Edges {
		data.Edges = append(data.Edges, EdgeViz{
			ID:         edge.ID,
			FromNodeID: edge.FromNodeID,
			ToNodeID:   edge.ToNodeID,
		})
	}

	return json.Marshal(data)
}
