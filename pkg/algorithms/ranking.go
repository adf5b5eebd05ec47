package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// RankedNode represents a node with its score
type RankedNode struct {
	NodeID int64   `json:"node_id"`
	Score  float64 `json:"score"`
}

// TopNodes returns the n highest scoring nodes, descending by score.
// Ties keep the graph's node order, so the result is deterministic.
// Nodes missing from scores are ignored.
func TopNodes(g *graph.Graph, scores map[int64]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	ranked := make([]RankedNode, 0, len(scores))
	for _, nodeID := range g.NodeIDs() {
		score, ok := scores[nodeID]
		if !ok {
			continue
		}
		ranked = append(ranked, RankedNode{NodeID: nodeID, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
