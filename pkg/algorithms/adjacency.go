package algorithms

import "github.com/dd0wney/cluso-netanalysis/pkg/graph"

// adjacency is a dense, index-based view of a graph.
// Index i corresponds to graph.NodeIDs()[i].
type adjacency struct {
	ids  []int64
	succ [][]int
	pred [][]int
}

func newAdjacency(g *graph.Graph) *adjacency {
	ids := g.NodeIDs()
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := &adjacency{
		ids:  ids,
		succ: make([][]int, len(ids)),
		pred: make([][]int, len(ids)),
	}
	for _, edge := range g.Edges() {
		from := index[edge.FromNodeID]
		to := index[edge.ToNodeID]
		adj.succ[from] = append(adj.succ[from], to)
		adj.pred[to] = append(adj.pred[to], from)
	}
	return adj
}

func (a *adjacency) size() int {
	return len(a.ids)
}

// scoreMap converts an index-aligned score slice back to node IDs
func (a *adjacency) scoreMap(scores []float64) map[int64]float64 {
	result := make(map[int64]float64, len(scores))
	for i, score := range scores {
		result[a.ids[i]] = score
	}
	return result
}
