package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// buildGraph creates a graph from (from, to) pairs
func buildGraph(t *testing.T, edges ...[2]int64) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// bidirectional expands each pair into both arcs
func bidirectional(pairs ...[2]int64) [][2]int64 {
	edges := make([][2]int64, 0, 2*len(pairs))
	for _, p := range pairs {
		edges = append(edges, p, [2]int64{p[1], p[0]})
	}
	return edges
}

func cyclicTriangle(t *testing.T) *graph.Graph {
	return buildGraph(t, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})
}

func pathGraph(t *testing.T) *graph.Graph {
	return buildGraph(t, [2]int64{1, 2}, [2]int64{2, 3})
}

// starGraph is a bidirectional star with centre 0 and leaves 1..3
func starGraph(t *testing.T) *graph.Graph {
	return buildGraph(t, bidirectional([2]int64{0, 1}, [2]int64{0, 2}, [2]int64{0, 3})...)
}

// twoTriangles is two disjoint complete bidirectional triangles
func twoTriangles(t *testing.T) *graph.Graph {
	return buildGraph(t, bidirectional(
		[2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1},
		[2]int64{4, 5}, [2]int64{5, 6}, [2]int64{6, 4},
	)...)
}
