package algorithms

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

func TestAverageClusteringCoefficient(t *testing.T) {
	tests := []struct {
		name     string
		graph    func(t *testing.T) *graph.Graph
		expected float64
	}{
		{"empty graph", func(t *testing.T) *graph.Graph { return graph.New() }, 0.0},
		{"cyclic triangle", cyclicTriangle, 0.5},
		{"complete bidirectional triangle", func(t *testing.T) *graph.Graph {
			return buildGraph(t, bidirectional([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})...)
		}, 1.0},
		{"star has no triangles", starGraph, 0.0},
		{"path has no triangles", pathGraph, 0.0},
		{"self-loop ignored", func(t *testing.T) *graph.Graph {
			return buildGraph(t, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}, [2]int64{1, 1})
		}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, err := AverageClusteringCoefficient(tt.graph(t))
			if err != nil {
				t.Fatalf("AverageClusteringCoefficient failed: %v", err)
			}
			if math.Abs(avg-tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, avg)
			}
		})
	}
}

func TestClusteringCoefficient_TransitiveTriple(t *testing.T) {
	// 1->2, 1->3, 2->3: one directed triangle seen from every corner
	g := buildGraph(t, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{2, 3})

	coefficients, err := ClusteringCoefficient(g)
	if err != nil {
		t.Fatalf("ClusteringCoefficient failed: %v", err)
	}

	// Each node: total degree 2, no reciprocated arcs, T = 2 -> 2/4
	for _, nodeID := range []int64{1, 2, 3} {
		if math.Abs(coefficients[nodeID]-0.5) > 1e-12 {
			t.Errorf("Node %d: expected 0.5, got %v", nodeID, coefficients[nodeID])
		}
	}
}

func TestClusteringCoefficient_PartialNeighbourhood(t *testing.T) {
	// Node 1 points at 2, 3, 4; only 2->3 closes a triangle
	g := buildGraph(t, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{2, 3})

	coefficients, err := ClusteringCoefficient(g)
	if err != nil {
		t.Fatalf("ClusteringCoefficient failed: %v", err)
	}

	// dtot = 3, T = 2 -> 2 / (2 * 6) = 1/6
	if math.Abs(coefficients[1]-1.0/6.0) > 1e-12 {
		t.Errorf("Expected 1/6 for node 1, got %v", coefficients[1])
	}
	if coefficients[4] != 0.0 {
		t.Errorf("Expected 0 for node 4, got %v", coefficients[4])
	}
}
