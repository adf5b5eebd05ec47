package visualization

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

func buildGraph(arcs ...[2]int64) *graph.Graph {
	g := graph.New()
	for _, arc := range arcs {
		g.AddEdge(arc[0], arc[1])
	}
	return g
}

// TestSpringLayout tests the force-directed layout algorithm
func TestSpringLayout(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3})

	layout := NewSpringLayout(&LayoutConfig{
		Width:      800,
		Height:     600,
		Iterations: 50,
		Seed:       42,
	})

	positions, err := layout.ComputeLayout(g, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}

	if len(positions) != 3 {
		t.Errorf("Expected 3 positions, got %d", len(positions))
	}

	for nodeID, pos := range positions {
		if pos.X < 0 || pos.X > 800 {
			t.Errorf("Node %d X position %f out of bounds", nodeID, pos.X)
		}
		if pos.Y < 0 || pos.Y > 600 {
			t.Errorf("Node %d Y position %f out of bounds", nodeID, pos.Y)
		}
	}

	dist12 := distance(positions[1], positions[2])
	dist23 := distance(positions[2], positions[3])
	dist13 := distance(positions[1], positions[3])

	// Node 1 and 3 are not directly connected, should be furthest apart
	if dist13 < dist12 || dist13 < dist23 {
		t.Error("Spring layout did not separate unconnected nodes properly")
	}
}

func TestSpringLayout_Deterministic(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}, [2]int64{3, 4})
	ids := g.NodeIDs()

	first, err := NewSpringLayout(&LayoutConfig{Width: 100, Height: 100, Seed: 42}).ComputeLayout(g, ids)
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}
	second, err := NewSpringLayout(&LayoutConfig{Width: 100, Height: 100, Seed: 42}).ComputeLayout(g, ids)
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}

	for _, id := range ids {
		if first[id] != second[id] {
			t.Errorf("Node %d: %v != %v for the same seed", id, first[id], second[id])
		}
	}
}

// TestCircularLayout tests circular layout algorithm
func TestCircularLayout(t *testing.T) {
	g := graph.New()
	nodeIDs := []int64{10, 20, 30, 40, 50}
	for _, id := range nodeIDs {
		g.AddNode(id)
	}

	layout := NewCircularLayout(&LayoutConfig{
		Width:  400,
		Height: 400,
	})

	positions, err := layout.ComputeLayout(g, nodeIDs)
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}

	// All nodes should be the same distance from center
	center := Position{X: 200, Y: 200}
	for _, nodeID := range nodeIDs {
		if d := distance(positions[nodeID], center); math.Abs(d-150) > 1e-9 {
			t.Errorf("Node %d at distance %f, want 150", nodeID, d)
		}
	}
}

// TestHierarchicalLayout tests hierarchical/tree layout
func TestHierarchicalLayout(t *testing.T) {
	g := buildGraph(
		[2]int64{1, 2}, [2]int64{1, 3},
		[2]int64{2, 4}, [2]int64{2, 5},
	)

	layout := NewHierarchicalLayout(&LayoutConfig{
		Width:  600,
		Height: 400,
	})

	positions, err := layout.ComputeLayout(g, []int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}

	rootY := positions[1].Y
	for nodeID, pos := range positions {
		if nodeID != 1 && pos.Y <= rootY {
			t.Errorf("Node %d has Y=%f, should be below root Y=%f", nodeID, pos.Y, rootY)
		}
	}

	if math.Abs(positions[2].Y-positions[3].Y) > 1.0 {
		t.Errorf("Children not at same level: Y1=%f, Y2=%f", positions[2].Y, positions[3].Y)
	}
	if math.Abs(positions[4].Y-positions[5].Y) > 1.0 {
		t.Errorf("Grandchildren not at same level: Y1=%f, Y2=%f", positions[4].Y, positions[5].Y)
	}
}

func TestHierarchicalLayout_Cycle(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})

	positions, err := NewHierarchicalLayout(&LayoutConfig{Width: 300, Height: 300}).ComputeLayout(g, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}
	if len(positions) != 3 {
		t.Errorf("Expected 3 positions, got %d", len(positions))
	}
}

// TestLayoutNormalization tests that coordinates are normalized to bounds
func TestLayoutNormalization(t *testing.T) {
	g := graph.New()
	for _, id := range []int64{1, 2, 3} {
		g.AddNode(id)
	}

	layout := NewSpringLayout(&LayoutConfig{
		Width:      100,
		Height:     100,
		Iterations: 10,
	})

	positions, _ := layout.ComputeLayout(g, g.NodeIDs())

	for nodeID, pos := range positions {
		if pos.X < 0 || pos.X > 100 {
			t.Errorf("Node %d X=%f out of bounds [0, 100]", nodeID, pos.X)
		}
		if pos.Y < 0 || pos.Y > 100 {
			t.Errorf("Node %d Y=%f out of bounds [0, 100]", nodeID, pos.Y)
		}
	}
}

// TestEmptyGraph tests layout on empty graph
func TestEmptyGraph(t *testing.T) {
	layout := NewSpringLayout(&LayoutConfig{
		Width:  800,
		Height: 600,
	})

	positions, err := layout.ComputeLayout(graph.New(), []int64{})
	if err != nil {
		t.Fatalf("Empty graph should not error: %v", err)
	}

	if len(positions) != 0 {
		t.Errorf("Expected 0 positions for empty graph, got %d", len(positions))
	}
}

// TestSingleNodeLayout tests layout with single node
func TestSingleNodeLayout(t *testing.T) {
	g := graph.New()
	g.AddNode(7)

	layout := NewSpringLayout(&LayoutConfig{
		Width:  800,
		Height: 600,
	})

	positions, err := layout.ComputeLayout(g, []int64{7})
	if err != nil {
		t.Fatalf("Single node layout failed: %v", err)
	}

	if pos := positions[7]; pos.X != 400 || pos.Y != 300 {
		t.Errorf("Single node not centered: (%f, %f)", pos.X, pos.Y)
	}
}

func TestNewLayout(t *testing.T) {
	for _, name := range []string{"", LayoutSpring, LayoutCircular, LayoutHierarchical} {
		if _, err := NewLayout(name, &LayoutConfig{Width: 10, Height: 10}); err != nil {
			t.Errorf("NewLayout(%q) failed: %v", name, err)
		}
	}

	if _, err := NewLayout("radial", &LayoutConfig{}); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("Expected ErrUnknownLayout, got %v", err)
	}
}

func TestSubsetNodes(t *testing.T) {
	g := buildGraph([2]int64{5, 3}, [2]int64{3, 9}, [2]int64{1, 5})

	tests := []struct {
		limit int
		want  []int64
	}{
		{limit: 2, want: []int64{5, 3}},
		{limit: 4, want: []int64{5, 3, 9, 1}},
		{limit: 1000, want: []int64{5, 3, 9, 1}},
	}

	for _, tt := range tests {
		got := SubsetNodes(g, tt.limit)
		if len(got) != len(tt.want) {
			t.Fatalf("limit %d: got %v, want %v", tt.limit, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("limit %d: got %v, want %v", tt.limit, got, tt.want)
				break
			}
		}
	}
}

// TestVisualizationExport tests exporting layout to JSON
func TestVisualizationExport(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4})

	viz, err := NewVisualization(g, 3, NewSpringLayout(&LayoutConfig{
		Width:      800,
		Height:     600,
		Iterations: 20,
		Seed:       42,
	}))
	if err != nil {
		t.Fatalf("NewVisualization failed: %v", err)
	}

	// Subset of 3 drops the 3 -> 4 arc
	if len(viz.Nodes) != 3 || len(viz.Edges) != 2 {
		t.Fatalf("Expected 3 nodes and 2 edges, got %d and %d", len(viz.Nodes), len(viz.Edges))
	}

	jsonData, err := viz.ExportJSON()
	if err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}

	var decoded struct {
		Nodes []struct {
			ID int64 `json:"id"`
		} `json:"nodes"`
		Edges []struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("JSON export is not valid JSON: %v", err)
	}
	if len(decoded.Nodes) != 3 || decoded.Edges[0].From != 1 || decoded.Edges[1].To != 3 {
		t.Errorf("Unexpected export: %s", jsonData)
	}
	if !strings.Contains(string(jsonData), `"from":2`) {
		t.Error("JSON export missing edge data")
	}
}

func distance(p1, p2 Position) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}
