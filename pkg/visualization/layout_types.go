package visualization

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

var (
	// ErrUnknownLayout is returned by NewLayout for an unregistered name
	ErrUnknownLayout = errors.New("unknown layout")

	// ErrEmptyVisualization is returned when there is nothing to draw
	ErrEmptyVisualization = errors.New("visualization has no nodes")
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       uint64  // Initial placement seed for SpringLayout
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g *graph.Graph, nodeIDs []int64) (map[int64]Position, error)
}

// Layout names accepted by NewLayout
const (
	LayoutSpring       = "spring"
	LayoutCircular     = "circular"
	LayoutHierarchical = "hierarchical"
)

// NewLayout returns the layout registered under name
func NewLayout(name string, config *LayoutConfig) (Layout, error) {
	switch name {
	case LayoutSpring, "":
		return NewSpringLayout(config), nil
	case LayoutCircular:
		return NewCircularLayout(config), nil
	case LayoutHierarchical:
		return NewHierarchicalLayout(config), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Visualization represents a graph visualization with layout
type Visualization struct {
	Nodes     []int64
	Edges     []*graph.Edge
	Positions map[int64]Position
}
