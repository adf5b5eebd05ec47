package visualization

import (
	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// HierarchicalLayout arranges nodes in BFS levels from the nodes no other
// member of the subset points to
type HierarchicalLayout struct {
	config *LayoutConfig
}

// NewHierarchicalLayout creates a new hierarchical layout
func NewHierarchicalLayout(config *LayoutConfig) *HierarchicalLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &HierarchicalLayout{config: config}
}

// ComputeLayout arranges nodes hierarchically, roots at the top
func (hl *HierarchicalLayout) ComputeLayout(g *graph.Graph, nodeIDs []int64) (map[int64]Position, error) {
	positions := make(map[int64]Position, len(nodeIDs))

	if len(nodeIDs) == 0 {
		return positions, nil
	}

	member := make(map[int64]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		member[id] = true
	}

	roots := make([]int64, 0)
	for _, nodeID := range nodeIDs {
		isRoot := true
		for _, from := range g.Predecessors(nodeID) {
			if member[from] && from != nodeID {
				isRoot = false
				break
			}
		}
		if isRoot {
			roots = append(roots, nodeID)
		}
	}

	if len(roots) == 0 {
		// Every node sits on a cycle; start from the first
		roots = []int64{nodeIDs[0]}
	}

	levels := make([][]int64, 0)
	visited := make(map[int64]bool, len(nodeIDs))
	for _, root := range roots {
		visited[root] = true
	}
	currentLevel := roots

	for len(currentLevel) > 0 {
		levels = append(levels, currentLevel)
		nextLevel := make([]int64, 0)

		for _, nodeID := range currentLevel {
			for _, to := range g.Successors(nodeID) {
				if member[to] && !visited[to] {
					visited[to] = true
					nextLevel = append(nextLevel, to)
				}
			}
		}

		currentLevel = nextLevel
	}

	// Unreached nodes join the last level
	for _, nodeID := range nodeIDs {
		if !visited[nodeID] {
			levels[len(levels)-1] = append(levels[len(levels)-1], nodeID)
		}
	}

	levelHeight := (hl.config.Height - 2*hl.config.Padding) / float64(len(levels))

	for levelIdx, level := range levels {
		y := hl.config.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		levelWidth := hl.config.Width - 2*hl.config.Padding
		spacing := levelWidth / float64(len(level)+1)

		for nodeIdx, nodeID := range level {
			x := hl.config.Padding + spacing*float64(nodeIdx+1)
			positions[nodeID] = Position{X: x, Y: y}
		}
	}

	return positions, nil
}
