package visualization

import (
	"math"
	"math/rand/v2"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// SpringLayout implements Fruchterman-Reingold force-directed layout.
// Arcs attract in both directions; the graph is treated as undirected.
type SpringLayout struct {
	config *LayoutConfig
}

// NewSpringLayout creates a new spring layout
func NewSpringLayout(config *LayoutConfig) *SpringLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &SpringLayout{config: config}
}

// ComputeLayout computes positions using force-directed algorithm
func (sl *SpringLayout) ComputeLayout(g *graph.Graph, nodeIDs []int64) (map[int64]Position, error) {
	if len(nodeIDs) == 0 {
		return make(map[int64]Position), nil
	}

	// Single node - center it
	if len(nodeIDs) == 1 {
		return map[int64]Position{
			nodeIDs[0]: {
				X: sl.config.Width / 2,
				Y: sl.config.Height / 2,
			},
		}, nil
	}

	n := len(nodeIDs)
	index := make(map[int64]int, n)
	for i, id := range nodeIDs {
		index[id] = i
	}

	// Undirected neighbour lists restricted to the subset, deduplicated
	neighbors := make([][]int, n)
	for i, id := range nodeIDs {
		seen := make(map[int]bool)
		for _, other := range append(g.Successors(id), g.Predecessors(id)...) {
			j, ok := index[other]
			if !ok || j == i || seen[j] {
				continue
			}
			seen[j] = true
			neighbors[i] = append(neighbors[i], j)
		}
	}

	// Seeded initial placement
	rng := rand.New(rand.NewPCG(sl.config.Seed, sl.config.Seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()*(sl.config.Width-2*sl.config.Padding) + sl.config.Padding
		ys[i] = rng.Float64()*(sl.config.Height-2*sl.config.Padding) + sl.config.Padding
	}

	k := math.Sqrt((sl.config.Width * sl.config.Height) / float64(n)) // Optimal distance
	temperature := sl.config.Width / 10.0

	fx := make([]float64, n)
	fy := make([]float64, n)

	for iter := 0; iter < sl.config.Iterations; iter++ {
		clear(fx)
		clear(fy)

		// Repulsion between all nodes
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Max(math.Hypot(dx, dy), 0.01)

				force := (k * k) / dist
				rx := (dx / dist) * force
				ry := (dy / dist) * force

				fx[i] += rx
				fy[i] += ry
				fx[j] -= rx
				fy[j] -= ry
			}
		}

		// Attraction between connected nodes
		for i := 0; i < n; i++ {
			for _, j := range neighbors[i] {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Hypot(dx, dy)
				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx[i] -= (dx / dist) * force
				fy[i] -= (dy / dist) * force
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(sl.config.Iterations)
		for i := 0; i < n; i++ {
			force := math.Hypot(fx[i], fy[i])
			if force > 0 {
				step := math.Min(force, temperature) * cool
				xs[i] += (fx[i] / force) * step
				ys[i] += (fy[i] / force) * step
			}
		}

		temperature *= 0.95
	}

	positions := make(map[int64]Position, n)
	for i, id := range nodeIDs {
		positions[id] = Position{X: xs[i], Y: ys[i]}
	}

	return normalizePositions(positions, sl.config.Width, sl.config.Height, sl.config.Padding), nil
}
