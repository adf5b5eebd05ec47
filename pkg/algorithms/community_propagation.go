package algorithms

import (
	"context"
	"math/rand/v2"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// LabelPropagationOptions configures LabelPropagation
type LabelPropagationOptions struct {
	Seed          uint64
	MaxIterations int // 0 means sweep until labels are stable
}

// DefaultLabelPropagationOptions returns the configuration used for reports
func DefaultLabelPropagationOptions() LabelPropagationOptions {
	return LabelPropagationOptions{Seed: 42}
}

// LabelPropagation performs asynchronous label propagation for community
// detection. Each sweep visits nodes in a seeded random order and moves a
// node to the most frequent label among its successors, keeping its current
// label when that is already one of the most frequent. The result is
// deterministic for a fixed seed.
func LabelPropagation(ctx context.Context, g *graph.Graph, opts LabelPropagationOptions) (*CommunityDetectionResult, error) {
	adj := newAdjacency(g)
	n := adj.size()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	// Initialize: each node in its own community
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	order := make([]int, n)
	labelCount := make(map[int]int)
	best := make([]int, 0)
	seen := make([]int, 0)

	iterations := 0
	converged := false
	for opts.MaxIterations <= 0 || iterations < opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++
		changed := false

		for i := range order {
			order[i] = i
		}
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, v := range order {
			if len(adj.succ[v]) == 0 {
				continue
			}

			// Count successor labels, remembering first-seen order so ties
			// are broken reproducibly
			clear(labelCount)
			seen = seen[:0]
			for _, w := range adj.succ[v] {
				label := labels[w]
				if labelCount[label] == 0 {
					seen = append(seen, label)
				}
				labelCount[label]++
			}

			maxCount := 0
			for _, label := range seen {
				maxCount = max(maxCount, labelCount[label])
			}

			best = best[:0]
			keep := false
			for _, label := range seen {
				if labelCount[label] == maxCount {
					best = append(best, label)
					if label == labels[v] {
						keep = true
					}
				}
			}

			if !keep {
				labels[v] = best[rng.IntN(len(best))]
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}
	}

	communities, nodeCommunity := groupLabels(adj, labels)

	return &CommunityDetectionResult{
		Communities:   communities,
		NodeCommunity: nodeCommunity,
		Modularity:    CalculateModularity(g, nodeCommunity),
		Iterations:    iterations,
		Converged:     converged,
	}, nil
}

// groupLabels builds communities ordered by their first member in node order
func groupLabels(adj *adjacency, labels []int) ([]*Community, map[int64]int) {
	communityOf := make(map[int]*Community)
	communities := make([]*Community, 0)
	nodeCommunity := make(map[int64]int, len(labels))
	membership := make([]int, len(labels))

	for i, label := range labels {
		community, ok := communityOf[label]
		if !ok {
			community = &Community{ID: len(communities)}
			communityOf[label] = community
			communities = append(communities, community)
		}
		community.Nodes = append(community.Nodes, adj.ids[i])
		community.Size++
		nodeCommunity[adj.ids[i]] = community.ID
		membership[i] = community.ID
	}

	// Density = internal arcs / size*(size-1), self-loops excluded
	internal := make([]int, len(communities))
	for v, targets := range adj.succ {
		for _, w := range targets {
			if w != v && membership[w] == membership[v] {
				internal[membership[v]]++
			}
		}
	}
	for _, community := range communities {
		if community.Size > 1 {
			possible := community.Size * (community.Size - 1)
			community.Density = float64(internal[community.ID]) / float64(possible)
		}
	}

	return communities, nodeCommunity
}
