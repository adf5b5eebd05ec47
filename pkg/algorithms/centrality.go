package algorithms

import (
	"context"
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
	"github.com/dd0wney/cluso-netanalysis/pkg/parallel"
)

// CentralityOptions configures ComputeAllCentrality
type CentralityOptions struct {
	Workers     int // Goroutines used by betweenness; <= 0 means GOMAXPROCS
	TopN        int
	Eigenvector EigenvectorOptions
}

// DefaultCentralityOptions returns the configuration used for reports
func DefaultCentralityOptions() CentralityOptions {
	return CentralityOptions{
		Workers:     runtime.GOMAXPROCS(0),
		TopN:        5,
		Eigenvector: DefaultEigenvectorOptions(),
	}
}

// EigenvectorOptions configures the power iteration
type EigenvectorOptions struct {
	MaxIterations int
	Tolerance     float64 // Per-node convergence threshold
}

// DefaultEigenvectorOptions returns default eigenvector configuration
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// CentralityResult contains the four centrality measures and their rankings
type CentralityResult struct {
	Degree           map[int64]float64
	Closeness        map[int64]float64
	Betweenness      map[int64]float64
	Eigenvector      map[int64]float64
	TopByDegree      []RankedNode
	TopByCloseness   []RankedNode
	TopByBetweenness []RankedNode
	TopByEigenvector []RankedNode
}

// ComputeAllCentrality computes every centrality measure and ranks the top
// opts.TopN nodes of each
func ComputeAllCentrality(ctx context.Context, g *graph.Graph, opts CentralityOptions) (*CentralityResult, error) {
	degree, err := DegreeCentrality(g)
	if err != nil {
		return nil, fmt.Errorf("degree centrality: %w", err)
	}

	closeness, err := ClosenessCentrality(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("closeness centrality: %w", err)
	}

	betweenness, err := BetweennessCentrality(ctx, g, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("betweenness centrality: %w", err)
	}

	eigenvector, err := EigenvectorCentrality(ctx, g, opts.Eigenvector)
	if err != nil {
		return nil, fmt.Errorf("eigenvector centrality: %w", err)
	}

	return &CentralityResult{
		Degree:           degree,
		Closeness:        closeness,
		Betweenness:      betweenness,
		Eigenvector:      eigenvector,
		TopByDegree:      TopNodes(g, degree, opts.TopN),
		TopByCloseness:   TopNodes(g, closeness, opts.TopN),
		TopByBetweenness: TopNodes(g, betweenness, opts.TopN),
		TopByEigenvector: TopNodes(g, eigenvector, opts.TopN),
	}, nil
}

// DegreeCentrality computes degree centrality for all nodes.
// (in-degree + out-degree) / (n - 1); a lone node scores 1.
func DegreeCentrality(g *graph.Graph) (map[int64]float64, error) {
	nodeIDs := g.NodeIDs()
	degree := make(map[int64]float64, len(nodeIDs))

	if len(nodeIDs) == 1 {
		degree[nodeIDs[0]] = 1.0
		return degree, nil
	}

	scale := 1.0 / float64(len(nodeIDs)-1)
	for _, nodeID := range nodeIDs {
		totalDegree := g.InDegree(nodeID) + g.OutDegree(nodeID)
		degree[nodeID] = float64(totalDegree) * scale
	}

	return degree, nil
}

// ClosenessCentrality computes closeness centrality for all nodes.
// Distances are measured towards each node (along incoming arcs) and scaled
// by the fraction of the graph that can reach it (Wasserman-Faust).
func ClosenessCentrality(ctx context.Context, g *graph.Graph) (map[int64]float64, error) {
	adj := newAdjacency(g)
	n := adj.size()
	closeness := make([]float64, n)

	distance := make([]int, n)
	queue := make([]int, 0, n)

	for source := 0; source < n; source++ {
		if source%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		for i := range distance {
			distance[i] = -1
		}
		distance[source] = 0
		queue = append(queue[:0], source)

		totalDistance := 0
		reachable := 0
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, w := range adj.pred[v] {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					totalDistance += distance[w]
					reachable++
					queue = append(queue, w)
				}
			}
		}

		if totalDistance > 0 && n > 1 {
			score := float64(reachable) / float64(totalDistance)
			score *= float64(reachable) / float64(n-1)
			closeness[source] = score
		}
	}

	return adj.scoreMap(closeness), nil
}

// BetweennessCentrality computes betweenness centrality for all nodes using
// Brandes' algorithm, normalised by 1/((n-1)(n-2)) for n > 2.
// Sources are split across workers; partial sums are added in chunk order
// so the result does not depend on scheduling.
func BetweennessCentrality(ctx context.Context, g *graph.Graph, workers int) (map[int64]float64, error) {
	adj := newAdjacency(g)
	n := adj.size()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := parallel.Chunks(n, workers)
	partials := make([][]float64, len(chunks))

	pool, err := parallel.NewWorkerPool(len(chunks))
	if err != nil {
		return nil, err
	}

	for i, chunk := range chunks {
		pool.Submit(func() error {
			partial, err := brandesRange(ctx, adj, chunk[0], chunk[1])
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	betweenness := make([]float64, n)
	for _, partial := range partials {
		floats.Add(betweenness, partial)
	}

	if n > 2 {
		floats.Scale(1.0/float64((n-1)*(n-2)), betweenness)
	}

	return adj.scoreMap(betweenness), nil
}

// brandesRange accumulates raw betweenness for sources in [from, to)
func brandesRange(ctx context.Context, adj *adjacency, from, to int) ([]float64, error) {
	n := adj.size()
	betweenness := make([]float64, n)

	stack := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for source := from; source < to; source++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stack = stack[:0]
		for i := 0; i < n; i++ {
			predecessors[i] = predecessors[i][:0]
			sigma[i] = 0
			distance[i] = -1
			delta[i] = 0
		}
		sigma[source] = 1
		distance[source] = 0

		// stack doubles as the BFS queue: it holds nodes in visit order
		stack = append(stack, source)
		for head := 0; head < len(stack); head++ {
			v := stack[head]
			for _, w := range adj.succ[v] {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					stack = append(stack, w)
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation in reverse visit order
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	return betweenness, nil
}

// EigenvectorCentrality computes eigenvector centrality from incoming arcs
// by power iteration on (A^T + I), normalising to unit Euclidean length.
// Converges when the L1 change falls below n*Tolerance.
func EigenvectorCentrality(ctx context.Context, g *graph.Graph, opts EigenvectorOptions) (map[int64]float64, error) {
	adj := newAdjacency(g)
	n := adj.size()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	last := make([]float64, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		copy(last, x)
		for v := 0; v < n; v++ {
			for _, w := range adj.succ[v] {
				x[w] += last[v]
			}
		}

		norm := floats.Norm(x, 2)
		if norm == 0 {
			norm = 1
		}
		floats.Scale(1/norm, x)

		if floats.Distance(x, last, 1) < float64(n)*opts.Tolerance {
			return adj.scoreMap(x), nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNoConvergence, opts.MaxIterations)
}
