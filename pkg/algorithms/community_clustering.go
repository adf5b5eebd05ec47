package algorithms

import "github.com/dd0wney/cluso-netanalysis/pkg/graph"

// ClusteringCoefficient computes the directed local clustering coefficient
// for all nodes. Every directed triangle through a node counts, whatever
// the arc orientations:
//
//	c(u) = T(u) / (2 * (dtot(u)*(dtot(u)-1) - 2*drecip(u)))
//
// where dtot is in+out degree and drecip the number of reciprocated
// neighbours. Self-loops are ignored.
func ClusteringCoefficient(g *graph.Graph) (map[int64]float64, error) {
	adj := newAdjacency(g)
	n := adj.size()
	coefficients := make([]float64, n)

	// Membership marks for the current node's neighbourhoods, stamped with
	// node index + 1 so they never need clearing
	inPred := make([]int, n)
	inSucc := make([]int, n)

	for i := 0; i < n; i++ {
		stamp := i + 1
		preds := withoutSelf(adj.pred[i], i)
		succs := withoutSelf(adj.succ[i], i)

		for _, p := range preds {
			inPred[p] = stamp
		}
		for _, s := range succs {
			inSucc[s] = stamp
		}

		reciprocal := 0
		for _, s := range succs {
			if inPred[s] == stamp {
				reciprocal++
			}
		}

		// |N(i) ∩ N(j)| over all four orientation pairs, for every neighbour
		// j; reciprocated neighbours are visited twice
		triangles := 0
		countShared := func(j int) {
			for _, k := range adj.pred[j] {
				if k == j {
					continue
				}
				if inPred[k] == stamp {
					triangles++
				}
				if inSucc[k] == stamp {
					triangles++
				}
			}
			for _, k := range adj.succ[j] {
				if k == j {
					continue
				}
				if inPred[k] == stamp {
					triangles++
				}
				if inSucc[k] == stamp {
					triangles++
				}
			}
		}
		for _, j := range preds {
			countShared(j)
		}
		for _, j := range succs {
			countShared(j)
		}

		if triangles == 0 {
			continue
		}
		total := len(preds) + len(succs)
		possible := 2 * (total*(total-1) - 2*reciprocal)
		coefficients[i] = float64(triangles) / float64(possible)
	}

	return adj.scoreMap(coefficients), nil
}

// AverageClusteringCoefficient computes the mean clustering coefficient over
// all nodes, 0 for an empty graph
func AverageClusteringCoefficient(g *graph.Graph) (float64, error) {
	coefficients, err := ClusteringCoefficient(g)
	if err != nil {
		return 0.0, err
	}

	if len(coefficients) == 0 {
		return 0.0, nil
	}

	// Sum in node order
	sum := 0.0
	for _, nodeID := range g.NodeIDs() {
		sum += coefficients[nodeID]
	}

	return sum / float64(len(coefficients)), nil
}

func withoutSelf(neighbors []int, self int) []int {
	for idx, v := range neighbors {
		if v == self {
			out := make([]int, 0, len(neighbors)-1)
			out = append(out, neighbors[:idx]...)
			return append(out, neighbors[idx+1:]...)
		}
	}
	return neighbors
}
