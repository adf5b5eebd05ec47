package algorithms

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// CalculateModularity computes directed modularity of a partition:
//
//	Q = sum_c [ L_c/m - (out_c * in_c)/m^2 ]
//
// where L_c is the number of arcs inside community c and out_c, in_c are the
// summed out- and in-degrees of its members. Nodes absent from
// nodeCommunity only count towards m. Returns 0 for a graph without arcs.
func CalculateModularity(g *graph.Graph, nodeCommunity map[int64]int) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0.0
	}

	internal := make(map[int]float64)
	outDegree := make(map[int]float64)
	inDegree := make(map[int]float64)

	for _, edge := range g.Edges() {
		from, fromOK := nodeCommunity[edge.FromNodeID]
		to, toOK := nodeCommunity[edge.ToNodeID]
		if fromOK {
			outDegree[from]++
		}
		if toOK {
			inDegree[to]++
		}
		if fromOK && toOK && from == to {
			internal[from]++
		}
	}

	q := 0.0
	for _, c := range slices.Sorted(maps.Keys(outDegree)) {
		q += internal[c]/m - (outDegree[c]*inDegree[c])/(m*m)
	}
	return q
}

// CommunityStats returns the number of communities and their mean size.
// The mean is NaN when there are no communities.
func CommunityStats(result *CommunityDetectionResult) (int, float64) {
	sizes := make([]float64, len(result.Communities))
	for i, community := range result.Communities {
		sizes[i] = float64(community.Size)
	}
	return len(sizes), stat.Mean(sizes, nil)
}
