package algorithms

import (
	"slices"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// ComponentResult holds a partition into connected components.
// It embeds CommunityDetectionResult so components share the community
// types; Modularity is always 0 since components are structural.
type ComponentResult struct {
	*CommunityDetectionResult
	Largest        *Community
	SingletonCount int
}

// tarjanState holds per-node state during Tarjan's DFS
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// StronglyConnectedComponents finds all SCCs using Tarjan's algorithm in
// O(V+E) time. Only outgoing arcs are followed.
func StronglyConnectedComponents(g *graph.Graph) *ComponentResult {
	adj := newAdjacency(g)
	n := adj.size()

	state := make([]tarjanState, n)
	visited := make([]bool, n)
	stack := make([]int, 0)
	indexCounter := 0
	var groups [][]int

	var strongconnect func(u int)
	strongconnect = func(u int) {
		state[u] = tarjanState{index: indexCounter, lowlink: indexCounter, onStack: true}
		visited[u] = true
		indexCounter++
		stack = append(stack, u)

		for _, v := range adj.succ[u] {
			if !visited[v] {
				strongconnect(v)
				state[u].lowlink = min(state[u].lowlink, state[v].lowlink)
			} else if state[v].onStack {
				state[u].lowlink = min(state[u].lowlink, state[v].index)
			}
		}

		// u is a root: pop its component
		if state[u].lowlink == state[u].index {
			var members []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				state[w].onStack = false
				members = append(members, w)
				if w == u {
					break
				}
			}
			groups = append(groups, members)
		}
	}

	for u := 0; u < n; u++ {
		if !visited[u] {
			strongconnect(u)
		}
	}

	return newComponentResult(adj, groups)
}

// WeaklyConnectedComponents finds components when arc direction is ignored
func WeaklyConnectedComponents(g *graph.Graph) *ComponentResult {
	adj := newAdjacency(g)
	n := adj.size()

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var groups [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		visited[start] = true
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, next := range [][]int{adj.succ[v], adj.pred[v]} {
				for _, w := range next {
					if !visited[w] {
						visited[w] = true
						queue = append(queue, w)
					}
				}
			}
		}
		groups = append(groups, slices.Clone(queue))
	}

	return newComponentResult(adj, groups)
}

// newComponentResult converts index groups into communities with members in
// node order
func newComponentResult(adj *adjacency, groups [][]int) *ComponentResult {
	result := &ComponentResult{
		CommunityDetectionResult: &CommunityDetectionResult{
			Communities:   make([]*Community, 0, len(groups)),
			NodeCommunity: make(map[int64]int, adj.size()),
			Converged:     true,
		},
	}

	for id, members := range groups {
		slices.Sort(members)
		community := &Community{
			ID:    id,
			Nodes: make([]int64, len(members)),
			Size:  len(members),
		}
		for i, idx := range members {
			community.Nodes[i] = adj.ids[idx]
			result.NodeCommunity[adj.ids[idx]] = id
		}
		result.Communities = append(result.Communities, community)

		if community.Size == 1 {
			result.SingletonCount++
		}
		if result.Largest == nil || community.Size > result.Largest.Size {
			result.Largest = community
		}
	}

	return result
}
