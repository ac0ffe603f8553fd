package bfs

import (
	"github.com/katalvlaran/recom/core"
)

// Connected reports whether the subgraph induced by nodes is connected.
// An empty node set is not connected; a single node is.
//
// Complexity: O(V + Σdeg(nodes)) time, O(V) memory.
func Connected(g *core.Graph, nodes []int) bool {
	if len(nodes) == 0 {
		return false
	}
	mask := make([]bool, g.VertexCount())
	for _, v := range nodes {
		mask[v] = true
	}
	res, err := BFS(g, nodes[0], WithinSet(mask))
	if err != nil {
		return false
	}
	for _, v := range nodes {
		if !res.Reached(v) {
			return false
		}
	}

	return true
}

// Components splits nodes into the connected pieces of their induced
// subgraph. Components are ordered by their first member in nodes, and each
// lists its members in BFS order.
//
// Complexity: O(k·V + Σdeg(nodes)) for k components.
func Components(g *core.Graph, nodes []int) [][]int {
	mask := make([]bool, g.VertexCount())
	for _, v := range nodes {
		mask[v] = true
	}
	seen := make([]bool, g.VertexCount())
	var comps [][]int
	for _, v := range nodes {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithinSet(mask))
		if err != nil {
			continue
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}
