// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on a *core.Subgraph with one weight per subgraph edge and produces
// the positions of the MST edges.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/recom/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of a subgraph under the given
// edge weights. It uses a disjoint-set (union-find) data structure with path
// compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if sub is nil or len(weights) != sub.EdgeCount().
//   - ErrDisconnected  : if sub.Len() == 0 or sub.Len() > 1 but the subgraph is not connected.
//
// Steps:
//  1. Validate inputs; a single vertex yields the trivial empty MST.
//  2. Sort edge positions by ascending weight (stable, so ties keep edge order).
//  3. Initialize DSU slices parent[] and rank[] for each local vertex.
//  4. For each edge (u,v) in order, if find(u) != find(v), union and include the edge.
//  5. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(sub *core.Subgraph, weights []float64) ([]int, float64, error) {
	if sub == nil || len(weights) != sub.EdgeCount() {
		return nil, 0, ErrInvalidGraph
	}
	n := sub.Len()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []int{}, 0, nil
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] < weights[order[j]]
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	edges := sub.Edges()
	mst := make([]int, 0, n-1)
	var total float64
	for _, pos := range order {
		ru, rv := find(edges[pos].U), find(edges[pos].V)
		if ru == rv {
			continue
		}
		// Union by rank.
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		mst = append(mst, pos)
		total += weights[pos]
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
