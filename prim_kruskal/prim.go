// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST of a *core.Subgraph from a root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/recom/core"
)

// Prim computes the Minimum Spanning Tree (MST) of a subgraph under the given
// edge weights by growing outwards from root using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph   : if sub is nil or len(weights) != sub.EdgeCount().
//   - ErrDisconnected   : if sub.Len() == 0 or the subgraph is not connected.
//   - ErrRootOutOfRange : if root is not in [0, sub.Len()).
//
// Steps:
//  1. Validate inputs; a single vertex yields the trivial empty MST.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip it if both endpoints are visited, otherwise
//     add it, visit the new endpoint and push its edges.
//  4. Fewer than |V|-1 edges after the heap drains → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(sub *core.Subgraph, weights []float64, root int) ([]int, float64, error) {
	if sub == nil || len(weights) != sub.EdgeCount() {
		return nil, 0, ErrInvalidGraph
	}
	n := sub.Len()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	if n == 1 {
		return []int{}, 0, nil
	}

	edges := sub.Edges()
	visited := make([]bool, n)
	mst := make([]int, 0, n-1)
	var total float64

	pq := &edgePQ{weights: weights}
	heap.Init(pq)
	visit := func(u int) {
		visited[u] = true
		for _, pos := range sub.Incident(u) {
			if !visited[edges[pos].U] || !visited[edges[pos].V] {
				heap.Push(pq, pos)
			}
		}
	}
	visit(root)

	for pq.Len() > 0 && len(mst) < n-1 {
		pos := heap.Pop(pq).(int)
		e := edges[pos]
		var next int
		switch {
		case !visited[e.U]:
			next = e.U
		case !visited[e.V]:
			next = e.V
		default:
			// Both endpoints already in the tree: this edge would close a cycle.
			continue
		}
		mst = append(mst, pos)
		total += weights[pos]
		visit(next)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgePQ implements heap.Interface for a min‐heap of edge positions, ordered by
// weight and then by position so equal weights pop deterministically.
type edgePQ struct {
	items   []int
	weights []float64
}

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by edge position.
func (pq edgePQ) Less(i, j int) bool {
	wi, wj := pq.weights[pq.items[i]], pq.weights[pq.items[j]]
	if wi != wj {
		return wi < wj
	}

	return pq.items[i] < pq.items[j]
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new edge position to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	pos := old[n-1]
	pq.items = old[:n-1]

	return pos
}
