// Package dfs implements depth‑first search over adjacency lists of dense
// indices, the shape spanning trees take inside the recombination step.
//
// Key features:
//   - DFS(adj, root, opts...): iterative traversal, safe on deep trees.
//   - PostOrder(adj, root): the tree walk used for subtree aggregates.
//   - SubtreeSums: one bottom-up pass over a post-order.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the explicit stack and result slices.
package dfs

import (
	"fmt"
)

// frame is one entry of the explicit DFS stack: vertex v and the position of
// the next neighbor to inspect.
type frame struct {
	v    int
	next int
}

// DFS performs depth‑first search on adj starting at root. Neighbors are
// explored in slice order. Returns ErrGraphNil, ErrStartVertexNotFound,
// ErrNotTree (with WithRequireTree), the context error, or a hook error.
func DFS(adj [][]int, root int, opts ...Option) (*DFSResult, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= len(adj) {
		return nil, ErrStartVertexNotFound
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := len(adj)
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	res.Depth[root] = 0
	stack := []frame{{v: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.v
		if top.next < len(adj[u]) && (o.MaxDepth < 0 || res.Depth[u] < o.MaxDepth) {
			w := adj[u][top.next]
			top.next++
			if res.Depth[w] >= 0 {
				if o.RequireTree && w != res.Parent[u] {
					return res, fmt.Errorf("edge %d-%d: %w", u, w, ErrNotTree)
				}
				continue
			}
			select {
			case <-o.Ctx.Done():
				return res, o.Ctx.Err()
			default:
			}
			res.Depth[w] = res.Depth[u] + 1
			res.Parent[w] = u
			stack = append(stack, frame{v: w})
			continue
		}

		// All neighbors done: u finishes.
		stack = stack[:len(stack)-1]
		if o.OnExit != nil {
			if err := o.OnExit(u); err != nil {
				return res, fmt.Errorf("dfs: OnExit hook for %d: %w", u, err)
			}
		}
		res.Order = append(res.Order, u)
	}

	return res, nil
}

// PostOrder walks the tree adj from root and returns its post-order and
// parent links. Vertices unreachable from root are absent from the order.
// Cyclic input fails with ErrNotTree.
func PostOrder(adj [][]int, root int) (order, parent []int, err error) {
	res, err := DFS(adj, root, WithRequireTree())
	if err != nil {
		return nil, nil, err
	}

	return res.Order, res.Parent, nil
}

// SubtreeSums returns, for every vertex in order, the sum of weight over its
// subtree. order must be a post-order and parent its parent links.
// Entries of unreached vertices stay 0.
//
// Complexity: O(len(order)).
func SubtreeSums(order, parent []int, weight func(v int) int64) []int64 {
	sums := make([]int64, len(parent))
	for _, v := range order {
		sums[v] += weight(v)
		if p := parent[v]; p >= 0 {
			sums[p] += sums[v]
		}
	}

	return sums
}
