// Package prim_kruskal computes Minimum Spanning Trees of induced subgraphs
// with Prim’s or Kruskal’s algorithm. Its main client is the recombination
// proposal, which turns an MST under uniform random edge weights into a random
// spanning tree of the union of two districts.
//
// Algorithms Provided
//
//   - Kruskal(sub *core.Subgraph, weights []float64) ([]int, float64, error)
//
//   - Strategy: sort edge positions by weight, merge components with a
//     disjoint-set forest, stop at |V|−1 edges.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: the sort is stable, so equal weights keep sub.Edges() order.
//
//   - Prim(sub *core.Subgraph, weights []float64, root int) ([]int, float64, error)
//
//   - Strategy: grow one tree from root, always taking the lightest edge that
//     reaches a new vertex (min-heap keyed by weight, then edge position).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - RandomSpanningTree(sub, rng, opts) draws one uniform weight per edge and
//     dispatches through Compute.
//
// Both return positions into sub.Edges(); Adjacency turns them into a local
// adjacency list suitable for dfs.PostOrder.
//
// Error Conditions
//
//	- ErrInvalidGraph    nil subgraph or weight count mismatch.
//	- ErrRootOutOfRange  Prim root is not a local index.
//	- ErrDisconnected    empty subgraph or no spanning tree exists.
//	- ErrUnknownMethod   Compute with a method other than "prim" or "kruskal".
package prim_kruskal
