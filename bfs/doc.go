// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order, plus the
// connectivity checks districting constraints are built on.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance
//     from start and returns a BFSResult (Order, Depth, Parent).
//   - Connected(g, nodes) reports whether a node subset induces a connected
//     subgraph; Components(g, nodes) splits it into connected pieces.
//   - WithinSet(mask) restricts a search to a node subset such as one district.
//
// Determinism
//
//	core.Graph.Neighbors lists neighbors by ascending incident edge index and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithinSet(mask):         only enter vertices with mask[v] == true.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
