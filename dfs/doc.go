// Package dfs provides iterative depth-first traversal over adjacency lists
// of dense indices.
//
// Its main use is the subtree-population pass of the recombination step: a
// random spanning tree is walked once in post-order and SubtreeSums folds the
// populations bottom-up, so the population on either side of every tree edge
// is known in O(V).
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked on every discovery.
//   - WithOnExit(fn)         post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)    stop descending beyond limit (>=0).
//   - WithRequireTree()      fail with ErrNotTree on a cycle.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrNotTree.
//   - context.Canceled if ctx is done.
//   - any error returned by OnExit.
package dfs
