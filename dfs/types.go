// Package dfs defines types and options for depth-first traversal of
// adjacency lists, including cancellation, post-order hooks and depth limiting.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil adjacency list is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the root index is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotTree indicates that the adjacency list contains a cycle reachable
	// from the root, so parent links would not describe a tree.
	ErrNotTree = errors.New("dfs: adjacency is not a tree")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// RequireTree makes the traversal fail with ErrNotTree when a non-parent
	// neighbor has already been discovered.
	RequireTree bool
}

// DefaultOptions returns a DFSOptions struct with a background context,
// no hooks, no depth limit and RequireTree disabled.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithRequireTree returns an Option that rejects cyclic input with ErrNotTree.
func WithRequireTree() Option {
	return func(o *DFSOptions) {
		o.RequireTree = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	// Every vertex appears after all of its descendants.
	Order []int

	// Depth is the distance (#edges) from the root, -1 when unreached.
	Depth []int

	// Parent is the vertex from which each vertex was first discovered,
	// -1 for the root and unreached vertices.
	Parent []int
}

// Reached reports whether v was visited.
func (r *DFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
