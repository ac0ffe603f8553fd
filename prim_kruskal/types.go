// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/recom/core"
)

// ErrInvalidGraph indicates a nil subgraph or a weight slice whose length
// differs from the subgraph edge count.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a subgraph with one weight per edge")

// ErrRootOutOfRange indicates that Prim's root is not a local node index.
var ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

// ErrDisconnected indicates that the subgraph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It also applies to an empty subgraph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - local start vertex for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting local vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(sub, weights).
//	– If opts.Method == MethodPrim:    calls Prim(sub, weights, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]int   - positions into sub.Edges() forming the MST (empty for a single vertex).
//	float64 - total weight of the MST.
//	error   - non-nil if computation cannot proceed.
func Compute(sub *core.Subgraph, weights []float64, opts MSTOptions) ([]int, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(sub, weights)
	case MethodPrim:
		return Prim(sub, weights, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// RandomSpanningTree draws an independent uniform [0,1) weight for every
// subgraph edge, in sub.Edges() order, and returns the MST under those
// weights. It is the spanning-tree sampler of the recombination step.
//
// Determinism: for a fixed rng state and subgraph the result is fixed; the
// rng advances by exactly sub.EdgeCount() draws.
//
// Complexity: O(E) draws plus the cost of the chosen method.
func RandomSpanningTree(sub *core.Subgraph, rng *rand.Rand, opts MSTOptions) ([]int, error) {
	if sub == nil || rng == nil {
		return nil, ErrInvalidGraph
	}
	weights := make([]float64, sub.EdgeCount())
	for i := range weights {
		weights[i] = rng.Float64()
	}
	tree, _, err := Compute(sub, weights, opts)

	return tree, err
}

// Adjacency converts tree edge positions into a local adjacency list of the
// subgraph: adj[u] lists the local neighbors of u inside the tree.
// Complexity: O(V + |tree|).
func Adjacency(sub *core.Subgraph, tree []int) [][]int {
	adj := make([][]int, sub.Len())
	edges := sub.Edges()
	for _, pos := range tree {
		e := edges[pos]
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}
