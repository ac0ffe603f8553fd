// Package core defines the central Graph, Vertex, and Edge types used by the
// districting chain, together with the Builder that assembles them.
//
// A Graph is immutable once Build returns: every vertex gets a dense index
// 0..N-1 (insertion order) and every edge a dense index 0..E-1, so the hot
// loops of the chain work on slices instead of maps. Immutable graphs are safe
// for concurrent readers without locking; only the Builder carries a mutex.
//
// This file declares Vertex, Edge, Graph, the option types, sentinel errors,
// and the NewBuilder constructor.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrLoopNotAllowed       - self-loop edge.
//	ErrMultiEdgeNotAllowed  - second edge between the same endpoints.
//	ErrNegativePopulation   - vertex population below zero.
//	ErrNegativePerimeter    - edge shared perimeter below zero.
//	ErrEmptyGraph           - Build called with no vertices.
//	ErrBuilderSealed        - mutation after Build.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativePopulation indicates a vertex was given a population below zero.
	ErrNegativePopulation = errors.New("core: population must be non-negative")

	// ErrNegativePerimeter indicates an edge was given a negative shared perimeter.
	ErrNegativePerimeter = errors.New("core: shared perimeter must be non-negative")

	// ErrEmptyGraph indicates Build was called before any vertex was added.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrBuilderSealed indicates the Builder was mutated after Build.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// PopulationAttribute is the attribute name that resolves to Vertex.Population
// in Graph.Attribute lookups.
const PopulationAttribute = "population"

// EdgeKind classifies adjacency between two units.
type EdgeKind uint8

const (
	// Orthogonal marks rook adjacency (units share a side). It is the default.
	Orthogonal EdgeKind = iota
	// Diagonal marks queen-only adjacency (units touch at a corner).
	Diagonal
)

// String implements fmt.Stringer.
func (k EdgeKind) String() string {
	switch k {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Vertex represents one population unit.
//
// ID uniquely identifies this Vertex within its Graph; Index is its dense
// position assigned by the Builder.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the dense position 0..N-1 in insertion order.
	Index int

	// Population is the number of people living in the unit.
	Population int64

	// Affiliation is the categorical party label of the unit.
	Affiliation string

	// Attributes holds extra numeric columns that can be tallied.
	Attributes map[string]int64

	// Metadata stores arbitrary user data (grid coordinates, labels).
	// It is not copied by Graph accessors.
	Metadata map[string]interface{}
}

// Edge represents an undirected adjacency between two vertices.
type Edge struct {
	// ID uniquely identifies this edge ("e1", "e2", ...).
	ID string

	// Index is the dense position 0..E-1 in insertion order.
	Index int

	// From and To are the endpoint vertex IDs.
	From, To string

	// U and V are the endpoint dense indices (U is From, V is To).
	U, V int

	// SharedPerimeter is the boundary length between the two units.
	SharedPerimeter float64

	// Kind is rook (Orthogonal) or queen-only (Diagonal) adjacency.
	Kind EdgeKind
}

// Other returns the endpoint opposite to idx. idx must be U or V.
func (e Edge) Other(idx int) int {
	if e.U == idx {
		return e.V
	}

	return e.U
}

// BuilderOption configures a Builder before any vertex is added.
type BuilderOption func(b *Builder)

// WithStrictVertices makes AddEdge reject unknown endpoints with
// ErrVertexNotFound instead of creating zero-population vertices.
func WithStrictVertices() BuilderOption {
	return func(b *Builder) { b.strict = true }
}

// WithCapacity pre-sizes the vertex and edge catalogs.
func WithCapacity(vertices, edges int) BuilderOption {
	return func(b *Builder) {
		if vertices > 0 {
			b.vertices = make([]Vertex, 0, vertices)
			b.index = make(map[string]int, vertices)
		}
		if edges > 0 {
			b.edges = make([]Edge, 0, edges)
		}
	}
}

// VertexOption sets attributes on a vertex when it is added.
type VertexOption func(v *Vertex)

// WithPopulation sets the vertex population.
func WithPopulation(p int64) VertexOption {
	return func(v *Vertex) { v.Population = p }
}

// WithAffiliation sets the vertex party label.
func WithAffiliation(label string) VertexOption {
	return func(v *Vertex) { v.Affiliation = label }
}

// WithAttribute sets an extra numeric attribute.
func WithAttribute(name string, value int64) VertexOption {
	return func(v *Vertex) {
		if v.Attributes == nil {
			v.Attributes = make(map[string]int64)
		}
		v.Attributes[name] = value
	}
}

// WithMetadata stores arbitrary data on the vertex.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) {
		if v.Metadata == nil {
			v.Metadata = make(map[string]interface{})
		}
		v.Metadata[key] = value
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithSharedPerimeter sets the boundary length carried by the edge.
func WithSharedPerimeter(p float64) EdgeOption {
	return func(e *Edge) { e.SharedPerimeter = p }
}

// WithEdgeKind marks the edge as rook or queen-only adjacency.
func WithEdgeKind(k EdgeKind) EdgeOption {
	return func(e *Edge) { e.Kind = k }
}

// Builder accumulates vertices and edges and produces an immutable Graph.
//
// mu guards all fields; a Builder may be filled from several goroutines.
// nextEdgeID generates "e1", "e2", ... in insertion order.
type Builder struct {
	mu sync.Mutex

	strict bool // reject unknown endpoints in AddEdge
	built  bool // Build already returned a Graph

	nextEdgeID uint64
	vertices   []Vertex
	index      map[string]int // vertex ID → dense index
	edges      []Edge
	pairs      map[[2]int]struct{} // normalized (min,max) endpoint pairs
}

// NewBuilder creates an empty Builder with the given options.
// Complexity: O(1)
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		index: make(map[string]int),
		pairs: make(map[[2]int]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Graph is the immutable adjacency structure shared by every partition of a chain.
//
// incident[i] lists edge indices touching vertex i in ascending order and
// neighbors[i][j] is the endpoint opposite to incident[i][j].
type Graph struct {
	vertices  []Vertex
	index     map[string]int
	edges     []Edge
	incident  [][]int
	neighbors [][]int

	totalPopulation int64
	affiliations    []string // sorted distinct non-empty labels
}
