// Package core provides the immutable population graph that every districting
// chain runs on, plus the Builder used to assemble it.
//
// The Graph G = (V,E) carries:
//
//   - Per-vertex attributes: Population, Affiliation (party label), extra
//     numeric Attributes, free-form Metadata (e.g. grid coordinates).
//   - Per-edge attributes: SharedPerimeter and Kind (Orthogonal = rook,
//     Diagonal = queen-only adjacency).
//   - Dense indices for both vertices (0..N-1) and edges (0..E-1), assigned in
//     insertion order, so partitions store assignments as plain slices.
//
// Why an immutable graph?
//
//   - A chain proposes thousands of partitions over one fixed graph; sharing
//     a read-only structure makes every partition a thin assignment slice.
//   - Independent chains may run on separate goroutines against the same
//     *Graph without any locking.
//
// Builder Options (BuilderOption):
//
//	– WithStrictVertices()
//	    AddEdge rejects unknown endpoints instead of creating them.
//	– WithCapacity(vertices, edges)
//	    Pre-size the catalogs.
//
// Vertex and edge options:
//
//	– WithPopulation(p), WithAffiliation(label), WithAttribute(name, v), WithMetadata(k, v)
//	– WithSharedPerimeter(p), WithEdgeKind(kind)
//
// Core Methods:
//
//	// Construction
//	NewBuilder(opts...) *Builder
//	(*Builder).AddVertex(id string, opts ...VertexOption) error            // O(1) upsert
//	(*Builder).AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)
//	(*Builder).Build() (*Graph, error)                                      // O(V+E)
//
//	// Query (dense indices)
//	Population(i), Affiliation(i), Attribute(i, name)  // O(1)
//	Neighbors(i), Incident(i)                           // O(1), read-only slices
//	Endpoints(e), Edge(e)                               // O(1)
//	IndexOf(id), ID(i)                                  // O(1)
//
//	// Views
//	Induce(g, nodes) *Subgraph                          // O(V + Σdeg)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed,
//	ErrMultiEdgeNotAllowed, ErrNegativePopulation, ErrNegativePerimeter,
//	ErrEmptyGraph, ErrBuilderSealed
//
// Isolated vertices are accepted by Build. They are a documented
// precondition problem for contiguity constraints, not a construction error;
// use IsolatedVertices to detect them.
package core
