// Package core: vertex lifecycle on the Builder and vertex queries on Graph.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID, or updates the attributes of
// an existing one (upsert). Options are applied in order.
//
// Returns ErrEmptyVertexID for an empty id, ErrNegativePopulation when the
// resulting population is below zero, ErrBuilderSealed after Build.
// Complexity: O(len(opts)) amortized.
func (b *Builder) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return ErrBuilderSealed
	}

	return b.upsertVertex(id, opts)
}

// upsertVertex applies opts to a scratch copy first so a rejected option
// leaves the catalog untouched. Caller holds b.mu.
func (b *Builder) upsertVertex(id string, opts []VertexOption) error {
	idx, exists := b.index[id]
	var v Vertex
	if exists {
		v = b.vertices[idx]
	} else {
		v = Vertex{ID: id, Index: len(b.vertices)}
	}
	for _, opt := range opts {
		opt(&v)
	}
	if v.Population < 0 {
		return fmt.Errorf("%w: vertex %q population %d", ErrNegativePopulation, id, v.Population)
	}
	if exists {
		b.vertices[idx] = v
		return nil
	}
	b.index[id] = v.Index
	b.vertices = append(b.vertices, v)

	return nil
}

// HasVertex reports whether the Builder already holds a vertex with the given ID.
func (b *Builder) HasVertex(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.index[id]

	return ok
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// IndexOf resolves a vertex ID to its dense index.
func (g *Graph) IndexOf(id string) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// ID returns the vertex ID stored at dense index i.
// Panics if i is out of range, like a slice access.
func (g *Graph) ID(i int) string { return g.vertices[i].ID }

// Vertex returns a copy of the vertex at dense index i.
// Attributes and Metadata maps are shared with the graph and must not be mutated.
func (g *Graph) Vertex(i int) Vertex { return g.vertices[i] }

// Population returns the population of vertex i. Complexity: O(1).
func (g *Graph) Population(i int) int64 { return g.vertices[i].Population }

// Affiliation returns the party label of vertex i. Complexity: O(1).
func (g *Graph) Affiliation(i int) string { return g.vertices[i].Affiliation }

// Attribute returns a numeric attribute of vertex i. The name
// PopulationAttribute resolves to Vertex.Population.
func (g *Graph) Attribute(i int, name string) (int64, bool) {
	if name == PopulationAttribute {
		return g.vertices[i].Population, true
	}
	v, ok := g.vertices[i].Attributes[name]

	return v, ok
}

// TotalPopulation returns the sum of all vertex populations. Complexity: O(1).
func (g *Graph) TotalPopulation() int64 { return g.totalPopulation }

// Affiliations returns the sorted distinct non-empty party labels.
func (g *Graph) Affiliations() []string {
	out := make([]string, len(g.affiliations))
	copy(out, g.affiliations)

	return out
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, len(g.vertices))
	for i := range g.vertices {
		ids[i] = g.vertices[i].ID
	}
	sort.Strings(ids)

	return ids
}

// Degree returns the number of edges incident to vertex i.
func (g *Graph) Degree(i int) int { return len(g.incident[i]) }

// IsolatedVertices returns the dense indices of vertices with no incident edge.
// A graph with isolated vertices cannot satisfy a contiguity constraint
// unless each of them forms its own district.
func (g *Graph) IsolatedVertices() []int {
	var out []int
	for i := range g.incident {
		if len(g.incident[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}
