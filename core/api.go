// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Build (Builder → immutable Graph) and read-only summary getters.
// Policy:
//   - Build is the only place that derives adjacency; Graph never changes afterwards.
//   - Every exported function documents complexity.

package core

import (
	"sort"
)

// Build seals the Builder and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: Reject an empty catalog and repeated Build calls.
//   - Stage 2: Copy vertices and edges so the Graph shares no backing arrays with the Builder.
//   - Stage 3: Derive incident/neighbor lists in ascending edge order.
//   - Stage 4: Aggregate total population and the distinct affiliation labels.
//
// Returns:
//   - *Graph: immutable, safe for concurrent reads.
//
// Errors:
//   - ErrEmptyGraph when no vertex was added.
//   - ErrBuilderSealed on a second call.
//
// Determinism:
//   - Dense indices follow insertion order; identical call sequences yield identical graphs.
//
// Complexity:
//   - Time O(V + E + A log A) where A is the number of distinct labels, Space O(V + E).
func (b *Builder) Build() (*Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, ErrBuilderSealed
	}
	if len(b.vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	b.built = true

	n := len(b.vertices)
	g := &Graph{
		vertices:  make([]Vertex, n),
		index:     make(map[string]int, n),
		edges:     make([]Edge, len(b.edges)),
		incident:  make([][]int, n),
		neighbors: make([][]int, n),
	}
	copy(g.vertices, b.vertices)
	copy(g.edges, b.edges)
	for id, idx := range b.index {
		g.index[id] = idx
	}

	// Edges are visited in ascending index order, so every incident list is sorted.
	for ei := range g.edges {
		u, v := g.edges[ei].U, g.edges[ei].V
		g.incident[u] = append(g.incident[u], ei)
		g.neighbors[u] = append(g.neighbors[u], v)
		g.incident[v] = append(g.incident[v], ei)
		g.neighbors[v] = append(g.neighbors[v], u)
	}

	seen := make(map[string]struct{})
	for i := range g.vertices {
		g.totalPopulation += g.vertices[i].Population
		if a := g.vertices[i].Affiliation; a != "" {
			if _, ok := seen[a]; !ok {
				seen[a] = struct{}{}
				g.affiliations = append(g.affiliations, a)
			}
		}
	}
	sort.Strings(g.affiliations)

	return g, nil
}

// GraphStats is a compact summary of a Graph.
type GraphStats struct {
	VertexCount      int
	EdgeCount        int
	OrthogonalEdges  int
	DiagonalEdges    int
	TotalPopulation  int64
	IsolatedVertices int
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:     len(g.vertices),
		EdgeCount:       len(g.edges),
		TotalPopulation: g.totalPopulation,
	}
	for i := range g.edges {
		if g.edges[i].Kind == Diagonal {
			stats.DiagonalEdges++
		} else {
			stats.OrthogonalEdges++
		}
	}
	for i := range g.incident {
		if len(g.incident[i]) == 0 {
			stats.IsolatedVertices++
		}
	}

	return &stats
}
