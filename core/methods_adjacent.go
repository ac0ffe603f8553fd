// Package core: adjacency queries on the immutable Graph.
//
// Both Neighbors and Incident return slices owned by the Graph. They are
// read-only: callers that need to reorder or extend them must copy first.

package core

// Neighbors returns the dense indices of vertices adjacent to vertex i,
// ordered by ascending incident edge index. Complexity: O(1).
func (g *Graph) Neighbors(i int) []int { return g.neighbors[i] }

// Incident returns the ascending edge indices touching vertex i. Complexity: O(1).
func (g *Graph) Incident(i int) []int { return g.incident[i] }

// NeighborIDs returns the IDs adjacent to the vertex with the given ID.
// Returns ErrVertexNotFound for an unknown ID. Complexity: O(deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	idx, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(g.neighbors[idx]))
	for j, n := range g.neighbors[idx] {
		out[j] = g.vertices[n].ID
	}

	return out, nil
}

// HasEdge reports whether vertices u and v (dense indices) are adjacent.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	a, b := u, v
	if len(g.neighbors[a]) > len(g.neighbors[b]) {
		a, b = b, a
	}
	for _, n := range g.neighbors[a] {
		if n == b {
			return true
		}
	}

	return false
}

// AdjacencyList returns a map of vertex ID → neighbor IDs. Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.vertices))
	for i := range g.vertices {
		ids := make([]string, len(g.neighbors[i]))
		for j, n := range g.neighbors[i] {
			ids[j] = g.vertices[n].ID
		}
		out[g.vertices[i].ID] = ids
	}

	return out
}
