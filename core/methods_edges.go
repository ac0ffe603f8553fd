// Package core: edge lifecycle on the Builder and edge queries on Graph.

package core

import (
	"fmt"
	"strconv"
)

const (
	edgeIDPrefix = "e"
)

// AddEdge creates an undirected edge between from and to and returns its ID.
// Missing endpoints are created with zero population unless the Builder was
// built WithStrictVertices.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrNegativePerimeter, ErrVertexNotFound (strict mode), ErrBuilderSealed.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built {
		return "", ErrBuilderSealed
	}

	// 2) Resolve or create endpoints
	u, err := b.endpoint(from)
	if err != nil {
		return "", err
	}
	v, err := b.endpoint(to)
	if err != nil {
		return "", err
	}

	// 3) Multi-edge check on the normalized pair
	key := [2]int{u, v}
	if u > v {
		key = [2]int{v, u}
	}
	if _, dup := b.pairs[key]; dup {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Construct, apply options, validate
	b.nextEdgeID++
	e := Edge{
		ID:    edgeIDPrefix + strconv.FormatUint(b.nextEdgeID, 10),
		Index: len(b.edges),
		From:  from,
		To:    to,
		U:     u,
		V:     v,
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.SharedPerimeter < 0 {
		b.nextEdgeID--
		return "", fmt.Errorf("%w: %s-%s", ErrNegativePerimeter, from, to)
	}

	b.pairs[key] = struct{}{}
	b.edges = append(b.edges, e)

	return e.ID, nil
}

// endpoint resolves id to a dense index, creating the vertex in lenient mode.
// Caller holds b.mu.
func (b *Builder) endpoint(id string) (int, error) {
	if idx, ok := b.index[id]; ok {
		return idx, nil
	}
	if b.strict {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if err := b.upsertVertex(id, nil); err != nil {
		return 0, err
	}

	return b.index[id], nil
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns a copy of the edge at dense index e.
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Endpoints returns the dense endpoint indices of edge e. Complexity: O(1).
func (g *Graph) Endpoints(e int) (u, v int) {
	return g.edges[e].U, g.edges[e].V
}

// Edges returns a copy of all edges in index order. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesOfKind returns the indices of all edges with the given kind in ascending order.
func (g *Graph) EdgesOfKind(k EdgeKind) []int {
	out := make([]int, 0, len(g.edges))
	for i := range g.edges {
		if g.edges[i].Kind == k {
			out = append(out, i)
		}
	}

	return out
}
