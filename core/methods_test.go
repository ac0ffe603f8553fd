// SPDX-License-Identifier: MIT
// Package core_test verifies Builder and Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/core"
)

// buildSquare constructs the 4-cycle
//
//	A───B
//	│   │
//	C───D
//
// with populations 1..4 and alternating affiliations.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex("A", core.WithPopulation(1), core.WithAffiliation("red")))
	require.NoError(t, b.AddVertex("B", core.WithPopulation(2), core.WithAffiliation("blue")))
	require.NoError(t, b.AddVertex("C", core.WithPopulation(3), core.WithAffiliation("blue")))
	require.NoError(t, b.AddVertex("D", core.WithPopulation(4), core.WithAffiliation("red")))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := b.AddEdge(e[0], e[1], core.WithSharedPerimeter(1))
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// TestBuilder_AddVertexValidation verifies sentinel errors and upsert semantics.
func TestBuilder_AddVertexValidation(t *testing.T) {
	b := core.NewBuilder()

	assert.ErrorIs(t, b.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, b.AddVertex("X", core.WithPopulation(-1)), core.ErrNegativePopulation)
	assert.False(t, b.HasVertex("X"), "rejected vertex must not be stored")

	require.NoError(t, b.AddVertex("X", core.WithPopulation(5)))
	// Second AddVertex updates attributes but keeps the index.
	require.NoError(t, b.AddVertex("X", core.WithAffiliation("red")))

	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount())
	v := g.Vertex(0)
	assert.Equal(t, int64(5), v.Population)
	assert.Equal(t, "red", v.Affiliation)
}

// TestBuilder_AddEdgeValidation verifies loop, multi-edge, perimeter and strict-mode rules.
func TestBuilder_AddEdgeValidation(t *testing.T) {
	b := core.NewBuilder()

	_, err := b.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = b.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := b.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = b.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = b.AddEdge("B", "C", core.WithSharedPerimeter(-2))
	assert.ErrorIs(t, err, core.ErrNegativePerimeter)

	// The rejected edge must not consume an ID.
	id, err = b.AddEdge("B", "C")
	require.NoError(t, err)
	assert.Equal(t, "e2", id)

	strict := core.NewBuilder(core.WithStrictVertices())
	require.NoError(t, strict.AddVertex("A"))
	_, err = strict.AddEdge("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestBuilder_BuildSeals verifies Build rejects empty catalogs and later mutation.
func TestBuilder_BuildSeals(t *testing.T) {
	_, err := core.NewBuilder().Build()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	b := core.NewBuilder()
	require.NoError(t, b.AddVertex("A"))
	_, err = b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddVertex("B"), core.ErrBuilderSealed)
	_, err = b.AddEdge("A", "B")
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
}

// TestGraph_Queries verifies dense-index lookups on the square fixture.
func TestGraph_Queries(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, int64(10), g.TotalPopulation())
	assert.Equal(t, []string{"blue", "red"}, g.Affiliations())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	a, ok := g.IndexOf("A")
	require.True(t, ok)
	assert.Equal(t, 0, a)
	assert.Equal(t, []int{1, 2}, g.Neighbors(a))
	assert.Equal(t, []int{0, 1}, g.Incident(a))
	assert.Equal(t, 2, g.Degree(a))

	d, _ := g.IndexOf("D")
	assert.True(t, g.HasEdge(1, d))
	assert.False(t, g.HasEdge(a, d))

	u, v := g.Endpoints(3)
	assert.Equal(t, 2, u)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, g.Edge(3).Other(2))

	pop, ok := g.Attribute(d, core.PopulationAttribute)
	require.True(t, ok)
	assert.Equal(t, int64(4), pop)
	_, ok = g.Attribute(d, "missing")
	assert.False(t, ok)

	ids, err := g.NeighborIDs("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Empty(t, g.IsolatedVertices())
	stats := g.Stats()
	assert.Equal(t, 4, stats.OrthogonalEdges)
	assert.Equal(t, 0, stats.DiagonalEdges)
}

// TestGraph_EdgeKinds verifies EdgesOfKind partitions the catalog.
func TestGraph_EdgeKinds(t *testing.T) {
	b := core.NewBuilder()
	_, _ = b.AddEdge("A", "B")
	_, _ = b.AddEdge("A", "C", core.WithEdgeKind(core.Diagonal))
	_, _ = b.AddEdge("B", "C")
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, g.EdgesOfKind(core.Orthogonal))
	assert.Equal(t, []int{1}, g.EdgesOfKind(core.Diagonal))
	assert.Equal(t, "diagonal", core.Diagonal.String())
}

// TestGraph_ConcurrentReads exercises read-only access from many goroutines.
// Run with -race to catch accidental mutation.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := buildSquare(t)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sum int64
			for i := 0; i < g.VertexCount(); i++ {
				sum += g.Population(i)
				_ = g.Neighbors(i)
			}
			assert.Equal(t, int64(10), sum)
		}()
	}
	wg.Wait()
}

// TestInduce verifies local re-indexing and edge selection of subgraph views.
func TestInduce(t *testing.T) {
	g := buildSquare(t)

	// Keep A, B, D: edges A-B and B-D survive, A-C and C-D do not.
	s := core.Induce(g, []int{0, 1, 3, 1})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 1, 3}, s.Nodes())
	require.Equal(t, 2, s.EdgeCount())
	assert.Equal(t, core.SubEdge{U: 0, V: 1, Edge: 0}, s.Edges()[0])
	assert.Equal(t, core.SubEdge{U: 1, V: 2, Edge: 2}, s.Edges()[1])
	assert.Equal(t, []int{0, 1}, s.Incident(1))

	l, ok := s.Local(3)
	require.True(t, ok)
	assert.Equal(t, 2, l)
	_, ok = s.Local(2)
	assert.False(t, ok)
	assert.Equal(t, int64(4), s.Population(2))
	assert.Same(t, g, s.Graph())
}
