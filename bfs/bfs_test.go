package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/bfs"
	"github.com/katalvlaran/recom/builder"
	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/gridgraph"
)

// lattice builds an n×n rook lattice; cell (x,y) has index y*n+x.
func lattice(t *testing.T, n int) *core.Graph {
	t.Helper()
	gg, err := gridgraph.NewLattice(n, n, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	_, err = bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_GridOrder verifies layering and the deterministic visit order on a 3×3 lattice.
func TestBFS_GridOrder(t *testing.T) {
	g := lattice(t, 3)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3, 2, 3, 4}, res.Depth)

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 8, path[4])
}

// TestBFS_MaxDepthAndFilter verifies depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
	_, err = res.PathTo(4)
	assert.Error(t, err)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_HooksAndCancel verifies OnVisit aborts and cancellation is honored.
func TestBFS_HooksAndCancel(t *testing.T) {
	g := lattice(t, 3)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 4 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConnectedAndComponents verifies subset connectivity on a 3×3 lattice.
func TestConnectedAndComponents(t *testing.T) {
	g := lattice(t, 3)

	assert.True(t, bfs.Connected(g, []int{0, 1, 2, 5, 8}))
	// The two corners 0 and 8 only touch through the middle of the grid.
	assert.False(t, bfs.Connected(g, []int{0, 1, 8}))
	assert.True(t, bfs.Connected(g, []int{4}))
	assert.False(t, bfs.Connected(g, nil))

	comps := bfs.Components(g, []int{0, 1, 8, 7, 2})
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 1, 2}, comps[0])
	assert.ElementsMatch(t, []int{8, 7}, comps[1])
}
