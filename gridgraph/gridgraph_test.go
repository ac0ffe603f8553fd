package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
	_, err := gridgraph.NewLattice(0, 3, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewLattice(3, 2, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	x, y := gg.Coordinate(gg.Index(2, 1))
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
}

//----------------------------------------------------------------------------//
// ToCoreGraph Tests
//----------------------------------------------------------------------------//

// TestToCoreGraph_Conn4 verifies that only rook edges exist under Conn4.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewLattice(10, 10, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	assert.Equal(t, 100, g.VertexCount())
	assert.Equal(t, 180, g.EdgeCount())
	assert.Equal(t, int64(100), g.TotalPopulation())
	assert.Empty(t, g.EdgesOfKind(core.Diagonal))

	idx, ok := g.IndexOf("3,2")
	require.True(t, ok)
	assert.Equal(t, gg.Index(3, 2), idx)
	assert.Equal(t, 2, g.Vertex(idx).Metadata["y"])
	assert.False(t, g.HasEdge(gg.Index(0, 0), gg.Index(1, 1)))
}

// TestToCoreGraph_Conn8 verifies queen-only diagonal edges under Conn8.
func TestToCoreGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewLattice(2, 2, opts)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	// The 2×2 queen lattice is K4: four rook sides plus two diagonals.
	assert.Equal(t, 6, g.EdgeCount())
	assert.Len(t, g.EdgesOfKind(core.Orthogonal), 4)
	diag := g.EdgesOfKind(core.Diagonal)
	require.Len(t, diag, 2)
	assert.Equal(t, 0.0, g.Edge(diag[0]).SharedPerimeter)

	gg, err = gridgraph.NewLattice(10, 10, opts)
	require.NoError(t, err)
	g, err = gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 180+162, g.EdgeCount())
}

// TestHenryLayout verifies row flipping, affiliation labels and the minority count.
func TestHenryLayout(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Labels = map[int]string{gridgraph.Minority: "Pink", gridgraph.Majority: "Purple"}
	gg, err := gridgraph.FromLayout(gridgraph.HenryRows, opts)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	pink := 0
	for i := 0; i < g.VertexCount(); i++ {
		if g.Affiliation(i) == "Pink" {
			pink++
		}
	}
	assert.Equal(t, 40, pink)
	assert.Equal(t, "Purple", g.Affiliation(gg.Index(0, 0)))
	assert.Equal(t, "Pink", g.Affiliation(gg.Index(2, 9)))

	opts.Labels = map[int]string{gridgraph.Majority: "Purple"}
	gg, err = gridgraph.FromLayout(gridgraph.HenryRows, opts)
	require.NoError(t, err)
	_, err = gg.ToCoreGraph()
	assert.ErrorIs(t, err, gridgraph.ErrUnknownLabel)
}

// TestStripes verifies stripe plans and their range checks.
func TestStripes(t *testing.T) {
	gg, err := gridgraph.NewLattice(4, 2, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	cols, err := gg.ColumnStripes(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 0, 0, 1, 1}, cols)

	rows, err := gg.RowStripes(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, rows)

	_, err = gg.ColumnStripes(5)
	assert.ErrorIs(t, err, gridgraph.ErrBadDistricts)
	_, err = gg.RowStripes(0)
	assert.ErrorIs(t, err, gridgraph.ErrBadDistricts)
}

// TestRender verifies the top-row-first picture of an assignment.
func TestRender(t *testing.T) {
	gg, err := gridgraph.NewLattice(2, 2, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	out, err := gg.Render([]int{0, 1, 2, 11})
	require.NoError(t, err)
	assert.Equal(t, "2b\n01\n", out)

	_, err = gg.Render([]int{0})
	assert.ErrorIs(t, err, gridgraph.ErrAssignmentSize)

	rows := gridgraph.ColumnLayout(3, 2, 1)
	assert.Equal(t, [][]int{{0, 1, 1}, {0, 1, 1}}, rows)
}
