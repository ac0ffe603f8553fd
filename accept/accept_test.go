package accept_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/gridgraph"
	"github.com/katalvlaran/recom/partition"
)

func plans(t *testing.T) (compact, ragged *partition.Partition) {
	t.Helper()
	gg, err := gridgraph.NewLattice(4, 2, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	compact, err = partition.New(g, partition.Assignment([]int{0, 0, 1, 1, 0, 0, 1, 1}), partition.NewCutEdges())
	require.NoError(t, err)
	ragged, err = partition.New(g, partition.Assignment([]int{0, 1, 0, 1, 1, 0, 1, 0}), partition.NewCutEdges())
	require.NoError(t, err)

	return compact, ragged
}

func TestAlways(t *testing.T) {
	a, b := plans(t)
	assert.True(t, accept.Always{}.Accept(a, b, nil))
	assert.Equal(t, "always", accept.Always{}.Name())
}

func TestMetropolis(t *testing.T) {
	compact, ragged := plans(t)
	energy := accept.CutEdgeEnergy(partition.CutEdgesUpdater)
	require.Equal(t, 2.0, energy(compact))
	require.Equal(t, 10.0, energy(ragged))

	rng := rand.New(rand.NewSource(1))
	cold := accept.Metropolis{Temperature: 0, Energy: energy}
	assert.True(t, cold.Accept(ragged, compact, rng), "downhill is always accepted")
	assert.False(t, cold.Accept(compact, ragged, rng))

	hot := accept.Metropolis{Temperature: 1e9, Energy: energy}
	accepted := 0
	for i := 0; i < 100; i++ {
		if hot.Accept(compact, ragged, rng) {
			accepted++
		}
	}
	assert.Greater(t, accepted, 95)

	warm := accept.Metropolis{Temperature: 2, Energy: energy}
	accepted = 0
	for i := 0; i < 2000; i++ {
		if warm.Accept(compact, ragged, rng) {
			accepted++
		}
	}
	// exp(-8/2) ≈ 0.018
	assert.InDelta(t, 0.018, float64(accepted)/2000, 0.015)
}

func TestCutEdgeEnergy_MissingUpdater(t *testing.T) {
	compact, _ := plans(t)
	assert.True(t, accept.CutEdgeEnergy("rook_cut_edges")(compact) > 1e300)
}
