package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/gridgraph"
	"github.com/katalvlaran/recom/partition"
)

// lattice4 returns a 4×4 rook lattice with unit populations.
func lattice4(t *testing.T, labels []int) *partition.Partition {
	t.Helper()
	gg, err := gridgraph.NewLattice(4, 4, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	p, err := partition.New(g, partition.Assignment(labels), partition.NewPopulationTally())
	require.NoError(t, err)

	return p
}

// Rows are listed y=0 first; each row holds x=0..3.
var (
	halves = []int{
		0, 0, 1, 1,
		0, 0, 1, 1,
		0, 0, 1, 1,
		0, 0, 1, 1,
	}
	checker = []int{
		0, 1, 0, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
	}
	lopsided = []int{
		0, 1, 1, 1,
		0, 1, 1, 1,
		0, 1, 1, 1,
		0, 1, 1, 1,
	}
)

func TestContiguous(t *testing.T) {
	c := constraints.Contiguous()
	assert.True(t, c.Check(lattice4(t, halves)))
	assert.False(t, c.Check(lattice4(t, checker)))
}

func TestWithinPercentOfIdeal(t *testing.T) {
	assert.True(t, constraints.WithinPercentOfIdeal(0).Check(lattice4(t, halves)))
	// Populations 4 and 12 against an ideal of 8.
	assert.False(t, constraints.WithinPercentOfIdeal(0.4).Check(lattice4(t, lopsided)))
	assert.True(t, constraints.WithinPercentOfIdeal(0.5).Check(lattice4(t, lopsided)))
	assert.Panics(t, func() { constraints.WithinPercentOfIdeal(-0.1) })
}

func TestDistrictCount(t *testing.T) {
	p := lattice4(t, halves)
	assert.True(t, constraints.DistrictCount(2).Check(p))
	assert.False(t, constraints.DistrictCount(3).Check(p))
}

func TestValidator_FirstFailure(t *testing.T) {
	v := constraints.NewValidator(
		constraints.DistrictCount(2),
		constraints.WithinPercentOfIdeal(0.1),
		constraints.Contiguous(),
	)
	assert.Equal(t, []string{"district_count_2", "within_0.1_of_ideal_population", "contiguous"}, v.Names())
	require.NoError(t, v.Validate(lattice4(t, halves)))

	err := v.Validate(lattice4(t, lopsided))
	require.ErrorIs(t, err, constraints.ErrConstraintFailed)
	assert.Contains(t, err.Error(), "within_0.1_of_ideal_population")

	err = v.Validate(lattice4(t, checker))
	require.ErrorIs(t, err, constraints.ErrConstraintFailed)
	assert.Contains(t, err.Error(), "contiguous")
	assert.False(t, v.Valid(lattice4(t, checker)))

	var none *constraints.Validator
	assert.NoError(t, none.Validate(lattice4(t, checker)))
}
