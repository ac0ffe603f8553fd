package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/metrics"
)

func mustTally(t *testing.T, votes ...[]int64) metrics.Tally {
	t.Helper()
	tally, err := metrics.NewTally([]string{"A", "B"}, votes)
	require.NoError(t, err)

	return tally
}

// TestSymmetricTally verifies EG = 0 and MM = 0 for the mirrored 60/40 plan.
func TestSymmetricTally(t *testing.T) {
	tally := mustTally(t, []int64{60, 40}, []int64{40, 60})

	eg, err := metrics.EfficiencyGap(tally, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, eg, 1e-12)

	mm, err := metrics.MeanMedian(tally, "A")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mm, 1e-12)

	wx, wy, err := metrics.WastedVotes(tally, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(49), wx)
	assert.Equal(t, int64(49), wy)
}

// TestEfficiencyGap_HandComputed checks a packed plan.
//
//	d0: A 90, B 10  → A wastes 90-51=39, B wastes 10
//	d1: A 40, B 60  → A wastes 40,       B wastes 60-51=9
//	d2: A 40, B 60  → A wastes 40,       B wastes 9
//
// EG = (119 - 28) / 300.
func TestEfficiencyGap_HandComputed(t *testing.T) {
	tally := mustTally(t, []int64{90, 10}, []int64{40, 60}, []int64{40, 60})

	eg, err := metrics.EfficiencyGap(tally, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 91.0/300.0, eg, 1e-12)

	// Shares 0.9, 0.4, 0.4: mean 17/30, median 0.4.
	mm, err := metrics.MeanMedian(tally, "A")
	require.NoError(t, err)
	assert.InDelta(t, 17.0/30.0-0.4, mm, 1e-12)

	egYX, err := metrics.EfficiencyGap(tally, "B", "A")
	require.NoError(t, err)
	assert.InDelta(t, -eg, egYX, 1e-12)
}

// TestTiesWasteEverything verifies the tie branch of the wasted-vote rule.
func TestTiesWasteEverything(t *testing.T) {
	tally := mustTally(t, []int64{50, 50})
	wx, wy, err := metrics.WastedVotes(tally, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(50), wx)
	assert.Equal(t, int64(50), wy)
}

// TestWins verifies 6/4 seat counts and that ties go to nobody.
func TestWins(t *testing.T) {
	var votes [][]int64
	for i := 0; i < 6; i++ {
		votes = append(votes, []int64{6, 4})
	}
	for i := 0; i < 4; i++ {
		votes = append(votes, []int64{3, 7})
	}
	tally := mustTally(t, votes...)

	a, err := metrics.Wins(tally, "A")
	require.NoError(t, err)
	b, err := metrics.Wins(tally, "B")
	require.NoError(t, err)
	assert.Equal(t, 6, a)
	assert.Equal(t, 4, b)
	assert.Zero(t, metrics.Ties(tally))

	// Turning one A district into a tie removes a win from A and adds none to B.
	tally.Votes[0] = []int64{5, 5}
	a, _ = metrics.Wins(tally, "A")
	b, _ = metrics.Wins(tally, "B")
	assert.Equal(t, 5, a)
	assert.Equal(t, 4, b)
	assert.Equal(t, 1, metrics.Ties(tally))

	seats, err := metrics.SeatsWithTies(tally, "A")
	require.NoError(t, err)
	assert.InDelta(t, 5.5, seats, 1e-12)
	seats, err = metrics.SeatsWithTies(tally, "B")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, seats, 1e-12)
}

// TestZeroVoteDistricts verifies empty districts are skipped by shares.
func TestZeroVoteDistricts(t *testing.T) {
	tally := mustTally(t, []int64{0, 0}, []int64{3, 1}, []int64{1, 3})

	shares, err := metrics.VoteShares(tally, "A")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 0.25}, shares)
	assert.Equal(t, 1, metrics.Ties(tally))

	empty := mustTally(t, []int64{0, 0})
	_, err = metrics.MeanMedian(empty, "A")
	assert.ErrorIs(t, err, metrics.ErrNoVotes)
	_, err = metrics.EfficiencyGap(empty, "A", "B")
	assert.ErrorIs(t, err, metrics.ErrNoVotes)
}

// TestValidation verifies sentinel errors for malformed input.
func TestValidation(t *testing.T) {
	_, err := metrics.NewTally([]string{"A", "B"}, [][]int64{{1}})
	assert.ErrorIs(t, err, metrics.ErrMalformedTally)
	_, err = metrics.NewTally([]string{"A"}, [][]int64{{-1}})
	assert.ErrorIs(t, err, metrics.ErrMalformedTally)
	_, err = metrics.NewTally(nil, nil)
	assert.ErrorIs(t, err, metrics.ErrMalformedTally)

	tally := mustTally(t, []int64{1, 2})
	_, err = metrics.Wins(tally, "C")
	assert.ErrorIs(t, err, metrics.ErrUnknownParty)
	_, err = metrics.EfficiencyGap(tally, "A", "A")
	assert.ErrorIs(t, err, metrics.ErrUnknownParty)
}
