package chain_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/builder"
	"github.com/katalvlaran/recom/chain"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/gridgraph"
	"github.com/katalvlaran/recom/internal/logging"
	"github.com/katalvlaran/recom/internal/telemetry"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/proposals"
)

func pathPartition(t *testing.T) *partition.Partition {
	t.Helper()
	pops := []int64{1, 0, 1, 0}
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithPopulationFn(func(i int, _ *rand.Rand) int64 { return pops[i] })},
		builder.Path(4),
	)
	require.NoError(t, err)
	p, err := partition.New(g, partition.Assignment([]int{0, 0, 1, 1}), partition.DefaultUpdaters()...)
	require.NoError(t, err)

	return p
}

func gridPartition(t *testing.T) *partition.Partition {
	t.Helper()
	gg, err := gridgraph.NewLattice(6, 6, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	labels, err := gg.ColumnStripes(3)
	require.NoError(t, err)
	p, err := partition.New(g, partition.Assignment(labels), partition.DefaultUpdaters()...)
	require.NoError(t, err)

	return p
}

func gridValidator() *constraints.Validator {
	return constraints.NewValidator(constraints.Contiguous(), constraints.WithinPercentOfIdeal(0.1))
}

func TestNew_ConfigErrors(t *testing.T) {
	p := pathPartition(t)
	r, err := proposals.NewReCom(1, 0.5)
	require.NoError(t, err)

	cases := map[string]struct {
		initial *partition.Partition
		prop    proposals.Proposal
		opts    []chain.Option
	}{
		"nil initial":    {nil, r, []chain.Option{chain.WithSeed(1)}},
		"nil proposal":   {p, nil, []chain.Option{chain.WithSeed(1)}},
		"no rand":        {p, r, nil},
		"negative steps": {p, r, []chain.Option{chain.WithSeed(1), chain.WithTotalSteps(-1)}},
		"nil accept":     {p, r, []chain.Option{chain.WithSeed(1), chain.WithAcceptance(nil)}},
		"invalid initial": {p, r, []chain.Option{
			chain.WithSeed(1),
			chain.WithValidator(constraints.NewValidator(constraints.DistrictCount(3))),
		}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := chain.New(tc.initial, tc.prop, tc.opts...)
			assert.ErrorIs(t, err, chain.ErrConfig)
		})
	}
}

func TestChain_ZeroSteps(t *testing.T) {
	p := pathPartition(t)
	r, err := proposals.NewReCom(1, 0.5)
	require.NoError(t, err)
	c, err := chain.New(p, r, chain.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, chain.StateInitial, c.State())

	st, err := c.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, chain.OutcomeInitial, st.Outcome)
	assert.Same(t, p, st.Partition)
	assert.Equal(t, chain.StateTerminated, c.State())

	_, err = c.Next(context.Background())
	assert.ErrorIs(t, err, chain.ErrTerminated)
}

// TestChain_PathScenario runs 100 steps on the 4-node path; every observation
// keeps one unit of population per district.
func TestChain_PathScenario(t *testing.T) {
	p := pathPartition(t)
	r, err := proposals.NewReCom(1, 0.5)
	require.NoError(t, err)
	c, err := chain.New(p, r,
		chain.WithSeed(2024),
		chain.WithTotalSteps(100),
		chain.WithValidator(constraints.NewValidator(constraints.Contiguous(), constraints.WithinPercentOfIdeal(0.5))),
		chain.WithInvariantChecks(),
		chain.WithLogger(logging.NewTest(t)),
	)
	require.NoError(t, err)

	var steps []chain.Step
	require.NoError(t, c.Run(context.Background(), func(st chain.Step) error {
		steps = append(steps, st)
		return nil
	}))
	require.Len(t, steps, 101)
	for i, st := range steps {
		assert.Equal(t, i, st.Index)
		assert.Equal(t, []int64{1, 1}, st.Partition.Populations())
		assert.Equal(t, 2, st.Partition.K())
		if i > 0 {
			assert.NotEqual(t, chain.OutcomeInitial, st.Outcome)
		}
	}
	assert.Equal(t, chain.StateTerminated, c.State())
}

func TestChain_Determinism(t *testing.T) {
	trace := func() ([][]partition.DistrictID, []chain.Outcome) {
		r, err := proposals.NewReCom(12, 0.1, proposals.WithNodeRepeats(2))
		require.NoError(t, err)
		c, err := chain.New(gridPartition(t), r,
			chain.WithRand(rand.New(rand.NewSource(11))),
			chain.WithTotalSteps(60),
			chain.WithValidator(gridValidator()),
		)
		require.NoError(t, err)
		var plans [][]partition.DistrictID
		var outcomes []chain.Outcome
		require.NoError(t, c.Run(context.Background(), func(st chain.Step) error {
			plans = append(plans, st.Partition.Assignment())
			outcomes = append(outcomes, st.Outcome)
			return nil
		}))

		return plans, outcomes
	}
	p1, o1 := trace()
	p2, o2 := trace()
	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Fatalf("plans differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(o1, o2); diff != "" {
		t.Fatalf("outcomes differ (-first +second):\n%s", diff)
	}
}

func TestChain_RepeatsKeepPartition(t *testing.T) {
	// Metropolis at zero temperature with an energy that always rises
	// declines every candidate.
	rising := accept.Metropolis{Energy: func(p *partition.Partition) float64 { return float64(p.StepIndex()) }}
	r, err := proposals.NewReCom(12, 0.1, proposals.WithNodeRepeats(3))
	require.NoError(t, err)
	init := gridPartition(t)
	c, err := chain.New(init, r, chain.WithSeed(5), chain.WithTotalSteps(20), chain.WithAcceptance(rising))
	require.NoError(t, err)

	require.NoError(t, c.Run(context.Background(), func(st chain.Step) error {
		assert.Same(t, init, st.Partition)
		if st.Index > 0 {
			assert.True(t, st.Outcome.Repeated(), st.Outcome.String())
		}
		return nil
	}))
	assert.Equal(t, 1, c.History().Len())
}

func TestChain_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewPrometheus(reg, "test")
	r, err := proposals.NewReCom(12, 0.1, proposals.WithNodeRepeats(2))
	require.NoError(t, err)
	c, err := chain.New(gridPartition(t), r,
		chain.WithSeed(8), chain.WithTotalSteps(25), chain.WithMetrics(m), chain.WithLabel("a"))
	require.NoError(t, err)

	counts := map[chain.Outcome]int{}
	require.NoError(t, c.Run(context.Background(), func(st chain.Step) error {
		counts[st.Outcome]++
		return nil
	}))
	assert.Equal(t, 1, counts[chain.OutcomeInitial])
	assert.Equal(t, 25, counts[chain.OutcomeAccepted]+counts[chain.OutcomeRejected]+counts[chain.OutcomeExhausted])

	n, err := testutil.GatherAndCount(reg, "test_chain_steps_total")
	require.NoError(t, err)
	assert.Positive(t, n)
	cut, _ := c.Current().CutEdges(partition.CutEdgesUpdater)
	expected := float64(cut.Len())
	got, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range got {
		if mf.GetName() == "test_chain_cut_edges" {
			assert.InDelta(t, expected, mf.GetMetric()[0].GetGauge().GetValue(), 0)
		}
	}
}

func TestChain_ContextAndCallbackErrors(t *testing.T) {
	r, err := proposals.NewReCom(12, 0.1)
	require.NoError(t, err)
	c, err := chain.New(gridPartition(t), r, chain.WithSeed(1), chain.WithTotalSteps(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, chain.StateInitial, c.State(), "a cancelled call does not start the chain")

	stop := errors.New("stop")
	seen := 0
	err = c.Run(context.Background(), func(chain.Step) error {
		seen++
		if seen == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)

	// The chain resumes where it stopped.
	rest := 0
	require.NoError(t, c.Run(context.Background(), func(chain.Step) error { rest++; return nil }))
	assert.Equal(t, 11-3, rest)
}

func TestChain_InvariantViolationAborts(t *testing.T) {
	r, err := proposals.NewReCom(2, 0.5)
	require.NoError(t, err)
	c, err := chain.New(disconnectedPartition(t), r, chain.WithSeed(1), chain.WithTotalSteps(5))
	require.NoError(t, err)

	_, err = c.Next(context.Background())
	require.NoError(t, err)
	_, err = c.Next(context.Background())
	require.ErrorIs(t, err, partition.ErrInvariantViolation)
	assert.Equal(t, chain.StateTerminated, c.State())
}

// disconnectedPartition splits the graph a-b  c-d into {a, d} and {b, c},
// so every merge covers both components.
func disconnectedPartition(t *testing.T) *partition.Partition {
	t.Helper()
	b := core.NewBuilder()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, b.AddVertex(id, core.WithPopulation(1)))
	}
	_, err := b.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = b.AddEdge("c", "d")
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	p, err := partition.New(g, partition.Assignment([]int{0, 1, 1, 0}), partition.DefaultUpdaters()...)
	require.NoError(t, err)

	return p
}
