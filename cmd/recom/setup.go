package main

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/chain"
	"github.com/katalvlaran/recom/config"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/ensemble"
	"github.com/katalvlaran/recom/gridgraph"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/proposals"
	"github.com/katalvlaran/recom/types"
)

// experiment is everything a run needs, built once from a Config and shared
// read-only by all chains.
type experiment struct {
	cfg      *config.Config
	grid     *gridgraph.GridGraph
	graph    *core.Graph
	initial  *partition.Partition
	election string
}

// buildExperiment assembles the grid, its graph and the initial plan.
func buildExperiment(cfg *config.Config) (*experiment, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.Labels = map[int]string{
		gridgraph.Minority: cfg.Grid.Minority,
		gridgraph.Majority: cfg.Grid.Majority,
	}
	if cfg.Grid.Queen {
		opts.Conn = gridgraph.Conn8
	}

	var rows [][]int
	switch cfg.Grid.Layout {
	case config.LayoutHenry:
		rows = gridgraph.HenryRows
	case config.LayoutColumns:
		rows = gridgraph.ColumnLayout(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.MinorityColumns)
	default:
		rows = cfg.Grid.Rows
	}
	gg, err := gridgraph.FromLayout(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	var plan []int
	if cfg.Grid.InitialPlan == config.PlanRows {
		plan, err = gg.RowStripes(cfg.Chain.Districts)
	} else {
		plan, err = gg.ColumnStripes(cfg.Chain.Districts)
	}
	if err != nil {
		return nil, fmt.Errorf("initial plan: %w", err)
	}

	election := cfg.Grid.Minority + "-" + cfg.Grid.Majority
	updaters := append(partition.DefaultUpdaters(),
		partition.NewRookCutEdges(),
		partition.NewElection(election, partition.ByAffiliation(cfg.Grid.Minority, cfg.Grid.Majority)...),
	)
	initial, err := partition.New(g, partition.Assignment(plan), updaters...)
	if err != nil {
		return nil, fmt.Errorf("initial plan: %w", err)
	}

	return &experiment{cfg: cfg, grid: gg, graph: g, initial: initial, election: election}, nil
}

// proposal builds the configured proposal. ReCom targets the ideal district
// population of the initial plan.
func (e *experiment) proposal() (proposals.Proposal, error) {
	cc := e.cfg.Chain
	if cc.Proposal == config.ProposalRandomFlip {
		return proposals.NewRandomFlip(cc.CutEdges), nil
	}

	return proposals.NewReCom(constraints.IdealPopulation(e.initial), cc.Epsilon,
		proposals.WithNodeRepeats(cc.NodeRepeats),
		proposals.WithTreeMethod(cc.TreeMethod),
		proposals.WithCutEdgesUpdater(cc.CutEdges),
	)
}

func (e *experiment) validator() *constraints.Validator {
	return constraints.NewValidator(
		constraints.Contiguous(),
		constraints.WithinPercentOfIdeal(e.cfg.Chain.ValidatorEpsilon),
		constraints.DistrictCount(e.cfg.Chain.Districts),
	)
}

func (e *experiment) rule() accept.Rule {
	if e.cfg.Acceptance.Rule == config.RuleMetropolis {
		return accept.Metropolis{
			Temperature: e.cfg.Acceptance.Temperature,
			Energy:      accept.CutEdgeEnergy(e.cfg.Chain.CutEdges),
		}
	}

	return accept.Always{}
}

// metricSpec measures the minority party against the majority.
func (e *experiment) metricSpec() ensemble.MetricSpec {
	return ensemble.MetricSpec{
		Election: e.election,
		Party:    e.cfg.Grid.Minority,
		Opponent: e.cfg.Grid.Majority,
		CutEdges: e.cfg.Chain.CutEdges,
	}
}

// factory returns the ensemble.Factory for this experiment. Every chain
// starts from the same initial partition, which is immutable.
func (e *experiment) factory(logger types.Logger, metrics types.MetricsCollector) ensemble.Factory {
	return func(id int, rng *rand.Rand, label string) (*chain.Chain, error) {
		prop, err := e.proposal()
		if err != nil {
			return nil, err
		}
		opts := []chain.Option{
			chain.WithTotalSteps(e.cfg.Chain.TotalSteps),
			chain.WithRand(rng),
			chain.WithLabel(label),
			chain.WithValidator(e.validator()),
			chain.WithAcceptance(e.rule()),
			chain.WithRetention(e.cfg.Chain.Retention),
			chain.WithLogger(logger),
		}
		if metrics != nil {
			opts = append(opts, chain.WithMetrics(metrics))
		}
		if e.cfg.Chain.CheckInvariants {
			opts = append(opts, chain.WithInvariantChecks())
		}

		return chain.New(e.initial, prop, opts...)
	}
}

// ensembleConfig maps the config onto ensemble.Config.
func (e *experiment) ensembleConfig(logger types.Logger) ensemble.Config {
	return ensemble.Config{
		Chains:      e.cfg.Ensemble.Chains,
		Seed:        e.cfg.Ensemble.Seed,
		Parallelism: e.cfg.Ensemble.Parallelism,
		Metrics:     e.metricSpec(),
		Logger:      logger,
	}
}
