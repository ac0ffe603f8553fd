package config

import (
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/prim_kruskal"
)

// Defaults.
const (
	DefaultSize             = 10
	DefaultDistricts        = 10
	DefaultEpsilon          = 0.05
	DefaultValidatorEpsilon = 0.1
	DefaultTotalSteps       = 10000
	DefaultSeed             = 2024
	DefaultMetricsAddress   = ":9090"
)

// Layout names.
const (
	LayoutHenry   = "henry"
	LayoutColumns = "columns"
	LayoutCustom  = "custom"
)

// Plan, proposal and rule names.
const (
	PlanColumns        = "columns"
	PlanRows           = "rows"
	ProposalReCom      = "recom"
	ProposalRandomFlip = "random_flip"
	RuleAlways         = "always"
	RuleMetropolis     = "metropolis"
	FormatConsole      = "console"
	FormatJSON         = "json"
)

// applyDefaults fills zero fields. Fields preset by base are left alone.
func applyDefaults(cfg *Config) {
	// Grid
	if cfg.Grid.Layout == "" {
		if len(cfg.Grid.Rows) > 0 {
			cfg.Grid.Layout = LayoutCustom
		} else {
			cfg.Grid.Layout = LayoutHenry
		}
	}
	if cfg.Grid.Layout == LayoutCustom && len(cfg.Grid.Rows) > 0 {
		if cfg.Grid.Height == 0 {
			cfg.Grid.Height = len(cfg.Grid.Rows)
		}
		if cfg.Grid.Width == 0 {
			cfg.Grid.Width = len(cfg.Grid.Rows[0])
		}
	}
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = DefaultSize
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = DefaultSize
	}
	if cfg.Grid.Layout == LayoutColumns && cfg.Grid.MinorityColumns == 0 {
		cfg.Grid.MinorityColumns = cfg.Grid.Width * 2 / 5
	}
	if cfg.Grid.Minority == "" {
		cfg.Grid.Minority = "Pink"
	}
	if cfg.Grid.Majority == "" {
		cfg.Grid.Majority = "Purple"
	}
	if cfg.Grid.InitialPlan == "" {
		cfg.Grid.InitialPlan = PlanColumns
	}

	// Chain
	if cfg.Chain.Districts == 0 {
		cfg.Chain.Districts = DefaultDistricts
	}
	if cfg.Chain.Epsilon == 0 {
		cfg.Chain.Epsilon = DefaultEpsilon
	}
	if cfg.Chain.ValidatorEpsilon == 0 {
		cfg.Chain.ValidatorEpsilon = cfg.Chain.Epsilon
	}
	if cfg.Chain.NodeRepeats == 0 {
		cfg.Chain.NodeRepeats = 1
	}
	if cfg.Chain.Proposal == "" {
		cfg.Chain.Proposal = ProposalReCom
	}
	if cfg.Chain.TreeMethod == "" {
		cfg.Chain.TreeMethod = prim_kruskal.MethodKruskal
	}
	if cfg.Chain.CutEdges == "" {
		cfg.Chain.CutEdges = partition.CutEdgesUpdater
	}
	if cfg.Chain.Retention == 0 {
		cfg.Chain.Retention = partition.DefaultRetention
	}

	// Acceptance
	if cfg.Acceptance.Rule == "" {
		cfg.Acceptance.Rule = RuleAlways
	}

	// Ensemble
	if cfg.Ensemble.Chains == 0 {
		cfg.Ensemble.Chains = 1
	}
	if cfg.Ensemble.Seed == 0 {
		cfg.Ensemble.Seed = DefaultSeed
	}

	// Metrics and logging
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = DefaultMetricsAddress
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = FormatConsole
	}
}
