package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/prim_kruskal"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

// Validate checks the configuration for logical consistency.
// total_steps is not defaulted: 0 is a valid run that yields only the
// initial plan.
func (cfg *Config) Validate() error {
	g := cfg.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return invalid("grid %dx%d must be positive", g.Width, g.Height)
	}
	switch g.Layout {
	case LayoutHenry:
		if g.Width != DefaultSize || g.Height != DefaultSize {
			return invalid("the henry layout is %dx%d, got %dx%d", DefaultSize, DefaultSize, g.Width, g.Height)
		}
	case LayoutColumns:
		if g.MinorityColumns < 0 || g.MinorityColumns > g.Width {
			return invalid("minority columns %d outside 0..%d", g.MinorityColumns, g.Width)
		}
	case LayoutCustom:
		if len(g.Rows) != g.Height {
			return invalid("custom layout has %d rows, height is %d", len(g.Rows), g.Height)
		}
		for i, row := range g.Rows {
			if len(row) != g.Width {
				return invalid("custom layout row %d has %d cells, width is %d", i, len(row), g.Width)
			}
			for _, v := range row {
				if v != 0 && v != 1 {
					return invalid("custom layout row %d holds %d (must be 0 or 1)", i, v)
				}
			}
		}
	default:
		return invalid("layout %q (must be one of: henry, columns, custom)", g.Layout)
	}
	if g.Minority == g.Majority {
		return invalid("party names must differ, both are %q", g.Minority)
	}

	c := cfg.Chain
	limit := g.Width
	switch g.InitialPlan {
	case PlanColumns:
	case PlanRows:
		limit = g.Height
	default:
		return invalid("initial plan %q (must be one of: columns, rows)", g.InitialPlan)
	}
	if c.Districts < 1 || c.Districts > limit {
		return invalid("districts %d outside 1..%d for %s stripes", c.Districts, limit, g.InitialPlan)
	}
	if !(c.Epsilon > 0 && c.Epsilon < 1) {
		return invalid("epsilon %v must lie in (0,1)", c.Epsilon)
	}
	if c.ValidatorEpsilon < 0 || c.ValidatorEpsilon >= 1 {
		return invalid("validator epsilon %v must lie in [0,1)", c.ValidatorEpsilon)
	}
	if c.NodeRepeats < 1 {
		return invalid("node repeats %d must be positive", c.NodeRepeats)
	}
	if c.TotalSteps < 0 {
		return invalid("total steps %d must not be negative", c.TotalSteps)
	}
	if c.Proposal != ProposalReCom && c.Proposal != ProposalRandomFlip {
		return invalid("proposal %q (must be one of: recom, random_flip)", c.Proposal)
	}
	if c.TreeMethod != prim_kruskal.MethodKruskal && c.TreeMethod != prim_kruskal.MethodPrim {
		return invalid("tree method %q (must be one of: kruskal, prim)", c.TreeMethod)
	}
	if c.CutEdges != partition.CutEdgesUpdater && c.CutEdges != partition.RookCutEdgesUpdater {
		return invalid("cut edges %q (must be one of: cut_edges, rook_cut_edges)", c.CutEdges)
	}

	a := cfg.Acceptance
	switch a.Rule {
	case RuleAlways:
	case RuleMetropolis:
		if a.Temperature < 0 {
			return invalid("temperature %v must not be negative", a.Temperature)
		}
	default:
		return invalid("acceptance rule %q (must be one of: always, metropolis)", a.Rule)
	}

	if cfg.Ensemble.Chains < 1 {
		return invalid("chains %d must be positive", cfg.Ensemble.Chains)
	}
	if cfg.Log.Format != FormatConsole && cfg.Log.Format != FormatJSON {
		return invalid("log format %q (must be one of: console, json)", cfg.Log.Format)
	}

	return nil
}
