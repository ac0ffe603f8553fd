// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Sequential and parallel ensemble runs.
// Policy:
//   - Chains never share mutable state; the accumulator is the only
//     cross-chain structure.
//   - The first failing chain cancels the others.

package ensemble

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/recom/chain"
	"github.com/katalvlaran/recom/internal/logging"
	"github.com/katalvlaran/recom/types"
)

// ErrNoChains indicates an ensemble with fewer than one chain.
var ErrNoChains = errors.New("ensemble: at least one chain is required")

// SeedFor derives chain id's seed from base with one SplitMix64 round, so
// neighbouring ids get unrelated streams.
func SeedFor(base int64, id int) int64 {
	z := uint64(base) + uint64(id+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// Run drives c to termination, observing every step into acc under chain
// index id and handing each observation to fn (which may be nil).
func Run(ctx context.Context, c *chain.Chain, id int, spec MetricSpec, acc *Accumulator, fn func(Observation) error) error {
	return c.Run(ctx, func(st chain.Step) error {
		obs, err := Observe(id, st, spec)
		if err != nil {
			return err
		}
		acc.Add(obs, st.Partition)
		if fn != nil {
			return fn(obs)
		}

		return nil
	})
}

// Factory builds chain id. rng is the chain's private random source and
// label its name in logs and metrics; pass both to chain.New via
// chain.WithRand and chain.WithLabel.
type Factory func(id int, rng *rand.Rand, label string) (*chain.Chain, error)

// Config describes an ensemble of independent chains.
type Config struct {
	Chains int
	Seed   int64
	// Parallelism bounds concurrently running chains; ≤ 0 means Chains.
	Parallelism int
	Metrics     MetricSpec
	Logger      types.Logger
}

// RunIndependent runs cfg.Chains chains built by factory, each seeded with
// SeedFor(cfg.Seed, id), and returns the merged summary. fn receives every
// observation and is called concurrently from different chains.
func RunIndependent(ctx context.Context, cfg Config, factory Factory, fn func(Observation) error) (*Summary, error) {
	if cfg.Chains < 1 {
		return nil, ErrNoChains
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	limit := cfg.Parallelism
	if limit <= 0 || limit > cfg.Chains {
		limit = cfg.Chains
	}

	acc := NewAccumulator(cfg.Chains)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for id := 0; id < cfg.Chains; id++ {
		g.Go(func() error {
			label := strconv.Itoa(id)
			c, err := factory(id, rand.New(rand.NewSource(SeedFor(cfg.Seed, id))), label)
			if err != nil {
				return fmt.Errorf("chain %d: %w", id, err)
			}
			if err := Run(gctx, c, id, cfg.Metrics, acc, fn); err != nil {
				return fmt.Errorf("chain %d: %w", id, err)
			}
			logger.Debug("chain finished", "chain", label)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("ensemble failed", "error", err)
		return nil, err
	}
	s := acc.Summary()
	logger.Info("ensemble finished",
		"chains", s.Chains,
		"observations", s.Observations,
		"distinct_plans", s.DistinctPlans,
	)

	return s, nil
}
