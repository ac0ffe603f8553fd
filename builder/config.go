// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn          = decimalID          ("0","1","2",...)
//   • rng           = nil                (pure/deterministic unless seeded)
//   • populationFn  = constant DefaultPopulation
//   • affiliationFn = nil                (no party label)
//   • perimeter     = DefaultSharedPerimeter

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/recom/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Population generator: (index, rng) -> population ≥ 0.
	populationFn func(int, *rand.Rand) int64
	// Party label generator: index -> label; nil leaves units unaffiliated.
	affiliationFn func(int) string
	// Shared perimeter stamped on every emitted edge.
	perimeter float64
	// populationFn draws from rng; constructors reject a nil rng.
	needsRand bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         decimalID,
		populationFn: func(int, *rand.Rand) int64 { return DefaultPopulation },
		perimeter:    DefaultSharedPerimeter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// check validates the resolved configuration on behalf of method.
func (c builderConfig) check(method string) error {
	if c.needsRand && c.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// vertexOptions resolves the attribute options for vertex index i.
// Population draws consume cfg.rng in ascending index order.
func (c builderConfig) vertexOptions(i int) []core.VertexOption {
	opts := []core.VertexOption{core.WithPopulation(c.populationFn(i, c.rng))}
	if c.affiliationFn != nil {
		opts = append(opts, core.WithAffiliation(c.affiliationFn(i)))
	}

	return opts
}

// edgeOptions resolves the attribute options for emitted edges.
func (c builderConfig) edgeOptions() []core.EdgeOption {
	return []core.EdgeOption{core.WithSharedPerimeter(c.perimeter)}
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
