// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic population draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPopulationFn overrides the per-vertex population generator. The
// function receives the vertex index and the (possibly nil) RNG. Panics on nil.
func WithPopulationFn(fn func(int, *rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithPopulationFn(nil)")
	}
	return func(c *builderConfig) {
		c.populationFn = fn
	}
}

// WithUniformPopulation gives every vertex the same population p ≥ 0.
func WithUniformPopulation(p int64) BuilderOption {
	if p < 0 {
		panic("builder: WithUniformPopulation(p<0)")
	}
	return WithPopulationFn(func(int, *rand.Rand) int64 { return p })
}

// WithRandomPopulation draws each population uniformly from [lo, hi].
// Panics if lo < 0 or hi < lo. Construction fails with ErrNeedRandSource
// when no RNG was configured.
func WithRandomPopulation(lo, hi int64) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithRandomPopulation(invalid range)")
	}
	return func(c *builderConfig) {
		c.populationFn = func(_ int, r *rand.Rand) int64 {
			return lo + r.Int63n(hi-lo+1)
		}
		c.needsRand = true
	}
}

// WithAffiliationFn sets the per-vertex party label generator. Panics on nil.
func WithAffiliationFn(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithAffiliationFn(nil)")
	}
	return func(c *builderConfig) {
		c.affiliationFn = fn
	}
}

// WithAffiliations labels vertex i with labels[i mod len(labels)].
// Panics on an empty label set.
func WithAffiliations(labels ...string) BuilderOption {
	if len(labels) == 0 {
		panic("builder: WithAffiliations()")
	}
	cp := append([]string(nil), labels...)
	return WithAffiliationFn(func(i int) string { return cp[i%len(cp)] })
}

// WithSharedPerimeter sets the boundary length stamped on every edge.
// Panics if p < 0.
func WithSharedPerimeter(p float64) BuilderOption {
	if p < 0 {
		panic("builder: WithSharedPerimeter(p<0)")
	}
	return func(c *builderConfig) {
		c.perimeter = p
	}
}
