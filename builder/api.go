// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, then seals the graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

// Constructor applies a deterministic mutation to a core.Builder using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Attach population and affiliation through cfg.vertexOptions.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a new core.Builder, resolves the builder configuration
// from bopts, applies all constructors in order and returns the sealed Graph.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus O(V+E) for Build.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ...) or core sentinels.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn with cfg.vertexOptions(i).
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Path(n)     simple path P_n (n ≥ 2), edges (i-1, i).
// Cycle(n)    simple cycle C_n (n ≥ 3), edges (i, (i+1) mod n).
// Complete(n) complete graph K_n (n ≥ 1), pairs (i, j), i < j.
