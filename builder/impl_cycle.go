// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order (i, (i+1)%n) for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.check(MethodCycle); err != nil {
			return err
		}
		if err := addVertices(b, cfg, MethodCycle, n); err != nil {
			return err
		}

		// For i==n-1 the edge closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err := addEdge(b, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
