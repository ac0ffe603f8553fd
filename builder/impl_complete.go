// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographically.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.check(MethodComplete); err != nil {
			return err
		}
		if err := addVertices(b, cfg, MethodComplete, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(b, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
