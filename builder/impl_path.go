// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1, i) for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := cfg.check(MethodPath); err != nil {
			return err
		}
		if err := addVertices(b, cfg, MethodPath, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addEdge(b, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// addVertices inserts n vertices with IDs cfg.idFn(0..n-1).
func addVertices(b *core.Builder, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := b.AddVertex(id, cfg.vertexOptions(i)...); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects the vertices with indices u and v.
func addEdge(b *core.Builder, cfg builderConfig, method string, u, v int) error {
	uID, vID := cfg.idFn(u), cfg.idFn(v)
	if _, err := b.AddEdge(uID, vID, cfg.edgeOptions()...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, uID, vID, err)
	}

	return nil
}
