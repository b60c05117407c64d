// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex cycle C_n.
func Cycle(n int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b, err := newBlock(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			if err := b.edge(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
