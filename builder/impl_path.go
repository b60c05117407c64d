// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i -> i+1 for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path P_n.
// Complexity: O(n).
func Path(n int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b, err := newBlock(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := int64(0); i+1 < n; i++ {
			if err := b.edge(i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
