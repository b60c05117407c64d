// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local vertex 0 is the hub; leaves are 1..n-1.
//   • Emits spokes hub -> i in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b, err := newBlock(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := int64(1); i < n; i++ {
			if err := b.edge(0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
