// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; emits each pair i<j once as i -> j in lexicographic
//     order. With WithBidirectional the result is the complete digraph.
//   • CompleteBipartite: n1, n2 ≥ 1; left side is local 0..n1-1, right side
//     n1..n1+n2-1; emits left -> right in (i, j) order.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b, err := newBlock(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.edge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		b, err := newBlock(methodCompleteBipartite, g, cfg, n1+n2)
		if err != nil {
			return err
		}
		for i := int64(0); i < n1; i++ {
			for j := int64(0); j < n2; j++ {
				if err := b.edge(i, n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
