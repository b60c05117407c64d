// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like; each admissible pair is included independently
// with probability p.
//   • Default: ordered pairs (i,j), i asc then j asc; i==j only with
//     WithSelfLoops.
//   • WithBidirectional: unordered pairs i<j, each hit emitted both ways
//     (plus i==i trials first in each row when loops are enabled).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: fixed trial order, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int64, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// p ∈ {0,1} needs no RNG; otherwise draw one Bernoulli trial per pair.
		hit := func() bool {
			if rng == nil {
				return p == probMax
			}
			return rng.Float64() < p
		}

		b, err := newBlock(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			first := int64(0)
			if cfg.bidirectional {
				first = i
			}
			for j := first; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				if !hit() {
					continue
				}
				if err := b.edge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
