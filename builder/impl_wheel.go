// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); the rim is a cycle of n-1 vertices.
//   • Rim vertices are local 0..n-2, the hub is local n-1.
//   • Emits the rim edges (as Cycle) then spokes hub -> i in ascending i.
//
// Complexity: O(n) vertices + O(2n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends a wheel W_n = C_{n-1} + hub.
func Wheel(n int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		b, err := newBlock(methodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		rim, hub := n-1, n-1
		for i := int64(0); i < rim; i++ {
			if err := b.edge(i, (i+1)%rim); err != nil {
				return err
			}
		}
		for i := int64(0); i < rim; i++ {
			if err := b.edge(hub, i); err != nil {
				return err
			}
		}
		return nil
	}
}
