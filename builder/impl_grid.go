// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is local vertex r*cols + c (row-major).
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols 4-neighborhood grid.
func Grid(rows, cols int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b, err := newBlock(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := int64(0); r < rows; r++ {
			for c := int64(0); c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := b.edge(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.edge(u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
