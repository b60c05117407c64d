// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// block.go — vertex-block allocation and edge emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

// block addresses the vertex window [base, base+n) a constructor owns.
type block struct {
	g      *core.Graph
	cfg    builderConfig
	method string
	base   int64
	n      int64
}

// newBlock allocates n fresh vertices at the end of g.
func newBlock(method string, g *core.Graph, cfg builderConfig, n int64) (*block, error) {
	base := g.NumVertices()
	if err := g.AddVertices(n); err != nil {
		return nil, fmt.Errorf("%s: AddVertices(%d): %v: %w", method, n, err, ErrConstructFailed)
	}
	return &block{g: g, cfg: cfg, method: method, base: base, n: n}, nil
}

// edge emits the local edge i→j, followed by j→i when the config asks for
// mirrored edges and i != j.
func (b *block) edge(i, j int64) error {
	if err := b.add(i, j); err != nil {
		return err
	}
	if b.cfg.bidirectional && i != j {
		return b.add(j, i)
	}
	return nil
}

func (b *block) add(i, j int64) error {
	if _, err := b.g.AddEdge(b.base+i, b.base+j); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %v: %w", b.method, i, j, err, ErrConstructFailed)
	}
	return nil
}
