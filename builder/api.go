// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   • BuildBatch is BuildGraph plus the per-constructor vertex counts.
//   • Determinism: same options, seed and constructor order give identical
//     graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/idarray"
)

// Constructor appends one topology block to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Allocate their vertices as one fresh block at the end of g.
//   - Connect only vertices inside their own block.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts, and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, _, err := build("BuildGraph", opts, cons)
	return g, err
}

// BuildBatch is BuildGraph that also reports how many vertices each
// constructor contributed, in call order. Partitioning the graph by those
// sizes recovers each block as a standalone graph.
func BuildBatch(opts []BuilderOption, cons ...Constructor) (*core.Graph, *idarray.IdArray, error) {
	g, sizes, err := build("BuildBatch", opts, cons)
	if err != nil {
		return nil, nil, err
	}
	return g, idarray.FromOwned(sizes), nil
}

func build(method string, opts []BuilderOption, cons []Constructor) (*core.Graph, []int64, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	sizes := make([]int64, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		before := g.NumVertices()
		if err := fn(g, cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", method, err)
		}
		sizes[i] = g.NumVertices() - before
	}
	return g, sizes, nil
}
