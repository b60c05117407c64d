// SPDX-License-Identifier: MIT
//
// File: assemble.go
// Role: Bulk construction from pre-built lists and the consistency check.
// Policy:
//   - Assemble takes ownership of its arguments; it performs shape checks only.
//   - Validate is the O(V+E) proof that the three storage views agree.

package core

import "fmt"

// Assemble builds a Graph directly from forward lists, reverse lists and the
// flat edge list. The Graph takes ownership of every slice passed in: callers
// must not retain or modify them afterwards.
//
// Only shapes are checked here (len(adj)==len(radj), len(src)==len(dst), and
// Succ/EdgeID length parity per list). Run Validate for the full invariant.
//
// Errors:
//   - ErrInconsistent on any shape disagreement.
//
// Complexity: O(V).
func Assemble(adj, radj []EdgeList, src, dst []int64) (*Graph, error) {
	if len(adj) != len(radj) {
		return nil, fmt.Errorf("Assemble: %d forward vs %d reverse lists: %w", len(adj), len(radj), ErrInconsistent)
	}
	if len(src) != len(dst) {
		return nil, fmt.Errorf("Assemble: %d src vs %d dst: %w", len(src), len(dst), ErrInconsistent)
	}
	for v := range adj {
		if len(adj[v].Succ) != len(adj[v].EdgeID) || len(radj[v].Succ) != len(radj[v].EdgeID) {
			return nil, fmt.Errorf("Assemble: vertex %d: ragged list: %w", v, ErrInconsistent)
		}
	}
	return &Graph{adj: adj, radj: radj, src: src, dst: dst}, nil
}

// Validate checks the mutual-consistency invariant: each edge id appears once
// in the flat list, once in adj[src[e]] paired with dst[e] and once in
// radj[dst[e]] paired with src[e], and no list references an unknown id.
//
// Errors:
//   - ErrInconsistent describing the first violation found.
//
// Complexity: O(V + E) time, O(E) space.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nv, ne := int64(len(g.adj)), int64(len(g.src))
	if len(g.radj) != len(g.adj) || len(g.dst) != len(g.src) {
		return fmt.Errorf("Validate: shape: %w", ErrInconsistent)
	}
	for e := int64(0); e < ne; e++ {
		if g.src[e] < 0 || g.src[e] >= nv || g.dst[e] < 0 || g.dst[e] >= nv {
			return fmt.Errorf("Validate: edge %d endpoint out of range: %w", e, ErrInconsistent)
		}
	}

	check := func(lists []EdgeList, reverse bool) error {
		seen := make([]bool, ne)
		for v, l := range lists {
			if len(l.Succ) != len(l.EdgeID) {
				return fmt.Errorf("Validate: vertex %d ragged: %w", v, ErrInconsistent)
			}
			for i, e := range l.EdgeID {
				if e < 0 || e >= ne || seen[e] {
					return fmt.Errorf("Validate: vertex %d edge %d unknown or repeated: %w", v, e, ErrInconsistent)
				}
				seen[e] = true
				owner, other := g.src[e], g.dst[e]
				if reverse {
					owner, other = other, owner
				}
				if owner != int64(v) || l.Succ[i] != other {
					return fmt.Errorf("Validate: vertex %d edge %d mismatch: %w", v, e, ErrInconsistent)
				}
			}
		}
		for e, ok := range seen {
			if !ok {
				return fmt.Errorf("Validate: edge %d missing from lists: %w", e, ErrInconsistent)
			}
		}
		return nil
	}
	if err := check(g.adj, false); err != nil {
		return err
	}
	return check(g.radj, true)
}
