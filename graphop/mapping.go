// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// mapping.go — MapParentIDToSubgraphID and ExpandIDs.
//
// Lookup rules:
//   • sorted parent  -> binary search, the FIRST matching position wins.
//   • unsorted parent -> hash index built once, the LAST position wins.
//   • absent query   -> -1.
//
// Queries are resolved in contiguous chunks of at least grain elements, one
// goroutine per chunk, bounded by the worker cap. Each chunk writes a
// disjoint slice of the output so no synchronization beyond Wait is needed.

package graphop

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbatch/idarray"
)

const opMapParent = "MapParentIDToSubgraphID"

// lookupFunc returns the position of id in the parent array or -1.
type lookupFunc func(id int64) int64

// MapParentIDToSubgraphID returns, for every query id, its position in
// parent, or -1 when the id does not occur.
//
// Errors:
//   - ErrDimensionMismatch / ErrDeviceOrTypeMismatch if either array fails the guard.
//   - ErrUnsortedParent if StrategySorted is forced on an unsorted parent.
//
// Complexity: O(P + Q log P) sorted, O(P + Q) expected hashed.
func MapParentIDToSubgraphID(parent, query *idarray.IdArray, opts ...MapOption) (*idarray.IdArray, error) {
	if err := idarray.Validate(parent); err != nil {
		return nil, fmt.Errorf("%s: parent: %w", opMapParent, err)
	}
	if err := idarray.Validate(query); err != nil {
		return nil, fmt.Errorf("%s: query: %w", opMapParent, err)
	}
	cfg := newMapConfig(opts...)

	lookup, err := buildLookup(parent.Data, cfg.strategy)
	if err != nil {
		return nil, err
	}

	ids := query.Data
	out := make([]int64, len(ids))
	chunk := chunkSize(len(ids), cfg.workers, cfg.grain)
	if chunk >= len(ids) {
		fill(out, ids, lookup)
		return idarray.FromOwned(out), nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for lo := 0; lo < len(ids); lo += chunk {
		hi := min(lo+chunk, len(ids))
		g.Go(func() error {
			fill(out[lo:hi], ids[lo:hi], lookup)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opMapParent, err)
	}
	return idarray.FromOwned(out), nil
}

func buildLookup(parent []int64, strategy Strategy) (lookupFunc, error) {
	sorted := slices.IsSorted(parent)
	switch strategy {
	case StrategySorted:
		if !sorted {
			return nil, fmt.Errorf("%s: %w", opMapParent, ErrUnsortedParent)
		}
	case StrategyHashed:
		sorted = false
	}

	if sorted {
		return func(id int64) int64 {
			if i, found := slices.BinarySearch(parent, id); found {
				return int64(i)
			}
			return -1
		}, nil
	}

	index := make(map[int64]int64, len(parent))
	for i, id := range parent {
		index[id] = int64(i)
	}
	return func(id int64) int64 {
		if i, ok := index[id]; ok {
			return i
		}
		return -1
	}, nil
}

// chunkSize splits n items over at most workers chunks of at least grain.
func chunkSize(n, workers, grain int) int {
	if n == 0 || workers <= 1 {
		return n
	}
	size := (n + workers - 1) / workers
	return max(size, grain)
}

func fill(dst, ids []int64, lookup lookupFunc) {
	for i, id := range ids {
		dst[i] = lookup(id)
	}
}

// maxExpandLen caps the ExpandIDs output length.
const maxExpandLen = math.MaxInt32

// ExpandIDs repeats ids[i] offset[i+1]-offset[i] times, in order.
//
// Errors:
//   - ErrDimensionMismatch / ErrDeviceOrTypeMismatch if either array fails
//     the guard, or if len(offset) != len(ids)+1.
//   - ErrInvalidOffsets if offset[0] != 0, offset decreases anywhere, or
//     offset[last] exceeds math.MaxInt32.
//
// Complexity: O(len(ids) + offset[last]).
func ExpandIDs(ids, offset *idarray.IdArray) (*idarray.IdArray, error) {
	const op = "ExpandIDs"
	if err := idarray.ValidateAll(ids, offset); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if offset.Len() != ids.Len()+1 {
		return nil, fmt.Errorf("%s: len(offset)=%d, want len(ids)+1=%d: %w",
			op, offset.Len(), ids.Len()+1, ErrDimensionMismatch)
	}
	off := offset.Data
	if off[0] != 0 {
		return nil, fmt.Errorf("%s: offset[0]=%d: %w", op, off[0], ErrInvalidOffsets)
	}
	for i := 1; i < len(off); i++ {
		if off[i] < off[i-1] {
			return nil, fmt.Errorf("%s: offset[%d]=%d < offset[%d]=%d: %w",
				op, i, off[i], i-1, off[i-1], ErrInvalidOffsets)
		}
	}

	total := off[len(off)-1]
	if total > maxExpandLen {
		return nil, fmt.Errorf("%s: offset[%d]=%d exceeds %d: %w",
			op, len(off)-1, total, maxExpandLen, ErrInvalidOffsets)
	}

	out := make([]int64, 0, total)
	for i, id := range ids.Data {
		for n := off[i+1] - off[i]; n > 0; n-- {
			out = append(out, id)
		}
	}
	return idarray.FromOwned(out), nil
}
