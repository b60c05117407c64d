// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// sizes.go — partition-size resolution shared by both layouts.
//
// Check order (fixed, enforced in tests):
//   id-array guard -> negative entry -> sum != V.
//
// The running sum is compared against the remaining vertex count before each
// addition, so no size vector can wrap int64 and pass.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/idarray"
)

// equalSizes returns num copies of nv/num. An empty graph splits into at
// most one part.
//
// Errors:
//   - ErrIndivisiblePartition if num <= 0, num > max(nv, 1) or nv % num != 0.
func equalSizes(op string, nv, num int64) (*idarray.IdArray, error) {
	if num <= 0 || num > max(nv, 1) || nv%num != 0 {
		return nil, fmt.Errorf("%s: %d vertices into %d parts: %w", op, nv, num, ErrIndivisiblePartition)
	}
	return idarray.Full(num, nv/num), nil
}

// resolveSizes validates a sizes vector against a vertex count and returns
// its exclusive prefix sums (len(sizes)+1 entries, last == nv).
func resolveSizes(op string, nv int64, sizes *idarray.IdArray) ([]int64, error) {
	if err := idarray.Validate(sizes); err != nil {
		return nil, fmt.Errorf("%s: sizes: %w", op, err)
	}
	for i, s := range sizes.Data {
		if s < 0 {
			return nil, fmt.Errorf("%s: sizes[%d]=%d: %w", op, i, s, ErrNegativeSize)
		}
	}
	cumsum := make([]int64, len(sizes.Data)+1)
	for i, s := range sizes.Data {
		if s > nv-cumsum[i] {
			return nil, fmt.Errorf("%s: sizes[%d]=%d exceeds the %d vertices left of %d: %w",
				op, i, s, nv-cumsum[i], nv, ErrSizeSumMismatch)
		}
		cumsum[i+1] = cumsum[i] + s
	}
	if total := cumsum[len(cumsum)-1]; total != nv {
		return nil, fmt.Errorf("%s: sizes sum to %d, graph has %d vertices: %w", op, total, nv, ErrSizeSumMismatch)
	}
	return cumsum, nil
}
