// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// errors.go — sentinel errors for the transforms.
//
// Error policy:
//   • Every failure is a caller-contract violation reported before any result
//     is handed back; nothing here is transient or worth retrying.
//   • Sites wrap with method context: fmt.Errorf("Op: detail: %w", ErrX).

package graphop

import (
	"errors"

	"github.com/katalvlaran/lvbatch/idarray"
)

var (
	// ErrNilGraph indicates a nil *core.Graph or *csr.CSR was supplied.
	ErrNilGraph = errors.New("graphop: graph is nil")

	// ErrSizeSumMismatch indicates the partition sizes do not sum to the
	// number of vertices of the graph being split.
	ErrSizeSumMismatch = errors.New("graphop: sizes do not sum to vertex count")

	// ErrIndivisiblePartition indicates the vertex count is not a multiple of
	// the requested number of equal partitions (or the count is not positive).
	ErrIndivisiblePartition = errors.New("graphop: partition count does not divide vertex count")

	// ErrNegativeSize indicates a negative entry in a sizes vector.
	ErrNegativeSize = errors.New("graphop: negative partition size")

	// ErrInvariantViolation indicates a produced partition does not have the
	// requested vertex count or the counted edge span, or references ids
	// outside its own block. It means the input's edges were not laid out in
	// contiguous per-block windows.
	ErrInvariantViolation = errors.New("graphop: internal invariant violated")

	// ErrInvalidOffsets indicates an offsets vector that does not start at 0
	// or is not non-decreasing.
	ErrInvalidOffsets = errors.New("graphop: invalid offsets")

	// ErrUnsortedParent indicates StrategySorted was forced on a parent id
	// array that is not sorted ascending.
	ErrUnsortedParent = errors.New("graphop: parent ids are not sorted")
)

// Id-array guard failures, re-exported so callers of this package can match
// them without importing idarray.
var (
	ErrDimensionMismatch    = idarray.ErrDimensionMismatch
	ErrDeviceOrTypeMismatch = idarray.ErrDeviceOrTypeMismatch
)
