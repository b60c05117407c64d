// SPDX-License-Identifier: MIT

// Package idarray defines IdArray, the one-dimensional 64-bit id vector that
// every lvbatch transform consumes and produces.
//
// What
//
//   - IdArray carries a small tensor header (device context, dtype, shape) next
//     to its []int64 payload, so that arrays handed over by a surrounding
//     tensor runtime can be checked before any work is done.
//   - Validate is the single guard used across the module: the array must be
//     non-nil, CPU resident, exactly one dimension, signed integer, 64 bits.
//   - The same type serves as a plain id list, a "sizes" vector (partition
//     boundaries) and an "offsets" vector (run-length boundaries, n+1 long).
//
// Ownership
//
//	New/FromSlice copy their input and Slice returns a copy, so those arrays
//	never alias caller memory. FromOwned is the one exception: it adopts a
//	slice the caller has just allocated and will not touch again.
//
// Errors
//
//	ErrNilArray             - nil *IdArray.
//	ErrDeviceOrTypeMismatch - not CPU, not signed int, or not 64-bit.
//	ErrDimensionMismatch    - ndim != 1 or shape disagrees with the payload.
package idarray
