// SPDX-License-Identifier: MIT
// Package: lvbatch/idarray
//
// validate.go — the shared id-array guard.
//
// Order of checks (fixed, enforced in tests):
//   nil -> device -> dtype -> ndim -> shape/payload agreement.

package idarray

import "fmt"

// Validate reports whether a is a well-formed id vector: non-nil, CPU
// resident, one-dimensional, signed integer kind and 64-bit width, with a
// declared extent equal to the payload length.
//
// Errors:
//   - ErrNilArray
//   - ErrDeviceOrTypeMismatch (device, kind or bits)
//   - ErrDimensionMismatch (ndim or extent)
//
// Complexity: O(1).
func Validate(a *IdArray) error {
	if a == nil {
		return fmt.Errorf("Validate: %w", ErrNilArray)
	}
	if a.Ctx.Device != DeviceCPU {
		return fmt.Errorf("Validate: device=%s: %w", a.Ctx.Device, ErrDeviceOrTypeMismatch)
	}
	if a.DType.Kind != KindInt || a.DType.Bits != 64 {
		return fmt.Errorf("Validate: dtype kind=%d bits=%d: %w", a.DType.Kind, a.DType.Bits, ErrDeviceOrTypeMismatch)
	}
	if len(a.Shape) != 1 {
		return fmt.Errorf("Validate: ndim=%d: %w", len(a.Shape), ErrDimensionMismatch)
	}
	if a.Shape[0] != int64(len(a.Data)) {
		return fmt.Errorf("Validate: shape[0]=%d len=%d: %w", a.Shape[0], len(a.Data), ErrDimensionMismatch)
	}
	return nil
}

// ValidateAll runs Validate on each array and returns the first failure,
// prefixed with the argument position.
func ValidateAll(arrays ...*IdArray) error {
	for i, a := range arrays {
		if err := Validate(a); err != nil {
			return fmt.Errorf("arg %d: %w", i, err)
		}
	}
	return nil
}
