// SPDX-License-Identifier: MIT
// Package: lvbatch/idarray
//
// errors.go — sentinel errors for id-array validation.
//
// Error policy:
//   • Only sentinels are exported; callers branch with errors.Is.
//   • Validate wraps them with the failing field for context.

package idarray

import "errors"

var (
	// ErrNilArray indicates a nil *IdArray was supplied.
	ErrNilArray = errors.New("idarray: array is nil")

	// ErrDeviceOrTypeMismatch indicates the array is not CPU resident or its
	// element type is not a 64-bit signed integer.
	ErrDeviceOrTypeMismatch = errors.New("idarray: device or dtype mismatch")

	// ErrDimensionMismatch indicates the array is not one-dimensional, or its
	// declared extent disagrees with the payload length, or two arrays have
	// incompatible lengths.
	ErrDimensionMismatch = errors.New("idarray: dimension mismatch")
)
