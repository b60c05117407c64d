// SPDX-License-Identifier: MIT
// Package: lvbatch/idarray
//
// methods.go — read-only accessors. None of them mutate the receiver.

package idarray

import "slices"

// Len returns the number of elements.
func (a *IdArray) Len() int64 { return int64(len(a.Data)) }

// At returns the i-th element. It panics on out-of-range i like a slice index.
func (a *IdArray) At(i int64) int64 { return a.Data[i] }

// Slice returns a copy of the payload.
func (a *IdArray) Slice() []int64 { return slices.Clone(a.Data) }

// Clone returns a deep copy, header included.
func (a *IdArray) Clone() *IdArray {
	return &IdArray{
		Ctx:   a.Ctx,
		DType: a.DType,
		Shape: slices.Clone(a.Shape),
		Data:  slices.Clone(a.Data),
	}
}

// IsSorted reports whether the payload is in non-decreasing order.
func (a *IdArray) IsSorted() bool { return slices.IsSorted(a.Data) }

// Sum returns the sum of all elements.
func (a *IdArray) Sum() int64 {
	var s int64
	for _, v := range a.Data {
		s += v
	}
	return s
}

// Cumsum returns the exclusive prefix sums: out[0]=0, out[i+1]=out[i]+a[i].
// The result has Len()+1 elements and is a fresh slice.
func (a *IdArray) Cumsum() []int64 {
	out := make([]int64, len(a.Data)+1)
	for i, v := range a.Data {
		out[i+1] = out[i] + v
	}
	return out
}

// Equal reports whether a and b have identical headers and payloads.
// Two nil arrays are equal.
func (a *IdArray) Equal(b *IdArray) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Ctx == b.Ctx && a.DType == b.DType &&
		slices.Equal(a.Shape, b.Shape) && slices.Equal(a.Data, b.Data)
}
