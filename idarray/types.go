// SPDX-License-Identifier: MIT
// Package: lvbatch/idarray
//
// types.go — IdArray header types and constructors.

package idarray

import "fmt"

// DeviceType identifies where an array's payload lives.
type DeviceType int

const (
	// DeviceCPU is host memory. It is the only device the transforms accept.
	DeviceCPU DeviceType = iota + 1
	// DeviceGPU is accelerator memory; arrays declared here are rejected.
	DeviceGPU
)

// String implements fmt.Stringer.
func (d DeviceType) String() string {
	switch d {
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return "gpu"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// Context is the device placement of an array.
type Context struct {
	Device   DeviceType
	DeviceID int
}

// CPU is the host context used by every constructor in this package.
var CPU = Context{Device: DeviceCPU}

// Kind is the element kind of a dtype.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
)

// DType describes the element type: kind, bit width and vector lanes.
type DType struct {
	Kind  Kind
	Bits  int
	Lanes int
}

// Int64 is the only dtype accepted by Validate.
var Int64 = DType{Kind: KindInt, Bits: 64, Lanes: 1}

// IdArray is a typed id vector with a tensor-style header.
//
// Arrays produced by this package always satisfy Validate. Arrays assembled by
// hand (for example, mirrored from a foreign runtime) may declare any header;
// Validate rejects those that are not CPU/1-D/int64.
type IdArray struct {
	Ctx   Context
	DType DType
	Shape []int64
	Data  []int64
}

// New returns a CPU int64 array holding a copy of ids.
func New(ids ...int64) *IdArray {
	return FromSlice(ids)
}

// FromSlice returns a CPU int64 array holding a copy of ids.
// Complexity: O(n).
func FromSlice(ids []int64) *IdArray {
	data := make([]int64, len(ids))
	copy(data, ids)
	return wrap(data)
}

// FromOwned wraps data without copying. The array takes ownership; callers
// must not modify data afterwards. Transforms use it to hand back freshly
// allocated results.
func FromOwned(data []int64) *IdArray {
	return wrap(data)
}

// Empty returns a zero-filled array of length n. Negative n is treated as 0.
func Empty(n int64) *IdArray {
	if n < 0 {
		n = 0
	}
	return wrap(make([]int64, n))
}

// Full returns an array of length n where every element is v.
func Full(n int64, v int64) *IdArray {
	a := Empty(n)
	for i := range a.Data {
		a.Data[i] = v
	}
	return a
}

// Range returns [lo, lo+1, ..., hi-1]. An empty array is returned if hi <= lo.
func Range(lo, hi int64) *IdArray {
	if hi <= lo {
		return Empty(0)
	}
	a := Empty(hi - lo)
	for i := range a.Data {
		a.Data[i] = lo + int64(i)
	}
	return a
}

// wrap takes ownership of data and attaches a CPU int64 1-D header.
func wrap(data []int64) *IdArray {
	return &IdArray{
		Ctx:   CPU,
		DType: Int64,
		Shape: []int64{int64(len(data))},
		Data:  data,
	}
}
