// SPDX-License-Identifier: MIT
// Package idarray_test verifies the id-array guard and accessors.

package idarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/idarray"
)

// TestValidate_Table locks the guard's verdict for each header violation.
func TestValidate_Table(t *testing.T) {
	gpu := idarray.New(1, 2, 3)
	gpu.Ctx = idarray.Context{Device: idarray.DeviceGPU}

	f32 := idarray.New(1, 2)
	f32.DType = idarray.DType{Kind: idarray.KindFloat, Bits: 32, Lanes: 1}

	i32 := idarray.New(1, 2)
	i32.DType.Bits = 32

	u64 := idarray.New(1, 2)
	u64.DType.Kind = idarray.KindUint

	twoD := idarray.New(1, 2, 3, 4)
	twoD.Shape = []int64{2, 2}

	badExtent := idarray.New(1, 2, 3)
	badExtent.Shape = []int64{5}

	tests := []struct {
		name string
		in   *idarray.IdArray
		want error
	}{
		{"nil", nil, idarray.ErrNilArray},
		{"gpu", gpu, idarray.ErrDeviceOrTypeMismatch},
		{"float32", f32, idarray.ErrDeviceOrTypeMismatch},
		{"int32", i32, idarray.ErrDeviceOrTypeMismatch},
		{"uint64", u64, idarray.ErrDeviceOrTypeMismatch},
		{"2-D", twoD, idarray.ErrDimensionMismatch},
		{"extent", badExtent, idarray.ErrDimensionMismatch},
		{"ok", idarray.New(7, 8), nil},
		{"empty ok", idarray.Empty(0), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := idarray.Validate(tc.in)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateAll_ReportsPosition(t *testing.T) {
	err := idarray.ValidateAll(idarray.New(1), nil)
	require.ErrorIs(t, err, idarray.ErrNilArray)
	require.Contains(t, err.Error(), "arg 1")
}

func TestConstructors_CopyInput(t *testing.T) {
	src := []int64{4, 5, 6}
	a := idarray.FromSlice(src)
	src[0] = 99
	require.Equal(t, []int64{4, 5, 6}, a.Data)

	out := a.Slice()
	out[1] = -1
	require.Equal(t, int64(5), a.At(1))
}

func TestCumsumAndSum(t *testing.T) {
	a := idarray.New(2, 0, 3)
	require.Equal(t, []int64{0, 2, 2, 5}, a.Cumsum())
	require.Equal(t, int64(5), a.Sum())
	require.Equal(t, []int64{0}, idarray.Empty(0).Cumsum())
}

func TestRangeFullSorted(t *testing.T) {
	require.Equal(t, []int64{3, 4, 5}, idarray.Range(3, 6).Data)
	require.Zero(t, idarray.Range(6, 3).Len())
	require.Equal(t, []int64{7, 7}, idarray.Full(2, 7).Data)
	require.True(t, idarray.New(1, 1, 2).IsSorted())
	require.False(t, idarray.New(5, 3).IsSorted())
}

func TestCloneEqual(t *testing.T) {
	a := idarray.New(1, 2)
	b := a.Clone()
	require.True(t, a.Equal(b))
	b.Data[0] = 0
	require.False(t, a.Equal(b))
	var n *idarray.IdArray
	require.True(t, n.Equal(nil))
}
