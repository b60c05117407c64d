// SPDX-License-Identifier: MIT
// Package csr_test verifies CSR construction, validation and accessors.

package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/csr"
)

// sample is a 3-vertex in-CSR of the cycle 0→1→2→0:
// row 0 ← 2 (e2), row 1 ← 0 (e0), row 2 ← 1 (e1).
func sample(t *testing.T) *csr.CSR {
	t.Helper()
	c, err := csr.New([]int64{0, 1, 2, 3}, []int64{2, 0, 1}, []int64{2, 0, 1})
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name                     string
		indptr, indices, edgeIDs []int64
		want                     error
	}{
		{"empty indptr", nil, nil, nil, csr.ErrBadIndptr},
		{"nonzero start", []int64{1, 1}, nil, nil, csr.ErrBadIndptr},
		{"decreasing", []int64{0, 2, 1}, []int64{0}, []int64{0}, csr.ErrBadIndptr},
		{"end != E", []int64{0, 1}, []int64{0, 0}, []int64{0, 1}, csr.ErrBadIndptr},
		{"ragged", []int64{0, 1}, []int64{0}, []int64{}, csr.ErrLengthMismatch},
		{"index range", []int64{0, 1}, []int64{3}, []int64{0}, csr.ErrVertexNotFound},
		{"no vertices", []int64{0}, nil, nil, nil},
		{"ok", []int64{0, 0, 2}, []int64{0, 1}, []int64{1, 0}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(tc.indptr, tc.indices, tc.edgeIDs)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAccessors(t *testing.T) {
	c := sample(t)
	require.Equal(t, int64(3), c.NumVertices())
	require.Equal(t, int64(3), c.NumEdges())

	nb, err := c.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, nb)

	ids, err := c.EdgeIDsOf(2)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ids)

	d, err := c.Degree(1)
	require.NoError(t, err)
	require.Equal(t, int64(1), d)

	_, err = c.Neighbors(3)
	require.ErrorIs(t, err, csr.ErrVertexNotFound)
	_, err = c.Degree(-1)
	require.ErrorIs(t, err, csr.ErrVertexNotFound)
	_, err = c.EdgeIDsOf(7)
	require.ErrorIs(t, err, csr.ErrVertexNotFound)

	// Accessors hand out copies.
	ip := c.Indptr()
	ip[1] = 99
	nb[0] = 99
	require.Equal(t, []int64{0, 1, 2, 3}, c.Indptr())
	require.Equal(t, []int64{2, 0, 1}, c.Indices())
}

func TestBuilder(t *testing.T) {
	b, err := csr.NewBuilder(2, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 1}, b.Indptr)

	b.Indptr[1] = 1
	b.Indices[0] = 1
	c, err := b.Build()
	require.NoError(t, err)
	require.Nil(t, b.Indptr)
	require.Equal(t, []int64{0, 1, 1}, c.Indptr())

	_, err = csr.NewBuilder(-1, 0)
	require.ErrorIs(t, err, csr.ErrNegativeCount)

	bad, err := csr.NewBuilder(1, 1)
	require.NoError(t, err)
	bad.Indices[0] = 5
	_, err = bad.Build()
	require.ErrorIs(t, err, csr.ErrVertexNotFound)
}

func TestCloneEqual(t *testing.T) {
	c := sample(t)
	d := c.Clone()
	require.True(t, c.Equal(d))
	other, err := csr.New([]int64{0, 0}, nil, nil)
	require.NoError(t, err)
	require.False(t, c.Equal(other))
	require.False(t, c.Equal(nil))
}
