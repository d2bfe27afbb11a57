// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction, access and kernels.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invring/matrix"
)

func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense_Errors(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromInts([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows([][]*big.Rat{{big.NewRat(1, 1), nil}})
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

func TestAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, big.NewRat(-1, 2)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", v.RatString())

	// At returns a copy
	v.SetInt64(9)
	v, _ = m.At(0, 1)
	assert.Equal(t, "-1/2", v.RatString())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, big.NewRat(1, 1)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilEntry)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Len(t, row, 2)
	assert.Zero(t, row[0].Sign())
	assert.True(t, m.IsZeroRow(1))
	assert.False(t, m.IsZeroRow(0))
}

func TestIdentityCloneEqualKey(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	c := id.Clone()
	assert.True(t, id.Equal(c))
	assert.Equal(t, id.Key(), c.Key())

	require.NoError(t, c.Set(2, 2, big.NewRat(-1, 1)))
	assert.False(t, id.Equal(c))
	assert.NotEqual(t, id.Key(), c.Key())
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	// shape is part of the key
	a := mustInts(t, [][]int64{{1, 0, 0, 1}})
	b := mustInts(t, [][]int64{{1, 0}, {0, 1}})
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestMulTranspose(t *testing.T) {
	r := mustInts(t, [][]int64{{0, -1}, {1, 0}})

	r2, err := matrix.Mul(r, r)
	require.NoError(t, err)
	assert.True(t, r2.Equal(mustInts(t, [][]int64{{-1, 0}, {0, -1}})))

	r4, err := matrix.Mul(r2, r2)
	require.NoError(t, err)
	id, _ := matrix.Identity(2)
	assert.True(t, r4.Equal(id))

	a := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.True(t, at.Equal(mustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}})))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
