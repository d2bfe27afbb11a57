// SPDX-License-Identifier: MIT
// Package group_test contains unit tests for finite matrix groups.
package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/poly"
)

func mat(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func TestCyclic_Rotation(t *testing.T) {
	r := mat(t, [][]int64{{0, -1}, {1, 0}})
	g, err := group.Cyclic(r)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Dim())
	assert.True(t, g.Contains(r))
	assert.True(t, g.Contains(mat(t, [][]int64{{-1, 0}, {0, -1}})))
	assert.False(t, g.Contains(mat(t, [][]int64{{1, 0}, {0, -1}})))
	assert.False(t, g.Contains(nil))

	// the first element is the identity
	id, _ := matrix.Identity(2)
	assert.True(t, g.Element(0).Equal(id))
}

func TestPermutations(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 2, 3: 6, 4: 24} {
		g, err := group.Permutations(n)
		require.NoError(t, err)
		assert.Equal(t, want, g.Order(), "S_%d", n)
	}
}

func TestNew_Validates(t *testing.T) {
	id := mat(t, [][]int64{{1, 0}, {0, 1}})
	flip := mat(t, [][]int64{{-1, 0}, {0, -1}})
	swap := mat(t, [][]int64{{0, 1}, {1, 0}})

	g, err := group.New([]*matrix.Dense{id, flip, flip})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order(), "duplicates collapse")

	tests := []struct {
		name  string
		elems []*matrix.Dense
		want  error
	}{
		{"empty", nil, group.ErrEmpty},
		{"not square", []*matrix.Dense{mat(t, [][]int64{{1, 0}})}, group.ErrNotSquare},
		{"mixed dimension", []*matrix.Dense{id, mat(t, [][]int64{{1}})}, group.ErrDimensionMismatch},
		{"no identity", []*matrix.Dense{flip}, group.ErrNoIdentity},
		{"not closed", []*matrix.Dense{id, flip, swap}, group.ErrNotClosed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := group.New(tc.elems)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerate_Limit(t *testing.T) {
	// infinite order: [[1,1],[0,1]]
	shear := mat(t, [][]int64{{1, 1}, {0, 1}})
	_, err := group.Generate([]*matrix.Dense{shear}, 50)
	require.ErrorIs(t, err, group.ErrTooLarge)

	_, err = group.Generate(nil, 0)
	require.ErrorIs(t, err, group.ErrEmpty)
}

func TestAct(t *testing.T) {
	swap, err := group.PermutationMatrix([]int{1, 0})
	require.NoError(t, err)
	g, err := group.Cyclic(swap)
	require.NoError(t, err)
	require.Equal(t, 2, g.Order())

	x1, x2 := poly.Var(2, 0), poly.Var(2, 1)
	p := x1.Pow(2).Mul(x2)
	assert.True(t, g.Act(0, p).Equal(p))
	assert.True(t, g.Act(1, p).Equal(x2.Pow(2).Mul(x1)))

	imgs := g.Images(1)
	require.Len(t, imgs, 2)
	assert.Equal(t, "x2", imgs[0].String())
	assert.Equal(t, "x1", imgs[1].String())
}

func TestTrivial(t *testing.T) {
	g, err := group.Trivial(3)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.Len(t, g.Elements(), 1)

	_, err = group.Trivial(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
