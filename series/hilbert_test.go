// SPDX-License-Identifier: MIT
// Package series_test contains unit tests for Hilbert series of monomial ideals.
package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// standardCount counts monomials of weighted degree k outside ⟨ht⟩ by brute force.
func standardCount(ht []poly.Monomial, weights []int, k int) int64 {
	var (
		count int64
		cur   = make(poly.Monomial, len(weights))
		rec   func(i, rest int)
	)
	rec = func(i, rest int) {
		if i == len(weights) {
			if rest != 0 {
				return
			}
			for _, m := range ht {
				if m.Divides(cur) {
					return
				}
			}
			count++
			return
		}
		for e := 0; e*weights[i] <= rest; e++ {
			cur[i] = e
			rec(i+1, rest-e*weights[i])
		}
		cur[i] = 0
	}
	rec(0, k)

	return count
}

func TestHilbertSeries_MatchesCounting(t *testing.T) {
	tests := []struct {
		name    string
		ht      []poly.Monomial
		weights []int
	}{
		{"free", nil, []int{1, 1}},
		{"single relation", []poly.Monomial{{1, 0, 1}}, []int{2, 2, 2}},
		{"weighted relation", []poly.Monomial{{2, 0, 1}}, []int{2, 4, 4}},
		{"coprime pair", []poly.Monomial{{2, 0, 0}, {0, 0, 3}}, []int{1, 1, 1}},
		{
			"overlapping", []poly.Monomial{{2, 1, 0}, {1, 2, 0}, {0, 1, 1}, {1, 0, 2}},
			[]int{1, 2, 3},
		},
		{"redundant generators", []poly.Monomial{{1, 1}, {2, 1}, {1, 1}}, []int{1, 1}},
	}
	const bound = 12
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := series.HilbertSeries(tc.ht, tc.weights, bound)
			require.NoError(t, err)
			for k := 0; k <= bound; k++ {
				c := h.Coeff(k)
				require.True(t, c.IsInt())
				assert.Equal(t, standardCount(tc.ht, tc.weights, k), c.Num().Int64(), "degree %d", k)
			}
		})
	}
}

func TestHilbertNumerator(t *testing.T) {
	// ⟨y1*y3⟩ with unit weights: 1 − t²
	n, err := series.HilbertNumerator([]poly.Monomial{{1, 0, 1}}, []int{1, 1, 1}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, -1, 0, 0}, ints(t, n))

	// the constant monomial kills everything
	h, err := series.HilbertSeries([]poly.Monomial{{0, 0}}, []int{1, 1}, 4)
	require.NoError(t, err)
	assert.True(t, h.IsZero())
}

func TestHilbert_Errors(t *testing.T) {
	_, err := series.HilbertSeries(nil, []int{1}, -1)
	require.ErrorIs(t, err, series.ErrNegativeBound)
	_, err = series.HilbertSeries(nil, []int{1, 0}, 3)
	require.ErrorIs(t, err, series.ErrBadWeight)
	_, err = series.HilbertSeries([]poly.Monomial{{1}}, []int{1, 1}, 3)
	require.ErrorIs(t, err, series.ErrDimensionMismatch)
}
