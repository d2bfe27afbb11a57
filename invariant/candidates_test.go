// SPDX-License-Identifier: MIT
// Package invariant_test contains unit tests for composition enumeration and candidate filtering.
package invariant_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/invring/invariant"
	"github.com/katalvlaran/invring/poly"
)

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}

func TestWeakCompositions_Complete(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for k := 0; k <= 6; k++ {
			t.Run(fmt.Sprintf("k=%d/n=%d", k, n), func(t *testing.T) {
				comps := invariant.WeakCompositions(k, n)
				assert.Len(t, comps, binomial(k+n-1, n-1))

				seen := make(map[string]bool, len(comps))
				for i, c := range comps {
					assert.Len(t, c, n)
					sum := 0
					for _, e := range c {
						assert.GreaterOrEqual(t, e, 0)
						sum += e
					}
					assert.Equal(t, k, sum)

					key := fmt.Sprint(c)
					assert.False(t, seen[key], "duplicate %v", c)
					seen[key] = true

					if i > 0 {
						assert.Positive(t, poly.Lex{}.Compare(comps[i-1], c), "not lex-descending at %d", i)
					}
				}
			})
		}
	}
}

func TestWeakCompositions_Edges(t *testing.T) {
	empty := invariant.WeakCompositions(0, 0)
	if assert.Len(t, empty, 1) {
		assert.Empty(t, empty[0])
	}
	assert.Empty(t, invariant.WeakCompositions(2, 0))
	assert.Empty(t, invariant.WeakCompositions(-1, 3))
	assert.Equal(t, [][]int{{2, 0}, {1, 1}, {0, 2}}, invariant.WeakCompositions(2, 2))
}

func TestWeightedCompositions(t *testing.T) {
	got := invariant.WeightedCompositions(8, []int{2, 4, 4})
	assert.Equal(t, [][]int{
		{4, 0, 0},
		{2, 1, 0}, {2, 0, 1},
		{0, 2, 0}, {0, 1, 1}, {0, 0, 2},
	}, got)
	assert.Empty(t, invariant.WeightedCompositions(3, []int{2, 4}))
}

func TestMonomials(t *testing.T) {
	ms := invariant.Monomials(2, 2)
	assert.Equal(t, []poly.Monomial{{2, 0}, {1, 1}, {0, 2}}, ms)
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		k, n    int
		leads   []poly.Monomial
		degrees []int
		want    []poly.Monomial
	}{
		{
			"nothing known", 2, 2, nil, nil,
			[]poly.Monomial{{2, 0}, {1, 1}, {0, 2}},
		},
		{
			"all quadrics known", 4, 2,
			[]poly.Monomial{{2, 0}, {1, 1}, {0, 2}}, []int{2, 2, 2},
			[]poly.Monomial{},
		},
		{
			"sum of squares known", 4, 2,
			[]poly.Monomial{{2, 0}}, []int{2},
			[]poly.Monomial{{3, 1}, {2, 2}, {1, 3}, {0, 4}},
		},
		{
			"degree not reachable", 3, 2,
			[]poly.Monomial{{2, 0}}, []int{2},
			[]poly.Monomial{{3, 0}, {2, 1}, {1, 2}, {0, 3}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := invariant.Candidates(tc.k, tc.n, tc.leads, tc.degrees)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}
