// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/invring/poly"
)

// HilbertNumerator returns the numerator N(t) of the Hilbert series of
// K[y_1..y_m]/⟨ht⟩, graded by deg y_i = weights[i], so that
//
//	H(t) = N(t) / Π_i (1 − t^{weights[i]}).
//
// N is computed by the colon-ideal recursion
//
//	N(m_1..m_r) = N(m_1..m_{r−1}) − t^{deg m_r} · N(m_1:m_r, .., m_{r−1}:m_r)
//
// with m_i:m_r = m_i / gcd(m_i, m_r), after reducing to minimal generators.
// Pairwise coprime generator sets short-circuit to Π (1 − t^{deg m_i}).
// The result is truncated at bound.
func HilbertNumerator(ht []poly.Monomial, weights []int, bound int) (*Series, error) {
	if bound < 0 {
		return nil, fmt.Errorf("HilbertNumerator: %w", ErrNegativeBound)
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("HilbertNumerator: weight %d: %w", w, ErrBadWeight)
		}
	}
	for _, m := range ht {
		if len(m) != len(weights) {
			return nil, fmt.Errorf("HilbertNumerator: monomial %v over %d weights: %w", m, len(weights), ErrDimensionMismatch)
		}
	}

	return numerator(minimalGenerators(ht), weights, bound), nil
}

// HilbertSeries expands the Hilbert series of K[y]/⟨ht⟩ to bound.
// With no variables the quotient is K itself and the series is 1
// (or 0 when ht contains the constant monomial).
func HilbertSeries(ht []poly.Monomial, weights []int, bound int) (*Series, error) {
	h, err := HilbertNumerator(ht, weights, bound)
	if err != nil {
		return nil, err
	}
	for _, w := range weights {
		if h, err = h.DivOneMinusTPow(w); err != nil {
			return nil, fmt.Errorf("HilbertSeries: %w", err)
		}
	}

	return h, nil
}

func numerator(gens []poly.Monomial, weights []int, bound int) *Series {
	one := zero(bound)
	one.c[0].SetInt64(1)
	if len(gens) == 0 {
		return one
	}
	if pairwiseCoprime(gens) {
		out := one
		for _, g := range gens {
			out = out.Sub(out.ShiftScale(big.NewRat(1, 1), g.WeightedDegree(weights)))
		}

		return out
	}

	last := gens[len(gens)-1]
	rest := gens[:len(gens)-1]
	quot := make([]poly.Monomial, len(rest))
	for i, m := range rest {
		quot[i] = m.Div(m.GCD(last))
	}

	head := numerator(rest, weights, bound)
	tail := numerator(minimalGenerators(quot), weights, bound)

	return head.Sub(tail.ShiftScale(big.NewRat(1, 1), last.WeightedDegree(weights)))
}

// minimalGenerators drops duplicates and every monomial divisible by another,
// keeping the survivors in input order.
func minimalGenerators(gens []poly.Monomial) []poly.Monomial {
	out := make([]poly.Monomial, 0, len(gens))
	for i, m := range gens {
		redundant := false
		for j, o := range gens {
			if i == j || !o.Divides(m) {
				continue
			}
			// equal monomials: keep the first occurrence only
			if o.Equal(m) && j > i {
				continue
			}
			redundant = true
			break
		}
		if !redundant {
			out = append(out, m)
		}
	}

	return out
}

func pairwiseCoprime(gens []poly.Monomial) bool {
	for i := range gens {
		for j := i + 1; j < len(gens); j++ {
			if !gens[i].Coprime(gens[j]) {
				return false
			}
		}
	}

	return true
}
