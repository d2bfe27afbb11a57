// SPDX-License-Identifier: MIT

package invariant

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// IsInvariant reports whether p(g·x) = p for every element g.
func IsInvariant(g *group.Group, p *poly.Poly) bool {
	if p.NumVars() != g.Dim() {
		return false
	}
	for k := 0; k < g.Order(); k++ {
		if !g.Act(k, p).Equal(p) {
			return false
		}
	}

	return true
}

// SubalgebraDimension returns dim K[gens]_k: the rank of all products
// Π gens_i^{α_i} of degree k. gens must be nonzero homogeneous polynomials
// of positive degree in the same ring.
// Complexity: one product per weighted composition plus one RREF.
func SubalgebraDimension(gens []*poly.Poly, k int) (int, error) {
	if k == 0 {
		return 1, nil
	}
	if len(gens) == 0 {
		return 0, nil
	}
	degs, err := degreesOf(gens)
	if err != nil {
		return 0, fmt.Errorf("SubalgebraDimension: %w", err)
	}
	n := gens[0].NumVars()

	var prods []*poly.Poly
	for _, alpha := range WeightedCompositions(k, degs) {
		p := poly.ConstantInt(n, 1)
		for i, a := range alpha {
			if a > 0 {
				p = p.Mul(gens[i].Pow(a))
			}
		}
		prods = append(prods, p)
	}
	if len(prods) == 0 {
		return 0, nil
	}
	m, err := CoefficientMatrix(prods, Monomials(k, n))
	if err != nil {
		return 0, fmt.Errorf("SubalgebraDimension: %w", err)
	}
	r, err := matrix.Rank(m)
	if err != nil {
		return 0, fmt.Errorf("SubalgebraDimension: %w", err)
	}

	return r, nil
}

// SubalgebraHilbert expands Σ_k dim K[gens]_k · t^k through bound by
// brute force. It is the reference the relation tracker is checked against.
func SubalgebraHilbert(gens []*poly.Poly, bound int) (*series.Series, error) {
	if bound < 0 {
		return nil, fmt.Errorf("SubalgebraHilbert: %w", ErrBadBound)
	}
	coeffs := make([]*big.Rat, bound+1)
	for k := 0; k <= bound; k++ {
		d, err := SubalgebraDimension(gens, k)
		if err != nil {
			return nil, fmt.Errorf("SubalgebraHilbert: %w", err)
		}
		coeffs[k] = big.NewRat(int64(d), 1)
	}

	return series.FromRats(bound, coeffs)
}

func degreesOf(gens []*poly.Poly) ([]int, error) {
	n := gens[0].NumVars()
	degs := make([]int, len(gens))
	for i, g := range gens {
		if g.NumVars() != n {
			return nil, ErrDimensionMismatch
		}
		if g.Degree() <= 0 || !g.IsHomogeneous(nil) {
			return nil, fmt.Errorf("generator %d (%s): %w", i, g, ErrNotHomogeneous)
		}
		degs[i] = g.Degree()
	}

	return degs, nil
}
