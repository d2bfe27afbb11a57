// SPDX-License-Identifier: MIT

package invariant

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/poly"
)

// CoefficientMatrix returns the |q|×|basis| matrix whose row i holds the
// coefficients of q[i] on the monomials of basis. Terms outside basis are
// ignored.
func CoefficientMatrix(q []*poly.Poly, basis []poly.Monomial) (*matrix.Dense, error) {
	rows := make([][]*big.Rat, len(q))
	for i, p := range q {
		rows[i] = make([]*big.Rat, len(basis))
		for j, m := range basis {
			rows[i][j] = p.Coeff(m)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("CoefficientMatrix: %w", err)
	}

	return m, nil
}

// IndependentSubset returns a maximal linearly independent subset of q with
// respect to the monomial basis, preferring earlier entries. It spans the
// same subspace as q and its size is the rank of the coefficient matrix.
// Empty input yields an empty result.
func IndependentSubset(q []*poly.Poly, basis []poly.Monomial) ([]*poly.Poly, error) {
	if len(q) == 0 || len(basis) == 0 {
		return nil, nil
	}
	m, err := CoefficientMatrix(q, basis)
	if err != nil {
		return nil, fmt.Errorf("IndependentSubset: %w", err)
	}
	idx, err := matrix.IndependentRows(m)
	if err != nil {
		return nil, fmt.Errorf("IndependentSubset: %w", err)
	}
	out := make([]*poly.Poly, len(idx))
	for i, r := range idx {
		out[i] = q[r]
	}

	return out, nil
}
