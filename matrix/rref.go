// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// RREF returns the reduced row echelon form of a together with its pivot
// columns in increasing order. The input is not modified.
//
// Implementation:
//   - Stage 1: Clone a so the caller's matrix stays immutable.
//   - Stage 2: Gauss–Jordan sweep column by column; the first nonzero entry
//     at or below the current row is the pivot (exact arithmetic needs no
//     magnitude pivoting).
//   - Stage 3: Normalise the pivot row and clear the pivot column above and below.
//
// Determinism: fixed column-major sweep, first-nonzero pivot choice.
// Complexity: O(r·c·min(r,c)) rational operations.
func RREF(a *Dense) (*Dense, []int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	m := a.Clone()

	var (
		pivots = make([]int, 0, min(m.r, m.c))
		row    int
		tmp    = new(big.Rat)
	)
	for col := 0; col < m.c && row < m.r; col++ {
		// find the first nonzero entry in this column at or below row
		p := -1
		for i := row; i < m.r; i++ {
			if m.at(i, col).Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		m.swapRows(p, row)

		inv := new(big.Rat).Inv(m.at(row, col))
		for j := col; j < m.c; j++ {
			m.at(row, j).Mul(m.at(row, j), inv)
		}
		for i := 0; i < m.r; i++ {
			if i == row || m.at(i, col).Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m.at(i, col))
			for j := col; j < m.c; j++ {
				tmp.Mul(f, m.at(row, j))
				m.at(i, j).Sub(m.at(i, j), tmp)
			}
		}
		pivots = append(pivots, col)
		row++
	}

	return m, pivots, nil
}

// Rank returns the rank of a (number of pivots of its RREF).
func Rank(a *Dense) (int, error) {
	_, pivots, err := RREF(a)
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}

// IndependentRows returns the indices of a maximal linearly independent
// subset of the rows of a, choosing earlier rows first. The count equals
// the rank of a.
//
// The pivot columns of aᵀ are exactly the greedy earliest independent rows of a.
func IndependentRows(a *Dense) ([]int, error) {
	t, err := Transpose(a)
	if err != nil {
		return nil, err
	}
	_, pivots, err := RREF(t)
	if err != nil {
		return nil, err
	}

	return pivots, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
}
