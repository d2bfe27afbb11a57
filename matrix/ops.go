// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opRREF      = "RREF"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
// Stage 1 (Validate): a.Cols == b.Rows.
// Stage 2 (Execute): triple loop i→k→j with a shared scratch product.
// Complexity: O(r·k·c) rational multiplications.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		prod    = new(big.Rat) // scratch a[i,k]*b[k,j]
		aik     *big.Rat
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.at(i, k)
			if aik.Sign() == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				prod.Mul(aik, b.at(k, j))
				out.data[i*out.c+j].Add(out.data[i*out.c+j], prod)
			}
		}
	}

	return out, nil
}

// Transpose returns aᵀ.
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*out.c+i].Set(a.at(i, j))
		}
	}

	return out, nil
}
