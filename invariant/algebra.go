// SPDX-License-Identifier: MIT

package invariant

import (
	"github.com/katalvlaran/invring/groebner"
	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// Algebra is the symbolic backend the Builder drives. Implementations must
// be deterministic and exact; the Builder never looks behind this interface.
type Algebra interface {
	// NormalForm fully reduces f modulo basis under o.
	NormalForm(o poly.Order, basis []*poly.Poly, f *poly.Poly) *poly.Poly

	// TruncatedBasis returns a Gröbner basis of ⟨gens⟩ under o that is exact
	// through grading degree bound.
	TruncatedBasis(o poly.Order, gens []*poly.Poly, grading []int, bound int) ([]*poly.Poly, error)

	// HilbertSeries expands the Hilbert series of K[y]/⟨ht⟩ with deg y_i = weights[i].
	HilbertSeries(ht []poly.Monomial, weights []int, bound int) (*series.Series, error)
}

// defaultAlgebra wires the groebner and series packages.
type defaultAlgebra struct{}

func (defaultAlgebra) NormalForm(o poly.Order, basis []*poly.Poly, f *poly.Poly) *poly.Poly {
	return groebner.NormalForm(o, basis, f)
}

func (defaultAlgebra) TruncatedBasis(o poly.Order, gens []*poly.Poly, grading []int, bound int) ([]*poly.Poly, error) {
	return groebner.Truncated(o, gens, grading, bound)
}

func (defaultAlgebra) HilbertSeries(ht []poly.Monomial, weights []int, bound int) (*series.Series, error) {
	return series.HilbertSeries(ht, weights, bound)
}
