// SPDX-License-Identifier: MIT

package poly

// Order is a monomial order. Compare returns a positive value when a ranks
// above b, a negative value when below, zero when a == b.
// Implementations must be total, multiplicative and well-founded.
type Order interface {
	Compare(a, b Monomial) int
}

// Lex is the lexicographic order with x_1 > x_2 > ... > x_n.
type Lex struct{}

// Compare implements Order.
func (Lex) Compare(a, b Monomial) int {
	return lexCompare(a, b)
}

// Weighted orders monomials by Σ w_i·e_i first and breaks ties
// lexicographically. All weights must be positive for a well-order.
type Weighted struct {
	W []int
}

// NewWeighted copies w into a Weighted order.
func NewWeighted(w []int) Weighted {
	cp := make([]int, len(w))
	copy(cp, w)

	return Weighted{W: cp}
}

// Graded returns the weighted order with unit weights on n variables (graded lex).
func Graded(n int) Weighted {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}

	return Weighted{W: w}
}

// Compare implements Order.
func (o Weighted) Compare(a, b Monomial) int {
	da, db := a.WeightedDegree(o.W), b.WeightedDegree(o.W)
	if da != db {
		if da > db {
			return 1
		}

		return -1
	}

	return lexCompare(a, b)
}

// Block is an elimination order on two variable blocks. Monomials are compared
// on their first Split variables under First; only on a tie are the remaining
// variables compared under Second. Any monomial touching the first block ranks
// above every monomial that lives purely in the second block.
type Block struct {
	Split  int
	First  Order
	Second Order
}

// Compare implements Order.
func (o Block) Compare(a, b Monomial) int {
	if c := o.First.Compare(a[:o.Split], b[:o.Split]); c != 0 {
		return c
	}

	return o.Second.Compare(a[o.Split:], b[o.Split:])
}

// WeightedDegree returns the weighted degree of m under w.
func WeightedDegree(w []int, m Monomial) int {
	return m.WeightedDegree(w)
}

// LeadingTerm returns the leading term of p under o. ok is false for p == 0.
func LeadingTerm(o Order, p *Poly) (Term, bool) {
	return p.Lead(o)
}

func lexCompare(a, b Monomial) int {
	mustSameLen(len(a), len(b))
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}
