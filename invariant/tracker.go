// SPDX-License-Identifier: MIT

package invariant

import (
	"fmt"

	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// tracker maintains the auxiliary ring K[X,Y] with one y_i per accepted
// invariant P_i, the ideal ⟨y_i − P_i⟩ as a truncated Gröbner basis under an
// elimination order (X before Y), and the pure-Y part of that basis, whose
// leading terms give the Hilbert series of K[P_1..P_m].
//
// Variable slots are append-only: x_1..x_n occupy indices 0..n−1 and y_i
// occupies n+i forever.
type tracker struct {
	n       int
	plain   poly.Weighted // term order on X induced by W
	algebra Algebra

	invs      []*poly.Poly    // P_i in K[X]
	leads     []poly.Monomial // LM(P_i) under plain
	degrees   []int           // deg P_i, the grading weight of y_i
	elimW     []int           // W followed by weight 1 per y_i
	gb        []*poly.Poly    // in K[X,Y]
	ht        []poly.Monomial // leading Y-monomials of pure-Y basis elements
	relations []*poly.Poly    // pure-Y basis elements, in K[Y]
}

func newTracker(w []int, a Algebra) *tracker {
	return &tracker{
		n:       len(w),
		plain:   poly.NewWeighted(w),
		algebra: a,
		elimW:   append([]int(nil), w...),
	}
}

// m returns the number of invariants (= number of Y slots).
func (t *tracker) m() int { return len(t.invs) }

// elimination returns the block order on K[X,Y]: X-parts under W first,
// Y-parts under the unit weights of elimW.
func (t *tracker) elimination() poly.Block {
	return poly.Block{
		Split:  t.n,
		First:  t.plain,
		Second: poly.NewWeighted(t.elimW[t.n:]),
	}
}

// admit runs the normal-form admission test over independent candidates of
// one degree and returns the accepted generators.
//
// For each q: h = NF(q) modulo the basis. If h is free of X, q already lies
// in K[P] and is dropped. Otherwise the pure-Y part of h, evaluated at
// Y = P, is subtracted from q (substituting X = 0, Y = P into h), and the
// difference is reduced against the generators accepted earlier in this
// round; a nonzero remainder is accepted, made monic.
func (t *tracker) admit(candidates []*poly.Poly) []*poly.Poly {
	var (
		order    = t.elimination()
		size     = t.n + t.m()
		images   = make([]*poly.Poly, 0, size)
		accepted []*poly.Poly
	)
	for i := 0; i < t.n; i++ {
		images = append(images, poly.New(t.n)) // x_i -> 0
	}
	images = append(images, t.invs...) // y_i -> P_i

	for _, q := range candidates {
		h := t.algebra.NormalForm(order, t.gb, q.Extend(size))
		if !h.UsesAny(0, t.n) {
			continue // expressible in known invariants
		}
		p := q.Sub(h.Subst(t.n, images))
		p = t.algebra.NormalForm(t.plain, accepted, p)
		if p.IsZero() {
			continue
		}
		accepted = append(accepted, p.Monic(t.plain))
	}

	return accepted
}

// extend appends accepted generators of the given degree, adds y_i − P_i,
// re-closes the basis through bound, and refreshes the relation data.
func (t *tracker) extend(accepted []*poly.Poly, degree, bound int) error {
	m0 := t.m()
	size := t.n + m0 + len(accepted)

	// Stage 1: grow the Y arena and the elimination weights.
	gens := make([]*poly.Poly, 0, len(t.gb)+len(accepted))
	for _, g := range t.gb {
		gens = append(gens, g.Extend(size))
	}
	for i, p := range accepted {
		lt, _ := p.Lead(t.plain)
		t.invs = append(t.invs, p)
		t.leads = append(t.leads, lt.Mon)
		t.degrees = append(t.degrees, degree)
		t.elimW = append(t.elimW, 1)
		y := poly.Var(size, t.n+m0+i)
		gens = append(gens, y.Sub(p.Extend(size)))
	}

	// Stage 2: re-close under the extended elimination order.
	grading := make([]int, 0, size)
	grading = append(grading, unitWeights(t.n)...)
	grading = append(grading, t.degrees...)
	gb, err := t.algebra.TruncatedBasis(t.elimination(), gens, grading, bound)
	if err != nil {
		return fmt.Errorf("extend: %w", err)
	}
	t.gb = gb

	// Stage 3: pure-Y elements are the relations among the invariants.
	yOrder := poly.NewWeighted(t.elimW[t.n:])
	t.ht, t.relations = nil, nil
	for _, g := range t.gb {
		rel, ok := g.Slice(t.n, size)
		if !ok {
			continue
		}
		lt, _ := rel.Lead(yOrder)
		t.ht = append(t.ht, lt.Mon)
		t.relations = append(t.relations, rel)
	}

	return nil
}

// hilbert returns the Hilbert series of K[P_1..P_m] as seen through the
// current relation leading terms, expanded to bound.
func (t *tracker) hilbert(bound int) (*series.Series, error) {
	if t.m() == 0 {
		return series.One(bound)
	}

	return t.algebra.HilbertSeries(t.ht, t.degrees, bound)
}
