// SPDX-License-Identifier: MIT

// Package groebner computes normal forms and (optionally degree-truncated)
// reduced Gröbner bases of polynomial ideals over the rationals.
//
// Truncation follows the homogeneous Buchberger strategy: with a positive
// grading and homogeneous generators, processing every S-pair whose lcm has
// grading degree ≤ D yields a set that behaves as a Gröbner basis for all
// ideal elements of degree ≤ D. That is exactly what degree-incremental
// callers need, at a fraction of the cost of a full basis.
package groebner

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/invring/poly"
)

var (
	// ErrNilOrder is returned when no monomial order is supplied.
	ErrNilOrder = errors.New("groebner: nil monomial order")

	// ErrBadGrading is returned when a truncation grading has the wrong length or a non-positive weight.
	ErrBadGrading = errors.New("groebner: grading must give every variable a positive weight")

	// ErrNotHomogeneous is returned when truncation is requested for a non-homogeneous generator.
	ErrNotHomogeneous = errors.New("groebner: truncation needs homogeneous generators")

	// ErrRingMismatch is returned when generators live in rings of different size.
	ErrRingMismatch = errors.New("groebner: generators from different rings")
)

// Option configures Basis.
type Option func(*config)

type config struct {
	grading []int // nil => no truncation
	bound   int
}

// WithDegreeBound truncates the computation: only S-pairs whose lcm has
// weighted degree ≤ bound under grading are processed.
func WithDegreeBound(grading []int, bound int) Option {
	return func(c *config) {
		c.grading = append([]int(nil), grading...)
		c.bound = bound
	}
}

// reducer caches a basis element with its leading term.
type reducer struct {
	g  *poly.Poly
	lt poly.Term
}

func leads(o poly.Order, basis []*poly.Poly) []reducer {
	rs := make([]reducer, 0, len(basis))
	for _, g := range basis {
		if lt, ok := g.Lead(o); ok {
			rs = append(rs, reducer{g: g, lt: lt})
		}
	}

	return rs
}

// NormalForm fully reduces f modulo basis under o: the result has no term
// divisible by the leading monomial of any basis element. Zero basis
// elements are ignored. The result is unique when basis is a Gröbner basis.
// Complexity: one leading-term scan plus one subtraction per reduction step.
func NormalForm(o poly.Order, basis []*poly.Poly, f *poly.Poly) *poly.Poly {
	return normalForm(o, leads(o, basis), f)
}

func normalForm(o poly.Order, rs []reducer, f *poly.Poly) *poly.Poly {
	var (
		p     = f
		rem   []poly.Term
		quo   = new(big.Rat)
		found bool
	)
	for !p.IsZero() {
		lt, _ := p.Lead(o)
		found = false
		for _, r := range rs {
			if !r.lt.Mon.Divides(lt.Mon) {
				continue
			}
			quo.Quo(lt.Coeff, r.lt.Coeff)
			p = p.Sub(r.g.MulTerm(quo, lt.Mon.Div(r.lt.Mon)))
			found = true
			break
		}
		if !found {
			// leading term is irreducible: move it to the remainder
			rem = append(rem, lt)
			p = p.Sub(poly.MonomialPoly(lt.Coeff, lt.Mon))
		}
	}

	return poly.FromTerms(f.NumVars(), rem...)
}

// Truncated computes a reduced Gröbner basis of ⟨gens⟩ under o that is exact
// through grading degree bound. gens must be homogeneous under grading.
func Truncated(o poly.Order, gens []*poly.Poly, grading []int, bound int) ([]*poly.Poly, error) {
	return Basis(o, gens, WithDegreeBound(grading, bound))
}

// pair is an S-pair candidate (i < j) with the grading degree of its lcm.
type pair struct {
	i, j int
	deg  int
}

// Basis computes the reduced Gröbner basis of ⟨gens⟩ under o with
// Buchberger's algorithm, lowest-degree pair first, using the product
// criterion to skip pairs with coprime leading monomials.
//
// Implementation:
//   - Stage 1: Validate order, ring sizes and (when truncating) the grading.
//   - Stage 2: Seed the basis with the monic nonzero generators and all pairs.
//   - Stage 3: Pop the lowest-degree pair, reduce its S-polynomial, extend on nonzero remainder.
//   - Stage 4: Interreduce: drop redundant leading monomials, reduce tails, sort by leading monomial.
func Basis(o poly.Order, gens []*poly.Poly, opts ...Option) ([]*poly.Poly, error) {
	// Stage 1: Validate
	if o == nil {
		return nil, fmt.Errorf("Basis: %w", ErrNilOrder)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(gens) == 0 {
		return nil, nil
	}
	n := gens[0].NumVars()
	for _, g := range gens {
		if g.NumVars() != n {
			return nil, fmt.Errorf("Basis: %w", ErrRingMismatch)
		}
	}
	truncate := cfg.grading != nil
	if truncate {
		if len(cfg.grading) != n {
			return nil, fmt.Errorf("Basis: grading has %d weights for %d variables: %w", len(cfg.grading), n, ErrBadGrading)
		}
		for _, w := range cfg.grading {
			if w <= 0 {
				return nil, fmt.Errorf("Basis: %w", ErrBadGrading)
			}
		}
		for _, g := range gens {
			if !g.IsHomogeneous(cfg.grading) {
				return nil, fmt.Errorf("Basis: %s: %w", g, ErrNotHomogeneous)
			}
		}
	}

	// Stage 2: Seed
	var (
		basis []*poly.Poly
		lts   []poly.Term
		pairs []pair
	)
	add := func(g *poly.Poly) {
		g = g.Monic(o)
		lt, _ := g.Lead(o)
		k := len(basis)
		basis = append(basis, g)
		lts = append(lts, lt)
		for i := 0; i < k; i++ {
			if lts[i].Mon.Coprime(lt.Mon) {
				continue // product criterion: S-poly reduces to zero
			}
			deg := lts[i].Mon.LCM(lt.Mon).WeightedDegree(cfg.grading)
			if !truncate {
				deg = lts[i].Mon.LCM(lt.Mon).Degree()
			} else if deg > cfg.bound {
				continue
			}
			pairs = append(pairs, pair{i: i, j: k, deg: deg})
		}
	}
	for _, g := range gens {
		if !g.IsZero() {
			add(g)
		}
	}

	// Stage 3: Buchberger loop
	for len(pairs) > 0 {
		sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].deg < pairs[b].deg })
		p := pairs[0]
		pairs = pairs[1:]

		s := sPoly(basis[p.i], lts[p.i], basis[p.j], lts[p.j])
		h := normalForm(o, reducersOf(basis, lts), s)
		if !h.IsZero() {
			add(h)
		}
	}

	// Stage 4: Interreduce
	return interreduce(o, basis, lts), nil
}

// IsBasis reports whether every S-polynomial of basis reduces to zero modulo basis.
func IsBasis(o poly.Order, basis []*poly.Poly) bool {
	rs := leads(o, basis)
	for i := range rs {
		for j := i + 1; j < len(rs); j++ {
			s := sPoly(rs[i].g, rs[i].lt, rs[j].g, rs[j].lt)
			if !normalForm(o, rs, s).IsZero() {
				return false
			}
		}
	}

	return true
}

// sPoly returns (L/lt_f)·f − (L/lt_g)·g with L = lcm of the leading monomials.
func sPoly(f *poly.Poly, ltf poly.Term, g *poly.Poly, ltg poly.Term) *poly.Poly {
	l := ltf.Mon.LCM(ltg.Mon)
	a := f.MulTerm(new(big.Rat).Inv(ltf.Coeff), l.Div(ltf.Mon))
	b := g.MulTerm(new(big.Rat).Inv(ltg.Coeff), l.Div(ltg.Mon))

	return a.Sub(b)
}

func reducersOf(basis []*poly.Poly, lts []poly.Term) []reducer {
	rs := make([]reducer, len(basis))
	for i := range basis {
		rs[i] = reducer{g: basis[i], lt: lts[i]}
	}

	return rs
}

// interreduce turns a Gröbner basis into the reduced one.
func interreduce(o poly.Order, basis []*poly.Poly, lts []poly.Term) []*poly.Poly {
	// drop elements whose leading monomial is divisible by another's
	keep := make([]int, 0, len(basis))
	for i := range basis {
		redundant := false
		for j := range basis {
			if i == j || !lts[j].Mon.Divides(lts[i].Mon) {
				continue
			}
			if lts[j].Mon.Equal(lts[i].Mon) && j > i {
				continue // equal leading monomials: first one wins
			}
			redundant = true
			break
		}
		if !redundant {
			keep = append(keep, i)
		}
	}

	out := make([]*poly.Poly, len(keep))
	for k, i := range keep {
		out[k] = basis[i]
	}
	for k := range out {
		others := make([]*poly.Poly, 0, len(out)-1)
		others = append(others, out[:k]...)
		others = append(others, out[k+1:]...)
		out[k] = NormalForm(o, others, out[k]).Monic(o)
	}

	sort.SliceStable(out, func(a, b int) bool {
		la, _ := out[a].Lead(o)
		lb, _ := out[b].Lead(o)

		return o.Compare(la.Mon, lb.Mon) < 0
	})

	return out
}
