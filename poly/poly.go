// SPDX-License-Identifier: MIT

// Package poly implements exact sparse multivariate polynomials over the
// rationals, together with the monomial orders used by the Gröbner and
// invariant layers.
//
// A Poly is a map from exponent vector to *big.Rat coefficient. All public
// operations return fresh values; receivers and arguments are never mutated,
// so polynomials may be shared freely between goroutines once built.
//
// Every Poly belongs to a ring with a fixed number of variables. Mixing rings
// in one operation is a programmer error and panics; use Extend or Slice to
// move a polynomial between rings explicitly.
package poly

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Term is a coefficient together with its monomial.
type Term struct {
	Coeff *big.Rat
	Mon   Monomial
}

// Poly is a sparse polynomial in a fixed number of variables.
type Poly struct {
	n     int             // number of ring variables
	terms map[string]Term // exponent key -> term; zero coefficients are never stored
}

// New returns the zero polynomial of a ring with n variables.
func New(n int) *Poly {
	return &Poly{n: n, terms: make(map[string]Term)}
}

// Constant returns the constant polynomial c.
func Constant(n int, c *big.Rat) *Poly {
	p := New(n)
	p.addTerm(c, One(n))

	return p
}

// ConstantInt returns the constant polynomial c.
func ConstantInt(n int, c int64) *Poly {
	return Constant(n, big.NewRat(c, 1))
}

// Var returns the polynomial x_i (0-based) of a ring with n variables.
func Var(n, i int) *Poly {
	if i < 0 || i >= n {
		panic("poly: Var index out of range")
	}
	m := One(n)
	m[i] = 1

	return MonomialPoly(big.NewRat(1, 1), m)
}

// MonomialPoly returns c·m.
func MonomialPoly(c *big.Rat, m Monomial) *Poly {
	p := New(len(m))
	p.addTerm(c, m)

	return p
}

// FromTerms sums the given terms into a polynomial of a ring with n variables.
func FromTerms(n int, terms ...Term) *Poly {
	p := New(n)
	for _, t := range terms {
		mustSameLen(n, len(t.Mon))
		p.addTerm(t.Coeff, t.Mon)
	}

	return p
}

// addTerm accumulates c·m into p in place. Only used while p is being built.
func (p *Poly) addTerm(c *big.Rat, m Monomial) {
	if c.Sign() == 0 {
		return
	}
	k := m.key()
	if t, ok := p.terms[k]; ok {
		sum := new(big.Rat).Add(t.Coeff, c)
		if sum.Sign() == 0 {
			delete(p.terms, k)

			return
		}
		p.terms[k] = Term{Coeff: sum, Mon: t.Mon}

		return
	}
	p.terms[k] = Term{Coeff: new(big.Rat).Set(c), Mon: m.Clone()}
}

// NumVars returns the number of ring variables.
func (p *Poly) NumVars() int { return p.n }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of nonzero terms.
func (p *Poly) Len() int { return len(p.terms) }

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	out := New(p.n)
	for k, t := range p.terms {
		out.terms[k] = Term{Coeff: new(big.Rat).Set(t.Coeff), Mon: t.Mon.Clone()}
	}

	return out
}

// Coeff returns the coefficient of m in p (a fresh value, zero if absent).
func (p *Poly) Coeff(m Monomial) *big.Rat {
	mustSameLen(p.n, len(m))
	if t, ok := p.terms[m.key()]; ok {
		return new(big.Rat).Set(t.Coeff)
	}

	return new(big.Rat)
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	mustSameLen(p.n, q.n)
	out := p.Clone()
	for _, t := range q.terms {
		out.addTerm(t.Coeff, t.Mon)
	}

	return out
}

// Sub returns p − q.
func (p *Poly) Sub(q *Poly) *Poly {
	mustSameLen(p.n, q.n)
	out := p.Clone()
	neg := new(big.Rat)
	for _, t := range q.terms {
		out.addTerm(neg.Neg(t.Coeff), t.Mon)
	}

	return out
}

// Neg returns −p.
func (p *Poly) Neg() *Poly {
	return p.Scale(big.NewRat(-1, 1))
}

// Scale returns c·p.
func (p *Poly) Scale(c *big.Rat) *Poly {
	out := New(p.n)
	if c.Sign() == 0 {
		return out
	}
	for k, t := range p.terms {
		out.terms[k] = Term{Coeff: new(big.Rat).Mul(t.Coeff, c), Mon: t.Mon.Clone()}
	}

	return out
}

// MulTerm returns c·m·p.
func (p *Poly) MulTerm(c *big.Rat, m Monomial) *Poly {
	mustSameLen(p.n, len(m))
	out := New(p.n)
	if c.Sign() == 0 {
		return out
	}
	for _, t := range p.terms {
		mon := t.Mon.Mul(m)
		out.terms[mon.key()] = Term{Coeff: new(big.Rat).Mul(t.Coeff, c), Mon: mon}
	}

	return out
}

// Mul returns p·q.
// Complexity: O(|p|·|q|) coefficient multiplications.
func (p *Poly) Mul(q *Poly) *Poly {
	mustSameLen(p.n, q.n)
	out := New(p.n)
	prod := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			out.addTerm(prod.Mul(a.Coeff, b.Coeff), a.Mon.Mul(b.Mon))
		}
	}

	return out
}

// Pow returns p^k for k ≥ 0 by repeated squaring.
func (p *Poly) Pow(k int) *Poly {
	if k < 0 {
		panic("poly: negative exponent")
	}
	result := ConstantInt(p.n, 1)
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// Equal reports exact equality of p and q.
func (p *Poly) Equal(q *Poly) bool {
	if p.n != q.n || len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.Coeff.Cmp(u.Coeff) != 0 {
			return false
		}
	}

	return true
}

// Degree returns the maximal total degree of p, or -1 for p == 0.
func (p *Poly) Degree() int {
	d := -1
	for _, t := range p.terms {
		d = max(d, t.Mon.Degree())
	}

	return d
}

// IsHomogeneous reports whether every term of p has the same weighted degree
// under w. A nil w means unit weights.
func (p *Poly) IsHomogeneous(w []int) bool {
	d := -1
	for _, t := range p.terms {
		var td int
		if w == nil {
			td = t.Mon.Degree()
		} else {
			td = t.Mon.WeightedDegree(w)
		}
		if d >= 0 && td != d {
			return false
		}
		d = td
	}

	return true
}

// Terms returns the terms of p sorted from highest to lowest under o.
// A nil order sorts by graded lex. Coefficients are copies.
func (p *Poly) Terms(o Order) []Term {
	if o == nil {
		o = Graded(p.n)
	}
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, Term{Coeff: new(big.Rat).Set(t.Coeff), Mon: t.Mon.Clone()})
	}
	sort.Slice(out, func(i, j int) bool {
		return o.Compare(out[i].Mon, out[j].Mon) > 0
	})

	return out
}

// Lead returns the leading term of p under o; ok is false for p == 0.
// Complexity: O(|p|) comparisons.
func (p *Poly) Lead(o Order) (Term, bool) {
	var (
		best  Term
		found bool
	)
	for _, t := range p.terms {
		if !found || o.Compare(t.Mon, best.Mon) > 0 {
			best, found = t, true
		}
	}
	if !found {
		return Term{}, false
	}

	return Term{Coeff: new(big.Rat).Set(best.Coeff), Mon: best.Mon.Clone()}, true
}

// Monic divides p by its leading coefficient under o. Zero stays zero.
func (p *Poly) Monic(o Order) *Poly {
	lt, ok := p.Lead(o)
	if !ok {
		return New(p.n)
	}

	return p.Scale(new(big.Rat).Inv(lt.Coeff))
}

// Subst substitutes images[i] for x_i simultaneously and returns the result
// in a ring with target variables. Every image must live in that ring.
// Complexity: O(|p| · cost of the image products); powers are cached per variable.
func (p *Poly) Subst(target int, images []*Poly) *Poly {
	if len(images) != p.n {
		panic("poly: Subst needs one image per variable")
	}
	for _, img := range images {
		mustSameLen(target, img.n)
	}
	cache := make([]map[int]*Poly, p.n)
	power := func(i, e int) *Poly {
		if cache[i] == nil {
			cache[i] = make(map[int]*Poly)
		}
		if q, ok := cache[i][e]; ok {
			return q
		}
		q := images[i].Pow(e)
		cache[i][e] = q

		return q
	}

	out := New(target)
	for _, t := range p.terms {
		prod := Constant(target, t.Coeff)
		for i, e := range t.Mon {
			if e == 0 {
				continue
			}
			prod = prod.Mul(power(i, e))
			if prod.IsZero() {
				break
			}
		}
		for _, u := range prod.terms {
			out.addTerm(u.Coeff, u.Mon)
		}
	}

	return out
}

// Extend embeds p into a ring with n ≥ NumVars() variables; the new
// variables are appended after the existing ones.
func (p *Poly) Extend(n int) *Poly {
	if n < p.n {
		panic("poly: Extend cannot shrink a ring")
	}
	out := New(n)
	for _, t := range p.terms {
		m := One(n)
		copy(m, t.Mon)
		out.terms[m.key()] = Term{Coeff: new(big.Rat).Set(t.Coeff), Mon: m}
	}

	return out
}

// UsesAny reports whether some term of p has a positive exponent on a
// variable with index in [lo, hi).
func (p *Poly) UsesAny(lo, hi int) bool {
	for _, t := range p.terms {
		for i := lo; i < hi && i < p.n; i++ {
			if t.Mon[i] > 0 {
				return true
			}
		}
	}

	return false
}

// Slice restricts p to the variables [lo, hi). ok is false when p uses a
// variable outside that range.
func (p *Poly) Slice(lo, hi int) (*Poly, bool) {
	if p.UsesAny(0, lo) || p.UsesAny(hi, p.n) {
		return nil, false
	}
	out := New(hi - lo)
	for _, t := range p.terms {
		m := t.Mon[lo:hi].Clone()
		out.terms[m.key()] = Term{Coeff: new(big.Rat).Set(t.Coeff), Mon: m}
	}

	return out, true
}

// Format renders p with the given variable names, highest graded term first.
func (p *Poly) Format(names []string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	abs := new(big.Rat)
	for i, t := range p.Terms(nil) {
		neg := t.Coeff.Sign() < 0
		abs.Abs(t.Coeff)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if t.Mon.IsOne() {
			b.WriteString(abs.RatString())
			continue
		}
		if !abs.IsInt() || abs.Num().Cmp(big.NewInt(1)) != 0 {
			b.WriteString(abs.RatString())
			b.WriteByte('*')
		}
		b.WriteString(t.Mon.Format(names))
	}

	return b.String()
}

// String renders p with default names x1..xn.
func (p *Poly) String() string {
	return p.Format(nil)
}

func varName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}

	return "x" + strconv.Itoa(i+1)
}

func itoa(i int) string { return strconv.Itoa(i) }
