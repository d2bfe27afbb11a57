// SPDX-License-Identifier: MIT

// Package series implements truncated formal power series in one marker
// variable t with exact rational coefficients, and the Hilbert-series
// primitive that turns a set of leading monomials into such a series.
//
// A Series carries a precision bound B and stores the coefficients of
// t^0..t^B; everything of higher degree is unknown and ignored. Binary
// operations work at the smaller of the two precisions.
package series

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

var (
	// ErrNegativeBound is returned when a precision bound is negative.
	ErrNegativeBound = errors.New("series: negative precision bound")

	// ErrNotInvertible is returned when dividing by a series with zero constant term.
	ErrNotInvertible = errors.New("series: divisor has zero constant term")

	// ErrBadWeight is returned when a Hilbert weight is not positive.
	ErrBadWeight = errors.New("series: weights must be positive")

	// ErrDimensionMismatch is returned when leading terms and weights disagree in length.
	ErrDimensionMismatch = errors.New("series: leading term and weight lengths differ")
)

// Series is a power series truncated after t^Bound.
type Series struct {
	bound int
	c     []*big.Rat // len == bound+1
}

// New returns the zero series with precision bound.
func New(bound int) (*Series, error) {
	if bound < 0 {
		return nil, fmt.Errorf("New(%d): %w", bound, ErrNegativeBound)
	}

	return zero(bound), nil
}

func zero(bound int) *Series {
	c := make([]*big.Rat, bound+1)
	for i := range c {
		c[i] = new(big.Rat)
	}

	return &Series{bound: bound, c: c}
}

// One returns the constant series 1.
func One(bound int) (*Series, error) {
	s, err := New(bound)
	if err != nil {
		return nil, err
	}
	s.c[0].SetInt64(1)

	return s, nil
}

// FromInts builds a series from integer coefficients of t^0, t^1, ...
// Coefficients beyond bound are dropped; missing ones are zero.
func FromInts(bound int, coeffs ...int64) (*Series, error) {
	s, err := New(bound)
	if err != nil {
		return nil, err
	}
	for i, v := range coeffs {
		if i > bound {
			break
		}
		s.c[i].SetInt64(v)
	}

	return s, nil
}

// FromRats builds a series from rational coefficients of t^0, t^1, ...
func FromRats(bound int, coeffs []*big.Rat) (*Series, error) {
	s, err := New(bound)
	if err != nil {
		return nil, err
	}
	for i, v := range coeffs {
		if i > bound {
			break
		}
		if v != nil {
			s.c[i].Set(v)
		}
	}

	return s, nil
}

// Rational expands num(t)/den(t) to the given bound. num and den list the
// integer coefficients of t^0, t^1, ...; den[0] must be nonzero.
func Rational(num, den []int64, bound int) (*Series, error) {
	n, err := FromInts(bound, num...)
	if err != nil {
		return nil, fmt.Errorf("Rational: %w", err)
	}
	d, err := FromInts(bound, den...)
	if err != nil {
		return nil, fmt.Errorf("Rational: %w", err)
	}

	return n.Div(d)
}

// Bound returns the precision bound.
func (s *Series) Bound() int { return s.bound }

// Coeff returns a copy of the coefficient of t^k; zero outside [0, Bound].
func (s *Series) Coeff(k int) *big.Rat {
	if k < 0 || k > s.bound {
		return new(big.Rat)
	}

	return new(big.Rat).Set(s.c[k])
}

// Coeffs returns copies of all coefficients t^0..t^Bound.
func (s *Series) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(s.c))
	for i, v := range s.c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Truncate returns s reduced to precision b (b ≤ Bound keeps a prefix,
// larger values are clamped to Bound).
func (s *Series) Truncate(b int) *Series {
	if b > s.bound {
		b = s.bound
	}
	if b < 0 {
		b = 0
	}
	out := zero(b)
	for i := 0; i <= b; i++ {
		out.c[i].Set(s.c[i])
	}

	return out
}

// Add returns s + o at the common precision.
func (s *Series) Add(o *Series) *Series {
	b := min(s.bound, o.bound)
	out := zero(b)
	for i := 0; i <= b; i++ {
		out.c[i].Add(s.c[i], o.c[i])
	}

	return out
}

// Sub returns s − o at the common precision.
func (s *Series) Sub(o *Series) *Series {
	b := min(s.bound, o.bound)
	out := zero(b)
	for i := 0; i <= b; i++ {
		out.c[i].Sub(s.c[i], o.c[i])
	}

	return out
}

// Mul returns s · o at the common precision.
// Complexity: O(B²).
func (s *Series) Mul(o *Series) *Series {
	b := min(s.bound, o.bound)
	out := zero(b)
	tmp := new(big.Rat)
	for i := 0; i <= b; i++ {
		if s.c[i].Sign() == 0 {
			continue
		}
		for j := 0; i+j <= b; j++ {
			tmp.Mul(s.c[i], o.c[j])
			out.c[i+j].Add(out.c[i+j], tmp)
		}
	}

	return out
}

// Div returns s / o at the common precision. o must have a nonzero constant term.
func (s *Series) Div(o *Series) (*Series, error) {
	if o.c[0].Sign() == 0 {
		return nil, fmt.Errorf("Div: %w", ErrNotInvertible)
	}
	b := min(s.bound, o.bound)
	out := zero(b)
	inv := new(big.Rat).Inv(o.c[0])
	acc, tmp := new(big.Rat), new(big.Rat)
	for k := 0; k <= b; k++ {
		// out[k] = (s[k] − Σ_{j=1..k} o[j]·out[k−j]) / o[0]
		acc.Set(s.c[k])
		for j := 1; j <= k; j++ {
			tmp.Mul(o.c[j], out.c[k-j])
			acc.Sub(acc, tmp)
		}
		out.c[k].Mul(acc, inv)
	}

	return out, nil
}

// ShiftScale returns c·t^d·s at the precision of s.
func (s *Series) ShiftScale(c *big.Rat, d int) *Series {
	out := zero(s.bound)
	for i := 0; i+d <= s.bound; i++ {
		out.c[i+d].Mul(s.c[i], c)
	}

	return out
}

// DivOneMinusTPow returns s / (1 − t^w) for w ≥ 1.
// Division by 1 − t^w is a strided prefix sum: out[k] = s[k] + out[k−w].
func (s *Series) DivOneMinusTPow(w int) (*Series, error) {
	if w <= 0 {
		return nil, fmt.Errorf("DivOneMinusTPow(%d): %w", w, ErrBadWeight)
	}
	out := s.Truncate(s.bound)
	for k := w; k <= s.bound; k++ {
		out.c[k].Add(out.c[k], out.c[k-w])
	}

	return out, nil
}

// IsZero reports whether every known coefficient is zero.
func (s *Series) IsZero() bool {
	for _, v := range s.c {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether s and o agree on every coefficient up to the common precision.
func (s *Series) Equal(o *Series) bool {
	return s.Sub(o).IsZero()
}

// Support returns the degrees with nonzero coefficient, lowest first.
func (s *Series) Support() []int {
	var degs []int
	for i, v := range s.c {
		if v.Sign() != 0 {
			degs = append(degs, i)
		}
	}

	return SortDegrees(degs)
}

// MinDegree returns the lowest degree with nonzero coefficient; ok is false for the zero series.
func (s *Series) MinDegree() (int, bool) {
	for i, v := range s.c {
		if v.Sign() != 0 {
			return i, true
		}
	}

	return 0, false
}

// IsIntegral reports whether every coefficient is an integer.
func (s *Series) IsIntegral() bool {
	for _, v := range s.c {
		if !v.IsInt() {
			return false
		}
	}

	return true
}

// String renders s as "1 + 3*t^2 + O(t^5)".
func (s *Series) String() string {
	var b strings.Builder
	for i, v := range s.c {
		if v.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(v)
		switch {
		case b.Len() == 0 && v.Sign() < 0:
			b.WriteString("-")
		case b.Len() > 0 && v.Sign() < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		switch {
		case i == 0:
			b.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			b.WriteString(tPow(i))
		default:
			b.WriteString(abs.RatString() + "*" + tPow(i))
		}
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" + O(" + tPow(s.bound+1) + ")")

	return b.String()
}

func tPow(k int) string {
	if k == 1 {
		return "t"
	}

	return fmt.Sprintf("t^%d", k)
}

// SortDegrees returns a copy of degs sorted ascending. The sort is stable so
// equal degrees keep their relative order.
func SortDegrees(degs []int) []int {
	out := make([]int, len(degs))
	copy(out, degs)
	sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
