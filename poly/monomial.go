// SPDX-License-Identifier: MIT

package poly

import "strings"

// Monomial is an exponent vector x_1^e_1 ··· x_n^e_n.
// Its length is the number of ring variables; the constant monomial is all zeros.
type Monomial []int

// One returns the constant monomial of a ring with n variables.
func One(n int) Monomial {
	return make(Monomial, n)
}

// Clone returns an independent copy of m.
func (m Monomial) Clone() Monomial {
	out := make(Monomial, len(m))
	copy(out, m)

	return out
}

// Degree returns the total degree Σ e_i.
// Complexity: O(n).
func (m Monomial) Degree() int {
	var d int
	for _, e := range m {
		d += e
	}

	return d
}

// WeightedDegree returns Σ w_i·e_i. Missing weights count as zero.
// Complexity: O(n).
func (m Monomial) WeightedDegree(w []int) int {
	var d int
	for i, e := range m {
		if i < len(w) {
			d += w[i] * e
		}
	}

	return d
}

// IsOne reports whether m is the constant monomial.
func (m Monomial) IsOne() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have identical exponents.
func (m Monomial) Equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}

	return true
}

// Mul returns m·o. Both must live in the same ring.
func (m Monomial) Mul(o Monomial) Monomial {
	mustSameLen(len(m), len(o))
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] + o[i]
	}

	return out
}

// Divides reports whether m | o.
func (m Monomial) Divides(o Monomial) bool {
	mustSameLen(len(m), len(o))
	for i := range m {
		if m[i] > o[i] {
			return false
		}
	}

	return true
}

// Div returns m / o. The caller guarantees o | m.
func (m Monomial) Div(o Monomial) Monomial {
	mustSameLen(len(m), len(o))
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] - o[i]
		if out[i] < 0 {
			panic("poly: Monomial.Div: divisor does not divide")
		}
	}

	return out
}

// LCM returns the least common multiple of m and o.
func (m Monomial) LCM(o Monomial) Monomial {
	mustSameLen(len(m), len(o))
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = max(m[i], o[i])
	}

	return out
}

// GCD returns the greatest common divisor of m and o.
func (m Monomial) GCD(o Monomial) Monomial {
	mustSameLen(len(m), len(o))
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = min(m[i], o[i])
	}

	return out
}

// Coprime reports whether m and o share no variable.
func (m Monomial) Coprime(o Monomial) bool {
	mustSameLen(len(m), len(o))
	for i := range m {
		if m[i] > 0 && o[i] > 0 {
			return false
		}
	}

	return true
}

// Pow returns m^k.
func (m Monomial) Pow(k int) Monomial {
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] * k
	}

	return out
}

// Format renders m with the given variable names, e.g. "x^2*y".
// The constant monomial renders as "1".
func (m Monomial) Format(names []string) string {
	var b strings.Builder
	for i, e := range m {
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(varName(names, i))
		if e > 1 {
			b.WriteByte('^')
			b.WriteString(itoa(e))
		}
	}
	if b.Len() == 0 {
		return "1"
	}

	return b.String()
}

// String renders m with default names x1..xn.
func (m Monomial) String() string {
	return m.Format(nil)
}

// key encodes m as a map key, two bytes per exponent.
func (m Monomial) key() string {
	buf := make([]byte, 2*len(m))
	for i, e := range m {
		buf[2*i] = byte(e >> 8)
		buf[2*i+1] = byte(e)
	}

	return string(buf)
}

// Key exposes the canonical map key of m for callers building monomial sets.
func (m Monomial) Key() string {
	return m.key()
}

func mustSameLen(a, b int) {
	if a != b {
		panic("poly: monomials from different rings")
	}
}
