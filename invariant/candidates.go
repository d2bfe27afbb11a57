// SPDX-License-Identifier: MIT

package invariant

import "github.com/katalvlaran/invring/poly"

// WeakCompositions returns every e ∈ ℕ^n with Σ e_i = k, in lexicographically
// descending order. There are C(k+n−1, n−1) of them; for n = 0 the only
// composition of 0 is the empty one and k > 0 has none.
func WeakCompositions(k, n int) [][]int {
	return WeightedCompositions(k, unitWeights(n))
}

// WeightedCompositions returns every e ∈ ℕ^len(w) with Σ w_i·e_i = k, in
// lexicographically descending order. Weights must be positive.
func WeightedCompositions(k int, w []int) [][]int {
	var (
		res [][]int
		cur = make([]int, len(w))
		rec func(i, rest int)
	)
	rec = func(i, rest int) {
		if i == len(w) {
			if rest == 0 {
				res = append(res, append([]int(nil), cur...))
			}
			return
		}
		if i == len(w)-1 {
			// the last exponent is forced
			if rest%w[i] == 0 {
				cur[i] = rest / w[i]
				res = append(res, append([]int(nil), cur...))
				cur[i] = 0
			}
			return
		}
		for e := rest / w[i]; e >= 0; e-- {
			cur[i] = e
			rec(i+1, rest-e*w[i])
		}
		cur[i] = 0
	}
	if k >= 0 {
		rec(0, k)
	}

	return res
}

// Monomials returns the degree-k monomials in n variables, lex-descending.
func Monomials(k, n int) []poly.Monomial {
	comps := WeakCompositions(k, n)
	out := make([]poly.Monomial, len(comps))
	for i, c := range comps {
		out[i] = poly.Monomial(c)
	}

	return out
}

// Candidates returns the degree-k monomials in n variables that are not
// explained by the known invariants. A monomial is explained when it is the
// leading monomial of a product Π P_i^{α_i} of weighted degree k; leading
// monomials are multiplicative, so that product's leading monomial is
// Π LM(P_i)^{α_i}. leads[i] = LM(P_i), degrees[i] = deg P_i.
//
// With no invariants nothing is explained and every monomial is returned.
func Candidates(k, n int, leads []poly.Monomial, degrees []int) []poly.Monomial {
	all := Monomials(k, n)
	if len(leads) == 0 {
		return all
	}

	explained := make(map[string]struct{})
	for _, alpha := range WeightedCompositions(k, degrees) {
		img := poly.One(n)
		for i, a := range alpha {
			if a > 0 {
				img = img.Mul(leads[i].Pow(a))
			}
		}
		explained[img.Key()] = struct{}{}
	}

	out := make([]poly.Monomial, 0, len(all))
	for _, m := range all {
		if _, ok := explained[m.Key()]; !ok {
			out = append(out, m)
		}
	}

	return out
}

func unitWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}

	return w
}
