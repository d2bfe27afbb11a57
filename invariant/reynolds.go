// SPDX-License-Identifier: MIT

package invariant

import (
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/poly"
)

// Reynolds projects p onto the invariant subspace:
//
//	R(p) = 1/|G| · Σ_{g ∈ G} p(g·x)
//
// Each image is a simultaneous substitution of all variables. R is linear,
// idempotent, and fixes every invariant; R(0) = 0.
// Complexity: |G| substitutions of p.
func Reynolds(g *group.Group, p *poly.Poly) *poly.Poly {
	sum := poly.New(g.Dim())
	for k := 0; k < g.Order(); k++ {
		sum = sum.Add(g.Act(k, p))
	}

	return sum.Scale(big.NewRat(1, int64(g.Order())))
}

// averageAll applies Reynolds to every monomial on up to workers goroutines.
// out[i] always corresponds to mons[i].
func averageAll(g *group.Group, mons []poly.Monomial, workers int) []*poly.Poly {
	out := make([]*poly.Poly, len(mons))
	one := big.NewRat(1, 1)
	if workers <= 1 {
		for i, m := range mons {
			out[i] = Reynolds(g, poly.MonomialPoly(one, m))
		}

		return out
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, m := range mons {
		i, m := i, m
		eg.Go(func() error {
			out[i] = Reynolds(g, poly.MonomialPoly(big.NewRat(1, 1), m))
			return nil
		})
	}
	_ = eg.Wait() // workers never fail

	return out
}

// dedupe drops zero polynomials and exact duplicates, keeping first occurrences.
func dedupe(ps []*poly.Poly) []*poly.Poly {
	seen := make(map[string]struct{}, len(ps))
	out := make([]*poly.Poly, 0, len(ps))
	for _, p := range ps {
		if p.IsZero() {
			continue
		}
		k := p.String()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	return out
}
