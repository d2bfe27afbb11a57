// Package invariant computes generators of the invariant ring K[X]^G of a
// finite matrix group G, degree by degree, guided by the Molien series.
//
// Overview:
//
//   - The Molien series M(t) = Σ dim K[X]^G_k · t^k tells, for every degree,
//     how many linearly independent invariants exist.
//   - The Builder keeps the subalgebra K[P_1..P_m] generated by the invariants
//     found so far, expressed as a polynomial ring K[Y] modulo relations, and
//     its Hilbert series HP(t).
//   - At the lowest degree k where M − HP is nonzero, candidate monomials are
//     averaged with the Reynolds operator, an independent subset is kept, and
//     each survivor is admitted when it is not already a polynomial in P.
//
// State machine:
//
//	Init → FindDegree → Generate → Admit → Update → (FindDegree | Done | Truncated)
//
//   - Done: HP equals M through the Molien precision; the generators are complete
//     as far as the series can tell.
//   - Truncated: every degree up to the bound is covered, but M − HP is nonzero
//     beyond it. The generators are complete through the bound.
//
// Relation tracking:
//
//   - Each generator P_i owns an auxiliary variable y_i (slot n+i, never reused).
//   - The ideal ⟨y_i − P_i⟩ is kept as a Gröbner basis under an elimination order
//     (X before Y), truncated at the degree bound with deg y_i = deg P_i.
//   - Its elements free of X are the relations among the P_i; their leading
//     monomials give HP through the Hilbert-series recursion.
//
// Options:
//
//   - WithLogger(*slog.Logger): debug record per degree, info record at the end.
//   - WithWorkers(n): Reynolds averaging on an errgroup bounded to n goroutines.
//   - WithoutCandidateFilter(): average every monomial of the missing degree.
//   - WithVariableNames(names): names used when logging generators.
//   - WithAlgebra(a): replace the groebner/series backend.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGroup, ErrDimensionMismatch, ErrBadWeights, ErrBadBound,
//     ErrMalformedSeries: rejected by NewBuilder before any algebra runs.
//   - ErrSeriesMismatch: the found subalgebra exceeds M at some degree.
//   - ErrStalled: a missing degree admitted nothing.
//
// Both algorithmic errors mean the Molien series does not belong to the
// group; Run returns them together with the partial Result.
//
// Example:
//
//	flip, _ := matrix.FromInts([][]int64{{-1, 0}, {0, -1}})
//	g, _ := group.Cyclic(flip)
//	m, _ := series.Rational([]int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)
//	res, err := invariant.Build(invariant.Input{Group: g, Molien: m, Bound: 4})
//	// res.Generators: x1^2, x1*x2, x2^2
package invariant
