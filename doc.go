// Package invring computes generators of the ring of polynomial invariants
// of a finite matrix group over the rationals.
//
// Given a group G ⊂ GL_n(ℚ) and its Molien series, the search walks the
// degrees upward. At each degree where the series promises more invariants
// than the ones found so far generate, it averages candidate monomials over G,
// keeps the independent images and admits those that are not already
// polynomials in the known generators. Relations among the generators are
// tracked with an elimination-order Gröbner basis, and the Hilbert series of
// the generated subalgebra is compared with the Molien series to decide when
// the search is complete.
//
// Subpackages:
//
//	poly/      — sparse polynomials over ℚ, monomials and term orders
//	matrix/    — dense rational matrices, products and row reduction
//	series/    — truncated power series and Hilbert series of monomial ideals
//	groebner/  — normal forms and degree-truncated Buchberger
//	group/     — finite matrix groups and their action on polynomials
//	invariant/ — Reynolds averaging, candidate selection and the Builder
//	problem/   — YAML problem files
//
// The invring command runs a problem file:
//
//	invring run examples/quarter-turn.yaml --output yaml
//
// Example problem files live in examples/.
package invring
