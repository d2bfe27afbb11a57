// SPDX-License-Identifier: MIT
// Package invariant: sentinel error set.
// Precondition violations are detected before any algebra runs; the two
// algorithmic sentinels (ErrSeriesMismatch, ErrStalled) report a Molien
// series that is inconsistent with the group it was supplied for.

package invariant

import "errors"

var (
	// ErrEmptyGroup is returned when no group is supplied.
	ErrEmptyGroup = errors.New("invariant: nil or empty group")

	// ErrDimensionMismatch signals weights or variable names whose length differs from the group dimension.
	ErrDimensionMismatch = errors.New("invariant: dimension mismatch")

	// ErrBadWeights signals a non-positive entry in the weight vector W.
	ErrBadWeights = errors.New("invariant: weights must be positive")

	// ErrBadBound signals a negative degree bound, or a bound beyond the Molien series precision.
	ErrBadBound = errors.New("invariant: invalid degree bound")

	// ErrMalformedSeries signals a Molien series that cannot be a Hilbert series:
	// nil, constant term ≠ 1, or a negative / non-integer coefficient.
	ErrMalformedSeries = errors.New("invariant: malformed Molien series")

	// ErrNotHomogeneous signals a generator that is constant or not homogeneous.
	ErrNotHomogeneous = errors.New("invariant: generator must be homogeneous of positive degree")

	// ErrSeriesMismatch signals that the invariants found so far generate more
	// than the Molien series allows at some degree ≤ d.
	ErrSeriesMismatch = errors.New("invariant: Molien series exceeded by generated subalgebra")

	// ErrStalled signals a missing degree at which no candidate is admitted:
	// the Molien series asks for invariants the group does not have.
	ErrStalled = errors.New("invariant: no new invariant at missing degree")
)
