// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrNoGroup is returned when neither elements nor generators are given.
	ErrNoGroup = errors.New("problem: group needs elements or generators")

	// ErrGroupAmbiguous is returned when both elements and generators are given.
	ErrGroupAmbiguous = errors.New("problem: group has both elements and generators")

	// ErrNoMolien is returned when the Molien series is missing.
	ErrNoMolien = errors.New("problem: molien series missing")

	// ErrMolienAmbiguous is returned when both the rational and the coefficient form are given.
	ErrMolienAmbiguous = errors.New("problem: molien has both a rational function and coefficients")

	// ErrBadRational is returned for a matrix entry that is not a rational number.
	ErrBadRational = errors.New("problem: not a rational number")

	// ErrBadPrecision is returned when the series precision is below the bound.
	ErrBadPrecision = errors.New("problem: molien precision below bound")
)
