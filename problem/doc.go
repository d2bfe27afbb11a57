// Package problem loads invariant-ring problems from YAML files.
//
// A problem names the variables, the group (as full element list or as
// generators closed under multiplication), the Molien series (as a rational
// function or as explicit coefficients), the term-order weights and the
// degree bound. Rational entries are written as YAML scalars: 1, -1, "1/2".
//
//	name: quarter-turn
//	variables: [x, y]
//	bound: 8
//	group:
//	  generators:
//	    - [[0, -1], [1, 0]]
//	molien:
//	  numerator: [1, 0, 0, 0, 1]
//	  denominator: [1, 0, -1, 0, -1, 0, 1]
//
// Parse validates the document and returns an invariant.Input ready to run.
package problem
