// SPDX-License-Identifier: MIT

package invariant

import (
	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// State is a node of the Builder's state machine.
//
//	Init → FindDegree → Generate → Admit → Update → (FindDegree | Done | Truncated)
type State int

const (
	// Init: nothing found, HP = 1.
	Init State = iota
	// FindDegree: pick the lowest degree where the Molien series exceeds HP.
	FindDegree
	// Generate: enumerate, filter and average candidate monomials.
	Generate
	// Admit: independence filter plus normal-form admission test.
	Admit
	// Update: append generators, re-close the basis, recompute HP.
	Update
	// Done: HP equals the Molien series through its full precision.
	Done
	// Truncated: complete through the degree bound, but the Molien series
	// still differs beyond it. A valid partial result.
	Truncated
)

var stateNames = [...]string{"init", "find-degree", "generate", "admit", "update", "done", "truncated"}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool { return s == Done || s == Truncated }

// Input describes one run.
//
// Fields:
//   - Group   — the finite group acting on x_1..x_n (n = Group.Dim()).
//   - Molien  — the Molien series, expanded at least to Bound.
//   - Weights — the weight vector W of the term order on X; nil means all ones.
//   - Bound   — the maximal degree d to search.
type Input struct {
	Group   *group.Group
	Molien  *series.Series
	Weights []int
	Bound   int
}

// Step records one pass through Generate/Admit/Update at a missing degree.
type Step struct {
	Degree      int // missing degree k
	Missing     int // Molien − HP coefficient at k before the pass
	Candidates  int // monomials left after the filter
	Averaged    int // distinct nonzero Reynolds images
	Independent int // size of the independent subset
	Accepted    int // new generators
	BasisSize   int // Gröbner basis size after the update
	Relations   int // pure-Y basis elements after the update
}

// Result is the outcome of a run.
type Result struct {
	// Status is Done or Truncated.
	Status State

	// Generators are the invariants found, in order of discovery; y_i ↔ Generators[i].
	Generators []*poly.Poly

	// Degrees[i] is the degree of Generators[i].
	Degrees []int

	// Relations are the pure-Y elements of the final basis: polynomials in
	// y_1..y_m vanishing on the generators, exact through the bound.
	Relations []*poly.Poly

	// Hilbert is the Hilbert series of the generated subalgebra as tracked
	// by the relations, at the Molien precision.
	Hilbert *series.Series

	// Steps traces every degree pass.
	Steps []Step
}
