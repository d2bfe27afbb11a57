// SPDX-License-Identifier: MIT

package invariant

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// BuilderState is the complete mutable state of a run. It is owned by a
// single Builder and handed from transition to transition; every slice in
// it only ever grows.
type BuilderState struct {
	state  State
	degree int // current missing degree k

	tracker *tracker
	hp      *series.Series // tentative Hilbert series
	diff    *series.Series // Molien − HP

	candidates  []poly.Monomial // Generate: surviving monomials
	averaged    []*poly.Poly    // Generate: distinct nonzero Reynolds images
	independent []*poly.Poly    // Admit: independent subset
	accepted    []*poly.Poly    // Admit: new generators

	steps []Step
}

// Builder drives the degree-incremental search for invariant ring generators.
type Builder struct {
	in  Input
	cfg config
	log *slog.Logger
	st  BuilderState
}

// NewBuilder validates in and prepares a Builder in state Init.
//
// Errors: ErrEmptyGroup, ErrDimensionMismatch, ErrBadWeights, ErrBadBound,
// ErrMalformedSeries.
func NewBuilder(in Input, opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateInput(&in, cfg); err != nil {
		return nil, fmt.Errorf("NewBuilder: %w", err)
	}

	b := &Builder{in: in, cfg: cfg, log: cfg.logger}
	b.st.state = Init

	return b, nil
}

// Build runs a Builder to completion.
func Build(in Input, opts ...Option) (*Result, error) {
	b, err := NewBuilder(in, opts...)
	if err != nil {
		return nil, err
	}

	return b.Run()
}

func validateInput(in *Input, cfg config) error {
	// Stage 1: group
	if in.Group == nil || in.Group.Order() == 0 {
		return ErrEmptyGroup
	}
	n := in.Group.Dim()

	// Stage 2: weights
	if in.Weights == nil {
		in.Weights = unitWeights(n)
	}
	if len(in.Weights) != n {
		return fmt.Errorf("%d weights for %d variables: %w", len(in.Weights), n, ErrDimensionMismatch)
	}
	for _, w := range in.Weights {
		if w <= 0 {
			return fmt.Errorf("weight %d: %w", w, ErrBadWeights)
		}
	}
	in.Weights = append([]int(nil), in.Weights...)
	if cfg.names != nil && len(cfg.names) != n {
		return fmt.Errorf("%d variable names for %d variables: %w", len(cfg.names), n, ErrDimensionMismatch)
	}

	// Stage 3: Molien series and bound
	if in.Molien == nil {
		return ErrMalformedSeries
	}
	if in.Bound < 0 || in.Bound > in.Molien.Bound() {
		return fmt.Errorf("bound %d with Molien precision %d: %w", in.Bound, in.Molien.Bound(), ErrBadBound)
	}
	if in.Molien.Coeff(0).Cmp(big.NewRat(1, 1)) != 0 {
		return fmt.Errorf("constant term %s: %w", in.Molien.Coeff(0).RatString(), ErrMalformedSeries)
	}
	for k, c := range in.Molien.Coeffs() {
		if !c.IsInt() || c.Sign() < 0 {
			return fmt.Errorf("coefficient of t^%d is %s: %w", k, c.RatString(), ErrMalformedSeries)
		}
	}

	return nil
}

// State returns the current state.
func (b *Builder) State() State { return b.st.state }

// Degree returns the missing degree being processed (valid from Generate to Update).
func (b *Builder) Degree() int { return b.st.degree }

// Generators returns the invariants accepted so far.
func (b *Builder) Generators() []*poly.Poly {
	if b.st.tracker == nil {
		return nil
	}

	return append([]*poly.Poly(nil), b.st.tracker.invs...)
}

// NumAuxiliary returns the number of Y variables, which always equals len(Generators()).
func (b *Builder) NumAuxiliary() int {
	if b.st.tracker == nil {
		return 0
	}

	return len(b.st.tracker.elimW) - b.st.tracker.n
}

// Run steps the machine until a terminal state and returns the result.
// On ErrStalled or ErrSeriesMismatch the partial result is returned alongside the error.
func (b *Builder) Run() (*Result, error) {
	for !b.st.state.Terminal() {
		if err := b.Step(); err != nil {
			return b.result(), err
		}
	}
	res := b.result()
	b.log.Info("invariant: search finished",
		"status", res.Status.String(),
		"generators", len(res.Generators),
		"relations", len(res.Relations),
		"bound", b.in.Bound)

	return res, nil
}

// Step performs one state transition. Stepping a terminal Builder is a no-op.
func (b *Builder) Step() error {
	switch b.st.state {
	case Init:
		return b.init()
	case FindDegree:
		return b.findDegree()
	case Generate:
		return b.generate()
	case Admit:
		return b.admit()
	case Update:
		return b.update()
	default:
		return nil
	}
}

// init: invs = [], GB = [], HT = [], HP = 1.
func (b *Builder) init() error {
	b.st.tracker = newTracker(b.in.Weights, b.cfg.algebra)
	hp, err := b.st.tracker.hilbert(b.in.Molien.Bound())
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	b.st.hp = hp
	b.st.diff = b.in.Molien.Sub(hp)
	b.st.state = FindDegree

	return nil
}

// findDegree picks the lowest degree ≤ d where diff is nonzero.
func (b *Builder) findDegree() error {
	for _, k := range b.st.diff.Support() {
		if k > b.in.Bound {
			break
		}
		if b.st.diff.Coeff(k).Sign() < 0 {
			return fmt.Errorf("degree %d: Molien %s, generated %s: %w",
				k, b.in.Molien.Coeff(k).RatString(), b.st.hp.Coeff(k).RatString(), ErrSeriesMismatch)
		}
		b.st.degree = k
		b.st.state = Generate

		return nil
	}

	if b.st.diff.IsZero() {
		b.st.state = Done
	} else {
		b.st.state = Truncated
	}

	return nil
}

// generate enumerates candidate monomials and averages them.
func (b *Builder) generate() error {
	var (
		k = b.st.degree
		n = b.st.tracker.n
		t = b.st.tracker
	)
	if b.cfg.filter {
		b.st.candidates = Candidates(k, n, t.leads, t.degrees)
	} else {
		b.st.candidates = Monomials(k, n)
	}
	b.st.averaged = dedupe(averageAll(b.in.Group, b.st.candidates, b.cfg.workers))
	b.st.state = Admit

	return nil
}

// admit keeps an independent subset and runs the normal-form test on it.
func (b *Builder) admit() error {
	basis := Monomials(b.st.degree, b.st.tracker.n)
	ind, err := IndependentSubset(b.st.averaged, basis)
	if err != nil {
		return fmt.Errorf("admit: %w", err)
	}
	b.st.independent = ind
	b.st.accepted = b.st.tracker.admit(ind)
	b.st.state = Update

	return nil
}

// update appends the accepted generators and refreshes GB, HT, HP and diff.
func (b *Builder) update() error {
	k := b.st.degree
	missing := b.st.diff.Coeff(k)
	step := Step{
		Degree:      k,
		Missing:     int(missing.Num().Int64()),
		Candidates:  len(b.st.candidates),
		Averaged:    len(b.st.averaged),
		Independent: len(b.st.independent),
		Accepted:    len(b.st.accepted),
	}
	if len(b.st.accepted) == 0 {
		b.st.steps = append(b.st.steps, step)
		return fmt.Errorf("degree %d: %s missing: %w", k, missing.RatString(), ErrStalled)
	}

	t := b.st.tracker
	if err := t.extend(b.st.accepted, k, b.in.Bound); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	hp, err := t.hilbert(b.in.Molien.Bound())
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	b.st.hp = hp
	b.st.diff = b.in.Molien.Sub(hp)

	step.BasisSize = len(t.gb)
	step.Relations = len(t.relations)
	b.st.steps = append(b.st.steps, step)
	b.logStep(step)

	b.st.candidates, b.st.averaged, b.st.independent, b.st.accepted = nil, nil, nil, nil
	b.st.state = FindDegree

	return nil
}

func (b *Builder) logStep(s Step) {
	if !b.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	gens := b.st.tracker.invs[len(b.st.tracker.invs)-s.Accepted:]
	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Format(b.cfg.names)
	}
	b.log.Debug("invariant: degree processed",
		"degree", s.Degree,
		"missing", s.Missing,
		"candidates", s.Candidates,
		"averaged", s.Averaged,
		"independent", s.Independent,
		"accepted", s.Accepted,
		"basis", s.BasisSize,
		"relations", s.Relations,
		"new", names)
}

// result snapshots the current state into a Result.
func (b *Builder) result() *Result {
	res := &Result{Status: b.st.state, Hilbert: b.st.hp, Steps: append([]Step(nil), b.st.steps...)}
	if t := b.st.tracker; t != nil {
		res.Generators = append([]*poly.Poly(nil), t.invs...)
		res.Degrees = append([]int(nil), t.degrees...)
		res.Relations = append([]*poly.Poly(nil), t.relations...)
	}

	return res
}
