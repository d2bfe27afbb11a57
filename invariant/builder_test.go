// SPDX-License-Identifier: MIT
// Package invariant_test contains end-to-end tests of the Builder state machine.
package invariant_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/invariant"
	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

// checkResult asserts the properties every finished run must satisfy.
func checkResult(t *testing.T, g *group.Group, res *invariant.Result) {
	t.Helper()
	require.Len(t, res.Degrees, len(res.Generators))
	for i, p := range res.Generators {
		assert.True(t, invariant.IsInvariant(g, p), "%s is not invariant", p)
		assert.True(t, invariant.Reynolds(g, p).Equal(p), "R(%s) != %s", p, p)
		assert.Equal(t, res.Degrees[i], p.Degree())
		lt, ok := p.Lead(poly.Graded(g.Dim()))
		require.True(t, ok)
		assert.Equal(t, "1", lt.Coeff.RatString(), "%s is not monic", p)
	}
	for i := 1; i < len(res.Degrees); i++ {
		assert.LessOrEqual(t, res.Degrees[i-1], res.Degrees[i], "degrees must not decrease")
	}
}

func TestBuild_TrivialGroup(t *testing.T) {
	g, err := group.Trivial(2)
	require.NoError(t, err)
	molien := rational(t, []int64{1}, []int64{1, -2, 1}, 3)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 3})
	require.NoError(t, err)
	assert.Equal(t, invariant.Done, res.Status)
	assert.Equal(t, []string{"x1", "x2"}, strs(res.Generators))
	assert.Equal(t, []int{1, 1}, res.Degrees)
	assert.Empty(t, res.Relations)
	checkResult(t, g, res)
}

func TestBuild_SignFlip(t *testing.T) {
	g := signFlip(t)
	molien := rational(t, []int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 4})
	require.NoError(t, err)
	assert.Equal(t, invariant.Done, res.Status)
	assert.Equal(t, []string{"x1^2", "x1*x2", "x2^2"}, strs(res.Generators))
	assert.Equal(t, []int{2, 2, 2}, res.Degrees)
	require.Len(t, res.Relations, 1)
	assert.Equal(t, "y1*y3 - y2^2", res.Relations[0].Format([]string{"y1", "y2", "y3"}))
	assert.True(t, res.Hilbert.Equal(molien))
	checkResult(t, g, res)

	require.Len(t, res.Steps, 1)
	assert.Equal(t, invariant.Step{
		Degree: 2, Missing: 3, Candidates: 3, Averaged: 3, Independent: 3, Accepted: 3,
		BasisSize: res.Steps[0].BasisSize, Relations: 1,
	}, res.Steps[0])
}

func TestBuild_SignFlipTruncated(t *testing.T) {
	g := signFlip(t)
	molien := rational(t, []int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 2})
	require.NoError(t, err)
	assert.Equal(t, invariant.Truncated, res.Status)
	assert.Equal(t, []string{"x1^2", "x1*x2", "x2^2"}, strs(res.Generators))
	assert.Empty(t, res.Relations, "the degree-4 relation lies beyond the bound")
}

func TestBuild_Rotation(t *testing.T) {
	g := rotation(t)
	molien := rational(t, []int64{1, 0, 0, 0, 1}, []int64{1, 0, -1, 0, -1, 0, 1}, 8)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 8})
	require.NoError(t, err)
	assert.Equal(t, invariant.Done, res.Status)
	assert.Equal(t, []string{"x1^2 + x2^2", "x1^3*x2 - x1*x2^3", "x1^2*x2^2"}, strs(res.Generators))
	assert.Equal(t, []int{2, 4, 4}, res.Degrees)
	require.Len(t, res.Relations, 1)
	checkResult(t, g, res)

	// the relation vanishes on the generators
	rel := res.Relations[0]
	assert.True(t, rel.Subst(2, res.Generators).IsZero(), "relation %s", rel)

	sub, err := invariant.SubalgebraHilbert(res.Generators, 8)
	require.NoError(t, err)
	assert.True(t, sub.Equal(molien), "got %s", sub)
}

func TestBuild_Symmetric(t *testing.T) {
	g, err := group.Permutations(3)
	require.NoError(t, err)
	molien := rational(t, []int64{1}, []int64{1, -1, -1, 0, 1, 1, -1}, 3)

	for _, workers := range []int{1, 3} {
		res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 3},
			invariant.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, invariant.Done, res.Status)
		assert.Equal(t, []int{1, 2, 3}, res.Degrees)
		require.Len(t, res.Generators, 3)
		assert.Equal(t, "x1 + x2 + x3", res.Generators[0].String())
		assert.Equal(t, "x1*x2 + x1*x3 + x2*x3", res.Generators[1].String())
		checkResult(t, g, res)

		sub, err := invariant.SubalgebraHilbert(res.Generators, 3)
		require.NoError(t, err)
		assert.True(t, sub.Equal(molien))
	}
}

func TestBuild_WithoutCandidateFilter(t *testing.T) {
	g := rotation(t)
	molien := rational(t, []int64{1, 0, 0, 0, 1}, []int64{1, 0, -1, 0, -1, 0, 1}, 8)

	filtered, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 8})
	require.NoError(t, err)
	plain, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 8},
		invariant.WithoutCandidateFilter())
	require.NoError(t, err)

	assert.Equal(t, filtered.Degrees, plain.Degrees)
	assert.Equal(t, invariant.Done, plain.Status)
	for i := range filtered.Steps {
		assert.LessOrEqual(t, filtered.Steps[i].Candidates, plain.Steps[i].Candidates)
	}
}

func TestBuild_WeightedOrder(t *testing.T) {
	g := signFlip(t)
	molien := rational(t, []int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Weights: []int{1, 3}, Bound: 4})
	require.NoError(t, err)
	assert.Equal(t, invariant.Done, res.Status)
	assert.ElementsMatch(t, []string{"x1^2", "x1*x2", "x2^2"}, strs(res.Generators))
}

func TestBuild_Stalled(t *testing.T) {
	g, err := group.Trivial(2)
	require.NoError(t, err)
	// the Molien series of three free variables, not two
	molien := rational(t, []int64{1}, []int64{1, -3, 3, -1}, 2)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 2})
	require.ErrorIs(t, err, invariant.ErrStalled)
	require.NotNil(t, res)
	assert.Equal(t, []string{"x1", "x2"}, strs(res.Generators))
}

func TestBuild_SeriesMismatch(t *testing.T) {
	g := signFlip(t)
	molien, err := series.FromInts(2, 1, 0, 2)
	require.NoError(t, err)

	res, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 2})
	require.ErrorIs(t, err, invariant.ErrSeriesMismatch)
	assert.Len(t, res.Generators, 3)
}

func TestNewBuilder_Validation(t *testing.T) {
	g := signFlip(t)
	good := rational(t, []int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)
	constOne, err := series.FromInts(4, 1)
	require.NoError(t, err)
	frac, err := series.FromRats(2, []*big.Rat{big.NewRat(1, 1), big.NewRat(1, 2)})
	require.NoError(t, err)
	neg, err := series.FromInts(2, 1, -1)
	require.NoError(t, err)
	noOne, err := series.FromInts(2, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   invariant.Input
		opts []invariant.Option
		want error
	}{
		{"nil group", invariant.Input{Molien: good, Bound: 2}, nil, invariant.ErrEmptyGroup},
		{"weights length", invariant.Input{Group: g, Molien: good, Weights: []int{1}, Bound: 2}, nil, invariant.ErrDimensionMismatch},
		{"zero weight", invariant.Input{Group: g, Molien: good, Weights: []int{1, 0}, Bound: 2}, nil, invariant.ErrBadWeights},
		{"names length", invariant.Input{Group: g, Molien: good, Bound: 2},
			[]invariant.Option{invariant.WithVariableNames([]string{"x"})}, invariant.ErrDimensionMismatch},
		{"nil series", invariant.Input{Group: g, Bound: 2}, nil, invariant.ErrMalformedSeries},
		{"negative bound", invariant.Input{Group: g, Molien: good, Bound: -1}, nil, invariant.ErrBadBound},
		{"bound beyond precision", invariant.Input{Group: g, Molien: good, Bound: 5}, nil, invariant.ErrBadBound},
		{"fractional series", invariant.Input{Group: g, Molien: frac, Bound: 2}, nil, invariant.ErrMalformedSeries},
		{"negative coefficient", invariant.Input{Group: g, Molien: neg, Bound: 2}, nil, invariant.ErrMalformedSeries},
		{"constant term", invariant.Input{Group: g, Molien: noOne, Bound: 2}, nil, invariant.ErrMalformedSeries},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invariant.NewBuilder(tc.in, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err = invariant.NewBuilder(invariant.Input{Group: g, Molien: constOne, Bound: 4})
	require.NoError(t, err, "a series of constant 1 is well formed")
}

func TestBuilder_StepByStep(t *testing.T) {
	g, err := group.Trivial(1)
	require.NoError(t, err)
	molien := rational(t, []int64{1}, []int64{1, -1}, 2)

	b, err := invariant.NewBuilder(invariant.Input{Group: g, Molien: molien, Bound: 2})
	require.NoError(t, err)

	want := []invariant.State{
		invariant.FindDegree, invariant.Generate, invariant.Admit, invariant.Update,
		invariant.FindDegree, invariant.Done,
	}
	assert.Equal(t, invariant.Init, b.State())
	for _, s := range want {
		require.NoError(t, b.Step())
		assert.Equal(t, s, b.State())
		assert.Equal(t, len(b.Generators()), b.NumAuxiliary(), "one Y per generator")
	}
	assert.Equal(t, 1, b.Degree())

	// a terminal builder stays put
	require.NoError(t, b.Step())
	assert.Equal(t, invariant.Done, b.State())
	assert.True(t, b.State().Terminal())

	res, err := b.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"x1"}, strs(res.Generators))
}

func TestBuilder_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := signFlip(t)
	molien := rational(t, []int64{1, 0, 1}, []int64{1, 0, -2, 0, 1}, 4)
	_, err := invariant.Build(invariant.Input{Group: g, Molien: molien, Bound: 4},
		invariant.WithLogger(logger), invariant.WithVariableNames([]string{"a", "b"}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "invariant: degree processed")
	assert.Contains(t, out, "degree=2")
	assert.Contains(t, out, "a*b")
	assert.Contains(t, out, "invariant: search finished")
	assert.Contains(t, out, "status=done")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "find-degree", invariant.FindDegree.String())
	assert.Equal(t, "truncated", invariant.Truncated.String())
	assert.Equal(t, "unknown", invariant.State(42).String())
	assert.False(t, invariant.Admit.Terminal())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { invariant.WithLogger(nil) })
	assert.Panics(t, func() { invariant.WithWorkers(0) })
	assert.Panics(t, func() { invariant.WithAlgebra(nil) })
}
