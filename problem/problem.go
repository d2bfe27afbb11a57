// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/invariant"
	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/series"
)

// Rat is a rational YAML scalar: an integer, a decimal or a fraction "p/q".
type Rat struct {
	big.Rat
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Rat) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", n.Line, ErrBadRational)
	}
	if _, ok := r.SetString(n.Value); !ok {
		return fmt.Errorf("line %d: %q: %w", n.Line, n.Value, ErrBadRational)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Rat) MarshalYAML() (interface{}, error) {
	return r.RatString(), nil
}

// Matrix is a matrix written as a list of rows.
type Matrix [][]Rat

// Dense converts m into a matrix.Dense.
func (m Matrix) Dense() (*matrix.Dense, error) {
	rows := make([][]*big.Rat, len(m))
	for i, row := range m {
		rows[i] = make([]*big.Rat, len(row))
		for j := range row {
			rows[i][j] = &m[i][j].Rat
		}
	}

	return matrix.FromRows(rows)
}

// Group lists either every element or a generating set.
type Group struct {
	Elements   []Matrix `yaml:"elements,omitempty"`
	Generators []Matrix `yaml:"generators,omitempty"`
	Limit      int      `yaml:"limit,omitempty"`
}

// Molien is the Molien series, either as numerator / denominator integer
// coefficient lists or as explicit coefficients of t^0, t^1, ...
type Molien struct {
	Numerator    []int64 `yaml:"numerator,omitempty"`
	Denominator  []int64 `yaml:"denominator,omitempty"`
	Coefficients []int64 `yaml:"coefficients,omitempty"`
	Precision    int     `yaml:"precision,omitempty"`
}

// Problem is one YAML document.
type Problem struct {
	Name      string   `yaml:"name,omitempty"`
	Variables []string `yaml:"variables,omitempty"`
	Weights   []int    `yaml:"weights,omitempty"`
	Bound     int      `yaml:"bound"`
	Group     Group    `yaml:"group"`
	Molien    Molien   `yaml:"molien"`
}

// Load reads and parses a problem file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a problem document. Unknown keys are rejected.
func Parse(data []byte) (*Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return &p, nil
}

// Input builds the group and the Molien series and returns the run input.
// A bound override ≥ 0 replaces the document's bound; the series precision
// defaults to the bound.
//
// Errors: ErrNoGroup, ErrGroupAmbiguous, ErrNoMolien, ErrMolienAmbiguous,
// ErrBadPrecision, and the group / series / matrix sentinels.
func (p *Problem) Input(bound int) (invariant.Input, error) {
	if bound < 0 {
		bound = p.Bound
	}
	g, err := p.buildGroup()
	if err != nil {
		return invariant.Input{}, fmt.Errorf("Input: %w", err)
	}
	m, err := p.buildMolien(bound)
	if err != nil {
		return invariant.Input{}, fmt.Errorf("Input: %w", err)
	}

	return invariant.Input{Group: g, Molien: m, Weights: p.Weights, Bound: bound}, nil
}

func (p *Problem) buildGroup() (*group.Group, error) {
	var (
		list []Matrix
		gen  bool
	)
	switch {
	case len(p.Group.Elements) > 0 && len(p.Group.Generators) > 0:
		return nil, ErrGroupAmbiguous
	case len(p.Group.Elements) > 0:
		list = p.Group.Elements
	case len(p.Group.Generators) > 0:
		list, gen = p.Group.Generators, true
	default:
		return nil, ErrNoGroup
	}

	dense := make([]*matrix.Dense, len(list))
	for i, m := range list {
		d, err := m.Dense()
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		dense[i] = d
	}
	if gen {
		return group.Generate(dense, p.Group.Limit)
	}

	return group.New(dense)
}

func (p *Problem) buildMolien(bound int) (*series.Series, error) {
	m := p.Molien
	prec := m.Precision
	if prec == 0 {
		prec = bound
	}
	if prec < bound {
		return nil, fmt.Errorf("precision %d, bound %d: %w", prec, bound, ErrBadPrecision)
	}

	rational := len(m.Numerator) > 0 || len(m.Denominator) > 0
	switch {
	case rational && len(m.Coefficients) > 0:
		return nil, ErrMolienAmbiguous
	case rational:
		num, den := m.Numerator, m.Denominator
		if len(num) == 0 {
			num = []int64{1}
		}
		if len(den) == 0 {
			den = []int64{1}
		}

		return series.Rational(num, den, prec)
	case len(m.Coefficients) > 0:
		return series.FromInts(prec, m.Coefficients...)
	default:
		return nil, ErrNoMolien
	}
}
