// SPDX-License-Identifier: MIT

// Package invariant: functional configuration for the Builder.
//
// Defaults:
//   - a logger that discards everything,
//   - one worker for Reynolds averaging,
//   - the candidate filter switched on,
//   - the groebner/series backend.
//
// WithX constructors panic on nonsensical values (programmer error).
package invariant

import (
	"io"
	"log/slog"
	"math"
)

// DefaultWorkers is the number of goroutines used for Reynolds averaging.
const DefaultWorkers = 1

// Option configures a Builder.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	workers int
	filter  bool
	names   []string
	algebra Algebra
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		workers: DefaultWorkers,
		filter:  true,
		algebra: defaultAlgebra{},
	}
}

// WithLogger routes the builder's progress records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("invariant: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithWorkers averages candidate monomials on n goroutines. Results are
// collected by index, so the output does not depend on n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("invariant: WithWorkers needs n >= 1")
	}

	return func(c *config) { c.workers = n }
}

// WithoutCandidateFilter keeps every degree-k monomial as a candidate instead
// of discarding leading monomials of products of known invariants.
func WithoutCandidateFilter() Option {
	return func(c *config) { c.filter = false }
}

// WithVariableNames names x_1..x_n in log output. The length is checked
// against the group dimension by NewBuilder.
func WithVariableNames(names []string) Option {
	cp := append([]string(nil), names...)

	return func(c *config) { c.names = cp }
}

// WithAlgebra replaces the symbolic backend.
func WithAlgebra(a Algebra) Option {
	if a == nil {
		panic("invariant: WithAlgebra(nil)")
	}

	return func(c *config) { c.algebra = a }
}
