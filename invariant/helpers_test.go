// SPDX-License-Identifier: MIT
// Package invariant_test holds shared fixtures for the invariant tests.
package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invring/group"
	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/poly"
	"github.com/katalvlaran/invring/series"
)

func cyclic(t *testing.T, rows [][]int64) *group.Group {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)
	g, err := group.Cyclic(m)
	require.NoError(t, err)

	return g
}

// signFlip is {I, −I} on two variables.
func signFlip(t *testing.T) *group.Group {
	return cyclic(t, [][]int64{{-1, 0}, {0, -1}})
}

// rotation is the cyclic group of order 4 generated by a quarter turn.
func rotation(t *testing.T) *group.Group {
	return cyclic(t, [][]int64{{0, -1}, {1, 0}})
}

func rational(t *testing.T, num, den []int64, bound int) *series.Series {
	t.Helper()
	s, err := series.Rational(num, den, bound)
	require.NoError(t, err)

	return s
}

func strs(ps []*poly.Poly) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}
