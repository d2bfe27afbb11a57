// SPDX-License-Identifier: MIT

// Package group models finite matrix groups acting linearly on K[x_1..x_n].
//
// A Group is validated on construction: every element is a square matrix of
// the same dimension, the identity is present, and the set is closed under
// multiplication. Generate builds the group spanned by a set of generators.
//
// Each element g acts on the variables by x ↦ g·x; the images of x_1..x_n
// are precomputed as linear polynomials so that substitution can be done
// simultaneously.
package group

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/invring/matrix"
	"github.com/katalvlaran/invring/poly"
)

// DefaultLimit caps the order of groups produced by Generate.
const DefaultLimit = 10000

var (
	// ErrEmpty is returned for an empty element or generator list.
	ErrEmpty = errors.New("group: no elements")

	// ErrNotSquare is returned when an element is not a square matrix.
	ErrNotSquare = errors.New("group: element is not square")

	// ErrDimensionMismatch is returned when elements have different dimensions.
	ErrDimensionMismatch = errors.New("group: elements of different dimension")

	// ErrNoIdentity is returned when the identity matrix is missing.
	ErrNoIdentity = errors.New("group: identity missing")

	// ErrNotClosed is returned when a product of two elements is not an element.
	ErrNotClosed = errors.New("group: not closed under multiplication")

	// ErrTooLarge is returned when Generate exceeds its order limit.
	ErrTooLarge = errors.New("group: order exceeds limit")
)

// Group is a finite group of n×n rational matrices.
type Group struct {
	dim    int
	elems  []*matrix.Dense
	index  map[string]int
	images [][]*poly.Poly // images[k][i] = (g_k·x)_i
}

// New validates elements as a finite group. Duplicate elements are
// collapsed so that averaging runs over the set, not the list.
//
// Errors: ErrEmpty, ErrNotSquare, ErrDimensionMismatch, ErrNoIdentity, ErrNotClosed.
// Complexity: O(|G|² · n³) for the closure check.
func New(elements []*matrix.Dense) (*Group, error) {
	g, err := collect(elements)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// Stage 2: identity
	id, _ := matrix.Identity(g.dim)
	if !g.Contains(id) {
		return nil, fmt.Errorf("New: %w", ErrNoIdentity)
	}

	// Stage 3: closure
	for _, a := range g.elems {
		for _, b := range g.elems {
			p, err := matrix.Mul(a, b)
			if err != nil {
				return nil, fmt.Errorf("New: %w", err)
			}
			if !g.Contains(p) {
				return nil, fmt.Errorf("New: product\n%vis missing: %w", p, ErrNotClosed)
			}
		}
	}
	g.precompute()

	return g, nil
}

// collect checks shapes and builds the deduplicated element index.
func collect(elements []*matrix.Dense) (*Group, error) {
	if len(elements) == 0 {
		return nil, ErrEmpty
	}
	g := &Group{index: make(map[string]int)}
	for i, e := range elements {
		if err := matrix.ValidateSquare(e); err != nil {
			return nil, fmt.Errorf("element %d: %w: %w", i, ErrNotSquare, err)
		}
		if i == 0 {
			g.dim = e.Rows()
		} else if e.Rows() != g.dim {
			return nil, fmt.Errorf("element %d is %dx%d, want %dx%d: %w", i, e.Rows(), e.Cols(), g.dim, g.dim, ErrDimensionMismatch)
		}
		g.insert(e)
	}

	return g, nil
}

func (g *Group) insert(e *matrix.Dense) bool {
	k := e.Key()
	if _, ok := g.index[k]; ok {
		return false
	}
	g.index[k] = len(g.elems)
	g.elems = append(g.elems, e.Clone())

	return true
}

// Generate returns the group generated by gens, closing under multiplication
// breadth-first from the identity. limit ≤ 0 selects DefaultLimit.
//
// Errors: ErrEmpty, ErrNotSquare, ErrDimensionMismatch, ErrTooLarge.
func Generate(gens []*matrix.Dense, limit int) (*Group, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	seed, err := collect(gens)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	id, _ := matrix.Identity(seed.dim)

	g := &Group{dim: seed.dim, index: make(map[string]int)}
	g.insert(id)
	for head := 0; head < len(g.elems); head++ {
		for _, s := range seed.elems {
			p, err := matrix.Mul(g.elems[head], s)
			if err != nil {
				return nil, fmt.Errorf("Generate: %w", err)
			}
			if g.insert(p) && len(g.elems) > limit {
				return nil, fmt.Errorf("Generate: more than %d elements: %w", limit, ErrTooLarge)
			}
		}
	}
	g.precompute()

	return g, nil
}

// Cyclic returns the cyclic group generated by a single matrix of finite order.
func Cyclic(gen *matrix.Dense) (*Group, error) {
	return Generate([]*matrix.Dense{gen}, 0)
}

// Trivial returns the group {I_n}.
func Trivial(n int) (*Group, error) {
	id, err := matrix.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("Trivial: %w", err)
	}

	return New([]*matrix.Dense{id})
}

// Permutations returns the symmetric group S_n acting by permutation
// matrices, generated by the transposition (1 2) and the cycle (1 2 .. n).
func Permutations(n int) (*Group, error) {
	if n == 1 {
		return Trivial(1)
	}
	swap := make([]int, n)
	cycle := make([]int, n)
	for i := range swap {
		swap[i] = i
		cycle[i] = (i + 1) % n
	}
	swap[0], swap[1] = 1, 0

	a, err := PermutationMatrix(swap)
	if err != nil {
		return nil, fmt.Errorf("Permutations: %w", err)
	}
	b, err := PermutationMatrix(cycle)
	if err != nil {
		return nil, fmt.Errorf("Permutations: %w", err)
	}

	return Generate([]*matrix.Dense{a, b}, 0)
}

// PermutationMatrix returns the matrix P with P[i][perm[i]] = 1, so that
// (P·x)_i = x_{perm[i]}.
func PermutationMatrix(perm []int) (*matrix.Dense, error) {
	n := len(perm)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := big.NewRat(1, 1)
	for i, j := range perm {
		if err = m.Set(i, j, one); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// precompute stores the linear images of the variables under every element.
func (g *Group) precompute() {
	g.images = make([][]*poly.Poly, len(g.elems))
	for k, e := range g.elems {
		row := make([]*poly.Poly, g.dim)
		for i := 0; i < g.dim; i++ {
			img := poly.New(g.dim)
			for j := 0; j < g.dim; j++ {
				c, _ := e.At(i, j)
				if c.Sign() != 0 {
					img = img.Add(poly.Var(g.dim, j).Scale(c))
				}
			}
			row[i] = img
		}
		g.images[k] = row
	}
}

// Dim returns the representation dimension n.
func (g *Group) Dim() int { return g.dim }

// Order returns |G|.
func (g *Group) Order() int { return len(g.elems) }

// Element returns a copy of the k-th element in insertion order.
func (g *Group) Element(k int) *matrix.Dense { return g.elems[k].Clone() }

// Elements returns copies of all elements in insertion order.
func (g *Group) Elements() []*matrix.Dense {
	out := make([]*matrix.Dense, len(g.elems))
	for i, e := range g.elems {
		out[i] = e.Clone()
	}

	return out
}

// Contains reports whether m is an element of g.
func (g *Group) Contains(m *matrix.Dense) bool {
	if m == nil {
		return false
	}
	_, ok := g.index[m.Key()]

	return ok
}

// Images returns the images g_k·x of the variables as linear polynomials.
// The returned polynomials are shared and must not be modified.
func (g *Group) Images(k int) []*poly.Poly { return g.images[k] }

// Act returns p(g_k·x), substituting all variables simultaneously.
func (g *Group) Act(k int, p *poly.Poly) *poly.Poly {
	return p.Subst(g.dim, g.images[k])
}
