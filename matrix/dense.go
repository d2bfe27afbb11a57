// SPDX-License-Identifier: MIT
// Package matrix provides exact linear algebra primitives over the rationals.
// Dense is a row-major matrix of *big.Rat values stored in a flat slice.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rationals.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Entries are owned by the matrix: At returns copies, Set stores copies.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice of zero rationals.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Allocate flat slice
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromRows builds a Dense matrix from a rectangular slice of rows.
// Returns ErrInvalidDimensions for empty input, ErrDimensionMismatch for
// ragged rows and ErrNilEntry for nil entries.
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == nil {
				return nil, denseErrorf("FromRows", i, j, ErrNilEntry)
			}
			m.data[i*m.c+j].Set(v)
		}
	}

	return m, nil
}

// FromInts builds a Dense matrix from integer rows; convenient for tests
// and for permutation / sign matrices.
func FromInts(rows [][]int64) (*Dense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rr[i][j] = big.NewRat(v, 1)
		}
	}

	return FromRows(rr)
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// at is the unchecked internal accessor; it returns the stored pointer.
func (m *Dense) at(row, col int) *big.Rat {
	return m.data[row*m.c+col]
}

// Set assigns a copy of v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// Row returns copies of the entries of row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]*big.Rat, m.c)
	for j := range out {
		out[j] = new(big.Rat).Set(m.at(i, j))
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and identical entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether every entry of row i is zero.
func (m *Dense) IsZeroRow(i int) bool {
	for j := 0; j < m.c; j++ {
		if m.at(i, j).Sign() != 0 {
			return false
		}
	}

	return true
}

// Key returns a canonical string for m, suitable as a map key when
// matrices are collected into sets (e.g. group elements).
func (m *Dense) Key() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%dx%d:", m.r, m.c))
	for i, v := range m.data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.RatString())
	}

	return b.String()
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.at(i, j).RatString())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
