// Package matrix offers exact dense matrices over the rationals.
//
// The matrix package provides:
//
//   - Dense, a row-major *big.Rat matrix with bounds-checked At/Set.
//   - Kernels: Mul, Transpose.
//   - Exact row reduction: RREF, Rank and IndependentRows, used to pick a
//     maximal linearly independent subset of coefficient vectors.
//   - Validators shared by kernels and callers (ValidateSquare, ...).
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with an operation tag; match them with errors.Is.
//
// Group elements in package group are Dense matrices, and the invariant
// package builds coefficient matrices over monomial bases with FromRows.
package matrix
