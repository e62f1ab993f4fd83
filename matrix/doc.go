// Package matrix provides the dense distance table used by route search.
//
// A distance matrix is an N×N table of non-negative integer costs indexed by
// registry ids. The value 0 is the sentinel for "no direct connection", so
// the diagonal is always 0 and is never read by search code.
//
// The package provides:
//
//   - Matrix, a small bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by a flat slice.
//   - Validators for the structural invariants search relies on: square
//     shape, zero diagonal, symmetry and completeness.
//
// Matrices are meant for small graphs where O(N²) memory is irrelevant.
package matrix
