// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels, wrapped with method context via %w
// where useful; callers match them with errors.Is. Nothing in this package
// panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a(i,j) != a(j,i) for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-connection stored on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrIncompleteGraph signals that some pair of distinct locations has no
	// direct connection (a NoEdge entry off the diagonal).
	ErrIncompleteGraph = errors.New("matrix: incomplete graph")

	// ErrCostOverflow signals that a path total no longer fits in a Cost.
	ErrCostOverflow = errors.New("matrix: path cost overflows uint64")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
