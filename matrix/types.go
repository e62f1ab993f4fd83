// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense implementation and
// validators.
package matrix

// Cost is the price of travelling directly between two locations.
// A Cost of 0 means the two locations are not connected.
type Cost uint64

// NoEdge is the sentinel stored for absent connections.
const NoEdge Cost = 0

// AddCost returns a+b. ok is false when the sum does not fit in a Cost.
func AddCost(a, b Cost) (sum Cost, ok bool) {
	sum = a + b

	return sum, sum >= a
}

// Matrix represents a two-dimensional mutable table of costs.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (Cost, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v Cost) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
