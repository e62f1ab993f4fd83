// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the structural checks route search
//    depends on: square shape, zero diagonal, symmetry, completeness.
//  - Return sentinel errors wrapped with the validator tag and, where it
//    helps, the offending indices.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; they scan in row-major order and
//    report the first violation found.
//  - Symmetry and completeness run O(n²) on the upper triangle only; the
//    cost-range check scans every entry once.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal checks that every a(i,i) is NoEdge.
// Assumes m is square.
func ValidateZeroDiagonal(m Matrix) error {
	var (
		i   int
		v   Cost
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if v != NoEdge {
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d)=%d: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks a(i,j) == a(j,i) for all i<j.
// Assumes m is square.
func ValidateSymmetric(m Matrix) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji Cost
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aij != aji {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%d, (%d,%d)=%d: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// MissingPair returns the first pair (i, j), i<j, with no direct connection
// in either direction. ok is false when every pair is connected.
// Assumes m is square.
func MissingPair(m Matrix) (i, j int, ok bool) {
	var (
		n   = m.Rows()
		v   Cost
		err error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil || v == NoEdge {
				return i, j, true
			}
			if v, err = m.At(j, i); err != nil || v == NoEdge {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// ValidateComplete checks that every pair of distinct indices is connected.
// Assumes m is square.
func ValidateComplete(m Matrix) error {
	if i, j, ok := MissingPair(m); ok {
		return fmt.Errorf("ValidateComplete: (%d,%d): %w", i, j, ErrIncompleteGraph)
	}

	return nil
}

// ValidateCostRange checks that any path over all n indices fits in a Cost:
// (n-1) times the largest entry must not overflow.
// Assumes m is square.
func ValidateCostRange(m Matrix) error {
	var (
		n       = m.Rows()
		i, j    int
		v, peak Cost
		err     error
	)
	if n < 2 {
		return nil
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateCostRange", err)
			}
			peak = max(peak, v)
		}
	}
	if peak > Cost(math.MaxUint64)/Cost(n-1) {
		return fmt.Errorf("ValidateCostRange: max entry %d over %d steps: %w", peak, n-1, ErrCostOverflow)
	}

	return nil
}

// ValidateDistance runs the full check sequence used before a search:
// NotNil → Square → ZeroDiagonal → Symmetric → Complete → CostRange.
func ValidateDistance(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m); err != nil {
		return err
	}

	if err := ValidateComplete(m); err != nil {
		return err
	}

	return ValidateCostRange(m)
}
