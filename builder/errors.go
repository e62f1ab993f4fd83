// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadWeight indicates that a WeightFn produced 0, which the distance
// matrix reserves for "no connection".
var ErrBadWeight = errors.New("builder: weight must be > 0")

// ErrDuplicateID indicates that the IDFn produced the same label for two
// different indices.
var ErrDuplicateID = errors.New("builder: duplicate vertex id")

// builderErrorf wraps err with the given method context.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
