// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — Complete(n): every pair of locations connected.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); K_1 has no connection to carry its label.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Cost per pair: cfg.weightFn(cfg.rng); 0 is rejected with ErrBadWeight.
//
// Complexity:
//   • Time: O(n²). Space: O(n²) for the result.
//
// Determinism:
//   • Pair order is lexicographic by (i,j); weights are drawn in that order.

package builder

import "github.com/katalvlaran/hamroute/route"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns the connection list of the complete graph K_n.
func Complete(n int, opts ...BuilderOption) ([]route.Connection, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodComplete, "n=%d < min=%d", ErrTooFewVertices, n, minCompleteNodes)
	}
	cfg := newBuilderConfig(opts...)
	ids, err := cfg.ids(methodComplete, n)
	if err != nil {
		return nil, err
	}

	conns := make([]route.Connection, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, err := cfg.weight(methodComplete, ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			conns = append(conns, route.Connection{From: ids[i], To: ids[j], Cost: w})
		}
	}

	return conns, nil
}
