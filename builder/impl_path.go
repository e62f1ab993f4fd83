// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — Path(n): a simple chain 0-1-…-(n-1).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits (i-1,i) for i=1..n-1 in increasing order.
//   • For n ≥ 3 the result is NOT complete; a search over it must fail.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/hamroute/route"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns the connection list of the path graph P_n.
func Path(n int, opts ...BuilderOption) ([]route.Connection, error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodPath, "n=%d < min=%d", ErrTooFewVertices, n, minPathNodes)
	}
	cfg := newBuilderConfig(opts...)
	ids, err := cfg.ids(methodPath, n)
	if err != nil {
		return nil, err
	}

	conns := make([]route.Connection, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		w, err := cfg.weight(methodPath, ids[i-1], ids[i])
		if err != nil {
			return nil, err
		}
		conns = append(conns, route.Connection{From: ids[i-1], To: ids[i], Cost: w})
	}

	return conns, nil
}
