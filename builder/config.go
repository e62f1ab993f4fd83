// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn       ("0","1","2",...)
//   • rng      = nil               (no randomness unless seeded)
//   • weightFn = DefaultWeightFn   (constant DefaultEdgeWeight)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hamroute/matrix"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> label (deterministic).
	idFn IDFn
	// RNG for weight draws; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for connections.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// ids materialises labels 0..n-1 and rejects collisions.
func (c builderConfig) ids(method string, n int) ([]string, error) {
	out := make([]string, n)
	seen := make(map[string]int, n)
	var (
		i    int
		prev int
		ok   bool
	)
	for i = 0; i < n; i++ {
		out[i] = c.idFn(i)
		if prev, ok = seen[out[i]]; ok {
			return nil, builderErrorf(method, "idx %d and %d -> %q", ErrDuplicateID, prev, i, out[i])
		}
		seen[out[i]] = i
	}

	return out, nil
}

// weight draws one cost and enforces the non-zero policy.
func (c builderConfig) weight(method, u, v string) (matrix.Cost, error) {
	w := c.weightFn(c.rng)
	if w == matrix.NoEdge {
		return 0, builderErrorf(method, "%s-%s", ErrBadWeight, u, v)
	}

	return w, nil
}
