// Package builder provides helper types for configuring connection-cost
// distributions in constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hamroute/matrix"
)

// DefaultEdgeWeight is the cost assigned to each connection when no custom
// WeightFn is provided, or when a stochastic WeightFn has no RNG.
const DefaultEdgeWeight matrix.Cost = 1

// WeightFn produces a connection cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and must not return 0.
type WeightFn func(rng *rand.Rand) matrix.Cost

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) matrix.Cost {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value == 0 (reserved for "no connection").
func ConstantWeightFn(value uint64) WeightFn {
	if value == 0 {
		panic("ConstantWeightFn: value must be > 0")
	}

	return func(_ *rand.Rand) matrix.Cost {
		return matrix.Cost(value)
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min == 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain a deterministic fallback.
func UniformWeightFn(min, max uint64) WeightFn {
	if min == 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) matrix.Cost {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if span == 1 {
			return matrix.Cost(min)
		}

		return matrix.Cost(min + uint64(rng.Int63n(int64(span))))
	}
}

// PuzzleWeightFn draws costs in [1,255], the range seen in puzzle inputs.
func PuzzleWeightFn(rng *rand.Rand) matrix.Cost {
	return UniformWeightFn(1, 255)(rng)
}
