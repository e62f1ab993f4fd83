package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/route"
)

const sampleInput = `London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
`

func mustNetwork(t *testing.T, conns []route.Connection) *route.Network {
	t.Helper()
	net, err := route.Build(conns)
	require.NoError(t, err)

	return net
}

// triangle: A-B=5, A-C=3, B-C=10.
func triangle() []route.Connection {
	return []route.Connection{
		{From: "A", To: "B", Cost: 5},
		{From: "A", To: "C", Cost: 3},
		{From: "B", To: "C", Cost: 10},
	}
}

// pathOnly is A-B-C with no A-C connection.
func pathOnly() []route.Connection {
	return []route.Connection{
		{From: "A", To: "B", Cost: 1},
		{From: "B", To: "C", Cost: 1},
	}
}

func completeGraph(t *testing.T, n int, seed int64) []route.Connection {
	t.Helper()
	conns, err := builder.Complete(n, builder.WithSeed(seed), builder.WithUniformWeight(1, 100))
	require.NoError(t, err)

	return conns
}

func constantGraph(t *testing.T, n int, w uint64) []route.Connection {
	t.Helper()
	conns, err := builder.Complete(n, builder.WithConstantWeight(w))
	require.NoError(t, err)

	return conns
}

// bruteForce enumerates every permutation of dist's indices.
func bruteForce(t *testing.T, dist matrix.Matrix) (lo, hi matrix.Cost) {
	t.Helper()
	n := dist.Rows()
	lo = math.MaxUint64
	perm := make([]int, n)
	used := make([]bool, n)

	var rec func(depth int, cost matrix.Cost)
	rec = func(depth int, cost matrix.Cost) {
		if depth == n {
			lo = min(lo, cost)
			hi = max(hi, cost)
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			var c matrix.Cost
			if depth > 0 {
				var err error
				c, err = dist.At(perm[depth-1], v)
				require.NoError(t, err)
			}
			used[v] = true
			perm[depth] = v
			rec(depth+1, cost+c)
			used[v] = false
		}
	}
	rec(0, 0)

	return lo, hi
}

func assertPermutation(t *testing.T, path []int, n int) {
	t.Helper()
	require.Len(t, path, n)
	seen := make([]bool, n)
	for _, v := range path {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "index %d repeated in %v", v, path)
		seen[v] = true
	}
}
