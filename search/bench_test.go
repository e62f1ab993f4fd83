package search_test

import (
	"testing"

	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/route"
	"github.com/katalvlaran/hamroute/search"
)

func benchNetwork(b *testing.B, n int) *route.Network {
	b.Helper()
	conns, err := builder.Complete(n, builder.WithSeed(1), builder.WithWeightFn(builder.PuzzleWeightFn))
	if err != nil {
		b.Fatal(err)
	}
	net, err := route.Build(conns)
	if err != nil {
		b.Fatal(err)
	}

	return net
}

func BenchmarkMinCost8(b *testing.B) {
	net := benchNetwork(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.MinCost(net.Dist); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaxCost8(b *testing.B) {
	net := benchNetwork(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.MaxCost(net.Dist); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaxCost8_Parallel(b *testing.B) {
	net := benchNetwork(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.MaxCost(net.Dist, search.WithParallel(4)); err != nil {
			b.Fatal(err)
		}
	}
}
