package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/skypath/builder"
	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/dijkstra"
)

// fanout builds the sparse airline benchmark network: n airports, three
// random departures each, weights in [1, 101).
func fanout(b *testing.B, g core.WeightedGraph[string], n int) []core.VertexID {
	b.Helper()
	ids, err := builder.BuildGraph(g,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 101)},
		builder.RandomFanout(n, 3))
	if err != nil {
		b.Fatal(err)
	}

	return ids
}

func BenchmarkRun_AdjacencyList(b *testing.B) {
	g := core.NewAdjacencyList[string]()
	ids := fanout(b, g, 10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Run(g, ids[123])
	}
}

func BenchmarkRun_Compact(b *testing.B) {
	g := core.NewAdjacencyList[string]()
	ids := fanout(b, g, 10_000)
	snap, err := core.Freeze(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Run(snap, ids[123])
	}
}

func BenchmarkPath_EdgeList(b *testing.B) {
	g := core.NewEdgeList[string]()
	ids := fanout(b, g, 1_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Path(g, ids[123], ids[len(ids)-1])
	}
}
