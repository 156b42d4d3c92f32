package core_test

import (
	"testing"

	"github.com/katalvlaran/skypath/core"
)

// star builds a center vertex with n leaves in the given backing.
func star(g core.WeightedGraph[int], n int) core.VertexID {
	center := g.InsertVertex(-1)
	for i := 0; i < n; i++ {
		leaf := g.InsertVertex(i)
		_, _ = g.InsertEdge(center, leaf, float64(i))
	}

	return center
}

// BenchmarkInsertEdge measures edge insertion on the adjacency list.
func BenchmarkInsertEdge(b *testing.B) {
	g := core.NewAdjacencyList[int](core.WithCapacity(b.N + 1))
	root := g.InsertVertex(0)
	leaves := make([]core.VertexID, b.N)
	for i := range leaves {
		leaves[i] = g.InsertVertex(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InsertEdge(root, leaves[i], 1)
	}
}

// BenchmarkNeighbors_AdjacencyList measures the search hot path (no allocation expected).
func BenchmarkNeighbors_AdjacencyList(b *testing.B) {
	g := core.NewAdjacencyList[int]()
	center := star(g, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(center)
	}
}

// BenchmarkNeighbors_EdgeList shows the O(E) scan of the flat backing.
func BenchmarkNeighbors_EdgeList(b *testing.B) {
	g := core.NewEdgeList[int]()
	center := star(g, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(center)
	}
}

// BenchmarkNeighbors_Compact measures the CSR snapshot.
func BenchmarkNeighbors_Compact(b *testing.B) {
	g := core.NewAdjacencyList[int]()
	center := star(g, 1000)
	snap, err := core.Freeze(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = snap.Neighbors(center)
	}
}
