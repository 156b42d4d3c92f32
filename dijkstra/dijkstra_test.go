// Package dijkstra_test validates the Dijkstra engine on the reference flight
// network, on every graph backing, and under each option.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/dijkstra"
)

// network is the DUB/LON/PAR/BER fixture plus the vertex IDs.
type network struct {
	g                  core.WeightedGraph[string]
	dub, lon, par, ber core.VertexID
	parBer             core.EdgeID
}

func europe(t *testing.T, g core.WeightedGraph[string]) network {
	t.Helper()
	n := network{g: g}
	n.dub = g.InsertVertex("DUB")
	n.lon = g.InsertVertex("LON")
	n.par = g.InsertVertex("PAR")
	n.ber = g.InsertVertex("BER")
	var err error
	_, err = g.InsertEdge(n.dub, n.lon, 100)
	require.NoError(t, err)
	_, err = g.InsertEdge(n.lon, n.par, 200)
	require.NoError(t, err)
	n.parBer, err = g.InsertEdge(n.par, n.ber, 300)
	require.NoError(t, err)
	_, err = g.InsertEdge(n.dub, n.ber, 700)
	require.NoError(t, err)

	return n
}

// backings lists every mutable graph implementation.
var backings = map[string]func() core.WeightedGraph[string]{
	"adjacency": func() core.WeightedGraph[string] { return core.NewAdjacencyList[string]() },
	"edgelist":  func() core.WeightedGraph[string] { return core.NewEdgeList[string]() },
}

func TestPathAcrossBackings(t *testing.T) {
	for name, newGraph := range backings {
		t.Run(name, func(t *testing.T) {
			n := europe(t, newGraph())

			path, err := dijkstra.Path(n.g, n.dub, n.ber)
			require.NoError(t, err)
			assert.Equal(t, []core.VertexID{n.dub, n.lon, n.par, n.ber}, path)

			d, err := dijkstra.ShortestDistance(n.g, n.dub, n.ber)
			require.NoError(t, err)
			assert.Equal(t, 600.0, d)

			w, err := core.PathWeight(n.g, path)
			require.NoError(t, err)
			assert.Equal(t, d, w)
		})
	}
}

func TestDistances(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	dist, err := dijkstra.Distances(n.g, n.dub)
	require.NoError(t, err)
	assert.Equal(t, map[core.VertexID]float64{
		n.dub: 0, n.lon: 100, n.par: 300, n.ber: 600,
	}, dist)
}

func TestRemovedEdgeReroutes(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	require.NoError(t, n.g.RemoveEdge(n.parBer))

	path, err := dijkstra.Path(n.g, n.dub, n.ber)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{n.dub, n.ber}, path)

	d, err := dijkstra.ShortestDistance(n.g, n.dub, n.ber)
	require.NoError(t, err)
	assert.Equal(t, 700.0, d)
}

func TestPathToSelf(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	path, err := dijkstra.Path(n.g, n.par, n.par)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{n.par}, path)

	d, err := dijkstra.ShortestDistance(n.g, n.par, n.par)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestUnreachable(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	// BER has no outgoing flights.
	path, err := dijkstra.Path(n.g, n.ber, n.dub)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, path)

	d, err := dijkstra.ShortestDistance(n.g, n.ber, n.dub)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	dist, err := dijkstra.Distances(n.g, n.ber)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[n.lon], 1))
	assert.Zero(t, dist[n.ber])
}

func TestAbsentTargetIsUnreachable(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	d, err := dijkstra.ShortestDistance(n.g, n.dub, 42)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	path, err := dijkstra.Path(n.g, n.dub, 42)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestValidation(t *testing.T) {
	_, err := dijkstra.Run(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.Path(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	n := europe(t, core.NewAdjacencyList[string]())
	_, err = dijkstra.Run(n.g, 99)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	require.NoError(t, n.g.RemoveVertex(n.lon))
	_, err = dijkstra.ShortestDistance(n.g, n.lon, n.ber)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestRunResult(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	res, err := dijkstra.Run(n.g, n.lon)
	require.NoError(t, err)

	assert.Equal(t, n.lon, res.Source())
	assert.Equal(t, 3, res.Settled())
	assert.False(t, res.Reachable(n.dub))
	assert.True(t, res.Reachable(n.ber))
	assert.Equal(t, 500.0, res.Distance(n.ber))
	assert.Equal(t, []core.VertexID{n.lon, n.par, n.ber}, res.PathTo(n.ber))
	assert.Empty(t, res.PathTo(n.dub))
	assert.False(t, res.Reachable(-1))
	assert.True(t, math.IsInf(res.Distance(1000), 1))
}

func TestWithTargetStopsEarly(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	res, err := dijkstra.Run(n.g, n.dub, dijkstra.WithTarget(n.lon))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Settled())
	assert.Equal(t, 100.0, res.Distance(n.lon))
	assert.False(t, res.Reachable(n.ber))
}

func TestWithMaxDistance(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	dist, err := dijkstra.Distances(n.g, n.dub, dijkstra.WithMaxDistance(300))
	require.NoError(t, err)
	assert.Equal(t, 300.0, dist[n.par])
	assert.True(t, math.IsInf(dist[n.ber], 1))

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestWithInfEdgeThreshold(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	// Legs of 300 km or more are walls: PAR→BER and DUB→BER both close.
	d, err := dijkstra.ShortestDistance(n.g, n.dub, n.ber, dijkstra.WithInfEdgeThreshold(300))
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	d, err = dijkstra.ShortestDistance(n.g, n.dub, n.ber, dijkstra.WithInfEdgeThreshold(301))
	require.NoError(t, err)
	assert.Equal(t, 600.0, d)

	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDecreaseKeyImprovesFrontier(t *testing.T) {
	// A is reached first at 10 via the direct edge, then improved to 3 via B.
	g := core.NewAdjacencyList[string]()
	s, a, b := g.InsertVertex("S"), g.InsertVertex("A"), g.InsertVertex("B")
	_, _ = g.InsertEdge(s, a, 10)
	_, _ = g.InsertEdge(s, b, 1)
	_, _ = g.InsertEdge(b, a, 2)

	res, err := dijkstra.Run(g, s)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Distance(a))
	assert.Equal(t, []core.VertexID{s, b, a}, res.PathTo(a))
}

func TestUndirectedAndSelfLoop(t *testing.T) {
	g := core.NewAdjacencyList[string](core.WithUndirected())
	a, b, c := g.InsertVertex("A"), g.InsertVertex("B"), g.InsertVertex("C")
	_, _ = g.InsertEdge(a, a, 0)
	_, _ = g.InsertEdge(a, b, 4)
	_, _ = g.InsertEdge(b, c, 1)

	path, err := dijkstra.Path(g, c, a)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{c, b, a}, path)
}

func TestZeroWeightAndTombstones(t *testing.T) {
	g := core.NewEdgeList[string]()
	a, gone, b := g.InsertVertex("A"), g.InsertVertex("X"), g.InsertVertex("B")
	_, _ = g.InsertEdge(a, b, 0)
	require.NoError(t, g.RemoveVertex(gone))

	dist, err := dijkstra.Distances(g, a)
	require.NoError(t, err)
	assert.Len(t, dist, 2)
	assert.Zero(t, dist[b])
}

func TestCompactSnapshotAgrees(t *testing.T) {
	n := europe(t, core.NewAdjacencyList[string]())
	snap, err := core.Freeze(n.g)
	require.NoError(t, err)

	want, err := dijkstra.Distances(n.g, n.dub)
	require.NoError(t, err)
	got, err := dijkstra.Distances(snap, n.dub)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
