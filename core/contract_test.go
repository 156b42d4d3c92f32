// Package core_test runs one behavioural contract against every WeightedGraph backing.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/skypath/core"
)

// ContractSuite exercises the WeightedGraph contract. newGraph is swapped per backing.
type ContractSuite struct {
	suite.Suite
	newGraph func(opts ...core.GraphOption) core.WeightedGraph[string]
}

func TestAdjacencyListContract(t *testing.T) {
	suite.Run(t, &ContractSuite{newGraph: func(opts ...core.GraphOption) core.WeightedGraph[string] {
		return core.NewAdjacencyList[string](opts...)
	}})
}

func TestEdgeListContract(t *testing.T) {
	suite.Run(t, &ContractSuite{newGraph: func(opts ...core.GraphOption) core.WeightedGraph[string] {
		return core.NewEdgeList[string](opts...)
	}})
}

// europe builds DUB→LON(100), LON→PAR(200), PAR→BER(300), DUB→BER(700).
func (s *ContractSuite) europe() (core.WeightedGraph[string], []core.VertexID) {
	g := s.newGraph()
	ids := []core.VertexID{
		g.InsertVertex("DUB"),
		g.InsertVertex("LON"),
		g.InsertVertex("PAR"),
		g.InsertVertex("BER"),
	}
	for _, e := range []struct {
		u, v int
		w    float64
	}{{0, 1, 100}, {1, 2, 200}, {2, 3, 300}, {0, 3, 700}} {
		_, err := g.InsertEdge(ids[e.u], ids[e.v], e.w)
		s.Require().NoError(err)
	}

	return g, ids
}

func (s *ContractSuite) TestInsertVertexAssignsDenseIDs() {
	g := s.newGraph()
	for i := 0; i < 5; i++ {
		s.Equal(core.VertexID(i), g.InsertVertex("v"))
	}
	s.Equal(5, g.Order())
	s.Equal(5, g.VertexCount())
	s.Equal([]core.VertexID{0, 1, 2, 3, 4}, g.Vertices())
}

func (s *ContractSuite) TestPayloadDoesNotAffectIdentity() {
	g := s.newGraph()
	a := g.InsertVertex("same")
	b := g.InsertVertex("same")
	s.NotEqual(a, b)

	p, err := g.Vertex(b)
	s.Require().NoError(err)
	s.Equal("same", p)
}

func (s *ContractSuite) TestInsertEdgeUnknownVertex() {
	g := s.newGraph()
	a := g.InsertVertex("A")

	_, err := g.InsertEdge(a, 42, 1)
	s.ErrorIs(err, core.ErrUnknownVertex)
	_, err = g.InsertEdge(-1, a, 1)
	s.ErrorIs(err, core.ErrUnknownVertex)
	s.Zero(g.EdgeCount())
}

func (s *ContractSuite) TestDuplicateEdgeRejected() {
	g, ids := s.europe()
	before := g.EdgeCount()

	_, err := g.InsertEdge(ids[0], ids[1], 55)
	s.ErrorIs(err, core.ErrDuplicateEdge)
	s.Equal(before, g.EdgeCount(), "failed insertion must not change the edge count")

	// The reverse direction is a different ordered pair in a directed graph.
	_, err = g.InsertEdge(ids[1], ids[0], 55)
	s.NoError(err)
}

func (s *ContractSuite) TestMultiEdgesAllowed() {
	g := s.newGraph(core.WithMultiEdges())
	a, b := g.InsertVertex("A"), g.InsertVertex("B")
	_, err := g.InsertEdge(a, b, 1)
	s.Require().NoError(err)
	_, err = g.InsertEdge(a, b, 2)
	s.Require().NoError(err)

	s.Equal(2, g.EdgeCount())
	deg, err := g.Degree(a)
	s.Require().NoError(err)
	s.Equal(2, deg)
}

func (s *ContractSuite) TestNeighborsAndDegrees() {
	g, ids := s.europe()

	arcs, err := g.Neighbors(ids[0])
	s.Require().NoError(err)
	s.Require().Len(arcs, 2)
	s.Equal(ids[1], arcs[0].To)
	s.Equal(100.0, arcs[0].Weight)
	s.Equal(ids[3], arcs[1].To)
	s.Equal(700.0, arcs[1].Weight)

	deg, err := g.Degree(ids[0])
	s.Require().NoError(err)
	s.Equal(2, deg)
	in, err := g.InDegree(ids[3])
	s.Require().NoError(err)
	s.Equal(2, in)
	in, err = g.InDegree(ids[0])
	s.Require().NoError(err)
	s.Zero(in)

	incoming, err := g.IncomingEdges(ids[3])
	s.Require().NoError(err)
	s.Len(incoming, 2)

	_, err = g.Neighbors(99)
	s.ErrorIs(err, core.ErrUnknownVertex)
	_, err = g.Degree(99)
	s.ErrorIs(err, core.ErrUnknownVertex)
}

func (s *ContractSuite) TestRemoveEdge() {
	g, ids := s.europe()
	e, ok := g.FindEdge(ids[2], ids[3])
	s.Require().True(ok)

	s.Require().NoError(g.RemoveEdge(e.ID))
	s.Equal(3, g.EdgeCount())
	_, ok = g.FindEdge(ids[2], ids[3])
	s.False(ok)
	_, err := g.Edge(e.ID)
	s.ErrorIs(err, core.ErrUnknownEdge)
	s.ErrorIs(g.RemoveEdge(e.ID), core.ErrUnknownEdge)

	// The pair can be connected again once the old edge is gone.
	id, err := g.InsertEdge(ids[2], ids[3], 1)
	s.Require().NoError(err)
	s.NotEqual(e.ID, id, "edge IDs are never reused")
}

func (s *ContractSuite) TestRemoveVertexCascades() {
	g, ids := s.europe()

	s.Require().NoError(g.RemoveVertex(ids[3]))
	s.False(g.HasVertex(ids[3]))
	s.Equal(3, g.VertexCount())
	s.Equal(4, g.Order(), "order keeps tombstoned slots")
	s.Equal(2, g.EdgeCount())
	for _, e := range g.Edges() {
		s.NotEqual(ids[3], e.From)
		s.NotEqual(ids[3], e.To)
	}
	deg, err := g.Degree(ids[0])
	s.Require().NoError(err)
	s.Equal(1, deg)

	s.ErrorIs(g.RemoveVertex(ids[3]), core.ErrUnknownVertex)
	_, err = g.Vertex(ids[3])
	s.ErrorIs(err, core.ErrUnknownVertex)
	s.Equal(core.VertexID(4), g.InsertVertex("NEW"), "vertex IDs are never reused")
}

func (s *ContractSuite) TestUndirectedSymmetry() {
	g := s.newGraph(core.WithUndirected())
	s.True(g.Undirected())
	a, b := g.InsertVertex("A"), g.InsertVertex("B")
	id, err := g.InsertEdge(a, b, 3)
	s.Require().NoError(err)

	back, err := g.Neighbors(b)
	s.Require().NoError(err)
	s.Require().Len(back, 1)
	s.Equal(a, back[0].To)
	s.Equal(id, back[0].Edge)
	s.Equal(1, g.EdgeCount())

	_, err = g.InsertEdge(b, a, 3)
	s.ErrorIs(err, core.ErrDuplicateEdge)

	s.Require().NoError(g.RemoveEdge(id))
	fwd, err := g.Neighbors(a)
	s.Require().NoError(err)
	s.Empty(fwd)
	back, err = g.Neighbors(b)
	s.Require().NoError(err)
	s.Empty(back)
}

func (s *ContractSuite) TestSelfLoop() {
	g := s.newGraph(core.WithUndirected())
	a := g.InsertVertex("A")
	_, err := g.InsertEdge(a, a, 0)
	s.Require().NoError(err)

	deg, err := g.Degree(a)
	s.Require().NoError(err)
	s.Equal(1, deg, "a loop appears once among the neighbors")
	s.Require().NoError(g.RemoveVertex(a))
	s.Zero(g.EdgeCount())
}

func (s *ContractSuite) TestEdgesAscendingByID() {
	g, _ := s.europe()
	edges := g.Edges()
	s.Require().Len(edges, 4)
	for i := 1; i < len(edges); i++ {
		s.Less(edges[i-1].ID, edges[i].ID)
	}
}

func TestEdgeOpposite(t *testing.T) {
	e := core.Edge{ID: 7, From: 1, To: 2, Weight: 1}
	v, err := e.Opposite(1)
	require.NoError(t, err)
	require.Equal(t, core.VertexID(2), v)
	v, err = e.Opposite(2)
	require.NoError(t, err)
	require.Equal(t, core.VertexID(1), v)
	_, err = e.Opposite(3)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	require.Equal(t, "e7(1→2, 1)", e.String())
}

func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(-1) })
}
