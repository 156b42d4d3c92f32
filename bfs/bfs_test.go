package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/skypath/bfs"
	"github.com/katalvlaran/skypath/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewAdjacencyList[string]()
	_, err := bfs.BFS(g, 3)
	if !errors.Is(err, bfs.ErrStartVertexNotFound) || !errors.Is(err, core.ErrUnknownVertex) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	a := g.InsertVertex("A")
	if _, err = bfs.BFS(g, a, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewAdjacencyList[string]()
	a := g.InsertVertex("A")
	res, err := bfs.BFS(g, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.VertexID{a}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d, ok := res.Depth(a); !ok || d != 0 {
		t.Errorf("Depth(A) = %d,%v; want 0,true", d, ok)
	}
}

// TestFewestHopsIgnoresWeights: the cheap route has three legs, the expensive
// one a single leg; BFS prefers the single leg.
func TestFewestHopsIgnoresWeights(t *testing.T) {
	g := core.NewAdjacencyList[string]()
	dub, lon, par, ber := g.InsertVertex("DUB"), g.InsertVertex("LON"), g.InsertVertex("PAR"), g.InsertVertex("BER")
	_, _ = g.InsertEdge(dub, lon, 100)
	_, _ = g.InsertEdge(lon, par, 200)
	_, _ = g.InsertEdge(par, ber, 300)
	_, _ = g.InsertEdge(dub, ber, 700)

	res, err := bfs.BFS(g, dub)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(ber)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.VertexID{dub, ber}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(BER) = %v; want %v", path, want)
	}
	if d, _ := res.Depth(par); d != 2 {
		t.Errorf("Depth(PAR) = %d; want 2", d)
	}

	// Ignoring legs of 500 km and more forces the three-hop route.
	res, err = bfs.BFS(g, dub, bfs.WithFilterArc(func(_ core.VertexID, a core.Arc) bool { return a.Weight < 500 }))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Depth(ber); d != 3 {
		t.Errorf("filtered Depth(BER) = %d; want 3", d)
	}

	// Nothing reaches DUB.
	if _, err = res.PathTo(dub + 100); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo out of range: want ErrNotReached, got %v", err)
	}
	res, _ = bfs.BFS(g, ber)
	if _, err = res.PathTo(dub); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(DUB) from BER: want ErrNotReached, got %v", err)
	}
}

// TestCycleAndDepths covers an undirected ring and checks layering.
func TestCycleAndDepths(t *testing.T) {
	g := core.NewAdjacencyList[string](core.WithUndirected())
	a, b, c, d := g.InsertVertex("A"), g.InsertVertex("B"), g.InsertVertex("C"), g.InsertVertex("D")
	_, _ = g.InsertEdge(a, b, 1)
	_, _ = g.InsertEdge(b, c, 1)
	_, _ = g.InsertEdge(c, d, 1)
	_, _ = g.InsertEdge(d, a, 1)

	res, err := bfs.BFS(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.VertexID{a, b, d, c}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if dc, _ := res.Depth(c); dc != 2 {
		t.Errorf("Depth(C) = %d; want 2", dc)
	}
}

// TestMaxDepthAndHooks limits the search to one hop and records hook calls.
func TestMaxDepthAndHooks(t *testing.T) {
	g := core.NewEdgeList[string]()
	a, b, c := g.InsertVertex("A"), g.InsertVertex("B"), g.InsertVertex("C")
	_, _ = g.InsertEdge(a, b, 1)
	_, _ = g.InsertEdge(b, c, 1)

	var enq, deq []core.VertexID
	res, err := bfs.BFS(g, a,
		bfs.WithMaxDepth(1),
		bfs.WithOnEnqueue(func(v core.VertexID, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v core.VertexID, _ int) { deq = append(deq, v) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth(c); ok {
		t.Error("C lies beyond MaxDepth")
	}
	if want := []core.VertexID{a, b}; !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(deq, want) {
		t.Errorf("hooks enq=%v deq=%v; want %v", enq, deq, want)
	}
}

// TestOnVisitAbortAndCancel checks both early-exit paths.
func TestOnVisitAbortAndCancel(t *testing.T) {
	g := core.NewAdjacencyList[string]()
	a, b := g.InsertVertex("A"), g.InsertVertex("B")
	_, _ = g.InsertEdge(a, b, 1)

	stop := errors.New("stop")
	_, err := bfs.BFS(g, a, bfs.WithOnVisit(func(v core.VertexID, _ int) error {
		if v == b {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, a, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}
