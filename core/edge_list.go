// SPDX-License-Identifier: MIT
//
// File: edge_list.go
// Role: EdgeList, the flat-edge WeightedGraph backing.
// Storage:
//   - edges: live edges only, kept ascending by EdgeID (append + ordered delete).
// Complexity:
//   - Every per-vertex query scans all edges: O(E). Intended for small graphs.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// EdgeList is a WeightedGraph that keeps a single slice of edges.
// The zero value is not usable; construct with NewEdgeList.
type EdgeList[P any] struct {
	opts     graphOptions
	vertices vertexTable[P]
	edges    []Edge
	nextEdge EdgeID
}

// NewEdgeList creates an empty edge-list graph.
// By default the graph is directed and rejects parallel edges.
func NewEdgeList[P any](opts ...GraphOption) *EdgeList[P] {
	o := resolveOptions(opts)

	return &EdgeList[P]{
		opts:     o,
		vertices: newVertexTable[P](o.capacity),
	}
}

// connects reports whether e is traversable from u to v.
func (g *EdgeList[P]) connects(e Edge, u, v VertexID) bool {
	if e.From == u && e.To == v {
		return true
	}

	return g.opts.undirected && e.From == v && e.To == u
}

// InsertVertex stores payload under a fresh VertexID. Complexity: O(1) amortized.
func (g *EdgeList[P]) InsertVertex(payload P) VertexID { return g.vertices.insert(payload) }

// InsertEdge adds u→v with weight w.
// Complexity: O(E) for the duplicate scan, O(1) amortized otherwise.
func (g *EdgeList[P]) InsertEdge(u, v VertexID, w float64) (EdgeID, error) {
	if err := g.vertices.check(u); err != nil {
		return NoEdge, err
	}
	if err := g.vertices.check(v); err != nil {
		return NoEdge, err
	}
	if !g.opts.multi {
		if e, ok := g.FindEdge(u, v); ok {
			return NoEdge, fmt.Errorf("%w: %d→%d already joined by edge %d", ErrDuplicateEdge, u, v, e.ID)
		}
	}
	id := g.nextEdge
	g.nextEdge++
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: w})

	return id, nil
}

// index locates e by binary search; edges stay sorted by ID.
func (g *EdgeList[P]) index(e EdgeID) (int, bool) {
	return slices.BinarySearchFunc(g.edges, e, func(x Edge, id EdgeID) int { return cmp.Compare(x.ID, id) })
}

// RemoveEdge deletes edge e. Complexity: O(E).
func (g *EdgeList[P]) RemoveEdge(e EdgeID) error {
	i, ok := g.index(e)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}
	g.edges = slices.Delete(g.edges, i, i+1)

	return nil
}

// RemoveVertex deletes v and every incident edge. Complexity: O(E).
func (g *EdgeList[P]) RemoveVertex(v VertexID) error {
	if err := g.vertices.check(v); err != nil {
		return err
	}
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.From == v || e.To == v })
	g.vertices.tombstone(v)

	return nil
}

// Neighbors returns a freshly allocated slice of arcs leaving v. Complexity: O(E).
func (g *EdgeList[P]) Neighbors(v VertexID) ([]Arc, error) {
	if err := g.vertices.check(v); err != nil {
		return nil, err
	}
	var arcs []Arc
	for _, e := range g.edges {
		switch {
		case e.From == v:
			arcs = append(arcs, Arc{To: e.To, Weight: e.Weight, Edge: e.ID})
		case g.opts.undirected && e.To == v:
			arcs = append(arcs, Arc{To: e.From, Weight: e.Weight, Edge: e.ID})
		}
	}

	return arcs, nil
}

// Degree returns the out-degree of v. Complexity: O(E).
func (g *EdgeList[P]) Degree(v VertexID) (int, error) {
	if err := g.vertices.check(v); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range g.edges {
		if e.From == v || (g.opts.undirected && e.To == v) {
			n++
		}
	}

	return n, nil
}

// InDegree returns the number of arcs entering v. Complexity: O(E).
func (g *EdgeList[P]) InDegree(v VertexID) (int, error) {
	if g.opts.undirected {
		return g.Degree(v)
	}
	if err := g.vertices.check(v); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range g.edges {
		if e.To == v {
			n++
		}
	}

	return n, nil
}

// IncomingEdges returns the edges traversable into v. Complexity: O(E).
func (g *EdgeList[P]) IncomingEdges(v VertexID) ([]Edge, error) {
	if err := g.vertices.check(v); err != nil {
		return nil, err
	}
	var out []Edge
	for _, e := range g.edges {
		if e.To == v || (g.opts.undirected && e.From == v) {
			out = append(out, e)
		}
	}

	return out, nil
}

// FindEdge returns the first edge traversable from u to v. Complexity: O(E).
func (g *EdgeList[P]) FindEdge(u, v VertexID) (Edge, bool) {
	for _, e := range g.edges {
		if g.connects(e, u, v) {
			return e, true
		}
	}

	return Edge{}, false
}

// Edge returns edge e. Complexity: O(log E).
func (g *EdgeList[P]) Edge(e EdgeID) (Edge, error) {
	i, ok := g.index(e)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}

	return g.edges[i], nil
}

// Edges returns a copy of all edges ascending by ID. Complexity: O(E).
func (g *EdgeList[P]) Edges() []Edge { return slices.Clone(g.edges) }

// Vertex returns the payload stored for v.
func (g *EdgeList[P]) Vertex(v VertexID) (P, error) { return g.vertices.get(v) }

// HasVertex reports whether v is live.
func (g *EdgeList[P]) HasVertex(v VertexID) bool { return g.vertices.has(v) }

// Vertices returns live vertices ascending.
func (g *EdgeList[P]) Vertices() []VertexID { return g.vertices.ids() }

// Order returns one past the largest VertexID ever assigned.
func (g *EdgeList[P]) Order() int { return g.vertices.order() }

// VertexCount returns the number of live vertices.
func (g *EdgeList[P]) VertexCount() int { return g.vertices.live }

// EdgeCount returns the number of live edges.
func (g *EdgeList[P]) EdgeCount() int { return len(g.edges) }

// Undirected reports whether insertion is symmetric.
func (g *EdgeList[P]) Undirected() bool { return g.opts.undirected }
