// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: AdjacencyList, the default WeightedGraph backing.
// Storage:
//   - out[v]      : arcs leaving v, in insertion order (the search hot path).
//   - incident[v] : IDs of every edge touching v, ascending (cascade removal).
//   - pairs       : (u,v) → EdgeID for O(1) duplicate detection (simple graphs only).
// Determinism:
//   - Neighbors, Edges and IncomingEdges follow insertion order / ascending IDs.

package core

import (
	"fmt"
	"slices"
)

// pairKey identifies an ordered pair, or an unordered one once normalized.
type pairKey struct{ u, v VertexID }

// AdjacencyList is a WeightedGraph storing outgoing arcs per vertex.
// The zero value is not usable; construct with NewAdjacencyList.
type AdjacencyList[P any] struct {
	opts     graphOptions
	vertices vertexTable[P]

	out      [][]Arc
	incident [][]EdgeID

	edges     []Edge // indexed by EdgeID
	edgeLive  []bool
	liveEdges int

	pairs map[pairKey]EdgeID // nil when multi-edges are allowed
}

// NewAdjacencyList creates an empty adjacency-list graph.
// By default the graph is directed and rejects parallel edges.
// Complexity: O(capacity).
func NewAdjacencyList[P any](opts ...GraphOption) *AdjacencyList[P] {
	o := resolveOptions(opts)
	g := &AdjacencyList[P]{
		opts:     o,
		vertices: newVertexTable[P](o.capacity),
		out:      make([][]Arc, 0, o.capacity),
		incident: make([][]EdgeID, 0, o.capacity),
	}
	if !o.multi {
		g.pairs = make(map[pairKey]EdgeID, o.capacity)
	}

	return g
}

// key normalizes (u,v) for the pair index; undirected pairs are unordered.
func (g *AdjacencyList[P]) key(u, v VertexID) pairKey {
	if g.opts.undirected && v < u {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// InsertVertex stores payload under a fresh VertexID.
// Complexity: O(1) amortized.
func (g *AdjacencyList[P]) InsertVertex(payload P) VertexID {
	g.out = append(g.out, nil)
	g.incident = append(g.incident, nil)

	return g.vertices.insert(payload)
}

// InsertEdge adds an edge u→v with weight w.
//
// Steps:
//  1. Both endpoints must be live (ErrUnknownVertex).
//  2. Without multi-edges, an existing pair fails with ErrDuplicateEdge and
//     leaves the graph untouched.
//  3. Append the arc to out[u], and the mirror arc to out[v] when undirected.
//
// Complexity: O(1) amortized.
func (g *AdjacencyList[P]) InsertEdge(u, v VertexID, w float64) (EdgeID, error) {
	if err := g.vertices.check(u); err != nil {
		return NoEdge, err
	}
	if err := g.vertices.check(v); err != nil {
		return NoEdge, err
	}
	k := g.key(u, v)
	if g.pairs != nil {
		if dup, ok := g.pairs[k]; ok {
			return NoEdge, fmt.Errorf("%w: %d→%d already joined by edge %d", ErrDuplicateEdge, u, v, dup)
		}
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: w})
	g.edgeLive = append(g.edgeLive, true)
	g.liveEdges++

	g.out[u] = append(g.out[u], Arc{To: v, Weight: w, Edge: id})
	g.incident[u] = append(g.incident[u], id)
	if u != v {
		if g.opts.undirected {
			g.out[v] = append(g.out[v], Arc{To: u, Weight: w, Edge: id})
		}
		g.incident[v] = append(g.incident[v], id)
	}
	if g.pairs != nil {
		g.pairs[k] = id
	}

	return id, nil
}

// RemoveEdge deletes edge e and its mirror arc.
// Complexity: O(deg(From) + deg(To)).
func (g *AdjacencyList[P]) RemoveEdge(e EdgeID) error {
	if !g.edgeExists(e) {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}
	g.unlink(e)

	return nil
}

// unlink detaches a live edge from every index. Caller guarantees liveness.
func (g *AdjacencyList[P]) unlink(e EdgeID) {
	edge := g.edges[e]
	byEdge := func(a Arc) bool { return a.Edge == e }
	isEdge := func(id EdgeID) bool { return id == e }

	g.out[edge.From] = slices.DeleteFunc(g.out[edge.From], byEdge)
	g.incident[edge.From] = slices.DeleteFunc(g.incident[edge.From], isEdge)
	if edge.From != edge.To {
		if g.opts.undirected {
			g.out[edge.To] = slices.DeleteFunc(g.out[edge.To], byEdge)
		}
		g.incident[edge.To] = slices.DeleteFunc(g.incident[edge.To], isEdge)
	}
	if g.pairs != nil {
		delete(g.pairs, g.key(edge.From, edge.To))
	}
	g.edgeLive[e] = false
	g.liveEdges--
}

// RemoveVertex deletes v and cascades to every incident edge.
// Complexity: O(Σ deg) over v and its neighbors.
func (g *AdjacencyList[P]) RemoveVertex(v VertexID) error {
	if err := g.vertices.check(v); err != nil {
		return err
	}
	// unlink rewrites incident[v], so iterate over a copy.
	for _, e := range slices.Clone(g.incident[v]) {
		g.unlink(e)
	}
	g.out[v] = nil
	g.incident[v] = nil
	g.vertices.tombstone(v)

	return nil
}

// Neighbors returns the arcs leaving v as a read-only view of internal storage.
// Complexity: O(1), no allocation.
func (g *AdjacencyList[P]) Neighbors(v VertexID) ([]Arc, error) {
	if err := g.vertices.check(v); err != nil {
		return nil, err
	}
	arcs := g.out[v]

	// Cap the view so a caller's append cannot overwrite neighbouring storage.
	return arcs[:len(arcs):len(arcs)], nil
}

// Degree returns the out-degree of v. Complexity: O(1).
func (g *AdjacencyList[P]) Degree(v VertexID) (int, error) {
	if err := g.vertices.check(v); err != nil {
		return 0, err
	}

	return len(g.out[v]), nil
}

// InDegree returns the number of arcs entering v. Complexity: O(deg(v)).
func (g *AdjacencyList[P]) InDegree(v VertexID) (int, error) {
	if err := g.vertices.check(v); err != nil {
		return 0, err
	}
	if g.opts.undirected {
		return len(g.out[v]), nil
	}
	n := 0
	for _, e := range g.incident[v] {
		if g.edges[e].To == v {
			n++
		}
	}

	return n, nil
}

// IncomingEdges returns the edges traversable into v, ascending by ID.
// Complexity: O(deg(v)).
func (g *AdjacencyList[P]) IncomingEdges(v VertexID) ([]Edge, error) {
	if err := g.vertices.check(v); err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(g.incident[v]))
	for _, e := range g.incident[v] {
		if edge := g.edges[e]; g.opts.undirected || edge.To == v {
			out = append(out, edge)
		}
	}

	return out, nil
}

// FindEdge returns the first edge traversable from u to v.
// Complexity: O(1) for simple graphs, O(deg(u)) with multi-edges.
func (g *AdjacencyList[P]) FindEdge(u, v VertexID) (Edge, bool) {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return Edge{}, false
	}
	if g.pairs != nil {
		id, ok := g.pairs[g.key(u, v)]
		if !ok {
			return Edge{}, false
		}

		return g.edges[id], true
	}
	for _, a := range g.out[u] {
		if a.To == v {
			return g.edges[a.Edge], true
		}
	}

	return Edge{}, false
}

// Edge returns edge e. Complexity: O(1).
func (g *AdjacencyList[P]) Edge(e EdgeID) (Edge, error) {
	if !g.edgeExists(e) {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}

	return g.edges[e], nil
}

func (g *AdjacencyList[P]) edgeExists(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edgeLive) && g.edgeLive[e]
}

// Edges returns all live edges ascending by ID. Complexity: O(E) over all IDs ever issued.
func (g *AdjacencyList[P]) Edges() []Edge {
	out := make([]Edge, 0, g.liveEdges)
	for i, ok := range g.edgeLive {
		if ok {
			out = append(out, g.edges[i])
		}
	}

	return out
}

// Vertex returns the payload stored for v. Complexity: O(1).
func (g *AdjacencyList[P]) Vertex(v VertexID) (P, error) { return g.vertices.get(v) }

// HasVertex reports whether v is live. Complexity: O(1).
func (g *AdjacencyList[P]) HasVertex(v VertexID) bool { return g.vertices.has(v) }

// Vertices returns live vertices ascending. Complexity: O(Order).
func (g *AdjacencyList[P]) Vertices() []VertexID { return g.vertices.ids() }

// Order returns one past the largest VertexID ever assigned.
func (g *AdjacencyList[P]) Order() int { return g.vertices.order() }

// VertexCount returns the number of live vertices.
func (g *AdjacencyList[P]) VertexCount() int { return g.vertices.live }

// EdgeCount returns the number of live edges.
func (g *AdjacencyList[P]) EdgeCount() int { return g.liveEdges }

// Undirected reports whether insertion is symmetric.
func (g *AdjacencyList[P]) Undirected() bool { return g.opts.undirected }
