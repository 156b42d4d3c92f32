// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID/EdgeID, Arc, Edge, Vertex, sentinel errors and graph options.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex absent from the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced an edge absent from the graph.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrDuplicateEdge indicates an edge between an already-connected pair
	// when multi-edges are disabled.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// VertexID identifies a vertex within one graph. IDs are assigned densely
// from 0 in insertion order and are never reused, even after removal.
type VertexID int

// NoVertex marks the absence of a vertex (e.g. the predecessor of a source).
const NoVertex VertexID = -1

// EdgeID identifies an edge within one graph; dense and never reused.
type EdgeID int

// NoEdge marks the absence of an edge.
const NoEdge EdgeID = -1

// Arc is one traversable direction of an edge as seen from its tail vertex.
// It is the record Neighbors hands to the searches.
type Arc struct {
	// To is the head vertex reached by following the arc.
	To VertexID

	// Weight is the non-negative traversal cost.
	Weight float64

	// Edge is the edge this arc belongs to.
	Edge EdgeID
}

// Edge is a weighted connection From→To. In an undirected graph the same
// Edge is also traversable To→From.
type Edge struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	Weight float64
}

// Opposite returns the endpoint of e that is not v.
// It fails with ErrUnknownVertex when v is not incident to e.
func (e Edge) Opposite(v VertexID) (VertexID, error) {
	switch v {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	}

	return NoVertex, fmt.Errorf("%w: %d is not an endpoint of edge %d", ErrUnknownVertex, v, e.ID)
}

// String renders the edge as "e<ID>(<From>→<To>, <Weight>)".
func (e Edge) String() string {
	return fmt.Sprintf("e%d(%d→%d, %g)", e.ID, e.From, e.To, e.Weight)
}

// Vertex couples an identity with its payload. Equality is decided by ID alone.
type Vertex[P any] struct {
	ID      VertexID
	Payload P
}

// GraphOption configures a graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	undirected bool // symmetric insertion
	multi      bool // allow parallel edges
	capacity   int  // expected vertex count
}

// WithUndirected makes InsertEdge symmetric: the new edge is traversable in
// both directions and counts once towards EdgeCount.
func WithUndirected() GraphOption {
	return func(o *graphOptions) { o.undirected = true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
func WithMultiEdges() GraphOption {
	return func(o *graphOptions) { o.multi = true }
}

// WithCapacity preallocates room for n vertices.
// Panics if n < 0.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *graphOptions) { o.capacity = n }
}

func resolveOptions(opts []GraphOption) graphOptions {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
