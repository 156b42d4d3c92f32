// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Capability interfaces shared by every backing.
// Policy:
//   - Searches depend on Graph only; builders and domain code on WeightedGraph.
//   - Signatures are identical across backings; only complexity differs.

package core

// Graph is the read-only capability consumed by the search packages.
type Graph interface {
	// Order returns one past the largest VertexID ever assigned. Scratch
	// slices of this length can be indexed by any VertexID of the graph.
	Order() int

	// HasVertex reports whether v is a live vertex.
	HasVertex(v VertexID) bool

	// Vertices returns the live vertices in ascending ID order.
	Vertices() []VertexID

	// Neighbors returns the arcs leaving v. The returned slice may alias
	// internal storage and must be treated as read-only; it is valid until
	// the next mutation of the graph.
	Neighbors(v VertexID) ([]Arc, error)
}

// WeightedGraph is the full mutable capability implemented by AdjacencyList
// and EdgeList.
type WeightedGraph[P any] interface {
	Graph

	// InsertVertex stores payload under a fresh VertexID. Never fails.
	InsertVertex(payload P) VertexID

	// InsertEdge adds u→v with weight w (and v→u traversal in undirected mode).
	// Errors: ErrUnknownVertex, ErrDuplicateEdge.
	InsertEdge(u, v VertexID, w float64) (EdgeID, error)

	// RemoveVertex deletes v and every edge incident to it.
	// Errors: ErrUnknownVertex.
	RemoveVertex(v VertexID) error

	// RemoveEdge deletes edge e. Errors: ErrUnknownEdge.
	RemoveEdge(e EdgeID) error

	// Degree returns the number of arcs leaving v. Errors: ErrUnknownVertex.
	Degree(v VertexID) (int, error)

	// InDegree returns the number of arcs entering v. Errors: ErrUnknownVertex.
	InDegree(v VertexID) (int, error)

	// Vertex returns the payload of v. Errors: ErrUnknownVertex.
	Vertex(v VertexID) (P, error)

	// Edge returns edge e. Errors: ErrUnknownEdge.
	Edge(e EdgeID) (Edge, error)

	// FindEdge returns the first edge traversable from u to v, if any.
	FindEdge(u, v VertexID) (Edge, bool)

	// Edges returns all live edges in ascending ID order.
	Edges() []Edge

	// IncomingEdges returns the edges traversable into v, ascending by ID.
	// Errors: ErrUnknownVertex.
	IncomingEdges(v VertexID) ([]Edge, error)

	// VertexCount returns the number of live vertices.
	VertexCount() int

	// EdgeCount returns the number of live edges.
	EdgeCount() int

	// Undirected reports whether insertion is symmetric.
	Undirected() bool
}

// Compile-time capability checks.
var (
	_ WeightedGraph[string] = (*AdjacencyList[string])(nil)
	_ WeightedGraph[string] = (*EdgeList[string])(nil)
	_ Graph                 = (*Compact)(nil)
)
