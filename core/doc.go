// Package core provides the weighted directed graph used by every search in
// skypath, behind a small capability interface with interchangeable backings.
//
// The graph G = (V,E) is defined by:
//
//   - Vertices identified by a dense VertexID assigned at insertion time
//     (0, 1, 2, …) and never reused, each carrying an immutable payload P.
//   - Directed edges (From, To, Weight) with Weight ≥ 0. Negative weights
//     are outside the contract and are not validated.
//   - Optional symmetric insertion (WithUndirected): one edge, traversable
//     both ways.
//   - Optional parallel edges (WithMultiEdges); by default a second edge
//     between the same pair fails with ErrDuplicateEdge.
//
// Capabilities:
//
//	Graph             – read side consumed by dijkstra, astar and bfs:
//	                    Order, HasVertex, Vertices, Neighbors.
//	WeightedGraph[P]  – Graph plus InsertVertex, InsertEdge, RemoveVertex,
//	                    RemoveEdge, Degree and the catalog queries.
//
// Backings:
//
//	NewAdjacencyList[P]() – default. Outgoing arcs per vertex.
//	    InsertEdge O(1) amortized, Neighbors O(1) (slice view, no allocation),
//	    RemoveEdge O(deg), RemoveVertex O(Σ deg of touched vertices).
//	NewEdgeList[P]()      – flat edge slice. InsertEdge O(E) (duplicate scan),
//	    Neighbors/Degree/RemoveVertex/RemoveEdge O(E). Fine for small graphs.
//	Freeze(g)             – compressed sparse row snapshot of any Graph;
//	    read-only, Neighbors O(1) slice view with the best locality.
//
// Because VertexIDs are dense, searches keep their scratch state in slices
// of length Order() instead of maps.
//
// Concurrency: no internal synchronization. Concurrent reads (several
// searches at once) are safe only while nobody mutates the graph; mutation
// must never overlap an in-flight search.
//
// Errors:
//
//	ErrUnknownVertex – the VertexID is not a live vertex of the graph.
//	ErrUnknownEdge   – the EdgeID is not a live edge, or no edge joins two path vertices.
//	ErrDuplicateEdge – the pair is already connected and multi-edges are disabled.
package core
