// Package bfs provides breadth-first search over a core.Graph, answering
// "fewest hops" questions (minimum number of flights) independently of arc
// weights.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth(v): hops from start, and whether v was reached
//   - PathTo(v): the BFS-tree path from start to v
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterArc, e.g. to ignore
//     legs longer than some range.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns its arcs, so the
//	visit sequence is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V), in slices sized by Graph.Order()
//
// Usage
//
//	res, err := bfs.BFS(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterArc(func(from core.VertexID, a core.Arc) bool { return a.Weight < 1500 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (also
//     matches core.ErrUnknownVertex).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if Neighbors fails for any vertex.
//   - ErrNotReached           from PathTo for unreached vertices.
//   - Context errors and wrapped OnVisit errors.
package bfs
