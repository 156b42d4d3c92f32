// Package dijkstra implements uniform-cost shortest paths over core.Graph with
// non-negative arc weights.
//
// Overview:
//
//   - Every vertex moves through three states: unvisited (distance +Inf, not
//     in the queue), frontier (in the queue with a tentative distance) and
//     settled (extracted; its distance is final).
//   - Only the source is queued up front. Relaxing arc (u, v, w) computes
//     dist[u] + w and, when strictly better, updates dist[v] and prev[v] and
//     either inserts v or lowers its key in a pqueue.IndexedMinHeap. The
//     queue therefore never holds more than one entry per vertex.
//   - Scratch state is a set of slices indexed by VertexID and sized by
//     Graph.Order(), owned by one run.
//
// When to use:
//
//   - Exact cheapest routes in a static weighted network (flight legs,
//     road segments, link costs).
//   - As the reference answer for goal-directed searches; A* with a zero
//     heuristic must agree with it.
//
// API:
//
//	Run(g, source, opts...)                   → *Result (all reachable vertices)
//	Distances(g, source, opts...)             → map[VertexID]float64, +Inf when unreachable
//	ShortestDistance(g, source, target, ...)  → float64, +Inf when unreachable or absent
//	Path(g, source, goal, opts...)            → []VertexID, empty when unreachable
//
// Options:
//
//   - WithTarget(v):            stop as soon as v is settled.
//   - WithMaxDistance(d):       never settle a vertex farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t):  treat arcs with weight ≥ t as impassable (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrNilGraph:          g is nil.
//   - core.ErrUnknownVertex: the source is not a live vertex (wrapped).
//
// Unreachable targets are reported as +Inf and empty paths, never as errors.
// Negative weights are not detected; results on such graphs are undefined.
//
// Thread safety:
//
//   - Concurrent runs over a graph nobody mutates are safe; each run owns its
//     scratch state. Mutating the graph during a run is a caller bug.
package dijkstra
