// Package astar implements goal-directed shortest paths over core.Graph.
//
// A* runs the same frontier/settled state machine as package dijkstra but
// orders the queue by f(v) = g(v) + h(v), where g is the best known cost from
// the source and h a caller-supplied estimate of the remaining cost to the
// goal. The search returns as soon as the goal is extracted.
//
// Heuristics:
//
//   - Zero makes A* expand exactly like Dijkstra.
//   - An admissible h (never overestimates) yields optimal paths.
//   - A consistent h (h(u) ≤ w(u,v) + h(v)) also guarantees that a settled
//     vertex never improves. With an inconsistent h, a settled vertex whose
//     cost drops is reopened and expanded again. Admissibility and
//     consistency are the caller's responsibility and are not checked.
//
// API:
//
//	Search(g, source, goal, h, opts...)  → *Result{Path, Cost, Expanded}
//	FindPath(g, source, goal, h)         → []VertexID, empty when unreachable
//	Distances(g, source, h)              → g-scores of every live vertex
//
// Errors: ErrNilGraph, ErrNilHeuristic, and a wrapped core.ErrUnknownVertex
// for an absent source. An unreachable or absent goal is a Result with an
// empty Path and Cost +Inf.
package astar
