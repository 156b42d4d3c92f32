// Package skypath is an in-memory toolkit for cheapest-route search over
// weighted directed graphs, built around flight networks.
//
// What is inside:
//
//	core/      WeightedGraph over adjacency-list and edge-list backings,
//	           plus a frozen CSR snapshot (Compact) for read-only search
//	pqueue/    IndexedMinHeap: binary min-heap with O(1) membership and
//	           O(log n) decrease-key
//	dijkstra/  single-source cheapest paths with target, distance and
//	           edge-weight cut-offs
//	astar/     goal-directed search with a caller-supplied heuristic
//	bfs/       fewest-hop traversal with hooks and context cancellation
//	builder/   deterministic synthetic graphs (paths, grids, random fan-out)
//	airport/   airport codes over a graph, YAML networks and the
//	           great-circle heuristic
//
// A tiny network:
//
//	DUB ──100──▶ LON ──200──▶ PAR ──300──▶ BER
//	 └──────────────────700──────────────────▲
//
// The cheapest DUB → BER route is DUB, LON, PAR, BER at 600; dropping
// PAR → BER reroutes to the direct 700 flight.
//
// Searches are single-threaded and own their scratch state, so concurrent
// searches over a graph nobody mutates are safe. Graphs carry no locks.
//
// The skypath command (cmd/skypath) exposes route, distances, hops and
// bench on top of these packages.
package skypath
