package core

import (
	"fmt"
	"math"
)

// PathWeight returns the total cost of walking path in g, taking the
// cheapest arc between each consecutive pair.
//
// An empty path denotes "unreachable" and costs +Inf; a single vertex costs 0.
// Errors: ErrUnknownVertex for a dead path vertex, ErrUnknownEdge when two
// consecutive vertices are not joined.
//
// Complexity: O(Σ deg) over the path vertices.
func PathWeight(g Graph, path []VertexID) (float64, error) {
	if len(path) == 0 {
		return math.Inf(1), nil
	}
	if !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, path[0])
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		arcs, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		best, found := math.Inf(1), false
		for _, a := range arcs {
			if a.To == v && (!found || a.Weight < best) {
				best, found = a.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: no arc %d→%d", ErrUnknownEdge, u, v)
		}
		total += best
	}

	return total, nil
}
