// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Dijkstra engine (indexed heap, decrease-key relaxation) and
//       the point-to-point convenience entry points.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/pqueue"
)

// Run computes shortest distances from source to every reachable vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a live vertex (wraps core.ErrUnknownVertex).
//
// Complexity: O((V + E) log V) time, O(V) space.
func Run(g core.Graph, source core.VertexID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrUnknownVertex)
	}

	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Distances returns the distance from source to every live vertex of g,
// +Inf for unreachable ones.
func Distances(g core.Graph, source core.VertexID, opts ...Option) (map[core.VertexID]float64, error) {
	res, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Distances(), nil
}

// ShortestDistance returns the cheapest cost from source to target, or +Inf
// when target is unreachable or not a vertex of g. The run stops as soon as
// target is settled.
func ShortestDistance(g core.Graph, source, target core.VertexID, opts ...Option) (float64, error) {
	res, err := pointToPoint(g, source, target, opts)
	if err != nil || res == nil {
		return math.Inf(1), err
	}

	return res.Distance(target), nil
}

// Path returns one cheapest vertex sequence from source to goal, inclusive.
// It is empty when goal is unreachable or absent, and [source] when
// goal == source.
func Path(g core.Graph, source, goal core.VertexID, opts ...Option) ([]core.VertexID, error) {
	res, err := pointToPoint(g, source, goal, opts)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return []core.VertexID{}, nil
	}

	return res.PathTo(goal), nil
}

// pointToPoint runs with an early exit at target. A nil Result with a nil
// error means target is not a vertex of g.
func pointToPoint(g core.Graph, source, target core.VertexID, opts []Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrUnknownVertex)
	}
	if !g.HasVertex(target) {
		return nil, nil
	}

	return Run(g, source, append(opts[:len(opts):len(opts)], WithTarget(target))...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph
	options Options
	res     *Result
	pq      *pqueue.IndexedMinHeap[core.VertexID]
}

// newRunner sizes the scratch slices by g.Order() and queues the source at 0.
func newRunner(g core.Graph, source core.VertexID, cfg Options) *runner {
	n := g.Order()
	res := &Result{
		g:       g,
		source:  source,
		dist:    make([]float64, n),
		prev:    make([]core.VertexID, n),
		settled: make([]bool, n),
	}
	for i := range res.dist {
		res.dist[i] = math.Inf(1)
		res.prev[i] = core.NoVertex
	}
	res.dist[source] = 0

	pq := pqueue.New[core.VertexID](n)
	_ = pq.Insert(source, 0) // fresh heap, non-negative key

	return &runner{g: g, options: cfg, res: res, pq: pq}
}

// process extracts the closest frontier vertex until the queue is empty,
// the target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, d, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if d > r.options.MaxDistance {
			break
		}
		r.res.settled[u] = true
		r.res.count++
		if u == r.options.Target {
			break
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every outgoing arc of u to its head vertex.
func (r *runner) relax(u core.VertexID) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	dist, prev, settled := r.res.dist, r.res.prev, r.res.settled
	du := dist[u]
	for _, a := range arcs {
		if a.Weight >= r.options.InfEdgeThreshold || settled[a.To] {
			continue
		}
		cand := du + a.Weight
		if !(cand < dist[a.To]) || cand > r.options.MaxDistance {
			continue
		}
		dist[a.To] = cand
		prev[a.To] = u
		if !r.pq.DecreaseKey(a.To, cand) {
			if err = r.pq.Insert(a.To, cand); err != nil {
				return fmt.Errorf("dijkstra: queue %d: %w", a.To, err)
			}
		}
	}

	return nil
}
