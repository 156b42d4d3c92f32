// SPDX-License-Identifier: MIT
//
// File: astar.go
// Role: A* engine over the indexed heap, plus FindPath and Distances.

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/pqueue"
)

// Search finds a cheapest path from source to goal guided by h.
//
// Validation order: ErrNilGraph, ErrNilHeuristic, unknown source.
// Complexity: O((V + E) log V) worst case; fewer expansions with a
// tighter heuristic.
func Search(g core.Graph, source, goal core.VertexID, h Heuristic, opts ...Option) (*Result, error) {
	s, err := newSearch(g, source, h, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(goal) {
		return &Result{Path: []core.VertexID{}, Cost: math.Inf(1)}, nil
	}
	if err = s.run(goal); err != nil {
		return nil, err
	}

	res := &Result{Path: []core.VertexID{}, Cost: math.Inf(1), Expanded: s.expanded}
	if s.closed[goal] {
		res.Path = s.path(goal)
		res.Cost = s.gScore[goal]
	}

	return res, nil
}

// FindPath returns only the vertex sequence of Search.
func FindPath(g core.Graph, source, goal core.VertexID, h Heuristic) ([]core.VertexID, error) {
	res, err := Search(g, source, goal, h)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Distances drains the queue from source and returns the g-score of every
// live vertex, +Inf for unreachable ones. With a consistent heuristic these
// equal the Dijkstra distances.
func Distances(g core.Graph, source core.VertexID, h Heuristic, opts ...Option) (map[core.VertexID]float64, error) {
	s, err := newSearch(g, source, h, opts)
	if err != nil {
		return nil, err
	}
	if err = s.run(core.NoVertex); err != nil {
		return nil, err
	}

	ids := g.Vertices()
	out := make(map[core.VertexID]float64, len(ids))
	for _, v := range ids {
		out[v] = s.gScore[v]
	}

	return out, nil
}

// search holds the scratch state of one A* execution.
type search struct {
	g        core.Graph
	h        Heuristic
	options  Options
	gScore   []float64
	prev     []core.VertexID
	closed   []bool
	open     *pqueue.IndexedMinHeap[core.VertexID]
	expanded int
}

func newSearch(g core.Graph, source core.VertexID, h Heuristic, opts []Option) (*search, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("astar: source %d: %w", source, core.ErrUnknownVertex)
	}

	n := g.Order()
	s := &search{
		g:       g,
		h:       h,
		options: cfg,
		gScore:  make([]float64, n),
		prev:    make([]core.VertexID, n),
		closed:  make([]bool, n),
		open:    pqueue.New[core.VertexID](n),
	}
	for i := range s.gScore {
		s.gScore[i] = math.Inf(1)
		s.prev[i] = core.NoVertex
	}
	s.gScore[source] = 0
	_ = s.open.Insert(source, h(source))

	return s, nil
}

// run expands vertices in f order until goal is extracted or the queue is
// empty. goal == core.NoVertex drains the queue.
func (s *search) run(goal core.VertexID) error {
	for !s.open.IsEmpty() {
		u, _, err := s.open.ExtractMin()
		if err != nil {
			return fmt.Errorf("astar: %w", err)
		}
		s.closed[u] = true
		s.expanded++
		if u == goal {
			return nil
		}

		arcs, err := s.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("astar: neighbors of %d: %w", u, err)
		}
		gu := s.gScore[u]
		for _, a := range arcs {
			v := a.To
			if a.Weight >= s.options.InfEdgeThreshold {
				continue
			}
			cand := gu + a.Weight
			if !(cand < s.gScore[v]) {
				continue
			}
			s.gScore[v] = cand
			s.prev[v] = u
			f := cand + s.h(v)
			if s.open.Contains(v) {
				s.open.DecreaseKey(v, f)
				continue
			}
			// new or reopened
			if err = s.open.Insert(v, f); err != nil {
				return fmt.Errorf("astar: queue %d: %w", v, err)
			}
		}
	}

	return nil
}

// path walks prev back from goal and reverses the result.
func (s *search) path(goal core.VertexID) []core.VertexID {
	var out []core.VertexID
	for cur := goal; cur != core.NoVertex; cur = s.prev[cur] {
		out = append(out, cur)
		if len(out) > len(s.prev) {
			return []core.VertexID{}
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
