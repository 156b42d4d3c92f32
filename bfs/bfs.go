// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d: %w", ErrStartVertexNotFound, start, core.ErrUnknownVertex)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.VertexID, 0, n),
			start:  start,
			depth:  make([]int, n),
			parent: make([]core.VertexID, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = core.NoVertex
	}

	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v core.VertexID, d int, parent core.VertexID) {
	w.res.depth[v] = d
	w.res.parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the next item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// head vertex.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	arcs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.v, err)
	}
	for _, a := range arcs {
		if w.res.depth[a.To] >= 0 || !w.opts.FilterArc(item.v, a) {
			continue
		}
		w.enqueue(a.To, next, item.v)
	}

	return nil
}
