// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNotReached is returned by PathTo for a vertex the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, with its depth.
	OnEnqueue func(v core.VertexID, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v core.VertexID, depth int)

	// OnVisit is called when visiting a vertex. A returned error aborts BFS.
	OnVisit func(v core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth; 0 means no limit.
	MaxDepth int

	// FilterArc skips arcs for which it returns false.
	FilterArc func(from core.VertexID, a core.Arc) bool

	err error
}

// DefaultOptions returns a BFSOptions with background context, no-op hooks,
// no depth limit and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(core.VertexID, int) {},
		OnDequeue: func(core.VertexID, int) {},
		OnVisit:   func(core.VertexID, int) error { return nil },
		FilterArc: func(core.VertexID, core.Arc) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.VertexID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v core.VertexID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.VertexID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(from core.VertexID, a core.Arc) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists the visited vertices in visit sequence.
	Order []core.VertexID

	start  core.VertexID
	depth  []int // -1 when unreached
	parent []core.VertexID
}

// Depth returns the hop count from the start to v and whether v was reached.
func (r *Result) Depth(v core.VertexID) (int, bool) {
	if v < 0 || int(v) >= len(r.depth) || r.depth[v] < 0 {
		return 0, false
	}

	return r.depth[v], true
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	d, ok := r.Depth(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]core.VertexID, d+1)
	for cur, i := dest, d; i >= 0; cur, i = r.parent[cur], i-1 {
		path[i] = cur
	}

	return path, nil
}
