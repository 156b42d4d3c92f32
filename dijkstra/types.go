// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and the Result of a Dijkstra run.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/skypath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every arc impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// Target           – settle-and-stop vertex, or core.NoVertex to explore everything.
// MaxDistance      – vertices farther than this are never settled. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ this are skipped. Default +Inf.
type Options struct {
	Target           core.VertexID
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the run as soon as v is extracted from the queue.
// Vertices not settled by then report +Inf.
func WithTarget(v core.VertexID) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithMaxDistance caps the explored radius. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as walls.
// Panics if threshold ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the configuration used when no option is given:
// no target, no distance cap, no impassable arcs.
func DefaultOptions() Options {
	return Options{
		Target:           core.NoVertex,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of one run. Its slices are indexed by VertexID
// and sized by the graph's Order at the time of the run.
type Result struct {
	g       core.Graph
	source  core.VertexID
	dist    []float64
	prev    []core.VertexID
	settled []bool
	count   int
}

// Source returns the vertex the run started from.
func (r *Result) Source() core.VertexID { return r.source }

// Settled returns how many vertices were extracted with a final distance.
func (r *Result) Settled() int { return r.count }

// Distance returns the final distance to v, or +Inf when v was not settled.
func (r *Result) Distance(v core.VertexID) float64 {
	if !r.Reachable(v) {
		return math.Inf(1)
	}

	return r.dist[v]
}

// Reachable reports whether v was settled.
func (r *Result) Reachable(v core.VertexID) bool {
	return v >= 0 && int(v) < len(r.settled) && r.settled[v]
}

// PathTo returns the vertices from the source to v, both inclusive, or an
// empty slice when v was not settled. PathTo(Source()) is [Source()].
func (r *Result) PathTo(v core.VertexID) []core.VertexID {
	if !r.Reachable(v) {
		return []core.VertexID{}
	}
	var path []core.VertexID
	for cur := v; cur != core.NoVertex; cur = r.prev[cur] {
		path = append(path, cur)
		if len(path) > len(r.prev) {
			// prev chains are acyclic for non-negative weights
			return []core.VertexID{}
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distances maps every live vertex of the searched graph to its distance,
// +Inf for vertices that were not settled.
func (r *Result) Distances() map[core.VertexID]float64 {
	ids := r.g.Vertices()
	out := make(map[core.VertexID]float64, len(ids))
	for _, v := range ids {
		out[v] = r.Distance(v)
	}

	return out
}
