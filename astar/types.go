// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Heuristic type, options, sentinel errors and Result.

package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/skypath/core"
)

// Sentinel errors returned by A*.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic was supplied. Use Zero for
	// an uninformed search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("astar: InfEdgeThreshold must be positive")
)

// Heuristic estimates the remaining cost from v to the goal.
type Heuristic func(v core.VertexID) float64

// Zero is the uninformed heuristic.
func Zero(core.VertexID) float64 { return 0 }

// Options configures a search.
type Options struct {
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

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

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{InfEdgeThreshold: math.Inf(1)}
}

// Result is the outcome of a point-to-point search.
type Result struct {
	// Path runs from source to goal inclusive; empty when unreachable.
	Path []core.VertexID
	// Cost is the sum of arc weights along Path, +Inf when unreachable.
	Cost float64
	// Expanded counts the vertices extracted from the queue.
	Expanded int
}

// Found reports whether a path to the goal exists.
func (r *Result) Found() bool { return len(r.Path) > 0 }
