// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidFanout indicates a negative RandomFanout degree.
var ErrInvalidFanout = errors.New("builder: fanout must be non-negative")

// ErrNeedRandSource indicates a stochastic constructor run without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied:
// a nil graph, a nil constructor, or a graph operation that failed.
var ErrConstructFailed = errors.New("builder: construction failed")
