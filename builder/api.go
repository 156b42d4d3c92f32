// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(g, bopts, cons...). Resolves cfg once, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

// Constructor applies one deterministic mutation to g and returns the
// vertices it created, in creation order. Constructors validate parameters
// before touching g.
type Constructor func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error)

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors to g in order. It returns every created vertex, in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; vertices and edges added before the failure stay in g.
func BuildGraph(g core.WeightedGraph[string], bopts []BuilderOption, cons ...Constructor) ([]core.VertexID, error) {
	if g == nil {
		return nil, fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	var created []core.VertexID
	for i, fn := range cons {
		if fn == nil {
			return created, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		ids, err := fn(g, cfg)
		created = append(created, ids...)
		if err != nil {
			return created, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return created, nil
}
