// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// impl_path.go - implementation of Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)→i for i=1..n-1.
//   - Cycle: n ≥ 3; the path edges plus (n-1)→0.
//   - Vertices are labeled cfg.idFn(0..n-1) in ascending order.
//
// Complexity: O(n) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

// chain adds n vertices joined in index order, optionally closing the ring.
func chain(method string, g core.WeightedGraph[string], cfg builderConfig, n int, closed bool) ([]core.VertexID, error) {
	ids := addVertices(g, cfg, n)
	for i := 1; i < n; i++ {
		if _, err := addEdge(method, g, cfg, ids[i-1], ids[i]); err != nil {
			return ids, err
		}
	}
	if closed {
		if _, err := addEdge(method, g, cfg, ids[n-1], ids[0]); err != nil {
			return ids, err
		}
	}

	return ids, nil
}
