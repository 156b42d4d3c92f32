// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// impl_random_fanout.go - implementation of RandomFanout(n, k).
//
// Model: every vertex i draws k targets uniformly from [0, n). A draw equal
// to i is skipped; a draw repeating an existing i→t edge is skipped unless
// the graph allows multi-edges. Out-degrees are therefore at most k.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), k ≥ 0 (else ErrInvalidFanout).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - The weight is drawn from cfg.weightFn only for non-self draws, right
//     after the target.
//
// Complexity: O(n·k) draws; per-insert cost is the backing's InsertEdge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

const methodRandomFanout = "RandomFanout"

// RandomFanout returns a Constructor for a sparse random network with
// fan-out k.
func RandomFanout(n, k int) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomFanout, n, ErrTooFewVertices)
		}
		if k < 0 {
			return nil, fmt.Errorf("%s: k=%d: %w", methodRandomFanout, k, ErrInvalidFanout)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomFanout, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < k; j++ {
				t := cfg.rng.Intn(n)
				if t == i {
					continue
				}
				if _, err := addEdge(methodRandomFanout, g, cfg, ids[i], ids[t]); err != nil {
					return ids, err
				}
			}
		}

		return ids, nil
	}
}
