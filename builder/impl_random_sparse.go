// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: Erdős–Rényi G(n, p); each admissible pair is included
// independently with probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required only when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}

			return cfg.rng.Float64() < p
		}

		undirected := g.Undirected()
		for i := 0; i < n; i++ {
			start := 0
			if undirected {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !include() {
					continue
				}
				if _, err := addEdge(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return ids, err
				}
			}
		}

		return ids, nil
	}
}
