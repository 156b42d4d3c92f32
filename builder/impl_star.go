// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// impl_star.go - implementation of Star(n): a hub-and-spoke network.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub, labeled CenterVertexID; leaves are labeled
//     cfg.idFn(1..n-1).
//   - Edges hub→leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

// CenterVertexID labels the hub vertex of Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids := make([]core.VertexID, n)
		ids[0] = g.InsertVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			ids[i] = g.InsertVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if _, err := addEdge(methodStar, g, cfg, ids[0], ids[i]); err != nil {
				return ids, err
			}
		}

		return ids, nil
	}
}
