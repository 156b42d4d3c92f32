// SPDX-License-Identifier: MIT
// Package: skypath/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices in row-major order labeled "r,c"; vertex r*cols+c of the
//     returned slice is cell (r, c).
//   - For each cell emit Right then Down when present. Directed graphs get
//     only those directions; use core.WithUndirected for a walkable grid.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g core.WeightedGraph[string], cfg builderConfig) ([]core.VertexID, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := make([]core.VertexID, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, g.InsertVertex(fmt.Sprintf(gridIDFmt, r, c)))
			}
		}
		at := func(r, c int) core.VertexID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := addEdge(methodGrid, g, cfg, at(r, c), at(r, c+1)); err != nil {
						return ids, err
					}
				}
				if r+1 < rows {
					if _, err := addEdge(methodGrid, g, cfg, at(r, c), at(r+1, c)); err != nil {
						return ids, err
					}
				}
			}
		}

		return ids, nil
	}
}
