// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skypath/core"
)

// addVertices inserts n vertices labeled cfg.idFn(0..n-1).
func addVertices(g core.WeightedGraph[string], cfg builderConfig, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.InsertVertex(cfg.idFn(i))
	}

	return ids
}

// addEdge inserts u→v with the next configured weight. A duplicate pair is
// reported as skipped=true rather than an error.
func addEdge(method string, g core.WeightedGraph[string], cfg builderConfig, u, v core.VertexID) (skipped bool, err error) {
	w := cfg.weight()
	if _, err = g.InsertEdge(u, v, w); err != nil {
		if errors.Is(err, core.ErrDuplicateEdge) {
			return true, nil
		}

		return false, fmt.Errorf("%s: InsertEdge(%d→%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return false, nil
}
