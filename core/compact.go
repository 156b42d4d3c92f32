// File: compact.go
// Role: Compact, a compressed-sparse-row snapshot for static graphs.

package core

import "fmt"

// Compact is an immutable CSR snapshot of a Graph: the arcs of vertex v
// occupy arcs[offsets[v]:offsets[v+1]]. It implements Graph only.
type Compact struct {
	offsets []int
	arcs    []Arc
	alive   []bool
	live    int
}

// Freeze copies g into a Compact snapshot. Later mutations of g are not
// reflected. Complexity: O(V + E).
func Freeze(g Graph) (*Compact, error) {
	n := g.Order()
	c := &Compact{
		offsets: make([]int, n+1),
		alive:   make([]bool, n),
	}
	for v := 0; v < n; v++ {
		c.offsets[v] = len(c.arcs)
		id := VertexID(v)
		if !g.HasVertex(id) {
			continue
		}
		arcs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("core: Freeze: neighbors of %d: %w", v, err)
		}
		c.arcs = append(c.arcs, arcs...)
		c.alive[v] = true
		c.live++
	}
	c.offsets[n] = len(c.arcs)

	return c, nil
}

// Order returns the ID bound of the source graph at freeze time.
func (c *Compact) Order() int { return len(c.alive) }

// HasVertex reports whether v was live at freeze time.
func (c *Compact) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(c.alive) && c.alive[v]
}

// Vertices returns live vertices ascending.
func (c *Compact) Vertices() []VertexID {
	out := make([]VertexID, 0, c.live)
	for i, ok := range c.alive {
		if ok {
			out = append(out, VertexID(i))
		}
	}

	return out
}

// Neighbors returns the arcs leaving v. Complexity: O(1), no allocation.
func (c *Compact) Neighbors(v VertexID) ([]Arc, error) {
	if !c.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	lo, hi := c.offsets[v], c.offsets[v+1]

	return c.arcs[lo:hi:hi], nil
}

// VertexCount returns the number of live vertices.
func (c *Compact) VertexCount() int { return c.live }

// ArcCount returns the number of stored arcs. In an undirected source each
// edge contributes two arcs (one for a self-loop).
func (c *Compact) ArcCount() int { return len(c.arcs) }
