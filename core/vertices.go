// File: vertices.go
// Role: vertexTable, the dense vertex catalog shared by both mutable backings.
//
// Determinism:
//   - IDs are assigned 0,1,2,… in insertion order; Vertices() is ascending.

package core

import "fmt"

// vertexTable stores payloads in a slice indexed by VertexID.
// Removed slots stay allocated (tombstoned) so IDs are never reused.
type vertexTable[P any] struct {
	payload []P
	alive   []bool
	live    int
}

func newVertexTable[P any](capacity int) vertexTable[P] {
	return vertexTable[P]{
		payload: make([]P, 0, capacity),
		alive:   make([]bool, 0, capacity),
	}
}

// insert appends payload and returns its new ID.
// Complexity: O(1) amortized.
func (t *vertexTable[P]) insert(payload P) VertexID {
	id := VertexID(len(t.payload))
	t.payload = append(t.payload, payload)
	t.alive = append(t.alive, true)
	t.live++

	return id
}

// has reports whether v names a live slot. Complexity: O(1).
func (t *vertexTable[P]) has(v VertexID) bool {
	return v >= 0 && int(v) < len(t.alive) && t.alive[v]
}

// check returns ErrUnknownVertex wrapped with v when v is not live.
func (t *vertexTable[P]) check(v VertexID) error {
	if !t.has(v) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return nil
}

// tombstone marks v dead and clears its payload so it can be collected.
func (t *vertexTable[P]) tombstone(v VertexID) {
	var zero P
	t.payload[v] = zero
	t.alive[v] = false
	t.live--
}

func (t *vertexTable[P]) get(v VertexID) (P, error) {
	if err := t.check(v); err != nil {
		var zero P
		return zero, err
	}

	return t.payload[v], nil
}

// ids lists live vertices ascending. Complexity: O(Order).
func (t *vertexTable[P]) ids() []VertexID {
	out := make([]VertexID, 0, t.live)
	for i, ok := range t.alive {
		if ok {
			out = append(out, VertexID(i))
		}
	}

	return out
}

func (t *vertexTable[P]) order() int { return len(t.alive) }
