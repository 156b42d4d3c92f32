// SPDX-License-Identifier: MIT
//
// File: indexed_heap.go
// Role: IndexedMinHeap implementation (sift-up/sift-down with co-located position index).

package pqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by IndexedMinHeap.
var (
	// ErrEmptyHeap indicates ExtractMin or Peek on an empty heap.
	ErrEmptyHeap = errors.New("pqueue: heap is empty")

	// ErrDuplicateKey indicates Insert of a key already present.
	// Repeated insertions must go through DecreaseKey.
	ErrDuplicateKey = errors.New("pqueue: key already in heap")

	// ErrNegativeKey indicates Insert of a key below zero.
	ErrNegativeKey = errors.New("pqueue: key must be non-negative")
)

// Key is the set of integer types usable as heap keys.
type Key interface {
	~int | ~int32 | ~int64
}

// node is one heap slot.
type node[K Key] struct {
	key      K
	priority float64
}

// IndexedMinHeap is a binary min-heap over (key, priority) pairs.
// The zero value is an empty heap ready to use.
type IndexedMinHeap[K Key] struct {
	nodes []node[K]
	pos   []int // pos[key] = slot+1; 0 means absent
}

// New returns an empty heap with room for keys in [0, capacity).
// Panics if capacity < 0.
func New[K Key](capacity int) *IndexedMinHeap[K] {
	if capacity < 0 {
		panic(fmt.Sprintf("pqueue: New(%d): capacity must be non-negative", capacity))
	}

	return &IndexedMinHeap[K]{
		nodes: make([]node[K], 0, capacity),
		pos:   make([]int, capacity),
	}
}

// Len returns the number of entries. Complexity: O(1).
func (h *IndexedMinHeap[K]) Len() int { return len(h.nodes) }

// IsEmpty reports whether the heap holds no entries. Complexity: O(1).
func (h *IndexedMinHeap[K]) IsEmpty() bool { return len(h.nodes) == 0 }

// Contains reports whether key is in the heap. Complexity: O(1).
func (h *IndexedMinHeap[K]) Contains(key K) bool {
	return key >= 0 && int64(key) < int64(len(h.pos)) && h.pos[key] != 0
}

// Priority returns the current priority of key, if present. Complexity: O(1).
func (h *IndexedMinHeap[K]) Priority(key K) (float64, bool) {
	if !h.Contains(key) {
		return 0, false
	}

	return h.nodes[h.pos[key]-1].priority, true
}

// Peek returns the minimum entry without removing it. Complexity: O(1).
func (h *IndexedMinHeap[K]) Peek() (K, float64, error) {
	if len(h.nodes) == 0 {
		return 0, 0, ErrEmptyHeap
	}

	return h.nodes[0].key, h.nodes[0].priority, nil
}

// Insert adds key with the given priority.
// Errors: ErrNegativeKey, ErrDuplicateKey. Complexity: O(log n).
func (h *IndexedMinHeap[K]) Insert(key K, priority float64) error {
	if key < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeKey, key)
	}
	if h.Contains(key) {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}
	if need := int(key) + 1; need > len(h.pos) {
		h.grow(need)
	}
	h.nodes = append(h.nodes, node[K]{key: key, priority: priority})
	i := len(h.nodes) - 1
	h.pos[key] = i + 1
	h.up(i)

	return nil
}

// grow extends pos to at least n entries, doubling to amortize.
func (h *IndexedMinHeap[K]) grow(n int) {
	size := 2 * len(h.pos)
	if size < n {
		size = n
	}
	pos := make([]int, size)
	copy(pos, h.pos)
	h.pos = pos
}

// ExtractMin removes and returns the minimum-priority entry. The root is
// replaced by the last slot and sifted down.
// Errors: ErrEmptyHeap. Complexity: O(log n).
func (h *IndexedMinHeap[K]) ExtractMin() (K, float64, error) {
	n := len(h.nodes)
	if n == 0 {
		return 0, 0, ErrEmptyHeap
	}
	min := h.nodes[0]
	last := n - 1
	h.swap(0, last)
	h.nodes = h.nodes[:last]
	h.pos[min.key] = 0
	if last > 0 {
		h.down(0)
	}

	return min.key, min.priority, nil
}

// DecreaseKey lowers the priority of key to p and restores heap order.
// It is a no-op, reporting false, when key is absent or p is not strictly
// lower than the current priority. Complexity: O(log n).
func (h *IndexedMinHeap[K]) DecreaseKey(key K, p float64) bool {
	if !h.Contains(key) {
		return false
	}
	i := h.pos[key] - 1
	if !(p < h.nodes[i].priority) {
		return false
	}
	h.nodes[i].priority = p
	h.up(i)

	return true
}

// Reset empties the heap, keeping allocated storage. Complexity: O(n).
func (h *IndexedMinHeap[K]) Reset() {
	for _, nd := range h.nodes {
		h.pos[nd.key] = 0
	}
	h.nodes = h.nodes[:0]
}

// up moves slot i towards the root while it is smaller than its parent.
func (h *IndexedMinHeap[K]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.nodes[i].priority < h.nodes[parent].priority) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves slot i towards the leaves while a child is smaller.
func (h *IndexedMinHeap[K]) down(i int) {
	n := len(h.nodes)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.nodes[left].priority < h.nodes[smallest].priority {
			smallest = left
		}
		if right < n && h.nodes[right].priority < h.nodes[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and updates both position entries.
func (h *IndexedMinHeap[K]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[h.nodes[i].key] = i + 1
	h.pos[h.nodes[j].key] = j + 1
}

// verify checks heap order and the position index. Used by tests.
func (h *IndexedMinHeap[K]) verify() error {
	for i := 1; i < len(h.nodes); i++ {
		parent := (i - 1) / 2
		if h.nodes[i].priority < h.nodes[parent].priority {
			return fmt.Errorf("pqueue: slot %d (%g) below parent %d (%g)",
				i, h.nodes[i].priority, parent, h.nodes[parent].priority)
		}
	}
	present := 0
	for k, p := range h.pos {
		if p == 0 {
			continue
		}
		present++
		if p-1 >= len(h.nodes) || int(h.nodes[p-1].key) != k {
			return fmt.Errorf("pqueue: pos[%d]=%d does not point at key %d", k, p-1, k)
		}
	}
	if present != len(h.nodes) {
		return fmt.Errorf("pqueue: %d indexed keys for %d slots", present, len(h.nodes))
	}

	return nil
}
