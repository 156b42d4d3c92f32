package pqueue

// Verify exposes the heap invariant check to external tests.
func (h *IndexedMinHeap[K]) Verify() error { return h.verify() }
