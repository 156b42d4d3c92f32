// Package pqueue provides IndexedMinHeap, a binary min-heap keyed by dense
// integer identities with O(1) membership and O(log n) decrease-key.
//
// The heap array and the key→slot position index live in one struct and are
// updated together inside every swap, so the two can never disagree:
//
//	pos[key] == slot+1   for every key in the heap
//	pos[key] == 0        for every key not in the heap
//
// Operations:
//
//	IsEmpty, Len, Contains, Priority, Peek   O(1)
//	Insert                                   O(log n)   ErrDuplicateKey, ErrNegativeKey
//	ExtractMin                               O(log n)   ErrEmptyHeap
//	DecreaseKey                              O(log n)   no-op when absent or not lower
//
// Priorities only ever decrease in place; callers that need an increase
// must extract and reinsert.
//
// Ties: entries with equal priority come out in an unspecified order. The
// heap is not stable, and callers must not rely on any particular order
// among equal-priority keys.
//
// Keys index the position slice directly, so they should be small and dense
// (VertexIDs are). The slice grows to the largest key inserted.
package pqueue
