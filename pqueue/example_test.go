package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/skypath/pqueue"
)

// ExampleIndexedMinHeap shows decrease-key reordering the queue in place.
func ExampleIndexedMinHeap() {
	h := pqueue.New[int](3)
	_ = h.Insert(0, 30)
	_ = h.Insert(1, 10)
	_ = h.Insert(2, 20)

	h.DecreaseKey(0, 5)

	for !h.IsEmpty() {
		k, p, _ := h.ExtractMin()
		fmt.Println(k, p)
	}
	// Output:
	// 0 5
	// 1 10
	// 2 20
}
