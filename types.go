package fibheap

import "errors"

// Sentinel errors reported by heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrKeyOrder indicates DecreaseKey was called with a priority that
	// compares greater than the node's current one; the operation only
	// ever decreases keys.
	ErrKeyOrder = errors.New("fibheap: new priority is greater than current")

	// ErrInvalidNode indicates an operation on a handle whose node has
	// already been extracted from its heap.
	ErrInvalidNode = errors.New("fibheap: node is no longer in a heap")
)

// Comparator defines a total order over priorities: it returns a negative
// value if a sorts before b, zero if they are equal, and a positive value
// if a sorts after b. The comparator is fixed at heap construction and
// must stay consistent for the heap's lifetime.
type Comparator[P any] func(a, b P) int
