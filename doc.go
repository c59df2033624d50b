// Package fibheap provides a mergeable priority queue implemented as a
// Fibonacci heap: constant amortized insertion and key decrease, logarithmic
// amortized extraction of the minimum.
//
// Overview:
//
//   - Insert and DecreaseKey run in O(1) amortized time; ExtractMin runs in
//     O(log n) amortized time.
//   - Every Insert returns a *Node handle. Handles stay live until the node
//     is extracted, so callers can later lower a specific entry's priority,
//     the operation a binary heap cannot offer cheaply.
//   - This makes the heap a natural building block for graph and scheduling
//     algorithms with frequent priority updates (Dijkstra, Prim, event
//     simulation). See the dijkstra subpackage for a worked consumer.
//
// Structure:
//
//   - The heap is a collection of heap-ordered trees whose roots form a
//     circular doubly-linked ring (the root list). A pointer to the minimal
//     root is all the bookkeeping the Heap itself carries.
//   - ExtractMin detaches the minimal root, promotes its children into the
//     root list, then consolidates: roots of equal degree are merged until
//     all degrees are unique, which bounds the root count.
//   - DecreaseKey cuts a node into the root list when it undercuts its
//     parent, cascading upward through ancestors that have already lost a
//     child. "Mark on first lost child, cut on second" is what bounds tree
//     degrees logarithmically and keeps the amortized costs above.
//
// Key features:
//
//   - Generic over value and priority types: Heap[V, P] with an explicit
//     three-way Comparator[P], or NewOrdered for priorities that satisfy
//     cmp.Ordered.
//   - Node handles expose Key, Value, IsValid and DecreaseKey; a handle whose
//     node has been extracted reports IsValid() == false and every mutating
//     call on it fails with ErrInvalidNode.
//   - Dump renders the forest as indented text, annotating each node's degree
//     and mark flag. Handy as a test oracle and for debugging tree shape.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyHeap:   ExtractMin on an empty heap.
//   - ErrKeyOrder:    DecreaseKey with a priority greater than the current one.
//   - ErrInvalidNode: DecreaseKey on a handle whose node was already extracted.
//
// All three are programmer-error conditions surfaced synchronously to the
// caller; the heap never retries and never leaves a mutation half-applied.
//
// Thread safety:
//
//   - The heap is single-threaded by design. Ring splices and mark/degree
//     updates assume exclusive access; share a heap across goroutines only
//     behind external synchronization (e.g. a sync.Mutex around every call).
//     Node handles inherit the same contract.
//
// Non-goals: persistence, iteration over arbitrary elements, merging two
// heaps through the public API, and deleting a non-minimal element without
// decreasing its key first.
package fibheap
