package fibheap

import "cmp"

// Heap is a Fibonacci heap over values of type V prioritized by keys of
// type P. The zero value is not usable; construct heaps with New or
// NewOrdered.
//
// Amortized complexity:
//
//   - Insert:      O(1)
//   - Min:         O(1)
//   - DecreaseKey: O(1)
//   - ExtractMin:  O(log n)
//
// A Heap must not be mutated concurrently; see the package documentation.
type Heap[V any, P any] struct {
	// comp orders priorities; fixed at construction.
	comp Comparator[P]
	// min points at the smallest root, nil iff the heap is empty.
	// Invariant: min is a member of the root list and compares ≤ every
	// other root.
	min *Node[V, P]
}

// New returns an empty heap ordering priorities with comp.
// comp must describe a total order; it is consulted on every structural
// comparison and never replaced.
func New[V any, P any](comp Comparator[P]) *Heap[V, P] {
	return &Heap[V, P]{comp: comp}
}

// NewOrdered returns an empty heap whose priorities use the natural order
// of P. It is shorthand for New with cmp.Compare as the comparator.
func NewOrdered[V any, P cmp.Ordered]() *Heap[V, P] {
	return New[V](cmp.Compare[P])
}

// IsEmpty reports whether the heap contains no elements. O(1), no mutation.
func (h *Heap[V, P]) IsEmpty() bool {
	return h.min == nil
}

// Insert adds value with the given priority and returns a handle to the new
// entry. The handle stays valid until the entry is removed by ExtractMin and
// can be used to lower its priority via DecreaseKey. O(1), never fails.
func (h *Heap[V, P]) Insert(value V, priority P) *Node[V, P] {
	nd := &Node[V, P]{heap: h, key: priority, value: value}
	nd.left, nd.right = nd, nd

	h.insertIntoRootList(nd)
	if nd != h.min && h.comp(nd.key, h.min.key) < 0 {
		h.min = nd
	}

	return nd
}

// Min returns a handle to the entry with the smallest priority, or nil if
// the heap is empty. O(1), no mutation.
func (h *Heap[V, P]) Min() *Node[V, P] {
	return h.min
}

// ExtractMin removes the entry with the smallest priority and returns its
// value. The removed entry's handle becomes invalid (IsValid() == false) and
// must not be reused. Returns ErrEmptyHeap if the heap is empty.
//
// Amortized O(log n): the expensive part is consolidation, whose cost is
// bounded by the number of roots, itself bounded by prior cheap operations.
func (h *Heap[V, P]) ExtractMin() (V, error) {
	mn := h.min
	if mn == nil {
		var zero V
		return zero, ErrEmptyHeap
	}

	// 1) Detach the minimal root from the root list. If it was the sole
	//    root the list becomes empty for now; children may refill it below.
	if mn.right == mn {
		h.min = nil
	} else {
		mn.left.right = mn.right
		mn.right.left = mn.left
		h.min = mn.right
	}
	mn.left, mn.right = mn, mn

	// 2) Promote every child of the detached node into the root list and
	//    drop the child-ring reference. Promotion resets the mark: roots
	//    are never marked.
	fst := mn.firstChild
	mn.firstChild = nil
	if fst != nil {
		curr := fst
		for {
			next := curr.right
			curr.parent = nil
			curr.marked = false
			h.insertIntoRootList(curr)
			if curr = next; curr == fst {
				break
			}
		}
	}

	// 3) Merge equal-degree roots and recompute the minimum.
	if !h.IsEmpty() {
		h.consolidate()
	}

	// 4) Invalidate the handle and hand back the value.
	mn.heap = nil

	return mn.value, nil
}

// insertIntoRootList splices nd next to the current minimum, or makes it the
// sole root of an empty heap. nd must be a detached singleton ring. O(1).
// The caller is responsible for comparing nd against h.min afterwards.
func (h *Heap[V, P]) insertIntoRootList(nd *Node[V, P]) {
	mn := h.min
	if mn == nil {
		nd.left, nd.right = nd, nd
		h.min = nd

		return
	}
	nd.left = mn
	nd.right = mn.right
	mn.right.left = nd
	mn.right = nd
}

// consolidate restores the root-list property that no two roots share a
// degree. It runs after every extraction.
//
// One pass around the root list; each root is merged with any previously
// seen root of equal degree until its degree is unique, the node with the
// smaller priority becoming the parent (on ties the first-encountered node
// keeps the child). A degree-indexed slot table finds collisions in O(1),
// so the total cost is O(r) for r roots before consolidation, since every
// merge removes a root.
func (h *Heap[V, P]) consolidate() {
	// slots[d] holds the unique root of degree d seen so far, if any.
	// Grown on demand; degrees are O(log n) so the table stays small.
	var slots []*Node[V, P]

	fst := h.min
	h.min = nil

	// 1) Walk the ring once, merging out collisions as they appear.
	curr := fst
	for {
		next := curr.right
		d := curr.degree
		for d < len(slots) && slots[d] != nil {
			other := slots[d]
			slots[d] = nil

			// The smaller key goes on top; ties keep curr on top.
			if h.comp(other.key, curr.key) < 0 {
				curr, other = other, curr
			}
			curr.addChild(other)
			d++
		}
		for len(slots) <= d {
			slots = append(slots, nil)
		}
		slots[d] = curr

		if curr = next; curr == fst {
			break
		}
	}

	// 2) Re-link the surviving slot occupants into a fresh root ring and
	//    pick the new minimum.
	var mn *Node[V, P]
	for _, nd := range slots {
		if nd == nil {
			continue
		}
		nd.left, nd.right = nd, nd
		h.insertIntoRootList(nd)
		if mn == nil || h.comp(nd.key, mn.key) < 0 {
			mn = nd
		}
	}
	h.min = mn
}

