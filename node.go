package fibheap

// Node is a handle to one entry of a Heap. Insert returns it so the caller
// can later lower that entry's priority with DecreaseKey. A Node belongs to
// exactly one ring at a time: the root list when parent is nil, otherwise
// its parent's child ring. Once the entry is removed by ExtractMin the
// handle turns invalid and must not be reused.
type Node[V any, P any] struct {
	// heap owns this node; nil once the node has been extracted.
	heap *Heap[V, P]

	// key may only shrink, via DecreaseKey.
	key P
	// value is immutable for the node's lifetime.
	value V

	// parent is nil iff the node sits in the root list. Non-owning.
	parent *Node[V, P]
	// firstChild points into the child ring; nil iff degree == 0.
	firstChild *Node[V, P]
	// left and right are the ring siblings; never nil, both equal to the
	// node itself when it is the sole member of its ring.
	left, right *Node[V, P]

	// marked is set on a non-root that lost a child since it last became
	// a root or was re-parented; roots are never marked.
	marked bool
	// degree counts direct children, the length of the firstChild ring.
	degree int
}

// Key returns the node's current priority. O(1).
func (n *Node[V, P]) Key() P {
	return n.key
}

// Value returns the payload the node was inserted with. O(1).
func (n *Node[V, P]) Value() V {
	return n.value
}

// IsValid reports whether the node is still contained in its heap, i.e.
// has not been returned by ExtractMin. O(1).
func (n *Node[V, P]) IsValid() bool {
	return n.heap != nil
}

// DecreaseKey lowers the node's priority to newKey.
//
// Returns ErrInvalidNode if the node was already extracted, and ErrKeyOrder
// if newKey compares greater than the current priority. Otherwise the key is
// updated; if that breaks heap order against the parent, the node is cut
// into the root list, cascading upward through ancestors that were already
// marked. Amortized O(1): a node loses at most one child silently before
// being cut itself, which is what keeps tree degrees logarithmic and
// consolidation cheap.
func (n *Node[V, P]) DecreaseKey(newKey P) error {
	h := n.heap
	if h == nil {
		return ErrInvalidNode
	}
	if h.comp(newKey, n.key) > 0 {
		return ErrKeyOrder
	}

	n.key = newKey

	// Cut only on an actual heap-order violation; a root, or a child that
	// still compares ≥ its parent, stays put.
	if n.parent != nil && h.comp(newKey, n.parent.key) < 0 {
		curr, par := n, n.parent
		for {
			// 1) Detach curr from par's child ring.
			par.degree--
			if par.degree == 0 {
				par.firstChild = nil
			} else {
				if par.firstChild == curr {
					par.firstChild = curr.right
				}
				curr.right.left = curr.left
				curr.left.right = curr.right
			}

			// 2) Promote curr to the root list, unmarked.
			curr.parent = nil
			curr.marked = false
			curr.left, curr.right = curr, curr
			h.insertIntoRootList(curr)

			// 3) First lost child only marks the parent; the cascade
			//    continues through parents that were already marked.
			if par.parent == nil {
				break
			}
			if !par.marked {
				par.marked = true
				break
			}
			curr, par = par, par.parent
		}
	}

	// The relocated node may now be the overall minimum.
	if h.comp(newKey, h.min.key) < 0 {
		h.min = n
	}

	return nil
}

// addChild splices other into n's child ring and re-parents it,
// incrementing n's degree. other must currently be treated as ringless;
// its old sibling links are overwritten. O(1).
func (n *Node[V, P]) addChild(other *Node[V, P]) {
	other.parent = n
	if fst := n.firstChild; fst == nil {
		n.firstChild = other
		other.left, other.right = other, other
	} else {
		other.left = fst
		other.right = fst.right
		fst.right.left = other
		fst.right = other
	}
	n.degree++
}
