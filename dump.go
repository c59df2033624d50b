package fibheap

import (
	"fmt"
	"strings"
)

// dumpFrame is one pending step of the iterative tree walk: either render
// node and its subtree header, or emit the subtree's closing bracket.
type dumpFrame[V any, P any] struct {
	node   *Node[V, P]
	indent int
	close  bool
}

// Dump renders the heap as indented text, one bracketed block per tree.
// Each node line carries its degree and a trailing apostrophe when the node
// is marked, so the exact forest shape is visible:
//
//	FibHeap[
//	  Node#1[
//	    (1, v1),
//	    Node'#0[
//	      (3, v3)
//	    ]
//	  ]
//	]
//
// Intended as a debugging aid and test oracle; the textual shape depends on
// the consolidation tie-break and is stable for a fixed operation sequence,
// but it is not part of the functional contract. The traversal uses an
// explicit stack, so arbitrarily deep trees cannot exhaust the call stack.
// O(n), no mutation.
func (h *Heap[V, P]) Dump() string {
	var sb strings.Builder
	sb.WriteString("FibHeap[")
	if h.min != nil {
		sb.WriteByte('\n')

		stack := make([]dumpFrame[V, P], 0, 16)
		roots := h.min.ring()
		for i := len(roots) - 1; i >= 0; i-- {
			stack = append(stack, dumpFrame[V, P]{node: roots[i], indent: 1})
		}

		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if fr.close {
				writeIndent(&sb, fr.indent)
				sb.WriteString("]\n")
				continue
			}

			nd := fr.node
			writeIndent(&sb, fr.indent)
			sb.WriteString("Node")
			if nd.marked {
				sb.WriteByte('\'')
			}
			fmt.Fprintf(&sb, "#%d[\n", nd.degree)
			writeIndent(&sb, fr.indent+1)
			fmt.Fprintf(&sb, "(%v, %v)", nd.key, nd.value)

			// Closing bracket goes under the children, so push it first.
			stack = append(stack, dumpFrame[V, P]{node: nd, indent: fr.indent, close: true})
			if nd.firstChild == nil {
				sb.WriteByte('\n')
				continue
			}
			sb.WriteString(",\n")
			children := nd.firstChild.ring()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, dumpFrame[V, P]{node: children[i], indent: fr.indent + 1})
			}
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// ring collects the members of n's sibling ring in rightward order,
// starting at n.
func (n *Node[V, P]) ring() []*Node[V, P] {
	out := []*Node[V, P]{n}
	for curr := n.right; curr != n; curr = curr.right {
		out = append(out, curr)
	}

	return out
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}
