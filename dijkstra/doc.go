// Package dijkstra implements Dijkstra's shortest-path algorithm on top of
// the fibheap package, as a worked demonstration of what a Fibonacci heap
// buys a graph algorithm.
//
// Overview:
//
//   - ShortestPaths computes minimum-cost distances from a single source to
//     all reachable vertices of a non-negatively weighted digraph.
//   - Unlike the common binary-heap formulation, which pushes a duplicate
//     entry on every improvement and discards stale ones on pop, this
//     implementation keeps exactly one heap entry per vertex and lowers its
//     priority in place via Node.DecreaseKey. That is the operation the
//     Fibonacci heap makes O(1) amortized.
//
// Complexity:
//
//   - Time:  O(E + V log V)
//   - Each vertex is extracted once: V extractions at O(log V) amortized.
//   - Each arc relaxes at most once: up to E key decreases at O(1) amortized.
//   - Space: O(V + E) for the graph, plus O(V) live heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    no Source option was given.
//   - ErrNilGraph:       a nil *Graph was passed.
//   - ErrVertexNotFound: the source vertex is absent from the graph.
//   - ErrNegativeWeight: some arc has negative weight (detected by an O(E)
//     pre-scan before any work is done).
//
// Thread safety: neither Graph nor ShortestPaths is safe for concurrent
// mutation; synchronize externally if needed.
package dijkstra
