package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fibheap"
)

// ShortestPaths computes minimum distances from Options.Source to every
// vertex of g, driving a Fibonacci heap with true key decreases: each vertex
// owns exactly one heap entry whose priority is lowered in place whenever a
// shorter path is found, instead of the push-duplicates workaround a binary
// heap forces.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.Inf(1) if unreachable).
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise);
//     prev[v] == u means the shortest path to v arrives from u, and
//     prev[v] == "" for the source and unreachable vertices.
//   - err:  a sentinel error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No arc may have negative weight (ErrNegativeWeight, O(E) pre-scan).
//
// Complexity: O(E + V log V): V extractions at O(log V) amortized each and
// up to E decreases at O(1) amortized each.
func ShortestPaths(g *Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 5) Pre-scan all arcs to detect negative weights. Fail fast.
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if a.weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, a.to, a.weight)
			}
		}
	}

	// 6) Prepare result maps; every vertex starts unreachable.
	dist := make(map[string]float64, len(g.adj))
	for v := range g.adj {
		dist[v] = math.Inf(1)
	}
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(g.adj))
		for v := range g.adj {
			prev[v] = ""
		}
	}

	// 7) One heap entry per open vertex, keyed by tentative distance.
	heap := fibheap.NewOrdered[string, float64]()
	handles := make(map[string]*fibheap.Node[string, float64], len(g.adj))
	closed := make(map[string]bool, len(g.adj))

	dist[cfg.Source] = 0
	handles[cfg.Source] = heap.Insert(cfg.Source, 0)

	// 8) Main loop: settle the closest open vertex, relax its arcs.
	for !heap.IsEmpty() {
		u, err := heap.ExtractMin()
		if err != nil {
			return nil, nil, err
		}
		delete(handles, u)
		closed[u] = true

		for _, a := range g.adj[u] {
			if closed[a.to] {
				continue
			}
			next := dist[u] + a.weight
			if next >= dist[a.to] {
				continue
			}
			dist[a.to] = next
			if prev != nil {
				prev[a.to] = u
			}

			// First time we reach the vertex it enters the heap; after
			// that, improvements go through DecreaseKey.
			if hd, ok := handles[a.to]; ok {
				if err = hd.DecreaseKey(next); err != nil {
					return nil, nil, err
				}
			} else {
				handles[a.to] = heap.Insert(a.to, next)
			}
		}
	}

	return dist, prev, nil
}
