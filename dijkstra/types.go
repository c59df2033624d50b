// Package dijkstra defines the graph type, configuration options and error
// taxonomy for the shortest-path demonstration built on the fibheap package.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPaths.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that an edge with negative weight was
	// detected; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// arc is one directed, weighted connection out of a vertex.
type arc struct {
	to     string
	weight float64
}

// Graph is a compact weighted digraph keyed by string vertex IDs.
// Undirected edges are stored as a pair of opposing arcs. The zero value is
// not usable; construct graphs with NewGraph. Not safe for concurrent
// mutation.
type Graph struct {
	adj map[string][]arc
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]arc)}
}

// AddVertex ensures the vertex exists; adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// AddArc adds a directed edge u→v with weight w, creating both endpoints as
// needed. Parallel arcs are allowed; the cheaper one simply wins during
// relaxation.
func (g *Graph) AddArc(u, v string, w float64) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.adj[u] = append(g.adj[u], arc{to: v, weight: w})
}

// AddEdge adds an undirected edge u—v with weight w, i.e. an arc in each
// direction.
func (g *Graph) AddEdge(u, v string, w float64) {
	g.AddArc(u, v, w)
	g.AddArc(v, u, w)
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Options configures a ShortestPaths run.
//
// Source     – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath – if true, return the predecessor map; otherwise prev is nil.
type Options struct {
	Source     string
	ReturnPath bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct with the library defaults:
// empty Source (must be supplied via the Source option) and no predecessor
// map.
func DefaultOptions() Options {
	return Options{}
}
