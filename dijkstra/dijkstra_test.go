// Package dijkstra_test contains unit tests for the heap-driven Dijkstra
// implementation: input validation, small graphs with and without path
// reconstruction, directed arcs, unreachable vertices, and an all-pairs
// check on a classic 6-vertex example.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/fibheap/dijkstra"
)

func TestShortestPaths_EmptySource(t *testing.T) {
	g := dijkstra.NewGraph()
	_, _, err := dijkstra.ShortestPaths(g)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestShortestPaths_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPaths(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceNotFound(t *testing.T) {
	g := dijkstra.NewGraph()
	g.AddEdge("A", "B", 1)
	_, _, err := dijkstra.ShortestPaths(g, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := dijkstra.NewGraph()
	g.AddArc("A", "B", -5)
	_, _, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestShortestPaths_Triangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): the two-hop route wins.
	g := dijkstra.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist["C"], 3.0; got != want {
		t.Errorf("dist[C] = %g; want %g", got, want)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestShortestPaths_ReturnPath(t *testing.T) {
	g := dijkstra.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("unexpected distances: %v", dist)
	}
	if prev["B"] != "A" {
		t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
	if prev["A"] != "" {
		t.Errorf("prev[A] = %q; want empty string", prev["A"])
	}
}

func TestShortestPaths_DirectedArcs(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5): best route to D is A→C→B→D.
	g := dijkstra.NewGraph()
	g.AddArc("A", "B", 2)
	g.AddArc("A", "C", 1)
	g.AddArc("C", "B", 1)
	g.AddArc("B", "D", 3)
	g.AddArc("C", "D", 5)

	dist, _, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5} {
		if dist[v] != want {
			t.Errorf("dist[%s] = %g; want %g", v, dist[v], want)
		}
	}

	// Arcs are one-way: starting at D, nothing else is reachable.
	dist, _, err = dijkstra.ShortestPaths(g, dijkstra.Source("D"))
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"A", "B", "C"} {
		if !math.IsInf(dist[v], 1) {
			t.Errorf("dist[%s] = %g; want +Inf", v, dist[v])
		}
	}
}

func TestShortestPaths_UnreachableVertex(t *testing.T) {
	g := dijkstra.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Island")

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["Island"], 1) {
		t.Errorf("dist[Island] = %g; want +Inf", dist["Island"])
	}
	if prev["Island"] != "" {
		t.Errorf("prev[Island] = %q; want empty string", prev["Island"])
	}
}

func TestShortestPaths_SingleVertex(t *testing.T) {
	g := dijkstra.NewGraph()
	g.AddVertex("Solo")

	dist, _, err := dijkstra.ShortestPaths(g, dijkstra.Source("Solo"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["Solo"] != 0 {
		t.Errorf("dist[Solo] = %g; want 0", dist["Solo"])
	}
}

// TestShortestPaths_AllPairs runs the classic 6-vertex undirected example
// from every source and checks the full distance matrix.
func TestShortestPaths_AllPairs(t *testing.T) {
	edges := [][3]int{
		{1, 2, 7},
		{1, 3, 9},
		{1, 6, 14},
		{2, 3, 10},
		{2, 4, 15},
		{3, 4, 11},
		{3, 6, 2},
		{4, 5, 6},
		{5, 6, 9},
	}

	g := dijkstra.NewGraph()
	for _, e := range edges {
		g.AddEdge(fmt.Sprintf("v%d", e[0]), fmt.Sprintf("v%d", e[1]), float64(e[2]))
	}

	want := [6][6]float64{
		{0, 7, 9, 20, 20, 11},
		{7, 0, 10, 15, 21, 12},
		{9, 10, 0, 11, 11, 2},
		{20, 15, 11, 0, 6, 13},
		{20, 21, 11, 6, 0, 9},
		{11, 12, 2, 13, 9, 0},
	}

	for i := 0; i < 6; i++ {
		src := fmt.Sprintf("v%d", i+1)
		dist, _, err := dijkstra.ShortestPaths(g, dijkstra.Source(src))
		if err != nil {
			t.Fatal(err)
		}
		if len(dist) != 6 {
			t.Fatalf("source %s: expected 6 entries, got %d", src, len(dist))
		}
		for j := 0; j < 6; j++ {
			dst := fmt.Sprintf("v%d", j+1)
			if dist[dst] != want[i][j] {
				t.Errorf("dist[%s→%s] = %g; want %g", src, dst, dist[dst], want[i][j])
			}
		}
	}
}
