package graphgen

import (
	"fmt"

	"github.com/katalvlaran/bspmatch/edgeio"
)

// Complete builds the complete simple graph K_n (n >= 1): every pair of
// the n vertices is joined by exactly one edge.
//
// Complexity: O(n) vertices, O(n^2) edges.
func Complete(n int) (Graph, error) {
	if n < 1 {
		return Graph{}, fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	var edges []edgeio.Edge
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			edges = append(edges, edgeio.Edge{U: uint64(i), V: uint64(j)})
		}
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}

// Path builds a simple path P_n (n >= 2): vertices 1..n joined
// i -> i+1 for i = 1..n-1.
//
// Complexity: O(n) vertices, O(n-1) edges.
func Path(n int) (Graph, error) {
	if n < minPathVertices {
		return Graph{}, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	edges := make([]edgeio.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, edgeio.Edge{U: uint64(i), V: uint64(i + 1)})
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}

// Cycle builds a simple cycle C_n (n >= 3): a Path(n) closed by one
// extra edge n -> 1.
//
// Complexity: O(n) vertices, O(n) edges.
func Cycle(n int) (Graph, error) {
	if n < minCycleVertices {
		return Graph{}, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	edges := make([]edgeio.Edge, 0, n)
	for i := 1; i <= n; i++ {
		edges = append(edges, edgeio.Edge{U: uint64(i), V: uint64(i%n + 1)})
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}

// Star builds a star with n vertices (n >= 2): vertex n is the hub,
// vertices 1..n-1 are leaves, each joined to the hub. The hub is the
// highest-numbered vertex rather than a fixed "Center" string id (the
// builder package's convention), since graphgen's ids are plain
// uint64s; the choice is arbitrary and only needs to be stable.
//
// Complexity: O(n) vertices, O(n-1) edges.
func Star(n int) (Graph, error) {
	if n < minStarVertices {
		return Graph{}, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}
	hub := uint64(n)
	edges := make([]edgeio.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, edgeio.Edge{U: hub, V: uint64(i)})
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}

// Wheel builds W_n = C_{n-1} + hub (n >= 4): an (n-1)-cycle over
// vertices 1..n-1 plus hub vertex n joined to every rim vertex.
//
// Complexity: O(n) vertices, O(2n-2) edges.
func Wheel(n int) (Graph, error) {
	if n < minWheelVertices {
		return Graph{}, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelVertices, ErrTooFewVertices)
	}
	rim, err := Cycle(n - 1)
	if err != nil {
		return Graph{}, fmt.Errorf("Wheel: base cycle C_%d: %w", n-1, err)
	}
	hub := uint64(n)
	edges := make([]edgeio.Edge, len(rim.Edges), len(rim.Edges)+n-1)
	copy(edges, rim.Edges)
	for i := 1; i < n; i++ {
		edges = append(edges, edgeio.Edge{U: hub, V: uint64(i)})
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}
