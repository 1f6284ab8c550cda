package graphgen

import "github.com/katalvlaran/bspmatch/edgeio"

// Graph is a generated topology, ready to hand to edgeio.Scatter:
// NGlobal vertices numbered 1..NGlobal and the edge list between them.
// Vertex ids start at 1, never 0, matching the wire format's 1-based
// convention and the snake package's NextNode/PrevNode sentinel, which
// reserves 0 for "no remote neighbor yet".
type Graph struct {
	NGlobal uint64
	Edges   []edgeio.Edge
}

const (
	minCycleVertices = 3
	minStarVertices  = 2
	minWheelVertices = 4
	minPathVertices  = 2
	minRRVertices    = 1
)
