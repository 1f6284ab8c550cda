package localgraph

// Load builds this process's slice of the graph from edges, the subset of
// the global edge list having at least one endpoint owned by this
// process. Each edge must appear at most once per incident partition in
// the input — edgeio.Scatter guarantees this by construction, so Load
// does not re-validate it; calling Load with a malformed edge list is a
// caller bug, not a runtime error.
//
// For every edge (u, w):
//   - if this process owns u, u gains w as a neighbor;
//   - if this process owns w, w gains u as a neighbor.
//
// An edge with both endpoints local populates both directions, giving a
// fully symmetric local adjacency from the start — trivially for
// purely-local edges; cross-partition edges become symmetric once every
// process has run Load on its half of the input.
func (g *Graph) Load(edges []Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		if g.Owner(e.U) == g.p {
			g.ensureVertexLocked(e.U).Neighbors[e.V] = struct{}{}
		}
		if g.Owner(e.V) == g.p {
			g.ensureVertexLocked(e.V).Neighbors[e.U] = struct{}{}
		}
	}
}

// ensureVertexLocked returns the local Vertex for id, allocating it if
// this is the first time it has been seen. Caller must hold g.mu.
func (g *Graph) ensureVertexLocked(id uint64) *Vertex {
	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id, Neighbors: make(map[uint64]struct{})}
		g.vertices[id] = v
	}
	return v
}
