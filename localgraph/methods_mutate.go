package localgraph

import (
	"github.com/katalvlaran/bspmatch/instruction"
	"github.com/katalvlaran/bspmatch/outbox"
)

// RemoveEdge removes w from u's neighbor set. It returns ErrVertexNotFound
// if u is not present locally, or ErrEdgeNotFound if w is not currently a
// neighbor of u. Order among u's remaining neighbors is not preserved
// (swap-remove semantics are fine here; a Go map already has no
// meaningful order to preserve).
func (g *Graph) RemoveEdge(u, w uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vert, ok := g.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok := vert.Neighbors[w]; !ok {
		return ErrEdgeNotFound
	}
	delete(vert.Neighbors, w)
	return nil
}

// RemoveVertex erases v from this process's vertex set. For every
// neighbor w of v: if this process also owns w, the symmetric back-edge
// is removed immediately; otherwise a Delete(v, w) instruction is queued
// on out for owner(w), so that process can remove its own back-edge to v
// in the next superstep. RemoveVertex is a no-op if v is not
// present locally.
func (g *Graph) RemoveVertex(v uint64, out *outbox.Outbox) {
	g.mu.Lock()
	defer g.mu.Unlock()

	vert, ok := g.vertices[v]
	if !ok {
		return
	}
	for w := range vert.Neighbors {
		if g.Owner(w) == g.p {
			if other, ok := g.vertices[w]; ok {
				delete(other.Neighbors, v)
			}
		} else {
			out.Add(g.Owner(w), instruction.New(instruction.Delete, v, w))
		}
	}
	delete(g.vertices, v)
}

// RemoveEmptyVertices sweeps every locally-held vertex with degree 0 and
// erases it. No instructions are required: a degree-0 vertex has no
// remaining back-references anywhere to clean up.
func (g *Graph) RemoveEmptyVertices() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, vert := range g.vertices {
		if len(vert.Neighbors) == 0 {
			delete(g.vertices, id)
		}
	}
}

// InsertMatch appends the pair {a,b} to this process's matching list.
// By convention, callers record each match on exactly one process: the
// one accepting a MOVE (b is its local vertex, a the remote proposer),
// or the one holding both endpoints of a local match, so that every
// matched pair is recorded exactly once, globally, without any cross-process
// coordination for the matching list itself.
func (g *Graph) InsertMatch(a, b uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.matching = append(g.matching, Pair{A: a, B: b})
}
