package localgraph

import "sort"

// Location classifies the result of IndexOf.
type Location uint8

const (
	// Found means the vertex is present in this process's vertex set.
	Found Location = iota
	// AbsentLocal means the vertex is owned by this process but is not
	// currently present — it was already deleted (e.g. matched and
	// removed by an earlier instruction in the same round).
	AbsentLocal
	// Remote means the vertex is owned by a different process.
	Remote
)

// String renders the Location for diagnostics.
func (l Location) String() string {
	switch l {
	case Found:
		return "FOUND"
	case AbsentLocal:
		return "ABSENT_LOCAL"
	case Remote:
		return "REMOTE"
	default:
		return "UNKNOWN"
	}
}

// IndexOf classifies vertex id v with respect to this process: present
// locally (Found, with the Vertex itself), owned locally but already
// gone (AbsentLocal), or owned elsewhere (Remote). The interpreter uses
// this to decide whether an instruction's effect is local or must be
// silently dropped.
func (g *Graph) IndexOf(v uint64) (Location, *Vertex) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.Owner(v) != g.p {
		return Remote, nil
	}
	if vert, ok := g.vertices[v]; ok {
		return Found, vert
	}
	return AbsentLocal, nil
}

// HasVertex reports whether id is present in this process's vertex set.
func (g *Graph) HasVertex(id uint64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the local Vertex for id, or nil if it is not present.
// The returned pointer aliases internal state; callers must not mutate
// Neighbors directly — use RemoveEdge/RemoveVertex instead.
func (g *Graph) Vertex(id uint64) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices[id]
}

// Matching returns a copy of this process's matching list.
func (g *Graph) Matching() []Pair {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Pair, len(g.matching))
	copy(out, g.matching)
	return out
}

// VertexIDs returns the ids of every locally-held vertex, sorted
// ascending. Sorting makes every caller that iterates "some" vertex (the
// Phase I sweep, property-test assertions) deterministic across runs,
// which is required for P6.
func (g *Graph) VertexIDs() []uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]uint64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindSingleton returns the smallest-id local vertex with degree exactly
// 1, and its sole neighbor id. ok is false if no such vertex exists.
// Picking the smallest id, rather than an arbitrary map entry, is what
// makes repeated runs of Phase I produce the same matching for fixed
// inputs (P6).
func (g *Graph) FindSingleton() (v, neighbor uint64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := ^uint64(0)
	var bestNeighbor uint64
	found := false
	for id, vert := range g.vertices {
		if len(vert.Neighbors) != 1 {
			continue
		}
		if !found || id < best {
			best = id
			found = true
			for n := range vert.Neighbors {
				bestNeighbor = n
			}
		}
	}
	return best, bestNeighbor, found
}
