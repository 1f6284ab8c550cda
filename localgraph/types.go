// SPDX-License-Identifier: MIT
// Package: bspmatch/localgraph
//
// types.go — Vertex, Edge, Pair, Graph and their sentinel errors.
//
// Graph is this process's view of its slice of the global graph, G_p: it
// only ever holds vertices this process owns, and never a dangling
// reference to a local vertex that has been deleted. Mutations that
// affect a remote process's view are never applied directly — they are
// turned into instruction.Instruction values queued on an outbox.Outbox
// for the next BSP exchange.
package localgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/bspmatch/partition"
)

// Sentinel errors for local graph operations.
var (
	// ErrEdgeNotFound indicates RemoveEdge was asked to remove an edge
	// that is not present in the neighbor set.
	ErrEdgeNotFound = errors.New("localgraph: edge not found")

	// ErrVertexNotFound indicates an operation referenced a vertex id
	// that is not present in this process's vertex set.
	ErrVertexNotFound = errors.New("localgraph: vertex not found")

	// ErrForeignVertex indicates an operation was asked to touch a
	// vertex id that this process does not own, per the active
	// partition.Strategy. This is a protocol-violation class error: it
	// should never surface on valid inputs.
	ErrForeignVertex = errors.New("localgraph: vertex not owned by this process")
)

// Vertex is a node in this process's partition of the graph.
//
// Neighbors holds only vertex ids; some of those ids may be owned by
// other processes (cross-partition edges), in which case this
// process's copy of Vertex is the only local record of that edge.
//
// Eaten, IsHead and IsTail are Phase II (snake engine) bookkeeping
// flags; they are meaningless (always false) during Phase I.
type Vertex struct {
	ID        uint64
	Neighbors map[uint64]struct{}
	Eaten     bool
	IsHead    bool
	IsTail    bool
}

// Degree returns the number of neighbors currently recorded for v.
func (v *Vertex) Degree() int {
	return len(v.Neighbors)
}

// Edge is an unordered pair of vertex ids as read from the input edge
// list, before partitioning.
type Edge struct {
	U, V uint64
}

// Pair is a matched edge recorded in a Graph's matching list.
type Pair struct {
	A, B uint64
}

// Graph is the local graph store G_p: this process's vertex set,
// matching list, and the global parameters (total vertex count, this
// process's index, total process count, partition strategy) needed to
// classify any vertex id as local, remote, or nonexistent.
//
// Graph is guarded by a single RWMutex. The core round loop (phase1,
// phase2) only ever touches a Graph from the one goroutine that owns
// it, so the lock sees no contention there; it exists so a supervisor
// (e.g. telemetry or a CLI progress reporter) can safely read Matching()
// or VertexCount() from another goroutine between supersteps.
type Graph struct {
	mu sync.RWMutex

	vertices map[uint64]*Vertex
	matching []Pair

	nGlobal  uint64
	p        int
	numProcs int
	strategy partition.Strategy
}

// New returns an empty local graph for process p of numProcs, covering a
// global graph of nGlobal vertices under the given partition strategy.
func New(nGlobal uint64, p, numProcs int, strategy partition.Strategy) *Graph {
	return &Graph{
		vertices: make(map[uint64]*Vertex),
		nGlobal:  nGlobal,
		p:        p,
		numProcs: numProcs,
		strategy: strategy,
	}
}

// Owner returns the process index that owns vertex id v under this
// graph's global parameters. It is a thin forward to partition.Owner so
// callers in this package never need to import partition directly.
func (g *Graph) Owner(v uint64) int {
	return partition.Owner(v, g.nGlobal, g.numProcs, g.strategy)
}

// PID returns this process's index.
func (g *Graph) PID() int { return g.p }

// NumProcs returns the total number of cooperating processes.
func (g *Graph) NumProcs() int { return g.numProcs }

// NGlobal returns the total vertex count across the whole graph.
func (g *Graph) NGlobal() uint64 { return g.nGlobal }

// Strategy returns the active partition strategy.
func (g *Graph) Strategy() partition.Strategy { return g.strategy }

// VertexCount returns the number of vertices currently held locally.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}
