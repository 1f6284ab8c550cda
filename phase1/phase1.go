// SPDX-License-Identifier: MIT
// Package: bspmatch/phase1
//
// phase1.go — the singleton-elimination driver.
// Every superstep, each process matches its degree-1 vertices, smallest
// id first: directly when the sole neighbor is local (removing both and
// cascading DELETE to their other neighbors so degrees stay accurate
// for the next sweep), or by proposing a MOVE when it is remote, the
// proposer staying until a CONFIRM arrives. The phase runs to global
// quiescence: no process anywhere had anything left to say.
package phase1

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/instruction"
	"github.com/katalvlaran/bspmatch/interpreter"
	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/outbox"
	"github.com/katalvlaran/bspmatch/telemetry"
)

// findSingleton returns the smallest-id local degree-1 vertex not
// already awaiting a remote match confirmation, and its sole neighbor.
// Vertices in pending are skipped rather than re-proposed: a vertex
// whose only neighbor is itself remote and also degree-1 (an isolated
// edge split across a partition boundary) must not be offered twice
// while its first proposal is still in flight.
func findSingleton(lg *localgraph.Graph, pending map[uint64]uint64) (v, neighbor uint64, ok bool) {
	for _, id := range lg.VertexIDs() {
		if _, busy := pending[id]; busy {
			continue
		}
		vert := lg.Vertex(id)
		if vert.Degree() != 1 {
			continue
		}
		for n := range vert.Neighbors {
			return id, n, true
		}
	}
	return 0, 0, false
}

// sweep finds every local degree-1 vertex not already awaiting
// confirmation and proposes a match to its sole neighbor, repeating
// until no eligible singleton remains locally (a single match can turn
// a vertex's other neighbors into fresh singletons within the same
// process, and those should be folded into this round too, rather than
// waiting an extra superstep to notice them).
//
// A vertex proposed to a remote neighbor is not removed here: removing
// it optimistically would lose the match entirely if that neighbor
// happens to be proposing back the same round (both ends of an
// isolated edge split across a partition, each seeing itself as the
// degree-1 singleton and the other as its sole neighbor) — both sides
// would self-remove before either's MOVE arrives, and neither could
// then accept the other's proposal. Instead v stays present, marked
// pending, until the remote side's CONFIRM instruction removes it.
func sweep(lg *localgraph.Graph, out *outbox.Outbox, pending map[uint64]uint64) {
	for {
		v, w, ok := findSingleton(lg, pending)
		if !ok {
			return
		}

		owner := lg.Owner(w)
		if owner == lg.PID() {
			// w is local: record the match directly and remove both
			// vertices from this process's graph.
			lg.InsertMatch(v, w)
			lg.RemoveVertex(v, out)
			lg.RemoveVertex(w, out)
			continue
		}

		out.Add(owner, instruction.New(instruction.Move, v, w))
		pending[v] = w
	}
}

// Run drives Phase I to completion on this process: repeatedly sweep,
// exchange, and apply, until a round's global total is zero — meaning no
// process anywhere queued anything to send. Returns the number of
// supersteps executed and nil once this process's local graph holds only
// vertices with degree >= 2 (or is empty), which Phase II's snake engine
// then takes over. meter may be nil (every Meter method is then a
// no-op).
func Run(ctx context.Context, sub bsp.Substrate, lg *localgraph.Graph, meter *telemetry.Meter) (rounds int, err error) {
	out := outbox.New(sub.NumProcs())
	pending := make(map[uint64]uint64)

	for {
		sweep(lg, out, pending)

		for _, ins := range out.Pending() {
			meter.RecordSent(ctx, ins.Tag)
		}

		received, _, globalTotal, err := bsp.ExchangeRound(ctx, sub, out)
		if err != nil {
			return rounds, fmt.Errorf("phase1: %w", err)
		}
		rounds++
		meter.RecordSuperstep(ctx, "phase1")
		for _, ins := range received {
			meter.RecordReceived(ctx, ins.Tag)
		}
		if globalTotal == 0 {
			return rounds, nil
		}

		interpreter.SortForApplication(received)
		for _, ins := range received {
			if err := interpreter.ApplyPhase1(lg, out, pending, ins); err != nil {
				return rounds, fmt.Errorf("phase1: applying instruction from process %d: %w", ins.From, err)
			}
		}
	}
}
