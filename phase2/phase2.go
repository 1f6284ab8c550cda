// SPDX-License-Identifier: MIT
// Package: bspmatch/phase2
//
// phase2.go — the snake engine that grows
// augmenting-path chains once Phase I's singleton elimination has run
// out of degree-1 vertices. Every still-unmatched vertex starts the
// phase as its own length-one snek (snake.Registry.Seed); each round,
// every chain's head tries to absorb one more vertex.
//
// Absorbing a local candidate is a direct, in-process
// snake.Registry.Concatenate — no wire traffic, no ambiguity about
// which end is which. Absorbing a remote candidate never crosses the
// wire as CONCATENATE: it is proposed as a plain MOVE against the
// chain's current head, exactly the instruction Phase I uses for a
// degree-1 proposal, resolved by the same interpreter code path and
// protected by the same collision rule (two heads growing toward each
// other across the same boundary in the same round). Accepting a MOVE
// records the match immediately; the chain then advances (the next
// vertex in from the matched head becomes the new, still-growable
// head) rather than waiting on a multi-hop CONCATENATE/REVERSE
// handshake to eventually become harvestable.
//
// A vertex can also be stranded with two usable edges that both land
// on some other chain's interior rather than its head — growthCandidate
// refuses to grow into a non-head local vertex on purpose, so
// head-chasing alone would leave it untouched. inheritLeftovers covers
// that case every round by splicing such a vertex directly into the
// host chain via snake.Registry.Inherit. CONCATENATE/REVERSE/INHERIT
// stay fully implemented as wire instructions (interpreter.ApplyPhase2
// applies all three when received), but this driver only ever issues
// them for junctions it can resolve without crossing a process
// boundary: CONCATENATE's cross-process case goes through MOVE/CONFIRM
// instead (see above), and INHERIT's adjacency search is local-only by
// construction, so a snek-into-belly junction split across two
// processes is never discovered or spliced.
package phase2

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/instruction"
	"github.com/katalvlaran/bspmatch/interpreter"
	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/outbox"
	"github.com/katalvlaran/bspmatch/snake"
	"github.com/katalvlaran/bspmatch/telemetry"
)

// seedAll registers every vertex this process still holds as a snek, if
// it is not already bound into some fragment. Safe to call every
// round: Seed is idempotent.
func seedAll(lg *localgraph.Graph, reg *snake.Registry) {
	for _, v := range lg.VertexIDs() {
		reg.Seed(v)
	}
}

// growthCandidate returns the smallest-id neighbor of s's head that is
// a legal next absorption target: not the direction the fragment just
// came from, not already a member of this same fragment, and — if
// local — currently exposed as some chain's head (a belly or
// tail-interior vertex has already been consumed into a larger
// fragment and cannot be grown into directly) whose own proposal is
// not still awaiting CONFIRM/REJECT. Remote candidates are
// always returned as-is, since only the owning process can tell what
// role they currently play.
func growthCandidate(lg *localgraph.Graph, reg *snake.Registry, base uint64, s *snake.Snake) (w uint64, ok bool) {
	vert := lg.Vertex(s.Head)
	if vert == nil {
		return 0, false
	}
	ids := make([]uint64, 0, len(vert.Neighbors))
	for n := range vert.Neighbors {
		ids = append(ids, n)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, cand := range ids {
		if cand == s.PrevNode {
			continue
		}
		if ownerBase, member := reg.OwnerBase(cand); member && ownerBase == base {
			continue
		}
		if lg.Owner(cand) == lg.PID() {
			candBase, isHead := reg.HeadBase(cand)
			if !isHead {
				continue
			}
			if cs, ok := reg.Get(candBase); ok && cs.NextNode != 0 {
				continue
			}
		}
		return cand, true
	}
	return 0, false
}

// grow attempts one absorption step for every local fragment whose head
// has not already proposed toward a candidate this round (NextNode ==
// none), ordered by ascending base for determinism. A local candidate
// is absorbed immediately via reg.Concatenate (no wire message). A
// remote candidate is proposed via MOVE against the fragment's head,
// and NextNode is set to the candidate so this head does not propose
// again while the match is pending confirmation.
func grow(lg *localgraph.Graph, reg *snake.Registry, out *outbox.Outbox) {
	for _, base := range reg.Bases() {
		s, ok := reg.Get(base)
		if !ok || s.NextNode != 0 {
			continue
		}
		w, found := growthCandidate(lg, reg, base, s)
		if !found {
			continue
		}

		if lg.Owner(w) == lg.PID() {
			_ = reg.Concatenate(base, s.Head, w)
			continue
		}

		out.Add(lg.Owner(w), instruction.New(instruction.Move, s.Head, w))
		s.NextNode = w
	}
}

// chainOrder renders s as a single ordered slice from Head to Tail,
// inclusive — the same traversal snake.Registry uses internally, needed
// here only to search for an inheritable junction from outside the
// package.
func chainOrder(s *snake.Snake) []uint64 {
	order := make([]uint64, 0, len(s.Belly)+2)
	order = append(order, s.Head)
	order = append(order, s.Belly...)
	if s.Tail != s.Head {
		order = append(order, s.Tail)
	}
	return order
}

// findChainJunction looks for two of base's neighbors that sit
// consecutively in some other fragment's chain — the condition
// snake.Registry.Inherit requires to splice base's snek in between
// them.
func findChainJunction(reg *snake.Registry, base uint64, neighbors []uint64) (v1, v2 uint64, ok bool) {
	present := make(map[uint64]bool, len(neighbors))
	for _, n := range neighbors {
		present[n] = true
	}
	for _, hostBase := range reg.Bases() {
		if hostBase == base {
			continue
		}
		host, exists := reg.Get(hostBase)
		if !exists {
			continue
		}
		chain := chainOrder(host)
		for i := 0; i+1 < len(chain); i++ {
			if present[chain[i]] && present[chain[i+1]] {
				return chain[i], chain[i+1], true
			}
		}
	}
	return 0, 0, false
}

// inheritLeftovers splices every still-bare snek whose two local
// neighbors are adjacent elements of some other fragment's chain into
// that chain, via reg.Inherit. growthCandidate deliberately refuses to
// grow a head toward a local vertex that is not itself a head (a belly
// or tail-interior vertex has already been consumed into a larger
// fragment), so a vertex whose only edges land on a chain's interior —
// never on its growable head — would otherwise never be absorbed by
// grow() alone and would be stranded as an eternal singleton despite
// having two usable edges into the graph. This only resolves the
// fully local junction: reg.Inherit's own adjacency search only walks
// this process's registry, so a junction straddling a process
// boundary is out of reach here (see the package doc).
//
// Only sneks with both NextNode and PrevNode still unset are
// considered: NextNode != 0 means grow() already proposed a MOVE for
// this vertex this round (its fate is undecided, splicing it now would
// race the pending CONFIRM/REJECT), and PrevNode != 0 means some remote
// hunter has already claimed this vertex under a different Base,
// leaving it no longer safe to insert under its own vertex id.
func inheritLeftovers(lg *localgraph.Graph, reg *snake.Registry) {
	for _, base := range reg.Bases() {
		if !reg.Atomic(base) {
			continue
		}
		s, ok := reg.Get(base)
		if !ok || s.NextNode != 0 || s.PrevNode != 0 {
			continue
		}

		vert := lg.Vertex(s.Head)
		if vert == nil {
			continue
		}
		neighbors := make([]uint64, 0, len(vert.Neighbors))
		for n := range vert.Neighbors {
			if lg.Owner(n) == lg.PID() {
				neighbors = append(neighbors, n)
			}
		}
		if len(neighbors) < 2 {
			continue
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

		v1, v2, found := findChainJunction(reg, base, neighbors)
		if !found {
			continue
		}
		_ = reg.Inherit(base, s.Head, v2, v1)
	}
}

// harvest converts every locally fully-resolved fragment into matched
// pairs recorded on lg, and removes the harvested vertices from the
// local graph; RemoveVertex queues a DELETE for each remote neighbor,
// as for any other removal.
func harvest(lg *localgraph.Graph, reg *snake.Registry, out *outbox.Outbox) {
	for _, base := range reg.Bases() {
		pairs, ok := reg.HarvestPairs(base)
		if !ok {
			continue
		}
		for _, p := range pairs {
			lg.InsertMatch(p[0], p[1])
			lg.RemoveVertex(p[0], out)
			lg.RemoveVertex(p[1], out)
		}
	}
}

// Run drives Phase II to completion on this process: seed, grow,
// harvest, exchange, apply, harvest again, repeat until a round's
// global total is zero. reg must be a fresh snake.Registry; lg should
// hold exactly the vertices Phase I left unmatched. Returns the number
// of supersteps executed. meter may be nil (every Meter method is then
// a no-op).
func Run(ctx context.Context, sub bsp.Substrate, lg *localgraph.Graph, reg *snake.Registry, meter *telemetry.Meter) (rounds int, err error) {
	out := outbox.New(sub.NumProcs())

	for {
		seedAll(lg, reg)
		grow(lg, reg, out)
		inheritLeftovers(lg, reg)
		harvest(lg, reg, out)

		for _, ins := range out.Pending() {
			meter.RecordSent(ctx, ins.Tag)
		}

		received, _, globalTotal, err := bsp.ExchangeRound(ctx, sub, out)
		if err != nil {
			return rounds, fmt.Errorf("phase2: %w", err)
		}
		rounds++
		meter.RecordSuperstep(ctx, "phase2")
		for _, ins := range received {
			meter.RecordReceived(ctx, ins.Tag)
		}
		if globalTotal == 0 {
			return rounds, nil
		}

		interpreter.SortForApplication(received)
		for _, ins := range received {
			if err := interpreter.ApplyPhase2(lg, reg, out, ins); err != nil {
				return rounds, fmt.Errorf("phase2: applying instruction from process %d: %w", ins.From, err)
			}
		}
		harvest(lg, reg, out)
	}
}
