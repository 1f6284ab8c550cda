// SPDX-License-Identifier: MIT
// Package: bspmatch/interpreter
//
// interpreter.go — applies a batch of received
// instructions to a process's local graph state, one instruction at a
// time, enqueueing whatever downstream instructions that application
// implies. Phase II handles Phase I's tags as well as its own, but the
// two phases carry different auxiliary state (Phase II additionally needs the
// snake.Registry), so they are modelled as two separate entry points
// rather than one function branching on a phase flag.
package interpreter

import (
	"errors"
	"sort"

	"github.com/katalvlaran/bspmatch/instruction"
	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/outbox"
	"github.com/katalvlaran/bspmatch/snake"
)

// Sentinel errors returned while interpreting a batch. They mark
// protocol violations. phase1.Run and phase2.Run return the first one
// they meet, wrapped with the sending process, and the run ends: the
// error is not logged here, and the rest of the batch is not applied.
var (
	// ErrUnknownTag indicates an instruction carried a Tag this
	// interpreter does not recognize in the active phase.
	ErrUnknownTag = errors.New("interpreter: unknown instruction tag")

	// ErrOwnershipMismatch indicates an instruction named a vertex this
	// process does not own, or does not currently hold.
	ErrOwnershipMismatch = errors.New("interpreter: vertex not owned or not present")
)

// SortForApplication orders batch by ascending Tag.EvalOrder(), stable
// with respect to the original (source-grouped) order, so that within
// one superstep restructuring instructions are applied before merges
// without disturbing the "grouped by source process" ordering used for
// ties.
func SortForApplication(batch []instruction.Instruction) {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Tag.EvalOrder() < batch[j].Tag.EvalOrder()
	})
}

// ApplyPhase1 applies one received instruction during Phase I
// (singleton elimination). Recognized tags: KeepAlive (no-op), Delete,
// Move, Confirm, Reject. Any mutation that implies effects on a third
// process is enqueued on out for the next exchange.
//
// pending maps a locally-proposed vertex to the remote target it
// proposed to, and is consulted for two distinct races:
//
//   - Mutual collision: two vertices on different processes whose sole
//     neighbor is each other (an isolated edge split across a
//     partition) each see themselves as the proposer and the other as
//     the local target, so both sides would otherwise accept each
//     other's MOVE in the same round and record the pair twice. When
//     the incoming proposal's target w is itself pending toward the
//     incoming proposer v, only the smaller-id side accepts; the other
//     drops its copy and lets the accepting side's CONFIRM settle
//     things next round.
//   - Busy target: w may be pending toward some OTHER vertex entirely
//     (w is mid-growth on its own, unrelated to v) — accepting v's
//     proposal here as well as w's own proposal succeeding elsewhere
//     would double-match w. The incoming proposal is declined with a
//     REJECT so v can retry against a different candidate next round.
//
// Pass nil if the caller has already ruled out both races by other
// means (phase2's driver checks its own NextNode bookkeeping against
// the snake registry before delegating here).
func ApplyPhase1(lg *localgraph.Graph, out *outbox.Outbox, pending map[uint64]uint64, ins instruction.Instruction) error {
	switch ins.Tag {
	case instruction.KeepAlive:
		return nil

	case instruction.Delete:
		// Delete(v, w): v was removed remotely; remove v from w's
		// neighbor set, if w is still present locally.
		v, w := ins.Payload[0], ins.Payload[1]
		loc, wert := lg.IndexOf(w)
		if loc != localgraph.Found {
			return nil // w already gone; nothing to clean up
		}
		delete(wert.Neighbors, v)
		if wert.Degree() == 0 {
			lg.RemoveEmptyVertices()
		}
		return nil

	case instruction.Move:
		// Move(v, w): v (remote) proposes matching with w (local). If w
		// still exists, record {v,w}, remove w cascading DELETE to its
		// other neighbors, and send v's owner a CONFIRM so v is only
		// removed once the match is actually settled.
		v, w := ins.Payload[0], ins.Payload[1]
		loc, _ := lg.IndexOf(w)
		if loc != localgraph.Found {
			out.Add(lg.Owner(v), instruction.New(instruction.Reject, v))
			return nil // w already consumed by another match
		}
		if target, busy := pending[w]; busy {
			if target != v {
				out.Add(lg.Owner(v), instruction.New(instruction.Reject, v))
				return nil // w is pending toward someone else entirely
			}
			if v > w {
				return nil // mutual collision; the mirror instruction accepts instead
			}
		}
		lg.InsertMatch(v, w)
		lg.RemoveVertex(w, out)
		delete(pending, w)
		out.Add(lg.Owner(v), instruction.New(instruction.Confirm, v))
		return nil

	case instruction.Confirm:
		// Confirm(v): our own proposal for v was accepted remotely; v
		// is now matched, so remove it unconditionally.
		v := ins.Payload[0]
		delete(pending, v)
		lg.RemoveVertex(v, out)
		return nil

	case instruction.Reject:
		// Reject(v): our own proposal for v was declined; v is free
		// again and findSingleton may offer it (possibly to a
		// different neighbor) next sweep.
		v := ins.Payload[0]
		delete(pending, v)
		return nil

	default:
		return ErrUnknownTag
	}
}

// ApplyPhase2 applies one received instruction during Phase II (snake
// engine). Recognized tags: KeepAlive (no-op), Inherit, Reverse,
// Concatenate, plus Phase I's Delete, Move, Confirm and Reject, which
// are delegated to ApplyPhase1 (Move, Confirm and Reject after first
// updating the snake registry) so that chain endpoints that degrade
// back into plain singletons are handled by the same logic: snakes construct
// augmenting paths across boundaries, and once a stretch reduces to a
// simple one-edge relationship its matching follows Phase I's rules
// unchanged.
func ApplyPhase2(lg *localgraph.Graph, reg *snake.Registry, out *outbox.Outbox, ins instruction.Instruction) error {
	switch ins.Tag {
	case instruction.KeepAlive:
		return nil

	case instruction.Delete:
		return ApplyPhase1(lg, out, nil, ins)

	case instruction.Move:
		// Two chain heads on different processes can grow toward each
		// other in the same round exactly as two Phase I singletons
		// can. The collision check reuses NextNode (the chain-local
		// equivalent of Phase I's pending map: a head only has a
		// NextNode once it has proposed toward it) instead of a
		// separate map, since that is already the registry's record of
		// "this head is currently pending toward this vertex". A head
		// busy growing toward some OTHER vertex entirely is just as
		// unavailable as one already removed — accepting both that
		// growth and this incoming proposal would double-match it — so
		// it is declined with a REJECT rather than silently accepted.
		v, w := ins.Payload[0], ins.Payload[1]
		base, isHead := reg.HeadBase(w)
		if isHead {
			if s, ok := reg.Get(base); ok && s.NextNode != 0 {
				if s.NextNode != v {
					out.Add(lg.Owner(v), instruction.New(instruction.Reject, v))
					return nil
				}
				if v > w {
					return nil // mutual collision; the mirror instruction accepts instead
				}
			}
		} else if _, member := reg.OwnerBase(w); member {
			out.Add(lg.Owner(v), instruction.New(instruction.Reject, v))
			return nil // w is inside a chain; only a chain's head can be matched away
		}
		if isHead && lg.HasVertex(w) {
			reg.Advance(base) // w leaves its fragment before it leaves lg
		}
		return ApplyPhase1(lg, out, nil, ins)

	case instruction.Confirm:
		// A chain head's own proposal was accepted: advance the
		// fragment (pop the matched head, promote the next vertex)
		// before the generic removal runs, so the registry never
		// points at a vertex that is about to disappear from lg.
		v := ins.Payload[0]
		if base, ok := reg.OwnerBase(v); ok {
			reg.Advance(base)
		}
		return ApplyPhase1(lg, out, nil, ins)

	case instruction.Reject:
		// Our chain head's own proposal was declined: it is not
		// matched, not advanced, just free to pick another candidate
		// next round.
		v := ins.Payload[0]
		if base, ok := reg.OwnerBase(v); ok {
			if s, ok := reg.Get(base); ok {
				s.NextNode = 0
			}
		}
		return ApplyPhase1(lg, out, nil, ins)

	case instruction.Inherit:
		snekBase, snekHead, hostV2, hostV1 := ins.Payload[0], ins.Payload[1], ins.Payload[2], ins.Payload[3]
		if err := reg.Inherit(snekBase, snekHead, hostV2, hostV1); err != nil {
			return ErrOwnershipMismatch
		}
		return nil

	case instruction.Reverse:
		base, newTail := ins.Payload[0], ins.Payload[1]
		if err := reg.Reverse(base, newTail); err != nil {
			return ErrOwnershipMismatch
		}
		return nil

	case instruction.Concatenate:
		// CONCATENATE/REVERSE/INHERIT remain fully supported wire
		// instructions, but phase2's own driver never sends CONCATENATE across a
		// process boundary for growth (see phase2's package doc): it
		// only calls reg.Concatenate directly, in-process, when a
		// candidate neighbor is local. Crossing a boundary always goes
		// through MOVE/CONFIRM instead, the same settled mechanism
		// Phase I uses, so augmenting a chain across processes never
		// needs a second wire round-trip to resolve which end is which.
		hunterBase, hunterHead, preyBase := ins.Payload[0], ins.Payload[1], ins.Payload[2]
		if err := reg.Concatenate(hunterBase, hunterHead, preyBase); err != nil {
			return ErrOwnershipMismatch
		}
		return nil

	default:
		return ErrUnknownTag
	}
}
