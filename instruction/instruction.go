// SPDX-License-Identifier: MIT
// Package: bspmatch/instruction
//
// instruction.go — the tagged message exchanged between processes during a
// BSP superstep. Every instruction is self-contained: a receiver never
// needs to ask the sender for more context to apply it.
package instruction

import "fmt"

// Tag identifies the kind of instruction and therefore the shape of its
// Payload. The zero value, KeepAlive, is deliberately the "do nothing"
// tag so a zero-valued Instruction is always safe to apply.
type Tag uint8

const (
	// KeepAlive carries no payload. Its only purpose is to keep a
	// destination's expected message count above zero so the receiver
	// does not fall out of the round loop while the sender still has
	// work.
	KeepAlive Tag = iota

	// Delete(v, w): v was removed on the sender; remove v from w's
	// neighbor set locally.
	Delete

	// Move(v, w): v (remote, degree 1) proposes matching with w
	// (local). If w still exists, record {v,w}, remove w, and confirm
	// the match back to v's owner — v does not remove itself on
	// proposing, since two processes whose degree-1 vertices happen to
	// point at each other (an isolated edge split across a partition)
	// would otherwise both optimistically self-remove in the same
	// round and find nothing left to receive each other's proposal.
	Move

	// Confirm(v): v's proposed match was accepted by the remote side;
	// unconditionally remove v here, cascading DELETE to its other
	// neighbors exactly as any other removal would.
	Confirm

	// Reject(v): v's proposal was declined because the target vertex
	// is no longer present, or was itself busy awaiting confirmation of
	// its own outgoing proposal to some third vertex, or (Phase II) sits
	// inside a chain rather than at its head — not the mutual-collision case
	// (that one resolves via CONFIRM on the winning side), but a plain
	// case of v picking a target that turned out unavailable this
	// round. v stops treating itself as pending and tries again next
	// round, possibly against a different neighbor.
	Reject

	// Inherit(snekBase, snekHead, v2, v1): splice the length-one snake
	// identified by snekBase between the receiver's adjacent snake
	// vertices v1 and v2.
	Inherit

	// Reverse(snakeBase, newTail): flip the named snake's orientation
	// so newTail becomes its base.
	Reverse

	// Concatenate(hunterBase, hunterHead, preyBase): absorb the snake
	// based at preyBase into the snake based at hunterBase.
	Concatenate
)

// String renders the tag name for logging and diagnostics.
func (t Tag) String() string {
	switch t {
	case KeepAlive:
		return "KEEP_ALIVE"
	case Delete:
		return "DELETE"
	case Move:
		return "MOVE"
	case Confirm:
		return "CONFIRM"
	case Reject:
		return "REJECT"
	case Inherit:
		return "INHERIT"
	case Reverse:
		return "REVERSE"
	case Concatenate:
		return "CONCATENATE"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// EvalOrder returns the tie-break sort key used to order a received batch
// of Phase II instructions before they are applied: INHERIT before
// REVERSE before CONCATENATE, so restructurings land before merges
// within one round. Phase I tags (KeepAlive, Delete, Move, Confirm,
// Reject) are mutually
// commutative and share the lowest-priority bucket.
func (t Tag) EvalOrder() int {
	switch t {
	case Inherit:
		return 0
	case Reverse:
		return 1
	case Concatenate:
		return 2
	default:
		return 3
	}
}

// Payload is the fixed-width argument list carried by an Instruction. Not
// every slot is meaningful for every Tag; see the Tag constants above for
// the per-tag interpretation.
type Payload [4]uint64

// Instruction is a directed request from one process to one other
// process, applied at the start of the next superstep.
type Instruction struct {
	Tag     Tag
	Payload Payload
	// From records the originating process id. It is filled in by the
	// bsp exchange layer on receipt (never by the sender, since a
	// sender does not need its own id in the payload) and is used only
	// to group a received batch by source process for interpretation; it
	// plays no role in equality/dedup.
	From int
}

// New constructs an Instruction with the given tag and payload values.
// Missing trailing values default to zero, which is safe for every tag
// because unused payload slots are never read.
func New(tag Tag, payload ...uint64) Instruction {
	var p Payload
	copy(p[:], payload)
	return Instruction{Tag: tag, Payload: p}
}

// SamePayload reports whether two instructions carry the same tag and
// payload, ignoring From. Used by outbox's soft-dedup.
func SamePayload(a, b Instruction) bool {
	return a.Tag == b.Tag && a.Payload == b.Payload
}
