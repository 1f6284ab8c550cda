// SPDX-License-Identifier: MIT
// Package: bspmatch/outbox
//
// outbox.go — the per-destination todo list: a
// queue of instructions awaiting the next BSP exchange, one per
// destination process, with soft-dedup and a liveness-fill pass so a
// round never leaves one side of the exchange seeing zero traffic while
// the other side still has work to do.
package outbox

import "github.com/katalvlaran/bspmatch/instruction"

// Outbox holds one FIFO queue of pending instructions per destination
// process. It is not safe for concurrent use from more than one
// goroutine; each BSP process owns exactly one Outbox.
type Outbox struct {
	queues [][]instruction.Instruction
}

// New returns an Outbox with an empty queue for each of numProcs
// destinations.
func New(numProcs int) *Outbox {
	return &Outbox{queues: make([][]instruction.Instruction, numProcs)}
}

// Add appends ins to the queue for destination dst. If ins has the same
// tag and payload as the last instruction already queued for dst, it is
// dropped instead (idempotent soft-dedup). This collapses
// duplicate broadcasts produced when several local vertices imply the
// same remote effect, e.g. two local neighbors of a just-deleted vertex
// both wanting to tell the same remote owner.
func (o *Outbox) Add(dst int, ins instruction.Instruction) {
	q := o.queues[dst]
	if n := len(q); n > 0 && instruction.SamePayload(q[n-1], ins) {
		return
	}
	o.queues[dst] = append(q, ins)
}

// AddBroadcast appends ins to every destination's queue, each receiving
// an independent copy (subject to the same soft-dedup rule as Add).
func (o *Outbox) AddBroadcast(ins instruction.Instruction) {
	for dst := range o.queues {
		o.Add(dst, ins)
	}
}

// FinalizeLiveness fills every currently-empty queue with a single
// KeepAlive instruction, but only if at least one queue is non-empty
// Call this once, after all local computation for the
// round has finished enqueueing and before the BSP exchange begins.
//
// Rationale: BSP counts must be nonzero on both ends of the count
// exchange to keep a listener inside the round loop; without this fill,
// a process with nothing to receive would see zero incoming messages
// and terminate while a peer is still making progress.
func (o *Outbox) FinalizeLiveness() {
	anyNonEmpty := false
	for _, q := range o.queues {
		if len(q) > 0 {
			anyNonEmpty = true
			break
		}
	}
	if !anyNonEmpty {
		return
	}

	keepAlive := instruction.New(instruction.KeepAlive)
	for dst, q := range o.queues {
		if len(q) == 0 {
			o.queues[dst] = append(q, keepAlive)
		}
	}
}

// Take returns and clears the queue for destination dst. The caller owns
// the returned slice; Outbox allocates a fresh empty queue for the next
// round.
func (o *Outbox) Take(dst int) []instruction.Instruction {
	q := o.queues[dst]
	o.queues[dst] = nil
	return q
}

// Len reports how many instructions are currently queued for dst,
// without draining the queue.
func (o *Outbox) Len(dst int) int {
	return len(o.queues[dst])
}

// TotalQueued sums the queue lengths across every destination. A round
// whose TotalQueued is zero before FinalizeLiveness is a round with
// nothing left to say — the quiescence condition for both Phase I and
// Phase II.
func (o *Outbox) TotalQueued() int {
	total := 0
	for _, q := range o.queues {
		total += len(q)
	}
	return total
}

// NumDestinations returns the number of per-destination queues.
func (o *Outbox) NumDestinations() int {
	return len(o.queues)
}

// Pending returns a snapshot of every instruction currently queued
// across all destinations, without draining any queue or disturbing
// ordering. Take is how the exchange actually empties the queues;
// Pending exists only so a caller (phase1/phase2's driver, for
// per-round telemetry) can inspect what is about to be sent before it
// goes out.
func (o *Outbox) Pending() []instruction.Instruction {
	var all []instruction.Instruction
	for _, q := range o.queues {
		all = append(all, q...)
	}
	return all
}
