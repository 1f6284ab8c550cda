package bsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bspmatch/instruction"
	"github.com/katalvlaran/bspmatch/outbox"
)

// ExchangeRound performs one full BSP exchange of the instructions queued
// in out, in four phases of two barriers each:
//
//  1. Count exchange — every process learns, for every other process q,
//     how many instructions q intends to send it.
//  2. Offset exchange — every process computes where each sender's
//     payload will land in its own receive buffer, and publishes that
//     offset back to the sender.
//  3. Payload exchange — every process writes its queued instructions
//     directly into each receiver's receive buffer at the offset it was
//     told to use.
//  4. Quiescence reduction — every process publishes how many
//     instructions it received to every process, and each sums the P
//     published values.
//
// It returns the instructions addressed to this process, grouped by
// ascending source process id (From), this process's own received
// count, and the round's global total, summed across every process.
// Every process computes the global total from the same P values, so all
// of them reach the same verdict; callers loop until the returned global
// total is zero.
//
// out is drained as a side effect: every queue is taken (and therefore
// emptied) during the payload phase, ready for the next round's
// enqueues. All four barriers run unconditionally for every process,
// regardless of how much — or how little — that process has to send or
// receive this round, so that no process can fall out of step with its
// peers.
func ExchangeRound(ctx context.Context, sub Substrate, out *outbox.Outbox) (received []instruction.Instruction, localTotal int, globalTotal int, err error) {
	numProcs := sub.NumProcs()
	me := sub.PID()

	// Call FinalizeLiveness before inspecting queue lengths: it may
	// still add KeepAlive fills this round.
	out.FinalizeLiveness()

	send := make([]uint64, numProcs)
	for q := 0; q < numProcs; q++ {
		send[q] = uint64(out.Len(q))
	}

	// --- 1) Count exchange ---------------------------------------------
	counts := make([]uint64, numProcs) // counts[q] = instructions q will send me
	countsHandle := sub.RegisterInts(counts)

	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: count-exchange barrier: %w", err)
	}
	for q := 0; q < numProcs; q++ {
		if err := sub.PutInts(ctx, q, []uint64{send[q]}, countsHandle, me); err != nil {
			return nil, 0, 0, fmt.Errorf("bsp: publish send-count to process %d: %w", q, err)
		}
	}
	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: count-exchange barrier: %w", err)
	}
	sub.UnregisterInts(countsHandle)

	// prefix[q] is the offset, within *my* receive buffer, where
	// process q's payload should land; total is how many instructions
	// I will receive overall this round.
	prefix := make([]uint64, numProcs)
	var total uint64
	for q := 0; q < numProcs; q++ {
		prefix[q] = total
		total += counts[q]
	}

	// --- 2) Offset exchange ---------------------------------------------
	// myOffsetAt[r] = the offset I should use when I send to process r;
	// published by r itself once it knows its own prefix sums.
	myOffsetAt := make([]uint64, numProcs)
	offsetsHandle := sub.RegisterInts(myOffsetAt)

	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: offset-exchange barrier: %w", err)
	}
	for q := 0; q < numProcs; q++ {
		if err := sub.PutInts(ctx, q, []uint64{prefix[q]}, offsetsHandle, me); err != nil {
			return nil, 0, 0, fmt.Errorf("bsp: publish offset to process %d: %w", q, err)
		}
	}
	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: offset-exchange barrier: %w", err)
	}
	sub.UnregisterInts(offsetsHandle)

	// --- 3) Payload exchange ---------------------------------------------
	recvBuf := make([]instruction.Instruction, total)
	payloadHandle := sub.RegisterInstructions(recvBuf)

	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: payload-exchange barrier: %w", err)
	}
	for q := 0; q < numProcs; q++ {
		batch := out.Take(q)
		if len(batch) == 0 {
			continue
		}
		if err := sub.PutInstructions(ctx, q, batch, payloadHandle, int(myOffsetAt[q])); err != nil {
			return nil, 0, 0, fmt.Errorf("bsp: publish payload to process %d: %w", q, err)
		}
	}
	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: payload-exchange barrier: %w", err)
	}
	sub.UnregisterInstructions(payloadHandle)

	// Tag each received instruction with its source process, derived
	// from the prefix ranges computed above, so the interpreter can
	// group by source without any wire-level sender id.
	for q := 0; q < numProcs; q++ {
		start, end := prefix[q], prefix[q]+counts[q]
		for i := start; i < end; i++ {
			recvBuf[i].From = q
		}
	}

	// --- 4) Quiescence reduction -----------------------------------------
	// Every process publishes its own received total to every other
	// process (including itself, for symmetry), so every process sums
	// the exact same P values and reaches the exact same verdict, so no
	// process stops while a peer is still waiting at the next barrier.
	reduceBuf := make([]uint64, numProcs)
	reduceHandle := sub.RegisterInts(reduceBuf)

	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: quiescence-reduction barrier: %w", err)
	}
	for q := 0; q < numProcs; q++ {
		if err := sub.PutInts(ctx, q, []uint64{total}, reduceHandle, me); err != nil {
			return nil, 0, 0, fmt.Errorf("bsp: publish received-total to process %d: %w", q, err)
		}
	}
	if err := sub.Barrier(ctx); err != nil {
		return nil, 0, 0, fmt.Errorf("bsp: quiescence-reduction barrier: %w", err)
	}
	sub.UnregisterInts(reduceHandle)

	var grandTotal uint64
	for _, t := range reduceBuf {
		grandTotal += t
	}

	return recvBuf, int(total), int(grandTotal), nil
}
