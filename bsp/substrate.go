// SPDX-License-Identifier: MIT
// Package: bspmatch/bsp
//
// substrate.go — the BSP runtime's consumed interface: process
// count, process index, a barrier, one-sided puts into registered remote
// buffers, and buffer register/unregister. The core never uses any other
// primitive. Two buffer kinds are registered: small integer buffers for
// the count/offset phases of an exchange, and instruction buffers for
// the payload phase.
package bsp

import (
	"context"
	"errors"

	"github.com/katalvlaran/bspmatch/instruction"
)

// Sentinel errors surfaced by a Substrate implementation. These are
// substrate failures: fatal, no retries.
var (
	// ErrBufferNotRegistered indicates a Put targeted a handle that was
	// never registered, or has since been unregistered.
	ErrBufferNotRegistered = errors.New("bsp: destination buffer not registered")

	// ErrPutOutOfRange indicates a Put's (offset, len(src)) range does
	// not fit inside the registered destination buffer.
	ErrPutOutOfRange = errors.New("bsp: put range exceeds registered buffer")

	// ErrBarrierMismatch indicates the substrate detected processes
	// arriving at different logical barriers (e.g. a process left the
	// SPMD program early). The emulator cannot distinguish this from a
	// hung peer; both are fatal.
	ErrBarrierMismatch = errors.New("bsp: barrier mismatch")
)

// Substrate is the BSP runtime collaborator this module drives against. Any
// implementation — threads, an in-process emulator, or a real MPI-style
// runtime — that satisfies these semantics may drive the engine.
//
// All methods are only ever called from the single goroutine that owns
// this process's Substrate value, except insofar as Put targets another
// process's registered buffer — that write is the one place two
// "processes" interact, and it is only well-defined at all because the
// calling code (bsp.ExchangeRound) pre-computes disjoint offsets so no
// two senders ever race on the same destination slot.
type Substrate interface {
	// NumProcs returns the total number of cooperating processes, P.
	NumProcs() int

	// PID returns this process's index in [0, NumProcs()).
	PID() int

	// Barrier blocks until every process has called Barrier for the
	// same logical superstep, or ctx is done. It is the only
	// suspension point in the core.
	Barrier(ctx context.Context) error

	// RegisterInts registers buf as a remote-writable buffer of
	// unsigned integers (used for the count/offset phases of an
	// exchange) and returns a handle other processes can target with
	// PutInts. The handle is local to this process.
	RegisterInts(buf []uint64) int

	// RegisterInstructions registers buf as a remote-writable buffer
	// of instructions (used for the payload phase of an exchange) and
	// returns a handle other processes can target with PutInstructions.
	RegisterInstructions(buf []instruction.Instruction) int

	// UnregisterInts releases a handle returned by RegisterInts. Puts
	// targeting it afterwards return ErrBufferNotRegistered.
	UnregisterInts(handle int)

	// UnregisterInstructions releases a handle returned by
	// RegisterInstructions.
	UnregisterInstructions(handle int)

	// PutInts performs a one-sided write of src into targetPID's
	// buffer registered under dstHandle, starting at offset.
	PutInts(ctx context.Context, targetPID int, src []uint64, dstHandle, offset int) error

	// PutInstructions performs a one-sided write of src into
	// targetPID's buffer registered under dstHandle, starting at
	// offset.
	PutInstructions(ctx context.Context, targetPID int, src []instruction.Instruction, dstHandle, offset int) error
}
