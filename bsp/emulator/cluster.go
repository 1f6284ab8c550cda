// SPDX-License-Identifier: MIT
// Package emulator provides an in-process bsp.Substrate built from one
// goroutine per logical process, coordinated by a cyclic barrier and
// golang.org/x/sync/errgroup. It exists so the matching engine can be
// driven end to end — and property-tested — without an external MPI-like
// runtime.
package emulator

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/instruction"
)

// processState holds one logical process's registered buffers. Handles
// are local to the owning process and increment monotonically; because
// every process runs the same program (SPMD), processes that register
// buffers in the same call order end up with matching handle numbers
// without any of them communicating the number to the others.
type processState struct {
	mu         sync.Mutex
	nextHandle int
	intBufs    map[int][]uint64
	instrBufs  map[int][]instruction.Instruction
}

func newProcessState() *processState {
	return &processState{
		intBufs:   make(map[int][]uint64),
		instrBufs: make(map[int][]instruction.Instruction),
	}
}

// MaxOversubscription is the largest number of emulated processes this
// package considers reasonable per CPU before a caller (cmd/bspmatch) should
// refuse to proceed: each process is one goroutine spinning through its own
// superstep loop, so oversubscribing far past the core count buys nothing
// but scheduling overhead.
const MaxOversubscription = 8

// Cluster coordinates numProcs emulated processes sharing one barrier.
type Cluster struct {
	numProcs int
	barrier  *cyclicBarrier
	states   []*processState
}

// New builds a Cluster of numProcs emulated processes. numProcs must be
// at least 1.
func New(numProcs int) *Cluster {
	c := &Cluster{
		numProcs: numProcs,
		barrier:  newCyclicBarrier(numProcs),
		states:   make([]*processState, numProcs),
	}
	for i := range c.states {
		c.states[i] = newProcessState()
	}
	return c
}

// Substrate returns the bsp.Substrate view for process pid.
func (c *Cluster) Substrate(pid int) bsp.Substrate {
	return &procSubstrate{cluster: c, pid: pid}
}

// Run spawns one goroutine per process, each invoking program with that
// process's Substrate, and waits for all of them to finish. If any
// invocation returns an error, Run cancels the shared context (causing
// any process still blocked in Barrier to unblock with
// bsp.ErrBarrierMismatch) and returns the first error encountered.
func (c *Cluster) Run(ctx context.Context, program func(ctx context.Context, sub bsp.Substrate, pid int) error) error {
	group, gctx := errgroup.WithContext(ctx)
	for pid := 0; pid < c.numProcs; pid++ {
		pid := pid
		group.Go(func() error {
			if err := program(gctx, c.Substrate(pid), pid); err != nil {
				return fmt.Errorf("emulator: process %d: %w", pid, err)
			}
			return nil
		})
	}
	return group.Wait()
}
