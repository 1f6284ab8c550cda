// SPDX-License-Identifier: MIT
// Package: bspmatch/bsp/emulator
package emulator

import (
	"context"
	"sync"

	"github.com/katalvlaran/bspmatch/bsp"
)

// cyclicBarrier is a reusable rendezvous point for exactly n goroutines.
// Unlike sync.WaitGroup, it can be waited on repeatedly: each generation
// gets its own release channel, so a goroutine that arrives for
// generation g+1 can never observe generation g's release.
type cyclicBarrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
}

func newCyclicBarrier(n int) *cyclicBarrier {
	return &cyclicBarrier{n: n, release: make(chan struct{})}
}

// wait blocks the calling goroutine until n goroutines have called wait
// for the same generation, or ctx is done. The last arrival closes the
// current generation's release channel and opens the next one.
func (b *cyclicBarrier) wait(ctx context.Context) error {
	b.mu.Lock()
	gen := b.release
	b.arrived++
	if b.arrived == b.n {
		b.arrived = 0
		b.release = make(chan struct{})
		close(gen)
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	select {
	case <-gen:
		return nil
	case <-ctx.Done():
		return bsp.ErrBarrierMismatch
	}
}
