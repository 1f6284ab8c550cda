package emulator

import (
	"context"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/instruction"
)

// procSubstrate is one emulated process's view of its Cluster. It
// implements bsp.Substrate by reading and writing the Cluster's
// per-process state directly — there is no actual network hop, but the
// access pattern (register locally, put into the target's state under
// the target's own lock) mirrors what a real one-sided RMA substrate
// would do.
type procSubstrate struct {
	cluster *Cluster
	pid     int
}

func (s *procSubstrate) NumProcs() int { return s.cluster.numProcs }

func (s *procSubstrate) PID() int { return s.pid }

func (s *procSubstrate) Barrier(ctx context.Context) error {
	return s.cluster.barrier.wait(ctx)
}

func (s *procSubstrate) RegisterInts(buf []uint64) int {
	st := s.cluster.states[s.pid]
	st.mu.Lock()
	defer st.mu.Unlock()
	handle := st.nextHandle
	st.nextHandle++
	st.intBufs[handle] = buf
	return handle
}

func (s *procSubstrate) RegisterInstructions(buf []instruction.Instruction) int {
	st := s.cluster.states[s.pid]
	st.mu.Lock()
	defer st.mu.Unlock()
	handle := st.nextHandle
	st.nextHandle++
	st.instrBufs[handle] = buf
	return handle
}

func (s *procSubstrate) UnregisterInts(handle int) {
	st := s.cluster.states[s.pid]
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.intBufs, handle)
}

func (s *procSubstrate) UnregisterInstructions(handle int) {
	st := s.cluster.states[s.pid]
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.instrBufs, handle)
}

func (s *procSubstrate) PutInts(ctx context.Context, targetPID int, src []uint64, dstHandle, offset int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.cluster.states[targetPID]
	target.mu.Lock()
	defer target.mu.Unlock()

	buf, ok := target.intBufs[dstHandle]
	if !ok {
		return bsp.ErrBufferNotRegistered
	}
	if offset < 0 || offset+len(src) > len(buf) {
		return bsp.ErrPutOutOfRange
	}
	copy(buf[offset:offset+len(src)], src)
	return nil
}

func (s *procSubstrate) PutInstructions(ctx context.Context, targetPID int, src []instruction.Instruction, dstHandle, offset int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.cluster.states[targetPID]
	target.mu.Lock()
	defer target.mu.Unlock()

	buf, ok := target.instrBufs[dstHandle]
	if !ok {
		return bsp.ErrBufferNotRegistered
	}
	if offset < 0 || offset+len(src) > len(buf) {
		return bsp.ErrPutOutOfRange
	}
	copy(buf[offset:offset+len(src)], src)
	return nil
}
