package outbox

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspmatch/instruction"
)

func TestAdd_SoftDedup(t *testing.T) {
	o := New(2)
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	require.Equal(t, 1, o.Len(0))

	o.Add(0, instruction.New(instruction.Delete, 1, 3))
	require.Equal(t, 2, o.Len(0))
}

func TestAdd_DedupOnlyCollapsesConsecutive(t *testing.T) {
	o := New(1)
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	o.Add(0, instruction.New(instruction.Delete, 1, 3))
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	require.Equal(t, 3, o.Len(0))
}

func TestAddBroadcast(t *testing.T) {
	o := New(3)
	o.AddBroadcast(instruction.New(instruction.KeepAlive))
	for dst := 0; dst < 3; dst++ {
		require.Equal(t, 1, o.Len(dst))
	}
}

func TestFinalizeLiveness_NoOpWhenAllEmpty(t *testing.T) {
	o := New(3)
	o.FinalizeLiveness()
	require.Equal(t, 0, o.TotalQueued())
}

func TestFinalizeLiveness_FillsEmptyQueues(t *testing.T) {
	o := New(3)
	o.Add(1, instruction.New(instruction.Move, 4, 5))
	o.FinalizeLiveness()

	require.Equal(t, 1, o.Len(0))
	require.Equal(t, instruction.KeepAlive, o.Take(0)[0].Tag)

	require.Equal(t, 1, o.Len(1))
	require.Equal(t, instruction.Move, o.Take(1)[0].Tag)

	require.Equal(t, 1, o.Len(2))
	require.Equal(t, instruction.KeepAlive, o.Take(2)[0].Tag)
}

func TestTake_DrainsAndResets(t *testing.T) {
	o := New(1)
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	got := o.Take(0)
	require.Len(t, got, 1)
	require.Equal(t, 0, o.Len(0))
}

func TestTotalQueued(t *testing.T) {
	o := New(2)
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	o.Add(1, instruction.New(instruction.Move, 3, 4))
	o.Add(1, instruction.New(instruction.Move, 5, 6))
	require.Equal(t, 3, o.TotalQueued())
}

func TestPending_SnapshotsWithoutDraining(t *testing.T) {
	o := New(2)
	o.Add(0, instruction.New(instruction.Delete, 1, 2))
	o.Add(1, instruction.New(instruction.Move, 3, 4))

	got := o.Pending()
	require.Len(t, got, 2)
	require.Equal(t, 2, o.TotalQueued(), "Pending must not drain any queue")

	again := o.Pending()
	require.Equal(t, got, again)
}

func TestPending_EmptyOutbox(t *testing.T) {
	o := New(3)
	require.Empty(t, o.Pending())
}
