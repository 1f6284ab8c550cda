package instruction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_PadsPayload(t *testing.T) {
	ins := New(Move, 7, 9)
	require.Equal(t, Move, ins.Tag)
	require.Equal(t, Payload{7, 9, 0, 0}, ins.Payload)
}

func TestSamePayload(t *testing.T) {
	a := New(Delete, 1, 2)
	b := New(Delete, 1, 2)
	c := New(Delete, 1, 3)
	d := New(Move, 1, 2)

	require.True(t, SamePayload(a, b))
	require.False(t, SamePayload(a, c))
	require.False(t, SamePayload(a, d))
}

func TestSamePayload_IgnoresFrom(t *testing.T) {
	a := New(KeepAlive)
	a.From = 2
	b := New(KeepAlive)
	b.From = 5
	require.True(t, SamePayload(a, b))
}

func TestEvalOrder(t *testing.T) {
	require.Less(t, Inherit.EvalOrder(), Reverse.EvalOrder())
	require.Less(t, Reverse.EvalOrder(), Concatenate.EvalOrder())
	require.Less(t, Concatenate.EvalOrder(), Delete.EvalOrder())
	require.Equal(t, Delete.EvalOrder(), Move.EvalOrder())
	require.Equal(t, Move.EvalOrder(), KeepAlive.EvalOrder())
}

func TestTag_String(t *testing.T) {
	require.Equal(t, "KEEP_ALIVE", KeepAlive.String())
	require.Equal(t, "CONCATENATE", Concatenate.String())
}
