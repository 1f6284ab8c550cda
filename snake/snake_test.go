package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeed_Idempotent(t *testing.T) {
	r := NewRegistry()
	s1 := r.Seed(5)
	s2 := r.Seed(5)
	require.Same(t, s1, s2)
	require.Equal(t, uint64(5), s1.Base)
	require.True(t, r.Atomic(5))
}

func TestConcatenate_SameProcessMerge(t *testing.T) {
	r := NewRegistry()
	r.Seed(1) // hunter
	r.Seed(2) // prey

	require.NoError(t, r.Concatenate(1, 1, 2))

	hunter, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(2), hunter.Head)
	require.Equal(t, uint64(1), hunter.Tail)
	require.Empty(t, hunter.Belly)

	_, stillExists := r.Get(2)
	require.False(t, stillExists)

	base, ok := r.OwnerBase(2)
	require.True(t, ok)
	require.Equal(t, uint64(1), base)
}

func TestConcatenate_ThreeWayChainThenHarvest(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	r.Seed(3)

	require.NoError(t, r.Concatenate(1, 1, 2)) // hunter=1 absorbs 2: chain now head=2,tail=1
	require.NoError(t, r.Concatenate(1, 2, 3)) // hunter head (2) absorbs 3

	hunter, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(3), hunter.Head)
	require.Equal(t, uint64(1), hunter.Tail)

	pairs, ok := r.HarvestPairs(1)
	require.True(t, ok)
	require.Len(t, pairs, 1)
	// odd length (3 vertices): one pair harvested, one leftover reseeded
	_, leftoverIsSnake := r.Get(pairs[0][0])
	_ = leftoverIsSnake
}

func TestConcatenate_CrossProcessRelabel(t *testing.T) {
	r := NewRegistry()
	r.Seed(2) // this process's prey fragment

	require.NoError(t, r.Concatenate(99, 50, 2)) // hunterBase 99 is remote

	s, ok := r.Get(99)
	require.True(t, ok)
	require.Equal(t, uint64(99), s.Base)
	require.Equal(t, uint64(50), s.PrevNode)

	_, stillUnderOldBase := r.Get(2)
	require.False(t, stillUnderOldBase)
}

func TestConcatenate_UnknownPreyIsError(t *testing.T) {
	r := NewRegistry()
	require.ErrorIs(t, r.Concatenate(1, 1, 404), ErrUnknownBase)
}

func TestReverse_FlipsOrientation(t *testing.T) {
	r := NewRegistry()
	r.Seed(10)
	r.Seed(13)
	require.NoError(t, r.Concatenate(13, 13, 10)) // hunter 13 absorbs 10: head=10,tail=13
	h, _ := r.Get(13)
	require.Equal(t, uint64(10), h.Head)

	require.NoError(t, r.Reverse(13, 10))

	s, ok := r.Get(10)
	require.True(t, ok)
	require.Equal(t, uint64(10), s.Base)
	require.Equal(t, uint64(13), s.Head)
	require.Equal(t, uint64(10), s.Tail)
}

func TestInherit_SplicesIntoBelly(t *testing.T) {
	r := NewRegistry()
	r.Seed(10)
	r.Seed(11)
	r.Seed(12)
	r.Seed(13)
	require.NoError(t, r.Concatenate(10, 10, 11)) // chain: head=11 ... tail=10
	require.NoError(t, r.Concatenate(10, 11, 12)) // chain: head=12 ... tail=10
	require.NoError(t, r.Concatenate(10, 12, 13)) // chain: head=13, belly=[12,11], tail=10

	host, _ := r.Get(10)
	before := host.chainOrder()
	require.Equal(t, uint64(13), before[0])
	require.Equal(t, uint64(10), before[len(before)-1])

	r.Seed(99)
	require.NoError(t, r.Inherit(99, 99, before[1], before[0]))

	after, _ := r.Get(10)
	chain := after.chainOrder()
	require.Contains(t, chain, uint64(99))
}

func TestInherit_UnknownAdjacencyIsError(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	require.Error(t, r.Inherit(2, 2, 100, 200))
}

func TestHarvestPairs_RequiresFullyLocalFragment(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	require.NoError(t, r.Concatenate(1, 1, 2))

	h, _ := r.Get(1)
	h.NextNode = 7 // still reaching across a boundary

	_, ok := r.HarvestPairs(1)
	require.False(t, ok)
}

func TestHarvestPairs_EvenLengthConsumesEverything(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	require.NoError(t, r.Concatenate(1, 1, 2))

	pairs, ok := r.HarvestPairs(1)
	require.True(t, ok)
	require.Equal(t, [][2]uint64{{2, 1}}, pairs)
	_, exists := r.Get(1)
	require.False(t, exists)
}

func TestConcatenate_AutoReversesWhenPreyIsAHead(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	r.Seed(3)
	require.NoError(t, r.Concatenate(2, 2, 3)) // chain under base 2: head=3, tail=2

	h, ok := r.HeadBase(3)
	require.True(t, ok)
	require.Equal(t, uint64(2), h)

	// hunter (base 1) reaches toward vertex 3, which is currently a
	// head, not a base — Concatenate must reverse that fragment first.
	require.NoError(t, r.Concatenate(1, 1, 3))

	hunter, ok := r.Get(1)
	require.True(t, ok)
	require.Contains(t, hunter.chainOrder(), uint64(2))
	_, stillBase2 := r.Get(2)
	require.False(t, stillBase2)
}

func TestAdvance_PromotesNextBellyVertexToHead(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	r.Seed(2)
	r.Seed(3)
	require.NoError(t, r.Concatenate(1, 1, 2)) // chain under base 1: head=2, tail=1
	require.NoError(t, r.Concatenate(1, 2, 3)) // chain under base 1: head=3, belly=[2], tail=1

	s, _ := r.Get(1)
	s.NextNode = 77 // head 3 was mid-proposal when matched away

	require.True(t, r.Advance(1))

	after, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(2), after.Head)
	require.Equal(t, uint64(0), after.NextNode)
	require.Empty(t, after.Belly)

	h, ok := r.HeadBase(2)
	require.True(t, ok)
	require.Equal(t, uint64(1), h)

	_, stillHead3 := r.HeadBase(3)
	require.False(t, stillHead3)
}

func TestAdvance_AtomicFragmentIsRemovedEntirely(t *testing.T) {
	r := NewRegistry()
	r.Seed(5)

	require.False(t, r.Advance(5))

	_, ok := r.Get(5)
	require.False(t, ok)
	_, ok = r.OwnerBase(5)
	require.False(t, ok)
}

func TestAdvance_UnknownBaseIsFalse(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Advance(404))
}

func TestConcatenate_HunterEqualsPreyIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Seed(1)
	require.NoError(t, r.Concatenate(1, 1, 1))
	s, ok := r.Get(1)
	require.True(t, ok)
	require.True(t, s.atomic())
}
