package graphgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplete_VertexAndEdgeCounts(t *testing.T) {
	g, err := Complete(5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), g.NGlobal)
	require.Len(t, g.Edges, 5*4/2)
}

func TestComplete_TooFewVertices(t *testing.T) {
	_, err := Complete(0)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestPath_EdgesFormAChain(t *testing.T) {
	g, err := Path(4)
	require.NoError(t, err)
	require.Equal(t, uint64(4), g.NGlobal)
	require.Len(t, g.Edges, 3)
	for i, e := range g.Edges {
		require.Equal(t, uint64(i+1), e.U)
		require.Equal(t, uint64(i+2), e.V)
	}
}

func TestCycle_ClosesTheRing(t *testing.T) {
	g, err := Cycle(4)
	require.NoError(t, err)
	require.Len(t, g.Edges, 4)
	require.Equal(t, uint64(4), g.Edges[3].U)
	require.Equal(t, uint64(1), g.Edges[3].V)
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := Cycle(2)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestStar_HubIsLastVertexAndDegreeNMinus1(t *testing.T) {
	g, err := Star(4)
	require.NoError(t, err)
	require.Len(t, g.Edges, 3)
	for _, e := range g.Edges {
		require.Equal(t, uint64(4), e.U)
	}
}

func TestWheel_RimPlusHubSpokes(t *testing.T) {
	g, err := Wheel(5)
	require.NoError(t, err)
	// rim is C_4 (4 edges) plus 4 spokes = 8 total.
	require.Len(t, g.Edges, 8)
	require.Equal(t, uint64(5), g.NGlobal)
}

func TestWheel_TooFewVertices(t *testing.T) {
	_, err := Wheel(3)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	a, err := RandomSparse(20, 0.3, 42)
	require.NoError(t, err)
	b, err := RandomSparse(20, 0.3, 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := RandomSparse(5, 1.5, 1)
	require.ErrorIs(t, err, ErrInvalidProbability)
}

func TestRandomSparse_ZeroProbabilityProducesNoEdges(t *testing.T) {
	g, err := RandomSparse(10, 0, 1)
	require.NoError(t, err)
	require.Empty(t, g.Edges)
}

func TestRandomRegular_EveryVertexHasDegreeD(t *testing.T) {
	g, err := RandomRegular(10, 3, 7)
	require.NoError(t, err)

	degree := make(map[uint64]int)
	for _, e := range g.Edges {
		degree[e.U]++
		degree[e.V]++
	}
	require.Len(t, degree, 10)
	for v, d := range degree {
		require.Equal(t, 3, d, "vertex %d", v)
	}
}

func TestRandomRegular_OddProductIsError(t *testing.T) {
	_, err := RandomRegular(5, 3, 1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomRegular_DegreeTooLarge(t *testing.T) {
	_, err := RandomRegular(4, 4, 1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomRegular_ZeroDegreeIsEdgeless(t *testing.T) {
	g, err := RandomRegular(6, 0, 1)
	require.NoError(t, err)
	require.Empty(t, g.Edges)
}
