package edgeio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/partition"
)

func TestReadEdgeList_Valid(t *testing.T) {
	in := strings.NewReader("4 3\n1 2\n2 3\n3 4\n")
	n, edges, err := ReadEdgeList(in)
	require.NoError(t, err)
	require.Equal(t, uint64(4), n)
	require.Equal(t, []Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, edges)
}

func TestReadEdgeList_MalformedHeader(t *testing.T) {
	_, _, err := ReadEdgeList(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestReadEdgeList_EmptyInput(t *testing.T) {
	_, _, err := ReadEdgeList(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestReadEdgeList_TruncatedEdges(t *testing.T) {
	_, _, err := ReadEdgeList(strings.NewReader("3 2\n1 2\n"))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestReadEdgeList_MalformedEdgeLine(t *testing.T) {
	_, _, err := ReadEdgeList(strings.NewReader("3 1\nnope\n"))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestReadEdgeList_EdgeOutOfRange(t *testing.T) {
	_, _, err := ReadEdgeList(strings.NewReader("3 1\n1 4\n"))
	require.ErrorIs(t, err, ErrEdgeOutOfRange)
}

func TestReadEdgeList_ZeroIsOutOfRange(t *testing.T) {
	// ids are 1-based; 0 is never a valid endpoint.
	_, _, err := ReadEdgeList(strings.NewReader("3 1\n0 1\n"))
	require.ErrorIs(t, err, ErrEdgeOutOfRange)
}

func TestScatter_CrossPartitionEdgeAppearsTwice(t *testing.T) {
	edges := []Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	result := Scatter(4, edges, 2, partition.Cyclic)

	require.Len(t, result, 2)
	// owner(1)=1, owner(2)=0, owner(3)=1: edge (1,2) crosses, edge (2,3) crosses.
	require.Contains(t, result[0], Edge{U: 1, V: 2})
	require.Contains(t, result[1], Edge{U: 1, V: 2})
	require.Contains(t, result[0], Edge{U: 2, V: 3})
	require.Contains(t, result[1], Edge{U: 2, V: 3})
}

func TestScatter_PurelyLocalEdgeAppearsOnce(t *testing.T) {
	// Under block partitioning with nGlobal=4, numProcs=2, owner(v) =
	// v*2/4: owner(0)=0 and owner(1)=0, so this edge never crosses.
	edges := []Edge{{U: 0, V: 1}}
	result := Scatter(4, edges, 2, partition.Block)

	require.Equal(t, []Edge{{U: 0, V: 1}}, result[0])
	require.Empty(t, result[1])
}

func TestWriteMatching_OrdersSmallerFirst(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMatching(&buf, 0, []localgraph.Pair{{A: 5, B: 2}, {A: 1, B: 3}})
	require.NoError(t, err)
	require.Equal(t, "2 5\n1 3\n", buf.String())
}

func TestWriteMatching_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatching(&buf, 0, nil))
	require.Empty(t, buf.String())
}
