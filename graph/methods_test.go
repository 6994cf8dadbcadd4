package graph_test

import (
	"testing"

	"github.com/katalvlaran/imcascade/graph"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_InvalidNode(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.ErrorIs(t, g.AddEdge(0, 5, 1.0), graph.ErrInvalidNode)
	require.ErrorIs(t, g.AddEdge(-1, 1, 1.0), graph.ErrInvalidNode)
}

func TestAddEdge_UpdatesWeightWithoutIncrementingM(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	require.Equal(t, 1, g.M())

	require.NoError(t, g.AddEdge(0, 1, 0.9))
	require.Equal(t, 1, g.M())
	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	require.Equal(t, 0.9, w)
}

func TestAddEdges_LengthMismatch(t *testing.T) {
	g := graph.NewGraph(3, true)
	err := g.AddEdges([][2]int{{0, 1}, {1, 2}}, []float64{0.1})
	require.ErrorIs(t, err, graph.ErrLengthMismatch)
}

func TestAddEdges_NilWeightsDefaultToOne(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdges([][2]int{{0, 1}, {1, 2}}, nil))
	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}

func TestUpdateEdgeWeight_NotFound(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.ErrorIs(t, g.UpdateEdgeWeight(0, 1, 0.5), graph.ErrEdgeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	require.NoError(t, g.RemoveEdge(0, 1))
	require.Equal(t, 0, g.M())
	require.ErrorIs(t, g.RemoveEdge(0, 1), graph.ErrEdgeNotFound)
}

func TestRemoveEdges_StopsAtFirstMissing(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	err := g.RemoveEdges([][2]int{{0, 1}, {1, 2}})
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

// TestUndirectedInvariants checks I2/I3: both directions see the same
// weight and in_adj mirrors out_adj for undirected graphs.
func TestUndirectedInvariants(t *testing.T) {
	g := graph.NewGraph(3, false)
	require.NoError(t, g.AddEdge(0, 1, 0.7))

	wOut, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	require.Equal(t, 0.7, wOut)

	in1, err := g.InNeighbors(1)
	require.NoError(t, err)
	require.Equal(t, 0.7, in1[0])

	out0, err := g.OutNeighbors(0)
	require.NoError(t, err)
	require.Equal(t, 0.7, out0[1])
}

// TestDirectedInvariants checks I1/I2 hold for a directed graph: removing
// the forward direction does not leave a dangling in_adj entry.
func TestDirectedInvariants(t *testing.T) {
	g := graph.NewGraph(2, true)
	require.NoError(t, g.AddEdge(0, 1, 0.3))

	in1, err := g.InNeighbors(1)
	require.NoError(t, err)
	require.Contains(t, in1, 0)

	require.NoError(t, g.RemoveEdge(0, 1))
	in1, _ = g.InNeighbors(1)
	require.NotContains(t, in1, 0)
}

func TestDegrees(t *testing.T) {
	g := graph.NewGraph(4, true)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(3, 0, 1))

	outDeg, err := g.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 2, outDeg)

	inDeg, err := g.InDegree(0)
	require.NoError(t, err)
	require.Equal(t, 1, inDeg)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, outDeg, deg)
}

func TestAdjMatrix(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdge(0, 1, 0.25))
	require.NoError(t, g.AddEdge(1, 2, 0.5))

	mtx := g.AdjMatrix()
	require.Len(t, mtx, 3)
	require.Equal(t, 0.25, mtx[0][1])
	require.Equal(t, 0.5, mtx[1][2])
	require.Equal(t, 0.0, mtx[2][0])
}
