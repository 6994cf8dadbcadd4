package graph_test

import (
	"testing"

	"github.com/katalvlaran/imcascade/graph"
	"github.com/stretchr/testify/require"
)

func TestCompile_MatchesAdjacency(t *testing.T) {
	g := graph.NewGraph(4, true)
	require.NoError(t, g.AddEdge(0, 1, 0.1))
	require.NoError(t, g.AddEdge(0, 2, 0.2))
	require.NoError(t, g.AddEdge(1, 3, 0.3))

	c := g.Compile()
	require.Equal(t, 4, c.N())
	require.Equal(t, 2, c.OutDegree(0))
	require.Equal(t, 1, c.OutDegree(1))
	require.Equal(t, 0, c.OutDegree(3))

	seen := map[int]float64{}
	c.OutNeighbors(0, func(v int, w float64) { seen[v] = w })
	require.Equal(t, map[int]float64{1: 0.1, 2: 0.2}, seen)

	require.Equal(t, 1, c.InDegree(3))
	seen = map[int]float64{}
	c.InNeighbors(3, func(u int, w float64) { seen[u] = w })
	require.Equal(t, map[int]float64{1: 0.3}, seen)
}

func TestCompile_UndirectedMirrors(t *testing.T) {
	g := graph.NewGraph(2, false)
	require.NoError(t, g.AddEdge(0, 1, 0.9))

	c := g.Compile()
	require.Equal(t, 1, c.OutDegree(0))
	require.Equal(t, 1, c.InDegree(0))
	require.Equal(t, 1, c.OutDegree(1))
	require.Equal(t, 1, c.InDegree(1))
}
