package ris_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imcascade/graph"
	"github.com/katalvlaran/imcascade/internal/mtrand"
	"github.com/katalvlaran/imcascade/ris"
)

func starGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(4, true)
	require.NoError(t, g.AddEdge(1, 0, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))
	require.NoError(t, g.AddEdge(3, 0, 0))
	graph.SetEdgeWeight(g, graph.WC())

	return g
}

func TestSampleRRSetIC_AlwaysLiveEdgesReachesAll(t *testing.T) {
	g := starGraph(t)
	// WC weight on each leaf->center edge is 1/indegree(0) = 1/3, not
	// deterministic; use Uniform(1) instead so every coin is live.
	graph.SetEdgeWeight(g, graph.Uniform(1))
	c := g.Compile()
	rng := mtrand.New(1)

	rr := ris.SampleRRSetIC(c, 0, rng)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, rr)
}

func TestSampleRRSetIC_NoLiveEdgesStaysAtRoot(t *testing.T) {
	g := starGraph(t)
	graph.SetEdgeWeight(g, graph.Uniform(0))
	c := g.Compile()
	rng := mtrand.New(1)

	rr := ris.SampleRRSetIC(c, 0, rng)
	require.Equal(t, []int{0}, rr)
}

func TestSampleRRSetLT_StaysWithinGraph(t *testing.T) {
	g := starGraph(t)
	c := g.Compile()
	rng := mtrand.New(7)

	rr := ris.SampleRRSetLT(c, 0, rng)
	require.NotEmpty(t, rr)
	require.Contains(t, rr, 0)
	for _, v := range rr {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
	}
}

func TestSampleRRSetLT_NoDuplicates(t *testing.T) {
	g := starGraph(t)
	c := g.Compile()
	rng := mtrand.New(123)

	rr := ris.SampleRRSetLT(c, 0, rng)
	seen := make(map[int]bool)
	for _, v := range rr {
		require.False(t, seen[v], "duplicate node %d in RR set", v)
		seen[v] = true
	}
}
