package ris_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imcascade/graph"
	"github.com/katalvlaran/imcascade/ris"
)

func TestBaseRIS_StarPicksCenter(t *testing.T) {
	g := graph.NewGraph(6, true)
	for leaf := 1; leaf < 6; leaf++ {
		require.NoError(t, g.AddEdge(0, leaf, 0))
	}
	graph.SetEdgeWeight(g, graph.Uniform(1))
	c := g.Compile()

	b := ris.NewBaseRIS(6, ris.ICSampler(c))
	seeds := b.Run(1, 500, 42)
	require.Equal(t, []int{0}, seeds)
}

func TestBaseRIS_ZeroTheta(t *testing.T) {
	g := graph.NewGraph(3, true)
	require.NoError(t, g.AddEdge(1, 0, 1))
	c := g.Compile()

	b := ris.NewBaseRIS(3, ris.ICSampler(c))
	seeds := b.Run(1, 0, 1)
	require.Nil(t, seeds)
}

func TestGenerateRRSets_Deterministic(t *testing.T) {
	g := graph.NewGraph(5, true)
	require.NoError(t, g.AddEdge(1, 0, 0.5))
	require.NoError(t, g.AddEdge(2, 1, 0.5))
	c := g.Compile()

	a := ris.GenerateRRSets(5, ris.ICSampler(c), 50, 99)
	b := ris.GenerateRRSets(5, ris.ICSampler(c), 50, 99)
	require.Equal(t, a, b)
}
