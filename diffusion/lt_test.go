package diffusion_test

import (
	"testing"

	"github.com/katalvlaran/imcascade/diffusion"
	"github.com/katalvlaran/imcascade/graph"
	"github.com/stretchr/testify/require"
)

// TestLT_ThresholdBoundary_S2 is spec scenario S2: a single edge (0,1,0.5),
// seeds={0}. With theta_l=theta_h=0.5 the influence on 1 (exactly 0.5)
// always meets the threshold, so every trial activates both nodes. Nudging
// the threshold up by 1e-9 must make it unreachable.
func TestLT_ThresholdBoundary_S2(t *testing.T) {
	g := graph.NewGraph(2, true)
	require.NoError(t, g.AddEdge(0, 1, 0.5))

	atBoundary, err := diffusion.NewLT(g.Compile(), []int{0}, 0.5, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2.0, atBoundary.RunMonteCarloDiffusion(1000, 1, false))

	pastBoundary, err := diffusion.NewLT(g.Compile(), []int{0}, 0.5+1e-9, 0.5+1e-9)
	require.NoError(t, err)
	require.Equal(t, 1.0, pastBoundary.RunMonteCarloDiffusion(1000, 1, false))
}

func TestLT_InvalidParameters(t *testing.T) {
	g := graph.NewGraph(2, true)
	_, err := diffusion.NewLT(g.Compile(), []int{0}, -0.1, 0.5)
	require.ErrorIs(t, err, diffusion.ErrInvalidParameter)

	_, err = diffusion.NewLT(g.Compile(), []int{0}, 0.6, 0.5)
	require.ErrorIs(t, err, diffusion.ErrInvalidParameter)

	_, err = diffusion.NewLT(g.Compile(), []int{0}, 0.1, 1.1)
	require.ErrorIs(t, err, diffusion.ErrInvalidParameter)
}

func TestLT_SeedInclusion(t *testing.T) {
	g := graph.NewGraph(3, true)
	model, err := diffusion.NewLT(g.Compile(), []int{0, 1, 2}, 0.0, 1.0)
	require.NoError(t, err)
	mean := model.RunMonteCarloDiffusion(50, 2, false)
	require.GreaterOrEqual(t, mean, 3.0)
}

func TestLT_Determinism(t *testing.T) {
	g := graph.NewGraph(20, true)
	for i := 0; i < 19; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0.3))
	}
	model, err := diffusion.NewLT(g.Compile(), []int{0}, 0.0, 1.0)
	require.NoError(t, err)

	single := model.RunMonteCarloDiffusion(300, 4, false)
	multi := model.RunMonteCarloDiffusion(300, 4, true)
	require.Equal(t, single, multi)
}
