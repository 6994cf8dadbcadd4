package ris

import "github.com/katalvlaran/imcascade/internal/mtrand"

// SampleFunc draws one RR set rooted at root, given a private RNG.
type SampleFunc func(root int, rng *mtrand.Rand) []int

// ICSampler returns a SampleFunc that draws IC RR sets over g.
func ICSampler(g compiledGraph) SampleFunc {
	return func(root int, rng *mtrand.Rand) []int { return SampleRRSetIC(g, root, rng) }
}

// LTSampler returns a SampleFunc that draws LT RR sets over g.
func LTSampler(g compiledGraph) SampleFunc {
	return func(root int, rng *mtrand.Rand) []int { return SampleRRSetLT(g, root, rng) }
}

// BaseRIS draws theta RR sets under the given sampler and solves max-cover
// to select k seeds. RR-set generation is inherently sequential (each draw
// both consumes and advances one shared RNG stream), so unlike the
// diffusion Monte Carlo driver, BaseRIS does not offer a multi-threaded
// path.
type BaseRIS struct {
	n      int
	sample SampleFunc
}

// NewBaseRIS constructs a BaseRIS selector over n nodes using sample to
// draw RR sets.
func NewBaseRIS(n int, sample SampleFunc) *BaseRIS {
	return &BaseRIS{n: n, sample: sample}
}

// Run draws theta RR sets and returns the k seeds max-cover selects.
// theta <= 0 returns nil.
func (b *BaseRIS) Run(k, theta int, seed uint32) []int {
	if theta <= 0 {
		return nil
	}
	rrSets := GenerateRRSets(b.n, b.sample, theta, seed)
	seeds, _ := MaxCover(rrSets, b.n, k)

	return seeds
}

// GenerateRRSets draws theta RR sets sequentially from one master RNG
// seeded by seed: each draw picks a uniformly random root in [0,n) and
// then consumes the sampler's own random decisions from the same stream.
func GenerateRRSets(n int, sample SampleFunc, theta int, seed uint32) [][]int {
	if theta <= 0 {
		return nil
	}

	rng := mtrand.New(seed)
	rrSets := make([][]int, theta)
	for i := 0; i < theta; i++ {
		root := rng.Intn(n)
		rrSets[i] = sample(root, rng)
	}

	return rrSets
}
