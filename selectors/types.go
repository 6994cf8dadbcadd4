package selectors

import "github.com/katalvlaran/imcascade/diffusion"

// ModelCtor builds a diffusion.Model bound to a seed set. Callers close
// over whatever graph snapshot the model needs, e.g.:
//
//	compiled := g.Compile()
//	ctor := func(seeds []int) diffusion.Model { return diffusion.NewIC(compiled, seeds) }
type ModelCtor func(seeds []int) diffusion.Model

// trialSeedFor derives a deterministic per-(round,candidate) trial seed
// from a base seed, so every marginal-gain oracle call in a selection run
// gets an independent, reproducible stream without a shared mutable RNG.
func trialSeedFor(base uint32, round, v int) uint32 {
	return base ^ uint32(round)*2654435761 ^ uint32(v+1)*40503
}

// spread evaluates sigma(S) = ctor(S).RunMonteCarloDiffusion(rounds, seed, false).
func spread(ctor ModelCtor, seeds []int, rounds int, seed uint32) float64 {
	return ctor(seeds).RunMonteCarloDiffusion(rounds, seed, false)
}

// withSeed returns a new slice equal to base with v appended, leaving base
// untouched (selectors must not alias their accumulated seed set across
// candidate evaluations).
func withSeed(base []int, v int) []int {
	out := make([]int, len(base)+1)
	copy(out, base)
	out[len(base)] = v

	return out
}
