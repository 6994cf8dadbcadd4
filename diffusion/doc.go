// Package diffusion implements the stochastic diffusion engine: deterministic,
// reproducible Monte Carlo simulators for the Independent Cascade (IC) and
// Linear Threshold (LT) models.
//
// Both models share one capability surface, Model, rather than a deep type
// hierarchy: SetSeeds binds a seed set, RunSingleTrial runs one stochastic
// cascade given a caller-supplied RNG, and RunMonteCarloDiffusion averages K
// independent trials — optionally across a worker pool — into a mean spread
// σ(S). The multi-threaded path is built on internal/mtrand's per-trial seed
// harness, so the mean is bit-identical regardless of how many workers ran it
// (see runMonteCarlo in montecarlo.go for the determinism argument).
package diffusion
