// Package mtrand implements a from-scratch 32-bit Mersenne Twister (MT19937)
// and the per-trial seed-splitting harness used by the diffusion simulators.
//
// Standard-library RNGs are not guaranteed algorithm-stable across Go
// versions, so reproducing a Monte Carlo spread estimate years after it was
// first computed requires owning the generator outright. MT19937 is the
// classical choice for this kind of reproducible simulation harness: it is
// well documented, has a long period, and its bit-for-bit behavior never
// changes underneath us.
//
// TrialSeeds derives K independent per-trial seeds from one master seed by
// iterating a single MT19937 instance K times. This guarantees that the same
// master seed always produces the same K per-trial seeds regardless of how
// those trials are later distributed across goroutines (see diffusion.Model's
// RunMonteCarloDiffusion), which is the property that makes the engine's
// multi-threaded mean bit-identical to its single-threaded mean.
package mtrand
