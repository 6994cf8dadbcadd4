package mtrand

// TrialSeeds derives k independent per-trial seeds from a single master
// seed. A master MT19937 instance is seeded with seed and iterated k times;
// the i-th draw becomes trial i's seed.
//
// Property (P1): the same (seed, k) always yields the same seed slice.
// Property (P2): trial i's samples depend only on seeds[i], so the thread
// that eventually runs trial i never affects the sum of per-trial spreads.
// Together with a deterministic partition of trials across workers (see
// diffusion.Model), this makes RunMonteCarloDiffusion's mean bit-identical
// single- vs multi-threaded (P3).
func TrialSeeds(seed uint32, k int) []uint32 {
	if k <= 0 {
		return nil
	}

	master := New(seed)
	seeds := make([]uint32, k)
	for i := range seeds {
		seeds[i] = master.Uint32()
	}

	return seeds
}
