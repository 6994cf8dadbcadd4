package diffusion

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/imcascade/internal/mtrand"
)

// runMonteCarlo is the shared driver behind IC.RunMonteCarloDiffusion and
// LT.RunMonteCarloDiffusion. trial runs one cascade given a private RNG and
// returns the activated count.
//
// Determinism contract (O1, P1–P3): trial_seeds are pre-generated once from
// (seed, rounds) by mtrand.TrialSeeds, so trial i always gets the same
// per-trial seed no matter how trials are later partitioned across workers.
// Workers never share an RNG or communicate mid-trial; each accumulates a
// private local sum, and the only synchronization is the final wg.Wait().
// Both paths sum the same per-trial activated counts as integers, so the
// total is exact whatever the grouping; the single float64 division at the
// end then gives bit-identical means single- vs multi-threaded.
func runMonteCarlo(trial func(rng *mtrand.Rand) int, rounds int, seed uint32, useMultithread bool) float64 {
	if rounds <= 0 {
		return 0.0
	}

	trialSeeds := mtrand.TrialSeeds(seed, rounds)

	if !useMultithread {
		sum := 0
		for _, ts := range trialSeeds {
			sum += trial(mtrand.New(ts))
		}

		return float64(sum) / float64(rounds)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > rounds {
		workers = rounds
	}

	partials := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			local := 0
			for i := worker; i < rounds; i += workers {
				local += trial(mtrand.New(trialSeeds[i]))
			}
			partials[worker] = local
		}(w)
	}
	wg.Wait()

	total := 0
	for _, p := range partials {
		total += p
	}

	return float64(total) / float64(rounds)
}
