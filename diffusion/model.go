package diffusion

import (
	"errors"

	"github.com/katalvlaran/imcascade/internal/mtrand"
)

// ErrInvalidParameter indicates a model was constructed with parameters
// outside their valid domain (e.g. LT's theta_l > theta_h).
var ErrInvalidParameter = errors.New("diffusion: invalid parameter")

// Model is the capability every diffusion simulator exposes to the
// selectors and the RIS family: bind a seed set, run one trial, and run a
// Monte Carlo estimate of the mean spread.
type Model interface {
	// SetSeeds replaces the current seed set. Duplicate ids collapse to a set.
	SetSeeds(seeds []int)

	// RunSingleTrial runs one stochastic cascade using rng and returns the
	// number of activated nodes (including the seeds).
	RunSingleTrial(rng *mtrand.Rand) int

	// RunMonteCarloDiffusion runs `rounds` independent trials seeded
	// deterministically from seed and returns their mean activated count.
	// rounds <= 0 returns 0.0 without allocating trial seeds.
	RunMonteCarloDiffusion(rounds int, seed uint32, useMultithread bool) float64
}
