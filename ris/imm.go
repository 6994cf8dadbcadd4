package ris

import (
	"math"

	"github.com/katalvlaran/imcascade/internal/mtrand"
	"github.com/katalvlaran/imcascade/internal/xlog"
)

// IMM implements the Tang-Xiao-Shi Influence Maximization via Martingales
// algorithm: a two-phase RIS variant that adaptively grows the RR-set pool
// (the sampling phase) until a martingale-based lower bound certifies
// (1-1/e-eps) approximation quality, then runs one final max-cover pass
// (the node-selection phase) against that pool.
type IMM struct {
	n      int
	sample SampleFunc
	log    xlog.Logger
}

// NewIMM constructs an IMM selector over n nodes using sample to draw RR sets.
func NewIMM(n int, sample SampleFunc) *IMM {
	return &IMM{n: n, sample: sample}
}

// WithLogger attaches a logger that emits one debug line per sampling-phase
// doubling round. Without it, IMM runs silently.
func (m *IMM) WithLogger(l xlog.Logger) *IMM {
	m.log = l

	return m
}

// Run selects k seeds with approximation parameters eps and ell (the
// failure-probability exponent: overall failure probability is n^-ell).
// n<=k returns all n nodes; k<=0 returns nil. eps<=0 or ell<=0 returns
// ErrInvalidParameter.
func (m *IMM) Run(k int, eps, ell float64, seed uint32) ([]int, error) {
	if eps <= 0 || ell <= 0 {
		return nil, ErrInvalidParameter
	}
	if k <= 0 {
		return nil, nil
	}
	if k >= m.n {
		all := make([]int, m.n)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}

	rng := mtrand.New(seed)
	logBinom := logNChooseK(m.n, k)
	ellPrime := ell * (1 + math.Log(2)/math.Log(float64(m.n)))

	theta := m.sampling(k, eps, ellPrime, logBinom, rng)
	rrSets := make([][]int, theta)
	for i := range rrSets {
		root := rng.Intn(m.n)
		rrSets[i] = m.sample(root, rng)
	}

	seeds, _ := MaxCover(rrSets, m.n, k)

	return seeds, nil
}

// sampling is IMM's phase 1: double the RR-set pool size across rounds,
// each round re-running max-cover on the pool-so-far and testing a
// martingale lower bound on the true coverage probability. It returns the
// final theta to use in phase 2.
func (m *IMM) sampling(k int, eps, ellPrime, logBinom float64, rng *mtrand.Rand) int {
	n := float64(m.n)
	lambdaPrime := (2 + 2.0/3.0*eps) * (logBinom + ellPrime*math.Log(n) + math.Log(math.Log2(n))) * n / (eps * eps)

	var rrSets [][]int
	maxRounds := int(math.Ceil(math.Log2(n))) - 1
	if maxRounds < 1 {
		maxRounds = 1
	}

	for i := 1; i <= maxRounds; i++ {
		x := n / math.Pow(2, float64(i))
		thetaI := int(lambdaPrime / x)
		for len(rrSets) < thetaI {
			root := rng.Intn(m.n)
			rrSets = append(rrSets, m.sample(root, rng))
		}

		_, covered := MaxCover(rrSets, m.n, k)
		ept := estimateEPT(covered, len(rrSets))

		m.log.Debugf("imm sampling round=%d theta=%d covered=%d ept=%f", i, len(rrSets), covered, ept)

		if n*ept >= (1+math.Sqrt(2)*eps)*x {
			lb := n * ept / (1 + math.Sqrt(2)*eps)
			lambdaStar := 2 * n * math.Pow((1-1/math.E)*alphaTerm(ellPrime, n)+betaTerm(ellPrime, n, logBinom), 2) / (eps * eps)

			return int(math.Ceil(lambdaStar / lb))
		}
	}

	return len(rrSets)
}

func estimateEPT(covered, theta int) float64 {
	if theta == 0 {
		return 0
	}

	return float64(covered) / float64(theta)
}

func alphaTerm(ellPrime, n float64) float64 {
	return math.Sqrt(ellPrime*math.Log(n) + math.Log(2))
}

func betaTerm(ellPrime, n, logBinom float64) float64 {
	return math.Sqrt((1 - 1/math.E) * (logBinom + ellPrime*math.Log(n) + math.Log(2)))
}

// logNChooseK computes log(C(n,k)) via the log-gamma function, avoiding
// overflow for the large n typical of influence maximization graphs.
func logNChooseK(n, k int) float64 {
	lgN1, _ := math.Lgamma(float64(n + 1))
	lgK1, _ := math.Lgamma(float64(k + 1))
	lgNK1, _ := math.Lgamma(float64(n-k+1))

	return lgN1 - lgK1 - lgNK1
}
