package selectors

// Greedy picks k seeds by repeated marginal-gain queries to a spread
// oracle: at each round, every candidate not yet selected is evaluated by
// re-running the Monte Carlo estimate on S union {v}, and the best is kept.
// Total oracle calls: k*(n-|S|), each doing `rounds` Monte Carlo trials.
type Greedy struct {
	n    int
	ctor ModelCtor
}

// NewGreedy constructs a Greedy selector over n nodes using ctor to build
// diffusion models for spread evaluation.
func NewGreedy(n int, ctor ModelCtor) *Greedy {
	return &Greedy{n: n, ctor: ctor}
}

// Run selects k seeds. Ties in marginal gain are broken by smallest node
// id. If k >= n, all n nodes are returned in selection order.
func (g *Greedy) Run(k, rounds int, seed uint32) []int {
	if k > g.n {
		k = g.n
	}
	if k <= 0 {
		return nil
	}

	selected := make([]int, 0, k)
	inS := make([]bool, g.n)

	for round := 0; round < k; round++ {
		bestV := -1
		bestGain := -1.0
		for v := 0; v < g.n; v++ {
			if inS[v] {
				continue
			}
			candidate := withSeed(selected, v)
			gain := spread(g.ctor, candidate, rounds, trialSeedFor(seed, round, v))
			if gain > bestGain {
				bestGain = gain
				bestV = v
			}
		}
		selected = append(selected, bestV)
		inS[bestV] = true
	}

	return selected
}
