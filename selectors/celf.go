package selectors

import "container/heap"

// celfItem is one entry in CELF's lazy-forward max-heap: a candidate node,
// its last-computed marginal gain, and the round at which that gain was
// computed.
type celfItem struct {
	v     int
	gain  float64
	round int
}

// celfHeap is a max-heap on gain, ties broken by smaller node id — the
// same tie-break Greedy applies by scanning candidates in increasing id
// order and only replacing the incumbent on a strict improvement.
type celfHeap []*celfItem

func (h celfHeap) Len() int { return len(h) }
func (h celfHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}

	return h[i].v < h[j].v
}
func (h celfHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *celfHeap) Push(x interface{}) {
	*h = append(*h, x.(*celfItem))
}
func (h *celfHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// CELF is the Cost-Effective Lazy Forward selector. It exploits
// submodularity of sigma to avoid recomputing every candidate's marginal
// gain every round: a stale marginal is always an upper bound on the true
// current marginal, so if the freshly recomputed top of the heap is still
// the top, it is the true argmax. Every gain CELF recomputes uses the same
// per-(round, candidate) trial seed as Greedy's evaluation of that
// candidate. CELF accepts a node without recomputing the others, so when a
// stale Monte Carlo gain is lower than that candidate's fresh estimate,
// CELF can return a different seed order than Greedy.
type CELF struct {
	n    int
	ctor ModelCtor
}

// NewCELF constructs a CELF selector over n nodes using ctor to build
// diffusion models for spread evaluation.
func NewCELF(n int, ctor ModelCtor) *CELF {
	return &CELF{n: n, ctor: ctor}
}

// Run selects k seeds. If k >= n, all n nodes are returned in selection
// order.
func (c *CELF) Run(k, rounds int, seed uint32) []int {
	if k > c.n {
		k = c.n
	}
	if k <= 0 {
		return nil
	}

	h := make(celfHeap, 0, c.n)
	for v := 0; v < c.n; v++ {
		gain := spread(c.ctor, []int{v}, rounds, trialSeedFor(seed, 0, v))
		h = append(h, &celfItem{v: v, gain: gain, round: 0})
	}
	heap.Init(&h)

	selected := make([]int, 0, k)

	for round := 0; round < k; round++ {
		baseSigma := spread(c.ctor, selected, rounds, trialSeedFor(seed, round, -1))
		for {
			top := heap.Pop(&h).(*celfItem)
			if top.round == round {
				selected = append(selected, top.v)
				break
			}
			full := spread(c.ctor, withSeed(selected, top.v), rounds, trialSeedFor(seed, round, top.v))
			top.gain = full - baseSigma
			top.round = round
			heap.Push(&h, top)
		}
	}

	return selected
}
