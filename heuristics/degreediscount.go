package heuristics

// degreeDiscountGraph additionally needs in-neighbor access: when a node w
// is selected, DegreeDiscount must find every v with an edge v->w to bump
// v's count of already-selected out-neighbors.
type degreeDiscountGraph interface {
	compiledGraph
	InNeighbors(v int, fn func(u int, w float64))
}

// DegreeDiscount selects seeds via the Chen et al. closed-form
// degree-discount score: for node v with t_v already-selected
// out-neighbors and out-degree d_v, score = d_v - 2*t_v - (d_v-t_v)*t_v*p,
// where p is the (assumed uniform) propagation probability.
type DegreeDiscount struct {
	g degreeDiscountGraph
}

// NewDegreeDiscount constructs a DegreeDiscount selector over g.
func NewDegreeDiscount(g degreeDiscountGraph) *DegreeDiscount {
	return &DegreeDiscount{g: g}
}

// Run selects up to k seeds in decreasing degree-discount score order,
// under propagation probability p.
//
// Complexity: O(k*n + E).
func (d *DegreeDiscount) Run(k int, p float64) []int {
	n := d.g.N()
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	outDeg := make([]int, n)
	selectedOutNeighbors := make([]int, n)
	for v := 0; v < n; v++ {
		outDeg[v] = d.g.OutDegree(v)
	}
	chosen := make([]bool, n)

	seeds := make([]int, 0, k)
	for round := 0; round < k; round++ {
		best, bestScore := -1, 0.0
		first := true
		for v := 0; v < n; v++ {
			if chosen[v] {
				continue
			}
			dv := float64(outDeg[v])
			tv := float64(selectedOutNeighbors[v])
			score := dv - 2*tv - (dv-tv)*tv*p
			if first || score > bestScore {
				bestScore = score
				best = v
				first = false
			}
		}

		seeds = append(seeds, best)
		chosen[best] = true

		d.g.InNeighbors(best, func(v int, _ float64) {
			if !chosen[v] {
				selectedOutNeighbors[v]++
			}
		})
	}

	return seeds
}
