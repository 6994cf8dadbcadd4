package ris

// MaxCover greedily selects k nodes that maximize the number of RR sets
// covered (an RR set is covered once any of its nodes is chosen). It
// returns the selected nodes in selection order and the number of RR sets
// they cover. Ties in coverage gain are broken by smallest node id.
//
// Complexity: O(k*n + sum of RR set sizes) — a node's hit count is
// decremented once per RR set it belongs to, over the whole run.
func MaxCover(rrSets [][]int, n, k int) (seeds []int, covered int) {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil, 0
	}

	nodeToSets := make([][]int, n)
	for idx, rr := range rrSets {
		for _, v := range rr {
			nodeToSets[v] = append(nodeToSets[v], idx)
		}
	}

	setCovered := make([]bool, len(rrSets))
	counts := make([]int, n)
	for v := 0; v < n; v++ {
		counts[v] = len(nodeToSets[v])
	}

	seeds = make([]int, 0, k)
	for round := 0; round < k; round++ {
		best, bestCount := -1, -1
		for v := 0; v < n; v++ {
			if counts[v] > bestCount {
				bestCount = counts[v]
				best = v
			}
		}

		seeds = append(seeds, best)
		covered += bestCount
		counts[best] = -1 // exclude from future rounds

		for _, idx := range nodeToSets[best] {
			if setCovered[idx] {
				continue
			}
			setCovered[idx] = true
			for _, v := range rrSets[idx] {
				if counts[v] >= 0 {
					counts[v]--
				}
			}
		}
	}

	return seeds, covered
}

// EstimateSpread returns n*(covered/theta), the spread estimate for a seed
// set that covers `covered` of `theta` sampled RR sets.
func EstimateSpread(covered, theta, n int) float64 {
	if theta == 0 {
		return 0
	}

	return float64(n) * (float64(covered) / float64(theta))
}
