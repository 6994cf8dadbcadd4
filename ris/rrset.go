package ris

import "github.com/katalvlaran/imcascade/internal/mtrand"

// compiledGraph is the minimal surface RR-set sampling needs.
type compiledGraph interface {
	N() int
	InNeighbors(v int, fn func(u int, w float64))
}

// SampleRRSetIC draws one Reverse Reachable set rooted at root under the
// Independent Cascade live-edge model: starting from {root}, a reverse BFS
// expands to in-neighbor y of a visited node x whenever the Bernoulli(w(y,x))
// coin comes up live.
//
// Complexity: O(V+E) worst case.
func SampleRRSetIC(g compiledGraph, root int, rng *mtrand.Rand) []int {
	visited := make([]bool, g.N())
	visited[root] = true
	queue := []int{root}

	for front := 0; front < len(queue); front++ {
		x := queue[front]
		g.InNeighbors(x, func(y int, w float64) {
			if !visited[y] && rng.Float64() < w {
				visited[y] = true
				queue = append(queue, y)
			}
		})
	}

	return queue
}

// SampleRRSetLT draws one Reverse Reachable set rooted at root under the
// Linear Threshold live-edge model. At each node x on the walk, compute S,
// the sum of in-edge weights into x; draw r uniformly in [0,1). If r >= S,
// the walk stops at x. Otherwise the in-neighbor y whose cumulative weight
// prefix first exceeds r is selected, extending the walk from y. The walk
// is a simple path: it also stops if the selected y is already in the set
// (no cycles).
//
// Complexity: O(path length) per call, each step O(in_degree).
func SampleRRSetLT(g compiledGraph, root int, rng *mtrand.Rand) []int {
	rr := []int{root}
	inRR := map[int]struct{}{root: {}}
	cur := root

	for {
		var neighbors []int
		var weights []float64
		g.InNeighbors(cur, func(u int, w float64) {
			neighbors = append(neighbors, u)
			weights = append(weights, w)
		})

		sum := 0.0
		for _, w := range weights {
			sum += w
		}

		r := rng.Float64()
		if r >= sum {
			break
		}

		cum := 0.0
		next := -1
		for i, w := range weights {
			cum += w
			if r < cum {
				next = neighbors[i]
				break
			}
		}
		if next == -1 {
			break
		}
		if _, seen := inRR[next]; seen {
			break
		}

		rr = append(rr, next)
		inRR[next] = struct{}{}
		cur = next
	}

	return rr
}
