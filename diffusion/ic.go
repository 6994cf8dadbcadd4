package diffusion

import "github.com/katalvlaran/imcascade/internal/mtrand"

// compiledGraph is the minimal surface IC/LT need from graph.CompiledGraph,
// kept narrow so this package does not import graph at all (avoids a
// dependency cycle risk and keeps the simulators testable against a tiny
// fake).
type compiledGraph interface {
	N() int
	OutNeighbors(u int, fn func(v int, w float64))
}

// IC is the Independent Cascade diffusion model. Each newly activated node
// u gets one independent Bernoulli(w(u,v)) trial to activate each
// out-neighbor v.
type IC struct {
	g     compiledGraph
	seeds []int
}

// NewIC constructs an IC model bound to g with the given initial seed set.
func NewIC(g compiledGraph, seeds []int) *IC {
	m := &IC{g: g}
	m.SetSeeds(seeds)

	return m
}

// SetSeeds replaces the current seed set; duplicates collapse to a set.
func (m *IC) SetSeeds(seeds []int) {
	m.seeds = dedupe(seeds)
}

// RunSingleTrial runs one IC cascade from the current seed set.
//
// Complexity: O(V+E) worst case (every node visited once, every edge
// examined once via the BFS frontier).
func (m *IC) RunSingleTrial(rng *mtrand.Rand) int {
	if len(m.seeds) == 0 {
		return 0
	}

	n := m.g.N()
	activated := make([]bool, n)
	// frontier is used as a queue with a running front index: no per-level
	// slice allocation or O(n) clear, matching spec's BFS-over-a-vector
	// design.
	frontier := make([]int, 0, n)
	for _, s := range m.seeds {
		if !activated[s] {
			activated[s] = true
			frontier = append(frontier, s)
		}
	}

	count := len(frontier)
	for front := 0; front < len(frontier); front++ {
		u := frontier[front]
		m.g.OutNeighbors(u, func(v int, w float64) {
			if !activated[v] && rng.Float64() < w {
				activated[v] = true
				count++
				frontier = append(frontier, v)
			}
		})
	}

	return count
}

// RunMonteCarloDiffusion runs `rounds` independent IC trials and returns
// their mean activated count.
func (m *IC) RunMonteCarloDiffusion(rounds int, seed uint32, useMultithread bool) float64 {
	return runMonteCarlo(m.RunSingleTrial, rounds, seed, useMultithread)
}

// dedupe collapses a seed slice into a set, preserving first-seen order.
func dedupe(seeds []int) []int {
	seen := make(map[int]struct{}, len(seeds))
	out := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
