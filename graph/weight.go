package graph

import "github.com/katalvlaran/imcascade/internal/mtrand"

// Policy selects how SetEdgeWeight materializes edge probabilities. The set
// is closed: WC, Uniform, Random, and Keep are the only implementations.
type Policy interface {
	apply(g *Graph)
}

// wcPolicy implements the weighted-cascade policy: w(u,v) := 1/in_degree(v).
type wcPolicy struct{}

// WC is the weighted-cascade policy: every edge (u,v) gets weight
// 1/in_degree(v). Nodes with in_degree(v)=0 are unreachable and keep
// whatever weight they already carry (the edge can never be traversed
// anyway, per spec).
func WC() Policy { return wcPolicy{} }

func (wcPolicy) apply(g *Graph) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	inDeg := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		inDeg[v] = len(g.inAdj[v])
	}
	for u := 0; u < g.n; u++ {
		for v := range g.outAdj[u] {
			if inDeg[v] == 0 {
				continue
			}
			w := 1.0 / float64(inDeg[v])
			g.outAdj[u][v] = w
			if g.directed {
				g.inAdj[v][u] = w
			}
		}
	}
}

// uniformPolicy sets every edge weight to a fixed probability.
type uniformPolicy struct{ p float64 }

// Uniform sets every edge weight to p.
func Uniform(p float64) Policy { return uniformPolicy{p: p} }

func (u uniformPolicy) apply(g *Graph) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for a := 0; a < g.n; a++ {
		for b := range g.outAdj[a] {
			g.outAdj[a][b] = u.p
			if g.directed {
				g.inAdj[b][a] = u.p
			}
		}
	}
}

// randomPolicy draws each edge weight uniformly from [lo, hi).
type randomPolicy struct {
	lo, hi float64
	rng    *mtrand.Rand
}

// Random draws each edge weight uniformly from [lo, hi), deterministically
// given rng. Edges are visited in node-then-neighbor order; since map
// iteration order is undefined, callers that need bit-for-bit reproducible
// per-edge weights across runs should treat Random as reproducible only up
// to that ordering, not up to a specific edge-to-draw assignment.
func Random(lo, hi float64, rng *mtrand.Rand) Policy {
	return randomPolicy{lo: lo, hi: hi, rng: rng}
}

func (r randomPolicy) apply(g *Graph) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	span := r.hi - r.lo
	for a := 0; a < g.n; a++ {
		for b := range g.outAdj[a] {
			if !g.directed && b < a {
				// Already drawn from a's mirror entry when b was visited.
				continue
			}
			w := r.lo + span*r.rng.Float64()
			g.outAdj[a][b] = w
			if g.directed {
				g.inAdj[b][a] = w
			} else {
				g.outAdj[b][a] = w
			}
		}
	}
}

// keepPolicy leaves weights untouched.
type keepPolicy struct{}

// Keep leaves the weights provided at construction unchanged.
func Keep() Policy { return keepPolicy{} }

func (keepPolicy) apply(*Graph) {}

// SetEdgeWeight materializes edge weights on g according to policy.
//
// Complexity: O(E) for WC/Uniform/Random, O(1) for Keep.
func SetEdgeWeight(g *Graph, policy Policy) {
	policy.apply(g)
}
