package graph

// OutNeighbors returns the out-neighbor map of u (neighbor id → weight).
// The returned map is a live reference under muAdj's protection model;
// callers that iterate concurrently with mutation must not rely on
// iteration order (it is explicitly undefined) or on the map surviving a
// subsequent mutation — simulators treat the Graph as read-only for the
// duration of a run, per the package doc.
//
// Complexity: O(1) to obtain the map; O(out_degree(u)) to iterate it.
func (g *Graph) OutNeighbors(u int) (map[int]float64, error) {
	if !g.validNode(u) {
		return nil, ErrInvalidNode
	}

	return g.outAdj[u], nil
}

// InNeighbors returns the in-neighbor map of v (neighbor id → weight(u,v)).
//
// Complexity: O(1) to obtain the map; O(in_degree(v)) to iterate it.
func (g *Graph) InNeighbors(v int) (map[int]float64, error) {
	if !g.validNode(v) {
		return nil, ErrInvalidNode
	}

	return g.inAdj[v], nil
}

// EdgeWeight returns the weight of (u,v) and whether the edge exists.
//
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v int) (float64, bool) {
	if !g.validNode(u) || !g.validNode(v) {
		return 0, false
	}
	w, ok := g.outAdj[u][v]

	return w, ok
}

// OutDegree returns the out-degree of u.
//
// Complexity: O(1).
func (g *Graph) OutDegree(u int) (int, error) {
	if !g.validNode(u) {
		return 0, ErrInvalidNode
	}

	return len(g.outAdj[u]), nil
}

// InDegree returns the in-degree of v.
//
// Complexity: O(1).
func (g *Graph) InDegree(v int) (int, error) {
	if !g.validNode(v) {
		return 0, ErrInvalidNode
	}

	return len(g.inAdj[v]), nil
}

// Degree returns the out-degree of u (the spec's documented alias).
//
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	return g.OutDegree(u)
}

// AdjMatrix materializes a dense N×N adjacency-weight matrix. Intended only
// for small graphs: memory is O(N²).
//
// Complexity: O(N²).
func (g *Graph) AdjMatrix() [][]float64 {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	mtx := make([][]float64, g.n)
	for u := 0; u < g.n; u++ {
		mtx[u] = make([]float64, g.n)
		for v, w := range g.outAdj[u] {
			mtx[u][v] = w
		}
	}

	return mtx
}
