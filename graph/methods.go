package graph

// AddEdge inserts edge (u,v) with weight w, or updates its weight if it
// already exists — m is only incremented on first insertion (I4). For
// undirected graphs the mirror entry (v,u) is written into v's map, which
// is also v's in-adjacency, so both directions carry the same weight.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w float64) error {
	if !g.validNode(u) || !g.validNode(v) {
		return ErrInvalidNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	_, existed := g.outAdj[u][v]
	g.outAdj[u][v] = w
	if g.directed {
		g.inAdj[v][u] = w
	} else if u != v {
		g.outAdj[v][u] = w
	}
	if !existed {
		g.m++
	}

	return nil
}

// AddEdges inserts a batch of edges. weights may be nil, in which case
// every edge gets weight 1.0; otherwise len(weights) must equal len(edges).
//
// Complexity: O(len(edges)).
func (g *Graph) AddEdges(edges [][2]int, weights []float64) error {
	if weights != nil && len(weights) != len(edges) {
		return ErrLengthMismatch
	}
	for i, e := range edges {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if err := g.AddEdge(e[0], e[1], w); err != nil {
			return err
		}
	}

	return nil
}

// UpdateEdgeWeight sets the weight of an existing edge (u,v). Returns
// ErrEdgeNotFound if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) UpdateEdgeWeight(u, v int, w float64) error {
	if !g.validNode(u) || !g.validNode(v) {
		return ErrInvalidNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, ok := g.outAdj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	g.outAdj[u][v] = w
	if g.directed {
		g.inAdj[v][u] = w
	} else if u != v {
		g.outAdj[v][u] = w
	}

	return nil
}

// RemoveEdge deletes edge (u,v). Returns ErrEdgeNotFound if absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.validNode(u) || !g.validNode(v) {
		return ErrInvalidNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, ok := g.outAdj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.outAdj[u], v)
	if g.directed {
		delete(g.inAdj[v], u)
	} else if u != v {
		delete(g.outAdj[v], u)
	}
	g.m--

	return nil
}

// RemoveEdges deletes a batch of edges, stopping at the first missing edge.
//
// Complexity: O(len(edges)).
func (g *Graph) RemoveEdges(edges [][2]int) error {
	for _, e := range edges {
		if err := g.RemoveEdge(e[0], e[1]); err != nil {
			return err
		}
	}

	return nil
}
