// Package graph provides the directed (optionally undirected) weighted
// adjacency store shared by every influence-maximization algorithm in this
// module: the diffusion simulators, the simulation-based selectors, and the
// RIS family all read a *Graph and never mutate it mid-run.
//
// Nodes are integers in [0, N). Edges carry a weight in [0, 1] — typically
// an Independent Cascade activation probability or a Linear Threshold
// influence share. A Graph is built once via NewGraph and mutated only
// through AddEdge / AddEdges / UpdateEdgeWeight / RemoveEdge / RemoveEdges;
// simulators assume a read-only snapshot for the duration of a trial or a
// selection run.
//
// Internally, out-neighbors and their weights live together in one map per
// node (outAdj[u][v] = weight(u,v)), so "v is an out-neighbor of u" and
// "the weight of edge (u,v)" are answered by the same O(1) lookup and can
// never disagree. in-neighbors mirror this for directed graphs and are the
// same underlying map for undirected graphs.
//
// For the hot inner loop of Monte Carlo simulation, Graph.Compile produces
// an immutable CSR (compressed sparse row) snapshot: contiguous row_ptr/
// col_idx/w slices that turn neighbor iteration into a linear scan instead
// of a hash lookup per step.
package graph
