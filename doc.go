// Package imcascade implements influence maximization on directed,
// weighted graphs: given a graph, a stochastic diffusion model (Independent
// Cascade or Linear Threshold), and a seed budget k, find a set of k nodes
// whose simulated or sampled influence spread is as large as possible.
//
// The module is organized bottom-up:
//
//	graph/           — int-indexed adjacency store, edge-weight policies, CSR compilation
//	internal/mtrand/ — seeded Mersenne Twister RNG and per-trial seed derivation
//	diffusion/       — IC and LT stochastic cascade simulators, reproducible Monte Carlo
//	selectors/       — Greedy and CELF, simulation-based seed selection
//	ris/             — RR-set sampling, max-cover, BaseRIS and IMM
//	heuristics/      — SingleDiscount and DegreeDiscount, cheap degree-only baselines
//	internal/xlog/   — leveled logging for IMM's sampling phase
//
// Every stochastic operation in this module accepts an explicit uint32
// seed and is reproducible: the same seed always reaches the same result,
// whether a diffusion Monte Carlo run is single- or multi-threaded.
//
// A minimal walkthrough:
//
//	g := graph.NewGraph(n, true)
//	g.AddEdge(0, 1, 0)
//	graph.SetEdgeWeight(g, graph.WC())
//	c := g.Compile()
//
//	ctor := func(seeds []int) diffusion.Model { return diffusion.NewIC(c, seeds) }
//	seeds := selectors.NewCELF(n, ctor).Run(k, 1000, 42)
package imcascade
