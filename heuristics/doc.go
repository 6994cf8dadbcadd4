// Package heuristics implements the cheap, non-simulation seed-selection
// baselines SingleDiscount and DegreeDiscount. Both operate purely on
// degree bookkeeping over a graph.CompiledGraph and never invoke a
// diffusion model, so they run orders of magnitude faster than Greedy,
// CELF, or the RIS family at the cost of a weaker spread guarantee.
package heuristics
