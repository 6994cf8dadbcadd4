// Package ris implements the Reverse Influence Sampling family: sampling
// Reverse Reachable (RR) sets under IC or LT, greedy max-coverage over the
// RR collection (BaseRIS), and the two-phase sampling/node-selection IMM
// algorithm with martingale-based stopping.
//
// An RR set rooted at v is the set of nodes that, under a reverse
// simulation of the diffusion model, could have activated v. A seed set
// that hits many RR sets covers a large expected fraction of the graph,
// which is what turns "cover as many sampled RR sets as possible" into a
// provable approximation to influence maximization.
package ris
