// Package selectors implements the simulation-based seed selectors: Greedy
// and CELF (Cost-Effective Lazy Forward). Both repeatedly query a
// diffusion.Model as a spread oracle sigma(S) and pick seeds by marginal
// gain; CELF exploits submodularity of sigma to avoid Greedy's full
// recomputation every round, evaluating candidates with the same trial
// seeds Greedy uses (see CELF for when the two can still differ). Ties
// always favor the smaller node id.
package selectors
