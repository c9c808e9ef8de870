// Package diffusion simulates single-seed, fixed-probability, synchronous
// influence spread over a core.Graph.
//
// A run proceeds in discrete rounds:
//
//  1. The seed is the node with the highest centrality score; ties go to the
//     lowest NodeID (SelectSeed).
//  2. Every influenced node, not only the newest ones, tries each of its
//     not-yet-influenced neighbors once per round. Each (u,v) attempt is an
//     independent Bernoulli trial with the activation probability p, and v
//     joins the newly influenced set if any attempt on it succeeds.
//  3. A round that influences nobody ends the run (NoGrowth). Otherwise the
//     new nodes are merged, recorded as one step, and the run ends when the
//     whole graph is influenced (FullCoverage) or the step ceiling is hit
//     (MaxSteps).
//
// Frontier nodes are scanned in ascending ID order and neighbors in
// ascending ID order, so for a fixed graph, seed and random Source the exact
// sequence of draws, and hence the StepRecord, is reproducible.
//
// Observers see a copy of the state after every step and the final Result;
// they cannot influence the run. Presentation concerns such as pauses between
// steps belong in observers, never in the engine loop.
package diffusion
