// Package centrality ranks the people of a social graph by structural
// importance.
//
// A Ranker turns a *core.Graph into a ScoreMap: one non-negative score per
// node, summing to 1 within floating-point tolerance. Two rankers ship:
//
//	PageRank{Damping, Tolerance} — random-surfer importance, computed by
//	                               gonum's network.PageRank over a mirrored
//	                               directed view of the undirected graph.
//	Degree{}                     — deg(v) / 2|E|, falling back to uniform
//	                               scores when the graph has no edges.
//
// ScoreMap.Ranking returns nodes ordered by score descending with ties broken
// by ascending NodeID, which is the order the reporter prints and the order
// seed selection agrees with.
package centrality
