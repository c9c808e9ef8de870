package centrality

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// Degree ranks nodes by their share of edge endpoints: deg(v) / 2|E|.
// A graph without edges gets uniform scores so the result is still a
// distribution.
type Degree struct{}

// Rank computes degree centrality for every node of g. Complexity: O(V).
func (Degree) Rank(g *core.Graph) (ScoreMap, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.EdgeCount() == 0 {
		return uniform(g), nil
	}

	endpoints := float64(2 * g.EdgeCount())
	nodes := g.Nodes()
	scores := make(ScoreMap, len(nodes))
	for _, id := range nodes {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("Degree: node %d: %w", id, err)
		}
		scores[id] = float64(d) / endpoints
	}

	return scores, nil
}

// ByName resolves a ranker from its configuration name.
func ByName(name string, damping float64) (Ranker, error) {
	switch name {
	case "", "pagerank":
		pr := NewPageRank()
		if damping != 0 {
			pr.Damping = damping
		}
		return pr, nil
	case "degree":
		return Degree{}, nil
	default:
		return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownRanker)
	}
}
