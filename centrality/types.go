package centrality

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/influence/core"
)

// Sentinel errors for ranking.
var (
	// ErrNilGraph is returned when Rank receives a nil graph.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrBadDamping indicates a PageRank damping factor outside (0,1).
	ErrBadDamping = errors.New("centrality: damping must be in (0,1)")

	// ErrBadTolerance indicates a non-positive PageRank tolerance.
	ErrBadTolerance = errors.New("centrality: tolerance must be > 0")

	// ErrNotDistribution is returned by Validate when scores are negative,
	// non-finite, or do not sum to 1.
	ErrNotDistribution = errors.New("centrality: scores are not a distribution")

	// ErrUnknownRanker is returned by ByName for an unrecognised ranker name.
	ErrUnknownRanker = errors.New("centrality: unknown ranker")
)

// SumTolerance bounds |Σ scores − 1| accepted by Validate.
const SumTolerance = 1e-6

// ScoreMap maps each node to its importance score in [0,1].
type ScoreMap map[core.NodeID]float64

// Ranker computes a ScoreMap for a fixed graph.
type Ranker interface {
	Rank(g *core.Graph) (ScoreMap, error)
}

// Entry is one row of a Ranking.
type Entry struct {
	Node  core.NodeID
	Score float64
}

// Ranking returns the entries sorted by score descending, ties by NodeID
// ascending.
func (s ScoreMap) Ranking() []Entry {
	out := make([]Entry, 0, len(s))
	for id, sc := range s {
		out = append(out, Entry{Node: id, Score: sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Node < out[j].Node
	})

	return out
}

// Sum returns Σ scores.
func (s ScoreMap) Sum() float64 {
	var total float64
	for _, sc := range s {
		total += sc
	}

	return total
}

// Validate checks that s covers exactly the nodes of g and is a probability
// distribution. An empty graph with an empty ScoreMap is valid.
func (s ScoreMap) Validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(s) != g.NodeCount() {
		return fmt.Errorf("%w: %d scores for %d nodes", ErrNotDistribution, len(s), g.NodeCount())
	}
	if len(s) == 0 {
		return nil
	}
	for id, sc := range s {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: score for unknown node %d", ErrNotDistribution, id)
		}
		if math.IsNaN(sc) || math.IsInf(sc, 0) || sc < 0 {
			return fmt.Errorf("%w: node %d has score %v", ErrNotDistribution, id, sc)
		}
	}
	if sum := s.Sum(); math.Abs(sum-1) > SumTolerance {
		return fmt.Errorf("%w: scores sum to %.9f", ErrNotDistribution, sum)
	}

	return nil
}

// normalize rescales s in place so that it sums to 1. A zero total is left
// untouched.
func (s ScoreMap) normalize() {
	total := s.Sum()
	if total <= 0 {
		return
	}
	for id := range s {
		s[id] /= total
	}
}

// uniform assigns 1/|V| to every node of g.
func uniform(g *core.Graph) ScoreMap {
	nodes := g.Nodes()
	out := make(ScoreMap, len(nodes))
	for _, id := range nodes {
		out[id] = 1 / float64(len(nodes))
	}

	return out
}
