package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/influence/core"
)

// Default PageRank parameters (the classic random-surfer setting).
const (
	DefaultDamping   = 0.85
	DefaultTolerance = 1e-10
	DefaultQuantum   = 1e-8
)

// PageRank ranks nodes by their stationary random-surfer probability.
//
// gonum starts its power iteration from a random vector, so two runs agree
// only to within Tolerance. Scores are therefore snapped to a Quantum grid
// before normalisation: structurally equivalent people (every node of a
// cycle, every leaf of a star) then tie exactly and seed selection stays
// reproducible.
type PageRank struct {
	Damping   float64 // probability of following a link; (0,1)
	Tolerance float64 // L2 convergence threshold; > 0
	Quantum   float64 // score grid; 0 disables snapping
}

// NewPageRank returns a PageRank ranker with the default parameters.
func NewPageRank() PageRank {
	return PageRank{Damping: DefaultDamping, Tolerance: DefaultTolerance, Quantum: DefaultQuantum}
}

// Rank computes PageRank for every node of g.
//
// Implementation:
//   - Stage 1: Validate parameters (ErrBadDamping, ErrBadTolerance).
//   - Stage 2: Mirror each undirected edge into a gonum simple.DirectedGraph.
//   - Stage 3: Run network.PageRank, snap to Quantum, renormalise to Σ=1.
//
// Complexity: dominated by gonum's dense iteration, O(V²) per step.
func (p PageRank) Rank(g *core.Graph) (ScoreMap, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !(p.Damping > 0 && p.Damping < 1) {
		return nil, fmt.Errorf("PageRank: damping=%v: %w", p.Damping, ErrBadDamping)
	}
	if !(p.Tolerance > 0) {
		return nil, fmt.Errorf("PageRank: tolerance=%v: %w", p.Tolerance, ErrBadTolerance)
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ScoreMap{}, nil
	}

	dg := simple.NewDirectedGraph()
	for _, id := range nodes {
		dg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		u, v := simple.Node(e.From), simple.Node(e.To)
		dg.SetEdge(dg.NewEdge(u, v))
		dg.SetEdge(dg.NewEdge(v, u))
	}

	raw := network.PageRank(dg, p.Damping, p.Tolerance)

	scores := make(ScoreMap, len(nodes))
	for _, id := range nodes {
		sc := math.Abs(raw[int64(id)])
		if p.Quantum > 0 {
			sc = math.Round(sc/p.Quantum) * p.Quantum
		}
		scores[id] = sc
	}
	scores.normalize()

	return scores, nil
}
