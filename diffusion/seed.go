package diffusion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/core"
)

// SelectSeed returns the node with the maximum score. When several nodes
// share the maximum exactly, the lowest NodeID wins, independent of map
// iteration order.
//
// Errors:
//   - ErrEmptyGraph: scores is empty.
//   - ErrInvalidScore: a score is NaN, ±Inf or negative.
//
// Complexity: O(V).
func SelectSeed(scores centrality.ScoreMap) (core.NodeID, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyGraph
	}

	var (
		best      core.NodeID
		bestScore float64
		found     bool
	)
	for id, sc := range scores {
		if math.IsNaN(sc) || math.IsInf(sc, 0) || sc < 0 {
			return 0, fmt.Errorf("SelectSeed: node %d score %v: %w", id, sc, ErrInvalidScore)
		}
		switch {
		case !found, sc > bestScore, sc == bestScore && id < best:
			best, bestScore, found = id, sc, true
		}
	}

	return best, nil
}
