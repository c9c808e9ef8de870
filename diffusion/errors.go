package diffusion

import "errors"

// Sentinel errors. All are input-validation failures raised before the first
// round; a round with no new activations is a normal outcome, not an error.
var (
	// ErrEmptyGraph is returned when the graph or the score map has no nodes.
	ErrEmptyGraph = errors.New("diffusion: graph has no nodes")

	// ErrInvalidProbability is returned for an activation probability outside [0,1].
	ErrInvalidProbability = errors.New("diffusion: activation probability out of range")

	// ErrInvalidStepBound is returned when maxSteps < 1.
	ErrInvalidStepBound = errors.New("diffusion: max steps must be >= 1")

	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("diffusion: graph is nil")

	// ErrNilSource is returned when Run receives a nil random source.
	ErrNilSource = errors.New("diffusion: random source is nil")

	// ErrInvalidScore is returned when a score is NaN, infinite or negative.
	ErrInvalidScore = errors.New("diffusion: invalid centrality score")

	// ErrUnknownNode is returned when the selected seed is not a graph node.
	ErrUnknownNode = errors.New("diffusion: seed is not a graph node")
)
