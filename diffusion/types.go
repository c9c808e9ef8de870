package diffusion

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// Source is the random stream consumed by the engine, one Float64 per
// activation attempt. *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Termination records why a run stopped. All causes are normal outcomes.
type Termination int

const (
	// NoGrowth: a full round produced no new activations.
	NoGrowth Termination = iota + 1
	// FullCoverage: every node of the graph is influenced.
	FullCoverage
	// MaxSteps: the step ceiling was reached.
	MaxSteps
)

// String implements fmt.Stringer.
func (t Termination) String() string {
	switch t {
	case NoGrowth:
		return "Converged-NoGrowth"
	case FullCoverage:
		return "Converged-FullCoverage"
	case MaxSteps:
		return "Converged-MaxSteps"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// Result is the immutable outcome of one run.
type Result struct {
	// Seed is the initially influenced node.
	Seed core.NodeID

	// Influenced lists every influenced node, sorted ascending; Seed included.
	Influenced []core.NodeID

	// Steps is the StepRecord: Steps[i] holds the nodes newly influenced by
	// step i+1, sorted ascending. Entries are never empty.
	Steps [][]core.NodeID

	// Rounds counts executed rounds, including a final round that produced
	// nothing. Rounds == len(Steps) unless Termination == NoGrowth, in which
	// case Rounds == len(Steps)+1.
	Rounds int

	// Termination is the cause that ended the run.
	Termination Termination

	// NodeCount is |V| of the simulated graph.
	NodeCount int
}

// StepCount returns the number of completed growth steps.
func (r *Result) StepCount() int { return len(r.Steps) }

// InfluencedCount returns |Influenced|.
func (r *Result) InfluencedCount() int { return len(r.Influenced) }

// Coverage returns the influenced fraction of the graph in [0,1].
func (r *Result) Coverage() float64 {
	if r.NodeCount == 0 {
		return 0
	}
	return float64(len(r.Influenced)) / float64(r.NodeCount)
}

// StartEvent is delivered once, after seed selection and before round 1.
type StartEvent struct {
	Seed                  core.NodeID
	NodeCount             int
	ActivationProbability float64
	MaxSteps              int
}

// StepEvent is delivered after every step that influenced someone.
// Slices are copies owned by the observer.
type StepEvent struct {
	Step       int           // 1-based step number
	Influenced []core.NodeID // everyone influenced so far, sorted
	Newly      []core.NodeID // influenced during this step, sorted
}
