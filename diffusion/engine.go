package diffusion

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/core"
)

// Defaults used by the command-line entry point.
const (
	DefaultActivationProbability = 0.3
	DefaultMaxSteps              = 100
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("diffusion: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithObserver appends observers; nil entries are skipped.
func WithObserver(obs ...Observer) Option {
	return func(e *Engine) {
		for _, o := range obs {
			if o != nil {
				e.observers = append(e.observers, o)
			}
		}
	}
}

// Engine runs simulations. It holds no per-run state, so one Engine may run
// many simulations sequentially; concurrent runs need their own Source.
type Engine struct {
	logger    *zap.Logger
	observers Observers
}

// New builds an Engine; without WithLogger it logs nowhere.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run is shorthand for New(opts...).Run(...).
func Run(g *core.Graph, scores centrality.ScoreMap, p float64, maxSteps int, rng Source, opts ...Option) (*Result, error) {
	return New(opts...).Run(g, scores, p, maxSteps, rng)
}

// Run simulates influence spread on g from the top-scored node.
//
// Implementation:
//   - Stage 1: Validate inputs (ErrNilGraph, ErrInvalidProbability,
//     ErrInvalidStepBound, ErrNilSource, ErrEmptyGraph).
//   - Stage 2: Select the seed (SelectSeed) and check it belongs to g.
//   - Stage 3: Execute rounds until NoGrowth, FullCoverage or MaxSteps.
//
// Determinism:
//   - Draw order is (frontier node asc, neighbor asc); the result is a pure
//     function of (g, scores, p, maxSteps, rng state).
//
// Complexity:
//   - Time O(R·(V + E)) for R rounds, Space O(V).
func (e *Engine) Run(g *core.Graph, scores centrality.ScoreMap, p float64, maxSteps int, rng Source) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("Run: p=%v not in [0,1]: %w", p, ErrInvalidProbability)
	}
	if maxSteps < 1 {
		return nil, fmt.Errorf("Run: maxSteps=%d: %w", maxSteps, ErrInvalidStepBound)
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	seed, err := SelectSeed(scores)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if !g.HasNode(seed) {
		return nil, fmt.Errorf("Run: seed %d: %w", seed, ErrUnknownNode)
	}

	log := e.logger.With(zap.Int("seed", seed))
	log.Info("diffusion started",
		zap.Int("nodes", n),
		zap.Float64("activation_probability", p),
		zap.Int("max_steps", maxSteps),
	)
	e.observers.OnStart(StartEvent{Seed: seed, NodeCount: n, ActivationProbability: p, MaxSteps: maxSteps})

	res, err := e.spread(g, seed, n, p, maxSteps, rng, log)
	if err != nil {
		return nil, err
	}

	log.Info("diffusion finished",
		zap.Stringer("termination", res.Termination),
		zap.Int("steps", res.StepCount()),
		zap.Int("rounds", res.Rounds),
		zap.Int("influenced", res.InfluencedCount()),
	)
	e.observers.OnFinish(res)

	return res, nil
}

// spread is the round loop. influenced and members always describe the same
// set; members stays sorted so that the frontier scan order is fixed.
func (e *Engine) spread(g *core.Graph, seed core.NodeID, n int, p float64, maxSteps int, rng Source, log *zap.Logger) (*Result, error) {
	influenced := map[core.NodeID]struct{}{seed: {}}
	members := []core.NodeID{seed}
	res := &Result{Seed: seed, NodeCount: n}

	step := 0
	for {
		res.Rounds++
		newly := make(map[core.NodeID]struct{})
		for _, u := range members {
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("Run: neighbors of %d: %w", u, err)
			}
			for _, v := range nbrs {
				if _, done := influenced[v]; done {
					continue
				}
				if rng.Float64() < p {
					newly[v] = struct{}{}
				}
			}
		}

		if len(newly) == 0 {
			res.Termination = NoGrowth
			break
		}

		added := make([]core.NodeID, 0, len(newly))
		for v := range newly {
			added = append(added, v)
			influenced[v] = struct{}{}
		}
		sort.Ints(added)
		members = append(members, added...)
		sort.Ints(members)
		res.Steps = append(res.Steps, added)
		step++

		log.Debug("diffusion step",
			zap.Int("step", step),
			zap.Ints("newly", added),
			zap.Int("influenced", len(members)),
		)
		e.observers.OnStep(StepEvent{Step: step, Influenced: clone(members), Newly: clone(added)})

		if len(members) == n {
			res.Termination = FullCoverage
			break
		}
		if step >= maxSteps {
			res.Termination = MaxSteps
			break
		}
	}
	res.Influenced = members

	return res, nil
}
