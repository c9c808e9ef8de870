package diffusion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/influence/bfs"
	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/diffusion"
)

// scripted replays fixed draws and counts how many were consumed.
type scripted struct {
	draws []float64
	next  int
}

func (s *scripted) Float64() float64 {
	v := s.draws[s.next]
	s.next++
	return v
}

// constant always returns the same draw.
type constant float64

func (c constant) Float64() float64 { return float64(c) }

func build(t *testing.T, ctor builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, ctor)
	require.NoError(t, err)
	return g
}

// uniformScores gives every node of g the same score.
func uniformScores(g *core.Graph) centrality.ScoreMap {
	s := make(centrality.ScoreMap, g.NodeCount())
	for _, id := range g.Nodes() {
		s[id] = 1 / float64(g.NodeCount())
	}
	return s
}

// seedAt puts all score mass on one node.
func seedAt(g *core.Graph, seed core.NodeID) centrality.ScoreMap {
	s := make(centrality.ScoreMap, g.NodeCount())
	for _, id := range g.Nodes() {
		s[id] = 0
	}
	s[seed] = 1
	return s
}

// TestRun_CycleScenario is the five-person ring with certain activation.
func TestRun_CycleScenario(t *testing.T) {
	g := build(t, builder.Cycle(5))
	scores := centrality.ScoreMap{0: 0.2, 1: 0.2, 2: 0.2, 3: 0.2, 4: 0.2}

	res, err := diffusion.Run(g, scores, 1, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Seed)
	assert.Equal(t, [][]int{{1, 4}, {2, 3}}, res.Steps)
	assert.Equal(t, 2, res.StepCount())
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, diffusion.FullCoverage, res.Termination)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Influenced)
	assert.Equal(t, 1.0, res.Coverage())
}

// TestRun_ZeroProbability never grows, whatever the random source says.
func TestRun_ZeroProbability(t *testing.T) {
	g := build(t, builder.Complete(6))
	for _, src := range []diffusion.Source{constant(0), constant(0.999), rand.New(rand.NewSource(9))} {
		res, err := diffusion.Run(g, uniformScores(g), 0, 100, src)
		require.NoError(t, err)
		assert.Equal(t, diffusion.NoGrowth, res.Termination)
		assert.Equal(t, 1, res.Rounds)
		assert.Empty(t, res.Steps)
		assert.Equal(t, []int{0}, res.Influenced)
	}
}

// TestRun_RepeatedAttempts shows that old influencers keep trying: node 1
// fails on node 0 in round 1 and succeeds in round 2.
func TestRun_RepeatedAttempts(t *testing.T) {
	g := build(t, builder.Path(3))
	src := &scripted{draws: []float64{0.9, 0.1, 0.4}}

	res, err := diffusion.Run(g, seedAt(g, 1), 0.5, 10, src)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{2}, {0}}, res.Steps)
	assert.Equal(t, diffusion.FullCoverage, res.Termination)
	assert.Equal(t, 3, src.next, "one draw per eligible (u,v) pair")
}

// TestRun_IndependentTrialsPerNeighbor: a node with two influenced
// neighbors gets two trials in the same round.
func TestRun_IndependentTrialsPerNeighbor(t *testing.T) {
	g := build(t, builder.Cycle(4))
	// round 1: 0→1, 0→3 ; round 2: 1→2 fails, 3→2 succeeds
	src := &scripted{draws: []float64{0.1, 0.1, 0.9, 0.2}}

	res, err := diffusion.Run(g, seedAt(g, 0), 0.5, 10, src)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 3}, {2}}, res.Steps)
	assert.Equal(t, 4, src.next)
}

// TestRun_MaxSteps stops at the ceiling; full coverage wins a tie with it.
func TestRun_MaxSteps(t *testing.T) {
	g := build(t, builder.Path(10))
	res, err := diffusion.Run(g, seedAt(g, 0), 1, 3, constant(0))
	require.NoError(t, err)
	assert.Equal(t, diffusion.MaxSteps, res.Termination)
	assert.Equal(t, [][]int{{1}, {2}, {3}}, res.Steps)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Influenced)

	short := build(t, builder.Path(4))
	res, err = diffusion.Run(short, seedAt(short, 0), 1, 3, constant(0))
	require.NoError(t, err)
	assert.Equal(t, diffusion.FullCoverage, res.Termination)
	assert.Equal(t, 3, res.StepCount())
}

// TestRun_NoGrowthAfterProgress: a disconnected graph saturates its component.
func TestRun_NoGrowthAfterProgress(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(5, 6))

	res, err := diffusion.Run(g, seedAt(g, 1), 1, 50, constant(0))
	require.NoError(t, err)
	assert.Equal(t, diffusion.NoGrowth, res.Termination)
	assert.Equal(t, [][]int{{0, 2}}, res.Steps)
	assert.Equal(t, 2, res.Rounds)
	assert.InDelta(t, 0.6, res.Coverage(), 1e-12)
}

// TestRun_CertainActivationBoundedByDiameter: with p=1 on a connected graph
// the run needs exactly ecc(seed) ≤ diameter steps.
func TestRun_CertainActivationBoundedByDiameter(t *testing.T) {
	checked := 0
	for s := int64(1); s <= 40; s++ {
		g, err := builder.Generate(20, 0.2, s)
		require.NoError(t, err)
		diameter, connected, err := bfs.Diameter(g)
		require.NoError(t, err)
		if !connected {
			continue
		}
		scores, err := centrality.NewPageRank().Rank(g)
		require.NoError(t, err)

		res, err := diffusion.Run(g, scores, 1, 100, rand.New(rand.NewSource(s)))
		require.NoError(t, err)
		ecc, err := bfs.Eccentricity(g, res.Seed)
		require.NoError(t, err)

		assert.Equal(t, diffusion.FullCoverage, res.Termination)
		assert.Equal(t, ecc, res.StepCount())
		assert.LessOrEqual(t, res.StepCount(), diameter)
		checked++
	}
	require.Positive(t, checked, "no connected sample graph")
}

// TestRun_Invariants sweeps random graphs and probabilities.
func TestRun_Invariants(t *testing.T) {
	for s := int64(0); s < 60; s++ {
		rng := rand.New(rand.NewSource(s))
		n := 1 + rng.Intn(25)
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomSparse(n, rng.Float64()*0.4))
		require.NoError(t, err)
		scores, err := centrality.Degree{}.Rank(g)
		require.NoError(t, err)
		p := rng.Float64()
		maxSteps := 1 + rng.Intn(6)

		var sizes []int
		obs := diffusion.ObserverFunc(func(_ int, influenced, _ []core.NodeID) {
			sizes = append(sizes, len(influenced))
		})
		res, err := diffusion.Run(g, scores, p, maxSteps, rng, diffusion.WithObserver(obs))
		require.NoError(t, err)

		assert.Contains(t, res.Influenced, res.Seed)
		assert.LessOrEqual(t, res.InfluencedCount(), g.NodeCount())
		assert.LessOrEqual(t, res.StepCount(), maxSteps)
		assert.LessOrEqual(t, res.Rounds, maxSteps+1)

		seen := map[int]bool{res.Seed: true}
		prev := 1
		for i, step := range res.Steps {
			require.NotEmpty(t, step)
			for _, v := range step {
				assert.False(t, seen[v], "node %d influenced twice", v)
				seen[v] = true
			}
			assert.Greater(t, sizes[i], prev)
			prev = sizes[i]
		}
		assert.Len(t, res.Influenced, len(seen))

		switch res.Termination {
		case diffusion.NoGrowth:
			assert.Equal(t, res.StepCount()+1, res.Rounds)
		case diffusion.FullCoverage:
			assert.Equal(t, g.NodeCount(), res.InfluencedCount())
		case diffusion.MaxSteps:
			assert.Equal(t, maxSteps, res.StepCount())
		default:
			t.Fatalf("unexpected termination %v", res.Termination)
		}
	}
}

// TestRun_Reproducible: equal seeds produce equal results.
func TestRun_Reproducible(t *testing.T) {
	g, err := builder.Generate(15, 0.3, 11)
	require.NoError(t, err)
	scores, err := centrality.NewPageRank().Rank(g)
	require.NoError(t, err)

	a, err := diffusion.Run(g, scores, 0.3, 100, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := diffusion.Run(g, scores, 0.3, 100, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRun_Validation covers every input error.
func TestRun_Validation(t *testing.T) {
	g := build(t, builder.Cycle(3))
	scores := uniformScores(g)
	src := constant(0)

	tests := []struct {
		name     string
		g        *core.Graph
		scores   centrality.ScoreMap
		p        float64
		maxSteps int
		src      diffusion.Source
		want     error
	}{
		{"nil graph", nil, scores, 0.3, 10, src, diffusion.ErrNilGraph},
		{"p<0", g, scores, -0.01, 10, src, diffusion.ErrInvalidProbability},
		{"p>1", g, scores, 1.01, 10, src, diffusion.ErrInvalidProbability},
		{"maxSteps=0", g, scores, 0.3, 0, src, diffusion.ErrInvalidStepBound},
		{"nil source", g, scores, 0.3, 10, nil, diffusion.ErrNilSource},
		{"empty graph", core.NewGraph(), centrality.ScoreMap{}, 0.3, 10, src, diffusion.ErrEmptyGraph},
		{"empty scores", g, centrality.ScoreMap{}, 0.3, 10, src, diffusion.ErrEmptyGraph},
		{"bad score", g, centrality.ScoreMap{0: -1}, 0.3, 10, src, diffusion.ErrInvalidScore},
		{"unknown seed", g, centrality.ScoreMap{0: 0.1, 42: 0.9}, 0.3, 10, src, diffusion.ErrUnknownNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := diffusion.Run(tc.g, tc.scores, tc.p, tc.maxSteps, tc.src)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// recorder captures every observer callback.
type recorder struct {
	start  []diffusion.StartEvent
	steps  []diffusion.StepEvent
	finish []*diffusion.Result
}

func (r *recorder) OnStart(ev diffusion.StartEvent) { r.start = append(r.start, ev) }
func (r *recorder) OnStep(ev diffusion.StepEvent)   { r.steps = append(r.steps, ev) }
func (r *recorder) OnFinish(res *diffusion.Result)  { r.finish = append(r.finish, res) }

// TestEngine_Observers checks event content and that observers cannot
// corrupt engine state through the slices they receive.
func TestEngine_Observers(t *testing.T) {
	g := build(t, builder.Cycle(5))
	rec := &recorder{}
	vandal := diffusion.ObserverFunc(func(_ int, influenced, newly []core.NodeID) {
		for i := range influenced {
			influenced[i] = -1
		}
		for i := range newly {
			newly[i] = -1
		}
	})
	eng := diffusion.New(diffusion.WithObserver(vandal, nil, rec))

	res, err := eng.Run(g, uniformScores(g), 1, 10, constant(0))
	require.NoError(t, err)

	require.Len(t, rec.start, 1)
	assert.Equal(t, diffusion.StartEvent{Seed: 0, NodeCount: 5, ActivationProbability: 1, MaxSteps: 10}, rec.start[0])
	require.Len(t, rec.steps, 2)
	assert.Equal(t, diffusion.StepEvent{Step: 1, Influenced: []int{0, 1, 4}, Newly: []int{1, 4}}, rec.steps[0])
	assert.Equal(t, diffusion.StepEvent{Step: 2, Influenced: []int{0, 1, 2, 3, 4}, Newly: []int{2, 3}}, rec.steps[1])
	require.Len(t, rec.finish, 1)
	assert.NotSame(t, res, rec.finish[0])
	assert.Equal(t, res, rec.finish[0])
	assert.Equal(t, [][]int{{1, 4}, {2, 3}}, res.Steps)

	// The engine is reusable.
	again, err := eng.Run(g, uniformScores(g), 1, 10, constant(0))
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

// finishVandal rewrites whatever result it is handed.
type finishVandal struct{}

func (finishVandal) OnStart(diffusion.StartEvent) {}
func (finishVandal) OnStep(diffusion.StepEvent)   {}
func (finishVandal) OnFinish(r *diffusion.Result) {
	r.Steps[0][0] = -7
	r.Steps = r.Steps[:1]
	r.Influenced = r.Influenced[:1]
	r.Termination = diffusion.NoGrowth
	r.Seed = 99
}

// TestEngine_FinishObserversCannotRewriteResult: the result returned by Run
// and the one seen by later observers survive a mutating OnFinish.
func TestEngine_FinishObserversCannotRewriteResult(t *testing.T) {
	g := build(t, builder.Cycle(5))
	rec := &recorder{}

	res, err := diffusion.Run(g, uniformScores(g), 1, 10, constant(0),
		diffusion.WithObserver(finishVandal{}, rec))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Seed)
	assert.Equal(t, [][]int{{1, 4}, {2, 3}}, res.Steps)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Influenced)
	assert.Equal(t, diffusion.FullCoverage, res.Termination)

	require.Len(t, rec.finish, 1)
	assert.Equal(t, res, rec.finish[0])
}

// TestEngine_Logging verifies structured start/step/finish entries.
func TestEngine_Logging(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := build(t, builder.Cycle(5))

	_, err := diffusion.Run(g, uniformScores(g), 1, 10, constant(0), diffusion.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("diffusion started").Len())
	assert.Equal(t, 2, logs.FilterMessage("diffusion step").Len())
	finished := logs.FilterMessage("diffusion finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.Equal(t, "Converged-FullCoverage", fields["termination"])
	assert.EqualValues(t, 0, fields["seed"])
	assert.EqualValues(t, 5, fields["influenced"])

	assert.Panics(t, func() { diffusion.WithLogger(nil) })
}

// TestTermination_String covers the stringer, including unknown values.
func TestTermination_String(t *testing.T) {
	assert.Equal(t, "Converged-NoGrowth", diffusion.NoGrowth.String())
	assert.Equal(t, "Converged-MaxSteps", diffusion.MaxSteps.String())
	assert.Equal(t, "Termination(0)", diffusion.Termination(0).String())
}
