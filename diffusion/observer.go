package diffusion

import "github.com/katalvlaran/influence/core"

// Observer watches a run. Implementations must not block indefinitely; the
// engine calls them synchronously from its loop.
type Observer interface {
	OnStart(StartEvent)
	OnStep(StepEvent)
	OnFinish(*Result)
}

// ObserverFunc adapts a per-step callback
// (step, influencedSoFar, newlyInfluenced) to an Observer.
type ObserverFunc func(step int, influenced, newly []core.NodeID)

// OnStart is a no-op.
func (ObserverFunc) OnStart(StartEvent) {}

// OnStep forwards the event to f.
func (f ObserverFunc) OnStep(ev StepEvent) { f(ev.Step, ev.Influenced, ev.Newly) }

// OnFinish is a no-op.
func (ObserverFunc) OnFinish(*Result) {}

// Observers fans every event out to each member in order.
type Observers []Observer

// OnStart implements Observer.
func (os Observers) OnStart(ev StartEvent) {
	for _, o := range os {
		o.OnStart(ev)
	}
}

// OnStep implements Observer. Each member gets its own copy of the slices.
func (os Observers) OnStep(ev StepEvent) {
	for _, o := range os {
		o.OnStep(StepEvent{
			Step:       ev.Step,
			Influenced: clone(ev.Influenced),
			Newly:      clone(ev.Newly),
		})
	}
}

// OnFinish implements Observer. Each member gets its own deep copy of res.
func (os Observers) OnFinish(res *Result) {
	for _, o := range os {
		o.OnFinish(res.clone())
	}
}

func clone(ids []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(ids))
	copy(out, ids)
	return out
}

func (r *Result) clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Influenced = clone(r.Influenced)
	if r.Steps != nil {
		c.Steps = make([][]core.NodeID, len(r.Steps))
		for i, step := range r.Steps {
			c.Steps[i] = clone(step)
		}
	}
	return &c
}
