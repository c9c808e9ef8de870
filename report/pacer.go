package report

import (
	"time"

	"github.com/katalvlaran/influence/diffusion"
)

// Pacer is an Observer that pauses after the start event and after every
// step. The engine calls observers synchronously, so the pause slows the run
// itself.
type Pacer struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewPacer returns a Pacer sleeping d per event. A nil sleep uses time.Sleep;
// d <= 0 disables pausing.
func NewPacer(d time.Duration, sleep func(time.Duration)) *Pacer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Pacer{delay: d, sleep: sleep}
}

// OnStart implements diffusion.Observer.
func (p *Pacer) OnStart(diffusion.StartEvent) { p.pause() }

// OnStep implements diffusion.Observer.
func (p *Pacer) OnStep(diffusion.StepEvent) { p.pause() }

// OnFinish implements diffusion.Observer.
func (p *Pacer) OnFinish(*diffusion.Result) {}

func (p *Pacer) pause() {
	if p.delay > 0 {
		p.sleep(p.delay)
	}
}
