// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: plain-text writers for graphs, rankings and simulation results.

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/influence/bfs"
	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/diffusion"
)

// Sentinel errors for report rendering.
var (
	// ErrNilResult is returned when a writer receives a nil *diffusion.Result.
	ErrNilResult = errors.New("report: result is nil")

	// ErrNilGraph is returned when a renderer receives a nil graph.
	ErrNilGraph = errors.New("report: graph is nil")
)

// WriteGraphStats prints a one-block structural summary of the network.
func WriteGraphStats(w io.Writer, s bfs.Stats) error {
	diameter := "n/a (disconnected)"
	if s.Connected {
		diameter = fmt.Sprint(s.Diameter)
	}
	_, err := fmt.Fprintf(w,
		"Network: %d people, %d friendships\nComponents: %d (largest %d)\nDiameter: %s\n",
		s.Nodes, s.Edges, s.Components, s.Largest, diameter)

	return err
}

// WriteRanking prints the k highest-ranked entries; k <= 0 prints all.
func WriteRanking(w io.Writer, ranking []centrality.Entry, k int) error {
	if k <= 0 || k > len(ranking) {
		k = len(ranking)
	}
	if _, err := fmt.Fprintf(w, "Top %d by importance:\n", k); err != nil {
		return err
	}
	for i, e := range ranking[:k] {
		if _, err := fmt.Fprintf(w, "%3d. node %-4d %.6f\n", i+1, e.Node, e.Score); err != nil {
			return err
		}
	}

	return nil
}

// WriteSummary prints the step record followed by seed, total influenced and
// total steps.
func WriteSummary(w io.Writer, res *diffusion.Result) error {
	if res == nil {
		return ErrNilResult
	}
	ew := &errWriter{w: w}
	ew.printf("Simulation Results\n")
	for i, nodes := range res.Steps {
		ew.printf("Step %d: %v\n", i+1, nodes)
	}
	ew.printf("Starting node (most influential person): %d\n", res.Seed)
	ew.printf("Total number of influenced nodes: %d\n", res.InfluencedCount())
	ew.printf("Total number of steps: %d\n", res.StepCount())
	ew.printf("Termination: %s\n", res.Termination)

	return ew.err
}

// StepPrinter is an Observer that prints progress as the run advances.
type StepPrinter struct {
	w   io.Writer
	err error
}

// NewStepPrinter returns a StepPrinter writing to w.
func NewStepPrinter(w io.Writer) *StepPrinter { return &StepPrinter{w: w} }

// OnStart implements diffusion.Observer.
func (p *StepPrinter) OnStart(ev diffusion.StartEvent) {
	p.printf("\nStarting node (most influential person): %d\n", ev.Seed)
}

// OnStep implements diffusion.Observer.
func (p *StepPrinter) OnStep(ev diffusion.StepEvent) {
	p.printf("Step %d: %v (influenced %d)\n", ev.Step, ev.Newly, len(ev.Influenced))
}

// OnFinish implements diffusion.Observer.
func (p *StepPrinter) OnFinish(res *diffusion.Result) {
	p.printf("Stopped: %s\n", res.Termination)
}

// Err returns the first write error, if any.
func (p *StepPrinter) Err() error { return p.err }

func (p *StepPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// errWriter keeps the first error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
