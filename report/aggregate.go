package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/influence/diffusion"
)

// Summary describes repeated trials over the same graph and scores.
type Summary struct {
	Trials         int
	MeanInfluenced float64
	StdInfluenced  float64
	MeanSteps      float64
	StdSteps       float64
	MeanCoverage   float64
	MinInfluenced  int
	MaxInfluenced  int
	Terminations   map[diffusion.Termination]int
}

// Aggregate summarises results. Standard deviations are the sample values
// and are zero for fewer than two trials. Nil results are ignored.
func Aggregate(results []*diffusion.Result) Summary {
	s := Summary{Terminations: make(map[diffusion.Termination]int)}
	var influenced, steps, coverage []float64
	for _, r := range results {
		if r == nil {
			continue
		}
		n := r.InfluencedCount()
		if s.Trials == 0 || n < s.MinInfluenced {
			s.MinInfluenced = n
		}
		if n > s.MaxInfluenced {
			s.MaxInfluenced = n
		}
		s.Trials++
		s.Terminations[r.Termination]++
		influenced = append(influenced, float64(n))
		steps = append(steps, float64(r.StepCount()))
		coverage = append(coverage, r.Coverage())
	}
	if s.Trials == 0 {
		return s
	}

	s.MeanInfluenced = stat.Mean(influenced, nil)
	s.MeanSteps = stat.Mean(steps, nil)
	s.MeanCoverage = stat.Mean(coverage, nil)
	if s.Trials > 1 {
		s.StdInfluenced = stat.StdDev(influenced, nil)
		s.StdSteps = stat.StdDev(steps, nil)
	}

	return s
}

// WriteAggregate prints s; terminations are listed in enum order.
func WriteAggregate(w io.Writer, s Summary) error {
	ew := &errWriter{w: w}
	ew.printf("Trials: %d\n", s.Trials)
	ew.printf("Influenced: mean %.2f, sd %.2f, min %d, max %d\n",
		s.MeanInfluenced, s.StdInfluenced, s.MinInfluenced, s.MaxInfluenced)
	ew.printf("Steps: mean %.2f, sd %.2f\n", s.MeanSteps, s.StdSteps)
	ew.printf("Coverage: mean %.1f%%\n", 100*s.MeanCoverage)

	kinds := make([]diffusion.Termination, 0, len(s.Terminations))
	for k := range s.Terminations {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		ew.printf("  %s: %d\n", k, s.Terminations[k])
	}

	return ew.err
}

// String implements fmt.Stringer for logging.
func (s Summary) String() string {
	return fmt.Sprintf("trials=%d mean_influenced=%.2f mean_steps=%.2f", s.Trials, s.MeanInfluenced, s.MeanSteps)
}
