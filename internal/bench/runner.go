// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/internal/hostinfo"
	"github.com/ajroetker/go-quicksort/internal/workerpool"
	"github.com/ajroetker/go-quicksort/qsort"
)

var (
	// ErrInvalidPlan is returned for plans with nothing to run.
	ErrInvalidPlan = errors.New("bench: invalid plan")

	// ErrMismatch is returned when qsort disagrees with slices.Sort.
	ErrMismatch = errors.New("bench: result does not match reference sort")
)

// Plan describes a benchmark run.
type Plan struct {
	Scenarios  []Distribution
	Sizes      []int
	Iterations int
	Pivot      qsort.PivotStrategy
	Stable     bool
	Seed       uint64
}

// Validate checks the plan for errors.
func (p Plan) Validate() error {
	if len(p.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidPlan)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidPlan)
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidPlan, n)
		}
	}
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidPlan, p.Iterations)
	}
	return nil
}

// Result holds the timings of one scenario at one size.
type Result struct {
	Scenario Distribution
	Size     int
	QSort    Stats
	Stdlib   Stats
	Ratio    float64
}

// Report is the outcome of Runner.Run.
type Report struct {
	Host    hostinfo.Info
	Plan    Plan
	Results []Result
}

// Runner executes benchmark plans and verification trials.
type Runner struct {
	logger  *zap.Logger
	metrics *Metrics
	host    hostinfo.Info
	now     func() time.Time
}

// NewRunner creates a Runner. A nil logger disables logging and nil
// metrics disables recording.
func NewRunner(logger *zap.Logger, metrics *Metrics, host hostinfo.Info) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, metrics: metrics, host: host, now: time.Now}
}

// Run benchmarks every scenario at every size. All inputs are generated
// up front and checked against slices.Sort on a worker pool before any
// timing starts; a disagreement aborts the run with ErrMismatch. ctx is
// checked between timed runs.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Host: r.host, Plan: plan}
	rng := rand.New(rand.NewPCG(plan.Seed, plan.Seed^0x9e3779b97f4a7c15))
	cfg := qsort.Config[int]{
		Pivot:  plan.Pivot,
		Stable: plan.Stable,
		Rand:   rng,
	}

	r.logger.Info("benchmark started",
		zap.Stringer("host", r.host),
		zap.Stringer("pivot", plan.Pivot),
		zap.Bool("stable", plan.Stable),
		zap.Int("iterations", plan.Iterations),
	)

	var cases []benchCase
	for _, scenario := range plan.Scenarios {
		for _, n := range plan.Sizes {
			cases = append(cases, benchCase{scenario: scenario, base: Generate(scenario, n, rng)})
		}
	}

	pool := workerpool.New(0)
	defer pool.Close()
	if err := checkCases(pool, cases, cfg, plan.Seed); err != nil {
		r.logger.Error("correctness check failed", zap.Error(err))
		return nil, err
	}

	for _, c := range cases {
		res, err := r.timeScenario(ctx, c.scenario, c.base, cfg, plan.Iterations)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)

		r.logger.Debug("scenario finished",
			zap.String("scenario", string(c.scenario)),
			zap.Int("size", len(c.base)),
			zap.Duration("qsort_median", res.QSort.Median),
			zap.Duration("stdlib_median", res.Stdlib.Median),
			zap.Float64("ratio", res.Ratio),
		)
	}

	r.logger.Info("benchmark complete", zap.Int("results", len(report.Results)))
	return report, nil
}

// benchCase is one generated input of a plan.
type benchCase struct {
	scenario Distribution
	base     []int
}

// checkCases runs checkAgainstReference over cases on the pool. Each case
// gets its own pivot source, seeded from seed and its index. The error of
// the first failing case in plan order is returned.
func checkCases(pool *workerpool.Pool, cases []benchCase, cfg qsort.Config[int], seed uint64) error {
	errs := make([]error, len(cases))
	pool.ParallelFor(len(cases), func(start, end int) {
		for i := start; i < end; i++ {
			c := cfg
			c.Rand = rand.New(rand.NewPCG(seed, uint64(i)))
			errs[i] = checkAgainstReference(cases[i].base, c)
		}
	})
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("scenario %s size %d: %w", cases[i].scenario, len(cases[i].base), err)
		}
	}
	return nil
}

// timeScenario times qsort and slices.Sort on private copies of base.
// Copies are made outside the timed region for both.
func (r *Runner) timeScenario(ctx context.Context, scenario Distribution, base []int, cfg qsort.Config[int], iterations int) (Result, error) {
	n := len(base)
	cfg.InPlace = true
	qsTimes := make([]time.Duration, 0, iterations)
	stdTimes := make([]time.Duration, 0, iterations)

	for range iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		work := slices.Clone(base)
		start := r.now()
		if _, err := qsort.Sort(work, cfg); err != nil {
			return Result{}, err
		}
		qsTimes = append(qsTimes, r.now().Sub(start))

		work = slices.Clone(base)
		start = r.now()
		slices.Sort(work)
		stdTimes = append(stdTimes, r.now().Sub(start))
	}

	res := Result{
		Scenario: scenario,
		Size:     n,
		QSort:    Summarize(qsTimes),
		Stdlib:   Summarize(stdTimes),
	}
	res.Ratio = Ratio(res.QSort, res.Stdlib)
	r.record(res, qsTimes, stdTimes)
	return res, nil
}

func (r *Runner) record(res Result, qsTimes, stdTimes []time.Duration) {
	if r.metrics == nil {
		return
	}
	size := sizeLabel(res.Size)
	for _, d := range qsTimes {
		r.metrics.SortDuration.WithLabelValues(implQSort, string(res.Scenario), size).Observe(d.Seconds())
	}
	for _, d := range stdTimes {
		r.metrics.SortDuration.WithLabelValues(implStdlib, string(res.Scenario), size).Observe(d.Seconds())
	}
	r.metrics.MedianRatio.WithLabelValues(string(res.Scenario), size).Set(res.Ratio)
}

// checkAgainstReference sorts base with cfg and compares the result to
// slices.Sort. base is left untouched.
func checkAgainstReference(base []int, cfg qsort.Config[int]) error {
	got, err := qsort.Sort(base, cfg)
	if err != nil {
		return err
	}
	want := slices.Sorted(slices.Values(base))
	if !slices.Equal(got, want) {
		return ErrMismatch
	}
	return nil
}

// WriteTable prints the report as an aligned table.
func (rep *Report) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "host: %s\nfeatures: %s\npivot: %s  stable: %v  iterations: %d\n\n",
		rep.Host, rep.Host.FeatureList(), rep.Plan.Pivot, rep.Plan.Stable, rep.Plan.Iterations); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SCENARIO\tN\tQSORT MEAN\tQSORT MEDIAN\tQSORT MIN\tSTDLIB MEDIAN\tRATIO\t")
	for _, res := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.3f\t\n",
			res.Scenario,
			humanize.Comma(int64(res.Size)),
			res.QSort.Mean.Round(time.Microsecond),
			res.QSort.Median.Round(time.Microsecond),
			res.QSort.Min.Round(time.Microsecond),
			res.Stdlib.Median.Round(time.Microsecond),
			res.Ratio,
		)
	}
	return tw.Flush()
}
