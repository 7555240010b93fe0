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
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-quicksort/internal/hostinfo"
	"github.com/ajroetker/go-quicksort/internal/workerpool"
	"github.com/ajroetker/go-quicksort/qsort"
)

func testHost() hostinfo.Info {
	return hostinfo.Info{GOOS: "linux", GOARCH: "amd64", GoVersion: "go1.26", NumCPU: 4, GOMAXPROCS: 4, Vector: "avx2"}
}

func newObservedRunner(t *testing.T) (*Runner, *observer.ObservedLogs, *Metrics) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := NewMetrics(testHost())
	return NewRunner(zap.New(core), metrics, testHost()), logs, metrics
}

func TestGenerate(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, d := range Distributions() {
		data := Generate(d, 500, r)
		require.Len(t, data, 500, "distribution %s", d)
	}

	sorted := Generate(Sorted, 300, r)
	assert.True(t, slices.IsSorted(sorted))

	reverse := Generate(Reverse, 300, r)
	assert.True(t, slices.IsSortedFunc(reverse, func(a, b int) int { return b - a }))

	dups := Generate(Duplicates, 1000, r)
	distinct := slices.Compact(slices.Sorted(slices.Values(dups)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, distinct)

	equal := Generate(AllEqual, 10, r)
	assert.Len(t, slices.Compact(equal), 1)

	saw := Generate(Sawtooth, 130, r)
	assert.Equal(t, 0, saw[64])
	assert.Equal(t, 63, saw[63])

	assert.Empty(t, Generate(Random, 0, r))
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(Random, 100, rand.New(rand.NewPCG(7, 7)))
	b := Generate(Random, 100, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestParseDistribution(t *testing.T) {
	for _, d := range Distributions() {
		got, err := ParseDistribution(strings.ToUpper(string(d)))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDistribution("zigzag")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	times := []time.Duration{5 * time.Millisecond, 1 * time.Millisecond, 3 * time.Millisecond, 7 * time.Millisecond}
	s := Summarize(times)

	assert.Equal(t, 4, s.Runs)
	assert.Equal(t, 4*time.Millisecond, s.Mean)
	assert.Equal(t, 4*time.Millisecond, s.Median)
	assert.Equal(t, 1*time.Millisecond, s.Min)
	assert.Equal(t, 7*time.Millisecond, s.Max)
	assert.Equal(t, 5*time.Millisecond, times[0], "Summarize must not reorder its input")

	odd := Summarize([]time.Duration{3, 1, 2})
	assert.Equal(t, time.Duration(2), odd.Median)

	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 2.0, Ratio(Stats{Median: 10}, Stats{Median: 5}), 1e-9)
	assert.Zero(t, Ratio(Stats{Median: 10}, Stats{}))
}

func TestPlanValidate(t *testing.T) {
	valid := Plan{Scenarios: []Distribution{Random}, Sizes: []int{10}, Iterations: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(p *Plan)
	}{
		{"no_scenarios", func(p *Plan) { p.Scenarios = nil }},
		{"no_sizes", func(p *Plan) { p.Sizes = nil }},
		{"negative_size", func(p *Plan) { p.Sizes = []int{-1} }},
		{"zero_iterations", func(p *Plan) { p.Iterations = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.edit(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPlan)
		})
	}
}

func TestRunnerRun(t *testing.T) {
	runner, logs, metrics := newObservedRunner(t)

	plan := Plan{
		Scenarios:  []Distribution{Random, Duplicates, Reverse},
		Sizes:      []int{0, 100, 2000},
		Iterations: 3,
		Pivot:      qsort.PivotMedian3,
		Seed:       42,
	}
	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, report.Results, 9)

	for _, res := range report.Results {
		assert.Equal(t, 3, res.QSort.Runs)
		assert.Equal(t, 3, res.Stdlib.Runs)
		assert.LessOrEqual(t, res.QSort.Min, res.QSort.Median)
		assert.LessOrEqual(t, res.QSort.Median, res.QSort.Max)
	}

	assert.Equal(t, 1, logs.FilterMessage("benchmark started").Len())
	assert.Equal(t, 1, logs.FilterMessage("benchmark complete").Len())
	assert.Equal(t, 9, logs.FilterMessage("scenario finished").Len())

	// One histogram series per impl, scenario and size.
	assert.Equal(t, 18, testutil.CollectAndCount(metrics.SortDuration))
	assert.Equal(t, 9, testutil.CollectAndCount(metrics.MedianRatio))

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf))
	out := buf.String()
	assert.Contains(t, out, "pivot: median3")
	assert.Contains(t, out, "duplicates")
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "vector=avx2")
}

func TestRunnerRunCancelled(t *testing.T) {
	runner := NewRunner(nil, nil, testHost())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, Plan{Scenarios: []Distribution{Random}, Sizes: []int{10}, Iterations: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRunInvalidPlan(t *testing.T) {
	runner := NewRunner(nil, nil, testHost())
	_, err := runner.Run(context.Background(), Plan{})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestCheckAgainstReference(t *testing.T) {
	base := []int{3, 1, 2}
	require.NoError(t, checkAgainstReference(base, qsort.Config[int]{}))
	assert.Equal(t, []int{3, 1, 2}, base)

	// A comparator that ignores its arguments cannot produce the reference
	// order.
	broken := qsort.Config[int]{Compare: func(a, b int) int { return 0 }}
	assert.ErrorIs(t, checkAgainstReference(base, broken), ErrMismatch)
}

func TestCheckCases(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewPCG(3, 4))
	var cases []benchCase
	for _, d := range Distributions() {
		for _, n := range []int{0, 1, 17, 500} {
			cases = append(cases, benchCase{scenario: d, base: Generate(d, n, rng)})
		}
	}
	originals := make([][]int, len(cases))
	for i, c := range cases {
		originals[i] = slices.Clone(c.base)
	}

	for _, pivot := range qsort.PivotStrategies() {
		require.NoError(t, checkCases(pool, cases, qsort.Config[int]{Pivot: pivot}, 9), "pivot %s", pivot)
	}
	for i, c := range cases {
		assert.Equal(t, originals[i], c.base, "case %d was modified", i)
	}

	// The first failing case in plan order is reported.
	broken := qsort.Config[int]{Compare: func(a, b int) int { return 0 }}
	err := checkCases(pool, cases, broken, 9)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "scenario random size 17")
}

func TestTimeScenarioCopiesOutsideTimer(t *testing.T) {
	runner := NewRunner(nil, nil, testHost())

	// Each clock read advances by a millisecond, so every timed region
	// covers exactly one start/stop pair.
	var tick time.Duration
	epoch := time.Unix(0, 0)
	runner.now = func() time.Time {
		tick += time.Millisecond
		return epoch.Add(tick)
	}

	base := Generate(Reverse, 300, rand.New(rand.NewPCG(1, 1)))
	orig := slices.Clone(base)

	res, err := runner.timeScenario(context.Background(), Reverse, base, qsort.Config[int]{}, 4)
	require.NoError(t, err)
	assert.Equal(t, orig, base, "timing sorted the caller's input")
	assert.Equal(t, 4, res.QSort.Runs)
	assert.Equal(t, time.Millisecond, res.QSort.Median)
	assert.Equal(t, time.Millisecond, res.Stdlib.Median)
	assert.InDelta(t, 1.0, res.Ratio, 1e-9)
}

func TestRunnerVerify(t *testing.T) {
	runner, logs, metrics := newObservedRunner(t)

	report, err := runner.Verify(context.Background(), VerifyPlan{Trials: 24, MaxSize: 300, Workers: 4, Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, 24, report.Trials)
	assert.Positive(t, report.Checks)

	assert.InDelta(t, 24, testutil.ToFloat64(metrics.TrialsTotal.WithLabelValues("pass")), 0)
	assert.InDelta(t, float64(report.Checks), testutil.ToFloat64(metrics.ChecksTotal), 0)
	assert.Equal(t, 1, logs.FilterMessage("verification passed").Len())
}

func TestRunnerVerifyInvalidPlan(t *testing.T) {
	runner := NewRunner(nil, nil, testHost())
	_, err := runner.Verify(context.Background(), VerifyPlan{Trials: 0})
	assert.ErrorIs(t, err, ErrInvalidPlan)
	_, err = runner.Verify(context.Background(), VerifyPlan{Trials: 1, MaxSize: -1})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestRunnerVerifyCancelled(t *testing.T) {
	runner := NewRunner(nil, nil, testHost())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Verify(ctx, VerifyPlan{Trials: 10, MaxSize: 10, Workers: 2})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCheckStability(t *testing.T) {
	input := Generate(Duplicates, 500, rand.New(rand.NewPCG(3, 3)))
	for _, p := range qsort.PivotStrategies() {
		assert.NoError(t, checkStability(input, p, rand.New(rand.NewPCG(4, 4))))
	}
}

func TestMetricsWriteTextfile(t *testing.T) {
	metrics := NewMetrics(testHost())
	metrics.MedianRatio.WithLabelValues("random", "1000").Set(1.25)

	path := filepath.Join(t.TempDir(), "qsort.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `qsort_bench_median_ratio{goarch="amd64",scenario="random",size="1000",vector="avx2"} 1.25`)
}
