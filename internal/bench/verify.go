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
	"math/rand/v2"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/internal/workerpool"
	"github.com/ajroetker/go-quicksort/qsort"
)

// ErrPropertyViolated is returned when a verification trial finds a sort
// result that breaks one of the sorter's guarantees.
var ErrPropertyViolated = errors.New("bench: property violated")

// stabilityKeys is the number of distinct keys in stability trials; small
// enough that every run has plenty of ties.
const stabilityKeys = 16

// VerifyPlan describes a verification run.
type VerifyPlan struct {
	Trials  int
	MaxSize int
	Workers int
	Seed    uint64
}

// Validate checks the plan for errors.
func (p VerifyPlan) Validate() error {
	if p.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidPlan, p.Trials)
	}
	if p.MaxSize < 0 {
		return fmt.Errorf("%w: negative max size %d", ErrInvalidPlan, p.MaxSize)
	}
	return nil
}

// VerifyReport is the outcome of Runner.Verify.
type VerifyReport struct {
	Trials int
	Checks int64
}

// record pairs a sort key with its position in the generated input.
type record struct {
	key, id int
}

func compareRecords(a, b record) int {
	return a.key - b.key
}

// Verify runs plan.Trials randomized trials on a worker pool. Each trial
// generates its own input and checks every pivot strategy with and without
// stability and InPlace. The first violation stops the run and is
// returned wrapped in ErrPropertyViolated.
func (r *Runner) Verify(ctx context.Context, plan VerifyPlan) (*VerifyReport, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	pool := workerpool.New(plan.Workers)
	defer pool.Close()

	r.logger.Info("verification started",
		zap.Int("trials", plan.Trials),
		zap.Int("max_size", plan.MaxSize),
		zap.Int("workers", pool.NumWorkers()),
	)

	var checks atomic.Int64
	err := pool.Run(ctx, plan.Trials, func(ctx context.Context, i int) error {
		n, err := runTrial(plan, i)
		checks.Add(n)
		if r.metrics != nil {
			r.metrics.ChecksTotal.Add(float64(n))
			result := "pass"
			if err != nil {
				result = "fail"
			}
			r.metrics.TrialsTotal.WithLabelValues(result).Inc()
		}
		return err
	})
	if err != nil {
		r.logger.Error("verification failed", zap.Error(err), zap.Int64("checks", checks.Load()))
		return nil, err
	}

	report := &VerifyReport{Trials: plan.Trials, Checks: checks.Load()}
	r.logger.Info("verification passed", zap.Int("trials", report.Trials), zap.Int64("checks", report.Checks))
	return report, nil
}

// runTrial runs trial i and returns the number of checks performed.
func runTrial(plan VerifyPlan, i int) (int64, error) {
	rng := rand.New(rand.NewPCG(plan.Seed, uint64(i)))
	dists := Distributions()
	dist := dists[i%len(dists)]
	n := rng.IntN(plan.MaxSize + 1)
	input := Generate(dist, n, rng)

	fail := func(cfg qsort.Config[int], format string, args ...any) error {
		return fmt.Errorf("%w: trial %d (%s, n=%d, pivot=%s, stable=%v, inplace=%v): %s",
			ErrPropertyViolated, i, dist, n, cfg.Pivot, cfg.Stable, cfg.InPlace, fmt.Sprintf(format, args...))
	}

	want := slices.Sorted(slices.Values(input))
	var checks int64

	for _, pivot := range qsort.PivotStrategies() {
		for _, stable := range []bool{false, true} {
			cfg := qsort.Config[int]{Pivot: pivot, Stable: stable, Rand: rng}

			// Copy: input untouched, fresh result, permutation and order.
			orig := slices.Clone(input)
			got, err := qsort.Sort(orig, cfg)
			if err != nil {
				return checks, fail(cfg, "unexpected error: %v", err)
			}
			checks++
			if !slices.Equal(orig, input) {
				return checks, fail(cfg, "input was modified")
			}
			checks++
			if n > 0 && &got[0] == &orig[0] {
				return checks, fail(cfg, "result aliases the input")
			}
			checks++
			if !slices.Equal(got, want) {
				return checks, fail(cfg, "result differs from reference sort")
			}

			// Idempotence.
			again, err := qsort.Sort(got, cfg)
			if err != nil {
				return checks, fail(cfg, "unexpected error: %v", err)
			}
			checks++
			if !slices.Equal(again, got) {
				return checks, fail(cfg, "sorting a sorted slice changed it")
			}

			// InPlace: same slice comes back, sorted.
			cfg.InPlace = true
			inPlace := slices.Clone(input)
			got, err = qsort.Sort(inPlace, cfg)
			if err != nil {
				return checks, fail(cfg, "unexpected error: %v", err)
			}
			checks++
			if len(got) != n || (n > 0 && &got[0] != &inPlace[0]) {
				return checks, fail(cfg, "InPlace returned a different slice")
			}
			checks++
			if !slices.Equal(inPlace, want) {
				return checks, fail(cfg, "InPlace result differs from reference sort")
			}
		}

		checks++
		if err := checkStability(input, pivot, rng); err != nil {
			return checks, fail(qsort.Config[int]{Pivot: pivot, Stable: true}, "%v", err)
		}
	}
	return checks, nil
}

// checkStability sorts records keyed by value modulo stabilityKeys and
// checks that ids within each key stay ascending.
func checkStability(input []int, pivot qsort.PivotStrategy, rng *rand.Rand) error {
	recs := make([]record, len(input))
	for i, v := range input {
		recs[i] = record{key: ((v % stabilityKeys) + stabilityKeys) % stabilityKeys, id: i}
	}

	got, err := qsort.SortFunc(recs, qsort.Config[record]{
		Compare: compareRecords,
		Stable:  true,
		Pivot:   pivot,
		Rand:    rng,
	})
	if err != nil {
		return err
	}
	for j := 1; j < len(got); j++ {
		prev, cur := got[j-1], got[j]
		if prev.key > cur.key {
			return fmt.Errorf("keys out of order at %d", j)
		}
		if prev.key == cur.key && prev.id > cur.id {
			return fmt.Errorf("equal keys reordered at %d (ids %d, %d)", j, prev.id, cur.id)
		}
	}
	return nil
}
