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

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/internal/bench"
	"github.com/ajroetker/go-quicksort/internal/hostinfo"
	"github.com/ajroetker/go-quicksort/qsort"
)

type runFlags struct {
	scenarios  []string
	sizes      []int
	iterations int
	pivot      string
	stable     bool
	seed       uint64
	metricsOut string
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark qsort against slices.Sort",
		Long: `Benchmark qsort against slices.Sort on generated inputs.

Every input is checked against slices.Sort before it is timed. The table
reports mean, median and minimum qsort times, the stdlib median, and the
ratio of the two medians (below 1 means qsort was faster).

Examples:
  # Default scenarios and sizes
  qsortbench run

  # Duplicate-heavy inputs with median-of-three pivots
  qsortbench run --scenarios duplicates --sizes 20000,50000 --pivot median3

  # Save Prometheus metrics for the textfile collector
  qsortbench run --metrics-out /var/lib/node_exporter/qsort.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&f.scenarios, "scenarios", nil, "comma-separated distributions (random, sorted, reverse, duplicates, sawtooth, allequal)")
	flags.IntSliceVar(&f.sizes, "sizes", nil, "comma-separated input sizes")
	flags.IntVar(&f.iterations, "iterations", 0, "timed runs per scenario and size")
	flags.StringVar(&f.pivot, "pivot", "", "pivot strategy (random, median3, first, last)")
	flags.BoolVar(&f.stable, "stable", false, "benchmark the stable variant")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for input generation and random pivots")
	flags.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, f *runFlags) error {
	bc := a.cfg.Bench
	flags := cmd.Flags()
	if flags.Changed("scenarios") {
		bc.Scenarios = f.scenarios
	}
	if flags.Changed("sizes") {
		bc.Sizes = f.sizes
	}
	if flags.Changed("iterations") {
		bc.Iterations = f.iterations
	}
	if flags.Changed("pivot") {
		p, err := qsort.ParsePivotStrategy(f.pivot)
		if err != nil {
			return err
		}
		bc.Pivot = p
	}
	if flags.Changed("stable") {
		bc.Stable = f.stable
	}
	if flags.Changed("seed") {
		bc.Seed = f.seed
	}
	metricsOut := a.cfg.Metrics.Textfile
	if flags.Changed("metrics-out") {
		metricsOut = f.metricsOut
	}

	plan, err := bc.Plan()
	if err != nil {
		return err
	}

	host := hostinfo.Detect()
	metrics := bench.NewMetrics(host)
	report, err := bench.NewRunner(a.logger, metrics, host).Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	if err := report.WriteTable(cmd.OutOrStdout()); err != nil {
		return err
	}

	if metricsOut != "" {
		if err := metrics.WriteTextfile(metricsOut); err != nil {
			return err
		}
		a.logger.Info("metrics written", zap.String("path", metricsOut))
	}
	return nil
}
