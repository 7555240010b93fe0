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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quicksort/internal/bench"
	"github.com/ajroetker/go-quicksort/internal/hostinfo"
)

type verifyFlags struct {
	trials  int
	maxSize int
	workers int
	seed    uint64
}

func newVerifyCmd(a *app) *cobra.Command {
	f := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run randomized property checks against qsort",
		Long: `Run randomized trials checking that qsort returns a sorted permutation of
its input, leaves the input alone unless asked to sort in place, returns the
caller's slice when it is, keeps equal keys in order when stable, and leaves
sorted input unchanged. Every pivot strategy is checked in every trial.

Examples:
  qsortbench verify --trials 1000 --max-size 10000 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vc := a.cfg.Verify
			flags := cmd.Flags()
			if flags.Changed("trials") {
				vc.Trials = f.trials
			}
			if flags.Changed("max-size") {
				vc.MaxSize = f.maxSize
			}
			if flags.Changed("workers") {
				vc.Workers = f.workers
			}
			if flags.Changed("seed") {
				vc.Seed = f.seed
			}

			host := hostinfo.Detect()
			metrics := bench.NewMetrics(host)
			report, err := bench.NewRunner(a.logger, metrics, host).Verify(cmd.Context(), vc.Plan())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trials, %d checks\n", report.Trials, report.Checks)
			if path := a.cfg.Metrics.Textfile; path != "" {
				return metrics.WriteTextfile(path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.trials, "trials", 0, "number of randomized trials")
	flags.IntVar(&f.maxSize, "max-size", 0, "largest generated input")
	flags.IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for trial generation")
	return cmd
}
