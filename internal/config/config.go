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

// Package config provides configuration loading for qsortbench.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ajroetker/go-quicksort/internal/bench"
	"github.com/ajroetker/go-quicksort/internal/logging"
	"github.com/ajroetker/go-quicksort/qsort"
)

// Config is the complete qsortbench configuration.
type Config struct {
	Log     logging.Config `koanf:"log"`
	Bench   BenchConfig    `koanf:"bench"`
	Verify  VerifyConfig   `koanf:"verify"`
	Metrics MetricsConfig  `koanf:"metrics"`
}

// BenchConfig configures the "run" command.
type BenchConfig struct {
	Scenarios  []string            `koanf:"scenarios"`
	Sizes      []int               `koanf:"sizes"`
	Iterations int                 `koanf:"iterations"`
	Pivot      qsort.PivotStrategy `koanf:"pivot"`
	Stable     bool                `koanf:"stable"`
	Seed       uint64              `koanf:"seed"`
}

// VerifyConfig configures the "verify" command.
type VerifyConfig struct {
	Trials  int    `koanf:"trials"`
	MaxSize int    `koanf:"max_size"`
	Workers int    `koanf:"workers"`
	Seed    uint64 `koanf:"seed"`
}

// MetricsConfig controls where metrics are written.
type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus text exposition after a
	// run.
	Textfile string `koanf:"textfile"`
}

// Default returns the configuration used when nothing overrides it. The
// benchmark defaults follow the classic random/sorted/reverse/duplicates
// comparison at 1k, 5k and 20k elements.
func Default() Config {
	return Config{
		Log: logging.NewDefaultConfig(),
		Bench: BenchConfig{
			Scenarios:  []string{"random", "sorted", "reverse", "duplicates"},
			Sizes:      []int{1000, 5000, 20000},
			Iterations: 5,
			Pivot:      qsort.PivotRandom,
			Seed:       1,
		},
		Verify: VerifyConfig{
			Trials:  200,
			MaxSize: 2000,
			Workers: runtime.GOMAXPROCS(0),
			Seed:    1,
		},
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if _, err := c.Bench.Plan(); err != nil {
		errs = append(errs, fmt.Errorf("bench: %w", err))
	}
	if err := c.Verify.Plan().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("verify: %w", err))
	}
	return errors.Join(errs...)
}

// Plan converts the bench section into a bench.Plan.
func (b BenchConfig) Plan() (bench.Plan, error) {
	plan := bench.Plan{
		Sizes:      b.Sizes,
		Iterations: b.Iterations,
		Pivot:      b.Pivot,
		Stable:     b.Stable,
		Seed:       b.Seed,
	}
	for _, name := range b.Scenarios {
		d, err := bench.ParseDistribution(name)
		if err != nil {
			return bench.Plan{}, err
		}
		plan.Scenarios = append(plan.Scenarios, d)
	}
	if err := plan.Validate(); err != nil {
		return bench.Plan{}, err
	}
	return plan, nil
}

// Plan converts the verify section into a bench.VerifyPlan.
func (v VerifyConfig) Plan() bench.VerifyPlan {
	return bench.VerifyPlan{
		Trials:  v.Trials,
		MaxSize: v.MaxSize,
		Workers: v.Workers,
		Seed:    v.Seed,
	}
}
