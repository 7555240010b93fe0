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

// Command qsortbench benchmarks and verifies the qsort package.
//
// Usage:
//
//	qsortbench run --sizes 1000,5000,20000 --pivot median3
//	qsortbench verify --trials 500 --max-size 5000
//	echo "5 3 9 1" | qsortbench sort --stable
//
// Settings come from Default(), then an optional YAML file (--config), then
// QSORTBENCH_* environment variables, then command-line flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-quicksort/internal/config"
	"github.com/ajroetker/go-quicksort/internal/logging"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by the subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "qsortbench",
		Short: "Benchmark and verify the qsort quicksort",
		Long: `qsortbench compares the qsort package against the standard library sort,
runs randomized property checks against it, and sorts integer lists from the
command line.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newSortCmd(a))
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		level, err := zapcore.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Log.Level = level
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.NewWithSink(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}
