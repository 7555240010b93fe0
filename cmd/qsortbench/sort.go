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
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/qsort"
)

type sortFlags struct {
	pivot   string
	stable  bool
	reverse bool
}

func newSortCmd(a *app) *cobra.Command {
	f := &sortFlags{}

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort whitespace-separated integers from a file or stdin",
		Long: `Sort whitespace-separated integers read from a file or stdin and print them
on one line.

Examples:
  # Sort a file
  qsortbench sort numbers.txt

  # Sort from stdin, descending
  echo "3 1 2" | qsortbench sort --reverse -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer file.Close()
				in = file
			}

			pivot, err := qsort.ParsePivotStrategy(f.pivot)
			if err != nil {
				return err
			}

			values, err := readInts(in)
			if err != nil {
				return err
			}

			compare := cmp.Compare[int]
			if f.reverse {
				compare = func(x, y int) int { return cmp.Compare(y, x) }
			}
			sorted, err := qsort.Sort(values, qsort.Config[int]{
				Compare: compare,
				InPlace: true,
				Stable:  f.stable,
				Pivot:   pivot,
			})
			if err != nil {
				return err
			}
			a.logger.Debug("sorted input", zap.Int("count", len(sorted)), zap.Stringer("pivot", pivot))

			return writeInts(cmd.OutOrStdout(), sorted)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.pivot, "pivot", "random", "pivot strategy (random, median3, first, last)")
	flags.BoolVar(&f.stable, "stable", false, "use the stable variant")
	flags.BoolVar(&f.reverse, "reverse", false, "sort in descending order")
	return cmd
}

// readInts parses every whitespace-separated token of r as an int. The
// result is never nil.
func readInts(r io.Reader) ([]int, error) {
	values := []int{}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", sc.Text(), err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return values, nil
}

func writeInts(w io.Writer, values []int) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
