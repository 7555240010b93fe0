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
	"slices"
	"time"

	"github.com/samber/lo"
)

// Stats summarizes repeated timings of one operation.
type Stats struct {
	Runs   int
	Mean   time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Summarize computes Stats over times. The slice is not modified.
func Summarize(times []time.Duration) Stats {
	if len(times) == 0 {
		return Stats{}
	}

	sorted := slices.Sorted(slices.Values(times))
	n := len(sorted)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Stats{
		Runs:   n,
		Mean:   lo.Sum(sorted) / time.Duration(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

// Ratio returns a.Median / b.Median, or 0 when b has no median.
func Ratio(a, b Stats) float64 {
	if b.Median <= 0 {
		return 0
	}
	return float64(a.Median) / float64(b.Median)
}
