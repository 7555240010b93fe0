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

// Package bench measures and verifies the qsort package against the
// standard library.
//
// Runner.Run times qsort.Sort and slices.Sort over generated inputs after
// first checking that both agree. Runner.Verify runs randomized property
// trials (permutation, order, stability, InPlace identity, non-mutation,
// idempotence) across every pivot strategy on a worker pool.
package bench

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Distribution names an input shape.
type Distribution string

const (
	Random     Distribution = "random"
	Sorted     Distribution = "sorted"
	Reverse    Distribution = "reverse"
	Duplicates Distribution = "duplicates"
	Sawtooth   Distribution = "sawtooth"
	AllEqual   Distribution = "allequal"
)

const (
	// valueRange bounds random values to [-valueRange/2, valueRange/2).
	valueRange = 1_000_000

	// duplicateKeys is the number of distinct values in Duplicates.
	duplicateKeys = 5

	// sawtoothPeriod is the length of each ascending run in Sawtooth.
	sawtoothPeriod = 64
)

// Distributions returns every supported distribution.
func Distributions() []Distribution {
	return []Distribution{Random, Sorted, Reverse, Duplicates, Sawtooth, AllEqual}
}

// ParseDistribution resolves a distribution name, case-insensitive.
func ParseDistribution(name string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Distributions(), d) {
		return "", fmt.Errorf("unknown distribution %q", name)
	}
	return d, nil
}

// Generate returns n values shaped by d, drawn from r.
func Generate(d Distribution, n int, r *rand.Rand) []int {
	data := make([]int, n)
	switch d {
	case Sorted, Reverse:
		fillRandom(data, r)
		slices.Sort(data)
		if d == Reverse {
			slices.Reverse(data)
		}
	case Duplicates:
		for i := range data {
			data[i] = i % duplicateKeys
		}
		r.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })
	case Sawtooth:
		for i := range data {
			data[i] = i % sawtoothPeriod
		}
	case AllEqual:
		for i := range data {
			data[i] = 7
		}
	default:
		fillRandom(data, r)
	}
	return data
}

func fillRandom(data []int, r *rand.Rand) {
	for i := range data {
		data[i] = r.IntN(valueRange) - valueRange/2
	}
}
