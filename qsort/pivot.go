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

package qsort

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// PivotStrategy selects how the pivot of each range is chosen.
type PivotStrategy int

const (
	// PivotRandom picks a uniformly random index in the range. It is the
	// zero value and therefore the default.
	PivotRandom PivotStrategy = iota

	// PivotMedian3 picks the median of the first, middle and last elements.
	PivotMedian3

	// PivotFirst always picks the first element of the range.
	PivotFirst

	// PivotLast always picks the last element of the range.
	PivotLast
)

// PivotStrategies lists every supported strategy in declaration order.
func PivotStrategies() []PivotStrategy {
	return []PivotStrategy{PivotRandom, PivotMedian3, PivotFirst, PivotLast}
}

// String returns the name used by ParsePivotStrategy.
func (p PivotStrategy) String() string {
	switch p {
	case PivotRandom:
		return "random"
	case PivotMedian3:
		return "median3"
	case PivotFirst:
		return "first"
	case PivotLast:
		return "last"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

func (p PivotStrategy) valid() bool {
	return p >= PivotRandom && p <= PivotLast
}

// ParsePivotStrategy converts a strategy name ("random", "median3", "first"
// or "last", case-insensitive) to a PivotStrategy. An empty name selects
// PivotRandom.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "":
		return PivotRandom, nil
	case "median3":
		return PivotMedian3, nil
	case "first":
		return PivotFirst, nil
	case "last":
		return PivotLast, nil
	}
	return 0, fmt.Errorf("%w: unknown pivot strategy %q", ErrInvalidArgument, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p PivotStrategy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: unknown pivot strategy %d", ErrInvalidArgument, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PivotStrategy) UnmarshalText(text []byte) error {
	v, err := ParsePivotStrategy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// choosePivotIndex returns the index in [lo, hi] whose value partitions the
// range.
func (s *sorter[E]) choosePivotIndex(a []E, lo, hi int) int {
	switch s.pivot {
	case PivotFirst:
		return lo
	case PivotLast:
		return hi
	case PivotMedian3:
		return medianOf3(a, lo, hi, s.cmp)
	}
	if s.rng != nil {
		return lo + s.rng.IntN(hi-lo+1)
	}
	return lo + rand.IntN(hi-lo+1)
}

// medianOf3 returns whichever of lo, mid and hi holds the median of the
// three values, using at most three comparisons. When the median value
// appears at mid and at another position, mid wins.
func medianOf3[E any](a []E, lo, hi int, compare func(a, b E) int) int {
	mid := lo + (hi-lo)/2
	x, y, z := a[lo], a[mid], a[hi]

	xy := compare(x, y)
	if xy <= 0 {
		if compare(y, z) <= 0 {
			return mid // x <= y <= z
		}
		if xy == 0 {
			return mid // x == y > z
		}
		if compare(x, z) <= 0 {
			return hi // x <= z < y
		}
		return lo // z < x < y
	}

	if compare(x, z) <= 0 {
		return lo // y < x <= z
	}
	if compare(y, z) < 0 {
		return hi // y < z < x
	}
	return mid // z <= y < x
}
