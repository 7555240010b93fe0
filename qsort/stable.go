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

import "cmp"

// indexed pairs a value with its position in the caller's input. It lives
// only for the duration of a stable sort.
type indexed[T any] struct {
	v T
	i int
}

// stableCompare orders pairs by value and breaks ties by original index,
// which makes every equal-key run come out in input order whatever the
// partitioning did to it.
func stableCompare[T any](compare Comparator[T]) func(a, b indexed[T]) int {
	return func(a, b indexed[T]) int {
		if c := compare(a.v, b.v); c != 0 {
			return c
		}
		return cmp.Compare(a.i, b.i)
	}
}

// sortStable sorts data through index-tagged pairs and writes the values
// into either data itself (InPlace) or a new slice.
func sortStable[T any](data []T, cfg Config[T]) []T {
	pairs := make([]indexed[T], len(data))
	for i, v := range data {
		pairs[i] = indexed[T]{v: v, i: i}
	}

	newSorter(stableCompare(cfg.Compare), cfg.Pivot, cfg.Rand).sort(pairs)

	out := data
	if !cfg.InPlace {
		out = make([]T, len(data))
	}
	for i, p := range pairs {
		out[i] = p.v
	}
	return out
}
