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

import "math/rand/v2"

// insertionThreshold: ranges with hi-lo at or below this are finished by
// insertion sort.
const insertionThreshold = 16

// sorter holds the state of one sort invocation.
type sorter[E any] struct {
	cmp   func(a, b E) int
	pivot PivotStrategy
	rng   *rand.Rand

	// maxDepth is the deepest the work list got during the last sort.
	maxDepth int
}

func newSorter[E any](compare func(a, b E) int, pivot PivotStrategy, rng *rand.Rand) *sorter[E] {
	return &sorter[E]{cmp: compare, pivot: pivot, rng: rng}
}

// sort sorts a in place.
func (s *sorter[E]) sort(a []E) {
	n := len(a)
	if n <= 1 {
		return
	}

	work := newRangeStack(n)
	work.push(0, n-1)
	s.maxDepth = work.depth()

	for !work.empty() {
		r := work.pop()

		if r.hi-r.lo <= insertionThreshold {
			insertionSort(a, r.lo, r.hi, s.cmp)
			continue
		}

		p := s.choosePivotIndex(a, r.lo, r.hi)
		lt, gt := partition3Way(a, r.lo, r.hi, p, s.cmp)

		// a[lt..gt] is final. Push the larger side first so the smaller one
		// is processed next.
		left, right := span{r.lo, lt - 1}, span{gt + 1, r.hi}
		if left.len() < right.len() {
			left, right = right, left
		}
		work.push(left.lo, left.hi)
		work.push(right.lo, right.hi)
		s.maxDepth = max(s.maxDepth, work.depth())
	}
}

// selectNth rearranges a so that a[k] holds the value it would hold if a
// were sorted, with nothing greater before it and nothing smaller after.
func (s *sorter[E]) selectNth(a []E, k int) {
	lo, hi := 0, len(a)-1
	for hi-lo > insertionThreshold {
		p := s.choosePivotIndex(a, lo, hi)
		lt, gt := partition3Way(a, lo, hi, p, s.cmp)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			// k landed in the pivot run.
			return
		}
	}
	insertionSort(a, lo, hi, s.cmp)
}
