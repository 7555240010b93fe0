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

// partition3Way rearranges a[lo..hi] around the value at index p and
// returns (lt, gt) such that:
//   - a[lo:lt] < pivot
//   - a[lt:gt+1] == pivot
//   - a[gt+1:hi+1] > pivot
//
// The pivot value is copied before the scan, so the pivot element may move
// freely. Elements only ever change place through whole-element swaps.
func partition3Way[E any](a []E, lo, hi, p int, compare func(a, b E) int) (int, int) {
	pivot := a[p]
	lt, gt := lo, hi
	i := lo

	for i <= gt {
		c := compare(a[i], pivot)
		if c < 0 {
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		} else if c > 0 {
			a[i], a[gt] = a[gt], a[i]
			gt--
		} else {
			i++
		}
	}

	return lt, gt
}

// insertionSort sorts a[lo..hi] in place.
//
// An element moves left only past neighbours that compare strictly greater,
// so equal elements keep their relative order. Moves are adjacent swaps,
// which leaves a permutation behind even if compare panics midway.
func insertionSort[E any](a []E, lo, hi int, compare func(a, b E) int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && compare(a[j-1], a[j]) > 0; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
