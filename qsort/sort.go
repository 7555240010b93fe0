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
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// Comparator returns a negative number when a sorts before b, a positive
// number when it sorts after, and zero when they are equal. It must be a
// consistent total order for the duration of a sort.
type Comparator[T any] func(a, b T) int

// Config controls a single sort. The zero value sorts a copy with random
// pivots and no stability guarantee.
type Config[T any] struct {
	// Compare orders elements. Sort and SortSeq fall back to cmp.Compare
	// when it is nil; SortFunc and SortSeqFunc require it.
	Compare Comparator[T]

	// InPlace sorts the caller's slice and returns it instead of a copy.
	InPlace bool

	// Stable keeps elements that compare equal in their input order.
	Stable bool

	// Pivot selects the pivot strategy.
	Pivot PivotStrategy

	// Rand is the source for PivotRandom. Nil uses the math/rand/v2
	// global source.
	Rand *rand.Rand
}

// Sort sorts data in ascending order, using cmp.Compare when cfg.Compare
// is nil.
//
// Without cfg.InPlace data is left untouched and a newly allocated slice is
// returned. With it, data is sorted and returned.
func Sort[T cmp.Ordered](data []T, cfg Config[T]) ([]T, error) {
	if cfg.Compare == nil {
		cfg.Compare = cmp.Compare[T]
	}
	return sortSlice(data, cfg)
}

// SortFunc sorts data by cfg.Compare, which must not be nil. See Sort for
// the InPlace contract.
func SortFunc[T any](data []T, cfg Config[T]) ([]T, error) {
	if cfg.Compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	return sortSlice(data, cfg)
}

// SortFuncErr is SortFunc for comparators that can fail. cfg.Compare is
// ignored.
//
// The first error returned by compare stops the sort and is returned
// as-is. If cfg.InPlace is set and cfg.Stable is not, data may be left
// partially sorted, but it always remains a permutation of its original
// elements.
func SortFuncErr[T any](data []T, compare func(a, b T) (int, error), cfg Config[T]) (out []T, err error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	cfg.Compare = func(a, b T) int {
		c, err := compare(a, b)
		if err != nil {
			panic(compareFailure{err: err})
		}
		return c
	}

	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(compareFailure)
			if !ok {
				panic(r)
			}
			out, err = nil, f.err
		}
	}()
	return sortSlice(data, cfg)
}

// SortSeq collects seq into a new slice and sorts it. The result never
// aliases storage owned by the caller, so cfg.InPlace has no visible
// effect.
func SortSeq[T cmp.Ordered](seq iter.Seq[T], cfg Config[T]) ([]T, error) {
	if cfg.Compare == nil {
		cfg.Compare = cmp.Compare[T]
	}
	return SortSeqFunc(seq, cfg)
}

// SortSeqFunc is SortSeq with a required comparator.
func SortSeqFunc[T any](seq iter.Seq[T], cfg Config[T]) ([]T, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidArgument)
	}
	if cfg.Compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	data := slices.AppendSeq(make([]T, 0), seq)
	cfg.InPlace = true
	return sortSlice(data, cfg)
}

// sortSlice validates, picks the working buffer and runs the sorter.
// cfg.Compare is non-nil here.
func sortSlice[T any](data []T, cfg Config[T]) ([]T, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidArgument)
	}
	if !cfg.Pivot.valid() {
		return nil, fmt.Errorf("%w: unknown pivot strategy %d", ErrInvalidArgument, int(cfg.Pivot))
	}

	if cfg.Stable {
		return sortStable(data, cfg), nil
	}

	work := data
	if !cfg.InPlace {
		work = make([]T, len(data))
		copy(work, data)
	}
	newSorter(cfg.Compare, cfg.Pivot, cfg.Rand).sort(work)
	return work, nil
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Compare[T])
}

// IsSortedFunc reports whether data is in ascending order by compare.
func IsSortedFunc[T any](data []T, compare Comparator[T]) bool {
	for i := 1; i < len(data); i++ {
		if compare(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}

// NthElement rearranges data such that the element at index k is the
// element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
// Out-of-range k leaves data unchanged.
func NthElement[T cmp.Ordered](data []T, k int) {
	NthElementFunc(data, k, cmp.Compare[T])
}

// NthElementFunc is NthElement ordered by compare.
func NthElementFunc[T any](data []T, k int, compare Comparator[T]) {
	if k < 0 || k >= len(data) || compare == nil {
		return
	}
	newSorter(compare, PivotRandom, nil).selectNth(data, k)
}
