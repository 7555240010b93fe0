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

import "math/bits"

// span is an inclusive [lo, hi] range of the working buffer still to be
// sorted.
type span struct {
	lo, hi int
}

func (s span) len() int {
	return s.hi - s.lo + 1
}

// rangeStack is the explicit work list that replaces recursion.
//
// Callers push the larger partition first and the smaller one last, so the
// entry below any range is at least twice its size. That caps the depth at
// floor(log2(n)) + 1 entries.
type rangeStack struct {
	spans []span
}

func newRangeStack(n int) *rangeStack {
	return &rangeStack{spans: make([]span, 0, bits.Len(uint(n))+1)}
}

// push adds [lo, hi] unless it holds fewer than two elements.
func (s *rangeStack) push(lo, hi int) {
	if lo >= hi {
		return
	}
	s.spans = append(s.spans, span{lo, hi})
}

func (s *rangeStack) pop() span {
	last := len(s.spans) - 1
	r := s.spans[last]
	s.spans = s.spans[:last]
	return r
}

func (s *rangeStack) empty() bool {
	return len(s.spans) == 0
}

// depth reports the number of pending ranges.
func (s *rangeStack) depth() int {
	return len(s.spans)
}
