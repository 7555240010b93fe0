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

import "errors"

// ErrInvalidArgument is returned when the input or configuration cannot be
// sorted: nil data, a nil comparator where one is required, or an unknown
// pivot strategy.
var ErrInvalidArgument = errors.New("qsort: invalid argument")

// compareFailure carries an error raised by a fallible comparator up to
// SortFuncErr, which recovers it and hands the error back to the caller.
type compareFailure struct {
	err error
}
