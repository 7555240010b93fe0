// Package qsort provides a configurable comparison quicksort.
//
// The sorter is an iterative quicksort that combines:
//   - Three-way (Dutch national flag) partitioning, so runs of equal keys are
//     settled in a single pass
//   - Random, median-of-three, first or last pivot selection
//   - Insertion sort for small ranges
//   - An explicit work list of pending ranges instead of recursion
//
// The work list always pops the smaller partition first, which keeps it at
// O(log n) entries no matter how unbalanced the partitions get.
//
// # Configuration
//
// Every call takes a Config value:
//   - Compare: ordering function; optional for cmp.Ordered types
//   - InPlace: sort the caller's slice and return it
//   - Stable: keep equal elements in their original relative order
//   - Pivot: PivotRandom (default), PivotMedian3, PivotFirst or PivotLast
//
// Without InPlace the input slice is never modified and the result never
// shares its backing array.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/qsort"
//
//	func ByAge(people []Person) ([]Person, error) {
//	    return qsort.SortFunc(people, qsort.Config[Person]{
//	        Compare: func(a, b Person) int { return a.Age - b.Age },
//	        Stable:  true,
//	    })
//	}
//
// # Errors
//
// A nil slice, a nil iterator, a missing comparator or an unknown pivot
// strategy fail with ErrInvalidArgument before anything is allocated.
// Comparators that can fail go through SortFuncErr, which returns the
// comparator's error unchanged. Panics raised by a comparator are never
// recovered.
//
// # Concurrency
//
// Sorting is single-threaded and holds no locks. Callers must not touch
// an InPlace slice from other goroutines while it is being sorted.
package qsort
