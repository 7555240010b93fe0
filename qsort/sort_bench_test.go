package qsort

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	r := rand.New(rand.NewPCG(uint64(n), 1))
	return randomInts(r, n, 1000000)
}

func generateDuplicates(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i % 5
	}
	rand.New(rand.NewPCG(uint64(n), 2)).Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })
	return data
}

var benchSizes = []int{100, 1000, 10000, 100000}

func BenchmarkSort(b *testing.B) {
	for _, p := range PivotStrategies() {
		if p == PivotFirst || p == PivotLast {
			continue
		}
		for _, n := range benchSizes {
			b.Run(p.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				benchmarkSort(b, generateInts(n), Config[int]{Pivot: p, InPlace: true})
			})
		}
	}
}

func BenchmarkSortStable(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			benchmarkSort(b, generateInts(n), Config[int]{Stable: true, InPlace: true})
		})
	}
}

func BenchmarkSortDuplicates(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			benchmarkSort(b, generateDuplicates(n), Config[int]{InPlace: true})
		})
	}
}

func benchmarkSort(b *testing.B, ref []int, cfg Config[int]) {
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if _, err := Sort(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// Stdlib comparison benchmarks
func BenchmarkStdlibSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			ref := generateInts(n)
			data := make([]int, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				slices.Sort(data)
			}
		})
	}
}

func BenchmarkNthElement(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			ref := generateInts(n)
			data := make([]int, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				NthElement(data, n/2)
			}
		})
	}
}
