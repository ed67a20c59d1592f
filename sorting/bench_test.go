package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numring/number"
	"github.com/katalvlaran/numring/sorting"
)

const benchLen = 4096

func benchData() []int64 {
	rng := rand.New(rand.NewSource(97))
	data := make([]int64, benchLen)
	for i := range data {
		data[i] = rng.Int63()
	}
	return data
}

func BenchmarkQuickSort(b *testing.B) {
	base := benchData()
	buf := make([]int64, benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, base)
		sorting.QuickSort(buf, number.I64)
	}
}

func BenchmarkMergeSort(b *testing.B) {
	base := benchData()
	buf := make([]int64, benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, base)
		sorting.MergeSort(buf, number.I64)
	}
}

func BenchmarkInsertionSortNearlySorted(b *testing.B) {
	base := benchData()
	sorting.QuickSort(base, number.I64)
	base[0], base[benchLen-1] = base[benchLen-1], base[0]
	buf := make([]int64, benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, base)
		sorting.InsertionSort(buf, number.I64)
	}
}
