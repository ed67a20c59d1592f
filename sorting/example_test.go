package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/numring/number"
	"github.com/katalvlaran/numring/sorting"
)

// ExampleSort sorts a slice through an ordering capability instead of a
// comparison closure.
func ExampleSort() {
	data := []int64{5, 3, 3, 1, 4}
	sorting.Sort(data, number.I64)
	fmt.Println(data)
	// Output:
	// [1 3 3 4 5]
}

// ExampleMergeSortRange sorts only a window of the slice.
func ExampleMergeSortRange() {
	data := []int64{9, 4, 2, 8, 6, 0}
	_ = sorting.MergeSortRange(data, 1, 5, number.I64)
	fmt.Println(data)
	// Output:
	// [9 2 4 6 8 0]
}
