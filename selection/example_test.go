package selection_test

import (
	"fmt"

	"github.com/katalvlaran/numring/number"
	"github.com/katalvlaran/numring/selection"
)

// ExampleSelect finds the median without fully sorting the slice.
func ExampleSelect() {
	data := []int64{9, 1, 7, 3, 5}
	median, _ := selection.Select(data, len(data)/2, number.I64)
	fmt.Println(median)
	// Output:
	// 5
}

// ExampleLinearSelect does the same with a worst-case O(n) guarantee.
func ExampleLinearSelect() {
	data := []int64{8, 6, 7, 5, 3, 0, 9}
	smallest, _ := selection.LinearSelect(data, 0, number.I64)
	fmt.Println(smallest)
	// Output:
	// 0
}
