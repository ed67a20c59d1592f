package sorting

import "github.com/katalvlaran/numring/algebra"

// InsertionSort sorts data in place per ord.
// Stable; O(n²) worst case, O(n) on nearly sorted input, O(1) space.
func InsertionSort[T any](data []T, ord algebra.Ordering[T]) {
	insertionSort(data, 0, len(data), ord)
}

// InsertionSortRange sorts data[lo:hi] in place per ord.
func InsertionSortRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) error {
	if err := checkRange(data, lo, hi, ord); err != nil {
		return err
	}
	insertionSort(data, lo, hi, ord)
	return nil
}

// insertionSort shifts strictly-greater elements right, so equal elements
// keep their relative order (stability).
func insertionSort[T any](data []T, lo, hi int, ord algebra.Ordering[T]) {
	for i := lo + 1; i < hi; i++ {
		key := data[i]
		j := i - 1
		for j >= lo && ord.Compare(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
