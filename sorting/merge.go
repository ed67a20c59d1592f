package sorting

import "github.com/katalvlaran/numring/algebra"

// MergeSort sorts data in place per ord.
// Stable; O(n log n) guaranteed, one temporary buffer of the range size.
func MergeSort[T any](data []T, ord algebra.Ordering[T]) {
	if len(data) < 2 {
		return
	}
	mergeSort(data, 0, len(data), make([]T, len(data)), ord)
}

// MergeSortRange sorts data[lo:hi] in place per ord.
func MergeSortRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) error {
	if err := checkRange(data, lo, hi, ord); err != nil {
		return err
	}
	if hi-lo < 2 {
		return nil
	}
	mergeSort(data, lo, hi, make([]T, hi-lo), ord)
	return nil
}

func mergeSort[T any](data []T, lo, hi int, buf []T, ord algebra.Ordering[T]) {
	if hi-lo <= insertionThreshold {
		insertionSort(data, lo, hi, ord)
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(data, lo, mid, buf, ord)
	mergeSort(data, mid, hi, buf, ord)
	if ord.Compare(data[mid-1], data[mid]) <= 0 {
		// Halves already ordered end to end.
		return
	}
	merge(data, lo, mid, hi, buf, ord)
}

// merge combines the sorted runs data[lo:mid] and data[mid:hi]. The left
// run is staged in buf and wins ties, which preserves the relative order
// of equal elements.
func merge[T any](data []T, lo, mid, hi int, buf []T, ord algebra.Ordering[T]) {
	left := buf[:mid-lo]
	copy(left, data[lo:mid])

	i, j, k := 0, mid, lo
	for i < len(left) && j < hi {
		if ord.Compare(left[i], data[j]) <= 0 {
			data[k] = left[i]
			i++
		} else {
			data[k] = data[j]
			j++
		}
		k++
	}
	for i < len(left) {
		data[k] = left[i]
		i++
		k++
	}
	// Any tail of the right run is already in place.
}
