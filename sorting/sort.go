package sorting

import "github.com/katalvlaran/numring/algebra"

// insertionThreshold is the range length below which both hybrids hand
// off to insertion sort: recursing on tiny partitions wastes call
// overhead and invites degenerate pivots.
const insertionThreshold = 12

// Sort sorts data in place per ord. Alias for QuickSort.
func Sort[T any](data []T, ord algebra.Ordering[T]) {
	QuickSort(data, ord)
}

// SortRange sorts data[lo:hi] in place per ord. Alias for QuickSortRange.
func SortRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) error {
	return QuickSortRange(data, lo, hi, ord)
}

// checkRange validates [lo, hi) against the buffer and the capability.
func checkRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) error {
	if ord == nil {
		return ErrNilOrdering
	}
	if lo < 0 || hi > len(data) || lo > hi {
		return ErrBadRange
	}
	return nil
}
