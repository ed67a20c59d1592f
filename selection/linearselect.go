package selection

import (
	"github.com/katalvlaran/numring/algebra"
	"github.com/katalvlaran/numring/sorting"
)

// groupSize is the median-of-medians group width. Five is the classic
// choice: it guarantees a 30/70 worst-case split, which is what makes the
// overall recurrence linear.
const groupSize = 5

// smallSelect is the range length below which linearSelect just sorts:
// the median-of-medians machinery costs more than an insertion sort there.
const smallSelect = 24

// LinearSelect is QuickSelect with a worst-case O(n) bound: pivots come
// from the median-of-medians of groups of five, trading a larger constant
// factor for immunity to adversarial input.
func LinearSelect[T any](data []T, k int, ord algebra.Ordering[T]) (T, error) {
	return LinearSelectRange(data, 0, len(data), k, ord)
}

// LinearSelectRange is LinearSelect over data[lo:hi]; k is an absolute
// index and must fall inside [lo, hi).
func LinearSelectRange[T any](data []T, lo, hi, k int, ord algebra.Ordering[T]) (T, error) {
	if err := checkSelect(data, lo, hi, k, ord); err != nil {
		var zero T
		return zero, err
	}
	linearSelect(data, lo, hi, k, ord)
	return data[k], nil
}

func linearSelect[T any](data []T, lo, hi, k int, ord algebra.Ordering[T]) {
	for {
		if hi-lo <= smallSelect {
			// Fully sorting a tiny range satisfies the partition
			// postcondition for every k inside it.
			insertionRange(data, lo, hi, ord)
			return
		}
		p := partition(data, lo, hi, medianOfMedians(data, lo, hi, ord), ord)
		switch {
		case p == k:
			return
		case k < p:
			hi = p
		default:
			lo = p + 1
		}
	}
}

// medianOfMedians gathers the median of every five-element group at the
// front of the range, selects the median of those medians in place and
// returns its index.
func medianOfMedians[T any](data []T, lo, hi int, ord algebra.Ordering[T]) int {
	groups := 0
	for i := lo; i < hi; i += groupSize {
		end := i + groupSize
		if end > hi {
			end = hi
		}
		insertionRange(data, i, end, ord)
		mid := i + (end-i)/2
		data[lo+groups], data[mid] = data[mid], data[lo+groups]
		groups++
	}
	midIdx := lo + (groups-1)/2
	linearSelect(data, lo, lo+groups, midIdx, ord)
	return midIdx
}

// insertionRange sorts data[lo:hi] via the sorting package. Bounds are
// valid by construction here, so the error path is unreachable.
func insertionRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) {
	_ = sorting.InsertionSortRange(data, lo, hi, ord)
}
