package selection

import "github.com/katalvlaran/numring/algebra"

// Select places the k-th smallest element of data at index k and returns
// it. Alias for QuickSelect.
func Select[T any](data []T, k int, ord algebra.Ordering[T]) (T, error) {
	return QuickSelect(data, k, ord)
}

// SelectRange is the index-range alias for QuickSelectRange.
func SelectRange[T any](data []T, lo, hi, k int, ord algebra.Ordering[T]) (T, error) {
	return QuickSelectRange(data, lo, hi, k, ord)
}

// QuickSelect partitions data so that data[k] holds its sorted-order
// element, everything left of k compares ≤ it and everything right of k
// compares ≥ it. Average O(n) with randomized pivots; adversarial input
// can degrade to O(n²).
func QuickSelect[T any](data []T, k int, ord algebra.Ordering[T]) (T, error) {
	return QuickSelectRange(data, 0, len(data), k, ord)
}

// QuickSelectRange is QuickSelect over data[lo:hi]; k is an absolute
// index and must fall inside [lo, hi).
func QuickSelectRange[T any](data []T, lo, hi, k int, ord algebra.Ordering[T]) (T, error) {
	if err := checkSelect(data, lo, hi, k, ord); err != nil {
		var zero T
		return zero, err
	}
	rng := pivotRNG(hi - lo)
	for hi-lo > 1 {
		p := partition(data, lo, hi, lo+rng.Intn(hi-lo), ord)
		switch {
		case p == k:
			return data[k], nil
		case k < p:
			hi = p
		default:
			lo = p + 1
		}
	}
	return data[k], nil
}

// checkSelect validates the range, the target index and the capability.
func checkSelect[T any](data []T, lo, hi, k int, ord algebra.Ordering[T]) error {
	if ord == nil {
		return ErrNilOrdering
	}
	if lo < 0 || hi > len(data) || lo > hi {
		return ErrBadRange
	}
	if k < lo || k >= hi {
		return ErrIndexOutOfRange
	}
	return nil
}

// partition is a Lomuto partition of data[lo:hi] around data[pivotIdx]:
// the pivot lands at the returned index p with data[lo:p] strictly less
// and data[p+1:hi] greater-or-equal.
func partition[T any](data []T, lo, hi, pivotIdx int, ord algebra.Ordering[T]) int {
	last := hi - 1
	data[pivotIdx], data[last] = data[last], data[pivotIdx]
	pivot := data[last]

	i := lo
	for j := lo; j < last; j++ {
		if ord.Compare(data[j], pivot) < 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	return i
}
