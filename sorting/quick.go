package sorting

import "github.com/katalvlaran/numring/algebra"

// QuickSort sorts data in place per ord.
// Average O(n log n), worst O(n²), NOT stable. Hybrid: partitions below
// insertionThreshold are finished by insertion sort, and recursion always
// descends into the smaller partition so the stack stays O(log n).
func QuickSort[T any](data []T, ord algebra.Ordering[T]) {
	quickSort(data, 0, len(data), ord)
}

// QuickSortRange sorts data[lo:hi] in place per ord.
func QuickSortRange[T any](data []T, lo, hi int, ord algebra.Ordering[T]) error {
	if err := checkRange(data, lo, hi, ord); err != nil {
		return err
	}
	quickSort(data, lo, hi, ord)
	return nil
}

func quickSort[T any](data []T, lo, hi int, ord algebra.Ordering[T]) {
	for hi-lo > insertionThreshold {
		j := hoarePartition(data, lo, hi, ord)
		if j-lo < hi-j-1 {
			quickSort(data, lo, j+1, ord)
			lo = j + 1
		} else {
			quickSort(data, j+1, hi, ord)
			hi = j + 1
		}
	}
	insertionSort(data, lo, hi, ord)
}

// hoarePartition partitions data[lo:hi] around a median-of-three pivot
// staged at data[lo], returning j such that data[lo:j+1] ≤ pivot ≤
// data[j+1:hi] and both sides are non-empty.
func hoarePartition[T any](data []T, lo, hi int, ord algebra.Ordering[T]) int {
	medianOfThree(data, lo, hi, ord)
	pivot := data[lo]
	i, j := lo-1, hi
	for {
		for {
			i++
			if ord.Compare(data[i], pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if ord.Compare(data[j], pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}

// medianOfThree moves the median of data[lo], data[mid], data[hi-1] into
// data[lo], where hoarePartition expects its pivot.
func medianOfThree[T any](data []T, lo, hi int, ord algebra.Ordering[T]) {
	mid := lo + (hi-lo)/2
	last := hi - 1
	if ord.Compare(data[mid], data[lo]) < 0 {
		data[mid], data[lo] = data[lo], data[mid]
	}
	if ord.Compare(data[last], data[lo]) < 0 {
		data[last], data[lo] = data[lo], data[last]
	}
	if ord.Compare(data[last], data[mid]) < 0 {
		data[last], data[mid] = data[mid], data[last]
	}
	// lo ≤ mid ≤ last now holds; stage the median as the pivot.
	data[lo], data[mid] = data[mid], data[lo]
}
