// Package sorting provides comparison sorts over an ordering capability
// and a caller-owned random-access buffer, mutated in place.
//
// What:
//
//   - InsertionSort — stable, in place, O(n²) worst case. Used directly
//     for small inputs and as the base case of both hybrids.
//   - QuickSort — hybrid quicksort: median-of-three pivot, Hoare
//     partition, recursion always on the smaller side (O(log n) stack),
//     insertion sort below the length threshold. Average O(n log n),
//     worst O(n²), NOT stable.
//   - MergeSort — guaranteed O(n log n), stable, allocates one temporary
//     buffer sized to the range being sorted; insertion sort below the
//     same threshold.
//   - Sort — alias for QuickSort, the default choice.
//
// Each algorithm also has a …Range variant operating on [lo, hi).
//
// Ownership & concurrency:
//
//   - The buffer stays caller-owned: nothing here retains or aliases it
//     after returning. Concurrent calls on disjoint buffers are
//     independent; unsynchronized concurrent access to one buffer is a
//     caller error, not detected here.
//
// Errors:
//
//   - ErrBadRange    — lo/hi do not describe a subrange of the buffer.
//   - ErrNilOrdering — no ordering capability supplied.
//
// Whole-slice variants take the always-valid full range and return
// nothing; only the …Range variants validate and report.
package sorting
