// Package selection extracts order statistics from a caller-owned buffer
// without fully sorting it.
//
// What:
//
//   - QuickSelect — iterative partition loop with deterministic seeded
//     pivot randomization. Average O(n); adversarial input can still cost
//     O(n²). NOT stable.
//   - LinearSelect — median-of-medians (groups of five) pivoting.
//     Guaranteed worst-case O(n) at a larger constant factor.
//   - Select — alias for QuickSelect, the default choice.
//
// Each also has a …Range variant operating on [lo, hi).
//
// Postcondition (the k-th order-statistic guarantee): the element that
// would occupy position k in sorted order ends up at position k; every
// element at an index < k compares ≤ it and every element at an index
// > k compares ≥ it. The rest of the buffer is otherwise unordered.
//
// Ownership & concurrency: identical to package sorting — the buffer is
// mutated in place, never retained, and unsynchronized concurrent access
// is a caller error.
//
// Errors:
//
//   - ErrBadRange        — lo/hi do not describe a subrange of the buffer.
//   - ErrIndexOutOfRange — k falls outside [lo, hi).
//   - ErrNilOrdering     — no ordering capability supplied.
package selection
