package sorting

import "errors"

var (
	// ErrBadRange indicates lo/hi do not satisfy 0 ≤ lo ≤ hi ≤ len(data).
	ErrBadRange = errors.New("sorting: invalid index range")
	// ErrNilOrdering indicates a nil ordering capability.
	ErrNilOrdering = errors.New("sorting: ordering capability must be non-nil")
)
