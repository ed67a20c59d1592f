package selection

import "errors"

var (
	// ErrBadRange indicates lo/hi do not satisfy 0 ≤ lo ≤ hi ≤ len(data).
	ErrBadRange = errors.New("selection: invalid index range")
	// ErrIndexOutOfRange indicates the target index k is outside [lo, hi).
	ErrIndexOutOfRange = errors.New("selection: target index outside range")
	// ErrNilOrdering indicates a nil ordering capability.
	ErrNilOrdering = errors.New("selection: ordering capability must be non-nil")
)
