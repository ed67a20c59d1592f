package number

// SignedMachine is the type set served by the Int instance. The interface
// is defined here rather than imported: the corpus of numeric Go keeps
// constraints next to the instances that consume them.
type SignedMachine interface {
	~int32 | ~int64 | ~int
}

// Int is the EuclideanRing instance over native signed integers.
// Quot/Mod are Go's native truncated division and remainder, which satisfy
// a == quot·b + mod for every b != 0. The zero-sized struct exists purely
// to carry the behavior table; use the canonical instances below.
type Int[T SignedMachine] struct{}

// Canonical Int instances, one per supported width.
var (
	I32 = Int[int32]{}
	I64 = Int[int64]{}
	I   = Int[int]{}
)

func (Int[T]) Combine(a, b T) T { return a + b }

func (Int[T]) Zero() T { return 0 }

func (Int[T]) Negate(a T) T { return -a }

func (Int[T]) One() T { return 1 }

func (Int[T]) Mul(a, b T) T { return a * b }

func (Int[T]) FromInt(n int64) T { return T(n) }

func (Int[T]) Eq(a, b T) bool { return a == b }

// Compare returns -1/0/+1 per the natural integer order.
func (Int[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Quot is truncated division. Panics on b == 0 (the hardware's behavior).
func (Int[T]) Quot(a, b T) T { return a / b }

// Mod is the truncated-division remainder; its sign follows a.
func (Int[T]) Mod(a, b T) T { return a % b }

// GCD overrides the default Euclid to run on uint64 magnitudes, casting
// the result back at the end. The remainder magnitude strictly decreases,
// so the loop always terminates, and no intermediate negation of MinInt
// can overflow. The result is non-negative for every input pair except
// gcd(MinInt, 0), whose true magnitude exceeds the signed range.
func (Int[T]) GCD(a, b T) T {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return T(x)
}

// magnitude returns |v| as uint64, exact even for MinInt64 thanks to
// two's-complement wraparound.
func magnitude[T SignedMachine](v T) uint64 {
	x := int64(v)
	if x < 0 {
		return 0 - uint64(x)
	}
	return uint64(x)
}
