package number

import "math"

// FloatMachine is the type set served by the Float instance.
type FloatMachine interface {
	~float32 | ~float64
}

// Float is the Field instance over native IEEE-754 floats. It additionally
// provides Trunc and Sqrt, which makes a Float instance a valid scalar for
// cplx.Complex.
//
// Quot/Mod semantics: mod = a mod b (IEEE remainder with the sign of a),
// quot = (a - mod) / b, so a == quot·b + mod holds up to rounding.
type Float[T FloatMachine] struct{}

// Canonical Float instances.
var (
	F32 = Float[float32]{}
	F64 = Float[float64]{}
)

func (Float[T]) Combine(a, b T) T { return a + b }

func (Float[T]) Zero() T { return 0 }

func (Float[T]) Negate(a T) T { return -a }

func (Float[T]) One() T { return 1 }

func (Float[T]) Mul(a, b T) T { return a * b }

func (Float[T]) FromInt(n int64) T { return T(n) }

func (Float[T]) Eq(a, b T) bool { return a == b }

// Compare returns -1/0/+1 per the natural order. NaN compares equal to
// everything it is neither less than nor greater than; callers sorting
// NaN-bearing data get what IEEE comparisons give them.
func (Float[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Mod returns a mod b with the sign of a (math.Mod semantics).
func (f Float[T]) Mod(a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

// Quot returns (a - a mod b) / b, the integral quotient matching Mod.
func (f Float[T]) Quot(a, b T) T {
	return (a - f.Mod(a, b)) / b
}

func (Float[T]) Inv(a T) T { return 1 / a }

func (Float[T]) Div(a, b T) T { return a / b }

// Trunc rounds toward zero.
func (Float[T]) Trunc(a T) T { return T(math.Trunc(float64(a))) }

// Sqrt returns the square root; negative inputs yield NaN.
func (Float[T]) Sqrt(a T) T { return T(math.Sqrt(float64(a))) }

// GCD overrides the default Euclid with the approximate-domain policy:
// operands are replaced by their absolute values each iteration, and the
// checks run in exactly this order — |a| < 1 returns One, b == 0 returns
// a, |b| < 1 returns One — before iterating on (b, a mod b).
//
// Beneath 1.0 there is no meaningful common factor at this precision, so
// the algorithm intentionally degrades to the multiplicative identity.
// This is a designed approximation; the check order determines which of
// the degenerate results callers observe and must not be reordered.
//
// NaN and ±Inf carry no common factor either and would defeat every
// cutoff check (a NaN remainder compares false against all of them), so
// non-finite operands degrade to One up front. Finite operands keep the
// remainder chain finite, so the guard never fires mid-chain.
func (f Float[T]) GCD(a, b T) T {
	if !isFinite(a) || !isFinite(b) {
		return 1
	}
	for {
		a, b = absFloat(a), absFloat(b)
		if a < 1 {
			return 1
		}
		if b == 0 {
			return a
		}
		if b < 1 {
			return 1
		}
		a, b = b, f.Mod(a, b)
	}
}

func absFloat[T FloatMachine](v T) T {
	return T(math.Abs(float64(v)))
}

func isFinite[T FloatMachine](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
