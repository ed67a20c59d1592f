package algebra

// This file is the operator layer over EuclideanRing: thin call sites that
// forward to the instance, plus the default implementations an instance may
// call or bypass (see GCDer and QuotModer).

// Quot forwards to the instance's truncated/floor division.
func Quot[T any](r EuclideanRing[T], a, b T) T {
	return r.Quot(a, b)
}

// Mod forwards to the instance's remainder.
func Mod[T any](r EuclideanRing[T], a, b T) T {
	return r.Mod(a, b)
}

// QuotMod returns the (quotient, remainder) pair. Instances implementing
// QuotModer compute both in one pass; everyone else pays for two calls.
func QuotMod[T any](r EuclideanRing[T], a, b T) (T, T) {
	if qm, ok := r.(QuotModer[T]); ok {
		return qm.QuotMod(a, b)
	}
	return r.Quot(a, b), r.Mod(a, b)
}

// GCD returns the greatest common divisor of a and b under the instance's
// own policy: a GCDer override when present, the Euclid default otherwise.
//
// GCD(Zero, Zero) is Zero in exact domains; feeding that result into a
// division inherits the domain's zero-division behavior.
func GCD[T any](r EuclideanRing[T], a, b T) T {
	if g, ok := r.(GCDer[T]); ok {
		return g.GCD(a, b)
	}
	return Euclid(r, a, b)
}

// Euclid is the generalized Euclidean algorithm:
//
//	euclid(a, b) = if b == zero then a else euclid(b, mod(a, b))
//
// valid whenever equality-to-zero is decidable and Mod strictly shrinks its
// first argument toward zero. Implemented as a loop on purpose: exact
// integer and rational inputs can produce very long remainder chains, and
// the loop keeps stack usage constant no matter the chain length.
//
// Complexity: O(chain length) time, O(1) space.
func Euclid[T any](r EuclideanRing[T], a, b T) T {
	zero := r.Zero()
	for !r.Eq(b, zero) {
		a, b = b, r.Mod(a, b)
	}
	return a
}

// LCM returns the least common multiple, always derived and never
// overridden:
//
//	lcm(a, b) = quot(a, gcd(a, b)) * b
//
// When gcd(a, b) is Zero (both inputs Zero), the division inherits the
// domain's own zero-division behavior, unguarded.
func LCM[T any](r EuclideanRing[T], a, b T) T {
	return r.Mul(r.Quot(a, GCD(r, a, b)), b)
}
