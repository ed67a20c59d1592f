package algebra

// Eq is the decidable-equality capability. The default Euclid loop needs
// it to test remainders against the additive identity.
type Eq[T any] interface {
	// Eq reports whether a and b denote the same element.
	Eq(a, b T) bool
}

// Ordering is the comparison capability consumed by the sorting and
// selection packages, and by magnitude-based gcd policies.
type Ordering[T any] interface {
	// Compare returns -1 if a < b, 0 if a == b, +1 if a > b.
	Compare(a, b T) int
}

// Semigroup provides an associative binary combine:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Semigroup[T any] interface {
	Combine(a, b T) T
}

// Monoid adds the identity element of Combine:
//
//	Combine(Zero(), a) == a == Combine(a, Zero())
type Monoid[T any] interface {
	Semigroup[T]

	Zero() T
}

// Group adds the additive inverse:
//
//	Combine(a, Negate(a)) == Zero()
type Group[T any] interface {
	Monoid[T]

	Negate(a T) T
}

// Ring is an additive group with an associative, zero-annihilating
// multiplication carrying its own identity One, connected to Combine by
// distributivity. FromInt injects an integer literal into T.
type Ring[T any] interface {
	Group[T]
	Eq[T]

	One() T
	Mul(a, b T) T
	FromInt(n int64) T
}

// EuclideanRing adds quotient/remainder division. Whenever b is not the
// additive identity the instance must satisfy, exactly or within the
// representation's documented tolerance:
//
//	a == Combine(Mul(Quot(a, b), b), Mod(a, b))
type EuclideanRing[T any] interface {
	Ring[T]

	Quot(a, b T) T
	Mod(a, b T) T
}

// Field adds a multiplicative inverse for every non-zero element.
// Div is total division (not floor/truncated): Div(a, b) == Mul(a, Inv(b)).
type Field[T any] interface {
	EuclideanRing[T]

	Inv(a T) T
	Div(a, b T) T
}

// QuotModer is the optional combined quotient/remainder override.
// Implement it only when one computation is cheaper than two; the
// QuotMod free function falls back to the (Quot, Mod) pair otherwise.
type QuotModer[T any] interface {
	QuotMod(a, b T) (q, r T)
}

// GCDer is the optional gcd override. Instances implement it to supply a
// bespoke termination policy (overflow-safe magnitudes for machine ints,
// the below-one cutoff for approximate domains, delegation for big.Int);
// the GCD free function falls back to the Euclid default otherwise.
type GCDer[T any] interface {
	GCD(a, b T) T
}
