// Package rational implements exact fractions over arbitrary-precision
// integers and their Field capability instance.
//
// What:
//
//   - Rat — an immutable numerator/denominator pair of big integers,
//     always held in lowest terms with a positive denominator. Every
//     constructor establishes the invariant gcd(|num|, den) == 1, den > 0;
//     a zero denominator is never constructed (ErrZeroDenominator).
//   - Ring — the canonical algebra.Field[Rat] instance (value R), with a
//     truncating Quot/Mod pair and a bespoke gcd termination policy.
//
// GCD policy:
//
//	Rationals are always divisible, so the plain Euclid never stops on a
//	zero remainder alone. The instance borrows the approximate-domain
//	cutoff, compared through the rational's own ordering against its
//	identity element: per iteration, on absolute values and in this
//	order — |a| < 1 returns One, b == 0 returns a, |b| < 1 returns One —
//	before iterating on (b, a mod b).
//
// Errors:
//
//   - ErrZeroDenominator — New/FromBig reject a zero denominator.
//   - Division by a zero rational panics, the representation's own
//     zero-division behavior; the capability layer adds no guard.
//
// Complexity:
//
//	Arithmetic is O(M(n)) in the bit length of the operands (M = big.Int
//	multiplication cost), plus one gcd per construction for reduction.
package rational
