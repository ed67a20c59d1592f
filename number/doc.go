// Package number provides the canonical capability instances for Go's
// native numeric types, math/big integers and arbitrary-precision decimals.
//
// What:
//
//   - Int[T]  — EuclideanRing over ~int32 | ~int64 | ~int.
//     Canonical instances: I32, I64, I.
//   - Float[T] — Field over ~float32 | ~float64.
//     Canonical instances: F32, F64. Floats also provide Trunc and Sqrt,
//     so they qualify as the scalar of cplx.Complex.
//   - BigInt  — EuclideanRing over *big.Int (canonical instance Big).
//   - Dec     — Field over govalues decimal.Decimal (canonical instance D).
//
// Every instance also implements algebra.Ordering, so the same values feed
// the sorting and selection packages directly.
//
// GCD policy per domain:
//
//   - Int: Euclid on uint64 magnitudes, result cast back. Working on
//     magnitudes sidesteps the |MinInt| negation overflow that a naive
//     signed Euclid hits on two's-complement hardware. The result is
//     non-negative — except gcd(MinInt, 0), whose magnitude 2⁶³ is not
//     representable and wraps back to MinInt.
//   - Float, Dec: approximate domains have no true gcd once magnitudes
//     fall under the representable unit. The policy, applied per
//     iteration to absolute values and in exactly this order, is:
//     |a| < 1 ⇒ One; b == 0 ⇒ a; |b| < 1 ⇒ One; else iterate with
//     (b, a mod b). Returning One beneath the precision floor is a
//     documented approximation, not a bug, and the asymmetric check
//     order decides which degenerate result callers observe. Float
//     operands must be finite: NaN and ±Inf carry no common factor and
//     gcd degrades to One for them immediately.
//   - BigInt: thin forwarding to big.Int's built-in gcd on magnitudes.
//
// Errors:
//
//   - None. Division by zero inherits the representation's behavior:
//     machine ints panic, floats yield ±Inf/NaN, big.Int and Decimal
//     panic. The capability layer neither guards nor masks.
package number
