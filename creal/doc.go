// Package creal implements lazily evaluated arbitrary-precision reals:
// a Real is an opaque approximation function producing increasingly
// precise rational bounds on demand.
//
// What:
//
//   - Real — wraps approx(prec) → *big.Rat with the contract
//     |approx(prec) − x| ≤ 2⁻ᵖʳᵉᶜ. Constructors: FromRat, FromInt64,
//     FromFloat64, FromFunc. Derived operations compose approximation
//     functions with enough extra precision to keep the bound honest.
//   - Ring — the algebra.EuclideanRing[Real] instance. Deliberately NO
//     gcd override: the default Euclid loop is inherited, and its
//     termination relies on the operands' own convergence guarantees.
//
// Decidability:
//
//	Sign, Cmp and Eq evaluate at CmpPrec bits and treat anything within
//	2^-(CmpPrec-1) of zero as zero. That is the one place the lazy
//	representation leaks into the Euclidean contract; values that are
//	equal only beyond CmpPrec bits compare equal here.
//
// Truncated division:
//
//	Quot(a, b) evaluates a/b at EvalPrec bits and truncates toward zero,
//	yielding an exact integer-valued Real; Mod(a, b) = a − b·quot. For
//	operands that are exact rationals at every precision (anything built
//	by FromRat/FromInt64/FromFloat64 and ring operations over them) the
//	pair is exact.
//
// The internal refinement strategy is intentionally minimal — just enough
// error bookkeeping to satisfy the EuclideanRing contract. Division by a
// (decidably) zero Real panics via math/big, the representation's own
// zero-division behavior.
package creal
