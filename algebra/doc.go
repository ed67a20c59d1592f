// Package algebra defines the capability hierarchy at the heart of numring
// and the generalized Euclidean algorithm written against it.
//
// What:
//
//   - A capability is a behavior table bound to a concrete type T:
//     Semigroup → Monoid → Group → Ring → EuclideanRing → Field.
//     Each level adds operations and the algebraic laws the instance
//     promises to uphold.
//   - Free functions Quot, Mod, QuotMod, GCD, LCM and Euclid consume any
//     EuclideanRing instance. GCD and QuotMod honor per-instance overrides
//     (the GCDer and QuotModer interfaces); Euclid is the shared default.
//   - Ordering is the comparison capability consumed by the sorting and
//     selection packages.
//
// Why:
//
//   - Write gcd/lcm/quot/mod once, run it over machine integers, floats,
//     big integers, decimals, fractions, lazy reals and complex numbers.
//   - Go resolves the instance at the call site through a plain value, so
//     generic call sites monomorphize: no boxing, no runtime tag dispatch
//     inside the iteration loop.
//
// Instance discipline:
//
//   - Exactly one canonical instance should exist per type (number.I64,
//     rational.R, …). Instances are immutable values constructed once;
//     competing instances for the same type make arithmetic ambiguous and
//     are a caller error.
//
// Errors:
//
//   - Capability operations are total over their documented domain.
//     Dividing by the additive identity is delegated to the underlying
//     representation (panic, ±Inf, NaN — whatever T does); this layer
//     never adds its own guard and never masks the outcome.
//
// Complexity:
//
//   - Euclid: O(iterations) time, O(1) space — an explicit loop, so
//     arbitrarily long remainder chains run in constant stack.
package algebra
