// Package numring is a generic arithmetic playground: write a numeric
// algorithm once against an algebraic capability, run it over machine
// integers, floats, big integers, decimals, exact fractions, lazy reals
// and complex numbers — with zero boxing in the hot loop.
//
// 🚀 What is numring?
//
//	A small, focused library that brings together:
//		• Capability hierarchy: Semigroup → Monoid → Group → Ring → EuclideanRing → Field
//		• One generalized Euclid: gcd/lcm/quot/mod written once, instantiated per type
//		• Nine numeric instances: int32/int64/int, float32/float64, big.Int,
//		  arbitrary-precision decimal, exact Rat, lazy Real, Complex over any scalar
//		• Hybrid sorting: insertion / merge / quick over any ordering capability
//		• Order statistics: quickselect and worst-case-linear select
//
// ✨ Why choose numring?
//
//   - Monomorphized generics – no runtime tag dispatch inside partition loops
//   - Honest semantics – exact domains stay exact; approximate domains document
//     their degradations instead of hiding them
//   - Pure Go core – the only runtime dependency is the decimal representation
//   - Deterministic – seeded pivot streams, reproducible across platforms
//
// Everything is organized under seven subpackages:
//
//	algebra/   — capability interfaces, the generalized Euclid loop, operator helpers
//	number/    — instances for machine ints, floats, big.Int and decimal
//	rational/  — exact fractions in lowest terms + their Field instance
//	creal/     — lazily evaluated arbitrary-precision reals
//	cplx/      — Complex[T] over any Field scalar with ordering + truncation
//	sorting/   — insertion, merge and hybrid quick sort over an Ordering
//	selection/ — quickselect and median-of-medians linear select
//
// Quick taste:
//
//	g := algebra.GCD[int64](number.I64, 48, 18) // 6
//	l := algebra.LCM[int64](number.I64, 4, 6)   // 12
//
//	go get github.com/katalvlaran/numring
package numring
