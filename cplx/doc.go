// Package cplx implements complex numbers over any scalar carrying a
// Field capability, an ordering and truncation — number.F64, number.F32
// and rational.R all qualify.
//
// What:
//
//   - Complex[T] — a real/imaginary pair. No normalization invariant
//     beyond componentwise validity of T.
//   - Scalar[T] — the capability bundle the component type must provide:
//     algebra.Field[T] + algebra.Ordering[T] + Trunc.
//   - Ring[T] — the algebra.Field[Complex[T]] instance built from a
//     scalar instance via NewRing.
//
// Division and truncated division:
//
//	Div is exact complex division (multiply by the conjugate, divide by
//	the squared norm). Quot truncates both components of the exact
//	quotient toward zero; Mod is a − b·quot.
//
// GCD policy (complex over an ordered scalar is an approximate domain):
//
//	Magnitudes are compared through the squared norm ‖z‖² = re² + im²,
//	which needs no square root and orders against One exactly like |z|
//	does. Per iteration, in exactly this order: ‖a‖² < 1 returns One,
//	b == zero returns a, ‖b‖² < 1 returns One; otherwise iterate on
//	(b, a mod b). Degrading to the multiplicative identity beneath the
//	unit circle is a designed approximation, and the check order decides
//	which degenerate result callers observe.
//
// Abs (true magnitude) is available when the scalar additionally
// implements Sqrter, as the float scalars do.
package cplx
