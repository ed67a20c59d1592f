package cplx

import "github.com/katalvlaran/numring/algebra"

// Complex is a real/imaginary pair over any scalar type.
type Complex[T any] struct {
	Re T
	Im T
}

// New returns re + im·i.
func New[T any](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Scalar is the capability bundle a component type must provide for the
// full Complex instance: field arithmetic, an ordering (consumed by the
// gcd magnitude cutoff) and truncation toward zero (consumed by Quot).
type Scalar[T any] interface {
	algebra.Field[T]
	algebra.Ordering[T]

	Trunc(a T) T
}

// Sqrter is the optional square-root capability; scalars providing it
// unlock Ring.Abs. The float scalars in package number implement it.
type Sqrter[T any] interface {
	Sqrt(a T) T
}
