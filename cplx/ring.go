package cplx

// Ring is the algebra.Field[Complex[T]] capability instance over a scalar
// capability. Construct it once with NewRing and treat it as immutable.
type Ring[T any] struct {
	s Scalar[T]
}

// NewRing binds a Complex instance to the given scalar capability.
func NewRing[T any](s Scalar[T]) Ring[T] {
	return Ring[T]{s: s}
}

// ScalarInstance returns the underlying scalar capability.
func (r Ring[T]) ScalarInstance() Scalar[T] { return r.s }

func (r Ring[T]) Combine(a, b Complex[T]) Complex[T] {
	return Complex[T]{Re: r.s.Combine(a.Re, b.Re), Im: r.s.Combine(a.Im, b.Im)}
}

func (r Ring[T]) Zero() Complex[T] {
	return Complex[T]{Re: r.s.Zero(), Im: r.s.Zero()}
}

func (r Ring[T]) Negate(a Complex[T]) Complex[T] {
	return Complex[T]{Re: r.s.Negate(a.Re), Im: r.s.Negate(a.Im)}
}

func (r Ring[T]) One() Complex[T] {
	return Complex[T]{Re: r.s.One(), Im: r.s.Zero()}
}

// Mul is the componentwise product formula (ac − bd, ad + bc).
func (r Ring[T]) Mul(a, b Complex[T]) Complex[T] {
	s := r.s
	return Complex[T]{
		Re: s.Combine(s.Mul(a.Re, b.Re), s.Negate(s.Mul(a.Im, b.Im))),
		Im: s.Combine(s.Mul(a.Re, b.Im), s.Mul(a.Im, b.Re)),
	}
}

func (r Ring[T]) FromInt(n int64) Complex[T] {
	return Complex[T]{Re: r.s.FromInt(n), Im: r.s.Zero()}
}

func (r Ring[T]) Eq(a, b Complex[T]) bool {
	return r.s.Eq(a.Re, b.Re) && r.s.Eq(a.Im, b.Im)
}

// Norm returns the squared magnitude ‖z‖² = re² + im². Comparing it
// against One orders exactly like the true magnitude, with no square
// root required of the scalar.
func (r Ring[T]) Norm(z Complex[T]) T {
	return r.s.Combine(r.s.Mul(z.Re, z.Re), r.s.Mul(z.Im, z.Im))
}

// Abs returns the true magnitude when the scalar implements Sqrter;
// ok is false otherwise.
func (r Ring[T]) Abs(z Complex[T]) (T, bool) {
	sq, ok := r.s.(Sqrter[T])
	if !ok {
		var zero T
		return zero, false
	}
	return sq.Sqrt(r.Norm(z)), true
}

// Div is exact complex division: a·conj(b) / ‖b‖². Division by the zero
// complex inherits the scalar's own zero-division behavior.
func (r Ring[T]) Div(a, b Complex[T]) Complex[T] {
	s := r.s
	n := r.Norm(b)
	return Complex[T]{
		Re: s.Div(s.Combine(s.Mul(a.Re, b.Re), s.Mul(a.Im, b.Im)), n),
		Im: s.Div(s.Combine(s.Mul(a.Im, b.Re), s.Negate(s.Mul(a.Re, b.Im))), n),
	}
}

func (r Ring[T]) Inv(a Complex[T]) Complex[T] {
	return r.Div(r.One(), a)
}

// Quot is complex truncated division: both components of the exact
// quotient rounded toward zero.
func (r Ring[T]) Quot(a, b Complex[T]) Complex[T] {
	w := r.Div(a, b)
	return Complex[T]{Re: r.s.Trunc(w.Re), Im: r.s.Trunc(w.Im)}
}

// Mod returns a − b·quot(a, b).
func (r Ring[T]) Mod(a, b Complex[T]) Complex[T] {
	return r.Combine(a, r.Negate(r.Mul(b, r.Quot(a, b))))
}

// QuotMod computes the truncated quotient once and derives the remainder.
func (r Ring[T]) QuotMod(a, b Complex[T]) (Complex[T], Complex[T]) {
	q := r.Quot(a, b)
	return q, r.Combine(a, r.Negate(r.Mul(b, q)))
}

// GCD overrides the default Euclid with the magnitude cutoff, compared
// through the squared norm against the scalar's One. Per iteration, in
// exactly this order: ‖a‖² < 1 returns One, b == zero returns a,
// ‖b‖² < 1 returns One; otherwise iterate on (b, a mod b). The check
// order is part of the contract and must not be reordered.
//
// A norm that fails Eq against itself is an IEEE NaN leaking in from a
// float scalar (non-finite components, outside the numeric domain); it
// would compare false against every cutoff, so it degrades to One. For
// exact scalars Eq is reflexive and the guard never fires.
func (r Ring[T]) GCD(a, b Complex[T]) Complex[T] {
	one, sone, zero := r.One(), r.s.One(), r.Zero()
	for {
		na, nb := r.Norm(a), r.Norm(b)
		if !r.s.Eq(na, na) || !r.s.Eq(nb, nb) {
			return one
		}
		if r.s.Compare(na, sone) < 0 {
			return one
		}
		if r.Eq(b, zero) {
			return a
		}
		if r.s.Compare(nb, sone) < 0 {
			return one
		}
		a, b = b, r.Mod(a, b)
	}
}
