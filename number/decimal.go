package number

import (
	"strconv"

	"github.com/govalues/decimal"
)

// Dec is the Field instance over the arbitrary-precision decimal type.
// The decimal representation is supplied externally (govalues/decimal);
// this instance only adapts its surface to the capability hierarchy.
//
// The representation reports failures (coefficient overflow, division by
// zero) through error returns; the capability surface is total, so those
// are unwrapped into the representation's own panic via mustDec.
//
// Quot/Mod semantics: quot = trunc(a / b) at scale 0, mod = a - b·quot.
// Division of non-terminating quotients rounds at the representation's
// maximum scale, so Dec is an approximate domain: the quot/mod identity
// holds within the decimal's documented rounding, not exactly.
type Dec struct{}

// D is the canonical Dec instance.
var D = Dec{}

// decOne is the multiplicative identity returned by the gcd cutoff.
var decOne = decimal.MustParse("1")

// mustDec unwraps the representation's error-returning arithmetic.
func mustDec(d decimal.Decimal, err error) decimal.Decimal {
	if err != nil {
		panic(err)
	}
	return d
}

func (Dec) Combine(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Add(b)) }

// Zero returns the representation's zero value (0 at scale 0).
func (Dec) Zero() decimal.Decimal { return decimal.Decimal{} }

func (Dec) Negate(a decimal.Decimal) decimal.Decimal { return a.Neg() }

func (Dec) One() decimal.Decimal { return decOne }

func (Dec) Mul(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Mul(b)) }

func (Dec) FromInt(n int64) decimal.Decimal {
	return decimal.MustParse(strconv.FormatInt(n, 10))
}

func (Dec) Eq(a, b decimal.Decimal) bool { return a.Cmp(b) == 0 }

func (Dec) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

// Quot is the decimal's truncating division: the quotient rounded toward
// zero to an integer. Panics on b == 0 (the representation's error,
// unwrapped).
func (d Dec) Quot(a, b decimal.Decimal) decimal.Decimal {
	q, _ := d.QuotMod(a, b)
	return q
}

// Mod returns a - b·quot(a, b).
func (d Dec) Mod(a, b decimal.Decimal) decimal.Decimal {
	_, r := d.QuotMod(a, b)
	return r
}

// QuotMod is the representation's own single-pass QuoRem: q is the
// integral truncated quotient and r carries the sign of a.
func (Dec) QuotMod(a, b decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	q, r, err := a.QuoRem(b)
	if err != nil {
		panic(err)
	}
	return q, r
}

func (Dec) Inv(a decimal.Decimal) decimal.Decimal { return mustDec(decOne.Quo(a)) }

func (Dec) Div(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Quo(b)) }

// GCD overrides the default Euclid with the same below-one policy as the
// float instance, expressed through the decimal's own identity and sign
// queries: per iteration, on absolute values and in exactly this order —
// |a| < 1 returns One, b == 0 returns a, |b| < 1 returns One — before
// iterating on (b, a mod b). The cutoff avoids the infinite fractional
// regress a decimal Euclid would otherwise wander into; returning the
// multiplicative identity there is a designed approximation.
func (d Dec) GCD(a, b decimal.Decimal) decimal.Decimal {
	for {
		a, b = a.Abs(), b.Abs()
		if a.WithinOne() {
			return decOne
		}
		if b.IsZero() {
			return a
		}
		if b.WithinOne() {
			return decOne
		}
		a, b = b, d.Mod(a, b)
	}
}
