package creal

import (
	"fmt"
	"math/big"
)

const (
	// CmpPrec is the precision, in bits, at which Sign/Cmp/Eq decide.
	// Values within 2^-(CmpPrec-1) of zero are indistinguishable from zero.
	CmpPrec uint = 96

	// EvalPrec is the working precision, in bits, for truncated division.
	EvalPrec uint = 128
)

// Real is a lazily evaluated real number. The zero value is the real 0.
//
// The wrapped approximation function must satisfy, for every prec:
//
//	|approx(prec) − x| ≤ 2⁻ᵖʳᵉᶜ
//
// Values returned by Approx must be treated as read-only.
type Real struct {
	approx func(prec uint) *big.Rat
}

// FromFunc wraps a raw approximation function. The caller vouches for the
// 2⁻ᵖʳᵉᶜ bound; nothing here can verify it.
func FromFunc(f func(prec uint) *big.Rat) Real {
	return Real{approx: f}
}

// FromRat returns the exact real equal to r (the input is copied).
func FromRat(r *big.Rat) Real {
	c := new(big.Rat).Set(r)
	return Real{approx: func(uint) *big.Rat { return c }}
}

// FromInt64 returns the exact real equal to n.
func FromInt64(n int64) Real {
	return FromRat(new(big.Rat).SetInt64(n))
}

// FromFloat64 returns the exact real equal to f (every finite float64 is
// a rational). Panics on NaN or ±Inf.
func FromFloat64(f float64) Real {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(fmt.Sprintf("creal: FromFloat64(%v): not a finite number", f))
	}
	return FromRat(r)
}

// Approx returns a rational within 2⁻ᵖʳᵉᶜ of the value.
// The result must be treated as read-only.
func (x Real) Approx(prec uint) *big.Rat {
	if x.approx == nil {
		return ratZero
	}
	return x.approx(prec)
}

var ratZero = new(big.Rat)

// Add returns x + y.
func (x Real) Add(y Real) Real {
	return Real{approx: func(prec uint) *big.Rat {
		return new(big.Rat).Add(x.Approx(prec+1), y.Approx(prec+1))
	}}
}

// Sub returns x - y.
func (x Real) Sub(y Real) Real { return x.Add(y.Neg()) }

// Neg returns -x.
func (x Real) Neg() Real {
	return Real{approx: func(prec uint) *big.Rat {
		return new(big.Rat).Neg(x.Approx(prec))
	}}
}

// Mul returns x · y. Each factor is evaluated with enough extra bits to
// absorb the other factor's magnitude, keeping the product bound honest.
func (x Real) Mul(y Real) Real {
	return Real{approx: func(prec uint) *big.Rat {
		sx, sy := magnitudeBits(x), magnitudeBits(y)
		return new(big.Rat).Mul(x.Approx(prec+sy+2), y.Approx(prec+sx+2))
	}}
}

// magnitudeBits returns s with |x| ≤ 2ˢ, from a coarse prec-0 probe
// (|x| ≤ |approx(0)| + 1).
func magnitudeBits(x Real) uint {
	m := new(big.Rat).Abs(x.Approx(0))
	m.Add(m, new(big.Rat).SetInt64(1))
	// ceil(m) has bit length s with 2^s ≥ ceil(m) ≥ m when rounded up.
	c := new(big.Int).Quo(m.Num(), m.Denom())
	if new(big.Int).Rem(m.Num(), m.Denom()).Sign() != 0 {
		c.Add(c, big.NewInt(1))
	}
	return uint(c.BitLen())
}

// Quot is truncated division: trunc(x / y) evaluated at EvalPrec bits,
// returned as an exact integer-valued Real. Division by a decidably zero
// y panics via math/big.
func (x Real) Quot(y Real) Real {
	q := new(big.Rat).Quo(x.Approx(EvalPrec), y.Approx(EvalPrec))
	t := new(big.Int).Quo(q.Num(), q.Denom())
	return FromRat(new(big.Rat).SetInt(t))
}

// Mod returns x − y·quot(x, y).
func (x Real) Mod(y Real) Real { return x.Sub(y.Mul(x.Quot(y))) }

// Sign decides at CmpPrec bits: -1, 0 or +1. Anything within
// 2^-(CmpPrec-1) of zero reports 0.
func (x Real) Sign() int {
	a := x.Approx(CmpPrec)
	if new(big.Rat).Abs(a).Cmp(cmpEps) <= 0 {
		return 0
	}
	return a.Sign()
}

// cmpEps = 2^-(CmpPrec-1).
var cmpEps = new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), CmpPrec-1))

// Cmp compares x and y at CmpPrec bits: -1, 0 or +1.
func (x Real) Cmp(y Real) int { return x.Sub(y).Sign() }

// Eq reports whether x and y are indistinguishable at CmpPrec bits.
func (x Real) Eq(y Real) bool { return x.Cmp(y) == 0 }
