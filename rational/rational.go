package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrZeroDenominator indicates an attempt to construct a fraction with a
// zero denominator.
var ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

// Rat is an exact fraction. The zero value is the rational number 0.
//
// Invariants, established by every constructor and preserved by every
// operation: the denominator is positive, the fraction is in lowest terms
// (gcd(|num|, den) == 1), and the sign lives in the numerator. Rat values
// are immutable; methods return fresh values and never mutate receivers.
type Rat struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1
}

// New returns num/den reduced to lowest terms.
// Returns ErrZeroDenominator when den == 0.
func New(num, den int64) (Rat, error) {
	return FromBig(big.NewInt(num), big.NewInt(den))
}

// MustNew is like New but panics on a zero denominator.
func MustNew(num, den int64) Rat {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational: MustNew(%d, %d): %v", num, den, err))
	}
	return r
}

// FromBig returns num/den reduced to lowest terms. The inputs are copied,
// never retained. Returns ErrZeroDenominator when den == 0.
func FromBig(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrZeroDenominator
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt64 returns the integer n as a rational n/1.
func FromInt64(n int64) Rat {
	return Rat{num: big.NewInt(n), den: big.NewInt(1)}
}

// reduce owns num and den (den != 0), normalizes the sign into the
// numerator and divides both by their gcd.
func reduce(num, den *big.Int) Rat {
	if num.Sign() == 0 {
		return Rat{}
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(oneInt) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rat{num: num, den: den}
}

var (
	zeroInt = new(big.Int)
	oneInt  = big.NewInt(1)
)

// numRef and denRef give zero-value receivers their canonical 0/1 parts.
// The shared sentinels are read-only: every arithmetic path writes into
// fresh allocations.
func (r Rat) numRef() *big.Int {
	if r.num == nil {
		return zeroInt
	}
	return r.num
}

func (r Rat) denRef() *big.Int {
	if r.den == nil {
		return oneInt
	}
	return r.den
}

// Num returns a copy of the numerator (sign carrier).
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.numRef()) }

// Den returns a copy of the denominator (always positive).
func (r Rat) Den() *big.Int { return new(big.Int).Set(r.denRef()) }

// Add returns r + o.
func (r Rat) Add(o Rat) Rat {
	an, ad, bn, bd := r.numRef(), r.denRef(), o.numRef(), o.denRef()
	num := new(big.Int).Mul(an, bd)
	num.Add(num, new(big.Int).Mul(bn, ad))
	return reduce(num, new(big.Int).Mul(ad, bd))
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat { return r.Add(o.Neg()) }

// Mul returns r · o.
func (r Rat) Mul(o Rat) Rat {
	num := new(big.Int).Mul(r.numRef(), o.numRef())
	den := new(big.Int).Mul(r.denRef(), o.denRef())
	return reduce(num, den)
}

// Div returns r / o. Panics when o is zero — the rational's own
// zero-division behavior, inherited by every capability call site.
func (r Rat) Div(o Rat) Rat {
	if o.IsZero() {
		panic("rational: division by zero")
	}
	num := new(big.Int).Mul(r.numRef(), o.denRef())
	den := new(big.Int).Mul(r.denRef(), o.numRef())
	return reduce(num, den)
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	if r.IsZero() {
		return Rat{}
	}
	return Rat{num: new(big.Int).Neg(r.numRef()), den: new(big.Int).Set(r.denRef())}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

// Cmp compares r and o numerically: -1 if r < o, 0 if equal, +1 if r > o.
func (r Rat) Cmp(o Rat) int {
	left := new(big.Int).Mul(r.numRef(), o.denRef())
	right := new(big.Int).Mul(o.numRef(), r.denRef())
	return left.Cmp(right)
}

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.numRef().Sign() }

// IsZero reports whether r is 0.
func (r Rat) IsZero() bool { return r.Sign() == 0 }

// IsInt reports whether r is an integer (denominator 1).
func (r Rat) IsInt() bool { return r.denRef().Cmp(oneInt) == 0 }

// Trunc returns the integer part of r, rounded toward zero, as a rational.
func (r Rat) Trunc() Rat {
	q := new(big.Int).Quo(r.numRef(), r.denRef())
	if q.Sign() == 0 {
		return Rat{}
	}
	return Rat{num: q, den: big.NewInt(1)}
}

// Quot is the rational's truncating division: trunc(r / o).
func (r Rat) Quot(o Rat) Rat { return r.Div(o).Trunc() }

// Mod returns r - o·quot(r, o); |mod| < |o| and the identity
// r == quot·o + mod holds exactly.
func (r Rat) Mod(o Rat) Rat { return r.Sub(o.Mul(r.Quot(o))) }

// String renders the fraction as "num/den", always with an explicit
// denominator (so 5 prints as "5/1": one form, no special cases).
func (r Rat) String() string {
	return fmt.Sprintf("%s/%s", r.numRef().String(), r.denRef().String())
}
