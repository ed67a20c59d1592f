package number

import "math/big"

// BigInt is the EuclideanRing instance over *big.Int.
//
// Operands are treated as immutable: every operation allocates a fresh
// result and never writes through its arguments. Callers must extend the
// same courtesy to values returned by Zero and One.
type BigInt struct{}

// Big is the canonical BigInt instance.
var Big = BigInt{}

func (BigInt) Combine(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (BigInt) Zero() *big.Int { return new(big.Int) }

func (BigInt) Negate(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (BigInt) One() *big.Int { return big.NewInt(1) }

func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (BigInt) FromInt(n int64) *big.Int { return big.NewInt(n) }

func (BigInt) Eq(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (BigInt) Compare(a, b *big.Int) int { return a.Cmp(b) }

// Quot is truncated division (big.Int Quo). Panics on b == 0.
func (BigInt) Quot(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }

// Mod is the truncated-division remainder (big.Int Rem), matching Quot.
func (BigInt) Mod(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) }

// QuotMod computes quotient and remainder in a single big.Int QuoRem pass.
func (BigInt) QuotMod(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	return q, r
}

// GCD overrides the default Euclid with thin forwarding to the
// representation's built-in gcd, which runs on magnitudes (big.Int.GCD
// requires positive operands, so zeros are peeled off first). The result
// is always non-negative.
func (BigInt) GCD(a, b *big.Int) *big.Int {
	if b.Sign() == 0 {
		return new(big.Int).Abs(a)
	}
	if a.Sign() == 0 {
		return new(big.Int).Abs(b)
	}
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}
