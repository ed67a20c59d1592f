package algebra_test

import (
	"testing"

	"github.com/katalvlaran/numring/algebra"
	"github.com/katalvlaran/numring/number"
	"github.com/stretchr/testify/assert"
)

// plain is an EuclideanRing over int64 with no overrides, so the free
// functions exercise their default paths.
type plain struct{}

func (plain) Combine(a, b int64) int64 { return a + b }
func (plain) Zero() int64              { return 0 }
func (plain) Negate(a int64) int64     { return -a }
func (plain) One() int64               { return 1 }
func (plain) Mul(a, b int64) int64     { return a * b }
func (plain) FromInt(n int64) int64    { return n }
func (plain) Eq(a, b int64) bool       { return a == b }
func (plain) Quot(a, b int64) int64    { return a / b }
func (plain) Mod(a, b int64) int64     { return a % b }

// TestEuclid_Basics verifies the default loop on classic inputs.
func TestEuclid_Basics(t *testing.T) {
	r := plain{}
	assert.Equal(t, int64(6), algebra.Euclid[int64](r, 48, 18), "gcd(48,18)")
	assert.Equal(t, int64(48), algebra.Euclid[int64](r, 48, 0), "gcd(a,0) is a")
	assert.Equal(t, int64(0), algebra.Euclid[int64](r, 0, 0), "gcd(0,0) is 0")
	assert.Equal(t, int64(1), algebra.Euclid[int64](r, 17, 13), "coprime inputs")
}

// TestGCD_DefaultWhenNoOverride checks that GCD falls back to Euclid for
// instances without a GCDer override.
func TestGCD_DefaultWhenNoOverride(t *testing.T) {
	assert.Equal(t, int64(6), algebra.GCD[int64](plain{}, 48, 18))
}

// TestGCD_UsesOverride checks that an instance override wins over the
// default: the Int instance works on magnitudes, so negative inputs come
// back non-negative, unlike the raw Euclid loop.
func TestGCD_UsesOverride(t *testing.T) {
	assert.Equal(t, int64(6), algebra.GCD[int64](number.I64, 48, -18))
	assert.Equal(t, int64(-6), algebra.Euclid[int64](plain{}, 48, -18),
		"raw loop keeps the sign the remainder chain produces")
}

// TestQuotMod_DefaultPair checks the fallback pair against the instance's
// own Quot/Mod.
func TestQuotMod_DefaultPair(t *testing.T) {
	r := plain{}
	q, m := algebra.QuotMod[int64](r, 47, 5)
	assert.Equal(t, int64(9), q)
	assert.Equal(t, int64(2), m)
	assert.Equal(t, int64(47), q*5+m, "a == quot*b + mod")
}

// TestQuotMod_UsesOverride checks that the BigInt instance's single-pass
// QuotMod is picked up through the free function.
func TestQuotMod_UsesOverride(t *testing.T) {
	q, m := algebra.QuotMod(number.Big, number.Big.FromInt(47), number.Big.FromInt(5))
	assert.Equal(t, int64(9), q.Int64())
	assert.Equal(t, int64(2), m.Int64())
}

// TestLCM_Derived verifies the derived lcm on the scenario values and the
// lcm·gcd == a·b law.
func TestLCM_Derived(t *testing.T) {
	r := plain{}
	assert.Equal(t, int64(12), algebra.LCM[int64](r, 4, 6), "lcm(4,6)")

	for _, tc := range [][2]int64{{4, 6}, {21, 6}, {1, 9}, {12, 12}, {7, 13}} {
		a, b := tc[0], tc[1]
		g := algebra.GCD[int64](r, a, b)
		l := algebra.LCM[int64](r, a, b)
		assert.Equal(t, a*b, l*g, "lcm(%d,%d)*gcd == a*b", a, b)
	}
}

// TestEuclid_LongChain runs a Fibonacci-adjacent pair, the worst case for
// Euclid chain length, to exercise the loop (not recursion) shape.
func TestEuclid_LongChain(t *testing.T) {
	var a, b int64 = 7540113804746346429, 4660046610375530309 // fib(92), fib(91)
	assert.Equal(t, int64(1), algebra.Euclid[int64](plain{}, a, b))
}
