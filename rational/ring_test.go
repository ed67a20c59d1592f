package rational_test

import (
	"testing"

	"github.com/katalvlaran/numring/algebra"
	"github.com/katalvlaran/numring/rational"
	"github.com/stretchr/testify/assert"
)

// TestRing_GCDIntegralValues checks that integer-valued rationals behave
// like the exact domains above 1.
func TestRing_GCDIntegralValues(t *testing.T) {
	r := rational.R
	g := algebra.GCD[rational.Rat](r, rational.FromInt64(48), rational.FromInt64(18))
	assert.Equal(t, "6/1", g.String())

	l := algebra.LCM[rational.Rat](r, rational.FromInt64(4), rational.FromInt64(6))
	assert.Equal(t, "12/1", l.String())
}

// TestRing_GCDBelowOne verifies the cutoff compared through the
// rational's own ordering against its identity element, including the
// asymmetric check order.
func TestRing_GCDBelowOne(t *testing.T) {
	r := rational.R
	one := rational.FromInt64(1)

	g := r.GCD(rational.MustNew(1, 3), rational.FromInt64(5))
	assert.Equal(t, 0, g.Cmp(one), "|a| < 1 returns one")

	g = r.GCD(rational.FromInt64(5), rational.MustNew(1, 3))
	assert.Equal(t, 0, g.Cmp(one), "|b| < 1 returns one")

	g = r.GCD(rational.MustNew(1, 3), rational.Rat{})
	assert.Equal(t, 0, g.Cmp(one), "a below one wins over b == 0")

	g = r.GCD(rational.FromInt64(-5), rational.Rat{})
	assert.Equal(t, "5/1", g.String(), "b == 0 returns |a|")
}

// TestRing_GCDFractionalChain runs a remainder chain that dips through
// fractional values before the cutoff fires.
func TestRing_GCDFractionalChain(t *testing.T) {
	r := rational.R
	// 7/2 and 5/4: trunc-division remainders stay ≥ 1 until they don't.
	g := r.GCD(rational.MustNew(7, 2), rational.MustNew(5, 4))
	assert.Equal(t, 0, g.Cmp(rational.FromInt64(1)), "chain bottoms out at one")
}

// TestRing_FieldLaws spot-checks the Field level of the instance.
func TestRing_FieldLaws(t *testing.T) {
	r := rational.R
	half := rational.MustNew(1, 2)

	assert.Equal(t, "2/1", r.Inv(half).String())
	assert.Equal(t, "1/1", r.Mul(half, r.Inv(half)).String())
	assert.Equal(t, "1/3", r.Div(half, rational.MustNew(3, 2)).String())
	assert.Equal(t, "-42/1", r.FromInt(-42).String())
	assert.True(t, r.Eq(rational.MustNew(2, 4), half))
	assert.Equal(t, "3/1", r.Trunc(rational.MustNew(10, 3)).String())
}

// TestRing_QuotModOverride checks the single-pass pair agrees with the
// componentwise calls and satisfies the exact identity.
func TestRing_QuotModOverride(t *testing.T) {
	r := rational.R
	a, b := rational.MustNew(29, 3), rational.MustNew(5, 7)

	q, m := algebra.QuotMod[rational.Rat](r, a, b)
	assert.Equal(t, 0, q.Cmp(r.Quot(a, b)))
	assert.Equal(t, 0, m.Cmp(r.Mod(a, b)))
	assert.Equal(t, 0, a.Cmp(r.Combine(r.Mul(q, b), m)), "a == quot·b + mod")
}
