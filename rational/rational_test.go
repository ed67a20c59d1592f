package rational_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numring/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ReducesToLowestTerms pins the concrete reduction scenario and
// the constructor invariant.
func TestNew_ReducesToLowestTerms(t *testing.T) {
	r := rational.MustNew(1599, 115866)
	assert.Equal(t, "13/942", r.String(), "1599/115866 reduces to 13/942")

	third := rational.MustNew(1, 3)
	assert.Equal(t, "1/3", third.String())
}

// TestNew_Invariants checks lowest terms and positive denominator over a
// deterministic random sample.
func TestNew_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		n := rng.Int63n(2_000_000) - 1_000_000
		d := rng.Int63n(2_000_000) - 1_000_000
		if d == 0 {
			continue
		}
		r, err := rational.New(n, d)
		require.NoError(t, err)

		den := r.Den()
		assert.Positive(t, den.Sign(), "denominator positive for %d/%d", n, d)
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Num()), den)
		assert.Zero(t, g.Cmp(big.NewInt(1)), "lowest terms for %d/%d", n, d)
	}
}

// TestNew_ZeroDenominator verifies the invalid state is never constructed.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(3, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)

	_, err = rational.FromBig(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)

	assert.Panics(t, func() { rational.MustNew(1, 0) })
}

// TestRat_SignInNumerator verifies sign normalization.
func TestRat_SignInNumerator(t *testing.T) {
	assert.Equal(t, "-3/4", rational.MustNew(6, -8).String())
	assert.Equal(t, "-3/4", rational.MustNew(-6, 8).String())
	assert.Equal(t, "3/4", rational.MustNew(-6, -8).String())
	assert.Equal(t, "0/1", rational.MustNew(0, -5).String())
}

// TestRat_Arithmetic checks the value-level operations.
func TestRat_Arithmetic(t *testing.T) {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	assert.Equal(t, "3/2", half.Div(third).String())
	assert.Equal(t, "-1/2", half.Neg().String())
	assert.Equal(t, 1, half.Cmp(third))
	assert.True(t, rational.MustNew(4, 2).IsInt())
	assert.False(t, half.IsInt())
}

// TestRat_ZeroValue verifies the zero value behaves as the rational 0.
func TestRat_ZeroValue(t *testing.T) {
	var zero rational.Rat
	half := rational.MustNew(1, 2)

	assert.True(t, zero.IsZero())
	assert.Equal(t, "0/1", zero.String())
	assert.Equal(t, "1/2", zero.Add(half).String())
	assert.Equal(t, "0/1", zero.Mul(half).String())
	assert.Equal(t, 0, zero.Sign())
}

// TestRat_TruncQuotMod checks the truncating division pair and its exact
// identity.
func TestRat_TruncQuotMod(t *testing.T) {
	a := rational.MustNew(7, 2) // 3.5
	b := rational.MustNew(3, 4) // 0.75

	q := a.Quot(b) // trunc(14/3) = 4
	m := a.Mod(b)  // 7/2 - 3 = 1/2
	assert.Equal(t, "4/1", q.String())
	assert.Equal(t, "1/2", m.String())
	assert.Equal(t, 0, a.Cmp(q.Mul(b).Add(m)), "a == quot·b + mod exactly")

	neg := rational.MustNew(-7, 2)
	assert.Equal(t, "-4/1", neg.Quot(b).String(), "truncation toward zero")
}

// TestRat_DivByZeroPanics verifies the representation's own zero-division
// behavior (no capability-layer guard).
func TestRat_DivByZeroPanics(t *testing.T) {
	var zero rational.Rat
	assert.Panics(t, func() { rational.MustNew(1, 2).Div(zero) })
}
