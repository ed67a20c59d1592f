package rational

// Ring is the algebra.Field[Rat] capability instance. It also provides
// Compare and Trunc, so Rat qualifies both as sortable material and as a
// scalar for cplx.Complex.
type Ring struct{}

// R is the canonical Ring instance.
var R = Ring{}

func (Ring) Combine(a, b Rat) Rat { return a.Add(b) }

func (Ring) Zero() Rat { return Rat{} }

func (Ring) Negate(a Rat) Rat { return a.Neg() }

func (Ring) One() Rat { return FromInt64(1) }

func (Ring) Mul(a, b Rat) Rat { return a.Mul(b) }

func (Ring) FromInt(n int64) Rat { return FromInt64(n) }

func (Ring) Eq(a, b Rat) bool { return a.Cmp(b) == 0 }

func (Ring) Compare(a, b Rat) int { return a.Cmp(b) }

// Quot is the rational's truncating division.
func (Ring) Quot(a, b Rat) Rat { return a.Quot(b) }

func (Ring) Mod(a, b Rat) Rat { return a.Mod(b) }

// QuotMod computes the truncating quotient once and derives the remainder.
func (Ring) QuotMod(a, b Rat) (Rat, Rat) {
	q := a.Quot(b)
	return q, a.Sub(b.Mul(q))
}

func (Ring) Inv(a Rat) Rat { return FromInt64(1).Div(a) }

func (Ring) Div(a, b Rat) Rat { return a.Div(b) }

// Trunc rounds toward zero (scalar capability for cplx.Complex).
func (Ring) Trunc(a Rat) Rat { return a.Trunc() }

// GCD overrides the default Euclid. Rationals are always divisible, so a
// remainder chain under truncating division shrinks below 1 instead of
// reaching 0; the cutoff is compared through the rational's own ordering
// against its identity element. Per iteration, on absolute values and in
// exactly this order: |a| < 1 returns One, b == 0 returns a, |b| < 1
// returns One; otherwise iterate on (b, a mod b).
func (Ring) GCD(a, b Rat) Rat {
	one := FromInt64(1)
	for {
		a, b = a.Abs(), b.Abs()
		if a.Cmp(one) < 0 {
			return one
		}
		if b.IsZero() {
			return a
		}
		if b.Cmp(one) < 0 {
			return one
		}
		a, b = b, a.Mod(b)
	}
}
