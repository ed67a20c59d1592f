package creal

// Ring is the algebra.EuclideanRing[Real] capability instance.
//
// It carries NO gcd override: the generalized Euclid default applies,
// and its termination is inherited from the operands' convergence (the
// remainder chain of exact-rational-backed reals behaves like the exact
// case; arbitrary approximation functions are on their own contract).
type Ring struct{}

// R is the canonical Ring instance.
var R = Ring{}

func (Ring) Combine(a, b Real) Real { return a.Add(b) }

func (Ring) Zero() Real { return Real{} }

func (Ring) Negate(a Real) Real { return a.Neg() }

func (Ring) One() Real { return FromInt64(1) }

func (Ring) Mul(a, b Real) Real { return a.Mul(b) }

func (Ring) FromInt(n int64) Real { return FromInt64(n) }

// Eq decides at CmpPrec bits — the one approximation the Euclid loop
// inherits from this domain.
func (Ring) Eq(a, b Real) bool { return a.Eq(b) }

func (Ring) Compare(a, b Real) int { return a.Cmp(b) }

func (Ring) Quot(a, b Real) Real { return a.Quot(b) }

func (Ring) Mod(a, b Real) Real { return a.Mod(b) }
