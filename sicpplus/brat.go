package sicpplus

// BRat is an immutable binary rational: an SBig numerator over a
// positive UBig denominator. Values are not required to be in lowest
// terms eagerly — GCD reduction happens lazily, only when Reduce is
// invoked, the same
// "reduce when it's cheap to, not on every operation" posture the
// original Ratio type used.
type BRat struct {
	num SBig
	den UBig
}

// RZero is the BRat value 0.
var RZero = BRat{num: SZero, den: One}

// ROne is the BRat value 1.
var ROne = BRat{num: SOne, den: One}

// BRatFromSBig wraps a whole number as a BRat with denominator 1.
func BRatFromSBig(n SBig) BRat {
	return BRat{num: n, den: One}
}

// NewBRat builds num/den. Precondition: den is not zero.
func NewBRat(num SBig, den UBig) (BRat, error) {
	if den.IsZero() {
		return BRat{}, errDomain("NewBRat", "zero denominator")
	}
	if num.IsZero() {
		return RZero, nil
	}
	return BRat{num: num, den: den}, nil
}

// Numerator returns r's numerator.
func (r BRat) Numerator() SBig { return r.num }

// Denominator returns r's denominator.
func (r BRat) Denominator() UBig { return r.den }

// IsZero reports whether r is 0.
func (r BRat) IsZero() bool { return r.num.IsZero() }

// Sign returns -1, 0, or +1.
func (r BRat) Sign() int { return r.num.Sign() }

// Negate returns -r.
func (r BRat) Negate() BRat {
	return BRat{num: r.num.Negate(), den: r.den}
}

// Abs returns |r|.
func (r BRat) Abs() BRat {
	return BRat{num: r.num.Abs(), den: r.den}
}

// Reciprocal returns 1/r. Precondition: r is not zero.
func (r BRat) Reciprocal() (BRat, error) {
	if r.IsZero() {
		return BRat{}, errDomain("BRat.Reciprocal", "division by zero")
	}
	mag := r.num.Magnitude()
	return BRat{num: SBig{sign: int8(r.num.Sign()), mag: r.den}, den: mag}, nil
}

// Add returns r+s, over the common denominator den(r)*den(s) without
// any attempt to find a smaller common denominator first — Reduce (or
// the caller's own GCD bookkeeping) is responsible for clean-up.
func (r BRat) Add(s BRat) (BRat, error) {
	rdTimesSn, err := s.num.Multiply(SBigFromUBig(r.den))
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Add")
	}
	sdTimesRn, err := r.num.Multiply(SBigFromUBig(s.den))
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Add")
	}
	num, err := sdTimesRn.Add(rdTimesSn)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Add")
	}
	den, err := r.den.Multiply(s.den)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Add")
	}
	return NewBRat(num, den)
}

// Sub returns r-s.
func (r BRat) Sub(s BRat) (BRat, error) {
	return r.Add(s.Negate())
}

// Multiply returns r*s.
func (r BRat) Multiply(s BRat) (BRat, error) {
	num, err := r.num.Multiply(s.num)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Multiply")
	}
	den, err := r.den.Multiply(s.den)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Multiply")
	}
	return NewBRat(num, den)
}

// Divide returns r/s. Precondition: s is not zero.
func (r BRat) Divide(s BRat) (BRat, error) {
	inv, err := s.Reciprocal()
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Divide")
	}
	return r.Multiply(inv)
}

// Reduce returns r divided through by gcd(|numerator|, denominator).
func (r BRat) Reduce() (BRat, error) {
	if r.IsZero() {
		return RZero, nil
	}
	g, err := r.num.Magnitude().GCD(r.den)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Reduce")
	}
	if g.IsOne() {
		return r, nil
	}
	numMag, err := r.num.Magnitude().Divide(g)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Reduce")
	}
	den, err := r.den.Divide(g)
	if err != nil {
		return BRat{}, wrapf(err, "BRat.Reduce")
	}
	return BRat{num: normSBig(int8(r.num.Sign()), numMag), den: den}, nil
}

// CompareTo returns -1, 0, or +1 as r is less than, equal to, or
// greater than s, via cross-multiplication (both denominators are
// positive by construction, so the comparison direction is preserved).
func (r BRat) CompareTo(s BRat) int {
	lhs, err := r.num.Multiply(SBigFromUBig(s.den))
	if err != nil {
		panic("sicpplus: BRat.CompareTo: " + err.Error())
	}
	rhs, err := s.num.Multiply(SBigFromUBig(r.den))
	if err != nil {
		panic("sicpplus: BRat.CompareTo: " + err.Error())
	}
	return lhs.CompareTo(rhs)
}

// Equal reports whether r and s represent the same rational number.
func (r BRat) Equal(s BRat) bool { return r.CompareTo(s) == 0 }

// String renders r as "num/den", or just "num" when den is 1.
func (r BRat) String() string {
	if r.den.IsOne() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
