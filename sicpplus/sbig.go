package sicpplus

// SBig is an immutable signed arbitrary-precision integer: a sign in
// {-1, 0, +1} paired with a non-negative UBig magnitude. The
// invariant sign == 0 iff magnitude.IsZero() always holds for values
// produced by this package's constructors.
type SBig struct {
	sign int8
	mag  UBig
}

// SZero is the SBig value 0.
var SZero = SBig{}

// SOne is the SBig value 1.
var SOne = SBig{sign: 1, mag: One}

// SBigFromUBig wraps a non-negative magnitude as a (non-negative) SBig.
func SBigFromUBig(u UBig) SBig {
	if u.IsZero() {
		return SZero
	}
	return SBig{sign: 1, mag: u}
}

// SBigFromInt64 builds an SBig from a signed 64-bit integer.
func SBigFromInt64(x int64) SBig {
	if x == 0 {
		return SZero
	}
	if x < 0 {
		// Guard against the int64 overflow of -math.MinInt64.
		ux := uint64(-(x + 1)) + 1
		return SBig{sign: -1, mag: FromUint64(ux)}
	}
	return SBig{sign: 1, mag: FromUint64(uint64(x))}
}

// Sign returns -1, 0, or +1.
func (s SBig) Sign() int { return int(s.sign) }

// IsZero reports whether s is 0.
func (s SBig) IsZero() bool { return s.sign == 0 }

// Magnitude returns |s| as a UBig.
func (s SBig) Magnitude() UBig { return s.mag }

// Abs returns |s| as a non-negative SBig.
func (s SBig) Abs() SBig {
	if s.sign < 0 {
		return SBig{sign: 1, mag: s.mag}
	}
	return s
}

// Negate returns -s.
func (s SBig) Negate() SBig {
	if s.sign == 0 {
		return s
	}
	return SBig{sign: -s.sign, mag: s.mag}
}

func normSBig(sign int8, mag UBig) SBig {
	if mag.IsZero() {
		return SZero
	}
	return SBig{sign: sign, mag: mag}
}

// Add returns s+t.
func (s SBig) Add(t SBig) (SBig, error) {
	if s.sign == 0 {
		return t, nil
	}
	if t.sign == 0 {
		return s, nil
	}
	if s.sign == t.sign {
		mag, err := s.mag.Add(t.mag)
		if err != nil {
			return SBig{}, wrapf(err, "SBig.Add")
		}
		return normSBig(s.sign, mag), nil
	}
	// Opposite signs: subtract the smaller magnitude from the larger,
	// keep the sign of whichever magnitude wins.
	switch s.mag.CompareTo(t.mag) {
	case 0:
		return SZero, nil
	case 1:
		mag, _ := s.mag.Subtract(t.mag)
		return normSBig(s.sign, mag), nil
	default:
		mag, _ := t.mag.Subtract(s.mag)
		return normSBig(t.sign, mag), nil
	}
}

// Sub returns s-t.
func (s SBig) Sub(t SBig) (SBig, error) {
	return s.Add(t.Negate())
}

// Multiply returns s*t.
func (s SBig) Multiply(t SBig) (SBig, error) {
	if s.sign == 0 || t.sign == 0 {
		return SZero, nil
	}
	mag, err := s.mag.Multiply(t.mag)
	if err != nil {
		return SBig{}, wrapf(err, "SBig.Multiply")
	}
	return normSBig(s.sign*t.sign, mag), nil
}

// ShiftUp returns s << upShift.
func (s SBig) ShiftUp(upShift int) (SBig, error) {
	if s.sign == 0 {
		return SZero, nil
	}
	mag, err := s.mag.ShiftUp(upShift)
	if err != nil {
		return SBig{}, wrapf(err, "SBig.ShiftUp")
	}
	return normSBig(s.sign, mag), nil
}

// ShiftDown returns s >> downShift, truncating toward zero.
func (s SBig) ShiftDown(downShift int) SBig {
	if s.sign == 0 {
		return SZero
	}
	return normSBig(s.sign, s.mag.ShiftDown(downShift))
}

// DivideAndRemainder returns (q, r) such that s = q*t + r, truncating
// q toward zero (Go/Java "T-division" convention) and taking r's sign
// from s. Precondition: t is not zero.
func (s SBig) DivideAndRemainder(t SBig) (SBig, SBig, error) {
	if t.sign == 0 {
		return SBig{}, SBig{}, errDomain("SBig.DivideAndRemainder", "division by zero")
	}
	if s.sign == 0 {
		return SZero, SZero, nil
	}
	qm, rm, err := s.mag.DivideAndRemainder(t.mag)
	if err != nil {
		return SBig{}, SBig{}, wrapf(err, "SBig.DivideAndRemainder")
	}
	q := normSBig(s.sign*t.sign, qm)
	r := normSBig(s.sign, rm)
	return q, r, nil
}

// divideExactSmall divides s by a small positive divisor that is
// known (by algebraic construction at the call site — Toom-Cook-3
// interpolation, see ubig_mul.go) to divide it with zero remainder.
// It is an internal helper, not part of the public SBig contract.
func (s SBig) divideExactSmall(d uint32) SBig {
	if s.sign == 0 {
		return SZero
	}
	q, _, err := s.mag.DivideAndRemainder(FromUint64(uint64(d)))
	if err != nil {
		panic("sicpplus: divideExactSmall: " + err.Error())
	}
	return normSBig(s.sign, q)
}

// CompareTo returns -1, 0, or +1 as s is less than, equal to, or
// greater than t.
func (s SBig) CompareTo(t SBig) int {
	if s.sign != t.sign {
		if s.sign < t.sign {
			return -1
		}
		return 1
	}
	if s.sign == 0 {
		return 0
	}
	c := s.mag.CompareTo(t.mag)
	if s.sign < 0 {
		c = -c
	}
	return c
}

// Equal reports whether s and t represent the same integer.
func (s SBig) Equal(t SBig) bool { return s.CompareTo(t) == 0 }

// String renders s in decimal, with a leading '-' if negative.
func (s SBig) String() string {
	if s.sign < 0 {
		return "-" + s.mag.String()
	}
	return s.mag.String()
}
