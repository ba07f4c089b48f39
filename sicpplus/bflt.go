package sicpplus

import "math"

// BFlt is an immutable exact binary float: a signed significand times
// two to a signed exponent, with no normalization requirement (two
// BFlt values with different (significand, exponent) pairs may denote
// the same real number; arithmetic never needs to agree on a
// canonical form to be exact). This mirrors how the teacher's
// floating-point emulation layer keeps a mantissa and a separate
// binary exponent rather than folding them into one packed word.
type BFlt struct {
	sig SBig
	exp int
}

// FZero is the BFlt value 0.
var FZero = BFlt{sig: SZero, exp: 0}

// NewBFlt builds sig * 2^exp.
func NewBFlt(sig SBig, exp int) BFlt {
	if sig.IsZero() {
		return FZero
	}
	return BFlt{sig: sig, exp: exp}
}

// Significand returns f's significand.
func (f BFlt) Significand() SBig { return f.sig }

// Exponent returns f's binary exponent.
func (f BFlt) Exponent() int { return f.exp }

// IsZero reports whether f is 0.
func (f BFlt) IsZero() bool { return f.sig.IsZero() }

// Sign returns -1, 0, or +1.
func (f BFlt) Sign() int { return f.sig.Sign() }

// Negate returns -f.
func (f BFlt) Negate() BFlt { return BFlt{sig: f.sig.Negate(), exp: f.exp} }

// Abs returns |f|.
func (f BFlt) Abs() BFlt { return BFlt{sig: f.sig.Abs(), exp: f.exp} }

// Add returns f+g, exactly: both significands are shifted up to the
// smaller of the two exponents before adding, so no precision is ever
// lost. This is the reason BFlt exists instead of just rounding after
// every step: accumulators need exact partial sums.
func (f BFlt) Add(g BFlt) (BFlt, error) {
	if f.IsZero() {
		return g, nil
	}
	if g.IsZero() {
		return f, nil
	}
	if f.exp == g.exp {
		sum, err := f.sig.Add(g.sig)
		if err != nil {
			return BFlt{}, wrapf(err, "BFlt.Add")
		}
		return NewBFlt(sum, f.exp), nil
	}
	lo, hi := f, g
	if lo.exp > hi.exp {
		lo, hi = hi, lo
	}
	shifted, err := hi.sig.ShiftUp(hi.exp - lo.exp)
	if err != nil {
		return BFlt{}, wrapf(err, "BFlt.Add")
	}
	sum, err := lo.sig.Add(shifted)
	if err != nil {
		return BFlt{}, wrapf(err, "BFlt.Add")
	}
	return NewBFlt(sum, lo.exp), nil
}

// Sub returns f-g.
func (f BFlt) Sub(g BFlt) (BFlt, error) { return f.Add(g.Negate()) }

// Multiply returns f*g exactly.
func (f BFlt) Multiply(g BFlt) (BFlt, error) {
	if f.IsZero() || g.IsZero() {
		return FZero, nil
	}
	sig, err := f.sig.Multiply(g.sig)
	if err != nil {
		return BFlt{}, wrapf(err, "BFlt.Multiply")
	}
	return NewBFlt(sig, f.exp+g.exp), nil
}

// CompareTo returns -1, 0, or +1 as f is less than, equal to, or
// greater than g.
func (f BFlt) CompareTo(g BFlt) int {
	if f.sig.Sign() != g.sig.Sign() {
		if f.sig.Sign() < g.sig.Sign() {
			return -1
		}
		return 1
	}
	if f.sig.IsZero() {
		return 0
	}
	lo, hi := f, g
	swapped := false
	if lo.exp > hi.exp {
		lo, hi = hi, lo
		swapped = true
	}
	shifted, err := hi.sig.ShiftUp(hi.exp - lo.exp)
	if err != nil {
		panic("sicpplus: BFlt.CompareTo: " + err.Error())
	}
	c := lo.sig.CompareTo(shifted)
	if swapped {
		c = -c
	}
	return c
}

// Equal reports whether f and g denote the same real number, even if
// their (significand, exponent) pairs differ.
func (f BFlt) Equal(g BFlt) bool { return f.CompareTo(g) == 0 }

// FromFloat64 decomposes a finite binary64 bit pattern into its exact
// BFlt representation: |sig| in [2^52, 2^53) for normal values (the
// implicit leading 1 folded in), |sig| < 2^52 for subnormals with a
// fixed exponent of -1074, sig=0 for signed and unsigned zero.
// Precondition: x is finite (no NaN, no infinity).
func FromFloat64(x float64) (BFlt, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return BFlt{}, errDomain("FromFloat64", "input is not finite")
	}
	if x == 0 {
		return FZero, nil
	}
	bits := math.Float64bits(x)
	negative := bits>>63 != 0
	rawExp := int((bits >> 52) & 0x7ff)
	frac := bits & 0xfffffffffffff

	var mantissa uint64
	var exp int
	if rawExp == 0 {
		// Subnormal: no implicit leading bit.
		mantissa = frac
		exp = -1074
	} else {
		mantissa = frac | (1 << 52)
		exp = rawExp - 1075
	}
	mag := FromUint64(mantissa)
	sign := int8(1)
	if negative {
		sign = -1
	}
	sig := normSBig(sign, mag)
	return NewBFlt(sig, exp), nil
}

// ToFloat64 rounds f to the nearest binary64, round-half-to-even, via
// the shared rounding bridge in round.go.
func (f BFlt) ToFloat64() float64 {
	return roundBFltToFloat64(f)
}
