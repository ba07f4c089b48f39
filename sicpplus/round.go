package sicpplus

import "math"

// round.go implements the one rounding bridge every exact type in
// this package funnels through on its way to binary64: round to
// nearest, ties to even, overflow to a signed infinity, underflow to
// a signed zero. BFlt rounds its own significand/exponent pair
// directly (fast path); BRat rounds by exact integer division of
// numerator by denominator at a computed precision (the slow,
// unimpeachable path an accumulator's correctness can be checked
// against).

func signedZero(negative bool) float64 {
	if negative {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// packRounded builds the binary64 bit pattern for kept * 2^lowBit,
// where kept is already the correctly-rounded significand (ties
// already broken to even by the caller) and may need at most one more
// bit of headroom than its target width due to a rounding carry (e.g.
// 0b111...1 + 1 = 0b1000...0). expectedWidth is the significand width
// the caller rounded to before any such carry.
//
// The carry renormalization below only ever applies at full 53-bit
// (normal) precision. A subnormal rounding (expectedWidth < 53) that
// carries into an extra bit does not need it: the extra bit either
// keeps the result subnormal or lands it exactly on the smallest
// normal value 2^-1022, and in both cases the un-shifted kept/lowBit
// pair already denotes the right value at the right width. Shifting
// it down here would silently divide by two the mantissa of a value
// that just crossed into normal range.
func packRounded(kept UBig, lowBit int, expectedWidth int, negative bool) float64 {
	if kept.IsZero() {
		return signedZero(negative)
	}
	newHiBit := kept.HiBit()
	if expectedWidth == 53 && newHiBit > expectedWidth {
		kept = kept.ShiftDown(1)
		lowBit++
		newHiBit--
	}
	eFinal := lowBit + newHiBit - 1
	if eFinal > 1023 {
		return signedInf(negative)
	}
	var bits uint64
	if eFinal >= -1022 {
		biased := uint64(eFinal + 1023)
		frac := kept.GetShiftedLong(0) &^ (uint64(1) << 52)
		bits = biased<<52 | frac
	} else {
		bits = kept.GetShiftedLong(0)
	}
	if negative {
		bits |= uint64(1) << 63
	}
	return math.Float64frombits(bits)
}

// roundBFltToFloat64 rounds sig*2^exp to the nearest binary64.
func roundBFltToFloat64(f BFlt) float64 {
	if f.IsZero() {
		return 0
	}
	mag := f.sig.Magnitude()
	negative := f.sig.Sign() < 0
	hiBit := mag.HiBit()
	e := hiBit - 1 + f.exp

	lowBit := e - 52
	if lowBit < -1074 {
		lowBit = -1074
	}
	dropExp := lowBit - f.exp

	var kept UBig
	var expectedWidth int
	if dropExp <= 0 {
		kept, _ = mag.ShiftUp(-dropExp)
		expectedWidth = hiBit - dropExp
	} else {
		kept = mag.ShiftDown(dropExp)
		roundUp := mag.RoundUp(dropExp)
		if !roundUp && mag.TestBit(dropExp-1) {
			// Exact tie: round to even.
			roundUp = kept.TestBit(0)
		}
		if roundUp {
			kept, _ = kept.AddUint64(1)
		}
		expectedWidth = hiBit - dropExp
	}
	if expectedWidth < 1 {
		expectedWidth = 1
	}
	return packRounded(kept, lowBit, expectedWidth, negative)
}

// roundBRatToFloat64 rounds the rational num/den to the nearest
// binary64 exactly, by computing the true leading-bit exponent of the
// ratio and then doing one integer division at the precision that
// exponent implies, using the division's remainder (rather than any
// bounded-precision approximation) to break ties. This is the oracle
// path: it is allowed to be slow because it has to be unquestionably
// correct, not merely fast.
func roundBRatToFloat64(r BRat) float64 {
	if r.IsZero() {
		return 0
	}
	num := r.num.Magnitude()
	den := r.den
	negative := r.num.Sign() < 0

	e := ratioLeadingBitExponent(num, den)
	lowBit := e - 52
	if lowBit < -1074 {
		lowBit = -1074
	}
	shift := -lowBit

	var scaledNum, scaledDen UBig
	var err error
	if shift >= 0 {
		scaledNum, err = num.ShiftUp(shift)
		scaledDen = den
	} else {
		scaledNum = num
		scaledDen, err = den.ShiftUp(-shift)
	}
	if err != nil {
		// num/den would need more than MaxWords bits at this scale:
		// that only happens when the ratio is far outside binary64
		// range, which the overflow/underflow packing below already
		// handles from the unscaled exponent.
		if e > 1023 {
			return signedInf(negative)
		}
		return signedZero(negative)
	}

	q, rem, err := scaledNum.DivideAndRemainder(scaledDen)
	if err != nil {
		panic("sicpplus: roundBRatToFloat64: " + err.Error())
	}

	kept := q
	if !rem.IsZero() {
		twiceRem, err := rem.ShiftUp(1)
		if err != nil {
			panic("sicpplus: roundBRatToFloat64: " + err.Error())
		}
		switch twiceRem.CompareTo(scaledDen) {
		case 1:
			kept, _ = q.AddUint64(1)
		case 0:
			if q.TestBit(0) {
				kept, _ = q.AddUint64(1)
			}
		}
	}

	expectedWidth := e - lowBit + 1
	if expectedWidth < 1 {
		expectedWidth = 1
	}
	return packRounded(kept, lowBit, expectedWidth, negative)
}

// ratioLeadingBitExponent returns the integer e such that
// 2^e <= num/den < 2^(e+1). Precondition: num and den are both
// nonzero.
func ratioLeadingBitExponent(num, den UBig) int {
	e0 := num.HiBit() - den.HiBit()
	if e0 >= 0 {
		scaledDen, err := den.ShiftUp(e0)
		if err == nil && num.CompareTo(scaledDen) >= 0 {
			return e0
		}
		return e0 - 1
	}
	scaledNum, err := num.ShiftUp(-e0)
	if err == nil && scaledNum.CompareTo(den) >= 0 {
		return e0
	}
	return e0 - 1
}
