package sicpplus

import "math/bits"

// TestBit reports whether bit i of u is set. i must be >= 0.
func (u UBig) TestBit(i int) bool {
	wi := i >> 5
	if wi < 0 || wi >= len(u.w) {
		return false
	}
	return (u.w[wi]>>(uint(i)&31))&1 != 0
}

// LoBit returns the 0-based index of u's least significant set bit,
// or 0 if u is zero.
func (u UBig) LoBit() int {
	i := loInt(u.w)
	if i >= len(u.w) {
		return 0
	}
	return i*32 + bits.TrailingZeros32(u.w[i])
}

// SetBit returns u with bit i set. i must be >= 0.
func (u UBig) SetBit(i int) (UBig, error) {
	if i < 0 {
		return UBig{}, errDomain("UBig.SetBit", "negative bit index")
	}
	wi := i >> 5
	n := len(u.w)
	if wi >= n {
		n = wi + 1
	}
	out := make([]uint32, n)
	copy(out, u.w)
	out[wi] |= 1 << (uint(i) & 31)
	return ubigFromOwned(out)
}

// ShiftUp returns u << upShift.
func (u UBig) ShiftUp(upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.ShiftUp", "negative shift")
	}
	return ubigFromOwned(shiftLeftWords(u.w, upShift))
}

// ShiftDown returns u >> downShift, truncating toward zero. It returns
// no error, since shrinking a UBig cannot overflow MaxWords; a negative
// downShift panics.
func (u UBig) ShiftDown(downShift int) UBig {
	if downShift < 0 {
		panic("sicpplus: UBig.ShiftDown: negative shift")
	}
	out, _ := ubigFromOwned(shiftRightWords(u.w, downShift))
	return out
}

// GetShiftedInt returns the least significant 32 bits of u >> downShift,
// truncating. downShift must be >= 0.
func (u UBig) GetShiftedInt(downShift int) uint32 {
	if downShift < 0 {
		panic("sicpplus: UBig.GetShiftedInt: negative shift")
	}
	shifted := shiftRightWords(u.w, downShift)
	if len(shifted) == 0 {
		return 0
	}
	return shifted[0]
}

// GetShiftedLong returns the least significant 64 bits of
// u >> downShift, truncating. downShift must be >= 0.
func (u UBig) GetShiftedLong(downShift int) uint64 {
	if downShift < 0 {
		panic("sicpplus: UBig.GetShiftedLong: negative shift")
	}
	shifted := shiftRightWords(u.w, downShift)
	var lo, hi uint32
	if len(shifted) > 0 {
		lo = shifted[0]
	}
	if len(shifted) > 1 {
		hi = shifted[1]
	}
	return uint64(hi)<<32 | uint64(lo)
}

// RoundUp implements the sticky-OR predicate the rounding bridge
// (round.go) uses for round-half-to-even: given a bit position e >= 1
// that marks the boundary between kept and discarded bits, RoundUp
// reports whether the discarded part is strictly greater than half a
// unit in the last kept place — i.e. the guard bit (position e-1) is
// set AND some bit below it is also set. When RoundUp is false but
// the guard bit is set, the discarded part is exactly half, and the
// tie must be broken by the caller inspecting the kept LSB (bit e).
func (u UBig) RoundUp(e int) bool {
	if e < 1 {
		return false
	}
	if !u.TestBit(e - 1) {
		return false
	}
	if u.IsZero() {
		return false
	}
	return u.LoBit() < e-1
}
