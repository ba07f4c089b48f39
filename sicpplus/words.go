package sicpplus

import "math/bits"

// Word-array primitives: the low-level helpers every higher layer
//(UBig, and transitively SBig/BRat/BFlt) is built from. Words are
// little-endian (index 0 is least significant) and every exported
// helper here either assumes, or restores, the "no trailing zero word"
// canonical form that UBig requires.

// trim drops trailing zero words, returning the canonical form. It
// never copies; callers that need an owned buffer must copy first.
func trim(w []uint32) []uint32 {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

// hiInt returns one past the index of the most significant nonzero
// word (i.e. the canonical word length). hiInt(trim(w)) == hiInt(w).
func hiInt(w []uint32) int {
	return len(trim(w))
}

// loInt returns the index of the least significant nonzero word, or 0
// if w is entirely zero.
func loInt(w []uint32) int {
	for i, x := range w {
		if x != 0 {
			return i
		}
	}
	return 0
}

// cloneWords returns an owned copy of w, trimmed to canonical form.
func cloneWords(w []uint32) []uint32 {
	w = trim(w)
	if len(w) == 0 {
		return nil
	}
	out := make([]uint32, len(w))
	copy(out, w)
	return out
}

// cmpWords compares two canonical (trimmed) word sequences as
// unsigned integers.
func cmpWords(a, b []uint32) int {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addWords returns a+b as a freshly allocated canonical word slice.
func addWords(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	i := 0
	for ; i < len(b); i++ {
		var sum uint32
		sum, carry = bits.Add32(a[i], b[i], carry)
		out[i] = sum
	}
	for ; i < len(a); i++ {
		var sum uint32
		sum, carry = bits.Add32(a[i], 0, carry)
		out[i] = sum
	}
	out[i] = carry
	return trim(out)
}

// addWordSmall adds a single small value u (0 <= u < 2^32) to a,
// returning a freshly allocated canonical word slice.
func addWordSmall(a []uint32, u uint32) []uint32 {
	out := make([]uint32, len(a)+1)
	carry := u
	i := 0
	for ; i < len(a) && carry != 0; i++ {
		var sum uint32
		sum, carry = bits.Add32(a[i], carry, 0)
		out[i] = sum
	}
	for ; i < len(a); i++ {
		out[i] = a[i]
	}
	out[len(a)] = carry
	return trim(out)
}

// subWords returns a-b, assuming a >= b as unsigned integers. The
// caller must have already checked cmpWords(a, b) >= 0.
func subWords(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	i := 0
	for ; i < len(b); i++ {
		var diff uint32
		diff, borrow = bits.Sub32(a[i], b[i], borrow)
		out[i] = diff
	}
	for ; i < len(a); i++ {
		var diff uint32
		diff, borrow = bits.Sub32(a[i], 0, borrow)
		out[i] = diff
	}
	return trim(out)
}

// shiftLeftWords computes a << upShift (upShift >= 0), returning a
// freshly allocated canonical word slice. Decomposes the shift into a
// whole-word part and a sub-word part the way
// BoundedNatural.shiftUpByWords/shiftUpByBits does.
func shiftLeftWords(a []uint32, upShift int) []uint32 {
	a = trim(a)
	if len(a) == 0 || upShift == 0 {
		return cloneWords(a)
	}
	iShift := upShift >> 5
	bShift := uint(upShift & 0x1f)
	n := len(a)
	out := make([]uint32, n+iShift+1)
	if bShift == 0 {
		copy(out[iShift:], a)
		return trim(out)
	}
	var carry uint32
	for i := 0; i < n; i++ {
		out[i+iShift] = (a[i] << bShift) | carry
		carry = a[i] >> (32 - bShift)
	}
	out[n+iShift] = carry
	return trim(out)
}

// shiftRightWords computes a >> downShift (downShift >= 0), truncating
// toward zero (the bits shifted out are discarded).
func shiftRightWords(a []uint32, downShift int) []uint32 {
	a = trim(a)
	if len(a) == 0 {
		return nil
	}
	iShift := downShift >> 5
	bShift := uint(downShift & 0x1f)
	if iShift >= len(a) {
		return nil
	}
	src := a[iShift:]
	n := len(src)
	out := make([]uint32, n)
	if bShift == 0 {
		copy(out, src)
		return trim(out)
	}
	for i := 0; i < n; i++ {
		lo := src[i] >> bShift
		var hi uint32
		if i+1 < n {
			hi = src[i+1] << (32 - bShift)
		}
		out[i] = lo | hi
	}
	return trim(out)
}

// reverseBytes reverses b in place and returns it, used when
// converting between the package's native little-endian word order
// and the big-endian byte sequences required by the string/byte
// interop (spec §6).
func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
