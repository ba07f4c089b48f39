package sicpplus

import "math/bits"

// MaxWords is the largest word count a UBig may hold. hiBit must fit
// in a signed 32-bit int and the bit budget is a multiple of 32, so
// MaxWords = floor((2^31 - 1) / 32), matching
// BoundedNatural.MAX_WORDS in the original implementation.
const MaxWords = (1<<31 - 1) / 32

// MaxBits is the bit budget corresponding to MaxWords.
const MaxBits = MaxWords * 32

// UBig is an immutable arbitrary-precision non-negative integer, held
// as a little-endian sequence of 32-bit words with no trailing zero
// word (the empty sequence represents zero). Values are safe to share
// across goroutines: nothing ever mutates the backing array after
// construction.
type UBig struct {
	w []uint32
}

// Zero is the UBig value 0.
var Zero = UBig{}

// One is the UBig value 1.
var One = UBig{w: []uint32{1}}

// ubigFromOwned wraps an already-canonical, already-owned word slice.
// Callers must not alias the slice afterward.
func ubigFromOwned(w []uint32) (UBig, error) {
	w = trim(w)
	if len(w) > MaxWords {
		return UBig{}, errOverflow("UBig", len(w))
	}
	if len(w) == 0 {
		return Zero, nil
	}
	return UBig{w: w}, nil
}

// FromWords builds a UBig from a little-endian word slice, copying it
// so the caller's slice can be reused.
func FromWords(words []uint32) (UBig, error) {
	return ubigFromOwned(cloneWords(words))
}

// FromUint64 builds a UBig from a non-negative 64-bit integer.
func FromUint64(u uint64) UBig {
	if u == 0 {
		return Zero
	}
	hi := uint32(u >> 32)
	lo := uint32(u)
	if hi == 0 {
		return UBig{w: []uint32{lo}}
	}
	return UBig{w: []uint32{lo, hi}}
}

// FromUint64Shifted builds a UBig equal to u << upShift.
func FromUint64Shifted(u uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.FromUint64Shifted", "negative shift")
	}
	if u == 0 {
		return Zero, nil
	}
	base := FromUint64(u)
	return base.ShiftUp(upShift)
}

// IsZero reports whether u is the value 0.
func (u UBig) IsZero() bool { return len(u.w) == 0 }

// IsOne reports whether u is the value 1.
func (u UBig) IsOne() bool { return len(u.w) == 1 && u.w[0] == 1 }

// HiInt returns the canonical word length of u (one past the most
// significant nonzero word).
func (u UBig) HiInt() int { return len(u.w) }

// HiBit returns the 1-based bit index of u's most significant set
// bit, or 0 if u is zero.
func (u UBig) HiBit() int {
	n := len(u.w)
	if n == 0 {
		return 0
	}
	return (n-1)*32 + (32 - bits.LeadingZeros32(u.w[n-1]))
}

// BitLen is an alias for HiBit matching Go big.Int naming.
func (u UBig) BitLen() int { return u.HiBit() }

// Word returns the i'th 32-bit word of u (0 if i is out of range),
// matching BoundedNatural.word.
func (u UBig) Word(i int) uint32 {
	if i < 0 || i >= len(u.w) {
		return 0
	}
	return u.w[i]
}

// Equal reports whether u and v represent the same integer.
func (u UBig) Equal(v UBig) bool {
	return cmpWords(u.w, v.w) == 0
}

// CompareTo returns -1, 0, or +1 as u is less than, equal to, or
// greater than v.
func (u UBig) CompareTo(v UBig) int { return cmpWords(u.w, v.w) }

// CompareToUint64 compares u against the non-negative integer x.
func (u UBig) CompareToUint64(x uint64) int {
	return u.CompareTo(FromUint64(x))
}

// CompareToUint64Shifted compares u against x << upShift. It builds
// x << upShift as a UBig; when that value would exceed MaxWords, u
// (which fits) is reported as the smaller.
func (u UBig) CompareToUint64Shifted(x uint64, upShift int) (int, error) {
	if upShift < 0 {
		return 0, errDomain("UBig.CompareToUint64Shifted", "negative shift")
	}
	if x == 0 {
		if u.IsZero() {
			return 0, nil
		}
		return 1, nil
	}
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		// x << upShift overflows MaxWords: u (which fits) must be smaller.
		return -1, nil
	}
	return u.CompareTo(shifted), nil
}

// Hash returns a 64-bit hash consistent with Equal: equal UBig values
// always hash equal. This lets a UBig key a map through its hash, the
// way the original BoundedNatural.hashCode did for the Java
// collections. SBig and BFlt have no Hash method of their own.
func (u UBig) Hash() uint64 {
	// FNV-1a fold over the canonical words.
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, x := range u.w {
		h ^= uint64(x)
		h *= prime64
	}
	return h
}

// String renders u in decimal.
func (u UBig) String() string { return u.toDecimalString() }
