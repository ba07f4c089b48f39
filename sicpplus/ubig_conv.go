package sicpplus

import (
	"strings"
)

// FromString parses an unsigned decimal string into a UBig. No
// sign, no leading "0x", no surrounding whitespace; an empty string is
// a domain error.
func FromString(s string) (UBig, error) {
	if s == "" {
		return UBig{}, errDomain("UBig.FromString", "empty string")
	}
	acc := Zero
	ten := FromUint64(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return UBig{}, errDomain("UBig.FromString", "non-digit character")
		}
		var err error
		acc, err = acc.Multiply(ten)
		if err != nil {
			return UBig{}, wrapf(err, "UBig.FromString")
		}
		acc, err = acc.AddUint64(uint64(c - '0'))
		if err != nil {
			return UBig{}, wrapf(err, "UBig.FromString")
		}
	}
	return acc, nil
}

// FromHexString parses an unsigned hexadecimal string (no "0x" prefix,
// no sign) into a UBig.
func FromHexString(s string) (UBig, error) {
	if s == "" {
		return UBig{}, errDomain("UBig.FromHexString", "empty string")
	}
	nibbles := len(s)
	words := (nibbles*4 + 31) / 32
	w := make([]uint32, words)
	for i := 0; i < nibbles; i++ {
		c := s[nibbles-1-i]
		var v uint32
		switch {
		case c >= '0' && c <= '9':
			v = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = uint32(c-'A') + 10
		default:
			return UBig{}, errDomain("UBig.FromHexString", "non-hex character")
		}
		wi := i / 8
		shift := uint(i%8) * 4
		w[wi] |= v << shift
	}
	return ubigFromOwned(w)
}

// ToHexString renders u in lowercase hexadecimal with no leading
// zeros (the zero value renders as "0").
func (u UBig) ToHexString() string {
	if u.IsZero() {
		return "0"
	}
	const digits = "0123456789abcdef"
	n := len(u.w)
	var b strings.Builder
	b.Grow(n * 8)
	started := false
	for i := n - 1; i >= 0; i-- {
		word := u.w[i]
		for shift := 28; shift >= 0; shift -= 4 {
			nib := (word >> uint(shift)) & 0xf
			if !started {
				if nib == 0 {
					continue
				}
				started = true
			}
			b.WriteByte(digits[nib])
		}
	}
	return b.String()
}

// toDecimalString renders u in decimal via repeated division by
// 10^9 (the largest power of ten whose result fits in one 32-bit
// word), matching the usual bignum-to-decimal technique of grouping
// digits in base-1e9 chunks and printing each chunk zero-padded except
// the most significant.
func (u UBig) toDecimalString() string {
	if u.IsZero() {
		return "0"
	}
	const chunk = 1_000_000_000
	chunkDivisor := FromUint64(chunk)
	var groups []uint32
	rest := u
	for !rest.IsZero() {
		q, r, err := rest.DivideAndRemainder(chunkDivisor)
		if err != nil {
			panic("sicpplus: toDecimalString: " + err.Error())
		}
		groups = append(groups, r.GetShiftedInt(0))
		rest = q
	}
	var b strings.Builder
	last := len(groups) - 1
	for i := last; i >= 0; i-- {
		if i == last {
			b.WriteString(itoa(groups[i]))
		} else {
			s := itoa(groups[i])
			for pad := len(s); pad < 9; pad++ {
				b.WriteByte('0')
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

func itoa(x uint32) string {
	if x == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

// BigEndianBytes renders u as the shortest big-endian two's-complement
// byte slice of a non-negative value: leading zero bytes are dropped,
// except that one zero byte stays in front when the next byte has its
// high bit set (so 255 renders as 00 ff). The zero value renders as a
// single zero byte.
func (u UBig) BigEndianBytes() []byte {
	if u.IsZero() {
		return []byte{0}
	}
	n := len(u.w)
	// One spare byte: after the reversal below it is a leading zero.
	raw := make([]byte, n*4+1)
	for i := 0; i < n; i++ {
		word := u.w[i]
		off := i * 4
		raw[off+0] = byte(word)
		raw[off+1] = byte(word >> 8)
		raw[off+2] = byte(word >> 16)
		raw[off+3] = byte(word >> 24)
	}
	reverseBytes(raw)
	i := 0
	for i < len(raw)-1 && raw[i] == 0 && raw[i+1]&0x80 == 0 {
		i++
	}
	return raw[i:]
}

// FromBigEndianBytes parses a non-negative integer from its
// big-endian byte representation.
func FromBigEndianBytes(b []byte) (UBig, error) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) == 0 {
		return Zero, nil
	}
	n := (len(b) + 3) / 4
	// Pad on the left so the byte slice's length is a multiple of 4,
	// then flip to the package's native little-endian word order.
	padded := make([]byte, n*4)
	copy(padded[n*4-len(b):], b)
	reverseBytes(padded)
	w := make([]uint32, n)
	for i := 0; i < n; i++ {
		off := i * 4
		w[i] = uint32(padded[off]) | uint32(padded[off+1])<<8 | uint32(padded[off+2])<<16 | uint32(padded[off+3])<<24
	}
	return ubigFromOwned(w)
}

// Uint64 projects u onto uint64, failing with a DomainError if u does
// not fit (range overflow of a narrowing projection is a precondition
// violation on the caller's requested type, not a MaxWords overflow).
func (u UBig) Uint64() (uint64, error) {
	if len(u.w) > 2 {
		return 0, errDomain("UBig.Uint64", "value does not fit in uint64")
	}
	return u.GetShiftedLong(0), nil
}

// Uint32 projects u onto uint32, failing with a DomainError if u does
// not fit.
func (u UBig) Uint32() (uint32, error) {
	if len(u.w) > 1 {
		return 0, errDomain("UBig.Uint32", "value does not fit in uint32")
	}
	return u.GetShiftedInt(0), nil
}
