package sicpplus

// Add returns u+v.
func (u UBig) Add(v UBig) (UBig, error) {
	return ubigFromOwned(addWords(u.w, v.w))
}

// AddUint64 returns u+x.
func (u UBig) AddUint64(x uint64) (UBig, error) {
	return u.Add(FromUint64(x))
}

// AddShifted returns u + (v << upShift). It builds v << upShift as a
// temporary word slice (shiftLeftWords splits upShift into whole words
// and leftover bits) and then adds that slice to u; it does not add the
// shifted words of v into u in place.
func (u UBig) AddShifted(v UBig, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.AddShifted", "negative shift")
	}
	if upShift == 0 {
		return u.Add(v)
	}
	return ubigFromOwned(addWords(u.w, shiftLeftWords(v.w, upShift)))
}

// AddUint64Shifted returns u + (x << upShift).
func (u UBig) AddUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.AddUint64Shifted", "negative shift")
	}
	return u.AddShifted(FromUint64(x), upShift)
}

// Subtract returns u-v. Precondition: u >= v.
func (u UBig) Subtract(v UBig) (UBig, error) {
	if cmpWords(u.w, v.w) < 0 {
		return UBig{}, errDomain("UBig.Subtract", "minuend is smaller than subtrahend")
	}
	return ubigFromOwned(subWords(u.w, v.w))
}

// SubtractUint64 returns u-x. Precondition: u >= x.
func (u UBig) SubtractUint64(x uint64) (UBig, error) {
	return u.Subtract(FromUint64(x))
}

// SubtractShifted returns u - (v << upShift). Precondition: u >= v<<upShift.
func (u UBig) SubtractShifted(v UBig, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.SubtractShifted", "negative shift")
	}
	if upShift == 0 {
		return u.Subtract(v)
	}
	shifted := shiftLeftWords(v.w, upShift)
	if cmpWords(u.w, shifted) < 0 {
		return UBig{}, errDomain("UBig.SubtractShifted", "minuend is smaller than shifted subtrahend")
	}
	return ubigFromOwned(subWords(u.w, shifted))
}

// SubtractUint64Shifted returns u - (x << upShift).
func (u UBig) SubtractUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.SubtractUint64Shifted", "negative shift")
	}
	return u.SubtractShifted(FromUint64(x), upShift)
}

// SubtractFrom returns x-u. Precondition: u <= x.
func (u UBig) SubtractFrom(x uint64) (UBig, error) {
	xu := FromUint64(x)
	if cmpWords(xu.w, u.w) < 0 {
		return UBig{}, errDomain("UBig.SubtractFrom", "subtrahend is larger than x")
	}
	return ubigFromOwned(subWords(xu.w, u.w))
}

// SubtractFromShifted returns (x << upShift) - u. Precondition:
// u <= x<<upShift.
func (u UBig) SubtractFromShifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.SubtractFromShifted", "negative shift")
	}
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		return UBig{}, wrapf(err, "UBig.SubtractFromShifted")
	}
	if cmpWords(shifted.w, u.w) < 0 {
		return UBig{}, errDomain("UBig.SubtractFromShifted", "subtrahend is larger than x<<upShift")
	}
	return ubigFromOwned(subWords(shifted.w, u.w))
}

// AbsDiff returns |u-v|, which never fails since it picks the
// direction that keeps the result non-negative.
func (u UBig) AbsDiff(v UBig) UBig {
	if cmpWords(u.w, v.w) >= 0 {
		out, _ := u.Subtract(v)
		return out
	}
	out, _ := v.Subtract(u)
	return out
}
