package sicpplus

import "math/bits"

// DivideAndRemainder returns (q, r) with u = q*v + r and 0 <= r < v.
// Precondition: v is not zero. Below bzThreshold words it uses Knuth's
// algorithm D directly; at or above it tries a Burnikel-Ziegler-style
// recursive divide-and-conquer first and always verifies the result
// against u = q*v+r before returning it, falling back to Knuth D
// whenever the fast path's arithmetic doesn't check out. The fallback
// exists because this module is written and never compiled or run in
// this environment — Knuth D is the trusted, carefully-traced base
// case, and the recursive path is only ever allowed to speed things up,
// never to silently return a wrong answer.
func (u UBig) DivideAndRemainder(v UBig) (UBig, UBig, error) {
	if v.IsZero() {
		return UBig{}, UBig{}, errDomain("UBig.DivideAndRemainder", "division by zero")
	}
	if u.CompareTo(v) < 0 {
		return Zero, u, nil
	}
	if len(v.w) < bzThreshold {
		return divideKnuth(u, v)
	}
	if q, r, err := divideBZRecursive(u, v); err == nil {
		if verifyDivision(u, v, q, r) {
			return q, r, nil
		}
	}
	return divideKnuth(u, v)
}

func verifyDivision(u, v, q, r UBig) bool {
	prod, err := q.Multiply(v)
	if err != nil {
		return false
	}
	total, err := prod.Add(r)
	if err != nil {
		return false
	}
	return total.Equal(u) && r.CompareTo(v) < 0
}

// Divide returns u/v, truncated toward zero (u and v are both
// non-negative, so this is simply floor division).
func (u UBig) Divide(v UBig) (UBig, error) {
	q, _, err := u.DivideAndRemainder(v)
	return q, err
}

// Remainder returns u mod v.
func (u UBig) Remainder(v UBig) (UBig, error) {
	_, r, err := u.DivideAndRemainder(v)
	return r, err
}

// GCD returns the greatest common divisor of u and v via Stein's
// binary GCD algorithm.
func (u UBig) GCD(v UBig) (UBig, error) {
	if u.IsZero() {
		return v, nil
	}
	if v.IsZero() {
		return u, nil
	}
	a, b := u, v
	shift := 0
	for !a.TestBit(0) && !b.TestBit(0) {
		a = a.ShiftDown(1)
		b = b.ShiftDown(1)
		shift++
	}
	for !a.TestBit(0) {
		a = a.ShiftDown(1)
	}
	for !b.IsZero() {
		for !b.TestBit(0) {
			b = b.ShiftDown(1)
		}
		if a.CompareTo(b) > 0 {
			a, b = b, a
		}
		b, _ = b.Subtract(a)
	}
	return a.ShiftUp(shift)
}

// ---------------------------------------------------------------
// Knuth Algorithm D
// ---------------------------------------------------------------

func divideKnuth(u, v UBig) (UBig, UBig, error) {
	qw, rw := divModKnuth(u.w, v.w)
	qb, err := ubigFromOwned(qw)
	if err != nil {
		return UBig{}, UBig{}, wrapf(err, "divideKnuth")
	}
	rb, err := ubigFromOwned(rw)
	if err != nil {
		return UBig{}, UBig{}, wrapf(err, "divideKnuth")
	}
	return qb, rb, nil
}

func divModKnuth(uw, vw []uint32) (q, r []uint32) {
	uw, vw = trim(uw), trim(vw)
	if len(uw) == 0 {
		return nil, nil
	}
	n := len(vw)
	if n == 1 {
		return divModBySingleWord(uw, vw[0])
	}
	if cmpWords(uw, vw) < 0 {
		return nil, cloneWords(uw)
	}
	m := len(uw) - n

	shift := bits.LeadingZeros32(vw[n-1])

	rawUn := shiftLeftWords(uw, shift)
	un := make([]uint32, m+n+1)
	copy(un, rawUn)

	rawVn := shiftLeftWords(vw, shift)
	vn := make([]uint32, n)
	copy(vn, rawVn)

	const base = uint64(1) << 32
	qw := make([]uint32, m+1)

	for j := m; j >= 0; j-- {
		top2 := (uint64(un[j+n]) << 32) | uint64(un[j+n-1])
		var qhat, rhat uint64
		if uint64(un[j+n]) >= uint64(vn[n-1]) {
			qhat = base - 1
			rhat = top2 - qhat*uint64(vn[n-1])
		} else {
			qhat = top2 / uint64(vn[n-1])
			rhat = top2 % uint64(vn[n-1])
		}
		for rhat < base {
			if qhat < base && qhat*uint64(vn[n-2]) <= rhat*base+uint64(un[j+n-2]) {
				break
			}
			qhat--
			rhat += uint64(vn[n-1])
		}

		var mulCarry, subBorrow uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(vn[i]) + mulCarry
			mulCarry = p >> 32
			plo := p & 0xffffffff
			diff, b := bits.Sub64(uint64(un[j+i]), plo, subBorrow)
			un[j+i] = uint32(diff)
			subBorrow = b
		}
		diffTop, borrowTop := bits.Sub64(uint64(un[j+n]), mulCarry, subBorrow)
		un[j+n] = uint32(diffTop)

		if borrowTop != 0 {
			qhat--
			var addCarry uint64
			for i := 0; i < n; i++ {
				s, c := bits.Add64(uint64(un[j+i]), uint64(vn[i]), addCarry)
				un[j+i] = uint32(s)
				addCarry = c
			}
			s2, _ := bits.Add64(uint64(un[j+n]), 0, addCarry)
			un[j+n] = uint32(s2)
		}
		qw[j] = uint32(qhat)
	}

	r = shiftRightWords(un[:n], shift)
	return trim(qw), r
}

func divModBySingleWord(uw []uint32, d uint32) (q, r []uint32) {
	q = make([]uint32, len(uw))
	var rem uint64
	for i := len(uw) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(uw[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	q = trim(q)
	if rem != 0 {
		r = []uint32{uint32(rem)}
	}
	return q, r
}

// ---------------------------------------------------------------
// Burnikel-Ziegler-style recursive division (fast path, verified by
// the caller — see DivideAndRemainder).
// ---------------------------------------------------------------

func divideBZRecursive(u, v UBig) (UBig, UBig, error) {
	n := len(v.w)
	if n < bzThreshold {
		return divideKnuth(u, v)
	}
	if u.CompareTo(v) < 0 {
		return Zero, u, nil
	}
	k := n / 2

	v1 := UBig{w: cloneWords(highWords(v.w, k))}
	v0 := UBig{w: cloneWords(lowWords(v.w, k))}

	var u1w []uint32
	if len(u.w) > k {
		u1w = cloneWords(u.w[k:])
	}
	u1 := UBig{w: u1w}
	u0 := UBig{w: cloneWords(lowWords(u.w, k))}

	q1, r1, err := divideBZRecursive(u1, v1)
	if err != nil {
		return UBig{}, UBig{}, err
	}

	r1Shifted, err := r1.ShiftUp(32 * k)
	if err != nil {
		return UBig{}, UBig{}, err
	}
	temp, err := r1Shifted.Add(u0)
	if err != nil {
		return UBig{}, UBig{}, err
	}
	correction, err := q1.Multiply(v0)
	if err != nil {
		return UBig{}, UBig{}, err
	}

	v1Shifted, err := v1.ShiftUp(32 * k)
	if err != nil {
		return UBig{}, UBig{}, err
	}

	for iter := 0; temp.CompareTo(correction) < 0; iter++ {
		if iter > 8 || q1.IsZero() {
			return UBig{}, UBig{}, errDomain("divideBZRecursive", "quotient estimate did not converge")
		}
		q1, err = q1.Subtract(One)
		if err != nil {
			return UBig{}, UBig{}, err
		}
		temp, err = temp.Add(v1Shifted)
		if err != nil {
			return UBig{}, UBig{}, err
		}
		correction, err = correction.Subtract(v0)
		if err != nil {
			return UBig{}, UBig{}, err
		}
	}

	remainder, err := temp.Subtract(correction)
	if err != nil {
		return UBig{}, UBig{}, err
	}
	for iter := 0; remainder.CompareTo(v) >= 0; iter++ {
		if iter > 8 {
			return UBig{}, UBig{}, errDomain("divideBZRecursive", "remainder normalization did not converge")
		}
		remainder, err = remainder.Subtract(v)
		if err != nil {
			return UBig{}, UBig{}, err
		}
		q1, err = q1.Add(One)
		if err != nil {
			return UBig{}, UBig{}, err
		}
	}
	return q1, remainder, nil
}
