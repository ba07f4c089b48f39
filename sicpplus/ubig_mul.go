package sicpplus

import "math/bits"

// Multiply returns u*v, choosing among schoolbook, Karatsuba, and
// Toom-Cook-3 by operand size (spec §4.B).
func (u UBig) Multiply(v UBig) (UBig, error) {
	if u.IsZero() || v.IsZero() {
		return Zero, nil
	}
	if u.IsOne() {
		return v, nil
	}
	if v.IsOne() {
		return u, nil
	}
	product, err := mulDispatch(u.w, v.w)
	if err != nil {
		return UBig{}, wrapf(err, "UBig.Multiply")
	}
	return ubigFromOwned(product)
}

// MultiplyUint64 returns u*x, using a dedicated single/double-word
// multiplier pass (the analogue of BoundedNatural.multiply(long)).
func (u UBig) MultiplyUint64(x uint64) (UBig, error) {
	if x == 0 || u.IsZero() {
		return Zero, nil
	}
	if x == 1 {
		return u, nil
	}
	lo := uint32(x)
	hi := uint32(x >> 32)
	n0 := len(u.w)
	out := make([]uint32, n0+2)
	var carry uint64
	for i := 0; i < n0; i++ {
		p := uint64(u.w[i])*uint64(lo) + carry
		out[i] = uint32(p)
		carry = p >> 32
	}
	out[n0] = uint32(carry)
	if hi != 0 {
		carry = 0
		for i := 0; i < n0; i++ {
			p := uint64(u.w[i])*uint64(hi) + uint64(out[i+1]) + carry
			out[i+1] = uint32(p)
			carry = p >> 32
		}
		out[n0+1] = uint32(carry)
	}
	return ubigFromOwned(out)
}

// MultiplyUint64Shifted returns u * (x << upShift).
func (u UBig) MultiplyUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errDomain("UBig.MultiplyUint64Shifted", "negative shift")
	}
	if x == 0 || u.IsZero() {
		return Zero, nil
	}
	if upShift == 0 {
		return u.MultiplyUint64(x)
	}
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		return UBig{}, wrapf(err, "UBig.MultiplyUint64Shifted")
	}
	return u.Multiply(shifted)
}

// Square returns u*u, using the doubled-off-diagonal identity at the
// schoolbook level and the same regime thresholds as Multiply.
func (u UBig) Square() (UBig, error) {
	if u.IsZero() {
		return Zero, nil
	}
	if u.IsOne() {
		return One, nil
	}
	sq, err := squareDispatch(u.w)
	if err != nil {
		return UBig{}, wrapf(err, "UBig.Square")
	}
	return ubigFromOwned(sq)
}

// ---------------------------------------------------------------
// regime dispatch
// ---------------------------------------------------------------

func mulDispatch(a, b []uint32) ([]uint32, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	switch {
	case n < kMul:
		return mulSchoolbook(a, b), nil
	case n < tMul:
		return mulKaratsuba(a, b)
	default:
		return mulToom3(a, b)
	}
}

func squareDispatch(a []uint32) ([]uint32, error) {
	n := len(a)
	switch {
	case n < kSq:
		return squareSchoolbook(a), nil
	case n < tSq:
		return squareKaratsuba(a)
	default:
		return squareToom3(a)
	}
}

// ---------------------------------------------------------------
// schoolbook
// ---------------------------------------------------------------

func mulSchoolbook(a, b []uint32) []uint32 {
	a, b = trim(a), trim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			t := uint64(ai)*uint64(bj) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t)
			carry = t >> 32
		}
		k := i + len(b)
		for carry != 0 {
			t := uint64(out[k]) + carry
			out[k] = uint32(t)
			carry = t >> 32
			k++
		}
	}
	return trim(out)
}

// squareSchoolbook computes a*a using the doubled-off-diagonal
// identity: a^2 = sum(a_i^2 * B^2i) + 2*sum_{i<j}(a_i*a_j*B^(i+j)),
// halving the number of cross-multiplications versus a plain
// schoolbook multiply(a, a).
func squareSchoolbook(a []uint32) []uint32 {
	a = trim(a)
	n := len(a)
	if n == 0 {
		return nil
	}
	// cross holds sum_{i<j} a_i*a_j*B^(i+j), undoubled, which always
	// fits comfortably in 2n+1 words.
	cross := make([]uint32, 2*n+1)
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := i + 1; j < n; j++ {
			t := uint64(a[i])*uint64(a[j]) + uint64(cross[i+j]) + carry
			cross[i+j] = uint32(t)
			carry = t >> 32
		}
		k := i + n
		for carry != 0 {
			t := uint64(cross[k]) + carry
			cross[k] = uint32(t)
			carry = t >> 32
			k++
		}
	}
	doubled := shiftLeftWords(trim(cross), 1)

	// diag holds sum a_i^2 * B^2i.
	diag := make([]uint32, 2*n+1)
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul32(a[i], a[i])
		t := uint64(lo) + uint64(diag[2*i])
		diag[2*i] = uint32(t)
		carry := t >> 32
		t2 := uint64(hi) + uint64(diag[2*i+1]) + carry
		diag[2*i+1] = uint32(t2)
		carry = t2 >> 32
		k := 2*i + 2
		for carry != 0 {
			t3 := uint64(diag[k]) + carry
			diag[k] = uint32(t3)
			carry = t3 >> 32
			k++
		}
	}
	return trim(addWords(trim(diag), doubled))
}

// ---------------------------------------------------------------
// slice helpers for splitting operands into limbs
// ---------------------------------------------------------------

func lowWords(a []uint32, k int) []uint32 {
	if k > len(a) {
		k = len(a)
	}
	return a[:k]
}

func highWords(a []uint32, k int) []uint32 {
	if k > len(a) {
		return nil
	}
	return a[k:]
}

func midWords(a []uint32, lo, hi int) []uint32 {
	if lo > len(a) {
		lo = len(a)
	}
	if hi > len(a) {
		hi = len(a)
	}
	if hi < lo {
		hi = lo
	}
	return a[lo:hi]
}

// ---------------------------------------------------------------
// Karatsuba
// ---------------------------------------------------------------

func mulKaratsuba(a, b []uint32) ([]uint32, error) {
	a, b = trim(a), trim(b)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < kMul {
		return mulSchoolbook(a, b), nil
	}
	half := (n + 1) / 2
	a0, a1 := lowWords(a, half), highWords(a, half)
	b0, b1 := lowWords(b, half), highWords(b, half)

	z0, err := mulKaratsuba(a0, b0)
	if err != nil {
		return nil, wrapf(err, "mulKaratsuba(a0,b0)")
	}
	z2, err := mulKaratsuba(a1, b1)
	if err != nil {
		return nil, wrapf(err, "mulKaratsuba(a1,b1)")
	}
	sa := addWords(a0, a1)
	sb := addWords(b0, b1)
	cross, err := mulKaratsuba(sa, sb)
	if err != nil {
		return nil, wrapf(err, "mulKaratsuba(a0+a1,b0+b1)")
	}
	z1 := subWords(subWords(cross, z0), z2)

	result := addWords(z0, shiftLeftWords(z1, 32*half))
	result = addWords(result, shiftLeftWords(z2, 64*half))
	if len(result) > MaxWords {
		return nil, errOverflow("mulKaratsuba", len(result))
	}
	return result, nil
}

func squareKaratsuba(a []uint32) ([]uint32, error) {
	a = trim(a)
	n := len(a)
	if n < kSq {
		return squareSchoolbook(a), nil
	}
	half := (n + 1) / 2
	a0, a1 := lowWords(a, half), highWords(a, half)

	z0, err := squareKaratsuba(a0)
	if err != nil {
		return nil, wrapf(err, "squareKaratsuba(a0)")
	}
	z2, err := squareKaratsuba(a1)
	if err != nil {
		return nil, wrapf(err, "squareKaratsuba(a1)")
	}
	sa := addWords(a0, a1)
	s, err := squareKaratsuba(sa)
	if err != nil {
		return nil, wrapf(err, "squareKaratsuba(a0+a1)")
	}
	crossDouble := subWords(subWords(s, z0), z2) // == 2*a0*a1

	result := addWords(z0, shiftLeftWords(crossDouble, 32*half))
	result = addWords(result, shiftLeftWords(z2, 64*half))
	if len(result) > MaxWords {
		return nil, errOverflow("squareKaratsuba", len(result))
	}
	return result, nil
}

// ---------------------------------------------------------------
// Toom-Cook-3
// ---------------------------------------------------------------

// mulToom3 multiplies two non-negative operands by evaluating each at
// five points (0, 1, -1, 2, infinity), multiplying pointwise, and
// interpolating the product polynomial's five coefficients back out.
//
// Split a = a2*B^2k + a1*B^k + a0 (b likewise), each ai < B^k. Let
// p(x) = a0 + a1 x + a2 x^2, q(x) = b0 + b1 x + b2 x^2, so
// r(x) = p(x)q(x) = c0 + c1 x + c2 x^2 + c3 x^3 + c4 x^4 and the
// product we want is r(B^k).
//
// Evaluating:
//
//	r(0)  = c0
//	r(1)  = c0+c1+c2+c3+c4
//	r(-1) = c0-c1+c2-c3+c4
//	r(2)  = c0+2c1+4c2+8c3+16c4
//	r(inf)= c4      (the leading coefficient, i.e. a2*b2)
//
// Set A = r(1)-c0-c4 = c1+c2+c3, B' = r(-1)-c0-c4 = -c1+c2-c3,
// C = r(2)-c0-16c4 = 2c1+4c2+8c3. Then
//
//	c2 = (A+B')/2
//	D  = (A-B')/2 = c1+c3
//	E  = (C-4c2)/2 = c1+4c3
//	c3 = (E-D)/3
//	c1 = D-c3
//
// Every division above is exact by construction of A, B', C — no
// pack repo implements Toom-Cook-3 end to end, so this interpolation
// is derived directly from the five evaluation points rather than
// transcribed from a reference.
func mulToom3(a, b []uint32) ([]uint32, error) {
	a, b = trim(a), trim(b)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < tMul {
		return mulKaratsuba(a, b)
	}
	k := (n + 2) / 3

	a0, a1, a2 := lowWords(a, k), midWords(a, k, 2*k), highWords(a, 2*k)
	b0, b1, b2 := lowWords(b, k), midWords(b, k, 2*k), highWords(b, 2*k)

	ua0, ua1, ua2 := UBig{w: cloneWords(a0)}, UBig{w: cloneWords(a1)}, UBig{w: cloneWords(a2)}
	ub0, ub1, ub2 := UBig{w: cloneWords(b0)}, UBig{w: cloneWords(b1)}, UBig{w: cloneWords(b2)}

	evalPoint := func(u0, u1, u2 UBig) (p0, p1, pm1, p2 SBig, err error) {
		p0 = SBigFromUBig(u0)
		s1, err := u0.Add(u1)
		if err != nil {
			return
		}
		s1, err = s1.Add(u2)
		if err != nil {
			return
		}
		p1 = SBigFromUBig(s1)
		pm1, err = SBigFromUBig(u0).Add(SBigFromUBig(u2))
		if err != nil {
			return
		}
		pm1, err = pm1.Sub(SBigFromUBig(u1))
		if err != nil {
			return
		}
		u1x2, err := u1.ShiftUp(1)
		if err != nil {
			return
		}
		u2x4, err := u2.ShiftUp(2)
		if err != nil {
			return
		}
		s2, err := u0.Add(u1x2)
		if err != nil {
			return
		}
		s2, err = s2.Add(u2x4)
		if err != nil {
			return
		}
		p2 = SBigFromUBig(s2)
		return
	}

	pa0, pa1, pam1, pa2, err := evalPoint(ua0, ua1, ua2)
	if err != nil {
		return nil, wrapf(err, "mulToom3: evaluate a")
	}
	pb0, pb1, pbm1, pb2, err := evalPoint(ub0, ub1, ub2)
	if err != nil {
		return nil, wrapf(err, "mulToom3: evaluate b")
	}

	mulViaDispatch := func(x, y SBig) (SBig, error) {
		if x.IsZero() || y.IsZero() {
			return SZero, nil
		}
		mag, err := mulDispatch(x.Magnitude().w, y.Magnitude().w)
		if err != nil {
			return SBig{}, err
		}
		ub, err := ubigFromOwned(mag)
		if err != nil {
			return SBig{}, err
		}
		return normSBig(int8(x.Sign()*y.Sign()), ub), nil
	}

	v0, err := mulViaDispatch(pa0, pb0)
	if err != nil {
		return nil, wrapf(err, "mulToom3: r(0)")
	}
	v1, err := mulViaDispatch(pa1, pb1)
	if err != nil {
		return nil, wrapf(err, "mulToom3: r(1)")
	}
	vm1, err := mulViaDispatch(pam1, pbm1)
	if err != nil {
		return nil, wrapf(err, "mulToom3: r(-1)")
	}
	v2, err := mulViaDispatch(pa2, pb2)
	if err != nil {
		return nil, wrapf(err, "mulToom3: r(2)")
	}
	vinf, err := mulViaDispatch(SBigFromUBig(ua2), SBigFromUBig(ub2))
	if err != nil {
		return nil, wrapf(err, "mulToom3: r(inf)")
	}

	c0 := v0
	c4 := vinf

	c4x16, err := c4.ShiftUp(4)
	if err != nil {
		return nil, wrapf(err, "mulToom3: 16*c4")
	}
	A, err := v1.Sub(c0)
	if err == nil {
		A, err = A.Sub(c4)
	}
	if err != nil {
		return nil, wrapf(err, "mulToom3: A")
	}
	Bc, err := vm1.Sub(c0)
	if err == nil {
		Bc, err = Bc.Sub(c4)
	}
	if err != nil {
		return nil, wrapf(err, "mulToom3: B")
	}
	C, err := v2.Sub(c0)
	if err == nil {
		C, err = C.Sub(c4x16)
	}
	if err != nil {
		return nil, wrapf(err, "mulToom3: C")
	}

	sumAB, err := A.Add(Bc)
	if err != nil {
		return nil, wrapf(err, "mulToom3: A+B")
	}
	c2 := sumAB.divideExactSmall(2)

	diffAB, err := A.Sub(Bc)
	if err != nil {
		return nil, wrapf(err, "mulToom3: A-B")
	}
	D := diffAB.divideExactSmall(2)

	c2x4, err := c2.ShiftUp(2)
	if err != nil {
		return nil, wrapf(err, "mulToom3: 4*c2")
	}
	CminusC2x4, err := C.Sub(c2x4)
	if err != nil {
		return nil, wrapf(err, "mulToom3: C-4c2")
	}
	E := CminusC2x4.divideExactSmall(2)

	EminusD, err := E.Sub(D)
	if err != nil {
		return nil, wrapf(err, "mulToom3: E-D")
	}
	c3 := EminusD.divideExactSmall(3)

	c1, err := D.Sub(c3)
	if err != nil {
		return nil, wrapf(err, "mulToom3: c1")
	}

	// Recombine: result = c0 + c1*B^k + c2*B^2k + c3*B^3k + c4*B^4k.
	result := c0
	terms := []struct {
		c     SBig
		shift int
	}{{c1, 32 * k}, {c2, 64 * k}, {c3, 96 * k}, {c4, 128 * k}}
	for _, t := range terms {
		shifted, err := t.c.ShiftUp(t.shift)
		if err != nil {
			return nil, wrapf(err, "mulToom3: recombine")
		}
		result, err = result.Add(shifted)
		if err != nil {
			return nil, wrapf(err, "mulToom3: recombine")
		}
	}
	if result.Sign() < 0 {
		return nil, errDomain("mulToom3", "negative result from a non-negative product (internal error)")
	}
	return result.Magnitude().w, nil
}

// squareToom3 delegates to mulToom3(a, a). A specialized 3-recursive-
// square variant (mirroring squareKaratsuba's savings over
// mulKaratsuba) is possible but not required for correctness; the
// asymptotic regime crossover is what spec §4.B mandates, not this
// specific constant-factor optimization.
func squareToom3(a []uint32) ([]uint32, error) {
	return mulToom3(a, a)
}
