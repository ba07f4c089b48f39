package sicpplus

import "testing"

func TestDivideAndRemainderIdentity(t *testing.T) {
	cases := []struct{ u, v uint64 }{
		{100, 7}, {1, 1}, {0, 5}, {7, 100}, {0xffffffffffffffff, 3},
	}
	for _, c := range cases {
		u := FromUint64(c.u)
		v := FromUint64(c.v)
		q, r, err := u.DivideAndRemainder(v)
		if err != nil {
			t.Fatalf("u=%d v=%d: %v", c.u, c.v, err)
		}
		qvv, qverr := q.Multiply(v)
		qv := mustUBig(t, qvv, qverr)
		backv, backerr := qv.Add(r)
		back := mustUBig(t, backv, backerr)
		if !back.Equal(u) {
			t.Fatalf("u=%d v=%d: q*v+r = %s, want %d", c.u, c.v, back, c.u)
		}
		if r.CompareTo(v) >= 0 {
			t.Fatalf("u=%d v=%d: remainder %s not smaller than divisor", c.u, c.v, r)
		}
	}
}

func TestDivideByZeroIsDomainError(t *testing.T) {
	_, _, err := One.DivideAndRemainder(Zero)
	if err == nil {
		t.Fatalf("expected domain error dividing by zero")
	}
}

func TestDivideMultiWordDivisor(t *testing.T) {
	uv, uerr := bigRandomUBig(90, 3)
	u := mustUBig(t, uv, uerr)
	vv, verr := bigRandomUBig(40, 17)
	v := mustUBig(t, vv, verr)
	q, r, err := u.DivideAndRemainder(v)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	if !verifyDivision(u, v, q, r) {
		t.Fatalf("q*v+r != u for a multi-word divisor")
	}
}

func TestDivideBZThresholdAgreesWithKnuth(t *testing.T) {
	origBZ := bzThreshold
	defer func() { bzThreshold = origBZ }()

	uv, uerr := bigRandomUBig(700, 5)
	u := mustUBig(t, uv, uerr)
	vv, verr := bigRandomUBig(340, 41)
	v := mustUBig(t, vv, verr)

	bzThreshold = 1000000 // force Knuth D
	qKnuth, rKnuth, err := u.DivideAndRemainder(v)
	if err != nil {
		t.Fatalf("knuth path: %v", err)
	}

	bzThreshold = 100 // force the recursive fast path (still verified internally)
	qBZ, rBZ, err := u.DivideAndRemainder(v)
	if err != nil {
		t.Fatalf("bz path: %v", err)
	}

	if !qKnuth.Equal(qBZ) || !rKnuth.Equal(rBZ) {
		t.Fatalf("recursive division disagrees with Knuth D")
	}
}

func TestGCDBasic(t *testing.T) {
	a := FromUint64(54)
	b := FromUint64(24)
	g, err := a.GCD(b)
	if err != nil {
		t.Fatalf("gcd: %v", err)
	}
	if !g.Equal(FromUint64(6)) {
		t.Fatalf("gcd(54,24) = %s, want 6", g)
	}
}

func TestGCDWithZero(t *testing.T) {
	a := FromUint64(42)
	g, err := a.GCD(Zero)
	if err != nil {
		t.Fatalf("gcd: %v", err)
	}
	if !g.Equal(a) {
		t.Fatalf("gcd(a,0) = %s, want %s", g, a)
	}
}

func TestGCDDividesBoth(t *testing.T) {
	av, aerr := bigRandomUBig(20, 3)
	a := mustUBig(t, av, aerr)
	bv, berr := bigRandomUBig(13, 91)
	b := mustUBig(t, bv, berr)
	g, err := a.GCD(b)
	if err != nil {
		t.Fatalf("gcd: %v", err)
	}
	if g.IsZero() {
		t.Fatalf("gcd of two nonzero values is zero")
	}
	if _, ra, err := a.DivideAndRemainder(g); err != nil || !ra.IsZero() {
		t.Fatalf("gcd does not evenly divide a: rem=%s err=%v", ra, err)
	}
	if _, rb, err := b.DivideAndRemainder(g); err != nil || !rb.IsZero() {
		t.Fatalf("gcd does not evenly divide b: rem=%s err=%v", rb, err)
	}
}

func bigRandomUBig(n int, seed uint32) (UBig, error) {
	return ubigFromOwned(bigRandomWords(n, seed))
}
