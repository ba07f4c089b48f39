package sicpplus

import "testing"

func mustSBig(t *testing.T, s SBig, err error) SBig {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSBigFromInt64MinValue(t *testing.T) {
	s := SBigFromInt64(-9223372036854775808)
	if s.Sign() != -1 {
		t.Fatalf("sign = %d, want -1", s.Sign())
	}
	want := FromUint64(9223372036854775808)
	if !s.Magnitude().Equal(want) {
		t.Fatalf("magnitude = %s, want %s", s.Magnitude(), want)
	}
}

func TestSBigAddOppositeSigns(t *testing.T) {
	a := SBigFromInt64(100)
	b := SBigFromInt64(-40)
	sumv, sumerr := a.Add(b)
	sum := mustSBig(t, sumv, sumerr)
	if sum.Sign() != 1 || !sum.Magnitude().Equal(FromUint64(60)) {
		t.Fatalf("100 + -40 = %s, want 60", sum)
	}
}

func TestSBigAddOppositeSignsToZero(t *testing.T) {
	a := SBigFromInt64(40)
	b := SBigFromInt64(-40)
	sumv, sumerr := a.Add(b)
	sum := mustSBig(t, sumv, sumerr)
	if !sum.IsZero() {
		t.Fatalf("40 + -40 = %s, want 0", sum)
	}
}

func TestSBigMultiplySigns(t *testing.T) {
	pos := SBigFromInt64(6)
	neg := SBigFromInt64(-7)
	ppv, pperr := pos.Multiply(pos)
	pp := mustSBig(t, ppv, pperr)
	pnv, pnerr := pos.Multiply(neg)
	pn := mustSBig(t, pnv, pnerr)
	nnv, nnerr := neg.Multiply(neg)
	nn := mustSBig(t, nnv, nnerr)
	if pp.Sign() != 1 || pn.Sign() != -1 || nn.Sign() != 1 {
		t.Fatalf("sign propagation wrong: pp=%d pn=%d nn=%d", pp.Sign(), pn.Sign(), nn.Sign())
	}
}

func TestSBigDivideAndRemainderSignOfRemainder(t *testing.T) {
	// -7 / 2 = -3 remainder -1 (T-division: remainder takes dividend's sign).
	a := SBigFromInt64(-7)
	b := SBigFromInt64(2)
	q, r, err := a.DivideAndRemainder(b)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	if q.Sign() != -1 || !q.Magnitude().Equal(FromUint64(3)) {
		t.Fatalf("quotient = %s, want -3", q)
	}
	if r.Sign() != -1 || !r.Magnitude().Equal(FromUint64(1)) {
		t.Fatalf("remainder = %s, want -1", r)
	}
}

func TestSBigCompareTo(t *testing.T) {
	neg := SBigFromInt64(-5)
	zero := SZero
	pos := SBigFromInt64(5)
	if neg.CompareTo(zero) >= 0 {
		t.Fatalf("expected neg < zero")
	}
	if zero.CompareTo(pos) >= 0 {
		t.Fatalf("expected zero < pos")
	}
	if neg.CompareTo(pos) >= 0 {
		t.Fatalf("expected neg < pos")
	}
}
