package sicpplus

import "testing"

// bigRandomWords returns a deterministic (not-actually-random, but
// varied) word slice of length n for exercising the multiply/square
// regimes without pulling in the PRNG collaborator (that lives in
// testutil and is meant for binary64 vectors, not raw words).
func bigRandomWords(n int, seed uint32) []uint32 {
	w := make([]uint32, n)
	x := seed | 1
	for i := range w {
		x = x*1664525 + 1013904223
		w[i] = x
	}
	return trim(w)
}

func TestMultiplySchoolbookMatchesGradeSchool(t *testing.T) {
	a := FromUint64(123456789)
	b := FromUint64(987654321)
	gotv, goterr := a.Multiply(b)
	got := mustUBig(t, gotv, goterr)
	want := FromUint64(123456789 * 987654321)
	if !got.Equal(want) {
		t.Fatalf("Multiply: got %s want %s", got, want)
	}
}

func TestSquareMatchesMultiplySelf(t *testing.T) {
	sizes := []int{1, 3, 40, 90, 260}
	for _, n := range sizes {
		u, err := ubigFromOwned(bigRandomWords(n, uint32(n)*7+1))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		sqv, sqerr := u.Square()
		sq := mustUBig(t, sqv, sqerr)
		mulv, mulerr := u.Multiply(u)
		mul := mustUBig(t, mulv, mulerr)
		if !sq.Equal(mul) {
			t.Fatalf("n=%d: Square() != Multiply(self)", n)
		}
	}
}

// TestMultiplyRegimesAgree forces the same operands through
// schoolbook, Karatsuba, and Toom-Cook-3 by temporarily lowering the
// regime thresholds, and checks all three answers agree. This is the
// property that most directly justifies having three implementations
// of the same operation.
func TestMultiplyRegimesAgree(t *testing.T) {
	origKMul, origTMul := kMul, tMul
	origKSq, origTSq := kSq, tSq
	defer func() { kMul, tMul = origKMul, origTMul; kSq, tSq = origKSq, origTSq }()

	a := bigRandomWords(50, 11)
	b := bigRandomWords(47, 23)

	kMul, tMul = 1000000, 2000000 // force schoolbook
	schoolbook, err := mulDispatch(a, b)
	if err != nil {
		t.Fatalf("schoolbook: %v", err)
	}

	kMul, tMul = 5, 2000000 // force Karatsuba
	karatsuba, err := mulDispatch(a, b)
	if err != nil {
		t.Fatalf("karatsuba: %v", err)
	}
	if cmpWords(schoolbook, karatsuba) != 0 {
		t.Fatalf("karatsuba disagrees with schoolbook")
	}

	kMul, tMul = 5, 10 // force Toom-Cook-3
	toom3, err := mulDispatch(a, b)
	if err != nil {
		t.Fatalf("toom3: %v", err)
	}
	if cmpWords(schoolbook, toom3) != 0 {
		t.Fatalf("toom3 disagrees with schoolbook")
	}
}

func TestSquareRegimesAgree(t *testing.T) {
	origKSq, origTSq := kSq, tSq
	defer func() { kSq, tSq = origKSq, origTSq }()

	a := bigRandomWords(60, 99)

	kSq, tSq = 1000000, 2000000
	schoolbook, err := squareDispatch(a)
	if err != nil {
		t.Fatalf("schoolbook: %v", err)
	}

	kSq, tSq = 5, 2000000
	karatsuba, err := squareDispatch(a)
	if err != nil {
		t.Fatalf("karatsuba: %v", err)
	}
	if cmpWords(schoolbook, karatsuba) != 0 {
		t.Fatalf("karatsuba square disagrees with schoolbook square")
	}

	kSq, tSq = 5, 10
	toom3, err := squareDispatch(a)
	if err != nil {
		t.Fatalf("toom3: %v", err)
	}
	if cmpWords(schoolbook, toom3) != 0 {
		t.Fatalf("toom3 square disagrees with schoolbook square")
	}
}

func TestMultiplyByZeroAndOne(t *testing.T) {
	a := FromUint64(123456789)
	zv, zerr := a.Multiply(Zero)
	if got := mustUBig(t, zv, zerr); !got.IsZero() {
		t.Fatalf("a*0 != 0")
	}
	ov, oerr := a.Multiply(One)
	if got := mustUBig(t, ov, oerr); !got.Equal(a) {
		t.Fatalf("a*1 != a")
	}
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	a := FromUint64(1234567)
	b := FromUint64(89)
	c := FromUint64(101112)
	bcv, bcerr := b.Add(c)
	bc := mustUBig(t, bcv, bcerr)
	lhsv, lhserr := a.Multiply(bc)
	lhs := mustUBig(t, lhsv, lhserr)
	abv, aberr := a.Multiply(b)
	ab := mustUBig(t, abv, aberr)
	acv, acerr := a.Multiply(c)
	ac := mustUBig(t, acv, acerr)
	rhsv, rhserr := ab.Add(ac)
	rhs := mustUBig(t, rhsv, rhserr)
	if !lhs.Equal(rhs) {
		t.Fatalf("a*(b+c) != a*b+a*c: %s vs %s", lhs, rhs)
	}
}
