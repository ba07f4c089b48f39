package sicpplus

import (
	"math"
	"testing"
)

func addAllOrFatal(t *testing.T, a Accumulator, xs []float64) Accumulator {
	t.Helper()
	out, err := AddAll(a, xs)
	if err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	return out
}

func TestFloatAccumulatorSignedZeroSum(t *testing.T) {
	a := addAllOrFatal(t, NewFloatAccumulator(), []float64{0, math.Copysign(0, -1), 0})
	got := a.DoubleValue()
	if got != 0 || math.Signbit(got) {
		t.Fatalf("sum of zeros = %v, want +0.0", got)
	}
}

func TestFloatAccumulatorCatastrophicCancellation(t *testing.T) {
	a := addAllOrFatal(t, NewFloatAccumulator(), []float64{1e20, 1.0, -1e20})
	if got := a.DoubleValue(); got != 1.0 {
		t.Fatalf("exact sum = %v, want 1.0", got)
	}
}

func TestFloatAccumulatorSubnormalSum(t *testing.T) {
	tiny := math.SmallestNonzeroFloat64
	a := addAllOrFatal(t, NewFloatAccumulator(), []float64{tiny, tiny})
	got := a.DoubleValue()
	want := math.Float64frombits(2)
	if got != want {
		t.Fatalf("subnormal sum bits = %x, want 0x2", math.Float64bits(got))
	}
}

func TestFloatAccumulatorSumOfSquaresOverflowSafety(t *testing.T) {
	acc := NewFloatAccumulator()
	out, err := Add2All(acc, []float64{1e200, 1e200})
	if err != nil {
		t.Fatalf("Add2All: %v", err)
	}
	got := out.DoubleValue()
	if !math.IsInf(got, 1) {
		t.Fatalf("sum of squares of two 1e200 values should overflow only at final rounding, got %v", got)
	}
}

func TestFloatAccumulatorL2DistanceOfEqualVectorsIsZero(t *testing.T) {
	xs := []float64{1.5, -2.25, 3.75, 0.125}
	ys := []float64{1.5, -2.25, 3.75, 0.125}
	acc := NewFloatAccumulator()
	out, err := AddL2Distance(acc, xs, ys)
	if err != nil {
		t.Fatalf("AddL2Distance: %v", err)
	}
	got := out.DoubleValue()
	if got != 0 || math.Signbit(got) {
		t.Fatalf("L2 distance of equal vectors = %v, want +0.0", got)
	}
}

func TestFloatAccumulatorAddL1IsExact(t *testing.T) {
	// x - y is not exactly representable in binary64 at this magnitude
	// (ULP(2^60) = 2^8, so the naive float64 subtraction rounds the
	// true difference 2^60-1 back to exactly 2^60, silently dropping
	// the 1). AddL1 must keep the exact difference, so cancelling the
	// naive (rounded) difference back out should leave a residual of
	// -1, not 0.
	x, y := math.Ldexp(1, 60), 1.0
	acc := NewFloatAccumulator()
	out, err := acc.AddL1(x, y)
	if err != nil {
		t.Fatalf("AddL1: %v", err)
	}
	naiveDiff := x - y
	if naiveDiff != x {
		t.Fatalf("test assumption violated: x-y should round to x exactly, got %v", naiveDiff)
	}
	if _, err := out.Add(-naiveDiff); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := out.DoubleValue(); got != -1.0 {
		t.Fatalf("AddL1(2^60, 1.0) lost precision: residual = %v, want -1.0", got)
	}
}

func TestRatAccumulatorAddL1IsExact(t *testing.T) {
	x, y := math.Ldexp(1, 60), 1.0
	acc := NewRatAccumulator()
	out, err := acc.AddL1(x, y)
	if err != nil {
		t.Fatalf("AddL1: %v", err)
	}
	naiveDiff := x - y
	if _, err := out.Add(-naiveDiff); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := out.DoubleValue(); got != -1.0 {
		t.Fatalf("AddL1(2^60, 1.0) lost precision: residual = %v, want -1.0", got)
	}
}

func TestFloatAccumulatorSubnormalToNormalBoundaryTieToEven(t *testing.T) {
	// (2^53-1)*2^-1074 * 0.5 forms the exact BFlt (2^53-1)*2^-1075, the
	// exact halfway point between the largest subnormal (odd mantissa)
	// and the smallest normal 2^-1022 (even mantissa). Round-half-to-
	// even must land on 2^-1022.
	x := math.Ldexp(float64((uint64(1)<<53)-1), -1074)
	acc := NewFloatAccumulator()
	out, err := acc.AddProduct(x, 0.5)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	got := out.DoubleValue()
	want := math.Float64frombits(0x0010000000000000)
	if got != want {
		t.Fatalf("AddProduct((2^53-1)*2^-1074, 0.5) = %x, want %x (smallest normal)",
			math.Float64bits(got), math.Float64bits(want))
	}
	ra := NewRatAccumulator()
	raOut, err := ra.AddProduct(x, 0.5)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if raOut.DoubleValue() != want {
		t.Fatalf("RatAccumulator.AddProduct disagrees with the independent oracle: got %x, want %x",
			math.Float64bits(raOut.DoubleValue()), math.Float64bits(want))
	}
}

func TestFloatAndRatAccumulatorsAgree(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3, 4, 5},
		{1e20, 1.0, -1e20},
		{0.1, 0.2, 0.3},
		{-1e300, 1e300, 42},
	}
	for _, xs := range vectors {
		fa := addAllOrFatal(t, NewFloatAccumulator(), xs)
		ra := addAllOrFatal(t, NewRatAccumulator(), xs)
		if fa.DoubleValue() != ra.DoubleValue() {
			t.Fatalf("FloatAccumulator and RatAccumulator disagree on %v: %v vs %v",
				xs, fa.DoubleValue(), ra.DoubleValue())
		}
	}
}

func TestAccumulatorOrderIndependence(t *testing.T) {
	xs := []float64{1.0, 1e16, -1.0, -1e16, 3.5}
	ys := []float64{-1e16, 3.5, 1e16, 1.0, -1.0}
	a := addAllOrFatal(t, NewFloatAccumulator(), xs)
	b := addAllOrFatal(t, NewFloatAccumulator(), ys)
	if a.DoubleValue() != b.DoubleValue() {
		t.Fatalf("exact accumulator is order-dependent: %v vs %v", a.DoubleValue(), b.DoubleValue())
	}
}

func TestAccumulatorRejectsNonFinite(t *testing.T) {
	a := NewFloatAccumulator()
	if _, err := a.Add(math.NaN()); err == nil {
		t.Fatalf("expected error adding NaN")
	}
	if _, err := a.Add(math.Inf(1)); err == nil {
		t.Fatalf("expected error adding +Inf")
	}
}

func TestClearResetsAccumulator(t *testing.T) {
	a := NewFloatAccumulator()
	addAllOrFatal(t, a, []float64{1, 2, 3})
	a.Clear()
	if got := a.DoubleValue(); got != 0 {
		t.Fatalf("after Clear, sum = %v, want 0", got)
	}
}

func TestFloatAccumulatorAddProduct(t *testing.T) {
	a := NewFloatAccumulator()
	xs := []float64{1, 2, 3}
	ys := []float64{4, 5, 6}
	out, err := AddProducts(a, xs, ys)
	if err != nil {
		t.Fatalf("AddProducts: %v", err)
	}
	// dot product 1*4+2*5+3*6 = 32.
	if got := out.DoubleValue(); got != 32 {
		t.Fatalf("dot product = %v, want 32", got)
	}
}

func TestCompensatedAccumulatorIsInexactByContract(t *testing.T) {
	c := NewCompensatedAccumulator()
	if c.IsExact() {
		t.Fatalf("CompensatedAccumulator must report IsExact() == false")
	}
	fa := NewFloatAccumulator()
	if !fa.IsExact() {
		t.Fatalf("FloatAccumulator must report IsExact() == true")
	}
}

func TestCompensatedAccumulatorReasonablyAccurate(t *testing.T) {
	xs := []float64{1e20, 1.0, -1e20}
	c := addAllOrFatal(t, NewCompensatedAccumulator(), xs)
	fa := addAllOrFatal(t, NewFloatAccumulator(), xs)
	// Neumaier compensation should recover the same catastrophic
	// cancellation case exactly, even though it's not exact in
	// general.
	if c.DoubleValue() != fa.DoubleValue() {
		t.Fatalf("compensated sum = %v, want %v", c.DoubleValue(), fa.DoubleValue())
	}
}
