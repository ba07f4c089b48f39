package sicpplus

import "math"

// Accumulator is a mutable, single-writer reducer over a stream of
// binary64 values. Implementations never read concurrently with a
// write; callers own their own serialization. Every Add* method
// returns the receiver so calls can be chained the way the
// original's fluent builder-style accumulator did.
type Accumulator interface {
	Clear() Accumulator
	Add(x float64) (Accumulator, error)
	AddAbs(x float64) (Accumulator, error)
	Add2(x float64) (Accumulator, error)
	AddProduct(x, y float64) (Accumulator, error)
	AddL1(x, y float64) (Accumulator, error)
	AddL2(x, y float64) (Accumulator, error)
	DoubleValue() float64
	IsExact() bool
	NoOverflow() bool
}

func checkFinite(op string, xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errDomain(op, "input is not finite")
		}
	}
	return nil
}

// AddAll feeds every element of xs through Add, in order.
func AddAll(a Accumulator, xs []float64) (Accumulator, error) {
	for _, x := range xs {
		var err error
		a, err = a.Add(x)
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

// Add2All feeds every element of xs through Add2.
func Add2All(a Accumulator, xs []float64) (Accumulator, error) {
	for _, x := range xs {
		var err error
		a, err = a.Add2(x)
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

// AddProducts feeds paired elements of xs and ys through AddProduct.
// Precondition: len(xs) == len(ys).
func AddProducts(a Accumulator, xs, ys []float64) (Accumulator, error) {
	for i := range xs {
		var err error
		a, err = a.AddProduct(xs[i], ys[i])
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

// AddL2Distance accumulates sum((xs[i]-ys[i])^2) via AddL2.
// Precondition: len(xs) == len(ys).
func AddL2Distance(a Accumulator, xs, ys []float64) (Accumulator, error) {
	for i := range xs {
		var err error
		a, err = a.AddL2(xs[i], ys[i])
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

// ---------------------------------------------------------------
// FloatAccumulator: BFlt-backed, exact.
// ---------------------------------------------------------------

// FloatAccumulator accumulates exactly, backed by BFlt. It never
// rounds until DoubleValue is called, so NoOverflow always reports
// true (there is no intermediate binary64 to overflow) and IsExact
// always reports true.
type FloatAccumulator struct {
	sum BFlt
}

// NewFloatAccumulator returns a zeroed FloatAccumulator.
func NewFloatAccumulator() *FloatAccumulator {
	return &FloatAccumulator{sum: FZero}
}

func (a *FloatAccumulator) Clear() Accumulator {
	a.sum = FZero
	return a
}

func (a *FloatAccumulator) Add(x float64) (Accumulator, error) {
	if err := checkFinite("FloatAccumulator.Add", x); err != nil {
		return a, err
	}
	term, err := FromFloat64(x)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.Add")
	}
	a.sum, err = a.sum.Add(term)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.Add")
	}
	return a, nil
}

func (a *FloatAccumulator) AddAbs(x float64) (Accumulator, error) {
	return a.Add(math.Abs(x))
}

func (a *FloatAccumulator) Add2(x float64) (Accumulator, error) {
	if err := checkFinite("FloatAccumulator.Add2", x); err != nil {
		return a, err
	}
	term, err := FromFloat64(x)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.Add2")
	}
	sq, err := term.Multiply(term)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.Add2")
	}
	a.sum, err = a.sum.Add(sq)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.Add2")
	}
	return a, nil
}

func (a *FloatAccumulator) AddProduct(x, y float64) (Accumulator, error) {
	if err := checkFinite("FloatAccumulator.AddProduct", x, y); err != nil {
		return a, err
	}
	fx, err := FromFloat64(x)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddProduct")
	}
	fy, err := FromFloat64(y)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddProduct")
	}
	prod, err := fx.Multiply(fy)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddProduct")
	}
	a.sum, err = a.sum.Add(prod)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddProduct")
	}
	return a, nil
}

func (a *FloatAccumulator) AddL1(x, y float64) (Accumulator, error) {
	if err := checkFinite("FloatAccumulator.AddL1", x, y); err != nil {
		return a, err
	}
	fx, err := FromFloat64(x)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL1")
	}
	fy, err := FromFloat64(y)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL1")
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL1")
	}
	a.sum, err = a.sum.Add(diff.Abs())
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL1")
	}
	return a, nil
}

func (a *FloatAccumulator) AddL2(x, y float64) (Accumulator, error) {
	if err := checkFinite("FloatAccumulator.AddL2", x, y); err != nil {
		return a, err
	}
	fx, err := FromFloat64(x)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL2")
	}
	fy, err := FromFloat64(y)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL2")
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL2")
	}
	sq, err := diff.Multiply(diff)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL2")
	}
	a.sum, err = a.sum.Add(sq)
	if err != nil {
		return a, wrapf(err, "FloatAccumulator.AddL2")
	}
	return a, nil
}

func (a *FloatAccumulator) DoubleValue() float64 { return a.sum.ToFloat64() }

func (a *FloatAccumulator) IsExact() bool { return true }

func (a *FloatAccumulator) NoOverflow() bool { return true }

// ---------------------------------------------------------------
// RatAccumulator: BRat-backed oracle.
// ---------------------------------------------------------------

// RatAccumulator accumulates exactly over the rationals, backed by
// BRat. It exists as an independently-derived correctness oracle for
// FloatAccumulator: any input for which the two disagree after
// DoubleValue is a bug in one of them, per the "Testable Properties"
// in the originating specification's accumulator contract.
type RatAccumulator struct {
	sum BRat
}

// NewRatAccumulator returns a zeroed RatAccumulator.
func NewRatAccumulator() *RatAccumulator {
	return &RatAccumulator{sum: RZero}
}

func (a *RatAccumulator) Clear() Accumulator {
	a.sum = RZero
	return a
}

func (a *RatAccumulator) Add(x float64) (Accumulator, error) {
	if err := checkFinite("RatAccumulator.Add", x); err != nil {
		return a, err
	}
	term, err := floatToBRat(x)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.Add")
	}
	a.sum, err = a.sum.Add(term)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.Add")
	}
	return a, nil
}

func (a *RatAccumulator) AddAbs(x float64) (Accumulator, error) {
	return a.Add(math.Abs(x))
}

func (a *RatAccumulator) Add2(x float64) (Accumulator, error) {
	if err := checkFinite("RatAccumulator.Add2", x); err != nil {
		return a, err
	}
	term, err := floatToBRat(x)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.Add2")
	}
	sq, err := term.Multiply(term)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.Add2")
	}
	a.sum, err = a.sum.Add(sq)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.Add2")
	}
	return a, nil
}

func (a *RatAccumulator) AddProduct(x, y float64) (Accumulator, error) {
	if err := checkFinite("RatAccumulator.AddProduct", x, y); err != nil {
		return a, err
	}
	rx, err := floatToBRat(x)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddProduct")
	}
	ry, err := floatToBRat(y)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddProduct")
	}
	prod, err := rx.Multiply(ry)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddProduct")
	}
	a.sum, err = a.sum.Add(prod)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddProduct")
	}
	return a, nil
}

func (a *RatAccumulator) AddL1(x, y float64) (Accumulator, error) {
	if err := checkFinite("RatAccumulator.AddL1", x, y); err != nil {
		return a, err
	}
	rx, err := floatToBRat(x)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL1")
	}
	ry, err := floatToBRat(y)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL1")
	}
	diff, err := rx.Sub(ry)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL1")
	}
	a.sum, err = a.sum.Add(diff.Abs())
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL1")
	}
	return a, nil
}

func (a *RatAccumulator) AddL2(x, y float64) (Accumulator, error) {
	if err := checkFinite("RatAccumulator.AddL2", x, y); err != nil {
		return a, err
	}
	rx, err := floatToBRat(x)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL2")
	}
	ry, err := floatToBRat(y)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL2")
	}
	diff, err := rx.Sub(ry)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL2")
	}
	sq, err := diff.Multiply(diff)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL2")
	}
	a.sum, err = a.sum.Add(sq)
	if err != nil {
		return a, wrapf(err, "RatAccumulator.AddL2")
	}
	return a, nil
}

func (a *RatAccumulator) DoubleValue() float64 { return roundBRatToFloat64(a.sum) }

func (a *RatAccumulator) IsExact() bool { return true }

func (a *RatAccumulator) NoOverflow() bool { return true }

func floatToBRat(x float64) (BRat, error) {
	f, err := FromFloat64(x)
	if err != nil {
		return BRat{}, err
	}
	if f.exp >= 0 {
		mag, err := f.sig.Magnitude().ShiftUp(f.exp)
		if err != nil {
			return BRat{}, err
		}
		return BRatFromSBig(normSBig(int8(f.sig.Sign()), mag)), nil
	}
	den, err := One.ShiftUp(-f.exp)
	if err != nil {
		return BRat{}, err
	}
	return NewBRat(f.sig, den)
}

// ---------------------------------------------------------------
// CompensatedAccumulator: Neumaier-compensated binary64 summation.
// Inexact by construction — a fast benchmarking baseline, never a
// source of truth. Every Add* method feeds one binary64 term through
// the same compensated sum; squares, products and the differences in
// AddL1/AddL2 are computed in plain binary64 (and so rounded) before
// they reach it.
// ---------------------------------------------------------------

// CompensatedAccumulator implements Neumaier-compensated ("Kahan-
// Babuska") summation directly in binary64. It is deliberately
// inexact: it exists so accuracy and throughput can be measured
// against FloatAccumulator and RatAccumulator, not to replace them.
type CompensatedAccumulator struct {
	s float64
	c float64
}

func NewCompensatedAccumulator() *CompensatedAccumulator {
	return &CompensatedAccumulator{}
}

func (a *CompensatedAccumulator) Clear() Accumulator {
	a.s, a.c = 0, 0
	return a
}

func (a *CompensatedAccumulator) addTerm(x float64) {
	t := a.s + x
	if math.Abs(a.s) >= math.Abs(x) {
		a.c += (a.s - t) + x
	} else {
		a.c += (x - t) + a.s
	}
	a.s = t
}

func (a *CompensatedAccumulator) Add(x float64) (Accumulator, error) {
	if err := checkFinite("CompensatedAccumulator.Add", x); err != nil {
		return a, err
	}
	a.addTerm(x)
	return a, nil
}

func (a *CompensatedAccumulator) AddAbs(x float64) (Accumulator, error) {
	return a.Add(math.Abs(x))
}

func (a *CompensatedAccumulator) Add2(x float64) (Accumulator, error) {
	if err := checkFinite("CompensatedAccumulator.Add2", x); err != nil {
		return a, err
	}
	a.addTerm(x * x)
	return a, nil
}

func (a *CompensatedAccumulator) AddProduct(x, y float64) (Accumulator, error) {
	if err := checkFinite("CompensatedAccumulator.AddProduct", x, y); err != nil {
		return a, err
	}
	a.addTerm(x * y)
	return a, nil
}

func (a *CompensatedAccumulator) AddL1(x, y float64) (Accumulator, error) {
	return a.AddAbs(x - y)
}

func (a *CompensatedAccumulator) AddL2(x, y float64) (Accumulator, error) {
	return a.Add2(x - y)
}

func (a *CompensatedAccumulator) DoubleValue() float64 { return a.s + a.c }

func (a *CompensatedAccumulator) IsExact() bool { return false }

func (a *CompensatedAccumulator) NoOverflow() bool {
	return !math.IsInf(a.s, 0) && !math.IsInf(a.c, 0)
}
