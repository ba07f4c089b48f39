// Package sicpplus implements exactly-rounded reductions over IEEE-754
// binary64 data: sum, sum of absolute values, sum of squares, dot
// product, and L1/L2 distance, each returning the binary64 closest to
// the mathematically exact result with round-half-to-even.
//
// The package builds its own arbitrary-precision arithmetic rather than
// delegating to math/big, because the whole point is the kernel: an
// unsigned arbitrary-precision integer (UBig) on packed 32-bit words, a
// signed layer on top (SBig), a binary-rational type (BRat) and a
// binary-float type (BFlt) built from SBig, and a rounding bridge that
// turns either of the latter two into the nearest binary64.
//
// Accumulators (FloatAccumulator, RatAccumulator,
// CompensatedAccumulator) are the only mutable,
// single-writer types in the package; everything else (UBig, SBig,
// BRat, BFlt) is immutable and safe to share across goroutines without
// locking.
//
// Inputs must be finite; non-finite binary64 values are rejected with a
// *DomainError at the call that receives them.
package sicpplus
