// Package testutil holds the test/benchmark collaborators that sit
// outside the core reduction library: a deterministic PRNG for
// generating reproducible binary64 test vectors, and a process-wide
// cache keyed on (dimension, seed) so repeated table-driven cases and
// benchmarks don't regenerate the same vector twice.
package testutil

import (
	"encoding/binary"
	"math"

	sha3 "golang.org/x/crypto/sha3"
)

// Generator is a deterministic source of binary64 test vectors, built
// on a single SHAKE256 absorb/squeeze the way the teacher's
// hash_to_point and hash_verifying_key do: absorb a seed once, then
// squeeze as many output bytes as needed.
type Generator struct {
	sponge sha3.ShakeHash
}

// NewGenerator seeds a Generator from an arbitrary byte string. Equal
// seeds always produce equal output streams.
func NewGenerator(seed []byte) *Generator {
	g := &Generator{sponge: sha3.NewShake256()}
	g.sponge.Write(seed)
	return g
}

// NewGeneratorFromInt64 is a convenience constructor for the common
// case of seeding from a single integer (a test case's table index,
// a benchmark's -seed flag, and so on).
func NewGeneratorFromInt64(seed int64) *Generator {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	return NewGenerator(b[:])
}

// Uint64 squeezes the next 8 bytes of the sponge as a little-endian
// uint64.
func (g *Generator) Uint64() uint64 {
	var b [8]byte
	g.sponge.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Float64 returns a pseudo-random float64 drawn uniformly from
// [0, 1), built from 53 random bits, matching the usual
// "random bits over 2^53" construction.
func (g *Generator) Float64() float64 {
	const mantissaBits = 53
	bits := g.Uint64() >> (64 - mantissaBits)
	return float64(bits) / (1 << mantissaBits)
}

// SignedFloat64 returns a pseudo-random float64 in [-1, 1).
func (g *Generator) SignedFloat64() float64 {
	return 2*g.Float64() - 1
}

// ScaledFloat64 returns a pseudo-random float64 in
// [-2^exp, 2^exp), useful for generating vectors that exercise a
// specific magnitude range (subnormal inputs, near-overflow inputs,
// and so on).
func (g *Generator) ScaledFloat64(exp int) float64 {
	return math.Ldexp(g.SignedFloat64(), exp)
}

// Vector fills a slice of n pseudo-random float64 values in [-1, 1).
func (g *Generator) Vector(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.SignedFloat64()
	}
	return out
}

// ScaledVector fills a slice of n pseudo-random float64 values in
// [-2^exp, 2^exp).
func (g *Generator) ScaledVector(n, exp int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.ScaledFloat64(exp)
	}
	return out
}

// MixedScaleVector fills a slice of n values whose exponents are
// drawn uniformly from exps, exercising accumulators with operands
// spanning several magnitudes in one pass (the shape of spec-style
// catastrophic-cancellation and wide-dynamic-range test cases).
func (g *Generator) MixedScaleVector(n int, exps []int) []float64 {
	out := make([]float64, n)
	for i := range out {
		exp := exps[int(g.Uint64()%uint64(len(exps)))]
		out[i] = g.ScaledFloat64(exp)
	}
	return out
}
