package sicpplus

import "golang.org/x/sys/cpu"

// Multiply/square/divide regime thresholds, in words. These are the
// "tuning knobs" spec §4.B explicitly allows an implementer to adjust;
// defaults below follow the teacher's own pattern of selecting between
// several implementations of one operation based on hardware
// capability (sign_flr_native.go vs sign_flr_emu.go in the teacher),
// reinterpreted here as a runtime capability check rather than a
// build tag since this package ships no assembly.
var (
	kMul        = 80  // below: schoolbook multiply
	tMul        = 240 // below: Karatsuba; at or above: Toom-Cook-3
	kSq         = 80  // below: schoolbook square
	tSq         = 240 // below: Karatsuba square; at or above: Toom-Cook-3 square
	bzThreshold = 240 // at or above: Burnikel-Ziegler division
)

func init() {
	// Wide-word hardware multiply (the schoolbook inner loop's only
	// real cost) is cheap enough on these platforms that schoolbook
	// and Karatsuba stay competitive for longer, so the crossover to
	// the next regime can be pushed out a bit.
	if wideMultiplyIsCheap() {
		kMul, tMul = 96, 320
		kSq, tSq = 96, 320
		bzThreshold = 320
	}
}

func wideMultiplyIsCheap() bool {
	switch {
	case cpu.X86.HasAVX2, cpu.X86.HasBMI2:
		return true
	case cpu.ARM64.HasASIMD:
		return true
	default:
		return false
	}
}
