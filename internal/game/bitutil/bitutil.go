// Package bitutil holds the rankset arithmetic shared by the evaluator and
// the draw classifiers. A rankset is a 13-bit mask, bit i set when rank i
// (0 = deuce, 12 = ace) is present.
package bitutil

import (
	"fmt"
	"math/bits"
)

const (
	RankMask uint32 = 0x1FFF
	AceBit   uint32 = 1 << 12

	// A-2-3-4-5: the ace sits in the top bit, not next to the 2.
	WheelMask uint32 = 0b1_0000_0000_1111
	fiveBit   uint32 = 1 << 3
)

func CountOnes(x uint32) int { return bits.OnesCount32(x) }

func LeadingZeros(x uint32) int { return bits.LeadingZeros32(x) }

func LeadingOnes(x uint32) int { return bits.LeadingZeros32(^x) }

// MSB returns the most significant set bit of x, or 0.
func MSB(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (31 - bits.LeadingZeros32(x))
}

// KeepNMSB keeps the n most significant set bits of x. x must have at
// least n bits set.
func KeepNMSB(x uint32, n int) uint32 {
	if c := CountOnes(x); c < n {
		panic(fmt.Sprintf("bitutil: KeepNMSB(%#x, %d) with only %d bits set", x, n, c))
	}
	return keep(x, n)
}

// KeepUpToNMSB is KeepNMSB for sets that may hold fewer than n bits.
func KeepUpToNMSB(x uint32, n int) uint32 {
	return keep(x, min(n, CountOnes(x)))
}

func keep(x uint32, n int) uint32 {
	var ret uint32
	for i := 0; i < n; i++ {
		bit := MSB(x)
		x ^= bit
		ret |= bit
	}
	return ret
}

// FindStraight returns the bit of the highest straight card in rankset,
// the 5 for a wheel, or 0 when there is no straight.
func FindStraight(rankset uint32) uint32 {
	run := rankset & (rankset << 1) & (rankset << 2) & (rankset << 3) & (rankset << 4)
	if run != 0 {
		return MSB(run)
	}
	if rankset&WheelMask == WheelMask {
		return fiveBit
	}
	return 0
}
