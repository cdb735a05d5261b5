package category

import (
	"PokerLens/internal/game/bitutil"
	"PokerLens/internal/game/hand"
)

const (
	NoStraightDraw   = "NO_STRAIGHT_DRAW"
	DoubleGutter     = "DOUBLE_GUTTER"
	OESD             = "OESD"
	Gutshot          = "GUTSHOT"
	AHighBroadway    = "A_HIGH_BROADWAY"
	AHighWheel       = "A_HIGH_WHEEL"
	BackdoorStraight = "3_STRAIGHT"
	BackdoorWheel    = "3_WHEEL"
)

// StraightDraw is the best straight draw a hand holds and how many of the
// player's hole ranks (not also on the board) take part in it.
type StraightDraw struct {
	Label     string
	HoleCards int
}

func (d StraightDraw) IsDraw() bool { return d.Label != NoStraightDraw }

type maskSet map[uint32]struct{}

func newMaskSet(masks ...uint32) maskSet {
	s := make(maskSet, len(masks))
	for _, m := range masks {
		s[m] = struct{}{}
	}
	return s
}

func (s maskSet) has(m uint32) bool {
	_, ok := s[m]
	return ok
}

// combinations returns every mask with k of the given bits set.
func combinations(bits []uint32, k int) []uint32 {
	if k == 0 {
		return []uint32{0}
	}
	var out []uint32
	for i := 0; i+k <= len(bits); i++ {
		for _, rest := range combinations(bits[i+1:], k-1) {
			out = append(out, bits[i]|rest)
		}
	}
	return out
}

func withBits(base uint32, masks []uint32) []uint32 {
	out := make([]uint32, len(masks))
	for i, m := range masks {
		out[i] = base | m
	}
	return out
}

// StraightDrawMasks is the pattern catalog. Window masks (OESD, double
// gutter, gutshot, backdoor) are matched against the rankset shifted down
// by each offset; the ace-anchored masks are full 13-bit patterns because
// the ace sits at the top bit, away from the 2.
type StraightDrawMasks struct {
	OESD         maskSet // 5-bit window
	DoubleGutter maskSet // 8-bit window
	Gutshot      maskSet // 5-bit window
	AHighBroad   maskSet
	AHighWheel   maskSet
	Backdoor     maskSet // 5-bit window
	BackdoorLow  maskSet // 3 of 2-3-4-5
	BackdoorAce  maskSet // ace plus 2 of 2-3-4-5
}

const (
	window5      uint32 = 0x1F
	window7      uint32 = 0x7F
	window8      uint32 = 0xFF
	broadwayMask uint32 = 0b1_1111_0000_0000
	lowMask      uint32 = 0b0_0000_0000_1111
	topOffset           = 13 - 5
)

func NewStraightDrawMasks() *StraightDrawMasks {
	low := []uint32{1 << 0, 1 << 1, 1 << 2, 1 << 3}
	broadway := []uint32{1 << 8, 1 << 9, 1 << 10, 1 << 11}
	return &StraightDrawMasks{
		OESD:         newMaskSet(0b1111),
		DoubleGutter: newMaskSet(0b1101_1101, 0b0101_1101, 0b1101_1011),
		Gutshot:      newMaskSet(0b10111, 0b11011, 0b11101),
		AHighBroad:   newMaskSet(withBits(bitutil.AceBit, combinations(broadway, 3))...),
		AHighWheel:   newMaskSet(withBits(bitutil.AceBit, combinations(low, 3))...),
		Backdoor:     newMaskSet(withBits(1<<4, combinations(low, 2))...),
		BackdoorLow:  newMaskSet(combinations(low, 3)...),
		BackdoorAce:  newMaskSet(withBits(bitutil.AceBit, combinations(low, 2))...),
	}
}

var straightMasks = NewStraightDrawMasks()

// StraightDrawOf classifies the hand with the shared catalog.
func StraightDrawOf(h *hand.Hand) StraightDraw {
	return straightMasks.Categorize(h)
}

// Categorize returns the strongest straight draw, in order: double gutter
// or OESD (8 outs, highest window first), ace-high broadway, ace-high
// wheel, gutshot, then backdoor draws. Only draws that use at least one
// hole rank not already on the board count.
func (m *StraightDrawMasks) Categorize(h *hand.Hand) StraightDraw {
	rankset := h.All().Rankset
	boardRanks := h.BoardCounts().Rankset
	own := h.HoleCounts().Rankset &^ boardRanks

	var gutshot *StraightDraw
	for offset := topOffset; offset >= 0; offset-- {
		ranks := rankset >> offset
		mine := own >> offset
		in5 := bitutil.CountOnes(mine & window5)
		in8 := bitutil.CountOnes(mine & window8)

		if in8 > 0 && (m.DoubleGutter.has(ranks&window7) || m.DoubleGutter.has(ranks&window8)) {
			return StraightDraw{DoubleGutter, in8}
		}
		if in5 > 0 && m.OESD.has(ranks&window5) {
			return StraightDraw{OESD, in5}
		}
		if gutshot == nil && in5 > 0 && m.Gutshot.has(ranks&window5) {
			gutshot = &StraightDraw{Gutshot, in5}
		}
	}

	if m.AHighBroad.has(rankset & broadwayMask) {
		if n := bitutil.CountOnes(own & broadwayMask); n > 0 {
			return StraightDraw{AHighBroadway, n}
		}
	}
	if m.AHighWheel.has(rankset & bitutil.WheelMask) {
		if n := bitutil.CountOnes(own & bitutil.WheelMask); n > 0 {
			return StraightDraw{AHighWheel, n}
		}
	}
	if gutshot != nil {
		return *gutshot
	}

	for offset := topOffset; offset >= 0; offset-- {
		if !m.Backdoor.has(rankset >> offset & window5) {
			continue
		}
		if n := bitutil.CountOnes(own >> offset & window5); n > 0 {
			return StraightDraw{BackdoorStraight, n}
		}
	}
	if m.BackdoorAce.has(rankset & bitutil.WheelMask) {
		if n := bitutil.CountOnes(own & bitutil.WheelMask); n > 0 {
			return StraightDraw{BackdoorWheel, n}
		}
	}
	if m.BackdoorLow.has(rankset & lowMask) {
		if n := bitutil.CountOnes(own & lowMask); n > 0 {
			return StraightDraw{BackdoorStraight, n}
		}
	}
	return StraightDraw{NoStraightDraw, 0}
}
