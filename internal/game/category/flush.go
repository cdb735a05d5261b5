package category

import (
	"PokerLens/internal/game/bitutil"
	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/hand"
)

const (
	NoFlushDraw   = "NO_FLUSH_DRAW"
	BackdoorFlush = "3_FLUSH"
	FourFlush     = "FLUSH_DRAW"
	MadeFlush     = "FLUSH"
)

// FlushDraw describes the longest suit the hole cards contribute to.
// HighestRank is the nut position of the best hole card in that suit:
// one plus the number of better ranks of that suit absent from both the
// hole and the board. HighestRank and Suit are -1 when there is no draw.
type FlushDraw struct {
	Label          string
	HoleCards      int
	HighestRank    int
	Suit           int
	DoubleBackdoor bool
}

func (d FlushDraw) IsDraw() bool { return d.Label != NoFlushDraw }

func flushLabel(n int) string {
	switch {
	case n >= 5:
		return MadeFlush
	case n == 4:
		return FourFlush
	case n == 3:
		return BackdoorFlush
	}
	return NoFlushDraw
}

func FlushDrawOf(h *hand.Hand) FlushDraw {
	all, hole := h.All(), h.HoleCounts()

	best, numCards, suit := 0, 0, -1
	double := false
	for s := 0; s < cards.NumSuits; s++ {
		count := all.SuitCount[s]
		mine := hole.SuitCount[s]
		if count < 3 || mine == 0 {
			continue
		}
		if count > best {
			best, numCards, suit = count, mine, s
			if best >= 4 || mine == 2 {
				break
			}
			continue
		}
		if count == 3 && best == 3 {
			double = true
		}
	}
	if best < 3 {
		return FlushDraw{Label: NoFlushDraw, HighestRank: -1, Suit: suit}
	}

	rs, mine := all.SuitRankset[suit], hole.SuitRankset[suit]
	highest, missing := -1, 0
	for flag := bitutil.AceBit; flag > 0; flag >>= 1 {
		if rs&flag == 0 {
			missing++
			continue
		}
		if mine&flag != 0 {
			highest = missing + 1
			break
		}
	}
	return FlushDraw{
		Label:          flushLabel(best),
		HoleCards:      numCards,
		HighestRank:    highest,
		Suit:           suit,
		DoubleBackdoor: double,
	}
}
