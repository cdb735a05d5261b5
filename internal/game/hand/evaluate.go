package hand

import "PokerLens/internal/game/bitutil"

const rankShift = 13

// evaluate resolves the best category held by c. The branch order is
// the category order; the first match returns.
func evaluate(c *Counts) Evaluation {
	flush := Evaluation(0)
	if fs := c.flushSuit(); fs >= 0 {
		suited := c.SuitRankset[fs]
		if sf := bitutil.FindStraight(suited); sf != 0 {
			return pack(StraightFlush, sf)
		}
		flush = pack(Flush, bitutil.KeepNMSB(suited, 5))
	}

	quads := c.RanksetOfCount[4]
	trips := c.RanksetOfCount[3]
	pairs := c.RanksetOfCount[2]
	singles := c.RanksetOfCount[1]
	straight := bitutil.FindStraight(c.Rankset)

	switch {
	case quads != 0:
		kicker := bitutil.KeepUpToNMSB(c.Rankset^quads, 1)
		return pack(Quads, quads<<rankShift|kicker)

	case bitutil.CountOnes(trips) >= 2:
		top := bitutil.MSB(trips)
		return pack(FullHouse, top<<rankShift|bitutil.MSB(trips^top))

	case trips != 0 && pairs != 0:
		return pack(FullHouse, trips<<rankShift|bitutil.MSB(pairs))

	case flush != 0:
		return flush

	case straight != 0:
		return pack(Straight, straight)

	case trips != 0:
		return pack(Trips, trips<<rankShift|bitutil.KeepUpToNMSB(singles, 2))

	case bitutil.CountOnes(pairs) >= 2:
		top := bitutil.KeepNMSB(pairs, 2)
		kicker := bitutil.KeepUpToNMSB(c.Rankset^top, 1)
		return pack(TwoPair, top<<rankShift|kicker)

	case pairs != 0:
		return pack(Pair, pairs<<rankShift|bitutil.KeepUpToNMSB(singles, 3))
	}
	return pack(HighCard, bitutil.KeepUpToNMSB(c.Rankset, 5))
}
