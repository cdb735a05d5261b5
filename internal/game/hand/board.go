package hand

import "PokerLens/internal/game/cards"

// BoardAdjustedType is the hand's category measured against what the board
// alone already gives every player. A pair that only the board makes is
// HIGH_CARD here; a two pair where the hole cards beat the board's two
// pair stays TWO_PAIR.
func (h *Hand) BoardAdjustedType() Type {
	st := h.eval()
	ht := st.evaluation.Type()

	switch st.boardType {
	case Trips:
		if ht > Trips {
			return ht
		}
		return HighCard

	case TwoPair:
		if ht > TwoPair {
			return ht
		}
		boardPairs := 0
		for r := cards.NumRanks - 1; r >= 0; r-- {
			hrc, brc := st.hole.RankCount[r], st.board.RankCount[r]
			switch {
			case hrc == 2 || (hrc == 1 && brc == 1):
				return TwoPair
			case brc == 2:
				boardPairs++
				if boardPairs == 2 {
					return HighCard
				}
			}
		}
		return HighCard

	case Pair:
		switch ht {
		case TwoPair:
			paired := 0
			for r := cards.NumRanks - 1; r >= 0; r-- {
				hrc, brc := st.hole.RankCount[r], st.board.RankCount[r]
				switch {
				case hrc == 1 && brc == 1:
					paired++
					if paired == 2 {
						return TwoPair
					}
				case brc == 2 || hrc == 2:
					return Pair
				}
			}
			return Pair
		case Pair:
			return HighCard
		}
	}
	return ht
}
