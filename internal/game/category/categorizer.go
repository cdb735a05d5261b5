// Package category turns evaluated hands into report labels: pair and
// high card subtypes relative to the board, straight draws and flush draws.
package category

import (
	"fmt"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/hand"
)

type PairType int

const (
	PocketPair PairType = iota
	BoardPair
	RegularPair
)

func (p PairType) String() string {
	switch p {
	case PocketPair:
		return "POCKET_PAIR"
	case BoardPair:
		return "BOARD_PAIR"
	case RegularPair:
		return "REGULAR_PAIR"
	}
	return "UNKNOWN"
}

// PairCategory describes which pair a hand holds relative to the board.
// BoardCardsSeen counts the board ranks above the pair (the pair's own rank
// included when it is on the board). Kicker is the 1-indexed position of
// the best side hole card among ranks not on the board; 0 for pocket pairs
// and when no hole card is off the board.
type PairCategory struct {
	Type           PairType
	BoardCardsSeen int
	Kicker         int
}

var pairOrdinals = [...]string{"", "Top", "2nd", "3rd", "4th", "5th"}

func (p PairCategory) String() string {
	switch p.Type {
	case PocketPair:
		if p.BoardCardsSeen == 0 {
			return "OverPair"
		}
		return fmt.Sprintf("UnderPair[%d]", p.BoardCardsSeen)
	case RegularPair:
		if p.BoardCardsSeen >= 1 && p.BoardCardsSeen < len(pairOrdinals) {
			return fmt.Sprintf("%sPair[%d]", pairOrdinals[p.BoardCardsSeen], p.Kicker)
		}
		return "Unknown"
	case BoardPair:
		return fmt.Sprintf("BoardPair[%d]", p.Kicker)
	}
	return "NotPair"
}

// PairOf categorizes the pair in a PAIR hand, in a TWO_PAIR hand on a
// paired board, or in a FULL_HOUSE on a trips board.
func PairOf(h *hand.Hand) (PairCategory, bool) {
	ht, bt := h.Type(), h.BoardType()
	if !(ht == hand.Pair ||
		(ht == hand.TwoPair && bt == hand.Pair) ||
		(ht == hand.FullHouse && bt == hand.Trips)) {
		return PairCategory{}, false
	}

	all, hole, board := h.All(), h.HoleCounts(), h.BoardCounts()

	var (
		pc         PairCategory
		found      bool
		boardSeen  int
		offBoard   int
		kickerDone bool
	)
	for r := cards.NumRanks - 1; r >= 0; r-- {
		hrc, brc, rc := hole.RankCount[r], board.RankCount[r], all.RankCount[r]
		if brc > 0 {
			boardSeen++
		} else if !kickerDone {
			offBoard++
			if hrc > 0 {
				pc.Kicker = offBoard
				kickerDone = true
			}
		}
		if rc != 2 {
			continue
		}
		switch {
		case brc == 2:
			if !found {
				pc.Type, pc.BoardCardsSeen = BoardPair, boardSeen
				found = true
			}
		case hrc == 2:
			if !found || pc.Type == BoardPair {
				pc.Type, pc.BoardCardsSeen = PocketPair, boardSeen
				pc.Kicker = 0
				kickerDone = true
				found = true
			}
		default:
			if !found || pc.Type == BoardPair {
				pc.Type, pc.BoardCardsSeen = RegularPair, boardSeen
				found = true
			}
		}
	}
	return pc, found
}

// HighCardCategory gives, for the two best hole ranks that are not on the
// board, how many board ranks sit above each (0 is an overcard).
type HighCardCategory struct {
	Top    int
	Bottom int
}

// HighCardOf is defined when the hole cards do not improve on the board's
// own category and that category is below TRIPS.
func HighCardOf(h *hand.Hand) (HighCardCategory, bool) {
	ht := h.Type()
	if ht != h.BoardType() || ht >= hand.Trips {
		return HighCardCategory{}, false
	}
	hole, board := h.HoleCounts(), h.BoardCounts()

	var hc HighCardCategory
	boardSeen, found := 0, 0
	for r := cards.NumRanks - 1; r >= 0; r-- {
		switch {
		case board.RankCount[r] > 0:
			boardSeen++
		case hole.RankCount[r] > 0:
			if found == 0 {
				hc.Top = boardSeen
			} else {
				hc.Bottom = boardSeen
				return hc, true
			}
			found++
		}
	}
	return HighCardCategory{}, false
}

// Categorize returns the report label for the hand: the pair subtype for
// PAIR hands and the type name otherwise.
func Categorize(h *hand.Hand) string {
	if h.Type() == hand.Pair {
		if pc, ok := PairOf(h); ok {
			return pc.String()
		}
	}
	return h.Type().String()
}
