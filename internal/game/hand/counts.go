package hand

import (
	"PokerLens/internal/game/bitutil"
	"PokerLens/internal/game/cards"
)

// Counts is the per-rank and per-suit accounting of one set of cards.
type Counts struct {
	Rankset        uint32
	RankCount      [cards.NumRanks]uint8
	SuitRankset    [cards.NumSuits]uint32
	SuitCount      [cards.NumSuits]int
	RanksetOfCount [5]uint32 // [k]: ranks held exactly k times
	Cards          int
}

// CountsOf is the accounting of a single set of cards, e.g. a board.
func CountsOf(cs []cards.Card) Counts {
	return countCards(cs)
}

func countCards(cs ...[]cards.Card) Counts {
	var c Counts
	for _, group := range cs {
		for _, card := range group {
			bit := card.Bit()
			c.Rankset |= bit
			c.SuitRankset[card.Suit()] |= bit
			c.RankCount[card.Rank()]++
			c.Cards++
		}
	}
	for r := 0; r < cards.NumRanks; r++ {
		c.RanksetOfCount[c.RankCount[r]] |= 1 << r
	}
	for s := 0; s < cards.NumSuits; s++ {
		c.SuitCount[s] = bitutil.CountOnes(c.SuitRankset[s])
	}
	return c
}

// flushSuit returns the suit holding five or more cards, or -1.
func (c *Counts) flushSuit() int {
	for s := cards.NumSuits - 1; s >= 0; s-- {
		if c.SuitCount[s] >= 5 {
			return s
		}
	}
	return -1
}

// HasPair reports whether some rank is held exactly twice.
func (c *Counts) HasPair() bool {
	return c.RanksetOfCount[2] != 0
}
