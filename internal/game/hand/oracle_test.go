package hand

import (
	"cmp"
	"testing"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/dealer"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toOracle maps a card onto paulhankin/poker, which counts the ace as 1.
func toOracle(t *testing.T, c cards.Card) poker.Card {
	r := poker.Rank(c.Rank() + 2)
	if c.Rank() == cards.Ace {
		r = 1
	}
	pc, err := poker.MakeCard(poker.Suit(c.Suit()), r)
	require.NoError(t, err)
	return pc
}

func oracleScore(t *testing.T, hole cards.Combo, board []cards.Card) int16 {
	var seven [7]poker.Card
	for i, c := range board {
		seven[i] = toOracle(t, c)
	}
	seven[5] = toOracle(t, hole[0])
	seven[6] = toOracle(t, hole[1])
	return poker.Eval7(&seven)
}

// Random heads-up river showdowns must order the same way an independent
// 7-card evaluator orders them.
func TestShowdownsAgreeWithOracle(t *testing.T) {
	d := dealer.NewDealer(20261016)
	for i := 0; i < 5000; i++ {
		d.NewDeck()
		holes := d.DealHoleCards([]string{"hero", "villain"})
		board := d.DealCommunity(5)

		hero, err := FromCards(holes["hero"], board)
		require.NoError(t, err)
		villain, err := FromCards(holes["villain"], board)
		require.NoError(t, err)

		want := cmp.Compare(oracleScore(t, holes["hero"], board), oracleScore(t, holes["villain"], board))
		require.Equal(t, want, hero.Compare(villain), "%s vs %s on %s", hero.Hole(), villain.Hole(), hero.Board())
	}
}

func TestRandomHandsAreTotal(t *testing.T) {
	d := dealer.NewDealer(7)
	for _, size := range []int{0, 3, 4, 5} {
		for i := 0; i < 2000; i++ {
			hole, board := d.Deal(size)
			h, err := FromCards(hole, board)
			require.NoError(t, err)
			e := h.Evaluate()
			require.Equal(t, e, h.Evaluate())
			require.LessOrEqual(t, e.Type(), StraightFlush)
			require.LessOrEqual(t, h.BoardAdjustedType(), StraightFlush)
		}
	}
}
