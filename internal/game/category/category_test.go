package category

import (
	"testing"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/hand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightDrawType(hole, board string) StraightDraw {
	return StraightDrawOf(hand.Must(hole, board))
}

func flushDrawType(hole, board string) FlushDraw {
	return FlushDrawOf(hand.Must(hole, board))
}

type drawCase struct {
	hole, board string
	label       string
	holeCards   int
}

func runStraightCases(t *testing.T, tests []drawCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.hole+"_"+tt.board, func(t *testing.T) {
			got := straightDrawType(tt.hole, tt.board)
			assert.Equal(t, StraightDraw{tt.label, tt.holeCards}, got)
		})
	}
}

func TestStraightDrawAHighBroadway(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"AsTd", "JhKh3d", AHighBroadway, 2},
		{"AsTd", "JhKhTc", AHighBroadway, 1},
		{"AsKd", "JhQh9d", AHighBroadway, 2},
	})
}

func TestStraightDrawAHighWheel(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"AsTd", "2h3h4d", AHighWheel, 1},
		{"As2d", "Jh4h3d", AHighWheel, 2},
	})
}

func TestStraightDrawOESD(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"KsQs", "JhTh8h7h6d", OESD, 2},
		{"KsJh", "QdJcTh8h", OESD, 1},
		{"QsJh", "KdJcTh8h", OESD, 1},
		{"9s8s", "7h6d2c", OESD, 2},
		// the board alone holds the draw
		{"JhTh", "JsTd9d8s", NoStraightDraw, 0},
	})
}

func TestStraightDrawDoubleGutter(t *testing.T) {
	runStraightCases(t, []drawCase{
		// 1011101
		{"AsKs", "JsTh9d7h", DoubleGutter, 2},
		{"KsQs", "Th9d8h6d", DoubleGutter, 2},
		{"8s6s", "KhQdTh9d", DoubleGutter, 2},
		{"QsQc", "Th9d8h6d", DoubleGutter, 1},
		{"QsTc", "Th9d8h6d", DoubleGutter, 1},
		{"Qs9c", "Th9d8h6d", DoubleGutter, 1},
		{"Qs9c", "Th8h6d5s", DoubleGutter, 2},
		{"Qs8c", "Th9h6d5s", DoubleGutter, 2},
		{"QsJs", "9h8d7h5d", DoubleGutter, 2},
		{"JhJs", "9h8d7h5d", DoubleGutter, 1},
		{"Jh9s", "9h8d7h5d", DoubleGutter, 1},
		{"Jh8s", "9h8d7h5d", DoubleGutter, 1},
		{"Jh8s", "9h7h5d4s", DoubleGutter, 2},
		{"JsTs", "8d7h6d4s", DoubleGutter, 2},
		{"Ts9s", "7h6d5d3s", DoubleGutter, 2},
		{"9s8s", "6h5d4d2s", DoubleGutter, 2},
		// 11011011
		{"AsKs", "JcTh8d7h", DoubleGutter, 2},
		{"KsQs", "Th9d7h6c", DoubleGutter, 2},
		{"QsJs", "9d8h6c5d", DoubleGutter, 2},
		{"JsTs", "8h7d5d4c", DoubleGutter, 2},
		{"Ts9d", "7d6h4c3d", DoubleGutter, 2},
	})
}

func TestStraightDrawGutshot(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"KsQs", "Th9d7h", Gutshot, 2},
		{"KsJs", "Th9d6h", Gutshot, 2},
		{"KsJs", "Th9d6hJd", Gutshot, 1},
		{"KsJs", "Th9d6hKd", Gutshot, 1},
	})
}

func TestStraightDrawBackdoor(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"KsQs", "Th3d2h", BackdoorStraight, 2},
		{"KsQs", "Jh3d2h", BackdoorStraight, 2},
		{"Ks5s", "Jh3d2h", BackdoorStraight, 1},
		{"7s6s", "9h3d2h", BackdoorStraight, 2},

		// 4 and 5 high
		{"Ks2s", "9h4d3h", BackdoorStraight, 1},
		{"Ks2s", "9h5d3h", BackdoorStraight, 1},
		{"4s2s", "9h8d3h", BackdoorStraight, 2},
		{"5s2s", "Th9d3h", BackdoorStraight, 2},
		{"5s4s", "Th9d3h", BackdoorStraight, 2},
		{"5s4s", "Th9d2h", BackdoorStraight, 2},
		{"4s3s", "Th9d2h", BackdoorStraight, 2},

		// wheel
		{"AsQs", "9h3d2h", BackdoorWheel, 1},
		{"As2s", "Th3d2h", BackdoorWheel, 1},
		{"As2s", "Th3d9h", BackdoorWheel, 2},
		{"3s2s", "Ah3d9h", BackdoorWheel, 1},
		{"4s3s", "Ah9d9h", BackdoorWheel, 2},
	})
}

func TestStraightDrawNone(t *testing.T) {
	runStraightCases(t, []drawCase{
		{"AhKd", "", NoStraightDraw, 0},
		{"Ks2d", "8h7c3s", NoStraightDraw, 0},
		// only the board's ranks line up
		{"2c2d", "KhQdJs", NoStraightDraw, 0},
	})
}

func TestStraightDrawMasksCatalog(t *testing.T) {
	m := NewStraightDrawMasks()
	assert.Len(t, m.AHighBroad, 4)
	assert.Len(t, m.AHighWheel, 4)
	assert.Len(t, m.Backdoor, 6)
	assert.Len(t, m.BackdoorLow, 4)
	assert.Len(t, m.BackdoorAce, 6)
	for mask := range m.Backdoor {
		assert.NotZero(t, mask&(1<<4))
	}
	assert.True(t, m.AHighBroad.has(0b1_1011_0000_0000))
	assert.True(t, m.AHighWheel.has(0b1_0000_0000_0111))
	assert.True(t, m.BackdoorAce.has(0b1_0000_0000_1001))
}

func TestStraightDrawContributesHoleRank(t *testing.T) {
	for _, hole := range cards.Combos() {
		h, err := hand.FromCards(hole, []cards.Card{cards.MustParse("Th"), cards.MustParse("9d"), cards.MustParse("8s")})
		if err != nil {
			continue
		}
		d := StraightDrawOf(h)
		if d.IsDraw() {
			require.GreaterOrEqual(t, d.HoleCards, 1, "%s", h)
			require.LessOrEqual(t, d.HoleCards, 2, "%s", h)
		} else {
			require.Zero(t, d.HoleCards, "%s", h)
		}
	}
}

func TestFlushDraws(t *testing.T) {
	tests := []struct {
		hole, board string
		want        FlushDraw
	}{
		{"QsJd", "9s3d2c", FlushDraw{Label: NoFlushDraw, HighestRank: -1, Suit: -1}},

		{"AsQs", "9s3c2c", FlushDraw{Label: BackdoorFlush, HoleCards: 2, HighestRank: 1, Suit: int(cards.Spade)}},
		{"AsQd", "9s3s2c", FlushDraw{Label: BackdoorFlush, HoleCards: 1, HighestRank: 1, Suit: int(cards.Spade)}},
		{"AdQs", "9s3s2c", FlushDraw{Label: BackdoorFlush, HoleCards: 1, HighestRank: 3, Suit: int(cards.Spade)}},

		{"AsQs", "9s3s2c", FlushDraw{Label: FourFlush, HoleCards: 2, HighestRank: 1, Suit: int(cards.Spade)}},
		{"KsQs", "9s3s2c", FlushDraw{Label: FourFlush, HoleCards: 2, HighestRank: 2, Suit: int(cards.Spade)}},
		{"QsJs", "9s3s2c", FlushDraw{Label: FourFlush, HoleCards: 2, HighestRank: 3, Suit: int(cards.Spade)}},
		{"QsJs", "9s3s2cJc", FlushDraw{Label: FourFlush, HoleCards: 2, HighestRank: 3, Suit: int(cards.Spade)}},

		{"Ah2h", "KhQh7h", FlushDraw{Label: MadeFlush, HoleCards: 2, HighestRank: 1, Suit: int(cards.Heart)}},
		{"Th2c", "KhQh7h3h", FlushDraw{Label: MadeFlush, HoleCards: 1, HighestRank: 3, Suit: int(cards.Heart)}},

		// the board's own flush draw does not count
		{"Ac2d", "KhQh7h3h", FlushDraw{Label: NoFlushDraw, HighestRank: -1, Suit: -1}},
		{"AsKh", "9s3s8h4h", FlushDraw{Label: BackdoorFlush, HoleCards: 1, HighestRank: 2, Suit: int(cards.Heart), DoubleBackdoor: true}},
	}
	for _, tt := range tests {
		t.Run(tt.hole+"_"+tt.board, func(t *testing.T) {
			assert.Equal(t, tt.want, flushDrawType(tt.hole, tt.board))
		})
	}
}

func TestPairOf(t *testing.T) {
	tests := []struct {
		hole, board string
		want        PairCategory
		label       string
	}{
		{"AhAc", "Th2c2d", PairCategory{PocketPair, 0, 0}, "OverPair"},
		{"AhTc", "Th2c2d", PairCategory{RegularPair, 1, 1}, "TopPair[1]"},
		{"KhTc", "Th2c2d", PairCategory{RegularPair, 1, 2}, "TopPair[2]"},
		{"AhAc", "2h2c2d", PairCategory{PocketPair, 0, 0}, "OverPair"},
		{"7h7c", "Th9c2d", PairCategory{PocketPair, 2, 0}, "UnderPair[2]"},
		{"Ah9c", "Th9d2d", PairCategory{RegularPair, 2, 1}, "2ndPair[1]"},
		{"Kh2c", "Th9d2d", PairCategory{RegularPair, 3, 2}, "3rdPair[2]"},
		{"AhKc", "Th9d9s", PairCategory{BoardPair, 2, 1}, "BoardPair[1]"},
		{"5h3c", "KdKs5c", PairCategory{RegularPair, 2, 10}, "2ndPair[10]"},
	}
	for _, tt := range tests {
		t.Run(tt.hole+"_"+tt.board, func(t *testing.T) {
			got, ok := PairOf(hand.Must(tt.hole, tt.board))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.String())
		})
	}
}

// With three pairs available the highest pair the hole cards make is
// reported, not the last one scanned.
func TestPairOfThreePairs(t *testing.T) {
	h := hand.Must("Ah7c", "KdKsAc7d2s")
	require.Equal(t, hand.TwoPair, h.Type())
	require.Equal(t, hand.Pair, h.BoardType())

	got, ok := PairOf(h)
	require.True(t, ok)
	assert.Equal(t, PairCategory{RegularPair, 1, 0}, got)
	assert.Equal(t, "TopPair[0]", got.String())

	got, ok = PairOf(hand.Must("Qh7c", "KdKsQc7d2s"))
	require.True(t, ok)
	assert.Equal(t, PairCategory{RegularPair, 2, 0}, got)
	assert.Equal(t, "2ndPair[0]", got.String())
}

func TestPairOfIneligible(t *testing.T) {
	for _, in := range [][2]string{
		{"AhKd", "Th9d7h"},
		{"9h9d", "9c5s2d"},
		{"Ah2h", "KhQh7h"},
		// two pair on an unpaired board
		{"AhTc", "Th9dAc"},
	} {
		_, ok := PairOf(hand.Must(in[0], in[1]))
		assert.False(t, ok, "%v", in)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		hole, board, want string
	}{
		{"AhAc", "Th2c2d", "TWO_PAIR"},
		{"AhTc", "Th9c2d", "TopPair[1]"},
		{"KhTc", "Th9c2d", "TopPair[2]"},
		{"AhAc", "2h2c2d", "FULL_HOUSE"},
		{"QhQd", "", "OverPair"},
		{"AhKd", "Th9d7h", "HIGH_CARD"},
		{"AhKd", "Th9d9h", "BoardPair[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.hole+"_"+tt.board, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(hand.Must(tt.hole, tt.board)))
		})
	}
}

func TestHighCardOf(t *testing.T) {
	hc, ok := HighCardOf(hand.Must("AhKd", "Th9d7h"))
	require.True(t, ok)
	assert.Equal(t, HighCardCategory{Top: 0, Bottom: 0}, hc)

	hc, ok = HighCardOf(hand.Must("Jh8d", "KhTd6c"))
	require.True(t, ok)
	assert.Equal(t, HighCardCategory{Top: 1, Bottom: 2}, hc)

	hc, ok = HighCardOf(hand.Must("Ah5d", "Kh9d9c"))
	require.True(t, ok)
	assert.Equal(t, HighCardCategory{Top: 0, Bottom: 2}, hc)

	// the hole cards improve on the board
	_, ok = HighCardOf(hand.Must("Ah9d", "KhTd9c"))
	assert.False(t, ok)

	// trips boards are excluded
	_, ok = HighCardOf(hand.Must("AhKd", "9h9d9c"))
	assert.False(t, ok)
}
