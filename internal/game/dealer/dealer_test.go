package dealer

import (
	"testing"
	"time"

	"PokerLens/internal/game/cards"
)

// 工具：检查是否有重复牌
func hasDuplicates(cs []cards.Card) bool {
	seen := make(map[cards.Card]bool)
	for _, c := range cs {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func TestNewDeck(t *testing.T) {
	d := NewDealer(time.Now().UnixNano())
	d.NewDeck()

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	if hasDuplicates(d.deck) {
		t.Fatalf("deck should not contain duplicates")
	}

	suits := make(map[cards.Suit]bool)
	ranks := make(map[cards.Rank]bool)
	for _, c := range d.deck {
		suits[c.Suit()] = true
		ranks[c.Rank()] = true
	}
	if len(suits) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(suits))
	}
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	d1 := NewDealer(42)
	d1.NewDeck()
	d2 := NewDealer(42)
	d2.NewDeck()

	for i := range d1.deck {
		if d1.deck[i] != d2.deck[i] {
			t.Fatalf("expected identical decks for same seed")
		}
	}

	d3 := NewDealer(99)
	d3.NewDeck()
	diff := false
	for i := range d1.deck {
		if d1.deck[i] != d3.deck[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatalf("expected deck with different seed to differ")
	}
}

func TestDealHoleCards(t *testing.T) {
	d := NewDealer(1)
	d.NewDeck()
	players := []string{"A", "B", "C"}
	hands := d.DealHoleCards(players)

	all := []cards.Card{}
	for _, p := range players {
		h, ok := hands[p]
		if !ok {
			t.Fatalf("player %s got no cards", p)
		}
		all = append(all, h[0], h[1])
	}
	if hasDuplicates(all) {
		t.Fatalf("hole cards contain duplicates")
	}
	if d.Remaining() != 52-6 {
		t.Fatalf("expected remaining deck 46, got %d", d.Remaining())
	}
}

func TestDealCommunity(t *testing.T) {
	d := NewDealer(2)
	d.NewDeck()

	flop := d.DealCommunity(3)
	turn := d.DealCommunity(1)
	river := d.DealCommunity(1)

	if len(flop) != 3 || len(turn) != 1 || len(river) != 1 {
		t.Fatalf("expected 3+1+1 cards, got %d %d %d", len(flop), len(turn), len(river))
	}

	all := append(append(flop, turn...), river...)
	if hasDuplicates(all) {
		t.Fatalf("community cards contain duplicates")
	}
	if d.Remaining() != 52-5 {
		t.Fatalf("expected 47 remaining, got %d", d.Remaining())
	}
}

func TestDeal(t *testing.T) {
	d := NewDealer(5)
	for _, size := range []int{0, 3, 4, 5} {
		hole, board := d.Deal(size)
		if len(board) != size {
			t.Fatalf("expected %d board cards, got %d", size, len(board))
		}
		if hasDuplicates(append([]cards.Card{hole[0], hole[1]}, board...)) {
			t.Fatalf("deal %s %v contains duplicates", hole, board)
		}
		if d.Remaining() != 52-2-size {
			t.Fatalf("expected %d remaining, got %d", 52-2-size, d.Remaining())
		}
	}
}

func TestDrawResetsDeck(t *testing.T) {
	d := NewDealer(3)
	d.NewDeck()
	for i := 0; i < 52; i++ {
		d.draw()
	}
	c := d.draw()
	if !c.Valid() {
		t.Fatalf("invalid card returned after deck reset")
	}
	if d.Remaining() != 51 {
		t.Fatalf("expected 51 remaining after reset, got %d", d.Remaining())
	}
}

func TestReseed(t *testing.T) {
	d1 := NewDealer(1)
	d1.Reseed(42)
	d1.NewDeck()
	d2 := NewDealer(42)
	d2.NewDeck()
	for i := range d1.deck {
		if d1.deck[i] != d2.deck[i] {
			t.Fatalf("reseeded dealer should match a fresh dealer with the same seed")
		}
	}
}
