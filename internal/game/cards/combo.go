package cards

// Combo is a specific 2-card holding.
type Combo [2]Card

func (c Combo) String() string {
	return c[0].String() + c[1].String()
}

func (c Combo) Has(card Card) bool {
	return c[0] == card || c[1] == card
}

// Deck returns the 52 cards in ascending order.
func Deck() []Card {
	deck := make([]Card, 0, NumCards)
	for c := Card(0); c < NumCards; c++ {
		deck = append(deck, c)
	}
	return deck
}

// Combos lists every holding that avoids the dead cards, the higher card
// first in each combo and the strongest holdings first.
func Combos(dead ...Card) []Combo {
	var blocked [NumCards]bool
	for _, d := range dead {
		if d.Valid() {
			blocked[d] = true
		}
	}
	out := make([]Combo, 0, NumCards*(NumCards-1)/2)
	for hi := NumCards - 1; hi > 0; hi-- {
		if blocked[hi] {
			continue
		}
		for lo := hi - 1; lo >= 0; lo-- {
			if !blocked[lo] {
				out = append(out, Combo{Card(hi), Card(lo)})
			}
		}
	}
	return out
}
