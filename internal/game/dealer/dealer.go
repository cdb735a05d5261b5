package dealer

import (
	"math/rand"

	"PokerLens/internal/game/cards"
)

// Dealer 只负责洗牌与发牌（无规则判断）
type Dealer struct {
	deck []cards.Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]cards.Card, 0, cards.NumCards),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Reseed restarts the shuffle sequence; the next NewDeck is reproducible.
func (d *Dealer) Reseed(seed int64) {
	d.rnd = rand.New(rand.NewSource(seed))
}

// NewDeck resets to a full shuffled deck.
func (d *Dealer) NewDeck() {
	d.deck = cards.Deck()
	d.shuffle()
}

func (d *Dealer) shuffle() {
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// DealHoleCards deals 2 cards to each player, one at a time around the table.
func (d *Dealer) DealHoleCards(players []string) map[string]cards.Combo {
	out := make(map[string]cards.Combo, len(players))
	for i := 0; i < 2; i++ {
		for _, p := range players {
			c := out[p]
			c[i] = d.draw()
			out[p] = c
		}
	}
	return out
}

// DealCommunity deals n board cards (no burn).
func (d *Dealer) DealCommunity(n int) []cards.Card {
	out := make([]cards.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.draw())
	}
	return out
}

// Deal deals one heads-up holding plus a board of boardSize cards from a
// fresh deck.
func (d *Dealer) Deal(boardSize int) (cards.Combo, []cards.Card) {
	d.NewDeck()
	hole := cards.Combo{d.draw(), d.draw()}
	return hole, d.DealCommunity(boardSize)
}

// Remaining is the number of undealt cards.
func (d *Dealer) Remaining() int { return len(d.deck) }

func (d *Dealer) draw() cards.Card {
	if len(d.deck) == 0 {
		// should not happen if properly invoked
		d.NewDeck()
	}
	c := d.deck[0]
	d.deck = d.deck[1:]
	return c
}
