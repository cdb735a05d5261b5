package category

import (
	"PokerLens/internal/game/bitutil"
	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/hand"
)

// Board texture labels. Connectedness also uses OESD and Gutshot.
const (
	UnpairedBoard = "UNPAIRED"
	PairedBoard   = "PAIRED"
	TripsBoard    = "TOAK"

	Rainbow       = "RAINBOW"
	TwoTone       = "FD"
	Monotone      = "MONOTONE"
	FlushPossible = "FLUSH_POSSIBLE"

	StraightPossible = "STRAIGHT"
	Disconnected     = "DISCONNECTED"
)

// Texture summarizes a flop, turn or river board.
//
// Connectedness is STRAIGHT when three board ranks fit one five-rank
// window, so two hole cards can complete a straight. Otherwise it is OESD
// or GUTSHOT when two adjacent board ranks leave room for a four-card
// draw, open at both ends or only one.
type Texture struct {
	HighCard      string `json:"high_card"`
	AHML          string `json:"ahml"`
	Pairedness    string `json:"pairedness"`
	Suitedness    string `json:"suitedness"`
	Connectedness string `json:"connectedness"`
	Wheel         bool   `json:"wheel,omitempty"`
	Broadway      bool   `json:"broadway,omitempty"`
	WheelDraw     bool   `json:"wheel_draw,omitempty"`
	BroadwayDraw  bool   `json:"broadway_draw,omitempty"`
}

// TextureOf is defined for boards of three or more cards.
func TextureOf(board []cards.Card) (Texture, bool) {
	if len(board) < 3 {
		return Texture{}, false
	}
	c := hand.CountsOf(board)

	var t Texture
	top := cards.Rank(31 - bitutil.LeadingZeros(c.Rankset))
	t.HighCard = top.String() + "_high"
	for r := cards.NumRanks - 1; r >= 0; r-- {
		for i := uint8(0); i < c.RankCount[r]; i++ {
			t.AHML += ahml(cards.Rank(r))
		}
	}

	switch {
	case c.RanksetOfCount[3]|c.RanksetOfCount[4] != 0:
		t.Pairedness = TripsBoard
	case c.RanksetOfCount[2] != 0:
		t.Pairedness = PairedBoard
	default:
		t.Pairedness = UnpairedBoard
	}

	most := 0
	for _, n := range c.SuitCount {
		most = max(most, n)
	}
	switch {
	case most == c.Cards:
		t.Suitedness = Monotone
	case most >= 3:
		t.Suitedness = FlushPossible
	case most == 2:
		t.Suitedness = TwoTone
	default:
		t.Suitedness = Rainbow
	}

	t.Connectedness = connectedness(c.Rankset, &t)
	return t, true
}

func connectedness(rankset uint32, t *Texture) string {
	t.Wheel = bitutil.CountOnes(rankset&bitutil.WheelMask) >= 3
	t.Broadway = bitutil.CountOnes(rankset&broadwayMask) >= 3
	straight := t.Wheel
	for off := 0; off <= topOffset; off++ {
		if bitutil.CountOnes(rankset>>off&0x1F) >= 3 {
			straight = true
		}
	}
	if straight {
		return StraightPossible
	}

	// distinct ranks high to low; -1 is the ace playing low
	var ranks []int
	for r := cards.NumRanks - 1; r >= 0; r-- {
		if rankset&(1<<r) != 0 {
			ranks = append(ranks, r)
		}
	}
	if rankset&bitutil.AceBit != 0 {
		ranks = append(ranks, -1)
	}

	conn := Disconnected
	for i := 0; i+1 < len(ranks); i++ {
		hi, lo := ranks[i], ranks[i+1]
		switch gap := hi - lo; {
		case gap >= 1 && gap <= 3:
			switch {
			case hi == int(cards.Ace):
				conn = Gutshot
				t.BroadwayDraw = true
			case lo == -1:
				conn = Gutshot
				t.WheelDraw = true
			default:
				return OESD
			}
		case gap == 4:
			conn = Gutshot
		}
	}
	return conn
}

// A, then high (T-K), middle (6-9) and low (2-5).
func ahml(r cards.Rank) string {
	switch {
	case r == cards.Ace:
		return "A"
	case r >= cards.Ten:
		return "H"
	case r >= cards.Six:
		return "M"
	}
	return "L"
}
