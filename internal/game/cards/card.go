package cards

import (
	"fmt"
	"strings"
)

const (
	RankChars = "23456789TJQKA"
	SuitChars = "cdhs"

	NumRanks = 13
	NumSuits = 4
	NumCards = NumRanks * NumSuits
)

// Rank 0..12 => 2..A
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return string(RankChars[r])
}

// Suit 0..3 => c, d, h, s
type Suit uint8

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(SuitChars[s])
}

// Card 编码: 4*rank + suit, 取值 [0,52)
type Card uint8

func New(r Rank, s Suit) Card {
	return Card(uint8(r)*NumSuits + uint8(s))
}

func (c Card) Rank() Rank { return Rank(c / NumSuits) }
func (c Card) Suit() Suit { return Suit(c % NumSuits) }

// Bit is the card's rank as a one-bit rankset.
func (c Card) Bit() uint32 { return 1 << c.Rank() }

func (c Card) Valid() bool { return c < NumCards }

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// InvalidCardError is returned for a malformed card token.
type InvalidCardError struct {
	Token  string
	Reason string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

// Parse converts a 2-character token such as "Ah" into a Card.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, &InvalidCardError{Token: s, Reason: "want 2 characters"}
	}
	r := strings.IndexByte(RankChars, s[0])
	if r < 0 {
		return 0, &InvalidCardError{Token: s, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}
	su := strings.IndexByte(SuitChars, s[1])
	if su < 0 {
		return 0, &InvalidCardError{Token: s, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}
	return New(Rank(r), Suit(su)), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList splits a concatenation like "Th9d7h" into cards.
func ParseList(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, &InvalidCardError{Token: s, Reason: "odd length card list"}
	}
	out := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func FormatList(cs []Card) string {
	var b strings.Builder
	b.Grow(len(cs) * 2)
	for _, c := range cs {
		b.WriteString(c.String())
	}
	return b.String()
}
