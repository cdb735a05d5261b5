package hand

import "cmp"

// Type is the poker category of a hand. The order is the strength order.
type Type uint8

const (
	HighCard Type = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

var typeNames = [...]string{
	"HIGH_CARD",
	"PAIR",
	"TWO_PAIR",
	"TRIPS",
	"STRAIGHT",
	"FLUSH",
	"FULL_HOUSE",
	"QUADS",
	"STRAIGHT_FLUSH",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

const (
	typeShift         = 26
	distinguisherMask = 1<<typeShift - 1
)

// Evaluation packs a Type with rank bits that order hands of that type:
// (Type << 26) | distinguisher. Only values from this package compare.
type Evaluation uint32

func pack(t Type, distinguisher uint32) Evaluation {
	return Evaluation(uint32(t)<<typeShift | distinguisher&distinguisherMask)
}

func (e Evaluation) Type() Type { return Type(e >> typeShift) }

func (e Evaluation) Distinguisher() uint32 { return uint32(e) & distinguisherMask }

// Compare returns -1, 0 or +1 as e is weaker than, equal to or stronger than o.
func (e Evaluation) Compare(o Evaluation) int {
	if c := cmp.Compare(e.Type(), o.Type()); c != 0 {
		return c
	}
	return cmp.Compare(e.Distinguisher(), o.Distinguisher())
}
