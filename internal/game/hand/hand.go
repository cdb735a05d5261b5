// Package hand evaluates a heads-up Hold'em holding (2 hole cards plus a
// 0, 3, 4 or 5 card board) with rankset arithmetic, and keeps the
// hole-only and board-only accounting the classifiers need to tell what
// the hole cards add to the board.
package hand

import (
	"fmt"
	"sync"

	"PokerLens/internal/game/cards"
)

// InvalidHandError reports hole/board inputs outside the supported shape.
type InvalidHandError struct {
	Hole   string
	Board  string
	Reason string
	Err    error
}

func (e *InvalidHandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid hand %q on %q: %s: %v", e.Hole, e.Board, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid hand %q on %q: %s", e.Hole, e.Board, e.Reason)
}

func (e *InvalidHandError) Unwrap() error { return e.Err }

// Hand is immutable after New. The evaluation is computed once, on the
// first call that needs it, and is safe for concurrent use.
type Hand struct {
	hole       string
	board      string
	holeCards  []cards.Card
	boardCards []cards.Card

	once sync.Once
	st   state
}

type state struct {
	all   Counts
	hole  Counts
	board Counts

	evaluation Evaluation
	boardType  Type
}

// New validates hole and board and returns an unevaluated Hand.
func New(hole, board string) (*Hand, error) {
	hc, err := cards.ParseList(hole)
	if err != nil {
		return nil, &InvalidHandError{Hole: hole, Board: board, Reason: "bad hole cards", Err: err}
	}
	if len(hc) != 2 {
		return nil, &InvalidHandError{Hole: hole, Board: board,
			Reason: fmt.Sprintf("want 2 hole cards, got %d", len(hc))}
	}
	if hc[0] == hc[1] {
		return nil, &InvalidHandError{Hole: hole, Board: board,
			Reason: fmt.Sprintf("duplicate card %s", hc[0])}
	}
	bc, err := ParseBoard(board)
	if err != nil {
		err.(*InvalidHandError).Hole = hole
		return nil, err
	}
	for _, c := range bc {
		if c == hc[0] || c == hc[1] {
			return nil, &InvalidHandError{Hole: hole, Board: board,
				Reason: fmt.Sprintf("duplicate card %s", c)}
		}
	}
	return &Hand{hole: hole, board: board, holeCards: hc, boardCards: bc}, nil
}

// ParseBoard decodes a board on its own: 0, 3, 4 or 5 distinct cards.
// Errors are *InvalidHandError with an empty Hole.
func ParseBoard(board string) ([]cards.Card, error) {
	bc, err := cards.ParseList(board)
	if err != nil {
		return nil, &InvalidHandError{Board: board, Reason: "bad board cards", Err: err}
	}
	switch len(bc) {
	case 0, 3, 4, 5:
	default:
		return nil, &InvalidHandError{Board: board,
			Reason: fmt.Sprintf("want 0, 3, 4 or 5 board cards, got %d", len(bc))}
	}
	var seen [cards.NumCards]bool
	for _, c := range bc {
		if seen[c] {
			return nil, &InvalidHandError{Board: board, Reason: fmt.Sprintf("duplicate card %s", c)}
		}
		seen[c] = true
	}
	return bc, nil
}

// Must is New for inputs known to be valid.
func Must(hole, board string) *Hand {
	h, err := New(hole, board)
	if err != nil {
		panic(err)
	}
	return h
}

// FromCards builds a Hand from already-decoded cards.
func FromCards(hole cards.Combo, board []cards.Card) (*Hand, error) {
	return New(hole.String(), cards.FormatList(board))
}

func (h *Hand) eval() *state {
	h.once.Do(func() {
		st := &h.st
		st.all = countCards(h.holeCards, h.boardCards)
		st.hole = countCards(h.holeCards)
		st.board = countCards(h.boardCards)
		st.evaluation = evaluate(&st.all)
		st.boardType = evaluate(&st.board).Type()
	})
	return &h.st
}

func (h *Hand) Hole() string {
	return h.hole
}

func (h *Hand) Board() string {
	return h.board
}

func (h *Hand) HoleCards() []cards.Card {
	return append([]cards.Card(nil), h.holeCards...)
}

func (h *Hand) BoardCards() []cards.Card {
	return append([]cards.Card(nil), h.boardCards...)
}

func (h *Hand) String() string {
	return h.hole + "|" + h.board
}

func (h *Hand) Evaluate() Evaluation {
	return h.eval().evaluation
}

func (h *Hand) Type() Type {
	return h.eval().evaluation.Type()
}

func (h *Hand) BoardType() Type {
	return h.eval().boardType
}

func (h *Hand) All() Counts {
	return h.eval().all
}

func (h *Hand) HoleCounts() Counts {
	return h.eval().hole
}

func (h *Hand) BoardCounts() Counts {
	return h.eval().board
}

func (h *Hand) Compare(o *Hand) int {
	return h.Evaluate().Compare(o.Evaluate())
}

func (h *Hand) IsStraightFlush() bool {
	return h.Type() == StraightFlush
}

func (h *Hand) IsQuads() bool {
	return h.Type() == Quads
}

func (h *Hand) IsFullHouse() bool {
	return h.Type() == FullHouse
}

func (h *Hand) IsFlush() bool {
	return h.Type() == Flush
}

func (h *Hand) IsStraight() bool {
	return h.Type() == Straight
}

func (h *Hand) IsTrips() bool {
	return h.Type() == Trips
}

func (h *Hand) IsTwoPair() bool {
	return h.Type() == TwoPair
}

func (h *Hand) IsPair() bool {
	return h.Type() == Pair
}

func (h *Hand) IsHighCard() bool {
	return h.Type() == HighCard
}

// HandType returns Type, or BoardAdjustedType when adjustForBoard is set.
func (h *Hand) HandType(adjustForBoard bool) Type {
	if adjustForBoard {
		return h.BoardAdjustedType()
	}
	return h.Type()
}
