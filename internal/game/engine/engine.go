package engine

import (
	"errors"
	"fmt"
	"time"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/dealer"
	"PokerLens/internal/game/hand"
	"PokerLens/internal/game/table"
)

// ---------------------
//   EVENT DEFINITION
// ---------------------

const (
	EventDealHole      = "deal_hole"
	EventDealCommunity = "deal_community"
	EventShowdown      = "showdown"
)

type Event struct {
	Name      string
	Table     string
	State     table.Street
	Community []cards.Card
	New       []cards.Card
	// set on deal_hole only
	Player string
	Hole   cards.Combo
	// set on showdown only
	Result *Result
}

// Listener receives every event of a runout in order.
type Listener interface {
	Publish(ev Event)
}

type ListenerFunc func(ev Event)

func (f ListenerFunc) Publish(ev Event) { f(ev) }

// Listeners fans every event out to each listener in order; nil entries
// are skipped.
type Listeners []Listener

func (ls Listeners) Publish(ev Event) {
	for _, l := range ls {
		if l != nil {
			l.Publish(ev)
		}
	}
}

// Result of a heads-up showdown. Winner is empty on a split pot.
type Result struct {
	Winner string
	Hands  map[string]*hand.Hand
}

var ErrFinished = errors.New("runout already at showdown")

// ---------------------
//       ENGINE
// ---------------------

// Engine deals one heads-up hand street by street. It is not safe for
// concurrent use; the manager serializes access.
type Engine struct {
	Table    *table.Table
	Dealer   *dealer.Dealer
	Listener Listener
	result   *Result
}

func NewEngine(t *table.Table, l Listener) (*Engine, error) {
	if len(t.Players) != 2 {
		return nil, fmt.Errorf("table %s: need 2 players, got %d", t.ID, len(t.Players))
	}
	if t.Players[0] == t.Players[1] {
		return nil, fmt.Errorf("table %s: duplicate player %q", t.ID, t.Players[0])
	}
	if l == nil {
		l = ListenerFunc(func(Event) {})
	}
	return &Engine{
		Table:    t,
		Dealer:   dealer.NewDealer(time.Now().UnixNano()),
		Listener: l,
	}, nil
}

// Start: 洗牌 + 发底牌
func (e *Engine) Start() {
	e.Dealer.NewDeck()
	e.Table.State = table.Preflop
	e.Table.Community = nil
	e.result = nil

	e.Table.Holes = e.Dealer.DealHoleCards(e.Table.Players)
	for _, p := range e.Table.Players {
		e.Listener.Publish(Event{
			Name:   EventDealHole,
			Table:  e.Table.ID,
			State:  e.Table.State,
			Player: p,
			Hole:   e.Table.Holes[p],
		})
	}
}

// --------------------------
//        下一阶段逻辑
// --------------------------

// NextRound deals the next street, or settles the hand after the river.
func (e *Engine) NextRound() error {
	switch e.Table.State {
	case table.Preflop, table.Flop, table.Turn:
		next := e.Table.State.Next()
		n := next.BoardSize() - len(e.Table.Community)
		newCards := e.Dealer.DealCommunity(n)
		e.Table.Community = append(e.Table.Community, newCards...)
		e.Table.State = next
		e.Listener.Publish(Event{
			Name:      EventDealCommunity,
			Table:     e.Table.ID,
			State:     next,
			Community: append([]cards.Card(nil), e.Table.Community...),
			New:       newCards,
		})
		return nil

	case table.River:
		res, err := e.showdown()
		if err != nil {
			return err
		}
		e.result = res
		e.Table.State = table.Showdown
		e.Listener.Publish(Event{
			Name:      EventShowdown,
			Table:     e.Table.ID,
			State:     table.Showdown,
			Community: append([]cards.Card(nil), e.Table.Community...),
			Result:    res,
		})
		return nil
	}
	return ErrFinished
}

// RunOut advances to showdown and returns the result.
func (e *Engine) RunOut() (*Result, error) {
	for e.Table.State != table.Showdown {
		if err := e.NextRound(); err != nil {
			return nil, err
		}
	}
	return e.result, nil
}

// Hands evaluates each player's holding on the current board.
func (e *Engine) Hands() (map[string]*hand.Hand, error) {
	out := make(map[string]*hand.Hand, len(e.Table.Players))
	for _, p := range e.Table.Players {
		h, err := hand.FromCards(e.Table.Holes[p], e.Table.Community)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p, err)
		}
		out[p] = h
	}
	return out, nil
}

// Result is nil until showdown.
func (e *Engine) Result() *Result { return e.result }

func (e *Engine) showdown() (*Result, error) {
	hands, err := e.Hands()
	if err != nil {
		return nil, err
	}
	a, b := e.Table.Players[0], e.Table.Players[1]
	res := &Result{Hands: hands}
	switch hands[a].Compare(hands[b]) {
	case 1:
		res.Winner = a
	case -1:
		res.Winner = b
	}
	return res, nil
}
