package table

import (
	"time"

	"PokerLens/internal/game/cards"
)

type Street string

const (
	Preflop  Street = "preflop"
	Flop     Street = "flop"
	Turn     Street = "turn"
	River    Street = "river"
	Showdown Street = "showdown"
)

// BoardSize is the number of community cards out on each street.
func (s Street) BoardSize() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River, Showdown:
		return 5
	}
	return 0
}

// Next is the street that follows s; Showdown is terminal.
func (s Street) Next() Street {
	switch s {
	case Preflop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	}
	return Showdown
}

// 简化版数据结构：单挑（两名玩家），无下注
type Table struct {
	ID        string
	Players   []string
	CreatedAt time.Time

	// 运行时状态
	Holes     map[string]cards.Combo
	Community []cards.Card
	State     Street
}

func New(id string, players []string) *Table {
	return &Table{
		ID:        id,
		Players:   append([]string(nil), players...),
		CreatedAt: time.Now(),
		Holes:     make(map[string]cards.Combo, len(players)),
		State:     Preflop,
	}
}

// Board is the community cards as a card string, "" pre-flop.
func (t *Table) Board() string { return cards.FormatList(t.Community) }
