package websocket

import (
	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/engine"
)

// OutgoingMessage is one runout event as written to subscribers.
type OutgoingMessage struct {
	Event  string `json:"event"`
	Runout string `json:"runout"`
	State  string `json:"state"`
	Board  string `json:"board"`
	New    string `json:"new,omitempty"`
	Player string `json:"player,omitempty"`
	Hole   string `json:"hole,omitempty"`
	// showdown only; empty string for a split pot
	Winner *string `json:"winner,omitempty"`
}

func FromEvent(ev engine.Event) OutgoingMessage {
	msg := OutgoingMessage{
		Event:  ev.Name,
		Runout: ev.Table,
		State:  string(ev.State),
		Board:  cards.FormatList(ev.Community),
		New:    cards.FormatList(ev.New),
		Player: ev.Player,
	}
	if ev.Name == engine.EventDealHole {
		msg.Hole = ev.Hole.String()
	}
	if ev.Result != nil {
		w := ev.Result.Winner
		msg.Winner = &w
	}
	return msg
}
