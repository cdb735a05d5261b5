package manager

import (
	"errors"
	"fmt"
	"sync"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/engine"
	"PokerLens/internal/game/table"
	"PokerLens/internal/report"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("runout not found")

// PlayerView is one player's holding and its classification on the
// current street.
type PlayerView struct {
	Player string     `json:"player"`
	Row    report.Row `json:"row"`
}

type Snapshot struct {
	ID      string       `json:"id"`
	State   table.Street `json:"state"`
	Board   string       `json:"board"`
	Players []PlayerView `json:"players"`
	// set at showdown; empty string for a split pot
	Winner *string `json:"winner,omitempty"`
}

type runout struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// Manager 管理所有进行中的单挑发牌
type Manager struct {
	mu       sync.RWMutex
	runouts  map[string]*runout
	listener engine.Listener
}

func NewManager(l engine.Listener) *Manager {
	return &Manager{
		runouts:  make(map[string]*runout),
		listener: l,
	}
}

// LogListener logs every engine event at debug level.
func LogListener(l *log.Logger) engine.Listener {
	return engine.ListenerFunc(func(ev engine.Event) {
		kv := []any{"table", ev.Table, "state", ev.State}
		switch ev.Name {
		case engine.EventDealHole:
			kv = append(kv, "player", ev.Player, "hole", ev.Hole)
		case engine.EventDealCommunity:
			kv = append(kv, "new", cards.FormatList(ev.New))
		case engine.EventShowdown:
			kv = append(kv, "board", cards.FormatList(ev.Community), "winner", ev.Result.Winner)
		}
		l.Debug(ev.Name, kv...)
	})
}

// Start deals a new heads-up hand under a fresh id. A nil seed shuffles
// from the clock.
func (m *Manager) Start(players []string, seed *int64) (*Snapshot, error) {
	return m.StartTable(uuid.NewString(), players, seed)
}

// StartTable 创建桌子并发底牌
func (m *Manager) StartTable(id string, players []string, seed *int64) (*Snapshot, error) {
	eng, err := engine.NewEngine(table.New(id, players), m.listener)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		eng.Dealer.Reseed(*seed)
	}

	m.mu.Lock()
	if _, ok := m.runouts[id]; ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("runout %s exists", id)
	}
	r := &runout{eng: eng}
	m.runouts[id] = r
	r.mu.Lock()
	m.mu.Unlock()

	defer r.mu.Unlock()
	eng.Start()
	return snapshot(eng)
}

func (m *Manager) lookup(id string) (*runout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runouts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

func (m *Manager) Get(id string) (*Snapshot, error) {
	r, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.eng)
}

// Next deals the next street, or settles the hand after the river.
func (m *Manager) Next(id string) (*Snapshot, error) {
	r, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.eng.NextRound(); err != nil {
		return nil, err
	}
	return snapshot(r.eng)
}

func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runouts[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.runouts, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.runouts)
}

func snapshot(eng *engine.Engine) (*Snapshot, error) {
	hands, err := eng.Hands()
	if err != nil {
		return nil, err
	}
	s := &Snapshot{
		ID:    eng.Table.ID,
		State: eng.Table.State,
		Board: eng.Table.Board(),
	}
	for _, p := range eng.Table.Players {
		s.Players = append(s.Players, PlayerView{Player: p, Row: report.NewRow(hands[p])})
	}
	if res := eng.Result(); res != nil {
		w := res.Winner
		s.Winner = &w
	}
	return s, nil
}
