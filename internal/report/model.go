package report

import (
	"time"

	"PokerLens/internal/game/category"
)

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Hole  string `json:"hole" binding:"required"`
	Board string `json:"board"` // empty pre-flop
}

// Row annotates one hole-card combo on a board. Pair and high card columns
// are nil where the category does not apply.
type Row struct {
	Board        string `json:"board"`
	Hand         string `json:"hand"`
	Category     string `json:"category"`
	HandType     string `json:"hand_type"`
	AdjustedType string `json:"adjusted_hand_type"`
	BoardType    string `json:"board_type"`

	PairType      *string `json:"pair_type,omitempty"`
	PairCardsSeen *int    `json:"pair_cards_seen,omitempty"`
	PairKicker    *int    `json:"pair_kicker,omitempty"`
	HighCard1Type *int    `json:"high_card_1_type,omitempty"`
	HighCard2Type *int    `json:"high_card_2_type,omitempty"`

	StraightType      string `json:"straight_type"`
	StraightCardsUsed int    `json:"straight_cards_used"`
	FlushType         string `json:"flush_type"`
	FlushCardsUsed    int    `json:"flush_cards_used"`
	FlushHighCard     int    `json:"flush_high_card"`
	DoubleBackdoor    bool   `json:"double_backdoor_flush,omitempty"`
}

// BoardReport is every combo left live by a board, classified. Texture is
// nil pre-flop.
type BoardReport struct {
	ID          string            `json:"id"`
	Board       string            `json:"board"`
	Texture     *category.Texture `json:"texture,omitempty"`
	Combos      int               `json:"combos"`
	Rows        []Row             `json:"rows"`
	Histogram   map[string]int    `json:"histogram"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
