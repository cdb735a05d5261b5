package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/category"
	"PokerLens/internal/game/hand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo     Repo
	workers  int
	cacheTTL int // seconds
	log      *log.Logger
}

func NewService(repo Repo, workers, cacheTTL int, logger *log.Logger) *Service {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{repo: repo, workers: workers, cacheTTL: cacheTTL, log: logger}
}

// Classify annotates a single holding.
func (s *Service) Classify(hole, board string) (*Row, error) {
	h, err := hand.New(hole, board)
	if err != nil {
		return nil, err
	}
	row := NewRow(h)
	return &row, nil
}

// Board classifies every combo the board leaves live. Reports are cached
// per normalized board; a cache failure is logged and the report is
// computed anyway.
func (s *Service) Board(ctx context.Context, board string) (*BoardReport, error) {
	bc, err := hand.ParseBoard(board)
	if err != nil {
		return nil, err
	}
	key := cards.FormatList(bc)

	if cached, err := s.repo.Get(ctx, key); err != nil {
		s.log.Warn("report cache read failed", "board", key, "err", err)
	} else if cached != nil {
		s.log.Debug("report cache hit", "board", key)
		return cached, nil
	}

	start := time.Now()
	rep, err := s.build(ctx, bc)
	if err != nil {
		return nil, fmt.Errorf("build report for %q: %w", key, err)
	}
	s.log.Info("report built", "board", key, "combos", rep.Combos, "took", time.Since(start))

	if err := s.repo.Save(ctx, rep, s.cacheTTL); err != nil {
		s.log.Warn("report cache write failed", "board", key, "err", err)
	}
	return rep, nil
}

func (s *Service) build(ctx context.Context, board []cards.Card) (*BoardReport, error) {
	combos := cards.Combos(board...)
	rows := make([]Row, len(combos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, combo := range combos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := hand.FromCards(combo, board)
			if err != nil {
				return err
			}
			rows[i] = NewRow(h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hist := make(map[string]int)
	for _, r := range rows {
		hist[r.Category]++
	}
	rep := &BoardReport{
		ID:          uuid.NewString(),
		Board:       cards.FormatList(board),
		Combos:      len(rows),
		Rows:        rows,
		Histogram:   hist,
		GeneratedAt: time.Now().UTC(),
	}
	if tx, ok := category.TextureOf(board); ok {
		rep.Texture = &tx
	}
	return rep, nil
}

// Invalidate drops a cached report.
func (s *Service) Invalidate(ctx context.Context, board string) error {
	bc, err := hand.ParseBoard(board)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, cards.FormatList(bc))
}

// NewRow flattens every classification of h into one report row.
func NewRow(h *hand.Hand) Row {
	row := Row{
		Board:        h.Board(),
		Hand:         h.Hole(),
		Category:     category.Categorize(h),
		HandType:     h.Type().String(),
		AdjustedType: h.BoardAdjustedType().String(),
		BoardType:    h.BoardType().String(),
	}
	if pc, ok := category.PairOf(h); ok {
		pt := pc.Type.String()
		row.PairType = &pt
		row.PairCardsSeen = &pc.BoardCardsSeen
		row.PairKicker = &pc.Kicker
	}
	if hc, ok := category.HighCardOf(h); ok {
		row.HighCard1Type = &hc.Top
		row.HighCard2Type = &hc.Bottom
	}

	sd := category.StraightDrawOf(h)
	row.StraightType, row.StraightCardsUsed = sd.Label, sd.HoleCards

	fd := category.FlushDrawOf(h)
	row.FlushType, row.FlushCardsUsed, row.FlushHighCard = fd.Label, fd.HoleCards, fd.HighestRank
	row.DoubleBackdoor = fd.DoubleBackdoor
	return row
}
