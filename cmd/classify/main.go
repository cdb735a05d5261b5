// Command classify prints the classification of one holding, or with
// -board the category histogram of every combo on a board.
//
//	classify AhKd Th9d7h
//	classify -seed 7 -street 4
//	classify -board Th9d7h
//	classify -runout -seed 7
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/dealer"
	"PokerLens/internal/game/manager"
	"PokerLens/internal/report"
	"PokerLens/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 1)
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")).Width(22)
	valStyle  = lipgloss.NewStyle().Bold(true)
	barStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	noneValue = lipgloss.NewStyle().Faint(true).Render("-")
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "dealer seed when no hand is given")
	street := flag.Int("street", 3, "board size for a dealt hand: 0, 3, 4 or 5")
	board := flag.String("board", "", "print the category histogram for this board instead")
	workers := flag.Int("workers", 8, "classification workers for -board")
	runout := flag.Bool("runout", false, "deal a heads-up hand to showdown, street by street")
	level := flag.String("log", "warn", "log level")
	flag.Parse()
	utils.Init(*level)

	if *runout {
		out, err := renderRunout(*seed)
		if err != nil {
			utils.Log.Fatal("runout", "err", err)
		}
		fmt.Println(out)
		return
	}

	svc := report.NewService(report.NewMemoryRepo(), *workers, 0, utils.Log)

	if *board != "" {
		if *board == report.EmptyBoard {
			*board = ""
		}
		rep, err := svc.Board(context.Background(), *board)
		if err != nil {
			utils.Log.Fatal("report", "err", err)
		}
		fmt.Println(renderHistogram(rep))
		return
	}

	var hole, b string
	switch flag.NArg() {
	case 0:
		h, bc := dealer.NewDealer(*seed).Deal(*street)
		hole, b = h.String(), cards.FormatList(bc)
	case 1, 2:
		hole, b = flag.Arg(0), flag.Arg(1)
	default:
		fmt.Fprintln(os.Stderr, "usage: classify [hole [board]]")
		os.Exit(2)
	}

	row, err := svc.Classify(hole, b)
	if err != nil {
		utils.Log.Fatal("classify", "err", err)
	}
	fmt.Println(renderRow(row))
}

func renderRow(row *report.Row) string {
	board := row.Board
	if board == "" {
		board = "preflop"
	}
	lines := []string{titleStyle.Render(row.Hand + " on " + board)}
	add := func(k, v string) {
		lines = append(lines, keyStyle.Render(k)+valStyle.Render(v))
	}
	add("category", row.Category)
	add("hand type", row.HandType)
	add("board adjusted", row.AdjustedType)
	add("board type", row.BoardType)
	add("pair type", strOr(row.PairType))
	add("pair cards seen", intOr(row.PairCardsSeen))
	add("pair kicker", intOr(row.PairKicker))
	add("high cards", intOr(row.HighCard1Type)+" / "+intOr(row.HighCard2Type))
	add("straight draw", fmt.Sprintf("%s (%d)", row.StraightType, row.StraightCardsUsed))
	flush := fmt.Sprintf("%s (%d, nut %d)", row.FlushType, row.FlushCardsUsed, row.FlushHighCard)
	if row.DoubleBackdoor {
		flush += " double backdoor"
	}
	add("flush draw", flush)
	return strings.Join(lines, "\n")
}

func renderHistogram(rep *report.BoardReport) string {
	board := rep.Board
	if board == "" {
		board = "preflop"
	}
	type bucket struct {
		label string
		n     int
	}
	buckets := make([]bucket, 0, len(rep.Histogram))
	for k, n := range rep.Histogram {
		buckets = append(buckets, bucket{k, n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].n != buckets[j].n {
			return buckets[i].n > buckets[j].n
		}
		return buckets[i].label < buckets[j].label
	})

	lines := []string{titleStyle.Render(fmt.Sprintf("%s: %d combos", board, rep.Combos))}
	if tx := rep.Texture; tx != nil {
		lines = append(lines, keyStyle.Render("texture")+valStyle.Render(strings.Join([]string{
			tx.HighCard, tx.AHML, tx.Pairedness, tx.Suitedness, tx.Connectedness}, " ")))
	}
	for _, b := range buckets {
		width := b.n * 40 / rep.Combos
		lines = append(lines, keyStyle.Render(b.label)+
			valStyle.Render(fmt.Sprintf("%5d ", b.n))+
			barStyle.Render(strings.Repeat("█", width)))
	}
	return strings.Join(lines, "\n")
}

func renderRunout(seed int64) (string, error) {
	mgr := manager.NewManager(manager.LogListener(utils.Log))
	s, err := mgr.Start([]string{"hero", "villain"}, &seed)
	if err != nil {
		return "", err
	}
	var blocks []string
	for {
		lines := []string{titleStyle.Render(string(s.State) + " " + s.Board)}
		for _, p := range s.Players {
			lines = append(lines, keyStyle.Render(p.Player+" "+p.Row.Hand)+valStyle.Render(p.Row.Category)+
				" "+p.Row.StraightType+" "+p.Row.FlushType)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
		if s.Winner != nil {
			break
		}
		if s, err = mgr.Next(s.ID); err != nil {
			return "", err
		}
	}
	winner := "split pot"
	if *s.Winner != "" {
		winner = *s.Winner + " wins"
	}
	blocks = append(blocks, titleStyle.Render(winner))
	return strings.Join(blocks, "\n\n"), nil
}

func strOr(s *string) string {
	if s == nil {
		return noneValue
	}
	return *s
}

func intOr(n *int) string {
	if n == nil {
		return noneValue
	}
	return fmt.Sprint(*n)
}
