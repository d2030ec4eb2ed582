package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/boardkit/poker"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	trueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	falseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// ClassifyCmd prints a board's texture flags and board ranking.
type ClassifyCmd struct {
	Board string `arg:"" help:"Board cards, e.g. 'QsTs2h' or 'QsTs2hKd9c'"`
}

func (c *ClassifyCmd) Run() error {
	board, err := poker.NewBoard(c.Board)
	if err != nil {
		return err
	}

	cards := make([]string, 0, board.Len())
	for _, card := range board.Cards() {
		cards = append(cards, card.String())
	}
	fmt.Println(headerStyle.Render("Board: ") + cardStyle.Render(strings.Join(cards, " ")))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	flags := []struct {
		name  string
		value bool
	}{
		{"rainbow", board.IsRainbow()},
		{"monotone", board.IsMonotone()},
		{"flush draw", board.HasFlushDraw()},
		{"straight draw", board.HasStraightDraw()},
		{"gutshot", board.HasGutshot()},
		{"pair", board.HasPair()},
		{"two pair", board.HasDouble()},
		{"trips", board.HasTrip()},
		{"straight", board.HasStraight()},
		{"flush", board.HasFlush()},
		{"full house", board.HasFullHouse()},
		{"quads", board.HasQuad()},
		{"straight flush", board.HasStraightFlush()},
	}
	for _, flag := range flags {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(flag.name), renderBool(flag.value))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s %s (%d)\n",
		headerStyle.Render("Ranking:"),
		trueStyle.Render(board.BestRankingName()),
		board.BestRanking())
	return nil
}

func renderBool(v bool) string {
	if v {
		return trueStyle.Render("yes")
	}
	return falseStyle.Render("no")
}
