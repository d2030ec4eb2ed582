package main

import (
	"fmt"
	"strings"

	"github.com/lox/boardkit/poker"
)

// StraightsCmd enumerates the rank sets that would complete a straight.
type StraightsCmd struct {
	Board string `arg:"" help:"Board cards, e.g. 'Ac9cJsKd'"`
	Cards int    `short:"n" default:"1" help:"Number of cards to come (1 or 2)"`
}

func (c *StraightsCmd) Run() error {
	if c.Cards < 1 || c.Cards > 4 {
		return fmt.Errorf("cards to come must be between 1 and 4, got %d", c.Cards)
	}

	board, err := poker.NewBoard(c.Board)
	if err != nil {
		return err
	}

	completions := board.PossibleStraights(c.Cards)
	if len(completions) == 0 {
		fmt.Printf("No straight completions with %d cards to come\n", c.Cards)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Straight completions (%d to come):", c.Cards)))
	for _, ranks := range completions {
		symbols := make([]string, 0, len(ranks))
		for _, rank := range ranks {
			symbols = append(symbols, rank.String())
		}
		fmt.Println("  " + cardStyle.Render(strings.Join(symbols, " ")))
	}
	return nil
}
