package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/lox/boardkit/internal/config"
	"github.com/lox/boardkit/internal/handhistory"
	"github.com/lox/boardkit/internal/phh"
)

// HandsCmd is the root command for hand history utilities.
type HandsCmd struct {
	Parse  HandsParseCmd  `cmd:"" help:"Parse PokerStars hand history files"`
	Render HandsRenderCmd `cmd:"" help:"Render an exported PHH session file"`
}

// HandsParseCmd parses transcripts, prints a summary and optionally
// exports the hands as a PHH session.
type HandsParseCmd struct {
	Files  []string `arg:"" optional:"" help:"History files to parse"`
	Room   string   `help:"Resolve files from a room's history_glob in the config file"`
	Config string   `default:"boardkit.hcl" help:"Path to the config file"`
	Export string   `help:"Write parsed hands to a PHH session file"`
	Jobs   int      `default:"4" help:"Concurrent files to parse"`
	Debug  bool     `help:"Enable debug logging"`
}

func (c *HandsParseCmd) Run() error {
	logger := setupLogger(c.Debug)

	files := c.Files
	if c.Room != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		room := cfg.Room(c.Room)
		if room == nil {
			return fmt.Errorf("room %q not found in %s", c.Room, c.Config)
		}
		matches, err := filepath.Glob(room.HistoryGlob)
		if err != nil {
			return fmt.Errorf("room %q: bad glob: %w", c.Room, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return errors.New("no history files given")
	}

	parser := handhistory.NewParser(logger)
	results := make([][]*handhistory.Hand, len(files))

	var g errgroup.Group
	g.SetLimit(c.Jobs)
	for i, path := range files {
		g.Go(func() error {
			hands, err := parser.ParseFile(path)
			if err != nil {
				logger.Error("failed to parse file", "path", path, "error", err)
				return nil
			}
			logger.Debug("parsed file", "path", path, "hands", len(hands))
			results[i] = hands
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var hands []*handhistory.Hand
	for _, parsed := range results {
		hands = append(hands, parsed...)
	}
	if len(hands) == 0 {
		return errors.New("no hands parsed")
	}
	printSummary(hands)

	if c.Export != "" {
		if err := exportSession(c.Export, hands); err != nil {
			return err
		}
		logger.Info("exported session", "path", c.Export, "hands", len(hands))
	}
	return nil
}

func printSummary(hands []*handhistory.Hand) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("HAND"),
		headerStyle.Render("HERO"),
		headerStyle.Render("BOARD"),
		headerStyle.Render("RANKING"),
		headerStyle.Render("POT"))

	for _, hand := range hands {
		boardValue, ranking := "-", "-"
		if hand.Board != nil {
			boardValue = hand.Board.Value()
			ranking = hand.Board.BestRankingName()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
			hand.ID, hand.HeroName, cardStyle.Render(boardValue), ranking, hand.TotalPot)
	}
	w.Flush()
	fmt.Printf("\n%d hands\n", len(hands))
}

func exportSession(path string, hands []*handhistory.Hand) error {
	converted := make([]*phh.Hand, 0, len(hands))
	for _, hand := range hands {
		converted = append(converted, phh.FromHand(hand))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := phh.EncodeSession(f, converted); err != nil {
		return err
	}
	return f.Close()
}

// HandsRenderCmd pretty-prints an exported PHH session file.
type HandsRenderCmd struct {
	File  string `arg:"" help:"Path to a .phhs session file"`
	Limit int    `help:"Maximum number of hands to render (0 = all)"`
}

func (c *HandsRenderCmd) Run() error {
	f, err := os.Open(filepath.Clean(c.File))
	if err != nil {
		return err
	}
	defer f.Close()

	hands, err := phh.DecodeSession(f)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands found in %s", c.File)
	}

	limit := c.Limit
	if limit <= 0 || limit > len(hands) {
		limit = len(hands)
	}

	for i, hand := range hands[:limit] {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("Hand %s (%s)", hand.HandID, hand.Variant)))
		if len(hand.Players) > 0 {
			fmt.Printf("  %s %s\n", labelStyle.Render("players:"), strings.Join(hand.Players, ", "))
		}
		if hand.Board != "" {
			fmt.Printf("  %s %s\n", labelStyle.Render("board:"), cardStyle.Render(hand.Board))
		}
		for _, action := range hand.Actions {
			fmt.Printf("    %s\n", action)
		}
		if hand.Pot > 0 {
			fmt.Printf("  %s %.2f\n", labelStyle.Render("pot:"), hand.Pot)
		}
	}
	return nil
}
