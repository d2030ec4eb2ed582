package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Classify  ClassifyCmd  `cmd:"" help:"Classify a board's texture and ranking"`
	Straights StraightsCmd `cmd:"" help:"Enumerate straight completions for a board"`
	Hands     HandsCmd     `cmd:"" help:"Work with PokerStars hand history files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("boardkit"),
		kong.Description("Poker board classification and hand history tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
