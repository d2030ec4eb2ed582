// Package phh encodes parsed hands in the PHH (poker hand history)
// TOML format, one [hand_N] section per hand.
package phh

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lox/boardkit/internal/handhistory"
	"github.com/lox/boardkit/poker"
)

// Hand is one hand in a PHH session file.
type Hand struct {
	Variant        string    `toml:"variant"`
	HandID         string    `toml:"hand"`
	Table          string    `toml:"table,omitempty"`
	SeatCount      int       `toml:"seat_count,omitempty"`
	Blinds         []float64 `toml:"blinds_or_straddles"`
	StartingStacks []float64 `toml:"starting_stacks"`
	Players        []string  `toml:"players,omitempty"`
	Actions        []string  `toml:"actions"`
	Board          string    `toml:"board,omitempty"`
	Pot            float64   `toml:"pot,omitempty"`
	Time           string    `toml:"time,omitempty"`
}

// FromHand converts a parsed PokerStars hand to its PHH form.
func FromHand(src *handhistory.Hand) *Hand {
	hand := &Hand{
		Variant:   "NT",
		HandID:    src.ID,
		Table:     src.TableName,
		SeatCount: src.MaxPlayers,
		Blinds:    []float64{src.SmallBlind, src.BigBlind},
		Pot:       src.TotalPot,
	}
	if !src.Date.IsZero() {
		hand.Time = src.Date.Format(time.RFC3339)
	}
	for _, p := range src.Players {
		hand.Players = append(hand.Players, p.Name)
		hand.StartingStacks = append(hand.StartingStacks, p.Stack)
	}

	if src.Board == nil {
		return hand
	}
	hand.Board = src.Board.Value()

	hand.appendStreet(src, src.Board.Flop(), src.Flop)
	if turn, ok := src.Board.Turn(); ok {
		hand.appendStreet(src, []poker.Card{turn}, src.Turn)
	}
	if river, ok := src.Board.River(); ok {
		hand.appendStreet(src, []poker.Card{river}, src.River)
	}
	return hand
}

func (h *Hand) appendStreet(src *handhistory.Hand, dealt []poker.Card, street *handhistory.Street) {
	if street == nil {
		return
	}
	deal := "d db "
	for _, card := range dealt {
		deal += card.String()
	}
	h.Actions = append(h.Actions, deal)

	for _, action := range street.Actions {
		if formatted, ok := FormatAction(src.PlayerSeat(action.Name), action.Verb, action.Amount); ok {
			h.Actions = append(h.Actions, formatted)
		}
	}
}

// FormatAction converts a parsed action to a PHH action string. The
// second return is false for actions PHH captures elsewhere (wins,
// returned bets, mucks).
func FormatAction(seat int, verb handhistory.Verb, amount float64) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch verb {
	case handhistory.VerbFold:
		return player + " f", true
	case handhistory.VerbCheck, handhistory.VerbCall:
		return player + " cc", true
	case handhistory.VerbBet, handhistory.VerbRaise:
		if amount <= 0 {
			return "", false
		}
		return player + " cbr " + strconv.FormatFloat(amount, 'f', -1, 64), true
	default:
		return "", false
	}
}
