package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a token does not decode to a valid
// rank and suit.
var ErrInvalidCard = errors.New("invalid card")

// Suit is one of the four card suits. Suits have no ordering of their
// own; the canonical order (clubs lowest, spades highest) exists only
// so that equal-rank cards sort deterministically.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the one-character suit symbol used in board encodings.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank is a card rank carrying its high numeric value (deuce 2, ace
// 14). The ace additionally counts as 1 when wheel straights are
// considered; see Board.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Value returns the high numeric value of the rank (2-14).
func (r Rank) Value() int {
	return int(r)
}

// String returns the one-character rank symbol.
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + r))
		}
		return "?"
	}
}

// rankFromValue maps a straight rank value back to a Rank. Both 1 and
// 14 are the ace.
func rankFromValue(v int) Rank {
	if v == 1 {
		return Ace
	}
	return Rank(v)
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the 2-character representation (e.g. "As").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// bit returns the card's position in a 52-bit layout, 13 ranks per
// suit. Used for order-independent board hashing.
func (c Card) bit() uint64 {
	return 1 << (int(c.Suit)*13 + int(c.Rank) - 2)
}

// Compare orders two cards by rank, breaking ties by the canonical
// suit order. Returns a negative number if a sorts below b, zero if
// equal, positive otherwise.
func Compare(a, b Card) int {
	if a.Rank != b.Rank {
		return int(a.Rank) - int(b.Rank)
	}
	return int(a.Suit) - int(b.Suit)
}

// ParseCard parses a 2-character string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a concatenation of 2-character cards ("AsKh...").
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	return parseCardsExact(strings.ReplaceAll(s, " ", ""))
}

// parseCardsExact parses s as exactly len(s)/2 two-character cards,
// with no whitespace tolerance. Board construction uses this so that a
// length-checked encoding always yields length/2 cards.
func parseCardsExact(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, string(c))
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(c))
	}
}
