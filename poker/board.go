package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidLength is returned when a board encoding or card list
	// has the wrong number of cards.
	ErrInvalidLength = errors.New("invalid board length")

	// ErrDuplicateCard is returned when the same rank and suit would
	// appear twice on a board.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrBoardFull is returned when adding cards would exceed five.
	ErrBoardFull = errors.New("board is already full")
)

// Board is an ordered sequence of 3, 4 or 5 unique community cards.
// The flop (first three cards) is sorted descending at construction
// and never reordered; turn and river keep their arrival positions.
//
// A Board is a plain mutable value with no internal locking. Queries
// are pure reads of the cached state; callers sharing a board across
// goroutines must serialize AddCards against everything else.
type Board struct {
	cards []Card
	cache *boardCache
}

// boardCache holds every derived structure the predicates read. A
// cache is built complete from a candidate card sequence and swapped
// in as a unit, so a failed mutation never exposes a stale mix of old
// and new fields.
type boardCache struct {
	combos        [][2]Card
	suitCounts    [4]int
	rankCounts    []rankCount // descending by count, ties by rank descending
	straightRanks []int       // distinct rank values, ace as both 1 and 14, ascending
	rankGaps      []int       // consecutive differences of straightRanks
}

type rankCount struct {
	rank  Rank
	count int
}

// NewBoard parses a 6, 8 or 10 character board encoding, two
// characters per card (e.g. "AsKcQh" for a flop).
func NewBoard(s string) (*Board, error) {
	if n := len(s); n != 6 && n != 8 && n != 10 {
		return nil, fmt.Errorf("%w: %q should have a length of 6, 8 or 10", ErrInvalidLength, s)
	}
	cards, err := parseCardsExact(s)
	if err != nil {
		return nil, err
	}
	return FromCards(cards)
}

// FromCards builds a board from 3, 4 or 5 explicit cards. The first
// three are sorted descending; any fourth and fifth card stay where
// given.
func FromCards(cards []Card) (*Board, error) {
	if n := len(cards); n < 3 || n > 5 {
		return nil, fmt.Errorf("%w: %d cards, want 3 to 5", ErrInvalidLength, len(cards))
	}

	ordered := make([]Card, len(cards))
	copy(ordered, cards)
	sort.Slice(ordered[:3], func(i, j int) bool {
		return Compare(ordered[i], ordered[j]) > 0
	})

	cache, err := buildCache(ordered)
	if err != nil {
		return nil, err
	}
	return &Board{cards: ordered, cache: cache}, nil
}

// Normalize coerces its argument to a Board. An existing *Board is
// returned unchanged, a string goes through NewBoard and a card slice
// through FromCards.
func Normalize(v any) (*Board, error) {
	switch b := v.(type) {
	case *Board:
		return b, nil
	case string:
		return NewBoard(b)
	case []Card:
		return FromCards(b)
	default:
		return nil, fmt.Errorf("cannot build a board from %T", v)
	}
}

// buildCache computes all derived structures for a candidate card
// sequence. The combination pass doubles as the authoritative
// duplicate check.
func buildCache(cards []Card) (*boardCache, error) {
	c := &boardCache{}

	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i] == cards[j] {
				return nil, fmt.Errorf("%w: %s appears twice", ErrDuplicateCard, cards[i])
			}
			c.combos = append(c.combos, [2]Card{cards[i], cards[j]})
		}
	}

	var rankHist [15]int
	for _, card := range cards {
		c.suitCounts[card.Suit]++
		rankHist[card.Rank]++
	}

	// Collect ranks high to low so that the stable sort below leaves
	// equal counts ordered by rank descending.
	for r := Ace; r >= Two; r-- {
		if n := rankHist[r]; n > 0 {
			c.rankCounts = append(c.rankCounts, rankCount{rank: r, count: n})
		}
	}
	sort.SliceStable(c.rankCounts, func(i, j int) bool {
		return c.rankCounts[i].count > c.rankCounts[j].count
	})

	// An ace contributes both 1 and 14, which is what makes wheel
	// straights fall out of plain consecutive-run detection.
	var present [15]bool
	for _, card := range cards {
		present[card.Rank] = true
		if card.Rank == Ace {
			present[1] = true
		}
	}
	for v := 1; v <= 14; v++ {
		if present[v] {
			c.straightRanks = append(c.straightRanks, v)
		}
	}
	for i := 1; i < len(c.straightRanks); i++ {
		c.rankGaps = append(c.rankGaps, c.straightRanks[i]-c.straightRanks[i-1])
	}

	return c, nil
}

// AddCards appends the turn card (2 characters) or turn and river
// together (4 characters). All validation happens before any state
// changes; a failed call leaves the board exactly as it was.
func (b *Board) AddCards(s string) error {
	if len(s) != 2 && len(s) != 4 {
		return fmt.Errorf("%w: %q should have a length of 2 or 4", ErrInvalidLength, s)
	}
	added, err := parseCardsExact(s)
	if err != nil {
		return err
	}

	if len(added) == 2 && added[0] == added[1] {
		return fmt.Errorf("%w: %s given twice", ErrDuplicateCard, added[0])
	}
	if len(b.cards)+len(added) > 5 {
		return fmt.Errorf("%w: %d cards on board, cannot add %d more", ErrBoardFull, len(b.cards), len(added))
	}
	for _, card := range added {
		for _, have := range b.cards {
			if card == have {
				return fmt.Errorf("%w: %s already on board", ErrDuplicateCard, card)
			}
		}
	}

	next := make([]Card, 0, len(b.cards)+len(added))
	next = append(next, b.cards...)
	next = append(next, added...)

	cache, err := buildCache(next)
	if err != nil {
		return err
	}
	b.cards, b.cache = next, cache
	return nil
}

// Cards returns a copy of the card sequence in storage order.
func (b *Board) Cards() []Card {
	cards := make([]Card, len(b.cards))
	copy(cards, b.cards)
	return cards
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	return len(b.cards)
}

// Flop returns the first three cards.
func (b *Board) Flop() []Card {
	flop := make([]Card, 3)
	copy(flop, b.cards[:3])
	return flop
}

// Turn returns the fourth card, if dealt.
func (b *Board) Turn() (Card, bool) {
	if len(b.cards) < 4 {
		return Card{}, false
	}
	return b.cards[3], true
}

// River returns the fifth card, if dealt.
func (b *Board) River() (Card, bool) {
	if len(b.cards) < 5 {
		return Card{}, false
	}
	return b.cards[4], true
}

// Value serializes the board back to its 2-characters-per-card form in
// storage order: the sorted flop followed by turn and river as they
// arrived. For boards built from a string this matches the input only
// when the input flop was already in descending order.
func (b *Board) Value() string {
	var sb strings.Builder
	for _, card := range b.cards {
		sb.WriteString(card.String())
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Value()
}

// Equal reports whether both boards hold the same card sequence.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.cards) != len(other.cards) {
		return false
	}
	for i := range b.cards {
		if b.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// Hash returns the sum of the member card hashes. Equal boards hash
// equally; the sum is order-independent so callers must not expect
// uniqueness beyond what Equal defines.
func (b *Board) Hash() uint64 {
	var h uint64
	for _, card := range b.cards {
		h += card.bit()
	}
	return h
}

// IsRainbow reports whether every card has a distinct suit.
func (b *Board) IsRainbow() bool {
	for _, pair := range b.cache.combos {
		if pair[0].Suit == pair[1].Suit {
			return false
		}
	}
	return true
}

// IsMonotone reports whether all cards share one suit.
func (b *Board) IsMonotone() bool {
	for _, pair := range b.cache.combos {
		if pair[0].Suit != pair[1].Suit {
			return false
		}
	}
	return true
}

// HasFlushDraw reports whether any two cards share a suit.
func (b *Board) HasFlushDraw() bool {
	for _, pair := range b.cache.combos {
		if pair[0].Suit == pair[1].Suit {
			return true
		}
	}
	return false
}

// HasPair reports whether any rank appears at least twice.
func (b *Board) HasPair() bool {
	return b.cache.rankCounts[0].count >= 2
}

// HasDouble reports whether two distinct ranks each appear at least
// twice.
func (b *Board) HasDouble() bool {
	rc := b.cache.rankCounts
	return len(rc) >= 2 && rc[0].count >= 2 && rc[1].count >= 2
}

// HasTrip reports whether any rank appears at least three times.
func (b *Board) HasTrip() bool {
	return b.cache.rankCounts[0].count >= 3
}

// HasFullHouse reports whether the two most common ranks appear
// exactly three and two times.
func (b *Board) HasFullHouse() bool {
	rc := b.cache.rankCounts
	return len(rc) >= 2 && rc[0].count == 3 && rc[1].count == 2
}

// HasQuad reports whether any rank appears four times.
func (b *Board) HasQuad() bool {
	return b.cache.rankCounts[0].count == 4
}

// HasFlush reports whether all five cards share a suit. Only reachable
// on a full board.
func (b *Board) HasFlush() bool {
	return b.SuitCount() == 5
}

// SuitCount returns the size of the largest same-suit group.
func (b *Board) SuitCount() int {
	most := 0
	for _, n := range b.cache.suitCounts {
		if n > most {
			most = n
		}
	}
	return most
}
