package poker

import "slices"

// Board rankings, weakest to strongest. The value doubles as a
// priority: BestRanking returns the highest one whose predicate holds.
const (
	RankingHighCard = iota
	RankingPair
	RankingTwoPair
	RankingThreeOfAKind
	RankingStraight
	RankingFlush
	RankingFullHouse
	RankingFourOfAKind
	RankingStraightFlush
)

var rankingNames = [...]string{
	RankingHighCard:      "high_card",
	RankingPair:          "pair",
	RankingTwoPair:       "two_pair",
	RankingThreeOfAKind:  "three_of_a_kind",
	RankingStraight:      "straight",
	RankingFlush:         "flush",
	RankingFullHouse:     "full_house",
	RankingFourOfAKind:   "four_of_a_kind",
	RankingStraightFlush: "straight_flush",
}

// HasStraight reports whether five consecutive rank values are present,
// the ace counting as both high and low. Detection looks for a run of
// four gaps of 1, not four such gaps anywhere: with the dual ace a
// board like A-2-3-Q-K has four 1-gaps in two broken runs and no
// straight.
func (b *Board) HasStraight() bool {
	run := 0
	for _, gap := range b.cache.rankGaps {
		if gap != 1 {
			run = 0
			continue
		}
		run++
		if run == 4 {
			return true
		}
	}
	return false
}

// HasStraightFlush reports a straight and a flush on the same board.
func (b *Board) HasStraightFlush() bool {
	return b.HasStraight() && b.HasFlush()
}

// HasStraightDraw reports whether any two consecutive present ranks are
// within three of each other.
func (b *Board) HasStraightDraw() bool {
	for _, gap := range b.cache.rankGaps {
		if gap >= 1 && gap <= 3 {
			return true
		}
	}
	return false
}

// HasGutshot reports whether any two consecutive present ranks are
// within four of each other.
func (b *Board) HasGutshot() bool {
	for _, gap := range b.cache.rankGaps {
		if gap >= 1 && gap <= 4 {
			return true
		}
	}
	return false
}

// BestRanking returns the strongest ranking the board itself makes,
// from RankingHighCard (0) to RankingStraightFlush (8).
func (b *Board) BestRanking() int {
	switch {
	case b.HasStraightFlush():
		return RankingStraightFlush
	case b.HasQuad():
		return RankingFourOfAKind
	case b.HasFullHouse():
		return RankingFullHouse
	case b.HasFlush():
		return RankingFlush
	case b.HasStraight():
		return RankingStraight
	case b.HasTrip():
		return RankingThreeOfAKind
	case b.HasDouble():
		return RankingTwoPair
	case b.HasPair():
		return RankingPair
	default:
		return RankingHighCard
	}
}

// BestRankingName returns the name of BestRanking.
func (b *Board) BestRankingName() string {
	return rankingNames[b.BestRanking()]
}

// PossibleStraights enumerates every distinct set of ranks that would
// complete a five-card straight once numCards more cards arrive. Each
// returned list holds exactly numCards ranks in ascending value order
// (so the ace leads a wheel completion and trails a broadway one);
// results appear in scan order with duplicates removed. The scan slides
// a window of 5-numCards existing ranks over the ace-dual rank set and
// tries every five-wide value range that covers the whole window.
func (b *Board) PossibleStraights(numCards int) [][]Rank {
	if numCards < 1 || numCards > 4 {
		return nil
	}

	anchor := 5 - numCards
	ranks := b.cache.straightRanks
	var results [][]Rank

	for i := 0; i+anchor <= len(ranks); i++ {
		window := ranks[i : i+anchor]

		lo := window[0] - numCards
		if lo < 1 {
			lo = 1
		}
		hi := window[anchor-1] + numCards
		if hi > 14 {
			hi = 14
		}

		for start := lo; start+4 <= hi; start++ {
			if window[0] < start || window[anchor-1] > start+4 {
				continue
			}

			// The window ranks are distinct and all inside the range,
			// so exactly numCards values are missing.
			needed := make([]Rank, 0, numCards)
			for v := start; v <= start+4; v++ {
				if !slices.Contains(window, v) {
					needed = append(needed, rankFromValue(v))
				}
			}

			duplicate := false
			for _, prev := range results {
				if slices.Equal(prev, needed) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				results = append(results, needed)
			}
		}
	}

	return results
}
