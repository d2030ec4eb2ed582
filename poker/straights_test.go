package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasStraight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		board string
		want  bool
	}{
		{"8s7d6s5hTc", true},   // 6-T
		{"AcKdQhJsTc", true},   // broadway
		{"Ac2d3h4s5c", true},   // wheel, ace counts low
		{"Ac2d3hQsKc", false},  // broken runs either side of the ace
		{"8s7s6s5sTd", true},
		{"8s7s6s5s2d", false},
		{"AcKdQhJs", false},    // four cards can never make one
		{"2c2d3h4s5c", false},  // paired, only four distinct ranks
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mustBoard(t, tc.board).HasStraight(), "board %s", tc.board)
	}
}

func TestHasStraightFlush(t *testing.T) {
	t.Parallel()
	assert.True(t, mustBoard(t, "AcKcQcJcTc").HasStraightFlush())
	assert.False(t, mustBoard(t, "AcKcQcJcTd").HasStraightFlush())
	assert.False(t, mustBoard(t, "AcKcQcJc9c").HasStraightFlush())
}

func TestHasStraightDraw(t *testing.T) {
	t.Parallel()
	assert.True(t, mustBoard(t, "5c8cKd").HasStraightDraw())
	assert.False(t, mustBoard(t, "5c9cKd").HasStraightDraw())
}

func TestHasGutshot(t *testing.T) {
	t.Parallel()
	assert.True(t, mustBoard(t, "5c9cKd").HasGutshot())
	assert.False(t, mustBoard(t, "2c7cKd").HasGutshot())
}

func TestBestRanking(t *testing.T) {
	t.Parallel()
	tests := []struct {
		board string
		want  int
		name  string
	}{
		{"AcKcQd", RankingHighCard, "high_card"},
		{"AcKcKdQd", RankingPair, "pair"},
		{"AcKcQdQhKh", RankingTwoPair, "two_pair"},
		{"2c2d2h", RankingThreeOfAKind, "three_of_a_kind"},
		{"AcKdQhJsTc", RankingStraight, "straight"},
		{"8s7s6s5sTs", RankingFlush, "flush"},
		{"2c2d2hKcKh", RankingFullHouse, "full_house"},
		{"2c2d2h2s", RankingFourOfAKind, "four_of_a_kind"},
		{"AcKcQcJcTc", RankingStraightFlush, "straight_flush"},
	}
	for _, tc := range tests {
		board := mustBoard(t, tc.board)
		assert.Equal(t, tc.want, board.BestRanking(), "board %s", tc.board)
		assert.Equal(t, tc.name, board.BestRankingName(), "board %s", tc.board)
	}
}

func TestPossibleStraightsIncremental(t *testing.T) {
	t.Parallel()
	board := mustBoard(t, "Ac9cJs")
	assert.Empty(t, board.PossibleStraights(2))

	require.NoError(t, board.AddCards("Kd"))
	assert.Equal(t, [][]Rank{{Ten, Queen}}, board.PossibleStraights(2))

	require.NoError(t, board.AddCards("Qh"))
	assert.Equal(t, [][]Rank{{Ten}}, board.PossibleStraights(1))
}

func TestPossibleStraightsScanOrder(t *testing.T) {
	t.Parallel()
	// Both the lower completion and the broadway one (needing the ace
	// high) surface, in discovery order.
	board := mustBoard(t, "KcQhJs")
	assert.Equal(t, [][]Rank{
		{Nine, Ten},
		{Ten, Ace},
	}, board.PossibleStraights(2))

	// With the ace already on board only broadway remains open.
	board = mustBoard(t, "AcKcQh")
	assert.Equal(t, [][]Rank{{Ten, Jack}}, board.PossibleStraights(2))
}

func TestPossibleStraightsWheel(t *testing.T) {
	t.Parallel()
	// The ace-low completion lists the ace first: value 1 sorts ahead.
	board := mustBoard(t, "2c3c4h")
	assert.Equal(t, [][]Rank{
		{Ace, Five},
		{Five, Six},
	}, board.PossibleStraights(2))

	board = mustBoard(t, "Ac2c3h")
	assert.Equal(t, [][]Rank{{Four, Five}}, board.PossibleStraights(2))
}

func TestPossibleStraightsDedup(t *testing.T) {
	t.Parallel()
	// Overlapping anchors propose the ten twice; it appears once.
	board := mustBoard(t, "6c7d8h9sJc")
	got := board.PossibleStraights(1)
	assert.Equal(t, [][]Rank{{Five}, {Ten}}, got)
}

func TestPossibleStraightsEdges(t *testing.T) {
	t.Parallel()
	board := mustBoard(t, "2c2d2h")

	// Fewer distinct ranks than the anchor needs.
	assert.Empty(t, board.PossibleStraights(1))

	// Out-of-range requests.
	assert.Empty(t, board.PossibleStraights(0))
	assert.Empty(t, board.PossibleStraights(5))
}
