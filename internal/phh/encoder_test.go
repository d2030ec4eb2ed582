package phh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/boardkit/internal/handhistory"
	"github.com/lox/boardkit/poker"
)

func sampleHand(t *testing.T) *handhistory.Hand {
	t.Helper()
	board, err := poker.NewBoard("QsTs2h")
	require.NoError(t, err)

	return &handhistory.Hand{
		ID:         "105024000105",
		TableName:  "797469411 15",
		MaxPlayers: 9,
		SmallBlind: 10,
		BigBlind:   20,
		TotalPot:   130,
		Players: []handhistory.Player{
			{Seat: 1, Name: "flettl2", Stack: 1500},
			{Seat: 3, Name: "flavio766", Stack: 3000},
		},
		Board: board,
		Flop: &handhistory.Street{
			Pot: 130,
			Actions: []handhistory.Action{
				{Name: "flavio766", Verb: handhistory.VerbCheck},
				{Name: "flettl2", Verb: handhistory.VerbBet, Amount: 80},
				{Name: "flavio766", Verb: handhistory.VerbFold},
				{Name: "flettl2", Verb: handhistory.VerbReturn, Amount: 80},
				{Name: "flettl2", Verb: handhistory.VerbWin, Amount: 130},
			},
		},
	}
}

func TestFromHand(t *testing.T) {
	t.Parallel()
	hand := FromHand(sampleHand(t))

	assert.Equal(t, "NT", hand.Variant)
	assert.Equal(t, "105024000105", hand.HandID)
	assert.Equal(t, []float64{10, 20}, hand.Blinds)
	assert.Equal(t, []string{"flettl2", "flavio766"}, hand.Players)
	assert.Equal(t, []float64{1500, 3000}, hand.StartingStacks)
	assert.Equal(t, "QsTs2h", hand.Board)

	// Wins and returned bets are pot bookkeeping, not PHH actions.
	assert.Equal(t, []string{
		"d db QsTs2h",
		"p2 cc",
		"p1 cbr 80",
		"p2 f",
	}, hand.Actions)
}

func TestFormatAction(t *testing.T) {
	t.Parallel()
	formatted, ok := FormatAction(0, handhistory.VerbRaise, 0.06)
	require.True(t, ok)
	assert.Equal(t, "p1 cbr 0.06", formatted)

	_, ok = FormatAction(0, handhistory.VerbRaise, 0)
	assert.False(t, ok)

	_, ok = FormatAction(0, handhistory.VerbMuck, 0)
	assert.False(t, ok)
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()
	first := FromHand(sampleHand(t))
	second := FromHand(sampleHand(t))
	second.HandID = "105024000106"

	var buf strings.Builder
	require.NoError(t, EncodeSession(&buf, []*Hand{first, second}))
	assert.Contains(t, buf.String(), "[hand_1]")
	assert.Contains(t, buf.String(), "[hand_2]")

	decoded, err := DecodeSession(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, first.HandID, decoded[0].HandID)
	assert.Equal(t, second.HandID, decoded[1].HandID)
	assert.Equal(t, first.Actions, decoded[0].Actions)
}
