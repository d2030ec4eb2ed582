package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Ace, Spades)},
		{name: "two of clubs", input: "2c", want: NewCard(Two, Clubs)},
		{name: "ten with T notation", input: "Tc", want: NewCard(Ten, Clubs)},
		{name: "lowercase rank", input: "kd", want: NewCard(King, Diamonds)},
		{name: "uppercase suit", input: "9H", want: NewCard(Nine, Hearts)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "2k", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, card)
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"As", "Kd", "Qh", "Jc", "Ts", "9d", "2c"} {
		card, err := ParseCard(s)
		require.NoError(t, err)
		assert.Equal(t, s, card.String())
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("AsKcQh")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		NewCard(Ace, Spades),
		NewCard(King, Clubs),
		NewCard(Queen, Hearts),
	}, cards)

	cards, err = ParseCards("As Kc Qh")
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	_, err = ParseCards("AsK")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCompare(t *testing.T) {
	t.Parallel()
	// Rank dominates, suit breaks ties in clubs-to-spades order.
	assert.Positive(t, Compare(NewCard(Ace, Clubs), NewCard(King, Spades)))
	assert.Negative(t, Compare(NewCard(Three, Clubs), NewCard(Three, Spades)))
	assert.Zero(t, Compare(NewCard(Seven, Hearts), NewCard(Seven, Hearts)))
}

func TestRankValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Two.Value())
	assert.Equal(t, 10, Ten.Value())
	assert.Equal(t, 14, Ace.Value())
	assert.Equal(t, Ace, rankFromValue(1))
	assert.Equal(t, Ace, rankFromValue(14))
	assert.Equal(t, Five, rankFromValue(5))
}
