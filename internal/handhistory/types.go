package handhistory

import (
	"time"

	"github.com/lox/boardkit/poker"
)

// GameType distinguishes tournament and cash-game hands.
type GameType string

const (
	GameTypeTournament GameType = "tour"
	GameTypeCash       GameType = "cash"
)

// Verb is the normalized action a player took on a street.
type Verb string

const (
	VerbFold   Verb = "fold"
	VerbCheck  Verb = "check"
	VerbCall   Verb = "call"
	VerbBet    Verb = "bet"
	VerbRaise  Verb = "raise"
	VerbReturn Verb = "return" // uncalled bet returned
	VerbWin    Verb = "win"    // collected from pot
	VerbMuck   Verb = "muck"
)

// Action is a single parsed action line.
type Action struct {
	Name   string
	Verb   Verb
	Amount float64 // zero for folds, checks and mucks; raise total for raises
}

// Player is an occupied seat at hand start.
type Player struct {
	Seat  int
	Name  string
	Stack float64
}

// Street holds the actions of one postflop street. The community cards
// themselves live on Hand.Board.
type Street struct {
	Actions []Action
	Pot     float64 // set when a collected line closes the street
}

// Hand is one fully parsed hand history.
type Hand struct {
	ID           string
	GameType     GameType
	TournamentID string
	Level        string
	BuyIn        float64
	BuyInRake    float64
	Currency     string
	PlayMoney    bool
	Game         string
	Limit        string
	SmallBlind   float64
	BigBlind     float64
	Date         time.Time

	TableName  string
	MaxPlayers int
	ButtonSeat int
	Players    []Player

	HeroName  string
	HeroCards []poker.Card

	// Preflop action lines are kept raw; nothing downstream consumes
	// them in parsed form.
	PreflopActions []string

	Flop  *Street
	Turn  *Street
	River *Street

	// Board holds the community cards from the flop onward, built
	// incrementally as streets are parsed. Nil when the hand ended
	// preflop.
	Board *poker.Board

	ShowDown bool
	TotalPot float64
	Rake     float64
	Winners  []string
}

// PlayerSeat returns the seat index (position in Players) of the named
// player, or -1.
func (h *Hand) PlayerSeat(name string) int {
	for i, p := range h.Players {
		if p.Name == name {
			return i
		}
	}
	return -1
}
