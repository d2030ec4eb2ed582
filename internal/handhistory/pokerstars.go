// Package handhistory parses PokerStars hand-history transcripts into
// structured hands, building community boards through the poker
// package as each street is seen.
package handhistory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/boardkit/poker"
)

// ErrMalformedHand is returned when a transcript does not match the
// PokerStars format.
var ErrMalformedHand = errors.New("malformed hand history")

var (
	splitRe  = regexp.MustCompile(` ?\*\*\* ?\n?|\n`)
	handsRe  = regexp.MustCompile(`\n\s*\n`)
	headerRe = regexp.MustCompile(
		`.*PokerStars (?:Zoom )?Hand #(?P<ident>\d+): ` +
			`(?:Tournament #(?P<tournament>\d+), ` +
			`(?:(?P<freeroll>Freeroll)|[$£€]?(?P<buyin>\d+(?:\.\d+)?)(?:\+[$£€]?(?P<buyinrake>\d+(?:\.\d+)?))?(?: (?P<currency>[A-Z]+))?) )?` +
			`(?P<game>.+?) (?P<limit>(?:Pot |No |)Limit) ` +
			`(?:- Level (?P<level>\S+) )?` +
			`\((?:(?P<sb>\d+)/(?P<bb>\d+)|[$£€](?P<cashsb>\d+(?:\.\d+)?)/[$£€](?P<cashbb>\d+(?:\.\d+)?)(?: (?P<cashcur>[A-Z]+))?)\)` +
			` - .+? \[(?P<date>[^\]]+)\]`)
	tableRe     = regexp.MustCompile(`^Table '(.*)' (\d+)-max Seat #(\d+) is the button`)
	seatRe      = regexp.MustCompile(`^Seat (\d+): (.+?) \([$£€]?(\d+(?:\.\d+)?) in chips\)`)
	heroRe      = regexp.MustCompile(`^Dealt to (.+?) \[(..) (..)\]`)
	potRe       = regexp.MustCompile(`^Total pot [$£€]?(\d+(?:\.\d+)?).*\| Rake [$£€]?(\d+(?:\.\d+)?)`)
	winnerRe    = regexp.MustCompile(`^Seat \d+: (.+?)(?: \((?:button|small blind|big blind)\))* collected \([$£€]?(\d+(?:\.\d+)?)\)`)
	showdownRe  = regexp.MustCompile(`^Seat \d+: (.+?)(?: \((?:button|small blind|big blind)\))* showed \[.+?\] and won \([$£€]?(\d+(?:\.\d+)?)\)`)
	collectedRe = regexp.MustCompile(`^(.+?) collected [$£€]?(\d+(?:\.\d+)?) from pot`)
	uncalledRe  = regexp.MustCompile(`^Uncalled bet \([$£€]?(\d+(?:\.\d+)?)\) returned to (.+)`)
	bracketRe   = regexp.MustCompile(`\[([^\]]+)\]`)
)

const dateLayout = "2006/01/02 15:04:05"

// PokerStars timestamps are Eastern Time. Fall back to UTC when the
// zone database is unavailable.
var easternTime = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Parser parses PokerStars transcripts. The logger only sees
// debug-level notes about skipped noise lines.
type Parser struct {
	logger *log.Logger
}

// NewParser creates a parser logging to the given logger.
func NewParser(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse parses a single hand transcript without logging.
func Parse(raw string) (*Hand, error) {
	return NewParser(log.New(io.Discard)).Parse(raw)
}

// SplitHands splits a history file into individual hand transcripts.
// Hands are separated by blank lines; anything before the first
// PokerStars header is dropped.
func SplitHands(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var hands []string
	for _, chunk := range handsRe.Split(raw, -1) {
		chunk = strings.TrimSpace(chunk)
		if strings.Contains(chunk, "PokerStars") {
			hands = append(hands, chunk)
		}
	}
	return hands
}

// Parse parses a single hand transcript.
func (p *Parser) Parse(raw string) (*Hand, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if raw == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHand)
	}

	s := &session{
		parser:   p,
		splitted: splitRe.Split(raw, -1),
		hand:     &Hand{},
	}
	for i, tok := range s.splitted {
		if tok == "" {
			s.sections = append(s.sections, i)
		}
	}
	if len(s.sections) < 2 {
		return nil, fmt.Errorf("%w: missing section markers", ErrMalformedHand)
	}

	steps := []func() error{
		s.parseHeader,
		s.parseTable,
		s.parsePlayers,
		s.parseHero,
		s.parsePreflop,
		s.parseFlop,
		s.parseTurn,
		s.parseRiver,
		s.parseShowdown,
		s.parsePot,
		s.parseWinners,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return s.hand, nil
}

// ParseFile reads a history file and parses every hand in it.
func (p *Parser) ParseFile(path string) ([]*Hand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	chunks := SplitHands(string(data))
	hands := make([]*Hand, 0, len(chunks))
	for i, chunk := range chunks {
		hand, err := p.Parse(chunk)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

// session is the parse state for one transcript.
type session struct {
	parser   *Parser
	splitted []string
	sections []int // indices of empty tokens marking *** SECTION *** headers
	hand     *Hand
}

func (s *session) group(re *regexp.Regexp, m []string, name string) string {
	return m[re.SubexpIndex(name)]
}

func (s *session) parseHeader() error {
	line := s.splitted[0]
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: bad header line %q", ErrMalformedHand, line)
	}
	g := func(name string) string { return s.group(headerRe, m, name) }
	h := s.hand

	h.ID = g("ident")
	h.Game = g("game")
	h.Limit = g("limit")

	var currency string
	if g("tournament") != "" {
		h.GameType = GameTypeTournament
		h.TournamentID = g("tournament")
		h.Level = g("level")
		h.BuyIn = parseAmount(g("buyin"))
		h.BuyInRake = parseAmount(g("buyinrake"))
		currency = g("currency")
	} else {
		h.GameType = GameTypeCash
		currency = g("cashcur")
	}
	if g("freeroll") != "" && currency == "" {
		currency = "USD"
	}
	h.Currency = currency
	h.PlayMoney = currency == ""

	// A cash play-money blind looks exactly like a tournament blind,
	// so both captures feed the same fields.
	if g("sb") != "" {
		h.SmallBlind = parseAmount(g("sb"))
		h.BigBlind = parseAmount(g("bb"))
	} else {
		h.SmallBlind = parseAmount(g("cashsb"))
		h.BigBlind = parseAmount(g("cashbb"))
	}

	dateStr := strings.TrimSuffix(g("date"), " ET")
	date, err := time.ParseInLocation(dateLayout, dateStr, easternTime)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrMalformedHand, g("date"))
	}
	h.Date = date
	return nil
}

func (s *session) parseTable() error {
	line := s.splitted[1]
	m := tableRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: bad table line %q", ErrMalformedHand, line)
	}
	s.hand.TableName = m[1]
	s.hand.MaxPlayers, _ = strconv.Atoi(m[2])
	s.hand.ButtonSeat, _ = strconv.Atoi(m[3])
	return nil
}

func (s *session) parsePlayers() error {
	for _, line := range s.splitted[2:] {
		m := seatRe.FindStringSubmatch(line)
		if m == nil {
			// end of the seats section
			break
		}
		seat, _ := strconv.Atoi(m[1])
		s.hand.Players = append(s.hand.Players, Player{
			Seat:  seat,
			Name:  m[2],
			Stack: parseAmount(m[3]),
		})
	}
	if len(s.hand.Players) == 0 {
		return fmt.Errorf("%w: no seated players", ErrMalformedHand)
	}
	return nil
}

func (s *session) parseHero() error {
	idx := s.sections[0] + 2
	if idx >= len(s.splitted) {
		return fmt.Errorf("%w: truncated hole cards section", ErrMalformedHand)
	}
	line := s.splitted[idx]
	m := heroRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: bad hole cards line %q", ErrMalformedHand, line)
	}
	s.hand.HeroName = m[1]
	cards, err := poker.ParseCards(m[2] + m[3])
	if err != nil {
		return fmt.Errorf("%w: hero cards: %v", ErrMalformedHand, err)
	}
	s.hand.HeroCards = cards
	return nil
}

func (s *session) parsePreflop() error {
	start, stop := s.sections[0]+3, s.sections[1]
	if start > stop {
		return fmt.Errorf("%w: truncated preflop section", ErrMalformedHand)
	}
	s.hand.PreflopActions = append([]string(nil), s.splitted[start:stop]...)
	return nil
}

func (s *session) parseFlop() error {
	start := s.indexOf("FLOP")
	if start < 0 {
		return nil
	}
	stop := s.nextBlank(start)
	boardline := s.splitted[start+1]

	cards, err := parseBracketCards(boardline)
	if err != nil || len(cards) != 3 {
		return fmt.Errorf("%w: bad flop line %q", ErrMalformedHand, boardline)
	}
	board, err := poker.FromCards(cards)
	if err != nil {
		return fmt.Errorf("%w: flop board: %v", ErrMalformedHand, err)
	}
	s.hand.Board = board

	street, err := s.parseStreetActions(s.splitted[start+2 : stop])
	if err != nil {
		return err
	}
	s.hand.Flop = street
	return nil
}

func (s *session) parseTurn() error {
	street, err := s.parseLaterStreet("TURN")
	s.hand.Turn = street
	return err
}

func (s *session) parseRiver() error {
	street, err := s.parseLaterStreet("RIVER")
	s.hand.River = street
	return err
}

// parseLaterStreet handles TURN and RIVER: the board line repeats the
// earlier cards and brackets the new one separately, which is fed to
// the board as an incremental add.
func (s *session) parseLaterStreet(name string) (*Street, error) {
	start := s.indexOf(name)
	if start < 0 {
		return nil, nil
	}
	if s.hand.Board == nil {
		return nil, fmt.Errorf("%w: %s without a flop", ErrMalformedHand, name)
	}
	stop := s.nextBlank(start)
	boardline := s.splitted[start+1]

	groups := bracketRe.FindAllStringSubmatch(boardline, -1)
	if len(groups) < 2 {
		return nil, fmt.Errorf("%w: bad %s line %q", ErrMalformedHand, name, boardline)
	}
	newCard := strings.TrimSpace(groups[len(groups)-1][1])
	if err := s.hand.Board.AddCards(newCard); err != nil {
		return nil, fmt.Errorf("%w: %s card: %v", ErrMalformedHand, name, err)
	}

	return s.parseStreetActions(s.splitted[start+2 : stop])
}

func (s *session) parseStreetActions(lines []string) (*Street, error) {
	street := &Street{}
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Uncalled bet"):
			m := uncalledRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: bad uncalled bet line %q", ErrMalformedHand, line)
			}
			street.Actions = append(street.Actions, Action{Name: m[2], Verb: VerbReturn, Amount: parseAmount(m[1])})

		case strings.Contains(line, "collected"):
			m := collectedRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: bad collected line %q", ErrMalformedHand, line)
			}
			street.Pot = parseAmount(m[2])
			street.Actions = append(street.Actions, Action{Name: m[1], Verb: VerbWin, Amount: street.Pot})

		case strings.Contains(line, "doesn't show hand"):
			name, _, _ := strings.Cut(line, ":")
			street.Actions = append(street.Actions, Action{Name: name, Verb: VerbMuck})

		case strings.Contains(line, ` said, "`):
			s.parser.logger.Debug("skipping chat line", "line", line)

		case strings.Contains(line, ": "):
			action, err := parsePlayerAction(line)
			if err != nil {
				return nil, err
			}
			if action != nil {
				street.Actions = append(street.Actions, *action)
			}

		case strings.Contains(line, "joins"), strings.Contains(line, "leaves"),
			strings.Contains(line, "connected"), strings.Contains(line, "timed out"),
			strings.Contains(line, "failing to post"):
			s.parser.logger.Debug("skipping table-management line", "line", line)

		default:
			return nil, fmt.Errorf("%w: bad action line %q", ErrMalformedHand, line)
		}
	}
	return street, nil
}

func parsePlayerAction(line string) (*Action, error) {
	name, rest, _ := strings.Cut(line, ": ")
	word, args, _ := strings.Cut(rest, " ")

	switch word {
	case "folds":
		return &Action{Name: name, Verb: VerbFold}, nil
	case "checks":
		return &Action{Name: name, Verb: VerbCheck}, nil
	case "calls":
		amount, _, _ := strings.Cut(args, " ")
		return &Action{Name: name, Verb: VerbCall, Amount: parseAmount(amount)}, nil
	case "bets":
		amount, _, _ := strings.Cut(args, " ")
		return &Action{Name: name, Verb: VerbBet, Amount: parseAmount(amount)}, nil
	case "raises":
		// "raises 40 to 60": record the raise-to total
		amount := args
		if _, total, ok := strings.Cut(args, " to "); ok {
			amount, _, _ = strings.Cut(total, " ")
		}
		return &Action{Name: name, Verb: VerbRaise, Amount: parseAmount(amount)}, nil
	case "shows":
		// showing a hand is not an action
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q in %q", ErrMalformedHand, word, line)
	}
}

func (s *session) parseShowdown() error {
	s.hand.ShowDown = s.indexOf("SHOW DOWN") >= 0 || s.indexOf("FIRST SHOW DOWN") >= 0
	return nil
}

func (s *session) parsePot() error {
	idx := s.sections[len(s.sections)-1] + 2
	if idx >= len(s.splitted) {
		return fmt.Errorf("%w: truncated summary section", ErrMalformedHand)
	}
	line := s.splitted[idx]
	m := potRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: bad pot line %q", ErrMalformedHand, line)
	}
	s.hand.TotalPot = parseAmount(m[1])
	s.hand.Rake = parseAmount(m[2])
	return nil
}

func (s *session) parseWinners() error {
	start := s.sections[len(s.sections)-1] + 3
	for _, line := range s.splitted[start:] {
		var m []string
		switch {
		case !s.hand.ShowDown && strings.Contains(line, "collected"):
			m = winnerRe.FindStringSubmatch(line)
		case s.hand.ShowDown && strings.Contains(line, "won"):
			m = showdownRe.FindStringSubmatch(line)
		}
		if m != nil && !slices.Contains(s.hand.Winners, m[1]) {
			s.hand.Winners = append(s.hand.Winners, m[1])
		}
	}
	return nil
}

func (s *session) indexOf(token string) int {
	for i, tok := range s.splitted {
		if tok == token {
			return i
		}
	}
	return -1
}

// nextBlank returns the index of the next empty token after start, or
// the end of the token list.
func (s *session) nextBlank(start int) int {
	for i := start + 1; i < len(s.splitted); i++ {
		if s.splitted[i] == "" {
			return i
		}
	}
	return len(s.splitted)
}

// parseBracketCards extracts every card inside bracket groups, e.g.
// "[Qs Ts 2h]" or "Board [Qs Ts 2h Kd]".
func parseBracketCards(line string) ([]poker.Card, error) {
	var cards []poker.Card
	for _, group := range bracketRe.FindAllStringSubmatch(line, -1) {
		parsed, err := poker.ParseCards(group[1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, parsed...)
	}
	return cards, nil
}

func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.Trim(s, "$£€"), 64)
	return v
}
