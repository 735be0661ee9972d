package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-tournament/internal/rng"
)

// GameState is the whole table: the seats, the button, and the hand in progress
// Transitions never modify the state they are given, they return a new one
type GameState struct {
	opts Options
	log  logrus.FieldLogger
	rng  rng.Generator

	Players    []*Player  `json:"players"`
	Button     int        `json:"button"`
	HandNumber int        `json:"handNumber"`
	Hand       *HandState `json:"hand"`
	Over       bool       `json:"over"`
	// Winner is the seat left with every chip, -1 until the game is over
	Winner int `json:"winner"`
}

// InitializeGame returns a new game with every seat holding its starting stack
// The random source seeds each hand's shuffle
func InitializeGame(logger logrus.FieldLogger, opts Options, seats []SeatConfig, r rng.Generator) (*GameState, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(seats) < 2 {
		return nil, errors.New("there must be at least two seats")
	}

	if len(seats) > MaxSeats {
		return nil, fmt.Errorf("there can be at most %d seats, got %d", MaxSeats, len(seats))
	}

	if r == nil {
		return nil, errors.New("a random source is required")
	}

	seen := make(map[string]bool)
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		if seat.ID == "" {
			return nil, fmt.Errorf("seat %d does not have an id", i)
		}

		if seen[seat.ID] {
			return nil, fmt.Errorf("seat id %s is used more than once", seat.ID)
		}
		seen[seat.ID] = true

		if err := seat.Profile.Validate(); err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.ID, err)
		}

		chips := seat.Chips
		if chips == 0 {
			chips = opts.StartingStack
		} else if chips < 0 {
			return nil, fmt.Errorf("seat %s cannot start with %d chips", seat.ID, chips)
		}

		players[i] = newPlayer(seat, chips)
	}

	return &GameState{
		opts:    opts,
		log:     logger,
		rng:     r,
		Players: players,
		Button:  -1,
		Winner:  -1,
	}, nil
}

// Options returns the options the game was created with
func (g *GameState) Options() Options {
	return g.opts
}

// InBettingRound returns true if a seat can act in the current hand
func (g *GameState) InBettingRound() bool {
	return g.Hand != nil && g.Hand.Round.IsBettingRound()
}

// SeatsWithChips returns how many seats can still play
func (g *GameState) SeatsWithChips() int {
	n := 0
	for _, p := range g.Players {
		if p.Chips > 0 {
			n++
		}
	}

	return n
}

// TotalChips returns the chips in the game, including the chips in the pot
func (g *GameState) TotalChips() int {
	total := 0
	for _, p := range g.Players {
		total += p.Chips
	}

	if g.Hand != nil && g.Hand.Round.IsBettingRound() {
		total += g.Hand.Pot
	}

	return total
}

// ToCall returns how many chips the seat needs to add to stay in
func (g *GameState) ToCall(seat int) int {
	if g.Hand == nil || seat < 0 || seat >= len(g.Players) {
		return 0
	}

	p := g.Players[seat]
	toCall := g.Hand.CurrentBet - p.CurrentBet
	if toCall < 0 {
		return 0
	}

	if toCall > p.Chips {
		return p.Chips
	}

	return toCall
}

// SeatByID returns the index of the seat with the id, or -1
func (g *GameState) SeatByID(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// PublicView returns a copy of the state as the viewer is allowed to see it
// Other seats' hole cards are only visible if they reached showdown
func (g *GameState) PublicView(viewer int) *GameState {
	view := g.clone()
	showdown := view.Hand != nil && view.Hand.Round == Showdown
	for i, p := range view.Players {
		if i == viewer || (showdown && p.IsActive) {
			continue
		}

		p.HoleCards = nil
	}

	if view.Hand != nil {
		view.Hand.Deck = nil
		view.Hand.Burned = nil
	}

	return view
}

// seatAfter returns the first seat clockwise from (but not including) the start seat that
// matches, wrapping around to the start seat last. Returns -1 if no seat matches
func (g *GameState) seatAfter(start int, match func(*Player) bool) int {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		seat := ((start+i)%n + n) % n
		if match(g.Players[seat]) {
			return seat
		}
	}

	return -1
}

func (g *GameState) countPlayers(match func(*Player) bool) int {
	n := 0
	for _, p := range g.Players {
		if match(p) {
			n++
		}
	}

	return n
}

// orderFromButton returns the player ids clockwise starting left of the button
func (g *GameState) orderFromButton() []string {
	n := len(g.Players)
	order := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		order = append(order, g.Players[(g.Button+i)%n].ID)
	}

	return order
}

func (g *GameState) logger() logrus.FieldLogger {
	fields := logrus.Fields{}
	if g.Hand != nil {
		fields["hand"] = g.Hand.Number
		fields["round"] = g.Hand.Round.String()
	}

	return g.log.WithFields(fields)
}

func (g *GameState) clone() *GameState {
	c := *g
	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.clone()
	}

	if g.Hand != nil {
		c.Hand = g.Hand.clone()
	}

	return &c
}

func isActive(p *Player) bool {
	return p.IsActive
}

func canAct(p *Player) bool {
	return p.CanAct()
}

func hasChips(p *Player) bool {
	return p.Chips > 0
}
