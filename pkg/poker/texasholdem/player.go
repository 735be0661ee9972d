package texasholdem

import (
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/strategy"
)

// SeatConfig describes a seat when the game is created
type SeatConfig struct {
	ID      string
	Name    string
	IsHuman bool
	Profile strategy.Profile
	// Chips is the seat's starting stack, the game's starting stack is used when zero
	Chips int
}

// Player is a seat at the table
type Player struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	IsHuman bool             `json:"isHuman"`
	Profile strategy.Profile `json:"profile"`

	Chips     int       `json:"chips"`
	HoleCards deck.Hand `json:"holeCards"`

	// CurrentBet is what the seat put in during the current betting round
	CurrentBet int `json:"currentBet"`
	// TotalContribution is what the seat put in during the whole hand
	TotalContribution int `json:"totalContribution"`

	// IsActive is false when the seat folded or was not dealt in
	IsActive bool `json:"isActive"`
	IsAllIn  bool `json:"isAllIn"`
	HasActed bool `json:"hasActed"`
	// DealtIn is true when the seat received cards this hand. Unlike HoleCards it survives PublicView
	DealtIn bool `json:"dealtIn"`
}

func newPlayer(seat SeatConfig, chips int) *Player {
	return &Player{
		ID:      seat.ID,
		Name:    seat.Name,
		IsHuman: seat.IsHuman,
		Profile: seat.Profile,
		Chips:   chips,
	}
}

// CanAct returns true if the seat is still in the hand and has chips to bet
func (p *Player) CanAct() bool {
	return p.IsActive && !p.IsAllIn && p.Chips > 0
}

func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.CurrentBet = 0
	p.TotalContribution = 0
	p.IsAllIn = false
	p.HasActed = false
	p.DealtIn = false
	p.IsActive = p.Chips > 0
}

func (p *Player) resetForRound() {
	p.CurrentBet = 0
	p.HasActed = false
}

func (p *Player) clone() *Player {
	c := *p
	c.HoleCards = p.HoleCards.Clone()
	return &c
}
