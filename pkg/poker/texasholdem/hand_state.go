package texasholdem

import (
	"time"

	"github.com/google/uuid"

	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/potmanager"
)

// LastAction is the most recent action taken in the hand
type LastAction struct {
	Seat     int           `json:"seat"`
	PlayerID string        `json:"playerId"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
}

// LogEntry is a line in the hand's action log
type LogEntry struct {
	UUID     string        `json:"uuid"`
	Round    Round         `json:"round"`
	Seat     int           `json:"seat"`
	PlayerID string        `json:"playerId"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
	Message  string        `json:"message"`
	Time     time.Time     `json:"time"`
}

// HandState is everything about the hand being played
type HandState struct {
	ID       uuid.UUID  `json:"id"`
	Number   int        `json:"number"`
	DeckSeed int64      `json:"deckSeed"`
	Deck     *deck.Deck `json:"-"`

	Burned    deck.Hand `json:"-"`
	BurnCount int       `json:"burnCount"`
	Community deck.Hand `json:"community"`

	Pot      int             `json:"pot"`
	SidePots potmanager.Pots `json:"sidePots"`

	// CurrentBet is the total each seat must have in this round to stay in
	CurrentBet int `json:"currentBet"`
	// LastRaiseSize is the size of the last full raise, a new raise must be at least this big
	LastRaiseSize int `json:"lastRaiseSize"`

	Button         int `json:"button"`
	SmallBlindSeat int `json:"smallBlindSeat"`
	BigBlindSeat   int `json:"bigBlindSeat"`
	SmallBlind     int `json:"smallBlind"`
	BigBlind       int `json:"bigBlind"`

	// ToAct is the seat that must act next, -1 when nobody is waiting to act
	ToAct int   `json:"toAct"`
	Round Round `json:"round"`

	LastAction       *LastAction `json:"lastAction"`
	ActionCount      int         `json:"actionCount"`
	RoundActionCount int         `json:"roundActionCount"`

	StartingChipTotal int        `json:"-"`
	Log               []LogEntry `json:"log"`
}

// IsComplete returns true once the hand has been settled
func (h *HandState) IsComplete() bool {
	return h.Round.IsComplete()
}

// MinRaiseTo is the smallest total bet a raise can make
func (h *HandState) MinRaiseTo() int {
	increment := h.LastRaiseSize
	if increment < h.BigBlind {
		increment = h.BigBlind
	}

	return h.CurrentBet + increment
}

func (h *HandState) commit(p *Player, amount int) {
	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalContribution += amount
	h.Pot += amount
	if p.Chips == 0 {
		p.IsAllIn = true
	}
}

func (h *HandState) clone() *HandState {
	c := *h
	if h.Deck != nil {
		c.Deck = h.Deck.Clone()
	}

	c.Burned = h.Burned.Clone()
	c.Community = h.Community.Clone()
	c.SidePots = h.SidePots.Clone()
	if h.LastAction != nil {
		la := *h.LastAction
		c.LastAction = &la
	}

	c.Log = append([]LogEntry(nil), h.Log...)
	return &c
}
