package texasholdem

import (
	"time"

	"github.com/google/uuid"

	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/action"
)

// EventType identifies an event
type EventType string

// event types
const (
	EventHandInitialized  EventType = "hand-initialized"
	EventHandStarted      EventType = "hand-started"
	EventActionApplied    EventType = "action-applied"
	EventPhaseAdvanced    EventType = "phase-advanced"
	EventShowdownStarted  EventType = "showdown-started"
	EventShowdownComplete EventType = "showdown-complete"
	EventHandEndedEarly   EventType = "hand-ended-early"
	EventGameOver         EventType = "game-over"
)

// Event is emitted by every state transition
type Event interface {
	Type() EventType
	Metadata() EventMeta
}

// EventMeta is common to all events
type EventMeta struct {
	ID         uuid.UUID `json:"id"`
	HandID     uuid.UUID `json:"handId"`
	HandNumber int       `json:"handNumber"`
	Time       time.Time `json:"time"`
}

// Metadata returns the event's metadata
func (e EventMeta) Metadata() EventMeta {
	return e
}

func newEventMeta(h *HandState) EventMeta {
	return EventMeta{
		ID:         uuid.New(),
		HandID:     h.ID,
		HandNumber: h.Number,
		Time:       time.Now(),
	}
}

// HandInitialized is sent after the deck is shuffled and the hole cards are dealt
type HandInitialized struct {
	EventMeta
	Button   int      `json:"button"`
	DeckSeed int64    `json:"deckSeed"`
	Seats    []int    `json:"seats"`
	Players  []string `json:"players"`
}

// Type returns the event type
func (HandInitialized) Type() EventType { return EventHandInitialized }

// BlindPosting is a forced bet
type BlindPosting struct {
	Seat     int    `json:"seat"`
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
	AllIn    bool   `json:"allIn"`
}

// HandStarted is sent after the blinds are posted
type HandStarted struct {
	EventMeta
	SmallBlind BlindPosting `json:"smallBlind"`
	BigBlind   BlindPosting `json:"bigBlind"`
	ToAct      int          `json:"toAct"`
}

// Type returns the event type
func (HandStarted) Type() EventType { return EventHandStarted }

// ActionApplied is sent after a seat acts
type ActionApplied struct {
	EventMeta
	Round       Round         `json:"round"`
	Seat        int           `json:"seat"`
	PlayerID    string        `json:"playerId"`
	Action      action.Action `json:"action"`
	Amount      int           `json:"amount"`
	Description string        `json:"description"`
	Pot         int           `json:"pot"`
}

// Type returns the event type
func (ActionApplied) Type() EventType { return EventActionApplied }

// PhaseAdvanced is sent when community cards are revealed
type PhaseAdvanced struct {
	EventMeta
	Round     Round     `json:"round"`
	Cards     deck.Hand `json:"cards"`
	Community deck.Hand `json:"community"`
}

// Type returns the event type
func (PhaseAdvanced) Type() EventType { return EventPhaseAdvanced }

// ShowdownStarted is sent before hands are compared
type ShowdownStarted struct {
	EventMeta
	Seats []int `json:"seats"`
}

// Type returns the event type
func (ShowdownStarted) Type() EventType { return EventShowdownStarted }

// ShowdownHand is a seat's hand at showdown
type ShowdownHand struct {
	Seat        int       `json:"seat"`
	PlayerID    string    `json:"playerId"`
	HoleCards   deck.Hand `json:"holeCards"`
	Cards       deck.Hand `json:"cards"`
	Description string    `json:"description"`
	Strength    int       `json:"strength"`
}

// PotWinner is a seat's share of a pot
type PotWinner struct {
	Seat        int    `json:"seat"`
	PlayerID    string `json:"playerId"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// PotResult is how a single pot was paid
type PotResult struct {
	Amount  int         `json:"amount"`
	Winners []PotWinner `json:"winners"`
}

// ShowdownComplete is sent after every pot has been paid
type ShowdownComplete struct {
	EventMeta
	Hands []ShowdownHand `json:"hands"`
	Pots  []PotResult    `json:"pots"`
}

// Type returns the event type
func (ShowdownComplete) Type() EventType { return EventShowdownComplete }

// HandEndedEarly is sent when everybody but one seat folded
type HandEndedEarly struct {
	EventMeta
	Seat     int    `json:"seat"`
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
}

// Type returns the event type
func (HandEndedEarly) Type() EventType { return EventHandEndedEarly }

// GameOver is sent when fewer than two seats have chips
// WinnerSeat is -1 if nobody has chips
type GameOver struct {
	EventMeta
	WinnerSeat int    `json:"winnerSeat"`
	WinnerID   string `json:"winnerId"`
}

// Type returns the event type
func (GameOver) Type() EventType { return EventGameOver }

// IsTerminal returns true for the last event of a hand
func IsTerminal(e Event) bool {
	switch e.Type() {
	case EventShowdownComplete, EventHandEndedEarly:
		return true
	}

	return false
}
