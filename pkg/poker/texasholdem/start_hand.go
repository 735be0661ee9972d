package texasholdem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-tournament/pkg/deck"
)

// StartNewHand moves the button, shuffles a new deck, deals two cards to every seat with
// chips, and posts the blinds
func StartNewHand(g *GameState) (*GameState, []Event, error) {
	if g.Over {
		return g, nil, ErrGameOver
	}

	if g.Hand != nil && !g.Hand.IsComplete() {
		return g, nil, ErrHandInProgress
	}

	if g.SeatsWithChips() < 2 {
		return g, nil, ErrGameOver
	}

	ng := g.clone()
	ng.HandNumber++
	ng.Button = ng.seatAfter(g.Button, hasChips)

	startingChips := 0
	for _, p := range ng.Players {
		p.resetForHand()
		startingChips += p.Chips
	}

	seed := ng.rng.Int63()
	if seed == 0 {
		seed = 1
	}

	h := &HandState{
		ID:                uuid.New(),
		Number:            ng.HandNumber,
		DeckSeed:          seed,
		Deck:              deck.NewShuffled(seed),
		Community:         make(deck.Hand, 0, 5),
		Button:            ng.Button,
		SmallBlind:        ng.opts.SmallBlind,
		BigBlind:          ng.opts.BigBlind,
		ToAct:             -1,
		Round:             PreFlop,
		StartingChipTotal: startingChips,
		Log:               make([]LogEntry, 0),
	}
	ng.Hand = h

	if err := ng.burn(); err != nil {
		return g, nil, err
	}

	// one card at a time, starting left of the button
	dealtIn := make([]int, 0, len(ng.Players))
	for round := 0; round < 2; round++ {
		seat := ng.Button
		for {
			seat = ng.seatAfter(seat, isActive)
			card, err := h.Deck.Draw()
			if err != nil {
				return g, nil, fmt.Errorf("could not deal hole cards: %w", err)
			}

			ng.Players[seat].HoleCards.AddCard(card)
			if round == 0 {
				ng.Players[seat].DealtIn = true
				dealtIn = append(dealtIn, seat)
			}

			if seat == ng.Button {
				break
			}
		}
	}

	players := make([]string, len(dealtIn))
	for i, seat := range dealtIn {
		players[i] = ng.Players[seat].ID
	}

	events := []Event{HandInitialized{
		EventMeta: newEventMeta(h),
		Button:    ng.Button,
		DeckSeed:  seed,
		Seats:     dealtIn,
		Players:   players,
	}}

	// heads-up, the button posts the small blind and acts first before the flop
	if len(dealtIn) == 2 {
		h.SmallBlindSeat = ng.Button
	} else {
		h.SmallBlindSeat = ng.seatAfter(ng.Button, isActive)
	}
	h.BigBlindSeat = ng.seatAfter(h.SmallBlindSeat, isActive)

	sb := ng.postBlind(h.SmallBlindSeat, ng.opts.SmallBlind)
	bb := ng.postBlind(h.BigBlindSeat, ng.opts.BigBlind)
	h.CurrentBet = ng.opts.BigBlind
	h.LastRaiseSize = ng.opts.BigBlind
	h.ToAct = ng.seatAfter(h.BigBlindSeat, ng.needsToAct)

	events = append(events, HandStarted{
		EventMeta:  newEventMeta(h),
		SmallBlind: sb,
		BigBlind:   bb,
		ToAct:      h.ToAct,
	})

	ng.logger().WithFields(logrus.Fields{
		"button": ng.Button,
		"seed":   seed,
		"seats":  len(dealtIn),
	}).Debug("started hand")

	if h.ToAct < 0 {
		var err error
		if events, err = ng.advance(events); err != nil {
			return g, nil, err
		}
	}

	return ng, events, nil
}

func (g *GameState) postBlind(seat, amount int) BlindPosting {
	p := g.Players[seat]
	if amount > p.Chips {
		amount = p.Chips
	}

	g.Hand.commit(p, amount)
	return BlindPosting{
		Seat:     seat,
		PlayerID: p.ID,
		Amount:   amount,
		AllIn:    p.IsAllIn,
	}
}

func (g *GameState) burn() error {
	card, err := g.Hand.Deck.Burn()
	if err != nil {
		return fmt.Errorf("could not burn a card: %w", err)
	}

	g.Hand.Burned.AddCard(card)
	g.Hand.BurnCount++
	return nil
}
