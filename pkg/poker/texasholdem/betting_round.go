package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// IsBettingRoundComplete returns true when nobody is left to act in the round
//
// The round is over when at most one seat has not folded, when no seat can act, or when
// every seat that can act has acted and matched the current bet. All-in seats do not
// need to match
func (g *GameState) IsBettingRoundComplete() bool {
	if !g.InBettingRound() {
		return false
	}

	if g.countPlayers(isActive) <= 1 {
		return true
	}

	for _, p := range g.Players {
		if !p.CanAct() {
			continue
		}

		if !p.HasActed || p.CurrentBet != g.Hand.CurrentBet {
			return false
		}
	}

	return true
}

// NextSeatToAct returns the next seat after the seat to act that still needs to act,
// or -1 if there isn't one
func (g *GameState) NextSeatToAct() int {
	if !g.InBettingRound() {
		return -1
	}

	return g.seatAfter(g.Hand.ToAct, g.needsToAct)
}

func (g *GameState) needsToAct(p *Player) bool {
	return p.CanAct() && (!p.HasActed || p.CurrentBet < g.Hand.CurrentBet)
}

// AdvanceToNextPhase deals the next community cards once the betting round is complete
// If fewer than two seats can still bet, the board is run out and the hand goes to showdown
func AdvanceToNextPhase(g *GameState) (*GameState, []Event, error) {
	if !g.InBettingRound() {
		return g, nil, ErrNoBettingRound
	}

	if !g.IsBettingRoundComplete() && g.NextSeatToAct() >= 0 {
		return g, nil, errors.New("betting round is not complete")
	}

	ng := g.clone()
	events, err := ng.advance(nil)
	if err != nil {
		return g, nil, err
	}

	return ng, events, nil
}

// progress moves the hand along after an action
func (g *GameState) progress(events []Event) ([]Event, error) {
	h := g.Hand
	if g.countPlayers(isActive) <= 1 {
		return g.endEarly(events)
	}

	if h.RoundActionCount > g.opts.MaxRoundActions {
		g.logger().WithFields(logrus.Fields{
			"actions":    h.RoundActionCount,
			"maxActions": g.opts.MaxRoundActions,
		}).Warn("betting round did not finish, forcing the next phase")
		return g.advance(events)
	}

	if g.IsBettingRoundComplete() {
		return g.advance(events)
	}

	next := g.NextSeatToAct()
	if next < 0 {
		return g.advance(events)
	}

	h.ToAct = next
	return events, nil
}

// advance deals the next street. It keeps dealing while fewer than two seats can bet
func (g *GameState) advance(events []Event) ([]Event, error) {
	h := g.Hand
	for {
		if g.countPlayers(isActive) <= 1 {
			return g.endEarly(events)
		}

		if h.Round == River {
			return g.showdown(events)
		}

		next := h.Round + 1

		// one burn per street: the burn count is one for the hole cards plus one per street
		if h.BurnCount < int(next)+1 {
			if err := g.burn(); err != nil {
				return nil, err
			}
		}

		want := next.communityCards() - len(h.Community)
		cards, err := h.Deck.Deal(want)
		if err != nil {
			return nil, fmt.Errorf("could not deal the %s: %w", next, err)
		}

		h.Community = append(h.Community, cards...)
		h.Round = next
		h.CurrentBet = 0
		h.LastRaiseSize = h.BigBlind
		h.RoundActionCount = 0
		h.ToAct = -1
		for _, p := range g.Players {
			if p.IsActive {
				p.resetForRound()
			}
		}

		events = append(events, PhaseAdvanced{
			EventMeta: newEventMeta(h),
			Round:     next,
			Cards:     cards,
			Community: h.Community.Clone(),
		})

		g.logger().WithField("community", h.Community.String()).Debug("advanced to the next phase")

		if g.countPlayers(canAct) >= 2 {
			h.ToAct = g.seatAfter(h.Button, canAct)
			return events, nil
		}
	}
}

// endEarly gives the pot to the last seat standing
func (g *GameState) endEarly(events []Event) ([]Event, error) {
	h := g.Hand
	seat := g.seatAfter(h.Button, isActive)
	if seat < 0 {
		return nil, fmt.Errorf("%w: every seat folded", ErrInvariantViolation)
	}

	winner := g.Players[seat]
	amount := h.Pot
	winner.Chips += amount
	h.Round = EarlyEnd
	h.ToAct = -1

	if err := g.verifyChips(); err != nil {
		return nil, err
	}

	g.logger().WithFields(logrus.Fields{
		"seat":   seat,
		"amount": amount,
	}).Info("hand ended early")

	events = append(events, HandEndedEarly{
		EventMeta: newEventMeta(h),
		Seat:      seat,
		PlayerID:  winner.ID,
		Amount:    amount,
	})

	return g.checkGameOver(events), nil
}

func (g *GameState) verifyChips() error {
	total := 0
	for _, p := range g.Players {
		if p.Chips < 0 {
			return fmt.Errorf("%w: seat %s has %d chips", ErrInvariantViolation, p.ID, p.Chips)
		}

		total += p.Chips
	}

	if total != g.Hand.StartingChipTotal {
		return fmt.Errorf("%w: the table has %d chips but started the hand with %d", ErrInvariantViolation, total, g.Hand.StartingChipTotal)
	}

	return nil
}

func (g *GameState) checkGameOver(events []Event) []Event {
	if g.SeatsWithChips() >= 2 {
		return events
	}

	g.Over = true
	g.Winner = -1
	winnerID := ""
	for i, p := range g.Players {
		if p.Chips > 0 {
			g.Winner = i
			winnerID = p.ID
		}
	}

	g.logger().WithField("winner", winnerID).Info("game over")

	return append(events, GameOver{
		EventMeta:  newEventMeta(g.Hand),
		WinnerSeat: g.Winner,
		WinnerID:   winnerID,
	})
}
