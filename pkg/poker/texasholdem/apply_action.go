package texasholdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-tournament/pkg/poker/action"
)

// LegalActions returns the actions the seat may take right now
// It is empty unless it is the seat's turn
func (g *GameState) LegalActions(seat int) []action.Action {
	if !g.InBettingRound() || seat != g.Hand.ToAct || seat < 0 || seat >= len(g.Players) {
		return nil
	}

	p := g.Players[seat]
	if !p.CanAct() {
		return nil
	}

	h := g.Hand
	actions := []action.Action{action.Fold}
	if p.CurrentBet == h.CurrentBet {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if _, _, ok := g.RaiseBounds(seat); ok {
		actions = append(actions, action.Raise)
	}

	if g.canGoAllIn(p) {
		actions = append(actions, action.AllIn)
	}

	return actions
}

// IsLegal returns true if the action is in LegalActions
func (g *GameState) IsLegal(seat int, a action.Action) bool {
	for _, legal := range g.LegalActions(seat) {
		if legal == a {
			return true
		}
	}

	return false
}

// RaiseBounds returns the smallest and largest total bet the seat can raise to
// ok is false if the seat cannot make a full raise
func (g *GameState) RaiseBounds(seat int) (minTotal, maxTotal int, ok bool) {
	if !g.InBettingRound() || seat < 0 || seat >= len(g.Players) {
		return 0, 0, false
	}

	p := g.Players[seat]
	h := g.Hand
	minTotal = h.MinRaiseTo()
	maxTotal = p.CurrentBet + p.Chips

	// a short all-in does not reopen the betting for seats that already acted
	ok = p.CanAct() && !p.HasActed && maxTotal >= minTotal
	return minTotal, maxTotal, ok
}

// canGoAllIn is false when the all-in would be a raise the seat is not allowed to make
func (g *GameState) canGoAllIn(p *Player) bool {
	if !p.CanAct() {
		return false
	}

	return !p.HasActed || p.CurrentBet+p.Chips <= g.Hand.CurrentBet
}

// ValidateAction returns an IllegalActionError if the seat cannot take the action
func (g *GameState) ValidateAction(seat int, a action.Action, amount int) error {
	if g.Over {
		return newIllegalActionError(seat, a, "the game is over")
	}

	if !g.InBettingRound() {
		return newIllegalActionError(seat, a, "there is no betting round in progress")
	}

	if seat < 0 || seat >= len(g.Players) {
		return newIllegalActionError(seat, a, fmt.Sprintf("there is no seat %d", seat))
	}

	if !a.IsValid() {
		return newIllegalActionError(seat, a, fmt.Sprintf("unknown action: %s", string(a)))
	}

	h := g.Hand
	p := g.Players[seat]
	if seat != h.ToAct || !p.CanAct() {
		return newIllegalActionError(seat, a, "it is not your turn")
	}

	switch a {
	case action.Check:
		if p.CurrentBet < h.CurrentBet {
			return newIllegalActionError(seat, a, "you cannot check with an active bet")
		}
	case action.Call:
		if p.CurrentBet >= h.CurrentBet {
			return newIllegalActionError(seat, a, "you cannot call without an active bet")
		}
	case action.Raise:
		if amount < 0 {
			return newIllegalActionError(seat, a, "the raise amount cannot be negative")
		}

		if p.HasActed {
			return newIllegalActionError(seat, a, "the betting was not reopened, you can only call or fold")
		}

		if _, _, ok := g.RaiseBounds(seat); !ok {
			return newIllegalActionError(seat, a, fmt.Sprintf("you need at least %d to raise, go all-in instead", h.MinRaiseTo()-p.CurrentBet))
		}
	case action.AllIn:
		if !g.canGoAllIn(p) {
			return newIllegalActionError(seat, a, "the betting was not reopened, you can only call or fold")
		}
	}

	return nil
}

// ApplyAction applies the seat's action and moves the hand forward as far as it can go
// without another decision. For a raise, amount is the total bet and is clamped into the
// legal range. An illegal action returns the original state and an IllegalActionError
func ApplyAction(g *GameState, seat int, a action.Action, amount int) (*GameState, []Event, error) {
	if err := g.ValidateAction(seat, a, amount); err != nil {
		return g, nil, err
	}

	ng := g.clone()
	h := ng.Hand
	p := ng.Players[seat]
	round := h.Round

	reported := 0
	switch a {
	case action.Fold:
		p.IsActive = false
	case action.Check:
	case action.Call:
		toCall := h.CurrentBet - p.CurrentBet
		if toCall > p.Chips {
			toCall = p.Chips
		}

		h.commit(p, toCall)
		reported = toCall
	case action.Raise:
		lo, hi, _ := ng.RaiseBounds(seat)
		total := amount
		if total < lo {
			total = lo
		} else if total > hi {
			total = hi
		}

		ng.raiseTo(p, total)
		reported = total
	case action.AllIn:
		total := p.CurrentBet + p.Chips
		if total > h.CurrentBet {
			ng.raiseTo(p, total)
		} else {
			h.commit(p, p.Chips)
		}

		reported = total
	}

	p.HasActed = true
	h.ActionCount++
	h.RoundActionCount++
	h.LastAction = &LastAction{
		Seat:     seat,
		PlayerID: p.ID,
		Action:   a,
		Amount:   reported,
	}

	message := a.LogMessage(reported)
	h.Log = append(h.Log, LogEntry{
		UUID:     uuid.New().String(),
		Round:    round,
		Seat:     seat,
		PlayerID: p.ID,
		Action:   a,
		Amount:   reported,
		Message:  message,
		Time:     time.Now(),
	})

	ng.logger().WithFields(logrus.Fields{
		"seat":   seat,
		"action": string(a),
		"amount": reported,
	}).Debug("applied action")

	events := []Event{ActionApplied{
		EventMeta:   newEventMeta(h),
		Round:       round,
		Seat:        seat,
		PlayerID:    p.ID,
		Action:      a,
		Amount:      reported,
		Description: fmt.Sprintf("%s %s", p.Name, message),
		Pot:         h.Pot,
	}}

	events, err := ng.progress(events)
	if err != nil {
		return g, nil, err
	}

	return ng, events, nil
}

// raiseTo brings the seat's bet up to total. A full raise reopens the betting
func (g *GameState) raiseTo(p *Player, total int) {
	h := g.Hand
	raiseSize := total - h.CurrentBet
	fullRaise := total >= h.MinRaiseTo()

	h.commit(p, total-p.CurrentBet)
	h.CurrentBet = total

	if !fullRaise {
		return
	}

	h.LastRaiseSize = raiseSize
	for _, other := range g.Players {
		if other != p && other.CanAct() {
			other.HasActed = false
		}
	}
}
