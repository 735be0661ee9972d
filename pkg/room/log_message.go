package room

import (
	"fmt"
	"strings"

	"holdem-tournament/pkg/poker/texasholdem"
)

const logMessageLimit = 25

// LogMessages returns the most recent table messages, oldest first
func (d *Dealer) LogMessages() []string {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return append([]string(nil), d.logMessages...)
}

// addLogMessages adds a message for every event worth telling the table about
// Note: the caller must hold the lock
func (d *Dealer) addLogMessages(events []texasholdem.Event) {
	m := d.logMessages
	for _, event := range events {
		if msg := Describe(d.game, event); msg != "" {
			m = append(m, msg)
		}
	}

	count := len(m)
	if count > logMessageLimit {
		m = append([]string(nil), m[count-logMessageLimit:]...)
	}

	d.logMessages = m
}

// Describe returns a line of table talk for the event, or an empty string
func Describe(g *texasholdem.GameState, event texasholdem.Event) string {
	name := func(seat int) string {
		if seat < 0 || seat >= len(g.Players) {
			return fmt.Sprintf("seat %d", seat)
		}

		return g.Players[seat].Name
	}

	switch e := event.(type) {
	case texasholdem.HandStarted:
		return fmt.Sprintf("Hand %d: %s posts %d, %s posts %d",
			e.Metadata().HandNumber,
			name(e.SmallBlind.Seat), e.SmallBlind.Amount,
			name(e.BigBlind.Seat), e.BigBlind.Amount)
	case texasholdem.ActionApplied:
		return e.Description
	case texasholdem.PhaseAdvanced:
		round := e.Round.String()
		return fmt.Sprintf("%s%s: %s", strings.ToUpper(round[:1]), round[1:], e.Community.Pretty())
	case texasholdem.ShowdownComplete:
		lines := make([]string, 0, len(e.Pots))
		for _, pot := range e.Pots {
			for _, w := range pot.Winners {
				lines = append(lines, fmt.Sprintf("%s wins %d with %s", name(w.Seat), w.Amount, w.Description))
			}
		}

		return strings.Join(lines, "; ")
	case texasholdem.HandEndedEarly:
		return fmt.Sprintf("%s wins %d", name(e.Seat), e.Amount)
	case texasholdem.GameOver:
		if e.WinnerSeat < 0 {
			return "Game over"
		}

		return fmt.Sprintf("Game over, %s wins the tournament", name(e.WinnerSeat))
	}

	return ""
}
