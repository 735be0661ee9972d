package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-tournament/pkg/poker/handanalyzer"
	"holdem-tournament/pkg/poker/potmanager"
)

// showdown evaluates every hand still in, splits the pot into side pots, and pays them
func (g *GameState) showdown(events []Event) ([]Event, error) {
	h := g.Hand
	h.Round = Showdown
	h.ToAct = -1

	contesting := make([]int, 0, len(g.Players))
	for i, p := range g.Players {
		if p.IsActive {
			contesting = append(contesting, i)
		}
	}

	events = append(events, ShowdownStarted{
		EventMeta: newEventMeta(h),
		Seats:     contesting,
	})

	seats := make([]potmanager.Seat, len(g.Players))
	for i, p := range g.Players {
		seats[i] = potmanager.Seat{
			ID:           p.ID,
			Contribution: p.TotalContribution,
			Folded:       !p.IsActive,
			AllIn:        p.IsAllIn,
		}
	}

	pots, err := potmanager.ComputeSidePots(seats, h.Pot)
	if err != nil {
		return nil, err
	}
	h.SidePots = pots

	strengths := make(map[string]int, len(contesting))
	descriptions := make(map[string]string, len(contesting))
	hands := make([]ShowdownHand, 0, len(contesting))
	for _, seat := range contesting {
		p := g.Players[seat]
		eval, err := handanalyzer.Evaluate(p.HoleCards, h.Community)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate seat %s: %w", p.ID, err)
		}

		strengths[p.ID] = eval.Strength
		descriptions[p.ID] = eval.Description
		hands = append(hands, ShowdownHand{
			Seat:        seat,
			PlayerID:    p.ID,
			HoleCards:   p.HoleCards.Clone(),
			Cards:       eval.Cards,
			Description: eval.Description,
			Strength:    eval.Strength,
		})
	}

	awards, err := pots.Award(strengths, g.orderFromButton())
	if err != nil {
		return nil, err
	}

	results := make([]PotResult, len(pots))
	for i, pot := range pots {
		results[i] = PotResult{
			Amount:  pot.Amount,
			Winners: make([]PotWinner, 0, 1),
		}
	}

	for _, award := range awards {
		seat := g.SeatByID(award.SeatID)
		g.Players[seat].Chips += award.Amount
		results[award.PotIndex].Winners = append(results[award.PotIndex].Winners, PotWinner{
			Seat:        seat,
			PlayerID:    award.SeatID,
			Amount:      award.Amount,
			Description: descriptions[award.SeatID],
		})

		g.logger().WithFields(logrus.Fields{
			"seat":        seat,
			"pot":         award.PotIndex,
			"amount":      award.Amount,
			"description": descriptions[award.SeatID],
		}).Info("paid pot")
	}

	if err := g.verifyChips(); err != nil {
		return nil, err
	}

	events = append(events, ShowdownComplete{
		EventMeta: newEventMeta(h),
		Hands:     hands,
		Pots:      results,
	})

	return g.checkGameOver(events), nil
}
