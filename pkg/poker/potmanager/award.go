package potmanager

import (
	"fmt"
	"sort"
)

// PotAward is how much a seat won from a single pot
type PotAward struct {
	PotIndex int    `json:"potIndex"`
	SeatID   string `json:"seatId"`
	Amount   int    `json:"amount"`
}

// Award pays every pot to the strongest eligible seats
// Ties split the pot equally. Odd chips go one at a time to the tied winners in order, which
// must list seats starting with the first seat left of the button
func (p Pots) Award(strengths map[string]int, order []string) ([]PotAward, error) {
	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	awards := make([]PotAward, 0, len(p))
	for potIndex, pot := range p {
		if pot.Amount == 0 {
			continue
		}

		wm := NewWinManager()
		for _, id := range pot.Eligible {
			if strength, ok := strengths[id]; ok {
				wm.AddSeat(id, strength)
			}
		}

		tiers := wm.GetSortedTiers()
		if len(tiers) == 0 {
			return nil, fmt.Errorf("%w: pot %d has no eligible seat with a hand", ErrInvariantViolation, potIndex)
		}

		winners := append([]string(nil), tiers[0]...)
		for _, id := range winners {
			if _, ok := position[id]; !ok {
				return nil, fmt.Errorf("%w: seat %s is not in the table order", ErrInvariantViolation, id)
			}
		}

		sort.Slice(winners, func(i, j int) bool {
			return position[winners[i]] < position[winners[j]]
		})

		share := pot.Amount / len(winners)
		oddChips := pot.Amount % len(winners)
		for i, id := range winners {
			amount := share
			if i < oddChips {
				amount++
			}

			awards = append(awards, PotAward{
				PotIndex: potIndex,
				SeatID:   id,
				Amount:   amount,
			})
		}
	}

	return awards, nil
}

// Payouts sums awards by seat
func Payouts(awards []PotAward) map[string]int {
	payouts := make(map[string]int)
	for _, a := range awards {
		payouts[a.SeatID] += a.Amount
	}

	return payouts
}
