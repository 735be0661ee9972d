package potmanager

import (
	"fmt"
	"sort"
)

// ComputeSidePots splits the money in the hand into a main pot and side pots
// Seats must be in table order; eligibility lists keep that order
//
// Without a contesting all-in there is one pot. Otherwise there is one pot per distinct
// contribution level. Folded money counts toward every band it reaches, but folded seats
// are never eligible. A band that no contesting seat reaches is added to the pot below it.
func ComputeSidePots(seats []Seat, mainPotTotal int) (Pots, error) {
	total := 0
	allIn := false
	for _, seat := range seats {
		if seat.Contribution < 0 {
			return nil, fmt.Errorf("%w: seat %s has a negative contribution of %d", ErrInvariantViolation, seat.ID, seat.Contribution)
		}

		total += seat.Contribution
		if seat.isContesting() && seat.AllIn && seat.Contribution > 0 {
			allIn = true
		}
	}

	if total != mainPotTotal {
		return nil, fmt.Errorf("%w: contributions total %d but the pot is %d", ErrInvariantViolation, total, mainPotTotal)
	}

	if !allIn {
		eligible := make([]string, 0, len(seats))
		for _, seat := range seats {
			if seat.isContesting() {
				eligible = append(eligible, seat.ID)
			}
		}

		return Pots{{Amount: mainPotTotal, Eligible: eligible}}, nil
	}

	levels := contributionLevels(seats)
	pots := make(Pots, 0, len(levels))
	prevLevel := 0
	carry := 0
	for _, level := range levels {
		amount := carry
		eligible := make([]string, 0, len(seats))
		for _, seat := range seats {
			amount += band(seat.Contribution, prevLevel, level)
			if seat.isContesting() && seat.Contribution >= level {
				eligible = append(eligible, seat.ID)
			}
		}

		prevLevel = level
		carry = 0

		if len(eligible) == 0 {
			if len(pots) > 0 {
				pots[len(pots)-1].Amount += amount
			} else {
				carry = amount
			}

			continue
		}

		pots = append(pots, Pot{Amount: amount, Eligible: eligible})
	}

	if pots.Total() != mainPotTotal {
		return nil, fmt.Errorf("%w: side pots total %d but the pot is %d", ErrInvariantViolation, pots.Total(), mainPotTotal)
	}

	return pots, nil
}

// contributionLevels returns the distinct non-zero contributions, ascending
func contributionLevels(seats []Seat) []int {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(seats))
	for _, seat := range seats {
		if seat.Contribution > 0 && !seen[seat.Contribution] {
			seen[seat.Contribution] = true
			levels = append(levels, seat.Contribution)
		}
	}

	sort.Ints(levels)
	return levels
}

// band is the part of a contribution that falls between two levels
func band(contribution, low, high int) int {
	if contribution > high {
		contribution = high
	}

	if contribution < low {
		return 0
	}

	return contribution - low
}
