package potmanager

import "errors"

// ErrInvariantViolation is returned when chips would be created or destroyed
var ErrInvariantViolation = errors.New("invariant violation")

// Seat is a single seat's stake in the hand
type Seat struct {
	ID string
	// Contribution is everything the seat put in the pot this hand, across all rounds
	Contribution int
	Folded       bool
	AllIn        bool
}

func (s Seat) isContesting() bool {
	return !s.Folded
}
