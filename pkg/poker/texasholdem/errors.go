package texasholdem

import (
	"errors"

	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/potmanager"
)

// ErrIllegalAction is wrapped by every IllegalActionError
var ErrIllegalAction = errors.New("illegal action")

// ErrInvariantViolation is returned when the engine detects chips being created or destroyed
var ErrInvariantViolation = potmanager.ErrInvariantViolation

// ErrGameOver is returned when a hand is requested after the game ended
var ErrGameOver = errors.New("game is over")

// ErrHandInProgress is returned when a new hand is requested before the current one ends
var ErrHandInProgress = errors.New("hand is in progress")

// ErrNoBettingRound is returned when the hand is not in a betting round
var ErrNoBettingRound = errors.New("not in a betting round")

// IllegalActionError is an action the seat is not allowed to take
type IllegalActionError struct {
	Seat   int
	Action action.Action
	Reason string
}

func newIllegalActionError(seat int, a action.Action, reason string) error {
	return &IllegalActionError{
		Seat:   seat,
		Action: a,
		Reason: reason,
	}
}

func (e *IllegalActionError) Error() string {
	return e.Reason
}

// Unwrap allows errors.Is(err, ErrIllegalAction)
func (e *IllegalActionError) Unwrap() error {
	return ErrIllegalAction
}
