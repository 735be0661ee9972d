package texasholdem

import "errors"

// MaxSeats is the most seats one deck can serve: two hole cards each, a burn before the deal and
// before every street, and a five card board
const MaxSeats = 21

// Options configures how No-Limit Texas Hold'em is played
type Options struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int

	// MaxRoundActions is how many actions a single betting round may take before the
	// engine gives up on it and moves to the next phase
	MaxRoundActions int
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:      100,
		BigBlind:        200,
		StartingStack:   60000,
		MaxRoundActions: 50,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.StartingStack <= 0 {
		return errors.New("starting stack must be > 0")
	}

	if opts.MaxRoundActions <= 0 {
		return errors.New("max round actions must be > 0")
	}

	return nil
}
