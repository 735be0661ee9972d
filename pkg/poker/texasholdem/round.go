package texasholdem

import "encoding/json"

// Round is the phase of a hand
type Round int

// constants for Round
const (
	PreFlop Round = iota
	Flop
	Turn
	River
	Showdown
	EarlyEnd
)

func (r Round) String() string {
	switch r {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case EarlyEnd:
		return "early-end"
	}

	return ""
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// IsBettingRound returns true while seats can still act
func (r Round) IsBettingRound() bool {
	return r >= PreFlop && r <= River
}

// IsComplete returns true once the hand has been settled
func (r Round) IsComplete() bool {
	return r == Showdown || r == EarlyEnd
}

// communityCards is how many community cards are showing during the round
func (r Round) communityCards() int {
	switch r {
	case Flop:
		return 3
	case Turn:
		return 4
	case River, Showdown:
		return 5
	}

	return 0
}
