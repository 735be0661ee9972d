package handanalyzer

import (
	"errors"
	"fmt"

	"holdem-tournament/pkg/deck"
)

// ErrInvalidCards is returned when the cards handed to Evaluate cannot form a hold'em hand
var ErrInvalidCards = errors.New("invalid cards")

const (
	flushDrawBonus    = 2 * 50625
	straightDrawBonus = 50625
)

// HandEvaluation is the result of evaluating a seat's hole cards against the board
type HandEvaluation struct {
	Strength     int       `json:"strength"`
	Hand         Hand      `json:"hand"`
	Description  string    `json:"description"`
	Cards        deck.Hand `json:"cards"`
	PreFlop      bool      `json:"preFlop"`
	FlushDraw    bool      `json:"flushDraw,omitempty"`
	StraightDraw bool      `json:"straightDraw,omitempty"`
}

// Evaluate scores two hole cards against zero, three, four, or five community cards
// The result does not depend on the order of the cards
func Evaluate(hole, community deck.Hand) (HandEvaluation, error) {
	if err := validate(hole, community); err != nil {
		return HandEvaluation{}, err
	}

	if len(community) == 0 {
		return evaluatePreFlop(hole), nil
	}

	all := make(deck.Hand, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	h := New(all)
	eval := HandEvaluation{
		Strength:    h.GetStrength(),
		Hand:        h.GetHand(),
		Description: h.Describe(),
		Cards:       h.GetCards(),
	}

	// draws only matter while there are cards to come
	if len(community) == 5 || eval.Hand > ThreeOfAKind {
		return eval, nil
	}

	bonus := 0
	if hasFlushDraw(all) {
		eval.FlushDraw = true
		bonus += flushDrawBonus
	}

	if newRankSet(all).hasStraightDraw() {
		eval.StraightDraw = true
		bonus += straightDrawBonus
	}

	ceiling := categorySpan*(int(eval.Hand)+1) - 1
	eval.Strength += bonus
	if eval.Strength > ceiling {
		eval.Strength = ceiling
	}

	return eval, nil
}

func validate(hole, community deck.Hand) error {
	if len(hole) != 2 {
		return fmt.Errorf("%w: expected 2 hole cards, got %d", ErrInvalidCards, len(hole))
	}

	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("%w: expected 0, 3, 4, or 5 community cards, got %d", ErrInvalidCards, len(community))
	}

	all := make(deck.Hand, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	for _, card := range all {
		if !card.IsValid() {
			return fmt.Errorf("%w: %s is not a card", ErrInvalidCards, deck.CardToString(card))
		}
	}

	if all.HasDuplicates() {
		return fmt.Errorf("%w: duplicate cards in %s", ErrInvalidCards, all)
	}

	return nil
}

func hasFlushDraw(cards deck.Hand) bool {
	counts := make(map[deck.Suit]int)
	for _, card := range cards {
		counts[card.Suit]++
	}

	for _, count := range counts {
		if count == 4 {
			return true
		}
	}

	return false
}

// Normalized maps the evaluation onto [0, 1] for decision heuristics
// Each category owns a fixed band and the position within the band follows the strength
func (e HandEvaluation) Normalized() float64 {
	if e.PreFlop {
		return normalizePreFlop(e.Strength)
	}

	band := postFlopBands[e.Hand]
	frac := float64(e.Strength-categorySpan*int(e.Hand)) / categorySpan
	return interpolate(band, frac)
}

type bandRange struct {
	low  float64
	high float64
}

var postFlopBands = map[Hand]bandRange{
	HighCard:      {0.05, 0.30},
	OnePair:       {0.30, 0.50},
	TwoPair:       {0.50, 0.65},
	ThreeOfAKind:  {0.65, 0.75},
	Straight:      {0.75, 0.82},
	Flush:         {0.82, 0.88},
	FullHouse:     {0.88, 0.95},
	FourOfAKind:   {0.95, 0.99},
	StraightFlush: {0.99, 1.00},
}

func interpolate(band bandRange, frac float64) float64 {
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	return band.low + (band.high-band.low)*frac
}
