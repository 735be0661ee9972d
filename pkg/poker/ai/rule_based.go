package ai

import (
	"fmt"
	"math"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/strategy"
)

const shortStackBigBlinds = 15

// Situation is what the rule-based model knows when it is asked to act
type Situation struct {
	Profile strategy.Profile

	// Strength is the seat's normalized hand strength in [0, 1]
	Strength float64
	// Draw is true when the seat holds a four card flush or straight draw
	Draw bool
	// Position is 0 for the first seat to the left of the button and 1 for the button
	Position float64

	Pot        int
	ToCall     int
	CurrentBet int
	Chips      int
	BigBlind   int

	Legal      []action.Action
	MinRaiseTo int
	MaxRaiseTo int
}

func (s Situation) can(a action.Action) bool {
	for _, legal := range s.Legal {
		if legal == a {
			return true
		}
	}

	return false
}

// Thresholds are the effective strengths at which the model folds, calls, raises, and shoves
type Thresholds struct {
	Fold  float64
	Call  float64
	Raise float64
	AllIn float64
}

// ThresholdsFor returns the thresholds for a profile
// Tighter profiles need stronger hands, aggressive ones bet with less
func ThresholdsFor(p strategy.Profile) Thresholds {
	return Thresholds{
		Fold:  0.15 + 0.25*p.Tightness,
		Call:  0.3 + 0.25*p.Tightness - 0.1*p.Aggression,
		Raise: 0.55 + 0.2*p.Tightness - 0.15*p.Aggression,
		AllIn: 0.85 + 0.1*p.Tightness - 0.1*p.Aggression,
	}
}

// RuleBased decides with hand strength, position, stack depth, and pot odds
type RuleBased struct {
	rng rng.Generator
}

// NewRuleBased returns a rule-based model that rolls its bluffs with r
func NewRuleBased(r rng.Generator) *RuleBased {
	return &RuleBased{rng: r}
}

func positionMultiplier(p strategy.Profile, position float64) float64 {
	return 1 + 0.15*position*(0.5+p.Adaptability)
}

func stackInBigBlinds(s Situation) float64 {
	if s.BigBlind <= 0 {
		return math.Inf(1)
	}

	return float64(s.Chips) / float64(s.BigBlind)
}

func shortStackMultiplier(p strategy.Profile, bigBlinds float64) float64 {
	if bigBlinds >= shortStackBigBlinds {
		return 1
	}

	return 1 + (shortStackBigBlinds-bigBlinds)/shortStackBigBlinds*0.3*p.RiskTolerance
}

// PotOdds returns the share of the final pot the seat has to put in to call
func PotOdds(pot, toCall int) float64 {
	if toCall <= 0 {
		return 0
	}

	return float64(toCall) / float64(pot+toCall)
}

// Decide picks an action. The result is always one of s.Legal
func (r *RuleBased) Decide(s Situation) Decision {
	t := &thinking{}
	p := s.Profile
	th := ThresholdsFor(p)

	bigBlinds := stackInBigBlinds(s)
	short := bigBlinds < shortStackBigBlinds
	strength := s.Strength * positionMultiplier(p, s.Position) * shortStackMultiplier(p, bigBlinds)
	if strength > 1 {
		strength = 1
	}

	t.add(fmt.Sprintf("raw strength %.2f, effective %.2f", s.Strength, strength))
	if short {
		t.add(fmt.Sprintf("short stacked with %.1f big blinds", bigBlinds))
	}

	odds := PotOdds(s.Pot, s.ToCall)
	goodOdds := s.ToCall > 0 && odds <= 0.33-0.2*p.Tightness
	greatOdds := s.ToCall > 0 && odds <= 0.1
	if s.ToCall > 0 {
		t.add(fmt.Sprintf("%d to call into %d, pot odds %.2f", s.ToCall, s.Pot, odds))
	}

	bluff, semiBluff := false, false
	if s.ToCall*2 <= s.Pot {
		chance := 0.05 * p.Aggression * (0.5 + s.Position)
		roll := r.roll()
		bluff = roll < chance
		semiBluff = s.Draw && roll < chance*3
	}

	switch {
	case strength >= th.AllIn || (short && strength >= th.Raise && p.RiskTolerance >= 0.6):
		t.add("strong enough to commit the stack")
		return r.shove(s, t)
	case strength >= th.Raise:
		size := 0.75
		if p.Aggression >= 0.6 {
			size = 1.2
			t.add("raising aggressively for value")
		} else {
			t.add("raising for value")
		}

		return r.raise(s, size, t)
	case semiBluff:
		t.add("semi-bluffing with a draw")
		return r.raise(s, 0.75, t)
	case bluff:
		t.add("bluffing")
		return r.raise(s, 0.5, t)
	case strength >= th.Call || (goodOdds && strength >= th.Fold) || greatOdds:
		return r.callOrCheck(s, t)
	case s.ToCall == 0:
		t.add("nothing to call, taking a free card")
		return decide(action.Check, 0, t)
	}

	t.add("not worth the price, folding")
	return decide(action.Fold, 0, t)
}

func (r *RuleBased) roll() float64 {
	if r.rng == nil {
		return 1
	}

	return r.rng.Float64()
}

// raise bets fraction of the pot, scaled by aggression and risk, on top of the current bet
func (r *RuleBased) raise(s Situation, fraction float64, t *thinking) Decision {
	if !s.can(action.Raise) {
		if s.can(action.AllIn) && s.MaxRaiseTo > s.CurrentBet && s.MaxRaiseTo < s.MinRaiseTo {
			t.add("too short for a full raise, moving all-in")
			return decide(action.AllIn, s.MaxRaiseTo, t)
		}

		t.add("cannot raise")
		return r.callOrCheck(s, t)
	}

	p := s.Profile
	size := float64(s.Pot) * fraction * (0.8 + 0.4*p.Aggression) * (0.9 + 0.2*p.RiskTolerance)
	total := s.CurrentBet + int(math.Round(size))
	if total < s.MinRaiseTo {
		total = s.MinRaiseTo
	} else if total > s.MaxRaiseTo {
		total = s.MaxRaiseTo
	}

	t.add(fmt.Sprintf("raising to %d", total))
	return decide(action.Raise, total, t)
}

func (r *RuleBased) shove(s Situation, t *thinking) Decision {
	switch {
	case s.can(action.AllIn):
		return decide(action.AllIn, s.MaxRaiseTo, t)
	case s.can(action.Raise):
		t.add(fmt.Sprintf("raising to %d", s.MaxRaiseTo))
		return decide(action.Raise, s.MaxRaiseTo, t)
	}

	return r.callOrCheck(s, t)
}

func (r *RuleBased) callOrCheck(s Situation, t *thinking) Decision {
	switch {
	case s.can(action.Check):
		t.add("checking")
		return decide(action.Check, 0, t)
	case s.can(action.Call):
		t.add(fmt.Sprintf("calling %d", s.ToCall))
		return decide(action.Call, s.ToCall, t)
	}

	t.add("folding")
	return decide(action.Fold, 0, t)
}

func decide(a action.Action, amount int, t *thinking) Decision {
	return Decision{
		Action:    a,
		Amount:    amount,
		Reasoning: t.String(),
		Source:    SourceRuleBased,
	}
}
