package handanalyzer

import (
	"fmt"

	"holdem-tournament/pkg/deck"
)

// pre-flop tiers, each tier outranks every hand in the tiers below it
// Suitedness can lift a hand into a higher tier, so the suited bonus is only exact for hands whose
// offsuit version already shares the tier
const (
	tierWeak = iota
	tierSpeculative
	tierBroadway
	tierPocketPair
)

const (
	tierSpan    = 1000
	suitedBonus = 10

	// maxTierScore is the largest in-tier score, a suited ace-king
	maxTierScore = deck.Ace*15 + deck.King + suitedBonus
)

var preFlopBands = [...]bandRange{
	tierWeak:        {0.05, 0.25},
	tierSpeculative: {0.25, 0.45},
	tierBroadway:    {0.45, 0.70},
	tierPocketPair:  {0.70, 1.00},
}

func evaluatePreFlop(hole deck.Hand) HandEvaluation {
	sorted := hole.SortByRank()
	high, low := sorted[0], sorted[1]
	suited := high.Suit == low.Suit

	tier := tierWeak
	switch {
	case high.Rank == low.Rank:
		tier = tierPocketPair
	case low.Rank >= 10:
		tier = tierBroadway
	case suited || high.Rank == deck.Ace || high.Rank-low.Rank <= 2:
		tier = tierSpeculative
	}

	score := high.Rank*15 + low.Rank
	if suited {
		score += suitedBonus
	}

	eval := HandEvaluation{
		Strength: tier*tierSpan + score,
		Hand:     HighCard,
		Cards:    sorted,
		PreFlop:  true,
	}

	if tier == tierPocketPair {
		eval.Hand = OnePair
		eval.Description = fmt.Sprintf("Pocket %s", deck.RankPlural(high.Rank))
		return eval
	}

	kind := "offsuit"
	if suited {
		kind = "suited"
	}

	eval.Description = fmt.Sprintf("%s-%s %s", deck.RankName(high.Rank), deck.RankName(low.Rank), kind)
	return eval
}

func normalizePreFlop(strength int) float64 {
	tier := strength / tierSpan
	if tier < tierWeak {
		tier = tierWeak
	} else if tier > tierPocketPair {
		tier = tierPocketPair
	}

	return interpolate(preFlopBands[tier], float64(strength%tierSpan)/maxTierScore)
}
