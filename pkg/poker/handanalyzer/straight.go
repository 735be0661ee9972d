package handanalyzer

import "holdem-tournament/pkg/deck"

// rankSet records which ranks are present. An Ace fills both 14 and 1
type rankSet [deck.Ace + 1]bool

func newRankSet(cards deck.Hand) rankSet {
	var rs rankSet
	for _, card := range cards {
		rs[card.Rank] = true
		if card.Rank == deck.Ace {
			rs[deck.LowAce] = true
		}
	}

	return rs
}

// straightHigh returns the high card of the best straight, or 0 if there isn't one
// The wheel (A-2-3-4-5) is a five-high straight
func (rs rankSet) straightHigh() int {
	for high := deck.Ace; high >= 5; high-- {
		if rs.missing(high) == 0 {
			return high
		}
	}

	return 0
}

// hasStraightDraw returns true if any five-rank window is missing exactly one rank
func (rs rankSet) hasStraightDraw() bool {
	for high := deck.Ace; high >= 5; high-- {
		if rs.missing(high) == 1 {
			return true
		}
	}

	return false
}

// missing counts the ranks absent from the straight ending at high
func (rs rankSet) missing(high int) int {
	needed := 0
	for rank := high; rank > high-5; rank-- {
		if !rs[rank] {
			needed++
		}
	}

	return needed
}

// straightCards picks one card per rank for the straight ending at high
func straightCards(cards deck.Hand, high int) deck.Hand {
	used := make(deck.Hand, 0, 5)
	for rank := high; rank > high-5; rank-- {
		want := rank
		if want == deck.LowAce {
			want = deck.Ace
		}

		for _, card := range cards {
			if card.Rank == want {
				used = append(used, card)
				break
			}
		}
	}

	return used
}
