package handanalyzer

import (
	"fmt"

	"holdem-tournament/pkg/deck"
)

// categorySpan is the width of a single category band in the strength scale (15^5)
const categorySpan = 759375

var pow15 = [...]int{1, 15, 225, 3375, 50625}

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	cards deck.Hand

	flush         deck.Hand
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int

	hand     Hand
	values   []int
	best     deck.Hand
	strength int
}

// New will return a new HandAnalyzer instance
// The best five card hand is picked out of all the cards
func New(cards deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: cards.SortByRank(),
	}

	h.analyzeHand()
	h.calculateHand()
	return h
}

func (h *HandAnalyzer) analyzeHand() {
	bySuit := make(map[deck.Suit]deck.Hand)
	byRank := make(map[int]int)
	for _, card := range h.cards {
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
		byRank[card.Rank]++
	}

	for rank := deck.Ace; rank >= 2; rank-- {
		switch byRank[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	for _, suit := range deck.Suits {
		suited := bySuit[suit]
		if len(suited) < 5 {
			continue
		}

		// at most seven cards, so only one suit can hold five
		h.flush = suited
		h.straightFlush = newRankSet(suited).straightHigh()
	}

	h.straight = newRankSet(h.cards).straightHigh()
}

func (h *HandAnalyzer) calculateHand() {
	switch {
	case h.straightFlush > 0:
		h.hand = StraightFlush
		h.values = []int{h.straightFlush}
		h.best = straightCards(h.flush, h.straightFlush)
	case len(h.quads) > 0:
		quads := h.quads[0]
		h.hand = FourOfAKind
		h.best = h.cardsOfRank(quads, 4)
		kickers := h.kickers(1, quads)
		h.values = append([]int{quads}, ranks(kickers)...)
		h.best = append(h.best, kickers...)
	case len(h.trips) > 0 && (len(h.trips) > 1 || len(h.pairs) > 0):
		trips := h.trips[0]
		pair := 0
		if len(h.pairs) > 0 {
			pair = h.pairs[0]
		}

		if len(h.trips) > 1 && h.trips[1] > pair {
			pair = h.trips[1]
		}

		h.hand = FullHouse
		h.values = []int{trips, pair}
		h.best = append(h.cardsOfRank(trips, 3), h.cardsOfRank(pair, 2)...)
	case len(h.flush) > 0:
		h.hand = Flush
		h.best = h.flush[:5].Clone()
		h.values = ranks(h.best)
	case h.straight > 0:
		h.hand = Straight
		h.values = []int{h.straight}
		h.best = straightCards(h.cards, h.straight)
	case len(h.trips) > 0:
		trips := h.trips[0]
		h.hand = ThreeOfAKind
		kickers := h.kickers(2, trips)
		h.values = append([]int{trips}, ranks(kickers)...)
		h.best = append(h.cardsOfRank(trips, 3), kickers...)
	case len(h.pairs) > 1:
		high, low := h.pairs[0], h.pairs[1]
		h.hand = TwoPair
		kickers := h.kickers(1, high, low)
		h.values = append([]int{high, low}, ranks(kickers)...)
		h.best = append(append(h.cardsOfRank(high, 2), h.cardsOfRank(low, 2)...), kickers...)
	case len(h.pairs) == 1:
		pair := h.pairs[0]
		h.hand = OnePair
		kickers := h.kickers(3, pair)
		h.values = append([]int{pair}, ranks(kickers)...)
		h.best = append(h.cardsOfRank(pair, 2), kickers...)
	default:
		h.hand = HighCard
		h.best = h.kickers(5)
		h.values = ranks(h.best)
	}

	h.strength = calculateStrength(h.hand, h.values)
}

// cardsOfRank returns up to n cards of the rank
func (h *HandAnalyzer) cardsOfRank(rank, n int) deck.Hand {
	cards := make(deck.Hand, 0, n)
	for _, card := range h.cards {
		if card.Rank == rank {
			cards = append(cards, card)
			if len(cards) == n {
				break
			}
		}
	}

	return cards
}

// kickers returns the n highest cards not matching any excluded rank
func (h *HandAnalyzer) kickers(n int, exclude ...int) deck.Hand {
	cards := make(deck.Hand, 0, n)
cardLoop:
	for _, card := range h.cards {
		if len(cards) == n {
			break
		}

		for _, rank := range exclude {
			if card.Rank == rank {
				continue cardLoop
			}
		}

		cards = append(cards, card)
	}

	return cards
}

func ranks(cards deck.Hand) []int {
	r := make([]int, len(cards))
	for i, card := range cards {
		r[i] = card.Rank
	}

	return r
}

// calculateStrength will calculate the strength of a hand
// The category is the most significant digit of a base-15 number, followed by up to five
// ranks in the order they break ties
func calculateStrength(hand Hand, values []int) int {
	fiveCards := make([]int, 5)
	copy(fiveCards, values)

	strength := categorySpan * int(hand)
	for i := 0; i < 5; i++ {
		strength += pow15[4-i] * fiveCards[i]
	}

	return strength
}

// GetHand returns the hand category
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStrength returns the strength of the hand
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

// GetCards returns the five cards (or fewer) that make up the hand
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.best.Clone()
}

// GetValues returns the ranks that determine the hand's strength, most significant first
func (h *HandAnalyzer) GetValues() []int {
	values := make([]int, len(h.values))
	copy(values, h.values)
	return values
}

// GetRoyalFlush returns true if the hand is an ace high straight flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// Describe returns a human readable description of the hand, i.e., "Full house, Kings full of Twos"
func (h *HandAnalyzer) Describe() string {
	v := h.values
	switch h.hand {
	case StraightFlush:
		if h.GetRoyalFlush() {
			return "Royal flush"
		}

		return fmt.Sprintf("Straight flush, %s high", rankWord(v[0]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", deck.RankPlural(v[0]))
	case FullHouse:
		return fmt.Sprintf("Full house, %s full of %s", deck.RankPlural(v[0]), deck.RankPlural(v[1]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankWord(v[0]))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankWord(v[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", deck.RankPlural(v[0]))
	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s", deck.RankPlural(v[0]), deck.RankPlural(v[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %s", deck.RankPlural(v[0]))
	}

	if len(v) == 0 {
		return "High card"
	}

	return fmt.Sprintf("High card, %s", rankWord(v[0]))
}

func rankWord(rank int) string {
	switch rank {
	case 10:
		return "Ten"
	case deck.Jack:
		return "Jack"
	case deck.Queen:
		return "Queen"
	case deck.King:
		return "King"
	case deck.Ace, deck.LowAce:
		return "Ace"
	}

	return deck.RankName(rank)
}
