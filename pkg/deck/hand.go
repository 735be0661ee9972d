package deck

import (
	"encoding/json"
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return true
		}

		seen[c] = true
	}

	return false
}

// SortByRank returns a copy of the hand ordered from the highest rank to the lowest
// Ties are ordered by suit so the result does not depend on the input order
func (h Hand) SortByRank() Hand {
	sorted := h.Clone()
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}

		return sorted[i].Suit < sorted[j].Suit
	})

	return sorted
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Pretty returns the hand using suit symbols, i.e., "A♠ K♠"
func (h Hand) Pretty() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// MarshalJSON encodes the hand as a list of card strings
func (h Hand) MarshalJSON() ([]byte, error) {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = CardToString(card)
	}

	return json.Marshal(c)
}

// UnmarshalJSON decodes a list of card strings
func (h *Hand) UnmarshalJSON(b []byte) error {
	var c []Card
	if err := json.Unmarshal(b, &c); err != nil {
		return err
	}

	*h = c
	return nil
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
