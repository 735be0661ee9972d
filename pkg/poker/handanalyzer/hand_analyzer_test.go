package handanalyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-tournament/pkg/deck"
)

func TestHandAnalyzer_FourOfAKind(t *testing.T) {
	h := New(deck.CardsFromString("2c,3c,3d,3h,3s"))
	assert.Equal(t, FourOfAKind, h.GetHand())
	assert.Equal(t, []int{3, 2}, h.GetValues())
	assert.Equal(t, "Four of a kind, Threes", h.Describe())

	// best kicker out of seven cards
	h = New(deck.CardsFromString("4s,4h,5c,4d,4c,13d,9s"))
	assert.Equal(t, FourOfAKind, h.GetHand())
	assert.Equal(t, []int{4, 13}, h.GetValues())
	assert.Equal(t, "4♣ 4♢ 4♡ 4♠ K♢", h.GetCards().Pretty())
}

func TestHandAnalyzer_FullHouse(t *testing.T) {
	h := New(deck.CardsFromString("14c,2c,14d,5c,14h,2d,5h"))
	assert.Equal(t, FullHouse, h.GetHand())
	assert.Equal(t, []int{14, 5}, h.GetValues())
	assert.Equal(t, "Full house, Aces full of Fives", h.Describe())

	h = New(deck.CardsFromString("3c,3d,3h,4c,4d,4h,5c"))
	assert.Equal(t, FullHouse, h.GetHand())
	assert.Equal(t, []int{4, 3}, h.GetValues())

	// the second trip plays as the pair when it is higher
	h = New(deck.CardsFromString("7c,7d,7h,6c,6d,6h,5c"))
	assert.Equal(t, []int{7, 6}, h.GetValues())

	// a higher pair beats the second trip
	h = New(deck.CardsFromString("3c,3d,3h,2c,2d,2h,9c,9d"))
	assert.Equal(t, []int{3, 9}, h.GetValues())

	h = New(deck.CardsFromString("3c,3d,4h,4c,5d,5h,6c"))
	assert.Equal(t, TwoPair, h.GetHand())
	assert.Equal(t, []int{5, 4, 6}, h.GetValues())
}

func TestHandAnalyzer_Flush(t *testing.T) {
	h := New(deck.CardsFromString("2c,9c,4c,13c,6c,7c,14d"))
	assert.Equal(t, Flush, h.GetHand())
	assert.Equal(t, []int{13, 9, 7, 6, 4}, h.GetValues())
	assert.Equal(t, "Flush, King high", h.Describe())
	assert.Equal(t, 5, len(h.GetCards()))
	for _, card := range h.GetCards() {
		assert.Equal(t, deck.Clubs, card.Suit)
	}
}

func TestHandAnalyzer_Straight(t *testing.T) {
	h := New(deck.CardsFromString("14c,2d,3h,4s,5c,9d,13h"))
	assert.Equal(t, Straight, h.GetHand())
	assert.Equal(t, []int{5}, h.GetValues())
	assert.Equal(t, "Straight, 5 high", h.Describe())
	assert.Equal(t, "5♣ 4♠ 3♡ 2♢ A♣", h.GetCards().Pretty())

	h = New(deck.CardsFromString("10c,11d,12h,13s,14c,9d,9h"))
	assert.Equal(t, Straight, h.GetHand())
	assert.Equal(t, []int{14}, h.GetValues())
	assert.Equal(t, "Straight, Ace high", h.Describe())

	h = New(deck.CardsFromString("6c,7d,8h,9s,10c,11d,3h"))
	assert.Equal(t, []int{11}, h.GetValues())

	h = New(deck.CardsFromString("13c,14d,2h,3s,4c"))
	assert.Equal(t, HighCard, h.GetHand())
}

func TestHandAnalyzer_StraightFlush(t *testing.T) {
	h := New(deck.CardsFromString("5h,6h,7h,8h,9h,10d,2c"))
	assert.Equal(t, StraightFlush, h.GetHand())
	assert.Equal(t, []int{9}, h.GetValues())
	assert.Equal(t, "Straight flush, 9 high", h.Describe())
	assert.False(t, h.GetRoyalFlush())

	h = New(deck.CardsFromString("10s,11s,12s,13s,14s,9s,2c"))
	assert.True(t, h.GetRoyalFlush())
	assert.Equal(t, "Royal flush", h.Describe())

	// a straight and a flush that are not the same five cards
	h = New(deck.CardsFromString("5h,6h,7h,8h,9c,12h,2c"))
	assert.Equal(t, Flush, h.GetHand())

	h = New(deck.CardsFromString("14d,2d,3d,4d,5d,6c"))
	assert.Equal(t, StraightFlush, h.GetHand())
	assert.Equal(t, []int{5}, h.GetValues())
}

func TestHandAnalyzer_Pairs(t *testing.T) {
	h := New(deck.CardsFromString("2c,5c,2h,5h,6d,6s,14c"))
	assert.Equal(t, TwoPair, h.GetHand())
	assert.Equal(t, []int{6, 5, 14}, h.GetValues())
	assert.Equal(t, "Two pair, Sixes and Fives", h.Describe())

	h = New(deck.CardsFromString("2c,3c,13h,13d,6d,8s,9c"))
	assert.Equal(t, OnePair, h.GetHand())
	assert.Equal(t, []int{13, 9, 8, 6}, h.GetValues())
	assert.Equal(t, "Pair of Kings", h.Describe())

	h = New(deck.CardsFromString("7c,7h,7d,14d,2d,3s,9c"))
	assert.Equal(t, ThreeOfAKind, h.GetHand())
	assert.Equal(t, []int{7, 14, 9}, h.GetValues())
	assert.Equal(t, "Three of a kind, Sevens", h.Describe())

	h = New(deck.CardsFromString("14c,2c,5c,8d,3h,10s,12h"))
	assert.Equal(t, HighCard, h.GetHand())
	assert.Equal(t, []int{14, 12, 10, 8, 5}, h.GetValues())
	assert.Equal(t, "High card, Ace", h.Describe())
}

func TestHandAnalyzer_GetStrength(t *testing.T) {
	hands := []string{
		"2c,3d,4h,5s,7c",
		"2c,3d,4h,5s,8c",
		"2c,3d,4h,6s,8c",
		"14c,12d,4h,6s,8c",
		"14c,13d,11h,9s,8c",
		"2c,2d,4h,5s,8c",
		"2c,2d,4h,5s,9c",
		"2c,2d,6h,5s,9c",
		"3c,3d,4h,5s,7c",
		"14c,14d,13h,12s,10c",
		"2c,2d,3c,3d,4c",
		"2c,2d,3c,3d,5c",
		"2c,2d,4c,4d,3c",
		"5c,5d,4c,4d,14c",
		"14c,14d,13c,13d,12c",
		"2c,2d,2h,3c,4d",
		"2c,2d,2h,3c,5d",
		"3c,3d,3h,2c,4d",
		"14c,14d,14h,13c,12d",
		"14c,2d,3h,4s,5c",
		"2d,3h,4s,5c,6d",
		"10c,11d,12h,13s,14c",
		"2c,3c,4c,5c,7c",
		"2c,3c,4c,5c,8c",
		"2c,3c,4c,6c,8c",
		"9c,10c,11c,12c,14c",
		"2c,2d,2h,3c,3d",
		"2c,2d,2h,4c,4d",
		"3c,3d,3h,2c,2d",
		"14c,14d,14h,13c,13d",
		"2c,2d,2h,2s,3c",
		"2c,2d,2h,2s,4c",
		"3c,3d,3h,3s,2c",
		"14c,14d,14h,14s,13c",
		"14c,2c,3c,4c,5c",
		"2c,3c,4c,5c,6c",
		"10c,11c,12c,13c,14c",
	}

	prevStrength := 0
	for i, hand := range hands {
		strength := New(deck.CardsFromString(hand)).GetStrength()
		assert.Greater(t, strength, prevStrength, fmt.Sprintf("hand #%d (%s) is stronger than #%d", i, hand, i-1))
		prevStrength = strength
	}
}

func TestHandAnalyzer_OrderIndependent(t *testing.T) {
	a := New(deck.CardsFromString("9s,13h,2c,13d,9c,4h,11s"))
	b := New(deck.CardsFromString("4h,11s,9c,13d,2c,9s,13h"))
	assert.Equal(t, a.GetStrength(), b.GetStrength())
	assert.Equal(t, a.GetCards(), b.GetCards())
	assert.Equal(t, a.Describe(), b.Describe())
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "High card", HighCard.String())
	assert.Panics(t, func() {
		_ = Hand(42).String()
	})
}
