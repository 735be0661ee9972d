package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("14s")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = ParseCard("Td")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Diamonds}, card)

	card, err = ParseCard("kh")
	a.NoError(err)
	a.Equal(Card{Rank: King, Suit: Hearts}, card)

	_, err = ParseCard("1c")
	a.EqualError(err, "could not parse card: 1c")

	_, err = ParseCard("15c")
	a.Error(err)

	_, err = ParseCard("2x")
	a.Error(err)

	a.Panics(func() {
		CardFromString("bad")
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("As").Equal(CardFromString("14s")))
	a.False(CardFromString("As").Equal(CardFromString("Ah")))
	a.Equal(LowAce, CardFromString("Ac").AceLowRank())
	a.Equal(9, CardFromString("9c").AceLowRank())
}

func TestCard_JSON(t *testing.T) {
	b, err := json.Marshal(CardsFromString("As,10d"))
	assert.NoError(t, err)
	assert.Equal(t, `["14s","10d"]`, string(b))

	var h Hand
	assert.NoError(t, json.Unmarshal(b, &h))
	assert.Equal(t, CardsFromString("14s,10d"), h)
}

func TestRankNames(t *testing.T) {
	assert.Equal(t, "A", RankName(Ace))
	assert.Equal(t, "10", RankName(10))
	assert.Equal(t, "Sixes", RankPlural(6))
	assert.Equal(t, "Aces", RankPlural(Ace))
}
