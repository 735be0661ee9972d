package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmptyDeck is an error when Burn() or Draw() is attempted and there are no more cards
var ErrEmptyDeck = errors.New("end of deck reached")

// ErrInsufficientCards is an error when Deal() asks for more cards than remain
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck represents a playing deck
// Cards are consumed from the front of Cards
type Deck struct {
	Cards Hand `json:"cards"`
	seed  int64
}

// New returns a new deck of cards in suit then rank order.
// Important! this deck is unshuffled. Use NewShuffled() for a playable deck
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// NewShuffled returns a freshly built and shuffled deck
// A seed of 0 picks a seed from the clock. The seed used can be retrieved with GetSeed()
func NewShuffled(seed int64) *Deck {
	d := New()
	d.Shuffle(seed)
	return d
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will rebuild and shuffle the deck of cards using Fisher-Yates
// You can manually specify the seed, or you can leave it as 0
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck so a seed fully describes the order
	d.buildDeck()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.seed = seed
	rng := rand.New(rand.NewSource(seed)) // nolint:gosec

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck, or -1 if unshuffled
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEmptyDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Burn discards the top card and returns it
func (d *Deck) Burn() (Card, error) {
	return d.Draw()
}

// Deal removes n cards from the top of the deck
// Nothing is removed if the deck cannot satisfy the request
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, fmt.Errorf("%w: wanted %d, have %d", ErrInsufficientCards, n, len(d.Cards))
	}

	cards := d.Cards[:n].Clone()
	d.Cards = d.Cards[n:]
	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a deep copy of the deck
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}

	return &Deck{
		Cards: d.Cards.Clone(),
		seed:  d.seed,
	}
}
