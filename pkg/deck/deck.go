package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"

	"idlepoker-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
// The top of the deck is the first card
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new standard deck of 52 plain cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return &Deck{Cards: cards}
}

// NewShuffled returns a new standard deck shuffled with the generator
func NewShuffled(r rng.Generator) *Deck {
	d := New()
	d.Shuffle(r)
	return d
}

// Shuffle will shuffle the cards in place (Fisher-Yates)
func (d *Deck) Shuffle(r rng.Generator) {
	shuffle(d.Cards, r)
}

// ShuffleDiscards will replace the existing deck with the cards specified
// The discards slice is not modified
func (d *Deck) ShuffleDiscards(discards []*Card, r rng.Generator) {
	cards := make([]*Card, len(discards))
	copy(cards, discards)
	shuffle(cards, r)

	d.Cards = cards
}

func shuffle(cards []*Card, r rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck order.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the top card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// MarshalJSON encodes the deck as a sequence of cards, top first
func (d *Deck) MarshalJSON() ([]byte, error) {
	if d.Cards == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(d.Cards)
}

// UnmarshalJSON decodes a sequence of cards
// Empty entries are dropped
func (d *Deck) UnmarshalJSON(data []byte) error {
	var cards []*Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}

	d.Cards = make([]*Card, 0, len(cards))
	for _, card := range cards {
		if card != nil {
			d.Cards = append(d.Cards, card)
		}
	}

	return nil
}
