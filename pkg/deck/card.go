package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Color is the color class of a suit
type Color string

// color constants
const (
	Red   Color = "red"
	Black Color = "black"
)

// Color returns the color class of the suit
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

// Enhancement is a card trait that alters scoring
type Enhancement string

// enhancement constants
const (
	EnhancementNone  Enhancement = "none"
	EnhancementGlass Enhancement = "glass"
	EnhancementGold  Enhancement = "gold"
	EnhancementSteel Enhancement = "steel"
	EnhancementStone Enhancement = "stone"
)

// Edition is a card trait, independent of the enhancement, that alters scoring
type Edition string

// edition constants
const (
	EditionNone        Edition = "none"
	EditionFoil        Edition = "foil"
	EditionHolographic Edition = "holographic"
	EditionPolychrome  Edition = "polychrome"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
// Rank is the sequencing order (2-14, Ace high)
type Card struct {
	ID          string      `json:"id"`
	Rank        int         `json:"rank"`
	Suit        Suit        `json:"suit"`
	Enhancement Enhancement `json:"enhancement"`
	Edition     Edition     `json:"edition"`
}

// NewCard returns a plain card with a fresh identity
func NewCard(rank int, suit Suit) *Card {
	return &Card{
		ID:          uuid.New().String(),
		Rank:        rank,
		Suit:        suit,
		Enhancement: EnhancementNone,
		Edition:     EditionNone,
	}
}

// Label returns the rank label (2-10, J, Q, K, A)
func (c *Card) Label() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(c.Rank)
	}
}

// ChipValue returns the chips the card is worth when scored
// Face cards are worth 10, an Ace 11
func (c *Card) ChipValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return c.Rank
	}
}

// Color returns the color class of the card's suit
func (c *Card) Color() Color {
	return c.Suit.Color()
}

// IsEnhanced returns true if the card has the specified enhancement
func (c *Card) IsEnhanced(e Enhancement) bool {
	return c.Enhancement == e
}

// HasEdition returns true if the card has the specified edition
func (c *Card) HasEdition(e Edition) bool {
	return c.Edition == e
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return c.Label() + suit
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])(?::([a-z]+))?(?::([a-z]+))?\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit>[:enhancement[:edition]] where rank >= 2 and <= 14
// and suit in [cdhs], i.e., 14s or 5h:glass:foil
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	card := NewCard(rank, suit)
	if match[3] != "" {
		card.Enhancement = Enhancement(strings.ToLower(match[3]))
	}

	if match[4] != "" {
		card.Edition = Edition(strings.ToLower(match[4]))
	}

	return card
}

// CardsFromString will returns a slice of cards
// An underscore denotes an empty slot
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		if card == "_" {
			continue
		}

		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return "_"
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	s := fmt.Sprintf("%d%s", card.Rank, suit)
	hasEnhancement := card.Enhancement != "" && card.Enhancement != EnhancementNone
	hasEdition := card.Edition != "" && card.Edition != EditionNone
	if hasEnhancement || hasEdition {
		enhancement := card.Enhancement
		if !hasEnhancement {
			enhancement = EnhancementNone
		}

		s += ":" + string(enhancement)
	}

	if hasEdition {
		s += ":" + string(card.Edition)
	}

	return s
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
