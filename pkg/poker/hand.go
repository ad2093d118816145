package poker

import (
	"fmt"
	"strings"
)

// Hand is a poker hand category, i.e., royal flush
type Hand int

// Constants for hand
const (
	// None is the degenerate category of an empty table
	None Hand = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Hands lists every category from lowest to highest precedence
var Hands = []Hand{None, HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}

type baseValue struct {
	chips int
	mult  int
}

var baseValues = map[Hand]baseValue{
	None:          {0, 0},
	HighCard:      {5, 1},
	OnePair:       {10, 2},
	TwoPair:       {20, 2},
	ThreeOfAKind:  {30, 3},
	Straight:      {30, 4},
	Flush:         {35, 4},
	FullHouse:     {40, 4},
	FourOfAKind:   {60, 7},
	StraightFlush: {100, 8},
	RoyalFlush:    {100, 8},
}

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case None:
		return "None"
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// BaseChips returns the chips the category starts with
func (h Hand) BaseChips() int {
	return baseValues[h].chips
}

// BaseMult returns the mult the category starts with
func (h Hand) BaseMult() int {
	return baseValues[h].mult
}

// ParseHand returns the Hand based on its name
// Matching ignores case and treats underscores as spaces, so "THREE_OF_A_KIND" and "Three of a Kind" are equal
func ParseHand(s string) (Hand, error) {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
	for _, h := range Hands {
		if strings.ToLower(h.String()) == normalized {
			return h, nil
		}
	}

	return None, fmt.Errorf("unknown hand: %s", s)
}

// MarshalText encodes the hand by name
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes the hand by name
func (h *Hand) UnmarshalText(text []byte) error {
	hand, err := ParseHand(string(text))
	if err != nil {
		return err
	}

	*h = hand
	return nil
}

// UnmarshalYAML decodes the hand by name
func (h *Hand) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return h.UnmarshalText([]byte(s))
}
