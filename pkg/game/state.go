package game

import (
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
)

// initial values of a new run
const (
	TableSize          = 5
	InitialAnte        = 1
	InitialBlindGoal   = 300
	InitialMaxSlots    = 1
	InitialMaxJokers   = 3
	InitialMaxHandSize = 7
)

// State is everything persisted about a run
type State struct {
	Chips         int            `json:"chips"`
	Money         int            `json:"money"`
	Ante          int            `json:"ante"`
	BlindProgress int            `json:"blindProgress"`
	BlindGoal     int            `json:"blindGoal"`
	MaxSlots      int            `json:"maxSlots"`
	MaxJokers     int            `json:"maxJokers"`
	Table         []*deck.Card   `json:"tableCards"`
	Hand          deck.Hand      `json:"handCards"`
	Jokers        []*joker.Joker `json:"jokers"`
	DrawCost      int            `json:"drawCost"`
	MaxHandSize   int            `json:"maxHandSize"`
	Deck          *deck.Deck     `json:"deck"`
	Discard       []*deck.Card   `json:"discardPile"`
}

// NewState returns the state of a fresh run with a shuffled standard deck
func NewState(r rng.Generator) *State {
	return &State{
		Ante:        InitialAnte,
		BlindGoal:   InitialBlindGoal,
		MaxSlots:    InitialMaxSlots,
		MaxJokers:   InitialMaxJokers,
		MaxHandSize: InitialMaxHandSize,
		Table:       make([]*deck.Card, TableSize),
		Hand:        deck.Hand{},
		Jokers:      []*joker.Joker{},
		Deck:        deck.NewShuffled(r),
		Discard:     []*deck.Card{},
	}
}

// playableSlots returns the unlocked part of the table
func (s *State) playableSlots() []*deck.Card {
	n := s.MaxSlots
	if n > len(s.Table) {
		n = len(s.Table)
	}

	if n < 0 {
		n = 0
	}

	return s.Table[:n]
}

// CardCount returns the number of cards across the deck, discard pile, hand and table
func (s *State) CardCount() int {
	return s.Deck.CardsLeft() + len(s.Discard) + s.Hand.Count() + deck.Hand(s.Table).Count()
}
