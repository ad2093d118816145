package game

import (
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/shop"
)

const firstDrawCost = 5

// nextDrawCost escalates the draw cost: 0 → 5, then ×1.5 floored
func nextDrawCost(prev int) int {
	if prev <= 0 {
		return firstDrawCost
	}

	return prev * 3 / 2
}

// Draw moves the top card of the deck into the hand
// An empty deck is refilled from the discard pile first
func (e *Engine) Draw() error {
	s := e.state
	if s.Chips < s.DrawCost {
		return ErrNotEnoughChips
	}

	if len(s.Hand) >= s.MaxHandSize {
		return ErrHandFull
	}

	if s.Deck.CardsLeft() == 0 {
		if len(s.Discard) == 0 {
			return ErrNoCardsLeft
		}

		s.Deck.ShuffleDiscards(s.Discard, e.rng)
		s.Discard = []*deck.Card{}
	}

	card, err := s.Deck.Draw()
	if err != nil {
		return err
	}

	s.Chips -= s.DrawCost
	s.DrawCost = nextDrawCost(s.DrawCost)
	s.Hand.AddCard(card)

	return nil
}

// Discard moves a card from the hand to the end of the discard pile
func (e *Engine) Discard(handIndex int) error {
	card := e.state.Hand.RemoveAt(handIndex)
	if card == nil {
		return ErrInvalidHandIndex
	}

	e.state.Discard = append(e.state.Discard, card)
	return nil
}

// PlaceCard moves a card from the hand onto a table slot
// A card already in the slot is discarded
func (e *Engine) PlaceCard(handIndex, slot int) error {
	s := e.state
	if slot < 0 || slot >= len(s.playableSlots()) {
		return ErrSlotLocked
	}

	if handIndex < 0 || handIndex >= len(s.Hand) {
		return ErrInvalidHandIndex
	}

	if displaced := s.Table[slot]; displaced != nil {
		s.Discard = append(s.Discard, displaced)
	}

	s.Table[slot] = s.Hand.RemoveAt(handIndex)
	return nil
}

// BuySlot unlocks the next table slot with chips
func (e *Engine) BuySlot() error {
	s := e.state
	cost, ok := shop.SlotCost(s.MaxSlots)
	if !ok {
		return ErrAllSlotsUnlocked
	}

	if s.Chips < cost {
		return ErrNotEnoughChips
	}

	s.Chips -= cost
	s.MaxSlots++

	return nil
}

// canSpend returns true if paying cost keeps money at or above the spending floor
func (e *Engine) canSpend(cost int) bool {
	return e.state.Money-cost >= joker.SpendingFloor(e.state.Jokers)
}

// BuyJoker buys a fresh instance of the joker
func (e *Engine) BuyJoker(id string) error {
	t, ok := e.catalog.Get(id)
	if !ok {
		return ErrUnknownJoker
	}

	s := e.state
	if len(s.Jokers) >= s.MaxJokers {
		return ErrJokersFull
	}

	if !e.canSpend(t.Cost) {
		return ErrNotEnoughMoney
	}

	s.Money -= t.Cost
	s.Jokers = append(s.Jokers, t.NewJoker())

	return nil
}

// SellJoker sells the owned joker at the position for half its cost
func (e *Engine) SellJoker(index int) error {
	s := e.state
	if index < 0 || index >= len(s.Jokers) {
		return ErrInvalidJokerIndex
	}

	j := s.Jokers[index]
	s.Money += j.SellValue()

	jokers := make([]*joker.Joker, 0, len(s.Jokers)-1)
	jokers = append(jokers, s.Jokers[:index]...)
	s.Jokers = append(jokers, s.Jokers[index+1:]...)

	return nil
}

// BuyPack pays for a pack and opens it
// Only one pack may be open at a time
func (e *Engine) BuyPack(id string) error {
	if e.opening != nil {
		return ErrPackAlreadyOpen
	}

	pack, ok := e.packs.Get(id)
	if !ok {
		return ErrUnknownPack
	}

	if !e.canSpend(pack.Cost) {
		return ErrNotEnoughMoney
	}

	e.state.Money -= pack.Cost
	e.opening = pack.Open(e.rng, e.catalog)

	return nil
}

// ResolvePackChoice takes an option from the open pack
// A card goes to the hand, or the discard pile if the hand is full
// A joker is only kept if there is room for it, the pick is spent either way
func (e *Engine) ResolvePackChoice(optionIndex int) error {
	if e.opening == nil {
		return ErrNoPackOpen
	}

	option, err := e.opening.Take(optionIndex)
	if err != nil {
		return err
	}

	s := e.state
	switch {
	case option.Card != nil:
		if len(s.Hand) < s.MaxHandSize {
			s.Hand.AddCard(option.Card)
		} else {
			s.Discard = append(s.Discard, option.Card)
		}
	case option.Joker != nil:
		if len(s.Jokers) < s.MaxJokers {
			s.Jokers = append(s.Jokers, option.Joker.NewJoker())
		}
	}

	if e.opening.Done() {
		e.opening = nil
	}

	return nil
}

// SkipPack closes the open pack, discarding the remaining options
func (e *Engine) SkipPack() error {
	if e.opening == nil {
		return ErrNoPackOpen
	}

	e.opening = nil
	return nil
}
