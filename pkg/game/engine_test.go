package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/poker"
)

func newTestEngine() (*Engine, *State) {
	e := New(rng.NewSequence(0))
	return e, e.State()
}

func TestNewState(t *testing.T) {
	a := assert.New(t)

	s := NewState(rng.NewSeeded(1))
	a.Equal(0, s.Chips)
	a.Equal(0, s.Money)
	a.Equal(1, s.Ante)
	a.Equal(300, s.BlindGoal)
	a.Equal(1, s.MaxSlots)
	a.Equal(3, s.MaxJokers)
	a.Equal(7, s.MaxHandSize)
	a.Equal(0, s.DrawCost)
	a.Len(s.Table, TableSize)
	a.Empty(s.Hand)
	a.Empty(s.Jokers)
	a.Empty(s.Discard)
	a.Equal(52, s.Deck.CardsLeft())
	a.Equal(52, s.CardCount())
	a.NotEqual(deck.New().HashCode(), s.Deck.HashCode())
}

func TestEngine_Draw(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Chips = 1000

	costs := []int{5, 7, 10, 15, 22, 33}
	spent := 0
	prev := 0
	for i, cost := range costs {
		top := s.Deck.Cards[0]
		a.NoError(e.Draw())
		spent += prev
		prev = cost

		a.Equal(cost, s.DrawCost, "draw #%d", i+1)
		a.Equal(1000-spent, s.Chips)
		a.Len(s.Hand, i+1)
		a.Same(top, s.Hand[i])
	}

	a.Equal(52-len(costs), s.Deck.CardsLeft())
	a.Equal(52, s.CardCount())
}

func TestNextDrawCost(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, nextDrawCost(0))
	a.Equal(7, nextDrawCost(5))
	a.Equal(10, nextDrawCost(7))
	a.Equal(15, nextDrawCost(10))
	a.Equal(22, nextDrawCost(15))
}

func TestEngine_Draw_rejected(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Chips = 4
	s.DrawCost = 5
	a.Equal(ErrNotEnoughChips, e.Draw())
	a.Equal(4, s.Chips)
	a.Equal(5, s.DrawCost)
	a.Empty(s.Hand)

	s.Chips = 100
	s.MaxHandSize = 2
	s.Hand = deck.CardsFromString("2c,3c")
	a.Equal(ErrHandFull, e.Draw())
	a.Equal(100, s.Chips)
	a.Len(s.Hand, 2)
}

func TestEngine_Draw_reshuffle(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Deck = &deck.Deck{}
	s.Discard = deck.CardsFromString("2c,3c,4c")

	a.NoError(e.Draw())
	a.Len(s.Hand, 1)
	a.Empty(s.Discard)
	a.Equal(2, s.Deck.CardsLeft())
	a.Equal(5, s.DrawCost)
	a.Equal(3, s.CardCount())

	// nothing to draw from anywhere
	s.Deck = &deck.Deck{}
	s.Discard = []*deck.Card{}
	s.Chips = 10
	a.Equal(ErrNoCardsLeft, e.Draw())
	a.Equal(10, s.Chips)
	a.Equal(5, s.DrawCost)
	a.Len(s.Hand, 1)
}

func TestEngine_Discard(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Hand = deck.CardsFromString("2c,3d,4h")
	s.Discard = deck.CardsFromString("14s")

	a.NoError(e.Discard(1))
	a.Equal("2c,4h", s.Hand.String())
	a.Equal("14s,3d", deck.CardsToString(s.Discard))

	a.Equal(ErrInvalidHandIndex, e.Discard(2))
	a.Equal(ErrInvalidHandIndex, e.Discard(-1))
	a.Len(s.Hand, 2)
}

func TestEngine_PlaceCard(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Hand = deck.CardsFromString("2c,3d,4h")

	a.Equal(ErrSlotLocked, e.PlaceCard(0, 1))
	a.Equal(ErrSlotLocked, e.PlaceCard(0, -1))
	a.Equal(ErrInvalidHandIndex, e.PlaceCard(3, 0))
	a.Len(s.Hand, 3)

	a.NoError(e.PlaceCard(1, 0))
	a.Equal("3d,_,_,_,_", deck.CardsToString(s.Table))
	a.Equal("2c,4h", s.Hand.String())

	// the displaced card goes to the discard pile, not the hand
	a.NoError(e.PlaceCard(1, 0))
	a.Equal("4h,_,_,_,_", deck.CardsToString(s.Table))
	a.Equal("2c", s.Hand.String())
	a.Equal("3d", deck.CardsToString(s.Discard))

	s.MaxSlots = 5
	a.NoError(e.PlaceCard(0, 4))
	a.Equal("4h,_,_,_,2c", deck.CardsToString(s.Table))
	a.Equal(ErrSlotLocked, e.PlaceCard(0, 5))
}

func TestEngine_BuySlot(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Chips = 150

	a.NoError(e.BuySlot())
	a.Equal(2, s.MaxSlots)
	a.Equal(50, s.Chips)

	a.Equal(ErrNotEnoughChips, e.BuySlot())
	a.Equal(2, s.MaxSlots)

	s.Chips = 111000
	a.NoError(e.BuySlot())
	a.NoError(e.BuySlot())
	a.NoError(e.BuySlot())
	a.Equal(5, s.MaxSlots)
	a.Equal(0, s.Chips)

	s.Chips = 1000000
	a.Equal(ErrAllSlotsUnlocked, e.BuySlot())
	a.Equal(5, s.MaxSlots)
}

func TestEngine_BuyJoker(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 10

	a.Equal(ErrUnknownJoker, e.BuyJoker("j_nope"))

	a.NoError(e.BuyJoker("j_joker"))
	a.Equal(8, s.Money)
	a.Len(s.Jokers, 1)
	a.Equal("j_joker", s.Jokers[0].ID)
	a.NotEmpty(s.Jokers[0].UID)

	a.NoError(e.BuyJoker("j_joker"))
	a.NotEqual(s.Jokers[0].UID, s.Jokers[1].UID)

	a.Equal(ErrNotEnoughMoney, e.BuyJoker("j_blackboard"))
	a.Equal(6, s.Money)

	a.NoError(e.BuyJoker("j_golden"))
	a.Equal(0, s.Money)

	s.Money = 100
	a.Equal(ErrJokersFull, e.BuyJoker("j_joker"))
	a.Equal(100, s.Money)
}

func TestEngine_BuyJoker_credit(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.MaxJokers = 5
	s.Money = 1

	a.NoError(e.BuyJoker("j_credit_card"))
	a.Equal(0, s.Money)

	a.NoError(e.BuyJoker("j_blackboard"))
	a.Equal(-8, s.Money)
	a.NoError(e.BuyJoker("j_golden"))
	a.Equal(-14, s.Money)

	a.Equal(ErrNotEnoughMoney, e.BuyJoker("j_blackboard"))
	a.Equal(-14, s.Money)
	a.NoError(e.BuyJoker("j_egg"))
	a.Equal(-18, s.Money)
}

func TestEngine_SellJoker(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 100
	a.NoError(e.BuyJoker("j_joker"))
	a.NoError(e.BuyJoker("j_greedy"))
	a.NoError(e.BuyJoker("j_sly"))
	a.Equal(89, s.Money)

	a.NoError(e.SellJoker(1))
	a.Equal(91, s.Money)
	a.Len(s.Jokers, 2)
	a.Equal("j_joker", s.Jokers[0].ID)
	a.Equal("j_sly", s.Jokers[1].ID)

	a.Equal(ErrInvalidJokerIndex, e.SellJoker(2))
	a.Equal(ErrInvalidJokerIndex, e.SellJoker(-1))

	// appreciated cost is what is refunded
	s.Jokers[0].Cost = 9
	a.NoError(e.SellJoker(0))
	a.Equal(95, s.Money)
}

func TestEngine_BuyPack(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 10

	a.Equal(ErrUnknownPack, e.BuyPack("p_nope"))
	a.Equal(ErrNotEnoughMoney, e.BuyPack("p_buffoon_mega"))
	a.Nil(e.Opening())

	a.NoError(e.BuyPack("p_standard_mega"))
	a.Equal(2, s.Money)
	a.NotNil(e.Opening())
	a.Len(e.Opening().Options, 5)
	a.Equal(2, e.Opening().PicksLeft)

	s.Money = 100
	a.Equal(ErrPackAlreadyOpen, e.BuyPack("p_standard"))
	a.Equal(100, s.Money)

	first := e.Opening().Options[0].Card
	second := e.Opening().Options[1].Card

	// resolving the same index twice takes two distinct options
	a.NoError(e.ResolvePackChoice(0))
	a.NotNil(e.Opening())
	a.Len(e.Opening().Options, 4)

	a.NoError(e.ResolvePackChoice(0))
	a.Nil(e.Opening())

	a.Len(s.Hand, 2)
	a.Same(first, s.Hand[0])
	a.Same(second, s.Hand[1])
	a.NotEqual(first.ID, second.ID)
	a.Equal(54, s.CardCount())

	a.Equal(ErrNoPackOpen, e.ResolvePackChoice(0))
	a.Equal(ErrNoPackOpen, e.SkipPack())
}

func TestEngine_ResolvePackChoice_full(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 100
	s.MaxHandSize = 1
	s.Hand = deck.CardsFromString("2c")

	a.NoError(e.BuyPack("p_standard"))
	card := e.Opening().Options[2].Card
	a.NoError(e.ResolvePackChoice(2))
	a.Len(s.Hand, 1)
	a.Equal([]*deck.Card{card}, s.Discard)

	s.Jokers = []*joker.Joker{}
	s.MaxJokers = 0
	a.NoError(e.BuyPack("p_buffoon"))
	a.NoError(e.ResolvePackChoice(1))
	a.Nil(e.Opening())
	a.Empty(s.Jokers)
}

func TestEngine_ResolvePackChoice_joker(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 15

	a.NoError(e.BuyPack("p_buffoon_mega"))
	a.Equal(0, s.Money)
	option := e.Opening().Options[3].Joker

	a.Error(e.ResolvePackChoice(4))
	a.Equal(2, e.Opening().PicksLeft)

	a.NoError(e.ResolvePackChoice(3))
	a.Len(s.Jokers, 1)
	a.Equal(option.ID, s.Jokers[0].ID)
	a.NotEmpty(s.Jokers[0].UID)

	a.NoError(e.SkipPack())
	a.Nil(e.Opening())
	a.Len(s.Jokers, 1)
}

func TestEngine_Reset(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 100
	s.Chips = 100
	a.NoError(e.BuyPack("p_standard"))
	e.AdvanceTick()

	e.Reset()
	a.NotSame(s, e.State())
	a.Equal(0, e.State().Money)
	a.Equal(0, e.State().Chips)
	a.Nil(e.Opening())
	a.Nil(e.last)
	a.Empty(e.played)
}

func TestEngine_cardConservation(t *testing.T) {
	a := assert.New(t)

	e := New(rng.NewSeeded(42))
	s := e.State()
	s.MaxSlots = 5
	actions := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		s.Chips = 1000
		s.DrawCost = 0

		switch actions.Intn(3) {
		case 0:
			_ = e.Draw()
		case 1:
			_ = e.Discard(actions.Intn(len(s.Hand) + 1))
		case 2:
			_ = e.PlaceCard(actions.Intn(len(s.Hand)+1), actions.Intn(TableSize))
		}

		e.AdvanceTick()
		if !a.Equal(52, s.CardCount(), "action #%d", i) {
			return
		}
	}

	a.NotEqual(poker.None, e.View().Hand)
}
