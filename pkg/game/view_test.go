package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/poker"
)

func TestEngine_View(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.MaxSlots = 2
	s.Money = 20
	s.Table = deck.CardsFromString("5h,5s,_,_,_")
	s.Hand = deck.CardsFromString("2c")
	s.Jokers = ownedJokers("j_egg")

	v := e.View()
	a.Equal(poker.OnePair, v.Hand)
	a.Len(v.ScoringCards, 2)
	a.Equal(0, v.LastScore)
	a.Nil(v.Result)
	a.Equal(1000, v.SlotCost)
	a.Nil(v.Pack)
	a.Len(v.Jokers, 1)
	a.Equal(2, v.Jokers[0].SellValue)
	a.Len(v.Shop.Jokers, 28)
	a.Len(v.Shop.Packs, 6)

	e.AdvanceTick()
	v = e.View()
	a.Equal(20, v.LastChips)
	a.Equal(2.0, v.LastMult)
	a.Equal(40, v.LastScore)
	a.Equal(20, v.CPS)
	a.Equal(40, v.BlindProgress)

	a.NoError(e.BuyPack("p_standard"))
	v = e.View()
	a.NotNil(v.Pack)
	a.Len(v.Pack.Options, 3)
	a.Equal(1, v.Pack.PicksLeft)
	a.Equal("p_standard", v.Pack.Pack.ID)
}

func TestEngine_View_snapshot(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.Money = 100
	s.Hand = deck.CardsFromString("2c,3c")
	s.Jokers = ownedJokers("j_egg")
	a.NoError(e.BuyPack("p_standard_mega"))

	v := e.View()

	a.NoError(e.PlaceCard(0, 0))
	a.NoError(e.Discard(0))
	a.NoError(e.ResolvePackChoice(0))
	s.Jokers[0].Cost = 50

	a.Equal("2c,3c", deck.CardsToString(v.Cards))
	a.Equal("_,_,_,_,_", deck.CardsToString(v.Table))
	a.Empty(v.Discard)
	a.Len(v.Pack.Options, 5)
	a.Equal(2, v.Pack.PicksLeft)
	a.Equal(4, v.Jokers[0].Cost)
}

func TestView_JSON(t *testing.T) {
	a := assert.New(t)

	e, s := newTestEngine()
	s.MaxSlots = 2
	s.Table = deck.CardsFromString("5h,5s,_,_,_")
	e.AdvanceTick()

	data, err := json.Marshal(e.View())
	a.NoError(err)

	var fields map[string]interface{}
	a.NoError(json.Unmarshal(data, &fields))
	a.Equal("Pair", fields["hand"])
	a.Equal(float64(40), fields["lastScore"])
	a.Equal(float64(20), fields["cps"])
	a.Nil(fields["packOpening"])
	a.Len(fields["tableCards"], 5)
	a.Len(fields["deck"], 52)
	a.NotContains(fields, "Shop")
	a.NotContains(fields, "Result")
}
