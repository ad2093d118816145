package deck

import (
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
	assert.Equal(t, "2♡", CardFromString("2h").String())
	assert.Equal(t, "J♣", CardFromString("11c").String())
	assert.Equal(t, "Q♢", CardFromString("12d").String())
	assert.Equal(t, "K♠", CardFromString("13s").String())
	assert.Equal(t, "A♠", CardFromString("14s").String())
}

func TestCard_ChipValue(t *testing.T) {
	a := assert.New(t)
	for rank := 2; rank <= 10; rank++ {
		a.Equal(rank, NewCard(rank, Clubs).ChipValue())
	}

	a.Equal(10, NewCard(Jack, Clubs).ChipValue())
	a.Equal(10, NewCard(Queen, Clubs).ChipValue())
	a.Equal(10, NewCard(King, Clubs).ChipValue())
	a.Equal(11, NewCard(Ace, Clubs).ChipValue())
}

func TestCard_Color(t *testing.T) {
	a := assert.New(t)
	a.Equal(Red, CardFromString("2h").Color())
	a.Equal(Red, CardFromString("2d").Color())
	a.Equal(Black, CardFromString("2c").Color())
	a.Equal(Black, CardFromString("2s").Color())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	c := CardFromString("5h:glass:foil")
	a.Equal(5, c.Rank)
	a.Equal(Hearts, c.Suit)
	a.True(c.IsEnhanced(EnhancementGlass))
	a.True(c.HasEdition(EditionFoil))
	a.NotEmpty(c.ID)

	c = CardFromString("14s")
	a.Equal(EnhancementNone, c.Enhancement)
	a.Equal(EditionNone, c.Edition)

	a.Nil(CardFromString(""))
	a.Panics(func() { CardFromString("15x") })

	a.NotEqual(CardFromString("2c").ID, CardFromString("2c").ID)
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)
	cards := CardsFromString("2c,_,14s:stone,5h:none:polychrome,3d:gold:holographic")
	a.Nil(cards[1])
	a.Equal("2c,_,14s:stone,5h:none:polychrome,3d:gold:holographic", CardsToString(cards))
}
