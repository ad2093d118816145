package deck

import "idlepoker-server/internal/rng"

// weight is an entry in a cumulative distribution out of 100
type weight[T any] struct {
	value  T
	chance int
}

type weightedTable[T any] []weight[T]

// roll picks a value by drawing a single number in [0, 100)
// anything past the listed chances falls through to the fallback
func (w weightedTable[T]) roll(r rng.Generator, fallback T) T {
	n := r.Intn(100)
	cumulative := 0
	for _, entry := range w {
		cumulative += entry.chance
		if n < cumulative {
			return entry.value
		}
	}

	return fallback
}

var enhancementTable = weightedTable[Enhancement]{
	{EnhancementGold, 30},
	{EnhancementSteel, 30},
	{EnhancementGlass, 20},
	{EnhancementStone, 20},
}

var editionTable = weightedTable[Edition]{
	{EditionPolychrome, 10},
	{EditionHolographic, 10},
	{EditionFoil, 10},
}

// RandomCard returns a card with a uniformly random suit and rank
// If enhanced is true, an enhancement and an edition are rolled independently
func RandomCard(r rng.Generator, enhanced bool) *Card {
	suit := Suits[r.Intn(len(Suits))]
	rank := r.Intn(13) + 2

	card := NewCard(rank, suit)
	if enhanced {
		card.Enhancement = enhancementTable.roll(r, EnhancementStone)
		card.Edition = editionTable.roll(r, EditionNone)
	}

	return card
}
