package scoring

import (
	"math"

	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/poker"
)

// card effect constants
const (
	StoneChips      = 50
	FoilChips       = 50
	GlassMultiplier = 2.0
	GoldMoney       = 3
	HoloMult        = 10
	PolyMultiplier  = 1.5
	SteelMultiplier = 1.5
)

// Input is everything a scoring pass looks at
type Input struct {
	// Table holds the playable slots, nil is an empty slot
	Table []*deck.Card
	// Held are the cards in the player's hand
	Held deck.Hand
	// Jokers are applied in order
	Jokers []*joker.Joker
	// Played contains the hands already scored this round
	Played map[poker.Hand]bool
}

// Result is the outcome of a scoring pass
type Result struct {
	Hand         poker.Hand   `json:"hand"`
	ScoringCards []*deck.Card `json:"scoringCards"`
	Chips        int          `json:"chips"`
	Mult         float64      `json:"mult"`
	Score        int          `json:"score"`
	// MoneyDelta is money earned by the cards, i.e., gold cards
	MoneyDelta int `json:"moneyDelta"`
}

// Score classifies the table and applies every modifier
// The result is deterministic for a deterministic generator
func Score(in Input, r rng.Generator) *Result {
	analyzer := poker.NewHandAnalyzer(in.Table)
	hand := analyzer.GetHand()

	res := &Result{
		Hand:         hand,
		ScoringCards: analyzer.ScoringCards(),
		Chips:        hand.BaseChips(),
		Mult:         float64(hand.BaseMult()),
	}

	scoreCardChips(res)
	scoreCardMult(res)
	scoreHeldCards(res, in.Held)

	for _, j := range in.Jokers {
		if fn, ok := effects[j.Kind]; ok {
			fn(j, &in, res, r)
		}
	}

	res.Score = int(math.Floor(float64(res.Chips) * res.Mult))
	return res
}

func scoreCardChips(res *Result) {
	for _, card := range res.ScoringCards {
		res.Chips += card.ChipValue()

		if card.IsEnhanced(deck.EnhancementStone) {
			res.Chips += StoneChips
		}

		if card.HasEdition(deck.EditionFoil) {
			res.Chips += FoilChips
		}
	}
}

// glass does not break while idling
func scoreCardMult(res *Result) {
	for _, card := range res.ScoringCards {
		switch card.Enhancement {
		case deck.EnhancementGlass:
			res.Mult *= GlassMultiplier
		case deck.EnhancementGold:
			res.MoneyDelta += GoldMoney
		}

		switch card.Edition {
		case deck.EditionHolographic:
			res.Mult += HoloMult
		case deck.EditionPolychrome:
			res.Mult *= PolyMultiplier
		}
	}
}

func scoreHeldCards(res *Result, held deck.Hand) {
	for _, card := range held {
		if card.IsEnhanced(deck.EnhancementSteel) {
			res.Mult *= SteelMultiplier
		}
	}
}

// ChipsEarned converts a score into the passive chips currency
func ChipsEarned(score int) int {
	return score / 2
}
