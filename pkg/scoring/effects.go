package scoring

import (
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
)

type effectFunc func(j *joker.Joker, in *Input, res *Result, r rng.Generator)

// effects maps every joker kind to how it modifies a score
var effects = map[joker.Kind]effectFunc{
	joker.KindMult:       flatMult,
	joker.KindChips:      flatChips,
	joker.KindSuitMult:   suitMult,
	joker.KindRankMult:   rankMult,
	joker.KindHandChips:  handChips,
	joker.KindHandMult:   handMult,
	joker.KindScaling:    scaling,
	joker.KindRandomMult: randomMult,
	joker.KindLowestHeld: lowestHeld,
	joker.KindBlackHeld:  blackHeld,
	joker.KindXMult:      xMult,
	joker.KindRepeatHand: repeatHand,

	// economy jokers act at the end of a round
	joker.KindRoundMoney: noEffect,
	joker.KindAppreciate: noEffect,
	joker.KindCredit:     noEffect,
}

func noEffect(*joker.Joker, *Input, *Result, rng.Generator) {}

func flatMult(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	res.Mult += float64(j.Val)
}

func flatChips(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	res.Chips += j.Val
}

func suitMult(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	for _, card := range res.ScoringCards {
		if card.Suit == j.Suit {
			res.Mult += float64(j.Val)
			return
		}
	}
}

// rankMult applies once, no matter how many cards match
func rankMult(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	for _, card := range res.ScoringCards {
		if j.HasRank(card.Rank) {
			res.Mult += float64(j.Val)
			return
		}
	}
}

func handChips(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	if res.Hand == j.Hand {
		res.Chips += j.Val
	}
}

func handMult(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	if res.Hand == j.Hand {
		res.Mult += float64(j.Val)
	}
}

func scaling(j *joker.Joker, in *Input, res *Result, r rng.Generator) {
	if j.Scales == joker.TargetChips {
		flatChips(j, in, res, r)
		return
	}

	flatMult(j, in, res, r)
}

func randomMult(j *joker.Joker, _ *Input, res *Result, r rng.Generator) {
	if j.Val <= 0 {
		return
	}

	res.Mult += float64(r.Intn(j.Val))
}

func lowestHeld(j *joker.Joker, in *Input, res *Result, _ rng.Generator) {
	if lowest, ok := in.Held.LowestChipValue(); ok {
		res.Mult += float64(j.Val * lowest)
	}
}

func blackHeld(j *joker.Joker, in *Input, res *Result, _ rng.Generator) {
	if in.Held.AllColor(deck.Black) {
		res.Mult *= float64(j.Val)
	}
}

func xMult(j *joker.Joker, _ *Input, res *Result, _ rng.Generator) {
	res.Mult *= float64(j.Val)
}

func repeatHand(j *joker.Joker, in *Input, res *Result, _ rng.Generator) {
	if in.Played[res.Hand] {
		res.Mult *= float64(j.Val)
	}
}
