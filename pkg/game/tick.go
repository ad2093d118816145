package game

import (
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/poker"
	"idlepoker-server/pkg/scoring"
)

// blind clear constants
const (
	RoundMoney   = 4
	InterestStep = 5
	InterestCap  = 5
	// BlindGrowth is the goal multiplier, in tenths
	BlindGrowth = 18
)

// TickResult is the outcome of a single tick
type TickResult struct {
	*scoring.Result
	Cleared bool `json:"cleared"`
	// Payout is the money earned by clearing the blind, not counting jokers
	Payout    int            `json:"payout"`
	Destroyed []*joker.Joker `json:"destroyed,omitempty"`
}

// AdvanceTick scores the table once and clears the blind if the goal is reached
func (e *Engine) AdvanceTick() *TickResult {
	s := e.state
	res := scoring.Score(scoring.Input{
		Table:  s.playableSlots(),
		Held:   s.Hand,
		Jokers: s.Jokers,
		Played: e.played,
	}, e.rng)

	e.last = res
	s.Money += res.MoneyDelta
	s.Chips += scoring.ChipsEarned(res.Score)
	s.BlindProgress += res.Score

	if res.Hand != poker.None {
		e.played[res.Hand] = true
	}

	tr := &TickResult{Result: res}
	if s.BlindProgress >= s.BlindGoal {
		e.clearBlind(tr)
	}

	return tr
}

// Interest returns the bonus money for holding money, capped at InterestCap
// Debt earns negative interest
func Interest(money int) int {
	return min(floorDiv(money, InterestStep), InterestCap)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// clearBlind pays out, escalates the goal and ends the round for every joker
// Progress past the goal is not carried over
func (e *Engine) clearBlind(tr *TickResult) {
	s := e.state
	payout := RoundMoney + Interest(s.Money)

	s.Money += payout
	s.Ante++
	s.BlindGoal = s.BlindGoal * BlindGrowth / 10
	s.DrawCost = max(0, s.DrawCost/2)
	s.BlindProgress = 0
	e.played = make(map[poker.Hand]bool)

	jokers := make([]*joker.Joker, 0, len(s.Jokers))
	for _, j := range s.Jokers {
		res := j.EndRound(e.rng)
		s.Money += res.Money

		if res.Destroyed {
			tr.Destroyed = append(tr.Destroyed, j)
			continue
		}

		jokers = append(jokers, j)
	}

	s.Jokers = jokers
	tr.Cleared = true
	tr.Payout = payout
}
