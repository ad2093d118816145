package joker

import (
	"fmt"

	"github.com/google/uuid"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/poker"
)

// Kind selects how a joker behaves when scoring and at the end of a round
type Kind string

// Kind constants
const (
	// KindMult adds Val to mult
	KindMult Kind = "mult"
	// KindChips adds Val to chips
	KindChips Kind = "chips"
	// KindSuitMult adds Val to mult if any scoring card has the target suit
	KindSuitMult Kind = "suit_mult"
	// KindRankMult adds Val to mult once if any scoring card has one of the target ranks
	KindRankMult Kind = "rank_mult"
	// KindHandChips adds Val to chips if the target hand matched
	KindHandChips Kind = "hand_chips"
	// KindHandMult adds Val to mult if the target hand matched
	KindHandMult Kind = "hand_mult"
	// KindScaling adds Val to mult or chips, Val shrinks by Decay every round
	KindScaling Kind = "scaling"
	// KindRandomMult adds a random number in [0, Val) to mult
	KindRandomMult Kind = "random_mult"
	// KindLowestHeld adds Val times the lowest chip value held in hand to mult
	KindLowestHeld Kind = "lowest_held"
	// KindBlackHeld multiplies mult by Val if every card held in hand is black
	KindBlackHeld Kind = "black_held"
	// KindXMult multiplies mult by Val
	KindXMult Kind = "x_mult"
	// KindRepeatHand multiplies mult by Val if the hand was already scored this round
	KindRepeatHand Kind = "repeat_hand"
	// KindRoundMoney earns Val money at the end of the round
	KindRoundMoney Kind = "round_money"
	// KindAppreciate increases its cost by Val at the end of the round
	KindAppreciate Kind = "appreciate"
	// KindCredit allows spending down to -Val money
	KindCredit Kind = "credit"
)

var kinds = map[Kind]bool{
	KindMult:       true,
	KindChips:      true,
	KindSuitMult:   true,
	KindRankMult:   true,
	KindHandChips:  true,
	KindHandMult:   true,
	KindScaling:    true,
	KindRandomMult: true,
	KindLowestHeld: true,
	KindBlackHeld:  true,
	KindXMult:      true,
	KindRepeatHand: true,
	KindRoundMoney: true,
	KindAppreciate: true,
	KindCredit:     true,
}

// Rarity is how rare a joker is
type Rarity string

// Rarity constants
const (
	Common    Rarity = "Common"
	Uncommon  Rarity = "Uncommon"
	Rare      Rarity = "Rare"
	Legendary Rarity = "Legendary"
)

// Target is what a scaling joker adds to
type Target string

// Target constants
const (
	TargetMult  Target = "mult"
	TargetChips Target = "chips"
)

// Template describes a joker that can be bought
type Template struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Desc   string `yaml:"desc" json:"desc"`
	Cost   int    `yaml:"cost" json:"cost"`
	Rarity Rarity `yaml:"rarity" json:"rarity"`
	Kind   Kind   `yaml:"kind" json:"kind"`
	Val    int    `yaml:"val" json:"val"`

	Suit   deck.Suit  `yaml:"suit" json:"suit,omitempty"`
	Hand   poker.Hand `yaml:"hand" json:"hand,omitempty"`
	Ranks  []int      `yaml:"ranks" json:"ranks,omitempty"`
	Scales Target     `yaml:"scales" json:"scales,omitempty"`
	Decay  int        `yaml:"decay" json:"decay,omitempty"`

	Perishable bool `yaml:"perishable" json:"perishable,omitempty"`
	// DeathOdds is the N in a 1 in N chance of dying at the end of a round
	DeathOdds int `yaml:"deathOdds" json:"deathOdds,omitempty"`
}

// Validate ensures the template is usable
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("joker %q: missing id", t.Name)
	}

	if !kinds[t.Kind] {
		return fmt.Errorf("joker %s: unknown kind: %s", t.ID, t.Kind)
	}

	switch t.Kind {
	case KindSuitMult:
		if t.Suit == "" {
			return fmt.Errorf("joker %s: suit_mult requires a suit", t.ID)
		}
	case KindRankMult:
		if len(t.Ranks) == 0 {
			return fmt.Errorf("joker %s: rank_mult requires ranks", t.ID)
		}
	case KindHandChips, KindHandMult:
		if t.Hand == poker.None {
			return fmt.Errorf("joker %s: %s requires a hand", t.ID, t.Kind)
		}
	case KindScaling:
		if t.Scales != TargetMult && t.Scales != TargetChips {
			return fmt.Errorf("joker %s: scaling requires scales of mult or chips", t.ID)
		}
	case KindRandomMult:
		if t.Val <= 0 {
			return fmt.Errorf("joker %s: random_mult requires a positive val", t.ID)
		}
	}

	if t.Perishable && t.DeathOdds <= 0 {
		return fmt.Errorf("joker %s: perishable requires deathOdds", t.ID)
	}

	return nil
}

// NewJoker returns a fresh owned instance of the template
func (t *Template) NewJoker() *Joker {
	return &Joker{
		Template: *t,
		UID:      uuid.New().String(),
	}
}

// Joker is an owned instance of a template
// Val and Cost may drift from the template as rounds end
type Joker struct {
	Template
	UID string `json:"uid"`
}

// SellValue returns how much money selling the joker refunds
func (j *Joker) SellValue() int {
	return j.Cost / 2
}

// HasRank returns true if the rank is one of the joker's target ranks
func (j *Joker) HasRank(rank int) bool {
	for _, r := range j.Ranks {
		if r == rank {
			return true
		}
	}

	return false
}

// RoundResult is the outcome of the end of a round for a single joker
type RoundResult struct {
	Money     int
	Destroyed bool
	// Reason explains why the joker was destroyed
	Reason string
}

// EndRound applies the joker's end of round effects
// Economy effects apply first, then decay, then the perishable death roll
func (j *Joker) EndRound(r rng.Generator) RoundResult {
	var res RoundResult

	switch j.Kind {
	case KindRoundMoney:
		res.Money = j.Val
	case KindAppreciate:
		j.Cost += j.Val
	case KindScaling:
		j.Val -= j.Decay
		if j.Val <= 0 {
			j.Val = 0
			res.Destroyed = true
			res.Reason = "decayed"
			return res
		}
	}

	if j.Perishable && j.DeathOdds > 0 && r.Intn(j.DeathOdds) == 0 {
		res.Destroyed = true
		res.Reason = "perished"
	}

	return res
}

// SpendingFloor returns the lowest balance money may drop to when buying
// Without a credit joker it is zero
func SpendingFloor(owned []*Joker) int {
	floor := 0
	for _, j := range owned {
		if j.Kind == KindCredit && -j.Val < floor {
			floor = -j.Val
		}
	}

	return floor
}
