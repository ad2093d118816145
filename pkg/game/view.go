package game

import (
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/poker"
	"idlepoker-server/pkg/scoring"
	"idlepoker-server/pkg/shop"
)

// View is a read-only snapshot of a run for rendering
// It shares no mutable memory with the engine
type View struct {
	Chips         int `json:"chips"`
	Money         int `json:"money"`
	Ante          int `json:"ante"`
	BlindProgress int `json:"blindProgress"`
	BlindGoal     int `json:"blindGoal"`
	MaxSlots      int `json:"maxSlots"`
	MaxJokers     int `json:"maxJokers"`
	MaxHandSize   int `json:"maxHandSize"`
	DrawCost      int `json:"drawCost"`
	// SlotCost is the chips needed for the next slot, 0 if every slot is unlocked
	SlotCost      int `json:"slotCost"`
	SpendingFloor int `json:"spendingFloor"`

	Hand         poker.Hand   `json:"hand"`
	ScoringCards []*deck.Card `json:"scoringCards"`
	LastChips    int          `json:"lastChips"`
	LastMult     float64      `json:"lastMult"`
	LastScore    int          `json:"lastScore"`
	// CPS is the chips earned per tick at the last score
	CPS int `json:"cps"`

	Table   []*deck.Card `json:"tableCards"`
	Cards   []*deck.Card `json:"handCards"`
	Deck    []*deck.Card `json:"deck"`
	Discard []*deck.Card `json:"discardPile"`

	Jokers []*JokerView    `json:"jokers"`
	Pack   *PackView       `json:"packOpening"`
	Shop   *ShopView       `json:"-"`
	Result *scoring.Result `json:"-"`
}

// JokerView is an owned joker with its sell value
type JokerView struct {
	joker.Joker
	SellValue int `json:"sellValue"`
}

// PackView is the open pack
type PackView struct {
	Pack      shop.Pack      `json:"pack"`
	Options   []*shop.Option `json:"options"`
	PicksLeft int            `json:"picksLeft"`
}

// ShopView lists everything that can be bought
type ShopView struct {
	Jokers []*joker.Template `json:"jokers"`
	Packs  []*shop.Pack      `json:"packs"`
}

// View returns a snapshot of the run
// The hand category and scoring cards reflect the table right now, the last
// chips, mult and score reflect the most recent tick
func (e *Engine) View() *View {
	s := e.state
	analyzer := poker.NewHandAnalyzer(s.playableSlots())

	v := &View{
		Chips:         s.Chips,
		Money:         s.Money,
		Ante:          s.Ante,
		BlindProgress: s.BlindProgress,
		BlindGoal:     s.BlindGoal,
		MaxSlots:      s.MaxSlots,
		MaxJokers:     s.MaxJokers,
		MaxHandSize:   s.MaxHandSize,
		DrawCost:      s.DrawCost,
		SpendingFloor: joker.SpendingFloor(s.Jokers),
		Hand:          analyzer.GetHand(),
		ScoringCards:  analyzer.ScoringCards(),
		Table:         cloneCards(s.Table),
		Cards:         cloneCards(s.Hand),
		Deck:          cloneCards(s.Deck.Cards),
		Discard:       cloneCards(s.Discard),
		Jokers:        make([]*JokerView, len(s.Jokers)),
		Shop: &ShopView{
			Jokers: e.catalog.Jokers,
			Packs:  e.packs.Packs,
		},
	}

	if cost, ok := shop.SlotCost(s.MaxSlots); ok {
		v.SlotCost = cost
	}

	if e.last != nil {
		v.LastChips = e.last.Chips
		v.LastMult = e.last.Mult
		v.LastScore = e.last.Score
		v.CPS = scoring.ChipsEarned(e.last.Score)
		v.Result = e.last
	}

	for i, j := range s.Jokers {
		v.Jokers[i] = &JokerView{
			Joker:     *j,
			SellValue: j.SellValue(),
		}
	}

	if o := e.opening; o != nil {
		v.Pack = &PackView{
			Pack:      *o.Pack,
			Options:   append([]*shop.Option{}, o.Options...),
			PicksLeft: o.PicksLeft,
		}
	}

	return v
}

// cards are immutable, so copying the slice is enough
func cloneCards(cards []*deck.Card) []*deck.Card {
	c := make([]*deck.Card, len(cards))
	copy(c, cards)

	return c
}
