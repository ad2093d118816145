package game

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/shop"
)

// MarshalSave encodes the persisted fields of the run
func (e *Engine) MarshalSave() ([]byte, error) {
	return json.Marshal(e.state)
}

// LoadSave decodes a save field by field
// A field that is missing, null or malformed falls back to its new-run default,
// so a damaged save still resumes
func LoadSave(data []byte, r rng.Generator) *State {
	return loadSave(data, r, joker.DefaultCatalog())
}

func loadSave(data []byte, r rng.Generator, catalog *joker.Catalog) *State {
	s := NewState(r)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		logrus.WithError(err).Warn("could not decode save, starting a new run")
		return s
	}

	decodeField(fields, "chips", &s.Chips)
	decodeField(fields, "money", &s.Money)
	decodeField(fields, "ante", &s.Ante)
	decodeField(fields, "blindProgress", &s.BlindProgress)
	decodeField(fields, "blindGoal", &s.BlindGoal)
	decodeField(fields, "maxSlots", &s.MaxSlots)
	decodeField(fields, "maxJokers", &s.MaxJokers)
	decodeField(fields, "tableCards", &s.Table)
	decodeField(fields, "handCards", &s.Hand)
	decodeField(fields, "jokers", &s.Jokers)
	decodeField(fields, "drawCost", &s.DrawCost)
	decodeField(fields, "maxHandSize", &s.MaxHandSize)
	decodeField(fields, "deck", &s.Deck)
	decodeField(fields, "discardPile", &s.Discard)

	s.normalize(catalog)
	return s
}

func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logrus.WithError(err).WithField("field", key).Warn("could not decode save field, using default")
		return
	}

	*dst = v
}

// normalize repairs values a decoded save cannot be trusted with
func (s *State) normalize(catalog *joker.Catalog) {
	if s.BlindGoal <= 0 {
		s.BlindGoal = InitialBlindGoal
	}

	if s.MaxSlots < 1 {
		s.MaxSlots = InitialMaxSlots
	} else if s.MaxSlots > shop.MaxSlots {
		s.MaxSlots = shop.MaxSlots
	}

	if s.DrawCost < 0 {
		s.DrawCost = 0
	}

	if s.MaxHandSize < 1 {
		s.MaxHandSize = InitialMaxHandSize
	}

	if s.MaxJokers < 0 {
		s.MaxJokers = InitialMaxJokers
	}

	s.Hand = compactCards(s.Hand)
	s.Discard = compactCards(s.Discard)

	// cards past the last slot are kept in the discard pile
	table := make([]*deck.Card, TableSize)
	copy(table, s.Table)
	if len(s.Table) > TableSize {
		s.Discard = append(s.Discard, compactCards(s.Table[TableSize:])...)
	}

	s.Table = table

	jokers := make([]*joker.Joker, 0, len(s.Jokers))
	for _, j := range s.Jokers {
		if j == nil {
			continue
		}

		catalog.Hydrate(j)
		jokers = append(jokers, j)
	}

	s.Jokers = jokers
}

func compactCards(cards []*deck.Card) []*deck.Card {
	c := make([]*deck.Card, 0, len(cards))
	for _, card := range cards {
		if card != nil {
			c = append(c, card)
		}
	}

	return c
}
