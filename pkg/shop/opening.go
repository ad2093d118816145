package shop

import (
	"errors"

	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/deck"
	"idlepoker-server/pkg/joker"
)

// ErrInvalidOption is returned when a choice does not exist
var ErrInvalidOption = errors.New("invalid pack option")

// ErrNoPicksLeft is returned when the opening is finished
var ErrNoPicksLeft = errors.New("no picks left")

// Option is a single choice inside an open pack
// Exactly one of Card or Joker is set
type Option struct {
	Card  *deck.Card      `json:"card,omitempty"`
	Joker *joker.Template `json:"joker,omitempty"`
}

// Opening is a pack that has been bought and not yet resolved
type Opening struct {
	Pack      *Pack     `json:"pack"`
	Options   []*Option `json:"options"`
	PicksLeft int       `json:"picksLeft"`
}

// Open rolls the pack's options
// Standard packs roll enhanced cards, buffoon packs roll uniform jokers from the catalog
func (p *Pack) Open(r rng.Generator, catalog *joker.Catalog) *Opening {
	options := make([]*Option, p.Options)
	for i := range options {
		if p.Kind == PackBuffoon {
			options[i] = &Option{Joker: catalog.Random(r)}
			continue
		}

		options[i] = &Option{Card: deck.RandomCard(r, true)}
	}

	return &Opening{
		Pack:      p,
		Options:   options,
		PicksLeft: p.Picks,
	}
}

// Take removes the option at index i and spends a pick
func (o *Opening) Take(i int) (*Option, error) {
	if o.Done() {
		return nil, ErrNoPicksLeft
	}

	if i < 0 || i >= len(o.Options) {
		return nil, ErrInvalidOption
	}

	option := o.Options[i]
	o.Options = append(o.Options[:i:i], o.Options[i+1:]...)
	o.PicksLeft--

	return option, nil
}

// Done returns true if nothing more can be taken
func (o *Opening) Done() bool {
	return o.PicksLeft <= 0 || len(o.Options) == 0
}
