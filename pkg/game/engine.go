package game

import (
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/joker"
	"idlepoker-server/pkg/poker"
	"idlepoker-server/pkg/scoring"
	"idlepoker-server/pkg/shop"
)

// Engine owns a run and is the only thing that mutates it
// An Engine is not safe for concurrent use, callers must serialize access
type Engine struct {
	state   *State
	rng     rng.Generator
	catalog *joker.Catalog
	packs   *shop.Packs

	opening *shop.Opening
	// played contains the hands scored since the last blind was cleared
	played map[poker.Hand]bool
	last   *scoring.Result
}

// Option configures an Engine
type Option func(e *Engine)

// WithCatalog overrides the joker catalog
func WithCatalog(c *joker.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithPacks overrides the pack catalog
func WithPacks(p *shop.Packs) Option {
	return func(e *Engine) {
		e.packs = p
	}
}

// New returns an engine for a fresh run
func New(r rng.Generator, opts ...Option) *Engine {
	return NewWithState(NewState(r), r, opts...)
}

// NewWithState returns an engine that resumes the state
func NewWithState(s *State, r rng.Generator, opts ...Option) *Engine {
	e := &Engine{
		state:   s,
		rng:     r,
		catalog: joker.DefaultCatalog(),
		packs:   shop.DefaultPacks(),
		played:  make(map[poker.Hand]bool),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns the live state
// The state must not be modified outside of the engine
func (e *Engine) State() *State {
	return e.state
}

// Catalog returns the joker catalog the shop sells from
func (e *Engine) Catalog() *joker.Catalog {
	return e.catalog
}

// Packs returns the pack catalog the shop sells from
func (e *Engine) Packs() *shop.Packs {
	return e.packs
}

// Opening returns the open pack, or nil
func (e *Engine) Opening() *shop.Opening {
	return e.opening
}

// Reset discards the run and starts over
func (e *Engine) Reset() {
	e.state = NewState(e.rng)
	e.opening = nil
	e.played = make(map[poker.Hand]bool)
	e.last = nil
}
