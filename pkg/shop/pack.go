package shop

import (
	_ "embed" // needed for the pack catalog
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"
)

//go:embed packs.yaml
var packsYAML []byte

var (
	defaultPacks     *Packs
	defaultPacksOnce sync.Once
)

// PackKind is what a pack contains
type PackKind string

// PackKind constants
const (
	// PackStandard contains enhanced playing cards
	PackStandard PackKind = "standard"
	// PackBuffoon contains jokers
	PackBuffoon PackKind = "buffoon"
)

// Pack is a booster pack that can be bought with money
type Pack struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Desc    string   `yaml:"desc" json:"desc"`
	Kind    PackKind `yaml:"kind" json:"kind"`
	Cost    int      `yaml:"cost" json:"cost"`
	Options int      `yaml:"options" json:"options"`
	Picks   int      `yaml:"picks" json:"picks"`
}

// Validate ensures the pack is usable
func (p *Pack) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pack %q: missing id", p.Name)
	}

	if p.Kind != PackStandard && p.Kind != PackBuffoon {
		return fmt.Errorf("pack %s: unknown kind: %s", p.ID, p.Kind)
	}

	if p.Options <= 0 || p.Picks <= 0 || p.Picks > p.Options {
		return fmt.Errorf("pack %s: picks must be between 1 and %d", p.ID, p.Options)
	}

	return nil
}

// Packs is the ordered pack catalog
type Packs struct {
	Packs []*Pack `yaml:"packs" json:"packs"`
	byID  map[string]*Pack
}

// LoadPacks decodes and validates a YAML pack catalog
func LoadPacks(data []byte) (*Packs, error) {
	var p Packs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not decode pack catalog: %w", err)
	}

	p.byID = make(map[string]*Pack, len(p.Packs))
	for _, pack := range p.Packs {
		if err := pack.Validate(); err != nil {
			return nil, err
		}

		if _, found := p.byID[pack.ID]; found {
			return nil, fmt.Errorf("pack %s: duplicate id", pack.ID)
		}

		p.byID[pack.ID] = pack
	}

	return &p, nil
}

// DefaultPacks returns the embedded pack catalog
func DefaultPacks() *Packs {
	defaultPacksOnce.Do(func() {
		p, err := LoadPacks(packsYAML)
		if err != nil {
			panic(err)
		}

		defaultPacks = p
	})

	return defaultPacks
}

// Get returns the pack with the specified id
func (p *Packs) Get(id string) (*Pack, bool) {
	pack, ok := p.byID[id]
	return pack, ok
}
