package joker

import (
	_ "embed" // needed for the catalog
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
	"idlepoker-server/internal/rng"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Catalog is the ordered set of jokers available for purchase
type Catalog struct {
	Jokers []*Template `yaml:"jokers" json:"jokers"`
	byID   map[string]*Template
}

// LoadCatalog decodes and validates a YAML catalog
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("could not decode joker catalog: %w", err)
	}

	c.byID = make(map[string]*Template, len(c.Jokers))
	for _, t := range c.Jokers {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if _, found := c.byID[t.ID]; found {
			return nil, fmt.Errorf("joker %s: duplicate id", t.ID)
		}

		c.byID[t.ID] = t
	}

	return &c, nil
}

// DefaultCatalog returns the embedded catalog
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(catalogYAML)
		if err != nil {
			panic(err)
		}

		defaultCatalog = c
	})

	return defaultCatalog
}

// Get returns the template with the specified id
func (c *Catalog) Get(id string) (*Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Random returns a uniformly chosen template
func (c *Catalog) Random(r rng.Generator) *Template {
	return c.Jokers[r.Intn(len(c.Jokers))]
}

// Hydrate restores the static template fields of a saved joker
// Only drifting state is taken from the save: the decayed Val of a scaling
// joker, at most the template Val, and an appreciated Cost, never below the
// template Cost. A decayed joker is destroyed at zero, so a saved Val of zero or
// less is treated as missing. Unknown ids are left alone.
func (c *Catalog) Hydrate(j *Joker) {
	t, ok := c.Get(j.ID)
	if !ok {
		return
	}

	val, cost := j.Val, j.Cost
	j.Template = *t
	j.Cost = max(cost, t.Cost)

	if t.Kind == KindScaling && val > 0 {
		j.Val = min(val, t.Val)
	}

	if j.UID == "" {
		j.UID = uuid.New().String()
	}
}
