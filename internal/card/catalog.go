package card

import (
	"fmt"
	"sort"
)

// Catalog is an immutable registry of card templates keyed by ID.
type Catalog struct {
	templates map[int]Template
	ids       []int
}

// NewCatalog validates every template and builds the registry. Duplicate
// IDs and templates with unknown abilities are rejected.
func NewCatalog(templates []Template) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrInvalidTemplate)
	}

	c := &Catalog{
		templates: make(map[int]Template, len(templates)),
		ids:       make([]int, 0, len(templates)),
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.templates[t.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidTemplate, t.ID)
		}
		c.templates[t.ID] = t
		c.ids = append(c.ids, t.ID)
	}
	sort.Ints(c.ids)

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for fixed
// built-in catalogs and tests.
func MustCatalog(templates []Template) *Catalog {
	c, err := NewCatalog(templates)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the template for id.
func (c *Catalog) Get(id int) (Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// MustGet returns the template for id and panics when it is absent. Card
// instances only ever reference catalog IDs, so a miss is a programming
// error.
func (c *Catalog) MustGet(id int) Template {
	t, ok := c.templates[id]
	if !ok {
		panic(fmt.Sprintf("card: template %d not in catalog", id))
	}
	return t
}

// IDs returns template IDs in ascending order.
func (c *Catalog) IDs() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}

// Templates returns all templates ordered by ID.
func (c *Catalog) Templates() []Template {
	out := make([]Template, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.templates[id])
	}
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Index returns the dense position of id in IDs(), used for matrix columns.
func (c *Catalog) Index(id int) int {
	i := sort.SearchInts(c.ids, id)
	if i < len(c.ids) && c.ids[i] == id {
		return i
	}
	return -1
}

// Factions returns the distinct non-neutral factions present in the catalog.
func (c *Catalog) Factions() []Faction {
	seen := make(map[Faction]bool)
	out := make([]Faction, 0)
	for _, id := range c.ids {
		f := c.templates[id].Faction
		if f == FactionNeutral || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Compatible reports whether an acting card (Medic or Decoy) may target a
// card of template target. Targets must be other non-hero units sharing the
// acting card's faction, unless either side is neutral or the target is a
// spy (spies end up on the opposing side of the board).
func Compatible(acting, target Template) bool {
	if acting.ID == target.ID || !target.IsUnit() {
		return false
	}
	return acting.Faction == target.Faction ||
		target.Faction == FactionNeutral ||
		target.Ability == AbilitySpy ||
		acting.Faction == FactionNeutral
}
