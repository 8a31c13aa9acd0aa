package game

import (
	"fmt"
	"sort"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// Graveyard is a player's discard pile.
type Graveyard struct {
	owner   int
	catalog *card.Catalog
	cards   map[int][]*card.Instance
}

// NewGraveyard creates an empty graveyard for player owner.
func NewGraveyard(owner int, catalog *card.Catalog) *Graveyard {
	return &Graveyard{
		owner:   owner,
		catalog: catalog,
		cards:   make(map[int][]*card.Instance),
	}
}

// Owner returns the player index the graveyard belongs to.
func (g *Graveyard) Owner() int {
	return g.owner
}

// Add puts a single card on the pile.
func (g *Graveyard) Add(inst *card.Instance) {
	inst.Reset(g.catalog.MustGet(inst.TemplateID))
	g.cards[inst.TemplateID] = append(g.cards[inst.TemplateID], inst)
}

// AddAll moves a batch of cards (typically a cleared lane) onto the pile.
func (g *Graveyard) AddAll(insts []*card.Instance) {
	for _, inst := range insts {
		g.Add(inst)
	}
}

// Len returns the number of cards in the graveyard.
func (g *Graveyard) Len() int {
	n := 0
	for _, group := range g.cards {
		n += len(group)
	}
	return n
}

// CountOf returns how many cards of templateID rest in the graveyard.
func (g *Graveyard) CountOf(templateID int) int {
	return len(g.cards[templateID])
}

// TemplateIDs returns templates present in the graveyard in ascending order.
func (g *Graveyard) TemplateIDs() []int {
	ids := make([]int, 0, len(g.cards))
	for id, group := range g.cards {
		if len(group) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Cards returns the graveyard contents ordered by template ID.
func (g *Graveyard) Cards() []*card.Instance {
	out := make([]*card.Instance, 0, g.Len())
	for _, id := range g.TemplateIDs() {
		out = append(out, g.cards[id]...)
	}
	return out
}

// Revive removes one card of templateID together with every unit-type Medic
// resting in the graveyard. The requested card comes first in the result.
func (g *Graveyard) Revive(templateID int) []*card.Instance {
	target := g.take(templateID)
	revived := []*card.Instance{target}

	for _, id := range g.TemplateIDs() {
		t := g.catalog.MustGet(id)
		if t.Ability != card.AbilityMedic || !t.IsUnit() {
			continue
		}
		for g.CountOf(id) > 0 {
			revived = append(revived, g.take(id))
		}
	}
	return revived
}

func (g *Graveyard) take(templateID int) *card.Instance {
	group := g.cards[templateID]
	if len(group) == 0 {
		panic(fmt.Sprintf("ownership violation: graveyard %d holds no template %d", g.owner, templateID))
	}
	inst := group[len(group)-1]
	if len(group) == 1 {
		delete(g.cards, templateID)
	} else {
		g.cards[templateID] = group[:len(group)-1]
	}
	return inst
}

