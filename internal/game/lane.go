package game

import (
	"fmt"
	"sort"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// NumLanes is the number of lanes on the board: melee, ranged and siege for
// each of the two players.
const NumLanes = 2 * card.LanesPerSide

// Lane holds the cards placed in one lane together with the modifiers that
// shape their strength.
type Lane struct {
	index   int
	catalog *card.Catalog

	cards map[int][]*card.Instance // templateID -> instances

	additive  int
	hornCount int
	weather   bool

	total   int
	highest int
	tied    []*card.Instance
}

// NewLane creates an empty lane for board position index (0-5).
func NewLane(index int, catalog *card.Catalog) *Lane {
	return &Lane{
		index:   index,
		catalog: catalog,
		cards:   make(map[int][]*card.Instance),
	}
}

// Index returns the board position of the lane.
func (l *Lane) Index() int {
	return l.index
}

// Side returns the player owning the lane.
func (l *Lane) Side() int {
	return l.index / card.LanesPerSide
}

// Total returns the cached lane strength.
func (l *Lane) Total() int {
	return l.total
}

// Additive returns the lane's additive morale modifier.
func (l *Lane) Additive() int {
	return l.additive
}

// Multiplicative returns the lane's horn factor: 2 while any horn is present.
func (l *Lane) Multiplicative() int {
	if l.hornCount > 0 {
		return 2
	}
	return 1
}

// Weather reports whether weather is active on the lane.
func (l *Lane) Weather() bool {
	return l.weather
}

// Highest returns the strength of the strongest non-hero unit and whether
// the lane holds any unit at all.
func (l *Lane) Highest() (int, bool) {
	return l.highest, len(l.tied) > 0
}

// Len returns the number of cards in the lane.
func (l *Lane) Len() int {
	n := 0
	for _, group := range l.cards {
		n += len(group)
	}
	return n
}

// CountOf returns how many cards of templateID are in the lane.
func (l *Lane) CountOf(templateID int) int {
	return len(l.cards[templateID])
}

// TemplateIDs returns the templates present in the lane in ascending order.
func (l *Lane) TemplateIDs() []int {
	ids := make([]int, 0, len(l.cards))
	for id, group := range l.cards {
		if len(group) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Cards returns the lane contents ordered by template ID.
func (l *Lane) Cards() []*card.Instance {
	out := make([]*card.Instance, 0, l.Len())
	for _, id := range l.TemplateIDs() {
		out = append(out, l.cards[id]...)
	}
	return out
}

// Verify recomputes the lane from scratch (modifiers from the cards
// present, each card's strength from its template) and compares the result
// with the incrementally maintained state.
func (l *Lane) Verify() error {
	additive, horns := 0, 0
	for id, group := range l.cards {
		t := l.catalog.MustGet(id)
		if t.Ability != card.AbilityMorale {
			continue
		}
		if t.IsHorn() {
			horns += len(group)
		} else {
			additive += len(group)
		}
	}
	if additive != l.additive || horns != l.hornCount {
		return fmt.Errorf("lane %d modifiers (+%d, %d horns) want (+%d, %d horns)", l.index, l.additive, l.hornCount, additive, horns)
	}

	factor := 1
	if horns > 0 {
		factor = 2
	}
	sum := 0
	for id, group := range l.cards {
		t := l.catalog.MustGet(id)
		for _, inst := range group {
			want := inst.Strength
			if t.IsUnit() {
				mult := 1
				if t.Ability == card.AbilityBond {
					mult = len(group)
				}
				base := t.Strength
				if l.weather {
					base = 1
				}
				want = (base*mult + additive) * factor
			}
			if inst.Strength != want {
				return fmt.Errorf("lane %d template %d strength %d want %d", l.index, id, inst.Strength, want)
			}
			sum += want
		}
	}
	if sum != l.total {
		return fmt.Errorf("lane %d total %d want %d", l.index, l.total, sum)
	}
	return nil
}

// Add places a single card.
func (l *Lane) Add(inst *card.Instance) {
	l.cards[inst.TemplateID] = append(l.cards[inst.TemplateID], inst)
	l.activate(inst)
	l.recompute()
}

// AddMany places a batch of same-template cards and recomputes once, so
// Bond and Morale triggers see the whole batch.
func (l *Lane) AddMany(templateID int, insts []*card.Instance) {
	for _, inst := range insts {
		if inst.TemplateID != templateID {
			panic(fmt.Sprintf("ownership violation: AddMany(%d) got template %d", templateID, inst.TemplateID))
		}
		l.cards[templateID] = append(l.cards[templateID], inst)
		l.activate(inst)
	}
	l.recompute()
}

// RemoveByTemplate pops one card of templateID. The card is reset to its
// printed values before it is returned.
func (l *Lane) RemoveByTemplate(templateID int) *card.Instance {
	group := l.cards[templateID]
	if len(group) == 0 {
		panic(fmt.Sprintf("ownership violation: lane %d holds no template %d", l.index, templateID))
	}
	inst := group[len(group)-1]
	l.cards[templateID] = group[:len(group)-1]
	if len(l.cards[templateID]) == 0 {
		delete(l.cards, templateID)
	}
	l.deactivate(inst)
	l.recompute()

	inst.Reset(l.catalog.MustGet(templateID))
	return inst
}

// RemoveAllTiedHighest removes every non-hero unit whose strength equals the
// lane's tracked maximum. Comparing against other lanes is up to the caller.
func (l *Lane) RemoveAllTiedHighest() []*card.Instance {
	if len(l.tied) == 0 {
		return nil
	}
	removed := l.tied
	l.tied = nil

	for _, inst := range removed {
		l.detach(inst)
		l.deactivate(inst)
	}
	l.recompute()

	for _, inst := range removed {
		inst.Reset(l.catalog.MustGet(inst.TemplateID))
	}
	return removed
}

// SetWeather toggles weather and recomputes every card.
func (l *Lane) SetWeather(on bool) {
	if l.weather == on {
		return
	}
	l.weather = on
	l.recompute()
}

// Clear empties the lane, drops all modifiers and weather, and returns the
// removed cards reset to their printed values.
func (l *Lane) Clear() []*card.Instance {
	removed := l.Cards()
	l.cards = make(map[int][]*card.Instance)
	l.additive = 0
	l.hornCount = 0
	l.weather = false
	l.total = 0
	l.highest = 0
	l.tied = nil

	for _, inst := range removed {
		inst.Reset(l.catalog.MustGet(inst.TemplateID))
	}
	return removed
}

func (l *Lane) detach(inst *card.Instance) {
	group := l.cards[inst.TemplateID]
	for i, candidate := range group {
		if candidate == inst {
			l.cards[inst.TemplateID] = append(group[:i], group[i+1:]...)
			if len(l.cards[inst.TemplateID]) == 0 {
				delete(l.cards, inst.TemplateID)
			}
			return
		}
	}
	panic(fmt.Sprintf("ownership violation: lane %d does not hold instance of template %d", l.index, inst.TemplateID))
}

func (l *Lane) activate(inst *card.Instance) {
	t := l.catalog.MustGet(inst.TemplateID)
	switch t.Ability {
	case card.AbilityBond:
		l.rebond(t.ID)
	case card.AbilityMorale:
		if t.IsHorn() {
			l.hornCount++
		} else {
			l.additive++
		}
	}
}

func (l *Lane) deactivate(inst *card.Instance) {
	t := l.catalog.MustGet(inst.TemplateID)
	switch t.Ability {
	case card.AbilityBond:
		inst.Multiplier = 1
		l.rebond(t.ID)
	case card.AbilityMorale:
		if t.IsHorn() {
			l.hornCount--
		} else {
			l.additive--
		}
	}
}

// rebond sets every copy's multiplier to the number of copies in the lane.
func (l *Lane) rebond(templateID int) {
	group := l.cards[templateID]
	for _, inst := range group {
		inst.Multiplier = len(group)
	}
}

func (l *Lane) recompute() {
	factor := l.Multiplicative()
	total := 0
	for _, group := range l.cards {
		for _, inst := range group {
			t := l.catalog.MustGet(inst.TemplateID)
			if t.IsUnit() {
				base := t.Strength
				if l.weather {
					base = 1
				}
				inst.Strength = (base*inst.Multiplier + l.additive) * factor
			}
			total += inst.Strength
		}
	}
	l.total = total
	l.rescanHighest()
}

// rescanHighest rebuilds the tied-maximum set over non-hero units.
func (l *Lane) rescanHighest() {
	l.highest = 0
	l.tied = l.tied[:0]
	for _, id := range l.TemplateIDs() {
		if !l.catalog.MustGet(id).IsUnit() {
			continue
		}
		for _, inst := range l.cards[id] {
			switch {
			case len(l.tied) == 0 || inst.Strength > l.highest:
				l.highest = inst.Strength
				l.tied = append(l.tied[:0], inst)
			case inst.Strength == l.highest:
				l.tied = append(l.tied, inst)
			}
		}
	}
}
