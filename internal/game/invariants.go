package game

import (
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// Census counts the cards owned by owner across hand, deck, graveyards and
// lanes, keyed by template ID.
func (m *Match) Census(owner int) map[int]int {
	counts := make(map[int]int)
	add := func(insts []*card.Instance) {
		for _, inst := range insts {
			if inst.Owner == owner {
				counts[inst.TemplateID]++
			}
		}
	}
	for _, p := range m.players {
		add(p.Hand)
		add(p.Deck.Cards())
		add(m.board.Graveyard(p.Index).Cards())
	}
	for i := 0; i < NumLanes; i++ {
		add(m.board.Lane(i).Cards())
	}
	return counts
}

// CheckInvariants verifies card conservation and cached strengths. A
// non-nil error means the engine has a bug.
func (m *Match) CheckInvariants() error {
	for p := range m.players {
		census := m.Census(p)
		for _, t := range m.catalog.Templates() {
			want := 0
			if f := m.cfg.Factions[p]; f == "" || t.Faction == f || t.Faction == card.FactionNeutral {
				want = t.Copies
			}
			if got := census[t.ID]; got != want {
				return fmt.Errorf("player %d owns %d copies of template %d, want %d", p, got, t.ID, want)
			}
		}
	}

	var totals [2]int
	for i := 0; i < NumLanes; i++ {
		lane := m.board.Lane(i)
		if err := lane.Verify(); err != nil {
			return err
		}
		totals[lane.Side()] += lane.Total()
	}
	for p, total := range totals {
		if total != m.board.Strength(p) {
			return fmt.Errorf("player %d strength %d does not match lane sum %d", p, m.board.Strength(p), total)
		}
	}
	return nil
}
