package game

import (
	"fmt"
	"sort"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// Player holds one side's hand, life total, pass state and deck.
type Player struct {
	Index  int
	Hand   []*card.Instance
	Life   int
	Passed bool
	Deck   *Deck
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(index, life int, deck *Deck) *Player {
	return &Player{
		Index: index,
		Hand:  make([]*card.Instance, 0),
		Life:  life,
		Deck:  deck,
	}
}

// Draw moves up to n cards from the deck to the hand and returns how many
// were drawn. Fewer than n means the deck ran out.
func (p *Player) Draw(n int) int {
	drawn := 0
	for ; drawn < n; drawn++ {
		inst, ok := p.Deck.Draw()
		if !ok {
			break
		}
		p.Hand = append(p.Hand, inst)
	}
	return drawn
}

// HandCount returns how many cards of templateID the player holds.
func (p *Player) HandCount(templateID int) int {
	n := 0
	for _, inst := range p.Hand {
		if inst.TemplateID == templateID {
			n++
		}
	}
	return n
}

// HandTemplateIDs returns the distinct templates in hand, ascending.
func (p *Player) HandTemplateIDs() []int {
	seen := make(map[int]bool, len(p.Hand))
	ids := make([]int, 0, len(p.Hand))
	for _, inst := range p.Hand {
		if !seen[inst.TemplateID] {
			seen[inst.TemplateID] = true
			ids = append(ids, inst.TemplateID)
		}
	}
	sort.Ints(ids)
	return ids
}

// TakeFromHand removes one card of templateID from the hand.
func (p *Player) TakeFromHand(templateID int) *card.Instance {
	for i, inst := range p.Hand {
		if inst.TemplateID == templateID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return inst
		}
	}
	panic(fmt.Sprintf("ownership violation: player %d holds no template %d", p.Index, templateID))
}

// LoseLife removes one life, never going below zero.
func (p *Player) LoseLife() {
	if p.Life > 0 {
		p.Life--
	}
}
