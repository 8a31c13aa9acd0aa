package game

import (
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
	"golang.org/x/exp/rand"
)

// Deck is a player's draw pile. Draw order comes from the injected random
// source, so a fixed seed reproduces a match exactly.
type Deck struct {
	cards []*card.Instance
	rng   *rand.Rand
}

// NewDeck creates a deck over cards drawing with src.
func NewDeck(cards []*card.Instance, src rand.Source) *Deck {
	return &Deck{
		cards: cards,
		rng:   rand.New(src),
	}
}

// DeckList expands every template of faction, plus neutral templates, into
// card instances owned by owner. An empty faction selects the whole catalog.
func DeckList(catalog *card.Catalog, faction card.Faction, owner int) []*card.Instance {
	cards := make([]*card.Instance, 0)
	for _, t := range catalog.Templates() {
		if faction != "" && t.Faction != faction && t.Faction != card.FactionNeutral {
			continue
		}
		for i := 0; i < t.Copies; i++ {
			cards = append(cards, card.NewInstance(t, owner))
		}
	}
	return cards
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// CountOf returns how many cards of templateID remain.
func (d *Deck) CountOf(templateID int) int {
	n := 0
	for _, inst := range d.cards {
		if inst.TemplateID == templateID {
			n++
		}
	}
	return n
}

// Cards returns the remaining cards in pile order.
func (d *Deck) Cards() []*card.Instance {
	out := make([]*card.Instance, len(d.cards))
	copy(out, d.cards)
	return out
}

// Draw removes a uniformly random card. ok is false when the deck is empty.
func (d *Deck) Draw() (inst *card.Instance, ok bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	i := d.rng.Intn(len(d.cards))
	inst = d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return inst, true
}

// TakeAll removes every remaining copy of templateID, preserving pile order.
// The result is empty when no copies remain.
func (d *Deck) TakeAll(templateID int) []*card.Instance {
	taken := make([]*card.Instance, 0)
	kept := d.cards[:0]
	for _, inst := range d.cards {
		if inst.TemplateID == templateID {
			taken = append(taken, inst)
		} else {
			kept = append(kept, inst)
		}
	}
	for i := len(kept); i < len(d.cards); i++ {
		d.cards[i] = nil
	}
	d.cards = kept
	return taken
}

// Take removes one specific card of templateID, used to put a known card
// in hand.
func (d *Deck) Take(templateID int) *card.Instance {
	for i, inst := range d.cards {
		if inst.TemplateID == templateID {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return inst
		}
	}
	panic(fmt.Sprintf("ownership violation: deck holds no template %d", templateID))
}
