package game

import (
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// spyDraw is the number of cards a spy's controller draws.
const spyDraw = 2

// Board is the six lanes, both graveyards and the per-player strength
// totals. It resolves card abilities when a card is played.
type Board struct {
	catalog    *card.Catalog
	lanes      [NumLanes]*Lane
	graveyards [2]*Graveyard
	players    [2]*Player
	strength   [2]int
}

// NewBoard creates an empty board for the two players.
func NewBoard(catalog *card.Catalog, players [2]*Player) *Board {
	b := &Board{
		catalog: catalog,
		players: players,
	}
	for i := range b.lanes {
		b.lanes[i] = NewLane(i, catalog)
	}
	for i := range b.graveyards {
		b.graveyards[i] = NewGraveyard(i, catalog)
	}
	return b
}

// LaneIndex maps a side-relative lane (0-2) to a board lane for player.
func LaneIndex(relative, player int) int {
	return relative + card.LanesPerSide*player
}

// Lane returns board lane i (0-5).
func (b *Board) Lane(i int) *Lane {
	return b.lanes[i]
}

// Graveyard returns the graveyard of player.
func (b *Board) Graveyard(player int) *Graveyard {
	return b.graveyards[player]
}

// Strength returns the aggregate strength of player's three lanes.
func (b *Board) Strength(player int) int {
	return b.strength[player]
}

// PlaceCard resolves inst for actingPlayer. inst.Lane and inst.Target must
// already carry the decoded action; legality is checked before this call.
func (b *Board) PlaceCard(inst *card.Instance, actingPlayer int) {
	t := b.catalog.MustGet(inst.TemplateID)

	switch t.Ability {
	case card.AbilityWeather:
		b.playWeather(inst)
		b.graveyards[actingPlayer].Add(inst)

	case card.AbilitySpy:
		b.lanes[LaneIndex(inst.Lane, 1-actingPlayer)].Add(inst)
		b.players[actingPlayer].Draw(spyDraw)

	case card.AbilityBond, card.AbilityMorale, card.AbilityNone:
		b.lanes[LaneIndex(inst.Lane, actingPlayer)].Add(inst)

	case card.AbilityScorch:
		b.scorch()
		if inst.Lane < card.NoLane {
			b.lanes[LaneIndex(inst.Lane, actingPlayer)].Add(inst)
		} else {
			b.graveyards[actingPlayer].Add(inst)
		}

	case card.AbilityMuster:
		batch := append(b.players[actingPlayer].Deck.TakeAll(t.ID), inst)
		for _, member := range batch {
			member.Lane = inst.Lane
		}
		b.lanes[LaneIndex(inst.Lane, actingPlayer)].AddMany(t.ID, batch)

	case card.AbilityMedic:
		b.playMedic(inst, actingPlayer)

	case card.AbilityDecoy:
		lane := b.lanes[LaneIndex(inst.Lane, actingPlayer)]
		returned := lane.RemoveByTemplate(inst.Target)
		b.players[actingPlayer].Hand = append(b.players[actingPlayer].Hand, returned)
		b.graveyards[actingPlayer].Add(inst)

	default:
		panic(fmt.Sprintf("card: unresolvable ability %s on template %d", t.Ability, t.ID))
	}

	b.recomputeStrength()
}

func (b *Board) playWeather(inst *card.Instance) {
	if inst.Lane < card.NoLane {
		b.lanes[LaneIndex(inst.Lane, 0)].SetWeather(true)
		b.lanes[LaneIndex(inst.Lane, 1)].SetWeather(true)
		return
	}
	for _, lane := range b.lanes {
		lane.SetWeather(false)
	}
}

// scorch removes the strongest non-hero units across the whole board. Every
// lane whose maximum equals the global maximum loses all of its tied cards.
func (b *Board) scorch() {
	best, found := 0, false
	for _, lane := range b.lanes {
		if v, ok := lane.Highest(); ok && (!found || v > best) {
			best, found = v, true
		}
	}
	if !found {
		return
	}
	for _, lane := range b.lanes {
		if v, ok := lane.Highest(); ok && v == best {
			b.graveyards[lane.Side()].AddAll(lane.RemoveAllTiedHighest())
		}
	}
}

func (b *Board) playMedic(inst *card.Instance, actingPlayer int) {
	b.lanes[LaneIndex(inst.Lane, actingPlayer)].Add(inst)
	if inst.Target == card.NoTarget {
		return
	}
	for _, revived := range b.graveyards[actingPlayer].Revive(inst.Target) {
		t := b.catalog.MustGet(revived.TemplateID)
		revived.Lane = t.Lane
		b.lanes[LaneIndex(t.Lane, actingPlayer)].Add(revived)
	}
}

// ClearLanes moves every card on the board into the graveyard of the side it
// sits on and resets all lanes.
func (b *Board) ClearLanes() {
	for _, lane := range b.lanes {
		b.graveyards[lane.Side()].AddAll(lane.Clear())
	}
	b.recomputeStrength()
}

func (b *Board) recomputeStrength() {
	for p := range b.strength {
		total := 0
		for rel := 0; rel < card.LanesPerSide; rel++ {
			total += b.lanes[LaneIndex(rel, p)].Total()
		}
		b.strength[p] = total
	}
}
