// Package encoder projects a match into perspective-relative numeric
// observations for agents and front ends.
package encoder

import (
	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/game"
)

// Zones of the card matrix, always seen from the observing player.
const (
	ZoneHand = iota
	ZoneOwnMelee
	ZoneOwnRanged
	ZoneOwnSiege
	ZoneOpponentMelee
	ZoneOpponentRanged
	ZoneOpponentSiege
	ZoneOwnGraveyard
	ZoneOpponentGraveyard
	ZoneOwnDeck
	NumZones
)

// NumScalars is the length of Scalars.Vector().
const NumScalars = card.LanesPerSide + 2 + 2 + 3*game.NumLanes + 2 + 1

// Scalars are the non-card features of an observation. Per-lane arrays list
// the observer's three lanes first, then the opponent's.
type Scalars struct {
	// Weather per lane type (melee, ranged, siege). Weather always hits
	// both sides of a lane type together.
	Weather        [card.LanesPerSide]bool
	Life           [2]int
	HandSize       [2]int
	Additive       [game.NumLanes]int
	Multiplicative [game.NumLanes]int
	LaneStrength   [game.NumLanes]int
	Strength       [2]int
	OpponentPassed bool
}

// Observation is a snapshot of a match from one player's seat.
type Observation struct {
	Player int
	// Counts[zone][column] is the number of cards of the template at catalog
	// column in that zone.
	Counts [NumZones][]int
	// Strengths[lane][column] sums the current strength of those cards in
	// the six relative lanes (own melee..siege, opponent melee..siege).
	Strengths [game.NumLanes][]int
	Scalars   Scalars
}

// relativeLane maps the observer's relative lane slot (0-5) to a board lane.
func relativeLane(slot, player int) int {
	if slot < card.LanesPerSide {
		return game.LaneIndex(slot, player)
	}
	return game.LaneIndex(slot-card.LanesPerSide, 1-player)
}

// Encode builds the observation of m for player. It reads the match and
// never mutates it.
func Encode(m *game.Match, player int) Observation {
	catalog := m.Catalog()
	width := catalog.Len()
	opponent := 1 - player
	board := m.Board()
	self, other := m.Player(player), m.Player(opponent)

	obs := Observation{Player: player}
	for z := range obs.Counts {
		obs.Counts[z] = make([]int, width)
	}
	for l := range obs.Strengths {
		obs.Strengths[l] = make([]int, width)
	}

	count := func(zone int, insts []*card.Instance) {
		for _, inst := range insts {
			obs.Counts[zone][catalog.Index(inst.TemplateID)]++
		}
	}
	count(ZoneHand, self.Hand)
	count(ZoneOwnGraveyard, board.Graveyard(player).Cards())
	count(ZoneOpponentGraveyard, board.Graveyard(opponent).Cards())
	count(ZoneOwnDeck, self.Deck.Cards())

	s := &obs.Scalars
	for slot := 0; slot < game.NumLanes; slot++ {
		lane := board.Lane(relativeLane(slot, player))
		for _, inst := range lane.Cards() {
			col := catalog.Index(inst.TemplateID)
			obs.Counts[ZoneOwnMelee+slot][col]++
			obs.Strengths[slot][col] += inst.Strength
		}
		s.Additive[slot] = lane.Additive()
		s.Multiplicative[slot] = lane.Multiplicative()
		s.LaneStrength[slot] = lane.Total()
	}
	for rel := 0; rel < card.LanesPerSide; rel++ {
		s.Weather[rel] = board.Lane(game.LaneIndex(rel, player)).Weather()
	}
	s.Life = [2]int{self.Life, other.Life}
	s.HandSize = [2]int{len(self.Hand), len(other.Hand)}
	s.Strength = [2]int{board.Strength(player), board.Strength(opponent)}
	s.OpponentPassed = other.Passed

	return obs
}

// Vector flattens the scalars in field order: weather, lives, hand sizes,
// additive, multiplicative, lane strengths, player strengths, opponent
// passed.
func (s Scalars) Vector() []float32 {
	out := make([]float32, 0, NumScalars)
	for _, w := range s.Weather {
		out = append(out, boolf(w))
	}
	for _, v := range s.Life {
		out = append(out, float32(v))
	}
	for _, v := range s.HandSize {
		out = append(out, float32(v))
	}
	for _, group := range [][game.NumLanes]int{s.Additive, s.Multiplicative, s.LaneStrength} {
		for _, v := range group {
			out = append(out, float32(v))
		}
	}
	for _, v := range s.Strength {
		out = append(out, float32(v))
	}
	return append(out, boolf(s.OpponentPassed))
}

// Matrix stacks the zone counts and lane strengths into a single
// (NumZones+NumLanes) x catalog-width matrix.
func (o Observation) Matrix() [][]float32 {
	rows := make([][]float32, 0, NumZones+game.NumLanes)
	for _, zone := range o.Counts {
		rows = append(rows, floats(zone))
	}
	for _, lane := range o.Strengths {
		rows = append(rows, floats(lane))
	}
	return rows
}

func floats(in []int) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
