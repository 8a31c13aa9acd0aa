package agent

import (
	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/game/encoder"
)

// spyValue approximates what drawing two cards is worth in strength.
const spyValue = 8

// Greedy plays the action with the largest estimated immediate strength
// swing and passes once it leads a passed opponent.
type Greedy struct {
	catalog *card.Catalog
}

// NewGreedy creates a greedy agent for catalog.
func NewGreedy(catalog *card.Catalog) *Greedy {
	return &Greedy{catalog: catalog}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Choose(obs encoder.Observation, mask []bool, actions []game.Action) int {
	pass := -1
	best, bestScore := -1, 0
	for i, ok := range mask {
		if !ok {
			continue
		}
		if actions[i].Pass {
			pass = i
			continue
		}
		if score := g.score(obs, actions[i]); best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}

	s := obs.Scalars
	ahead := s.Strength[0] > s.Strength[1]
	switch {
	case best == -1:
		return pass
	case pass == -1:
		return best
	case s.OpponentPassed && ahead:
		return pass
	case !s.OpponentPassed && bestScore <= 0 && s.Strength[0] >= s.Strength[1]:
		return pass
	}
	return best
}

// score estimates the change in (own - opponent) strength from playing a.
func (g *Greedy) score(obs encoder.Observation, a game.Action) int {
	t := g.catalog.MustGet(a.TemplateID)
	s := obs.Scalars

	switch t.Ability {
	case card.AbilitySpy:
		return spyValue - t.Strength

	case card.AbilityWeather:
		if a.Lane == card.NoLane {
			gain := 0
			for rel := 0; rel < card.LanesPerSide; rel++ {
				if s.Weather[rel] {
					gain += g.weatherLoss(obs, rel) - g.weatherLoss(obs, rel+card.LanesPerSide)
				}
			}
			return gain
		}
		if s.Weather[a.Lane] {
			return -1
		}
		return g.weatherLoss(obs, a.Lane+card.LanesPerSide) - g.weatherLoss(obs, a.Lane)

	case card.AbilityScorch:
		gain := g.scorchSwing(obs)
		if t.Lane < card.NoLane {
			gain += g.effective(obs, t, t.Lane)
		}
		return gain

	case card.AbilityMorale:
		if t.IsHorn() {
			own := 0
			if t.IsUnit() {
				own = g.effective(obs, t, a.Lane)
			}
			if s.Multiplicative[a.Lane] > 1 {
				return own
			}
			return s.LaneStrength[a.Lane] + 2*own
		}
		units := g.unitsIn(obs, a.Lane)
		if t.IsUnit() {
			units++
		}
		return (t.Strength + units) * s.Multiplicative[a.Lane]

	case card.AbilityBond:
		n := obs.Counts[encoder.ZoneOwnMelee+a.Lane][g.catalog.Index(t.ID)]
		base := t.Strength
		if s.Weather[a.Lane] {
			base = 1
		}
		return (base*(n+1)*(n+1) - base*n*n + s.Additive[a.Lane]) * s.Multiplicative[a.Lane]

	case card.AbilityMuster:
		copies := 1 + obs.Counts[encoder.ZoneOwnDeck][g.catalog.Index(t.ID)]
		return copies * g.effective(obs, t, a.Lane)

	case card.AbilityMedic:
		gain := g.effective(obs, t, a.Lane)
		if a.Target != card.NoTarget {
			target := g.catalog.MustGet(a.Target)
			gain += g.effective(obs, target, target.Lane)
		}
		return gain

	case card.AbilityDecoy:
		target := g.catalog.MustGet(a.Target)
		if target.Ability == card.AbilitySpy {
			return spyValue / 2
		}
		return -g.perCard(obs, a.Lane, target.ID)
	}

	return g.effective(obs, t, a.Lane)
}

// effective is the strength t would have in the observer's relative lane.
func (g *Greedy) effective(obs encoder.Observation, t card.Template, lane int) int {
	if !t.IsUnit() || lane >= card.NoLane {
		return t.Strength
	}
	s := obs.Scalars
	base := t.Strength
	if s.Weather[lane] {
		base = 1
	}
	return (base + s.Additive[lane]) * s.Multiplicative[lane]
}

// perCard is the current strength of one card of templateID in relative
// lane slot (0-5).
func (g *Greedy) perCard(obs encoder.Observation, slot, templateID int) int {
	col := g.catalog.Index(templateID)
	n := obs.Counts[encoder.ZoneOwnMelee+slot][col]
	if n == 0 {
		return 0
	}
	return obs.Strengths[slot][col] / n
}

func (g *Greedy) unitsIn(obs encoder.Observation, slot int) int {
	n := 0
	for col, id := range g.catalog.IDs() {
		if g.catalog.MustGet(id).IsUnit() {
			n += obs.Counts[encoder.ZoneOwnMelee+slot][col]
		}
	}
	return n
}

// weatherLoss estimates how much strength units in slot lose to weather.
func (g *Greedy) weatherLoss(obs encoder.Observation, slot int) int {
	loss := 0
	for col, id := range g.catalog.IDs() {
		t := g.catalog.MustGet(id)
		if t.IsUnit() && t.Strength > 1 {
			loss += obs.Counts[encoder.ZoneOwnMelee+slot][col] * (t.Strength - 1)
		}
	}
	return loss
}

// scorchSwing is the opponent's scorch losses minus the observer's.
func (g *Greedy) scorchSwing(obs encoder.Observation) int {
	ids := g.catalog.IDs()
	highest := 0
	for slot := 0; slot < game.NumLanes; slot++ {
		for _, id := range ids {
			if g.catalog.MustGet(id).IsUnit() {
				highest = max(highest, g.perCard(obs, slot, id))
			}
		}
	}
	if highest == 0 {
		return 0
	}

	swing := 0
	for slot := 0; slot < game.NumLanes; slot++ {
		for col, id := range ids {
			if !g.catalog.MustGet(id).IsUnit() || g.perCard(obs, slot, id) != highest {
				continue
			}
			lost := highest * obs.Counts[encoder.ZoneOwnMelee+slot][col]
			if slot < card.LanesPerSide {
				swing -= lost
			} else {
				swing += lost
			}
		}
	}
	return swing
}
