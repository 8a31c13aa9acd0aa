package main

import (
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/game"
)

var laneLabels = [...]string{"melee", "ranged", "siege", "board"}

type CardView struct {
	TemplateID int    `json:"template_id"`
	Name       string `json:"name"`
	Strength   int    `json:"strength"`
	Ability    string `json:"ability"`
	Type       string `json:"type"`
	Owner      int    `json:"owner"`
}

type LaneView struct {
	Index    int        `json:"index"`
	Side     int        `json:"side"`
	Kind     string     `json:"kind"`
	Weather  bool       `json:"weather"`
	Horn     bool       `json:"horn"`
	Additive int        `json:"additive"`
	Total    int        `json:"total"`
	Cards    []CardView `json:"cards"`
}

type PlayerView struct {
	Index          int  `json:"index"`
	Life           int  `json:"life"`
	Passed         bool `json:"passed"`
	Strength       int  `json:"strength"`
	HandCount      int  `json:"hand_count"`
	DeckCount      int  `json:"deck_count"`
	GraveyardCount int  `json:"graveyard_count"`
}

type ActionView struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

type MatchView struct {
	MatchID  string       `json:"match_id"`
	Seat     int          `json:"seat"`
	Round    int          `json:"round"`
	Turn     int          `json:"turn"`
	Over     bool         `json:"over"`
	Winner   int          `json:"winner"`
	Players  []PlayerView `json:"players"`
	Lanes    []LaneView   `json:"lanes"`
	Hand     []CardView   `json:"hand"`
	Legal    []ActionView `json:"legal"`
	Log      []string     `json:"log"`
	Checksum string       `json:"checksum"`
}

func cardView(catalog *card.Catalog, inst *card.Instance) CardView {
	t := catalog.MustGet(inst.TemplateID)
	return CardView{
		TemplateID: t.ID,
		Name:       t.Name,
		Strength:   inst.Strength,
		Ability:    t.Ability.String(),
		Type:       t.Type.String(),
		Owner:      inst.Owner,
	}
}

// buildView renders m from seat's point of view. Only seat's hand is
// revealed.
func buildView(m *game.Match, seat int, log []string) MatchView {
	catalog := m.Catalog()
	board := m.Board()
	result := m.Result()

	view := MatchView{
		MatchID:  m.ID(),
		Seat:     seat,
		Round:    m.Round(),
		Turn:     m.Turn(),
		Over:     result.Over,
		Winner:   result.Winner,
		Log:      log,
		Checksum: m.Checksum(),
	}

	for p := 0; p < 2; p++ {
		player := m.Player(p)
		view.Players = append(view.Players, PlayerView{
			Index:          p,
			Life:           player.Life,
			Passed:         player.Passed,
			Strength:       board.Strength(p),
			HandCount:      len(player.Hand),
			DeckCount:      player.Deck.Len(),
			GraveyardCount: board.Graveyard(p).Len(),
		})
	}

	for i := 0; i < game.NumLanes; i++ {
		lane := board.Lane(i)
		lv := LaneView{
			Index:    i,
			Side:     lane.Side(),
			Kind:     laneLabels[i%card.LanesPerSide],
			Weather:  lane.Weather(),
			Horn:     lane.Multiplicative() > 1,
			Additive: lane.Additive(),
			Total:    lane.Total(),
			Cards:    make([]CardView, 0, lane.Len()),
		}
		for _, inst := range lane.Cards() {
			lv.Cards = append(lv.Cards, cardView(catalog, inst))
		}
		view.Lanes = append(view.Lanes, lv)
	}

	for _, inst := range m.Player(seat).Hand {
		view.Hand = append(view.Hand, cardView(catalog, inst))
	}

	if !result.Over && m.Turn() == seat {
		mask, _ := m.LegalActions(seat)
		actions := m.ActionSpace().Actions()
		for i, ok := range mask {
			if ok {
				view.Legal = append(view.Legal, ActionView{Index: i, Label: describe(catalog, actions[i])})
			}
		}
	}
	return view
}

// describe renders an action for people.
func describe(catalog *card.Catalog, a game.Action) string {
	if a.Pass {
		return "Pass"
	}
	t := catalog.MustGet(a.TemplateID)
	switch {
	case t.Ability == card.AbilityDecoy:
		return fmt.Sprintf("%s (%s): swap %s back to hand", t.Name, laneLabels[a.Lane], catalog.MustGet(a.Target).Name)
	case t.Ability == card.AbilityMedic && a.Target != card.NoTarget:
		return fmt.Sprintf("%s (%s): revive %s", t.Name, laneLabels[a.Lane], catalog.MustGet(a.Target).Name)
	case t.Ability == card.AbilitySpy:
		return fmt.Sprintf("%s (opponent %s)", t.Name, laneLabels[a.Lane])
	case t.Ability == card.AbilityWeather && a.Lane == card.NoLane:
		return fmt.Sprintf("%s (clear all)", t.Name)
	}
	return fmt.Sprintf("%s (%s)", t.Name, laneLabels[a.Lane])
}

// describeEvent renders an engine event as a log line.
func describeEvent(catalog *card.Catalog, e game.Event) string {
	switch e.Type {
	case game.EventCardPlayed:
		return fmt.Sprintf("player %d played %s", e.Player, describe(catalog, e.Action))
	case game.EventPlayerPassed:
		return fmt.Sprintf("player %d passed", e.Player)
	case game.EventRoundEnded:
		return fmt.Sprintf("round %d ended %d:%d (%s for player %d)", e.Round, e.Strength[0], e.Strength[1], e.Outcome, e.Player)
	case game.EventMatchEnded:
		return fmt.Sprintf("match ended: %s for player %d", e.Outcome, e.Player)
	}
	return string(e.Type)
}
