package game

import (
	"testing"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Template IDs of the test catalog.
const (
	footman   = 1
	stripes   = 2
	ballista  = 3
	medic     = 4
	informant = 5
	frost     = 6
	clearSky  = 7
	scorch    = 8
	decoy     = 9
	horn      = 10
	vernon    = 11
	crinfrid  = 12
	drummer   = 13
	dandelion = 14
	villen    = 15
	ghoul     = 20
)

func testCatalog() *card.Catalog {
	return card.MustCatalog([]card.Template{
		{ID: footman, Name: "Footman", Strength: 4, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 3},
		{ID: stripes, Name: "Blue Stripes", Strength: 4, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 3},
		{ID: ballista, Name: "Ballista", Strength: 6, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 2},
		{ID: medic, Name: "Field Medic", Strength: 5, Ability: card.AbilityMedic, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 2},
		{ID: informant, Name: "Informant", Strength: 5, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: frost, Name: "Biting Frost", Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 2},
		{ID: clearSky, Name: "Clear Weather", Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 1},
		{ID: scorch, Name: "Scorch", Ability: card.AbilityScorch, Type: card.TypeScorchItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 1},
		{ID: decoy, Name: "Decoy", Ability: card.AbilityDecoy, Type: card.TypeDecoy, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 2},
		{ID: horn, Name: "Commander's Horn", Ability: card.AbilityMorale, Type: card.TypeMoraleItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 1},
		{ID: vernon, Name: "Vernon Roche", Strength: 10, Type: card.TypeHero, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: crinfrid, Name: "Crinfrid Reaver", Strength: 3, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 3},
		{ID: drummer, Name: "Drummer", Strength: 1, Ability: card.AbilityMorale, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 2},
		{ID: dandelion, Name: "Dandelion", Strength: 2, Ability: card.AbilityMorale, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: villen, Name: "Villentretenmerth", Strength: 7, Ability: card.AbilityScorch, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: ghoul, Name: "Ghoul", Strength: 2, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 2},
	})
}

// newTestMatch starts a northern mirror match with empty hands. Tests fill
// hands explicitly with give.
func newTestMatch(t *testing.T, mutate ...func(*Config)) *Match {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.HandSize = 0
	cfg.Factions = [2]card.Faction{card.FactionNorthern, card.FactionNorthern}
	for _, f := range mutate {
		f(&cfg)
	}

	catalog := testCatalog()
	m, err := NewMatch(catalog, NewActionSpace(catalog), cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return m
}

// give moves cards from a player's deck into their hand.
func give(m *Match, player int, ids ...int) {
	p := m.Player(player)
	for _, id := range ids {
		p.Hand = append(p.Hand, p.Deck.Take(id))
	}
}

func place(id, lane int) Action {
	return Action{TemplateID: id, Lane: lane, Target: card.NoTarget}
}

// play steps the match with a, failing the test if the action is rejected or
// leaves the match inconsistent.
func play(t *testing.T, m *Match, a Action) Outcome {
	t.Helper()
	index, err := m.ActionSpace().Encode(a)
	require.NoError(t, err)
	outcome, err := m.Step(index)
	require.NoError(t, err)
	require.NoError(t, m.CheckInvariants())
	return outcome
}

func legal(t *testing.T, m *Match, player int, a Action) bool {
	t.Helper()
	index, err := m.ActionSpace().Encode(a)
	require.NoError(t, err)
	mask, _ := m.LegalActions(player)
	return mask[index]
}
