package catalog

import "github.com/magefree/gwent-engine-go/internal/card"

// Standard returns the built-in catalog: the neutral cards plus one playable
// deck for each of the four factions. data/cards.csv carries the same set.
func Standard() *card.Catalog {
	return card.MustCatalog(standardTemplates())
}

func standardTemplates() []card.Template {
	return []card.Template{
		{ID: 1, Name: "Decoy", Strength: 0, Ability: card.AbilityDecoy, Type: card.TypeDecoy, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 3},
		{ID: 2, Name: "Commander's Horn", Strength: 0, Ability: card.AbilityMorale, Type: card.TypeMoraleItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 3},
		{ID: 3, Name: "Scorch", Strength: 0, Ability: card.AbilityScorch, Type: card.TypeScorchItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 3},
		{ID: 4, Name: "Biting Frost", Strength: 0, Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 3},
		{ID: 5, Name: "Impenetrable Fog", Strength: 0, Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.LaneRanged, Copies: 3},
		{ID: 6, Name: "Torrential Rain", Strength: 0, Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.LaneSiege, Copies: 3},
		{ID: 7, Name: "Clear Weather", Strength: 0, Ability: card.AbilityWeather, Type: card.TypeWeatherItem, Faction: card.FactionNeutral, Lane: card.NoLane, Copies: 2},
		{ID: 8, Name: "Geralt of Rivia", Strength: 15, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 9, Name: "Cirilla Fiona Elen Riannon", Strength: 15, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 10, Name: "Yennefer of Vengerberg", Strength: 7, Ability: card.AbilityMedic, Type: card.TypeHero, Faction: card.FactionNeutral, Lane: card.LaneRanged, Copies: 1},
		{ID: 11, Name: "Triss Merigold", Strength: 7, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 12, Name: "Dandelion", Strength: 2, Ability: card.AbilityMorale, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 13, Name: "Villentretenmerth", Strength: 7, Ability: card.AbilityScorch, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 14, Name: "Zoltan Chivay", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 15, Name: "Vesemir", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 16, Name: "Emiel Regis", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},
		{ID: 17, Name: "Avallac'h", Strength: 0, Ability: card.AbilitySpy, Type: card.TypeHero, Faction: card.FactionNeutral, Lane: card.LaneMelee, Copies: 1},

		{ID: 101, Name: "Vernon Roche", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: 102, Name: "John Natalis", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: 103, Name: "Philippa Eilhart", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 1},
		{ID: 104, Name: "Blue Stripes Commando", Strength: 4, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 3},
		{ID: 105, Name: "Redanian Infantry", Strength: 1, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 3},
		{ID: 106, Name: "Crinfrid Reavers", Strength: 5, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 3},
		{ID: 107, Name: "Catapult", Strength: 8, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 2},
		{ID: 108, Name: "Dun Banner Medic", Strength: 5, Ability: card.AbilityMedic, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 1},
		{ID: 109, Name: "Prince Stennis", Strength: 5, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: 110, Name: "Sigismund Dijkstra", Strength: 4, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 1},
		{ID: 111, Name: "Thaler", Strength: 1, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 1},
		{ID: 112, Name: "Ballista", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 2},
		{ID: 113, Name: "Trebuchet", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 2},
		{ID: 114, Name: "Keira Metz", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 1},
		{ID: 115, Name: "Sabrina Glevissig", Strength: 4, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneRanged, Copies: 1},
		{ID: 116, Name: "Kaedweni Siege Expert", Strength: 1, Ability: card.AbilityMorale, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 3},
		{ID: 117, Name: "Redanian Foot Soldier", Strength: 1, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 2},
		{ID: 118, Name: "Siege Tower", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneSiege, Copies: 1},

		{ID: 201, Name: "Letho of Gulet", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 202, Name: "Menno Coehoorn", Strength: 10, Ability: card.AbilityMedic, Type: card.TypeHero, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 203, Name: "Morvran Voorhis", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNilfgaard, Lane: card.LaneSiege, Copies: 1},
		{ID: 204, Name: "Tibor Eggebracht", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionNilfgaard, Lane: card.LaneRanged, Copies: 1},
		{ID: 205, Name: "Impera Brigade Guard", Strength: 3, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 4},
		{ID: 206, Name: "Nausicaa Cavalry Rider", Strength: 2, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 3},
		{ID: 207, Name: "Etolian Auxiliary Archers", Strength: 1, Ability: card.AbilityMedic, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneRanged, Copies: 2},
		{ID: 208, Name: "Vattier de Rideaux", Strength: 4, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 209, Name: "Stefan Skellen", Strength: 9, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 210, Name: "Shilard Fitz-Oesterlen", Strength: 7, Ability: card.AbilitySpy, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 211, Name: "Black Infantry Archer", Strength: 10, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneRanged, Copies: 2},
		{ID: 212, Name: "Heavy Zerrikanian Fire Scorpion", Strength: 10, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneSiege, Copies: 1},
		{ID: 213, Name: "Cahir Mawr Dyffryn aep Ceallach", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 1},
		{ID: 214, Name: "Albrich", Strength: 2, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneRanged, Copies: 1},
		{ID: 215, Name: "Siege Technician", Strength: 0, Ability: card.AbilityMedic, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneSiege, Copies: 1},
		{ID: 216, Name: "Young Emissary", Strength: 5, Ability: card.AbilityBond, Type: card.TypeUnit, Faction: card.FactionNilfgaard, Lane: card.LaneMelee, Copies: 2},

		{ID: 301, Name: "Eithne", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 302, Name: "Saesenthessis", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 303, Name: "Iorveth", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 304, Name: "Isengrim Faoiltiarna", Strength: 10, Ability: card.AbilityMorale, Type: card.TypeHero, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 1},
		{ID: 305, Name: "Dwarven Skirmisher", Strength: 3, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 3},
		{ID: 306, Name: "Elven Skirmisher", Strength: 2, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 3},
		{ID: 307, Name: "Havekar Healer", Strength: 0, Ability: card.AbilityMedic, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 3},
		{ID: 308, Name: "Mahakaman Defender", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 2},
		{ID: 309, Name: "Vrihedd Brigade Veteran", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 2},
		{ID: 310, Name: "Dol Blathanna Archer", Strength: 4, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 311, Name: "Havekar Smuggler", Strength: 5, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 3},
		{ID: 312, Name: "Barclay Els", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneMelee, Copies: 1},
		{ID: 313, Name: "Filavandrel aen Fidhail", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 314, Name: "Riordain", Strength: 1, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},
		{ID: 315, Name: "Toruviel", Strength: 2, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionScoiatael, Lane: card.LaneRanged, Copies: 1},

		{ID: 401, Name: "Draug", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 402, Name: "Imlerith", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 403, Name: "Leshen", Strength: 10, Ability: card.AbilityNone, Type: card.TypeHero, Faction: card.FactionMonsters, Lane: card.LaneRanged, Copies: 1},
		{ID: 404, Name: "Kayran", Strength: 8, Ability: card.AbilityMorale, Type: card.TypeHero, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 405, Name: "Arachas", Strength: 4, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 3},
		{ID: 406, Name: "Nekker", Strength: 2, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 3},
		{ID: 407, Name: "Ghoul", Strength: 1, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 3},
		{ID: 408, Name: "Crone: Brewess", Strength: 6, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 409, Name: "Vampire: Katakan", Strength: 5, Ability: card.AbilityMuster, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 410, Name: "Fiend", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 411, Name: "Earth Elemental", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneSiege, Copies: 1},
		{ID: 412, Name: "Fire Elemental", Strength: 6, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneSiege, Copies: 1},
		{ID: 413, Name: "Gargoyle", Strength: 2, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneRanged, Copies: 1},
		{ID: 414, Name: "Harpy", Strength: 2, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneRanged, Copies: 2},
		{ID: 415, Name: "Werewolf", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
		{ID: 416, Name: "Griffin", Strength: 5, Ability: card.AbilityNone, Type: card.TypeUnit, Faction: card.FactionMonsters, Lane: card.LaneMelee, Copies: 1},
	}
}
