package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(id int, faction Faction, strength int) Template {
	return Template{ID: id, Name: "unit", Strength: strength, Type: TypeUnit, Faction: faction, Lane: LaneMelee, Copies: 1}
}

func TestNewCatalogRejectsUnknownAbility(t *testing.T) {
	bad := unit(1, FactionNorthern, 4)
	bad.Ability = Ability(42)

	_, err := NewCatalog([]Template{bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAbility))
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Template{unit(1, FactionNorthern, 4), unit(1, FactionNorthern, 5)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestNewCatalogRejectsLanelessUnit(t *testing.T) {
	bad := unit(1, FactionNorthern, 4)
	bad.Lane = NoLane

	_, err := NewCatalog([]Template{bad})
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestCatalogOrderingAndIndex(t *testing.T) {
	c, err := NewCatalog([]Template{unit(9, FactionNorthern, 1), unit(2, FactionNeutral, 1), unit(5, FactionMonsters, 1)})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5, 9}, c.IDs())
	assert.Equal(t, 1, c.Index(5))
	assert.Equal(t, -1, c.Index(3))
	assert.Equal(t, []Faction{FactionMonsters, FactionNorthern}, c.Factions())
}

func TestParseAbility(t *testing.T) {
	a, err := ParseAbility(" Muster ")
	require.NoError(t, err)
	assert.Equal(t, AbilityMuster, a)

	a, err = ParseAbility("")
	require.NoError(t, err)
	assert.Equal(t, AbilityNone, a)

	_, err = ParseAbility("berserker")
	assert.True(t, errors.Is(err, ErrUnknownAbility))
}

func TestCompatible(t *testing.T) {
	medic := Template{ID: 1, Ability: AbilityMedic, Type: TypeUnit, Faction: FactionNorthern}
	neutralMedic := Template{ID: 2, Ability: AbilityMedic, Type: TypeUnit, Faction: FactionNeutral}
	ally := Template{ID: 3, Type: TypeUnit, Faction: FactionNorthern}
	enemy := Template{ID: 4, Type: TypeUnit, Faction: FactionNilfgaard}
	enemySpy := Template{ID: 5, Ability: AbilitySpy, Type: TypeUnit, Faction: FactionNilfgaard}
	hero := Template{ID: 6, Type: TypeHero, Faction: FactionNorthern}

	assert.True(t, Compatible(medic, ally))
	assert.False(t, Compatible(medic, enemy))
	assert.True(t, Compatible(medic, enemySpy))
	assert.True(t, Compatible(neutralMedic, enemy))
	assert.False(t, Compatible(medic, hero))
	assert.False(t, Compatible(medic, medic))
}

func TestIsHorn(t *testing.T) {
	morale := func(typ Type, copies int) Template {
		return Template{ID: 1, Name: "m", Ability: AbilityMorale, Type: typ, Faction: FactionNeutral, Lane: LaneMelee, Copies: copies}
	}

	assert.True(t, morale(TypeMoraleItem, 3).IsHorn())
	assert.True(t, morale(TypeUnit, 1).IsHorn(), "singleton morale unit")
	assert.False(t, morale(TypeUnit, 3).IsHorn())
	assert.False(t, morale(TypeHero, 1).IsHorn())

	plain := morale(TypeUnit, 1)
	plain.Ability = AbilityNone
	assert.False(t, plain.IsHorn())
}
