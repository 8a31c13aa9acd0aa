package catalog

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseCSV(t *testing.T) {
	input := `# exported cards
name,id,type,faction,lane,strength,ability,copies
Blue Stripes Commando,104,unit,northern,melee,4,bond,3
Commander's Horn,2,morale,neutral,none,,Morale,
Thaler,111,Unit,Northern,2,1,spy,1
`
	templates, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, templates, 3)

	assert.Equal(t, card.Template{
		ID: 104, Name: "Blue Stripes Commando", Strength: 4, Ability: card.AbilityBond,
		Type: card.TypeUnit, Faction: card.FactionNorthern, Lane: card.LaneMelee, Copies: 3,
	}, templates[0])

	horn := templates[1]
	assert.True(t, horn.IsHorn())
	assert.Equal(t, card.NoLane, horn.Lane)
	assert.Equal(t, 0, horn.Strength)
	assert.Equal(t, 1, horn.Copies)

	assert.Equal(t, card.LaneSiege, templates[2].Lane)
	assert.Equal(t, card.FactionNorthern, templates[2].Faction)
}

func TestParseCSVRejectsUnknownAbility(t *testing.T) {
	input := "id,name,type,faction,lane,ability\n1,Mystery,unit,neutral,melee,teleport\n"
	_, err := ParseCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, card.ErrUnknownAbility))
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseCSVRequiresColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("id,name,type,faction\n1,Footman,unit,northern\n"))
	assert.True(t, errors.Is(err, card.ErrInvalidTemplate))

	_, err = ParseCSV(strings.NewReader("id,name,type,faction,lane\n"))
	assert.True(t, errors.Is(err, card.ErrInvalidTemplate))
}

func TestDecodeTemplateAcceptsDatabaseTypes(t *testing.T) {
	tmpl, err := decodeTemplate(map[string]interface{}{
		"id":       int32(405),
		"name":     "Arachas",
		"strength": int32(4),
		"ability":  "muster",
		"type":     "unit",
		"faction":  "monsters",
		"lane":     "melee",
		"copies":   int32(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 405, tmpl.ID)
	assert.Equal(t, card.AbilityMuster, tmpl.Ability)
	assert.Equal(t, 3, tmpl.Copies)
}

func TestStandardCatalog(t *testing.T) {
	c := Standard()
	assert.Equal(t, []card.Faction{card.FactionMonsters, card.FactionNilfgaard, card.FactionNorthern, card.FactionScoiatael}, c.Factions())

	horn, ok := c.Get(2)
	require.True(t, ok)
	assert.True(t, horn.IsHorn())
	assert.True(t, c.MustGet(12).IsHorn(), "Dandelion doubles its lane")
	assert.False(t, c.MustGet(116).IsHorn(), "Kaedweni Siege Expert adds morale")
}

func TestStandardMatchesBundledCSV(t *testing.T) {
	fromFile, err := LoadCSV("../../data/cards.csv")
	require.NoError(t, err)
	assert.Equal(t, Standard().Templates(), fromFile.Templates())
}

func TestWriteCSVRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Standard().Templates()))

	parsed, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, Standard().Templates(), parsed)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV("does/not/exist.csv")
	assert.Error(t, err)
}

func TestLoadPicksSource(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cat, err := Load(context.Background(), config.CatalogConfig{}, logger)
	require.NoError(t, err)
	assert.Equal(t, Standard().Len(), cat.Len())

	cat, err = Load(context.Background(), config.CatalogConfig{Path: "../../data/cards.csv"}, logger)
	require.NoError(t, err)
	assert.Equal(t, Standard().IDs(), cat.IDs())

	_, err = Load(context.Background(), config.CatalogConfig{Path: "missing.csv"}, logger)
	assert.Error(t, err)
}
