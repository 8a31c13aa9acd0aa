// Package catalog loads card templates from CSV exports, Postgres and the
// built-in standard set.
package catalog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/mitchellh/mapstructure"
)

// Columns lists the record fields in export order.
var Columns = []string{"id", "name", "strength", "ability", "type", "faction", "lane", "copies"}

// record is the flat row shape shared by the CSV and SQL sources.
type record struct {
	ID       int    `card:"id"`
	Name     string `card:"name"`
	Strength int    `card:"strength"`
	Ability  string `card:"ability"`
	Type     string `card:"type"`
	Faction  string `card:"faction"`
	Lane     string `card:"lane"`
	Copies   int    `card:"copies"`
}

var laneNames = map[string]int{
	"melee":  card.LaneMelee,
	"ranged": card.LaneRanged,
	"siege":  card.LaneSiege,
	"none":   card.NoLane,
	"":       card.NoLane,
}

// laneName is the inverse of parseLane for export.
func laneName(lane int) string {
	switch lane {
	case card.LaneMelee:
		return "melee"
	case card.LaneRanged:
		return "ranged"
	case card.LaneSiege:
		return "siege"
	default:
		return "none"
	}
}

func parseLane(s string) (int, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if lane, ok := laneNames[tag]; ok {
		return lane, nil
	}
	lane, err := strconv.Atoi(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: lane %q", card.ErrInvalidTemplate, s)
	}
	return lane, nil
}

// stringToIntHook converts text cells into ints; blank cells decode as 0.
func stringToIntHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			s := strings.TrimSpace(data.(string))
			if s == "" {
				return 0, nil
			}
			return strconv.Atoi(s)
		}
		return data, nil
	}
}

// decodeTemplate turns one keyed row into a template. Unknown keys are
// ignored so exports may carry extra columns.
func decodeTemplate(row map[string]interface{}) (card.Template, error) {
	var rec record
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToIntHook(),
		WeaklyTypedInput: true,
		Result:           &rec,
		TagName:          "card",
	})
	if err != nil {
		return card.Template{}, err
	}
	if err := decoder.Decode(row); err != nil {
		return card.Template{}, fmt.Errorf("failed to decode card row: %w", err)
	}

	ability, err := card.ParseAbility(rec.Ability)
	if err != nil {
		return card.Template{}, fmt.Errorf("card %d: %w", rec.ID, err)
	}
	typ, err := card.ParseType(rec.Type)
	if err != nil {
		return card.Template{}, fmt.Errorf("card %d: %w", rec.ID, err)
	}
	lane, err := parseLane(rec.Lane)
	if err != nil {
		return card.Template{}, fmt.Errorf("card %d: %w", rec.ID, err)
	}
	copies := rec.Copies
	if copies == 0 {
		copies = 1
	}

	return card.Template{
		ID:       rec.ID,
		Name:     strings.TrimSpace(rec.Name),
		Strength: rec.Strength,
		Ability:  ability,
		Type:     typ,
		Faction:  card.Faction(strings.ToLower(strings.TrimSpace(rec.Faction))),
		Lane:     lane,
		Copies:   copies,
	}, nil
}

// encodeTemplate is the inverse of decodeTemplate, in Columns order.
func encodeTemplate(t card.Template) []string {
	return []string{
		strconv.Itoa(t.ID),
		t.Name,
		strconv.Itoa(t.Strength),
		t.Ability.String(),
		t.Type.String(),
		string(t.Faction),
		laneName(t.Lane),
		strconv.Itoa(t.Copies),
	}
}
