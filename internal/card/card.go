package card

import (
	"errors"
	"fmt"
	"strings"
)

// Lane indices relative to a player's side of the board.
const (
	LaneMelee  = 0
	LaneRanged = 1
	LaneSiege  = 2
	// NoLane marks cards that do not occupy a lane of their own (weather
	// clearing, global scorch, decoys).
	NoLane = 3
)

// LanesPerSide is the fixed number of lanes each player controls.
const LanesPerSide = 3

var (
	// ErrUnknownAbility is returned when a template carries an ability tag
	// the engine does not resolve.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrUnknownType is returned for an unrecognized card type tag.
	ErrUnknownType = errors.New("unknown card type")
	// ErrInvalidTemplate is returned when a template fails validation.
	ErrInvalidTemplate = errors.New("invalid card template")
)

// Ability is the closed set of effects a card can resolve when played.
type Ability int

const (
	AbilityNone Ability = iota
	AbilitySpy
	AbilityBond
	AbilityMorale
	AbilityScorch
	AbilityMuster
	AbilityMedic
	AbilityDecoy
	AbilityWeather
)

var abilityNames = map[Ability]string{
	AbilityNone:    "none",
	AbilitySpy:     "spy",
	AbilityBond:    "bond",
	AbilityMorale:  "morale",
	AbilityScorch:  "scorch",
	AbilityMuster:  "muster",
	AbilityMedic:   "medic",
	AbilityDecoy:   "decoy",
	AbilityWeather: "weather",
}

func (a Ability) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ability_%d", int(a))
}

// Valid reports whether a is one of the resolvable abilities.
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// ParseAbility maps a catalog tag (case-insensitive, empty means none) to
// an Ability.
func ParseAbility(s string) (Ability, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if tag == "" {
		return AbilityNone, nil
	}
	for ability, name := range abilityNames {
		if name == tag {
			return ability, nil
		}
	}
	return AbilityNone, fmt.Errorf("%w: %q", ErrUnknownAbility, s)
}

// Type classifies how a card behaves on the board.
type Type int

const (
	TypeUnit Type = iota
	TypeHero
	TypeDecoy
	TypeMoraleItem
	TypeScorchItem
	TypeWeatherItem
)

var typeNames = map[Type]string{
	TypeUnit:        "unit",
	TypeHero:        "hero",
	TypeDecoy:       "decoy",
	TypeMoraleItem:  "morale",
	TypeScorchItem:  "scorch",
	TypeWeatherItem: "weather",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type_%d", int(t))
}

// ParseType maps a catalog tag to a Type.
func ParseType(s string) (Type, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == tag {
			return t, nil
		}
	}
	return TypeUnit, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Faction groups cards into playable decks. Neutral cards join every deck.
type Faction string

const (
	FactionNeutral   Faction = "neutral"
	FactionNorthern  Faction = "northern"
	FactionNilfgaard Faction = "nilfgaard"
	FactionScoiatael Faction = "scoiatael"
	FactionMonsters  Faction = "monsters"
)

// Template is the immutable definition of a card.
type Template struct {
	ID       int
	Name     string
	Strength int
	Ability  Ability
	Type     Type
	Faction  Faction
	Lane     int
	Copies   int
}

// IsUnit reports whether the card is a non-hero unit (affected by weather,
// modifiers and scorch).
func (t Template) IsUnit() bool {
	return t.Type == TypeUnit
}

// IsHorn reports whether the card doubles its lane rather than adding a
// morale bonus. Horn items and singleton Morale units (Dandelion) double;
// multi-copy Morale units and Morale heroes add +1.
func (t Template) IsHorn() bool {
	if t.Ability != AbilityMorale {
		return false
	}
	return t.Type == TypeMoraleItem || (t.Type == TypeUnit && t.Copies == 1)
}

// Validate checks a template for load-time consistency.
func (t Template) Validate() error {
	if !t.Ability.Valid() {
		return fmt.Errorf("%w: template %d (%s) has ability %d", ErrUnknownAbility, t.ID, t.Name, int(t.Ability))
	}
	if _, ok := typeNames[t.Type]; !ok {
		return fmt.Errorf("%w: template %d (%s) has type %d", ErrUnknownType, t.ID, t.Name, int(t.Type))
	}
	if t.ID < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalidTemplate, t.ID)
	}
	if t.Strength < 0 {
		return fmt.Errorf("%w: template %d has negative strength", ErrInvalidTemplate, t.ID)
	}
	if t.Copies < 1 {
		return fmt.Errorf("%w: template %d has %d copies", ErrInvalidTemplate, t.ID, t.Copies)
	}
	if t.Lane < LaneMelee || t.Lane > NoLane {
		return fmt.Errorf("%w: template %d has lane %d", ErrInvalidTemplate, t.ID, t.Lane)
	}
	if t.Faction == "" {
		return fmt.Errorf("%w: template %d has no faction", ErrInvalidTemplate, t.ID)
	}
	switch t.Ability {
	case AbilityDecoy:
		if t.Type != TypeDecoy {
			return fmt.Errorf("%w: decoy template %d must have decoy type", ErrInvalidTemplate, t.ID)
		}
	case AbilityWeather:
		if t.Type != TypeWeatherItem {
			return fmt.Errorf("%w: weather template %d must have weather type", ErrInvalidTemplate, t.ID)
		}
	}
	if t.Lane == NoLane {
		switch t.Ability {
		case AbilityWeather, AbilityScorch, AbilityDecoy, AbilityMorale:
		default:
			return fmt.Errorf("%w: template %d (%s) needs a lane", ErrInvalidTemplate, t.ID, t.Ability)
		}
	}
	return nil
}
