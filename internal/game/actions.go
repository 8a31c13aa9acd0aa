package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// ErrInvalidAction is returned for an action index outside the action space
// or not legal in the current state.
var ErrInvalidAction = errors.New("invalid action")

// Action is one entry of the fixed action space: play TemplateID into the
// side-relative Lane, optionally naming Target, or pass.
type Action struct {
	TemplateID int
	Lane       int
	Target     int
	Pass       bool
}

// PassAction is the terminal action that ends a player's round.
var PassAction = Action{TemplateID: -1, Lane: -1, Target: card.NoTarget, Pass: true}

func (a Action) String() string {
	if a.Pass {
		return "pass"
	}
	if a.Target == card.NoTarget {
		return fmt.Sprintf("play(%d, lane=%d)", a.TemplateID, a.Lane)
	}
	return fmt.Sprintf("play(%d, lane=%d, target=%d)", a.TemplateID, a.Lane, a.Target)
}

// ActionSpace enumerates every action a catalog allows and assigns each a
// stable index. The same catalog always yields the same indices.
type ActionSpace struct {
	catalog *card.Catalog
	actions []Action
	index   map[Action]int
}

// NewActionSpace enumerates the actions for catalog.
func NewActionSpace(catalog *card.Catalog) *ActionSpace {
	templates := catalog.Templates()
	actions := make([]Action, 0, len(templates))

	for _, t := range templates {
		switch t.Ability {
		case card.AbilityDecoy:
			// Targets can sit in any own lane: Morale units are played
			// anywhere and spies arrive from the opponent.
			for _, target := range templates {
				if !card.Compatible(t, target) {
					continue
				}
				for lane := 0; lane < card.LanesPerSide; lane++ {
					actions = append(actions, Action{TemplateID: t.ID, Lane: lane, Target: target.ID})
				}
			}
		case card.AbilityMedic:
			for _, target := range templates {
				if card.Compatible(t, target) {
					actions = append(actions, Action{TemplateID: t.ID, Lane: t.Lane, Target: target.ID})
				}
			}
			actions = append(actions, Action{TemplateID: t.ID, Lane: t.Lane, Target: card.NoTarget})
		case card.AbilityMorale:
			for lane := 0; lane < card.LanesPerSide; lane++ {
				actions = append(actions, Action{TemplateID: t.ID, Lane: lane, Target: card.NoTarget})
			}
		default:
			actions = append(actions, Action{TemplateID: t.ID, Lane: t.Lane, Target: card.NoTarget})
		}
	}

	sort.Slice(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if a.TemplateID != b.TemplateID {
			return a.TemplateID < b.TemplateID
		}
		if a.Lane != b.Lane {
			return a.Lane < b.Lane
		}
		return a.Target < b.Target
	})
	actions = append(actions, PassAction)

	index := make(map[Action]int, len(actions))
	for i, a := range actions {
		index[a] = i
	}

	return &ActionSpace{
		catalog: catalog,
		actions: actions,
		index:   index,
	}
}

// Len returns the size of the action space.
func (s *ActionSpace) Len() int {
	return len(s.actions)
}

// PassIndex returns the index of the pass action (always the last one).
func (s *ActionSpace) PassIndex() int {
	return len(s.actions) - 1
}

// Actions returns a copy of the full ordered action list.
func (s *ActionSpace) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Decode returns the action at index.
func (s *ActionSpace) Decode(index int) (Action, error) {
	if index < 0 || index >= len(s.actions) {
		return Action{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidAction, index, len(s.actions))
	}
	return s.actions[index], nil
}

// Encode returns the index of a.
func (s *ActionSpace) Encode(a Action) (int, error) {
	i, ok := s.index[a]
	if !ok {
		return -1, fmt.Errorf("%w: %s is not in the action space", ErrInvalidAction, a)
	}
	return i, nil
}

// LegalMask computes which actions player can take on board right now.
func (s *ActionSpace) LegalMask(player *Player, board *Board) []bool {
	mask := make([]bool, len(s.actions))
	s.markLegal(player, board, func(i int) { mask[i] = true })
	return mask
}

// LegalActions lists the legal actions in index order.
func (s *ActionSpace) LegalActions(player *Player, board *Board) []Action {
	mask := s.LegalMask(player, board)
	out := make([]Action, 0)
	for i, ok := range mask {
		if ok {
			out = append(out, s.actions[i])
		}
	}
	return out
}

func (s *ActionSpace) markLegal(player *Player, board *Board, mark func(int)) {
	try := func(a Action) {
		if i, ok := s.index[a]; ok {
			mark(i)
		}
	}

	for _, id := range player.HandTemplateIDs() {
		t := s.catalog.MustGet(id)
		switch t.Ability {
		case card.AbilityDecoy:
			for rel := 0; rel < card.LanesPerSide; rel++ {
				lane := board.Lane(LaneIndex(rel, player.Index))
				for _, targetID := range lane.TemplateIDs() {
					if card.Compatible(t, s.catalog.MustGet(targetID)) {
						try(Action{TemplateID: id, Lane: rel, Target: targetID})
					}
				}
			}
		case card.AbilityMedic:
			try(Action{TemplateID: id, Lane: t.Lane, Target: card.NoTarget})
			for _, targetID := range board.Graveyard(player.Index).TemplateIDs() {
				if card.Compatible(t, s.catalog.MustGet(targetID)) {
					try(Action{TemplateID: id, Lane: t.Lane, Target: targetID})
				}
			}
		case card.AbilityMorale:
			for lane := 0; lane < card.LanesPerSide; lane++ {
				try(Action{TemplateID: id, Lane: lane, Target: card.NoTarget})
			}
		default:
			try(Action{TemplateID: id, Lane: t.Lane, Target: card.NoTarget})
		}
	}

	if !player.Passed {
		mark(s.PassIndex())
	}
}
