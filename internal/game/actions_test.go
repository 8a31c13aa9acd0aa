package game

import (
	"errors"
	"testing"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSpaceIsStableAndBijective(t *testing.T) {
	space := NewActionSpace(testCatalog())
	again := NewActionSpace(testCatalog())
	assert.Equal(t, space.Actions(), again.Actions())

	seen := make(map[Action]bool, space.Len())
	for i := 0; i < space.Len(); i++ {
		a, err := space.Decode(i)
		require.NoError(t, err)
		assert.False(t, seen[a], "duplicate action %s", a)
		seen[a] = true

		back, err := space.Encode(a)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}

	pass, err := space.Decode(space.PassIndex())
	require.NoError(t, err)
	assert.Equal(t, PassAction, pass)

	_, err = space.Decode(space.Len())
	assert.True(t, errors.Is(err, ErrInvalidAction))
	_, err = space.Encode(Action{TemplateID: 999, Lane: 0, Target: card.NoTarget})
	assert.True(t, errors.Is(err, ErrInvalidAction))
}

func TestActionSpaceShape(t *testing.T) {
	catalog := testCatalog()
	space := NewActionSpace(catalog)

	perTemplate := make(map[int][]Action)
	for _, a := range space.Actions() {
		if !a.Pass {
			perTemplate[a.TemplateID] = append(perTemplate[a.TemplateID], a)
		}
	}

	assert.ElementsMatch(t, []Action{place(horn, 0), place(horn, 1), place(horn, 2)}, perTemplate[horn])
	assert.ElementsMatch(t, []Action{place(drummer, 0), place(drummer, 1), place(drummer, 2)}, perTemplate[drummer])
	assert.Equal(t, []Action{place(footman, card.LaneMelee)}, perTemplate[footman])

	decoyLanes := make(map[int][]int)
	for _, a := range perTemplate[decoy] {
		assert.True(t, catalog.MustGet(a.Target).IsUnit())
		decoyLanes[a.Target] = append(decoyLanes[a.Target], a.Lane)
	}
	for target, lanes := range decoyLanes {
		assert.Equal(t, []int{card.LaneMelee, card.LaneRanged, card.LaneSiege}, lanes, "decoy lanes for %d", target)
	}
	assert.Contains(t, decoyLanes, drummer)
	assert.ElementsMatch(t, []Action{place(dandelion, 0), place(dandelion, 1), place(dandelion, 2)}, perTemplate[dandelion])
	assert.NotContains(t, targetsOf(perTemplate[decoy]), vernon)

	medicTargets := targetsOf(perTemplate[medic])
	assert.Contains(t, medicTargets, card.NoTarget)
	assert.Contains(t, medicTargets, footman)
	assert.NotContains(t, medicTargets, ghoul, "northern medic cannot revive monsters")
	assert.NotContains(t, medicTargets, medic)
}

func targetsOf(actions []Action) []int {
	out := make([]int, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Target)
	}
	return out
}

func TestLegalMaskFollowsHand(t *testing.T) {
	m := newTestMatch(t)
	give(m, 0, footman, horn)

	_, actions := m.LegalActions(0)
	assert.ElementsMatch(t, []Action{
		place(footman, card.LaneMelee),
		place(horn, 0), place(horn, 1), place(horn, 2),
		PassAction,
	}, actions)

	_, actions = m.LegalActions(1)
	assert.Equal(t, []Action{PassAction}, actions)
}
