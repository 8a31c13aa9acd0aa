package game

import (
	"errors"
	"testing"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewMatchValidatesConfig(t *testing.T) {
	catalog := testCatalog()
	space := NewActionSpace(catalog)

	cfg := DefaultConfig()
	cfg.StartingLife = 0
	_, err := NewMatch(catalog, space, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.FirstPlayer = 2
	_, err = NewMatch(catalog, space, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Factions[0] = card.FactionScoiatael
	cfg.Factions[1] = card.FactionMonsters
	m, err := NewMatch(catalog, space, cfg)
	require.NoError(t, err, "a faction with no cards still gets the neutral ones")
	assert.Zero(t, m.Player(0).HandCount(footman))
}

func TestNewMatchDealsHands(t *testing.T) {
	m := newTestMatch(t, func(c *Config) { c.HandSize = 10 })

	for p := 0; p < 2; p++ {
		assert.Len(t, m.Player(p).Hand, 10)
		assert.Equal(t, 16, m.Player(p).Deck.Len())
		assert.Equal(t, 2, m.Player(p).Life)
	}
	assert.Equal(t, 0, m.Turn())
	assert.Equal(t, 1, m.Round())
	require.NoError(t, m.CheckInvariants())
}

func TestMatchIDIsDerivedFromSeed(t *testing.T) {
	a := newTestMatch(t)
	b := newTestMatch(t)
	c := newTestMatch(t, func(c *Config) { c.Seed = 43 })

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestTiedRoundCostsBothPlayersALife(t *testing.T) {
	m := newTestMatch(t)
	give(m, 0, ballista, ballista)
	give(m, 1, ballista, ballista)

	for i := 0; i < 4; i++ {
		play(t, m, place(ballista, card.LaneSiege))
	}
	assert.Equal(t, 12, m.Board().Strength(0))
	assert.Equal(t, 12, m.Board().Strength(1))

	play(t, m, PassAction)
	outcome := play(t, m, PassAction)

	assert.Equal(t, OutcomeTieRound, outcome)
	assert.Equal(t, 1, m.Player(0).Life)
	assert.Equal(t, 1, m.Player(1).Life)
	assert.Equal(t, 2, m.Round())
	assert.Equal(t, 0, m.Turn())
	assert.False(t, m.Over())

	for p := 0; p < 2; p++ {
		assert.Equal(t, 0, m.Board().Strength(p))
		assert.Equal(t, 2, m.Board().Graveyard(p).CountOf(ballista))
		assert.Len(t, m.Player(p).Hand, 1)
		assert.False(t, m.Player(p).Passed)
	}
}

func TestStrongerSideWinsRound(t *testing.T) {
	m := newTestMatch(t)
	give(m, 0, ballista, medic, footman)
	give(m, 1, footman, medic)

	play(t, m, place(ballista, card.LaneSiege))
	play(t, m, place(footman, card.LaneMelee))
	play(t, m, place(medic, card.LaneRanged))
	play(t, m, place(medic, card.LaneRanged))
	play(t, m, place(footman, card.LaneMelee))
	assert.Equal(t, 15, m.Board().Strength(0))
	assert.Equal(t, 9, m.Board().Strength(1))

	play(t, m, PassAction)
	assert.Equal(t, 0, m.Turn())
	outcome := play(t, m, PassAction)

	assert.Equal(t, OutcomeWinRound, outcome)
	assert.Equal(t, 2, m.Player(0).Life)
	assert.Equal(t, 1, m.Player(1).Life)
	assert.Equal(t, 1, m.Turn(), "the player who passed last hands the lead to the opponent")
	assert.Equal(t, 3, m.Board().Graveyard(0).Len())
	assert.Equal(t, 2, m.Board().Graveyard(1).Len())
}

func TestPlayerKeepsActingWhileOpponentHasPassed(t *testing.T) {
	m := newTestMatch(t)
	give(m, 1, footman, footman)

	play(t, m, PassAction)
	assert.Equal(t, 1, m.Turn())
	play(t, m, place(footman, card.LaneMelee))
	assert.Equal(t, 1, m.Turn())
	play(t, m, place(footman, card.LaneMelee))
	assert.Equal(t, 1, m.Turn())
	assert.Equal(t, 8, m.Board().Strength(1))
}

func TestTiedFinalRoundEndsInDraw(t *testing.T) {
	m := newTestMatch(t, func(c *Config) { c.StartingLife = 1 })

	play(t, m, PassAction)
	outcome := play(t, m, PassAction)

	assert.Equal(t, OutcomeTieMatch, outcome)
	assert.True(t, m.Over())
	result := m.Result()
	assert.Equal(t, -1, result.Winner)
	assert.Equal(t, [2]int{0, 0}, result.Life)

	_, err := m.Step(m.ActionSpace().PassIndex())
	assert.True(t, errors.Is(err, ErrMatchOver))

	mask, actions := m.LegalActions(0)
	assert.NotContains(t, mask, true)
	assert.Empty(t, actions)
}

func TestWinningFinalRound(t *testing.T) {
	m := newTestMatch(t, func(c *Config) { c.StartingLife = 1 })
	give(m, 1, footman)

	play(t, m, PassAction)
	play(t, m, place(footman, card.LaneMelee))
	outcome := play(t, m, PassAction)

	assert.Equal(t, OutcomeWinMatch, outcome)
	assert.Equal(t, 1, m.Result().Winner)
}

func TestInvalidActionLeavesStateUntouched(t *testing.T) {
	m := newTestMatch(t)
	give(m, 0, footman)
	before := m.Checksum()

	index, err := m.ActionSpace().Encode(place(ballista, card.LaneSiege))
	require.NoError(t, err)
	_, err = m.Step(index)
	assert.True(t, errors.Is(err, ErrInvalidAction))

	_, err = m.Step(-1)
	assert.True(t, errors.Is(err, ErrInvalidAction))
	_, err = m.Step(m.ActionSpace().Len())
	assert.True(t, errors.Is(err, ErrInvalidAction))

	assert.Equal(t, before, m.Checksum())
	assert.Empty(t, m.Transcript().Actions)
	assert.Equal(t, 0, m.Turn())
}

func TestPassIsIllegalAfterPassing(t *testing.T) {
	m := newTestMatch(t)
	play(t, m, PassAction)

	mask := m.ActionSpace().LegalMask(m.Player(0), m.Board())
	assert.False(t, mask[m.ActionSpace().PassIndex()])
}

// playRandom drives a match to completion with uniformly random legal
// actions.
func playRandom(t *testing.T, m *Match, seed uint64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for steps := 0; !m.Over(); steps++ {
		require.Less(t, steps, 1000, "match did not terminate")
		_, actions := m.LegalActions(m.Turn())
		require.NotEmpty(t, actions)
		play(t, m, actions[rng.Intn(len(actions))])
	}
}

func TestRandomMatchesKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m := newTestMatch(t, func(c *Config) {
			c.Seed = seed
			c.HandSize = 10
			c.Factions = [2]card.Faction{}
		})
		playRandom(t, m, uint64(seed))

		result := m.Result()
		assert.True(t, result.Over)
		assert.True(t, result.Life[0] == 0 || result.Life[1] == 0)
	}
}

func TestReplayReproducesMatch(t *testing.T) {
	m := newTestMatch(t, func(c *Config) {
		c.Seed = 99
		c.HandSize = 10
	})
	playRandom(t, m, 7)

	replayed, err := Replay(m.Catalog(), m.ActionSpace(), m.Transcript(), nil)
	require.NoError(t, err)
	assert.Equal(t, m.ID(), replayed.ID())
	assert.Equal(t, m.Checksum(), replayed.Checksum())
	assert.Equal(t, m.Result(), replayed.Result())
}

func TestReplayRejectsDivergentTranscript(t *testing.T) {
	m := newTestMatch(t)
	transcript := m.Transcript()
	transcript.Actions = []int{m.ActionSpace().PassIndex(), m.ActionSpace().PassIndex(), m.ActionSpace().PassIndex(), m.ActionSpace().PassIndex(), 0}

	_, err := Replay(m.Catalog(), m.ActionSpace(), transcript, nil)
	assert.Error(t, err)
}

func TestSameSeedSameDraws(t *testing.T) {
	a := newTestMatch(t, func(c *Config) { c.HandSize = 10 })
	b := newTestMatch(t, func(c *Config) { c.HandSize = 10 })
	assert.Equal(t, a.Checksum(), b.Checksum())

	c := newTestMatch(t, func(c *Config) {
		c.HandSize = 10
		c.Seed = 1234
	})
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}
