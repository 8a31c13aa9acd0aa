package tournament

import (
	"context"
	"sort"
	"testing"

	"github.com/magefree/gwent-engine-go/internal/catalog"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAddEntryAndStart(t *testing.T) {
	tour := NewTournament("cup", 1, 2)
	require.NoError(t, tour.AddEntry(Entry{Name: "a", Agent: "random"}))
	assert.Error(t, tour.AddEntry(Entry{Name: "a", Agent: "greedy"}))
	assert.Error(t, tour.Start(), "one entry cannot start")

	require.NoError(t, tour.AddEntry(Entry{Name: "b", Agent: "greedy"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "c", Agent: "greedy"}))
	require.NoError(t, tour.Start())

	assert.Equal(t, StateInProgress, tour.GetState())
	assert.Len(t, tour.Pairings, 3)
	assert.Error(t, tour.AddEntry(Entry{Name: "d", Agent: "random"}))
	assert.Error(t, tour.Start())
}

func TestRecordMatchResult(t *testing.T) {
	tour := NewTournament("cup", 1, 3)
	require.NoError(t, tour.AddEntry(Entry{Name: "a"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "b"}))
	require.NoError(t, tour.Start())

	require.NoError(t, tour.RecordMatchResult(0, MatchRecord{Winner: "a"}))
	require.NoError(t, tour.RecordMatchResult(0, MatchRecord{Winner: ""}))
	assert.Error(t, tour.RecordMatchResult(0, MatchRecord{Winner: "z"}))
	assert.Error(t, tour.RecordMatchResult(5, MatchRecord{Winner: "a"}))

	snap := tour.Snapshot()
	assert.Equal(t, []Standing{
		{Name: "a", Points: 4, Wins: 1, Draws: 1},
		{Name: "b", Points: 1, Losses: 1, Draws: 1},
	}, snap.Standings)
	assert.Equal(t, 1, snap.Pairings[0].Entry1Wins)
	assert.Equal(t, 1, snap.Pairings[0].Draws)
	assert.Len(t, snap.Pairings[0].Matches, 2)
}

func TestSnapshotIsACopy(t *testing.T) {
	tour := NewTournament("cup", 1, 1)
	require.NoError(t, tour.AddEntry(Entry{Name: "a"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "b"}))
	require.NoError(t, tour.Start())
	require.NoError(t, tour.RecordMatchResult(0, MatchRecord{Winner: "b"}))

	snap := tour.Snapshot()
	snap.Pairings[0].Matches[0].Winner = "a"
	snap.StartTime = nil

	again := tour.Snapshot()
	assert.Equal(t, "b", again.Pairings[0].Matches[0].Winner)
	assert.NotNil(t, again.StartTime)
}

func runCup(t *testing.T, seed int64) Snapshot {
	t.Helper()
	settings := Settings{Match: game.DefaultConfig(), MaxConcurrent: 4, CheckInvariants: true}
	manager := NewManager(catalog.Standard(), settings, zaptest.NewLogger(t))

	tour := manager.CreateTournament("self-play", seed, 4)
	require.NoError(t, tour.AddEntry(Entry{Name: "greedy-north", Agent: "greedy", Faction: "northern"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "random-monsters", Agent: "random", Faction: "monsters"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "greedy-scoia", Agent: "greedy", Faction: "scoiatael"}))

	require.NoError(t, manager.Run(context.Background(), tour))
	assert.Equal(t, StateFinished, tour.GetState())
	return tour.Snapshot()
}

func TestManagerRunsRoundRobin(t *testing.T) {
	snap := runCup(t, 77)

	assert.Equal(t, StateFinished, snap.State)
	require.Len(t, snap.Pairings, 3)

	points := 0
	for _, p := range snap.Pairings {
		assert.Len(t, p.Matches, 4)
		assert.Equal(t, 4, p.Entry1Wins+p.Entry2Wins+p.Draws)
	}
	for _, s := range snap.Standings {
		assert.Equal(t, 8, s.Wins+s.Losses+s.Draws)
		points += s.Points
	}
	assert.GreaterOrEqual(t, points, 24)
	assert.LessOrEqual(t, points, 36)
}

func TestManagerRunIsReproducible(t *testing.T) {
	records := func(snap Snapshot) []MatchRecord {
		out := make([]MatchRecord, 0)
		for _, p := range snap.Pairings {
			out = append(out, p.Matches...)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Seed < out[j].Seed })
		return out
	}

	assert.Equal(t, records(runCup(t, 5)), records(runCup(t, 5)))
}

func TestManagerSavesReplayableTranscripts(t *testing.T) {
	dir := t.TempDir()
	cards := catalog.Standard()
	settings := Settings{Match: game.DefaultConfig(), MaxConcurrent: 2, ReplayDir: dir}
	manager := NewManager(cards, settings, zaptest.NewLogger(t))

	tour := manager.CreateTournament("replays", 11, 2)
	require.NoError(t, tour.AddEntry(Entry{Name: "a", Agent: "greedy", Faction: "nilfgaard"}))
	require.NoError(t, tour.AddEntry(Entry{Name: "b", Agent: "random", Faction: "northern"}))
	require.NoError(t, manager.Run(context.Background(), tour))

	space := game.NewActionSpace(cards)
	for _, record := range tour.Snapshot().Pairings[0].Matches {
		transcript, err := game.LoadTranscript(dir, record.MatchID)
		require.NoError(t, err)
		assert.Equal(t, record.Seed, transcript.Config.Seed)

		m, err := game.Replay(cards, space, transcript, nil)
		require.NoError(t, err)
		assert.Equal(t, record.Checksum, m.Checksum())
	}
}
