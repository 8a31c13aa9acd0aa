package tournament

import (
	"context"
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/agent"
	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/random"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Settings configure how a manager plays tournament matches.
type Settings struct {
	// Match is the template config; Seed and Factions are set per match.
	Match           game.Config
	MaxConcurrent   int
	CheckInvariants bool
	// ReplayDir, when set, receives a transcript file per match.
	ReplayDir string
}

// Manager creates tournaments and plays their matches.
type Manager struct {
	logger *zap.Logger

	catalog  *card.Catalog
	space    *game.ActionSpace
	settings Settings
}

// NewManager creates a new tournament manager playing with catalog.
func NewManager(catalog *card.Catalog, settings Settings, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.MaxConcurrent < 1 {
		settings.MaxConcurrent = 1
	}
	return &Manager{
		logger:   logger,
		catalog:  catalog,
		space:    game.NewActionSpace(catalog),
		settings: settings,
	}
}

// CreateTournament creates a new tournament
func (m *Manager) CreateTournament(name string, seed int64, matchesPerPair int) *Tournament {
	tournament := NewTournament(name, seed, matchesPerPair)

	m.logger.Info("tournament created",
		zap.String("tournament_id", tournament.ID),
		zap.String("name", name),
		zap.Int64("seed", seed),
		zap.Int("matches_per_pair", matchesPerPair),
	)

	return tournament
}

// Run starts t and plays every match of every pairing, at most
// MaxConcurrent at a time. Match seeds derive from the tournament seed, so
// a rerun with the same seed reproduces every result.
func (m *Manager) Run(ctx context.Context, t *Tournament) error {
	if err := t.Start(); err != nil {
		return err
	}
	snap := t.Snapshot()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrent)

	job := 0
	for pi, pairing := range snap.Pairings {
		pi := pi // per-iteration copy (go.mod targets go 1.21)
		first, _ := t.Entry(pairing.Entry1)
		second, _ := t.Entry(pairing.Entry2)
		for n := 0; n < snap.MatchesPerPair; n++ {
			seats := [2]Entry{first, second}
			if n%2 == 1 {
				seats = [2]Entry{second, first}
			}
			seed := random.Derive(snap.Seed, job)
			job++

			g.Go(func() error {
				record, err := m.playMatch(gctx, seats, seed)
				if err != nil {
					return fmt.Errorf("%s vs %s (seed %d): %w", seats[0].Name, seats[1].Name, seed, err)
				}
				return t.RecordMatchResult(pi, record)
			})
		}
	}

	err := g.Wait()
	t.Finish()

	final := t.Snapshot()
	for _, s := range final.Standings {
		m.logger.Info("tournament standing",
			zap.String("tournament_id", t.ID),
			zap.String("entry", s.Name),
			zap.Int("points", s.Points),
			zap.Int("wins", s.Wins),
			zap.Int("losses", s.Losses),
			zap.Int("draws", s.Draws),
		)
	}
	return err
}

func (m *Manager) playMatch(ctx context.Context, seats [2]Entry, seed int64) (MatchRecord, error) {
	cfg := m.settings.Match
	cfg.Seed = seed
	cfg.Factions = [2]card.Faction{card.Faction(seats[0].Faction), card.Faction(seats[1].Faction)}

	match, err := game.NewMatch(m.catalog, m.space, cfg, game.WithLogger(m.logger))
	if err != nil {
		return MatchRecord{}, err
	}

	var violation error
	if m.settings.CheckInvariants {
		match.Events().Subscribe(func(game.Event) {
			if violation == nil {
				violation = match.CheckInvariants()
			}
		})
	}

	var agents [2]agent.Agent
	for p, seat := range seats {
		a, err := agent.New(seat.Agent, m.catalog, random.Derive(seed, p))
		if err != nil {
			return MatchRecord{}, err
		}
		agents[p] = a
	}

	result, err := agent.Play(ctx, match, agents)
	if err != nil {
		return MatchRecord{}, err
	}
	if violation != nil {
		return MatchRecord{}, fmt.Errorf("invariant violated: %w", violation)
	}

	record := MatchRecord{
		MatchID:  match.ID(),
		Seed:     seed,
		Rounds:   result.Rounds,
		Checksum: match.Checksum(),
	}
	if result.Winner >= 0 {
		record.Winner = seats[result.Winner].Name
	}
	if m.settings.ReplayDir != "" {
		filename, err := game.SaveTranscript(m.settings.ReplayDir, match.Transcript())
		if err != nil {
			return MatchRecord{}, err
		}
		m.logger.Debug("saved transcript", zap.String("match_id", record.MatchID), zap.String("file", filename))
	}
	return record, nil
}
