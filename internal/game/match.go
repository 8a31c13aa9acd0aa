package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/magefree/gwent-engine-go/internal/card"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// ErrMatchOver is returned when stepping a match that has already ended.
var ErrMatchOver = errors.New("match is over")

// Outcome reports the result of a step from the acting player's point of
// view.
type Outcome int

const (
	OutcomeRoundContinues Outcome = iota
	OutcomeWinRound
	OutcomeLoseRound
	OutcomeTieRound
	OutcomeLoseMatch
	OutcomeWinMatch
	OutcomeTieMatch
)

var outcomeNames = map[Outcome]string{
	OutcomeRoundContinues: "ROUND_CONTINUES",
	OutcomeWinRound:       "WIN_ROUND",
	OutcomeLoseRound:      "LOSE_ROUND",
	OutcomeTieRound:       "TIE_ROUND",
	OutcomeLoseMatch:      "LOSE_MATCH",
	OutcomeWinMatch:       "WIN_MATCH",
	OutcomeTieMatch:       "TIE_MATCH",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OUTCOME_%d", int(o))
}

// Terminal reports whether the outcome ends the match.
func (o Outcome) Terminal() bool {
	return o == OutcomeLoseMatch || o == OutcomeWinMatch || o == OutcomeTieMatch
}

// Config controls match setup.
type Config struct {
	Seed         int64
	HandSize     int
	StartingLife int
	FirstPlayer  int
	// Factions selects each player's deck; empty means the whole catalog.
	Factions [2]card.Faction
}

// DefaultConfig returns the standard rules: ten-card hands, two lives.
func DefaultConfig() Config {
	return Config{
		HandSize:     10,
		StartingLife: 2,
	}
}

// Result summarizes a finished (or running) match.
type Result struct {
	Over bool
	// Winner is the winning player index, or -1 for a tie or a running match.
	Winner int
	Rounds int
	Life   [2]int
}

// Option customizes a match.
type Option func(*Match)

// WithLogger sets the match logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Match) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithID overrides the generated match ID.
func WithID(id string) Option {
	return func(m *Match) {
		m.id = id
	}
}

// Match runs the turn, round and match flow for two players. It owns every
// entity of the game; nothing is shared between matches except the
// read-only catalog and action space.
type Match struct {
	id      string
	cfg     Config
	catalog *card.Catalog
	space   *ActionSpace
	players [2]*Player
	board   *Board
	events  *EventBus
	logger  *zap.Logger

	turn       int
	round      int
	over       bool
	transcript Transcript
}

// NewMatch deals both players in and returns a match ready for the first
// step.
func NewMatch(catalog *card.Catalog, space *ActionSpace, cfg Config, opts ...Option) (*Match, error) {
	if catalog == nil || space == nil {
		return nil, fmt.Errorf("catalog and action space are required")
	}
	if cfg.StartingLife <= 0 {
		return nil, fmt.Errorf("starting life must be positive, got %d", cfg.StartingLife)
	}
	if cfg.HandSize < 0 {
		return nil, fmt.Errorf("hand size must not be negative, got %d", cfg.HandSize)
	}
	if cfg.FirstPlayer != 0 && cfg.FirstPlayer != 1 {
		return nil, fmt.Errorf("first player must be 0 or 1, got %d", cfg.FirstPlayer)
	}

	m := &Match{
		id:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("match|%d", cfg.Seed))).String(),
		cfg:     cfg,
		catalog: catalog,
		space:   space,
		events:  NewEventBus(),
		logger:  zap.NewNop(),
		turn:    cfg.FirstPlayer,
		round:   1,
	}
	for _, opt := range opts {
		opt(m)
	}

	for p := range m.players {
		deck := NewDeck(DeckList(catalog, cfg.Factions[p], p), deckSource(cfg.Seed, p))
		if deck.Len() == 0 {
			return nil, fmt.Errorf("player %d deck for faction %q is empty", p, cfg.Factions[p])
		}
		m.players[p] = NewPlayer(p, cfg.StartingLife, deck)
		m.players[p].Draw(cfg.HandSize)
	}
	m.board = NewBoard(catalog, m.players)
	m.transcript = Transcript{MatchID: m.id, Config: cfg, Actions: make([]int, 0, 64)}

	m.logger.Info("match started",
		zap.String("match_id", m.id),
		zap.Int64("seed", cfg.Seed),
		zap.String("faction_0", string(cfg.Factions[0])),
		zap.String("faction_1", string(cfg.Factions[1])),
	)

	return m, nil
}

func deckSource(seed int64, player int) rand.Source {
	return rand.NewSource(uint64(seed) ^ (uint64(player+1) * 0x9e3779b97f4a7c15))
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Catalog returns the card catalog the match plays with.
func (m *Match) Catalog() *card.Catalog { return m.catalog }

// ActionSpace returns the fixed action space.
func (m *Match) ActionSpace() *ActionSpace { return m.space }

// Board returns the board.
func (m *Match) Board() *Board { return m.board }

// Player returns player i (0 or 1).
func (m *Match) Player(i int) *Player { return m.players[i] }

// Events returns the match event bus.
func (m *Match) Events() *EventBus { return m.events }

// Turn returns the index of the player to act next.
func (m *Match) Turn() int { return m.turn }

// Round returns the 1-based round number.
func (m *Match) Round() int { return m.round }

// Over reports whether the match has ended.
func (m *Match) Over() bool { return m.over }

// Transcript returns a copy of the actions taken so far.
func (m *Match) Transcript() Transcript {
	t := m.transcript
	t.Actions = append([]int(nil), m.transcript.Actions...)
	return t
}

// Result summarizes the match.
func (m *Match) Result() Result {
	r := Result{
		Over:   m.over,
		Winner: -1,
		Rounds: m.round,
		Life:   [2]int{m.players[0].Life, m.players[1].Life},
	}
	if m.over {
		switch {
		case r.Life[0] > 0 && r.Life[1] <= 0:
			r.Winner = 0
		case r.Life[1] > 0 && r.Life[0] <= 0:
			r.Winner = 1
		}
	}
	return r
}

// LegalActions returns the mask over the action space and the list of legal
// actions for player. A finished match has no legal actions.
func (m *Match) LegalActions(player int) ([]bool, []Action) {
	if m.over {
		return make([]bool, m.space.Len()), nil
	}
	mask := m.space.LegalMask(m.players[player], m.board)
	actions := make([]Action, 0)
	for i, ok := range mask {
		if ok {
			actions = append(actions, m.space.actions[i])
		}
	}
	return mask, actions
}

// Step applies the action at index for the player whose turn it is. Invalid
// indices are rejected before any state changes.
func (m *Match) Step(index int) (Outcome, error) {
	if m.over {
		return OutcomeRoundContinues, ErrMatchOver
	}
	action, err := m.space.Decode(index)
	if err != nil {
		return OutcomeRoundContinues, err
	}
	acting := m.turn
	if !m.space.LegalMask(m.players[acting], m.board)[index] {
		return OutcomeRoundContinues, fmt.Errorf("%w: %s is not legal for player %d", ErrInvalidAction, action, acting)
	}
	m.transcript.Actions = append(m.transcript.Actions, index)

	if action.Pass {
		return m.pass(acting), nil
	}

	inst := m.players[acting].TakeFromHand(action.TemplateID)
	inst.Lane = action.Lane
	inst.Target = action.Target
	m.board.PlaceCard(inst, acting)

	m.logger.Debug("card played",
		zap.String("match_id", m.id),
		zap.Int("player", acting),
		zap.Stringer("action", action),
		zap.Int("strength_0", m.board.Strength(0)),
		zap.Int("strength_1", m.board.Strength(1)),
	)
	m.publish(EventCardPlayed, acting, action, OutcomeRoundContinues)

	if !m.players[1-acting].Passed {
		m.turn = 1 - acting
	}
	return OutcomeRoundContinues, nil
}

func (m *Match) pass(acting int) Outcome {
	m.players[acting].Passed = true
	m.logger.Debug("player passed",
		zap.String("match_id", m.id),
		zap.Int("player", acting),
		zap.Int("round", m.round),
	)
	m.publish(EventPlayerPassed, acting, PassAction, OutcomeRoundContinues)

	opponent := 1 - acting
	if !m.players[opponent].Passed {
		m.turn = opponent
		return OutcomeRoundContinues
	}
	return m.resolveRound(acting)
}

// resolveRound scores the round once both players have passed.
func (m *Match) resolveRound(acting int) Outcome {
	opponent := 1 - acting
	own, theirs := m.board.Strength(acting), m.board.Strength(opponent)

	var outcome Outcome
	switch {
	case own > theirs:
		m.players[opponent].LoseLife()
		outcome = OutcomeWinRound
	case own < theirs:
		m.players[acting].LoseLife()
		outcome = OutcomeLoseRound
	default:
		m.players[acting].LoseLife()
		m.players[opponent].LoseLife()
		outcome = OutcomeTieRound
	}

	m.publish(EventRoundEnded, acting, PassAction, outcome)

	for _, p := range m.players {
		if p.Life > 0 {
			p.Passed = false
			if p.Draw(1) == 0 {
				m.logger.Debug("deck exhausted at round end",
					zap.String("match_id", m.id),
					zap.Int("player", p.Index),
				)
			}
		}
	}
	m.board.ClearLanes()

	m.logger.Info("round ended",
		zap.String("match_id", m.id),
		zap.Int("round", m.round),
		zap.Int("strength_acting", own),
		zap.Int("strength_opponent", theirs),
		zap.Int("life_0", m.players[0].Life),
		zap.Int("life_1", m.players[1].Life),
	)

	switch a, o := m.players[acting].Life, m.players[opponent].Life; {
	case a <= 0 && o > 0:
		outcome = OutcomeLoseMatch
	case o <= 0 && a > 0:
		outcome = OutcomeWinMatch
	case a <= 0 && o <= 0:
		outcome = OutcomeTieMatch
	}

	if outcome.Terminal() {
		m.over = true
		m.logger.Info("match ended",
			zap.String("match_id", m.id),
			zap.Int("rounds", m.round),
			zap.Stringer("outcome", outcome),
			zap.Int("acting", acting),
		)
		m.publish(EventMatchEnded, acting, PassAction, outcome)
		return outcome
	}

	m.round++
	m.turn = opponent
	return outcome
}

func (m *Match) publish(t EventType, player int, action Action, outcome Outcome) {
	m.events.Publish(Event{
		Type:     t,
		MatchID:  m.id,
		Player:   player,
		Action:   action,
		Round:    m.round,
		Outcome:  outcome,
		Strength: [2]int{m.board.Strength(0), m.board.Strength(1)},
		Life:     [2]int{m.players[0].Life, m.players[1].Life},
	})
}
