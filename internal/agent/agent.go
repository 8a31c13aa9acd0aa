// Package agent provides automated players that pick actions from an
// encoded observation and a legality mask.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/game/encoder"
)

// ErrUnknownAgent is returned by New for an unregistered agent kind.
var ErrUnknownAgent = errors.New("unknown agent")

// Agent chooses an action index. mask and actions both span the whole
// action space; the returned index must be one where mask is true.
type Agent interface {
	Name() string
	Choose(obs encoder.Observation, mask []bool, actions []game.Action) int
}

// Kinds lists the agent kinds New understands.
var Kinds = []string{"random", "greedy"}

// New builds an agent of kind. seed feeds agents that randomize.
func New(kind string, catalog *card.Catalog, seed int64) (Agent, error) {
	switch kind {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return NewGreedy(catalog), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, kind)
	}
}

// Play runs m to completion with agents[p] acting for player p. It stops
// early when ctx is cancelled.
func Play(ctx context.Context, m *game.Match, agents [2]Agent) (game.Result, error) {
	actions := m.ActionSpace().Actions()
	for !m.Over() {
		if err := ctx.Err(); err != nil {
			return m.Result(), err
		}
		player := m.Turn()
		mask, _ := m.LegalActions(player)
		index := agents[player].Choose(encoder.Encode(m, player), mask, actions)
		if _, err := m.Step(index); err != nil {
			return m.Result(), fmt.Errorf("agent %s: %w", agents[player].Name(), err)
		}
	}
	return m.Result(), nil
}
