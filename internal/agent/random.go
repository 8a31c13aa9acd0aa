package agent

import (
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/game/encoder"
	"golang.org/x/exp/rand"
)

// Random picks uniformly among legal actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent with a fixed seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(uint64(seed)))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) Choose(_ encoder.Observation, mask []bool, _ []game.Action) int {
	legal := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			legal = append(legal, i)
		}
	}
	if len(legal) == 0 {
		return -1
	}
	return legal[r.rng.Intn(len(legal))]
}
