package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/magefree/gwent-engine-go/internal/card"
)

// Checksum computes a SHA-256 digest of the match state. Two matches with
// the same checksum hold the same cards in the same containers with the
// same strengths, lives and flags.
func (m *Match) Checksum() string {
	sum := sha256.Sum256([]byte(m.canonical()))
	return hex.EncodeToString(sum[:])
}

// canonical writes the match state in a fixed order, independent of map
// iteration.
func (m *Match) canonical() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "MATCH:%d|%d|%t\n", m.turn, m.round, m.over)

	for _, p := range m.players {
		fmt.Fprintf(&buf, "PLAYER:%d|%d|%t|%d\n", p.Index, p.Life, p.Passed, m.board.Strength(p.Index))
		buf.WriteString("HAND:")
		writeInstances(&buf, p.Hand)
		buf.WriteString("DECK:")
		writeInstances(&buf, p.Deck.Cards())
		buf.WriteString("GRAVEYARD:")
		writeInstances(&buf, m.board.Graveyard(p.Index).Cards())
	}

	for i := 0; i < NumLanes; i++ {
		lane := m.board.Lane(i)
		fmt.Fprintf(&buf, "LANE:%d|%d|%d|%d|%t\n", i, lane.Total(), lane.Additive(), lane.Multiplicative(), lane.Weather())
		writeInstances(&buf, lane.Cards())
	}

	return buf.String()
}

func writeInstances(buf *bytes.Buffer, insts []*card.Instance) {
	for _, inst := range insts {
		fmt.Fprintf(buf, "%d/%d/%d/%d;", inst.TemplateID, inst.Owner, inst.Strength, inst.Multiplier)
	}
	buf.WriteString("\n")
}
