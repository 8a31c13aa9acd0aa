package card

// NoTarget is the sentinel target for actions that do not select a card
// (including a Medic played without revival).
const NoTarget = -1

// Instance is a play-time copy of a template. Exactly one container (hand,
// deck, lane or graveyard) holds an instance at any moment.
type Instance struct {
	TemplateID int
	// Owner is the index of the player whose deck created the instance.
	Owner int
	// Multiplier is set by Bond to the number of same-template cards in the
	// lane.
	Multiplier int
	// Strength caches the current strength, recomputed by the lane.
	Strength int
	// Lane is the nominal lane for the current play, set from the action.
	Lane int
	// Target is the template ID chosen by Medic/Decoy actions.
	Target int
}

// NewInstance creates an instance of t owned by owner at its printed
// strength.
func NewInstance(t Template, owner int) *Instance {
	return &Instance{
		TemplateID: t.ID,
		Owner:      owner,
		Multiplier: 1,
		Strength:   t.Strength,
		Lane:       t.Lane,
		Target:     NoTarget,
	}
}

// Reset restores the per-play fields to the template defaults. Called when
// an instance leaves the board.
func (i *Instance) Reset(t Template) {
	i.Multiplier = 1
	i.Strength = t.Strength
	i.Lane = t.Lane
	i.Target = NoTarget
}
