package ai

import (
	"math/rand"

	"github.com/harrypdev/caravan-card-game/game/engine"
)

// Candidate is one legal placement for the computer opponent: play CardID
// onto Target's pile PileIndex, optionally landing on the card at
// TargetIndex.
type Candidate struct {
	Target      engine.Side `json:"target"`
	CardID      string      `json:"card_id"`
	PileIndex   int         `json:"pile_index"`
	TargetIndex *int        `json:"target_index,omitempty"`
}

// Enumerate lists every legal move for the side to act in the given state.
// Numbers and Aces go onto the side's own piles; picture cards land on the
// topmost live number of any pile, own or opponent. The result is empty when
// the side must forfeit.
func Enumerate(state *engine.GameState) []Candidate {
	if state == nil || state.GameOver {
		return nil
	}
	actor := state.Turn
	opponent := actor.Opponent()

	var out []Candidate
	for _, card := range state.Hand(actor) {
		for pileIndex := 0; pileIndex < engine.PileCount; pileIndex++ {
			if engine.IsNumericOrAce(card) {
				if engine.CanPlace(card, state.PileCards(actor, pileIndex), actor, actor) {
					out = append(out, Candidate{Target: actor, CardID: card.ID, PileIndex: pileIndex})
				}
				continue
			}

			for _, target := range []engine.Side{actor, opponent} {
				pile := state.PileCards(target, pileIndex)
				if !engine.CanPlace(card, pile, actor, target) {
					continue
				}
				ti := engine.FindTopmostFaceTarget(pile)
				if ti == -1 {
					// No live number to land on, so the picture card
					// stays in hand.
					continue
				}
				idx := ti
				out = append(out, Candidate{Target: target, CardID: card.ID, PileIndex: pileIndex, TargetIndex: &idx})
			}
		}
	}
	return out
}

// Pick chooses uniformly among the candidates, or returns false when there is
// nothing to play.
func Pick(candidates []Candidate, rng *rand.Rand) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
