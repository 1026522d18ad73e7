package engine

import "fmt"

// Verdict is the result of validating a candidate placement. Reason is empty
// when OK is true.
type Verdict struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func accept() Verdict { return Verdict{OK: true} }

func reject(reason string) Verdict { return Verdict{Reason: reason} }

// Validate decides whether placing card onto the pile is legal. It never
// mutates its inputs. Target-card constraints for face cards (which card in
// the pile a J/Q/K lands on) are checked by ApplyMove once a concrete index
// is supplied; Validate covers everything decidable from the pile alone.
func Validate(card Card, pileCards []Card, actor, target Side) Verdict {
	if actor != target {
		// Opponent targeting: face cards only, and there must be a live
		// numeric card to land on.
		if !IsFaceCard(card) {
			return reject("Only picture cards (J/Q/K) can be played onto opponent piles.")
		}
		if len(pileCards) == 0 {
			return reject("Cannot play picture cards onto an empty opponent pile.")
		}
		if FindTopmostFaceTarget(pileCards) == -1 {
			return reject("No valid target card (all cards are removed).")
		}
		return accept()
	}

	if card.Rank == "J" && len(pileCards) == 0 {
		return reject("Jack cannot be played onto an empty pile.")
	}

	if IsNumericOrAce(card) {
		dir, last, hasLast := DirectionState(pileCards)
		value := CardValue(card)

		if dir == DirectionInvalid {
			return reject("Pile direction is invalid due to equal numeric cards.")
		}
		if !hasLast {
			// First numeric establishes the pile.
			return accept()
		}
		switch dir {
		case DirectionNone:
			if value == last {
				return reject("You must establish direction by playing a different value.")
			}
		case DirectionUp:
			if value <= last {
				return reject(fmt.Sprintf("Wrong direction: must play higher than %d.", last))
			}
		case DirectionDown:
			if value >= last {
				return reject(fmt.Sprintf("Wrong direction: must play lower than %d.", last))
			}
		}
		return accept()
	}

	// Face cards on own piles are legal pending the target-card check at
	// placement time.
	return accept()
}

// CanPlace is the boolean fast path for drag-hover feedback. It agrees with
// Validate for every input.
func CanPlace(card Card, pileCards []Card, actor, target Side) bool {
	return Validate(card, pileCards, actor, target).OK
}
