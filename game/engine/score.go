package engine

import "strconv"

// CardValue returns a card's intrinsic score: Ace 1, numbers face value,
// faces 0 (they act only through effects).
func CardValue(c Card) int {
	if c.Rank == "A" {
		return 1
	}
	if n, err := strconv.Atoi(string(c.Rank)); err == nil {
		return n
	}
	return 0
}

// IsNumericOrAce reports whether the card carries intrinsic value.
func IsNumericOrAce(c Card) bool {
	if c.Rank == "A" {
		return true
	}
	_, err := strconv.Atoi(string(c.Rank))
	return err == nil
}

// IsFaceCard reports whether the card is a Jack, Queen, or King.
func IsFaceCard(c Card) bool {
	return c.Rank == "J" || c.Rank == "Q" || c.Rank == "K"
}

// PileTotal scores a pile's chronological sequence. Each non-removed
// numeric/Ace card contributes its value, doubled once per non-removed King
// immediately and contiguously following it; a removed King ends the run.
// Removed numeric cards contribute nothing regardless of Kings behind them.
func PileTotal(cards []Card) int {
	total := 0
	for i, c := range cards {
		if !IsNumericOrAce(c) || c.Removed {
			continue
		}
		value := CardValue(c)
		for j := i + 1; j < len(cards) && cards[j].Rank == "K" && !cards[j].Removed; j++ {
			value *= 2
		}
		total += value
	}
	return total
}

// DirectionState scans the pile's non-removed cards in chronological order
// and returns the current direction plus the last numeric value seen (hasLast
// is false until a numeric/Ace has been played).
//
// The first numeric establishes the reference value with direction still
// none. The second numeric fixes the direction, or poisons the pile
// (DirectionInvalid, terminal) on an equal value. Later numerics only update
// the reference; monotonicity is enforced at establishment, not per step.
// Queens flip an established direction and are inert otherwise.
func DirectionState(cards []Card) (dir Direction, last int, hasLast bool) {
	dir = DirectionNone
	for _, c := range cards {
		if c.Removed {
			continue
		}
		switch {
		case IsNumericOrAce(c):
			v := CardValue(c)
			if !hasLast {
				last = v
				hasLast = true
				continue
			}
			if dir == DirectionNone {
				switch {
				case v == last:
					dir = DirectionInvalid
				case v > last:
					dir = DirectionUp
					last = v
				default:
					dir = DirectionDown
					last = v
				}
				continue
			}
			last = v
		case c.Rank == "Q":
			if dir == DirectionUp {
				dir = DirectionDown
			} else if dir == DirectionDown {
				dir = DirectionUp
			}
		}
	}
	return dir, last, hasLast
}

// ComputePileView projects one pile for display: total, direction, and the
// Queen-parity reversal indicator.
func ComputePileView(cards []Card) PileView {
	dir, _, _ := DirectionState(cards)
	queens := 0
	for _, c := range cards {
		if c.Rank == "Q" && !c.Removed {
			queens++
		}
	}
	return PileView{
		Total:     PileTotal(cards),
		Direction: dir,
		Reversed:  queens%2 == 1,
	}
}

// ComputeTotals scores every pile of one side.
func ComputeTotals(piles []Pile) Totals {
	t := Totals{PerPile: make([]int, len(piles))}
	for i, p := range piles {
		t.PerPile[i] = PileTotal(p.Cards)
		t.Total += t.PerPile[i]
	}
	return t
}

// FindTopmostFaceTarget returns the index of the most recently played
// non-removed numeric/Ace card, the only legal target for face cards, or -1
// when the pile has none. Used by the drop validator and the AI selector so
// both resolve targets identically.
func FindTopmostFaceTarget(cards []Card) int {
	for i := len(cards) - 1; i >= 0; i-- {
		if IsNumericOrAce(cards[i]) && !cards[i].Removed {
			return i
		}
	}
	return -1
}
