package main

import (
	"fmt"
	"log"
)

// GreedyStrategy picks one play at a time, steering every pile toward the
// target window while avoiding overshoot. Picture cards are held back for
// repair work: Kings to boost a short pile, Jacks to trim an overshot one,
// Queens to unblock a pile whose direction has run out of road.
type GreedyStrategy struct {
	targetLow  int
	targetHigh int

	// Plays the server rejected since the last accepted play. The local rule
	// mirror is approximate, so rejections are expected occasionally.
	rejected map[string]bool
}

// pileStats summarizes one pile for play selection.
type pileStats struct {
	total       int
	direction   string // "none", "up", "down", "invalid"
	lastVal     int    // value of the most recent live number card, 0 if none
	numberCount int
	topIdx      int // index of the topmost live number card, -1 if none
}

func NewGreedyStrategy(targetLow, targetHigh int) *GreedyStrategy {
	log.Printf("📊 Greedy Strategy: window %d-%d", targetLow, targetHigh)
	return &GreedyStrategy{
		targetLow:  targetLow,
		targetHigh: targetHigh,
		rejected:   make(map[string]bool),
	}
}

// Reset clears per-attempt state.
func (s *GreedyStrategy) Reset() {
	s.rejected = make(map[string]bool)
}

// MarkRejected remembers a play the server refused so it is not retried
// until an accepted play changes the board.
func (s *GreedyStrategy) MarkRejected(play *PlayRequest) {
	s.rejected[playKey(play)] = true
}

// ClearRejected forgets rejections after an accepted play.
func (s *GreedyStrategy) ClearRejected() {
	s.rejected = make(map[string]bool)
}

func playKey(play *PlayRequest) string {
	target := -1
	if play.TargetIndex != nil {
		target = *play.TargetIndex
	}
	return fmt.Sprintf("%s|%s|%d|%d", play.CardID, play.Target, play.PileIndex, target)
}

type candidate struct {
	play  *PlayRequest
	score int
}

// NextPlay returns the best play for the current state, or nil when the hand
// offers nothing useful.
func (s *GreedyStrategy) NextPlay(state *GameState) *PlayRequest {
	mine := state.Players.Player
	theirs := state.Players.AI

	myStats := make([]pileStats, len(mine.Piles))
	for i, pile := range mine.Piles {
		myStats[i] = computeStats(pile)
	}

	var candidates []candidate

	for _, card := range mine.Hand {
		v := cardValue(card.Rank)

		switch {
		case v > 0:
			// Number cards build our own piles
			for i, st := range myStats {
				if !numberAllowed(st, v) {
					continue
				}
				newTotal := st.total + v
				if newTotal > s.targetHigh {
					continue
				}
				score := newTotal
				if newTotal >= s.targetLow {
					score += 1000
				}
				candidates = append(candidates, candidate{
					play:  &PlayRequest{Actor: "player", Target: "player", CardID: card.ID, PileIndex: i},
					score: score,
				})
			}

		case card.Rank == "K":
			// Kings double a live number; use them to boost short piles
			for i, st := range myStats {
				if st.topIdx < 0 || st.total >= s.targetLow {
					continue
				}
				boost := cardValue(mine.Piles[i].Cards[st.topIdx].Rank)
				newTotal := st.total + boost
				if newTotal > s.targetHigh {
					continue
				}
				score := newTotal
				if newTotal >= s.targetLow {
					score += 900
				}
				idx := st.topIdx
				candidates = append(candidates, candidate{
					play:  &PlayRequest{Actor: "player", Target: "player", CardID: card.ID, PileIndex: i, TargetIndex: &idx},
					score: score,
				})
			}

		case card.Rank == "J":
			// Jacks remove: repair our overshoot, or trim an opponent pile
			// that has settled into the window
			for i, st := range myStats {
				if st.total > s.targetHigh && st.topIdx >= 0 {
					idx := st.topIdx
					candidates = append(candidates, candidate{
						play:  &PlayRequest{Actor: "player", Target: "player", CardID: card.ID, PileIndex: i, TargetIndex: &idx},
						score: 500,
					})
				}
			}
			for i, pile := range theirs.Piles {
				st := computeStats(pile)
				if st.total >= s.targetLow && st.total <= s.targetHigh && st.topIdx >= 0 {
					idx := st.topIdx
					candidates = append(candidates, candidate{
						play:  &PlayRequest{Actor: "player", Target: "ai", CardID: card.ID, PileIndex: i, TargetIndex: &idx},
						score: 200,
					})
				}
			}

		case card.Rank == "Q":
			// Queens flip direction; only worth playing when a pile is boxed in
			for i, st := range myStats {
				if st.direction != "up" && st.direction != "down" {
					continue
				}
				if st.total >= s.targetHigh || st.topIdx < 0 {
					continue
				}
				boxedIn := (st.direction == "up" && st.lastVal >= 9) ||
					(st.direction == "down" && st.lastVal <= 2)
				if !boxedIn {
					continue
				}
				idx := st.topIdx
				candidates = append(candidates, candidate{
					play:  &PlayRequest{Actor: "player", Target: "player", CardID: card.ID, PileIndex: i, TargetIndex: &idx},
					score: 100,
				})
			}
		}
	}

	// Pick the best candidate the server has not already refused
	best := -1
	for i, c := range candidates {
		if s.rejected[playKey(c.play)] {
			continue
		}
		if best < 0 || c.score > candidates[best].score {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return candidates[best].play
}

// cardValue returns the counting value of a rank. Aces count one, picture
// cards count zero.
func cardValue(rank string) int {
	switch rank {
	case "A":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	case "7":
		return 7
	case "8":
		return 8
	case "9":
		return 9
	case "10":
		return 10
	default:
		return 0
	}
}

// pileTotal mirrors the server's scoring closely enough for play selection:
// live number cards count face value and each live King doubles the most
// recent live number beneath it.
func pileTotal(pile Pile) int {
	total := 0
	lastContribution := 0
	for _, card := range pile.Cards {
		if card.Removed {
			continue
		}
		v := cardValue(card.Rank)
		if v > 0 {
			total += v
			lastContribution = v
		} else if card.Rank == "K" && lastContribution > 0 {
			total += lastContribution
			lastContribution *= 2
		}
	}
	return total
}

// computeStats derives the pile's total, direction, and last number value.
// Direction is set by the first two live numbers and flipped by each live
// Queen; equal consecutive numbers poison the pile.
func computeStats(pile Pile) pileStats {
	st := pileStats{direction: "none", topIdx: -1}
	st.total = pileTotal(pile)

	prevVal := 0
	for i, card := range pile.Cards {
		if card.Removed {
			continue
		}
		v := cardValue(card.Rank)
		if v > 0 {
			if st.numberCount == 1 && st.direction == "none" {
				switch {
				case v > prevVal:
					st.direction = "up"
				case v < prevVal:
					st.direction = "down"
				default:
					st.direction = "invalid"
				}
			}
			st.numberCount++
			st.lastVal = v
			st.topIdx = i
			prevVal = v
		} else if card.Rank == "Q" {
			switch st.direction {
			case "up":
				st.direction = "down"
			case "down":
				st.direction = "up"
			}
		}
	}
	return st
}

// numberAllowed reports whether placing a number of value v on the pile
// would be accepted.
func numberAllowed(st pileStats, v int) bool {
	switch st.direction {
	case "invalid":
		return false
	case "up":
		return v > st.lastVal
	case "down":
		return v < st.lastVal
	default:
		// No direction yet: anything goes except repeating the only value
		if st.numberCount == 1 && v == st.lastVal {
			return false
		}
		return true
	}
}
