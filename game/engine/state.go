package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// NewGame deals a fresh game: shuffled deck, one hand per side, human to
// move. The rng drives the shuffle so games can be reproduced under test.
func NewGame(cfg *RulesConfig, rng *rand.Rand) (*GameState, error) {
	if cfg == nil {
		cfg = DefaultRulesConfig()
	}
	deck := Shuffle(BuildDeck(), rng)

	playerHand, deck, err := Deal(deck, cfg.HandSize)
	if err != nil {
		return nil, fmt.Errorf("deal player hand: %w", err)
	}
	aiHand, deck, err := Deal(deck, cfg.HandSize)
	if err != nil {
		return nil, fmt.Errorf("deal ai hand: %w", err)
	}

	return &GameState{
		Deck: deck,
		Players: Players{
			Player: Player{Hand: playerHand, Piles: emptyPiles()},
			AI:     Player{Hand: aiHand, Piles: emptyPiles()},
		},
		Turn:       SidePlayer,
		AIEnabled:  true,
		MoveLog:    []MoveRecord{},
		ConfigName: cfg.Name,
	}, nil
}

func emptyPiles() []Pile {
	piles := make([]Pile, PileCount)
	for i := range piles {
		piles[i].Cards = []Card{}
	}
	return piles
}

// ApplyMove is the single mutation entry point: actor plays the named hand
// card onto target's pile. targetIndex selects the in-pile card a face card
// lands on (nil for numeric placement or a J/Q onto an empty own pile).
//
// Every precondition failure leaves the state untouched except for Message
// and returns false; illegal moves are reported, never raised.
func (gs *GameState) ApplyMove(cfg *RulesConfig, actor, target Side, cardID string, pileIndex int, targetIndex *int) bool {
	if gs.GameOver {
		return false
	}
	if !actor.Valid() || !target.Valid() {
		gs.Message = cfg.Messages.InvalidMove
		return false
	}
	if actor != gs.Turn {
		gs.Message = cfg.Messages.NotYourTurn
		return false
	}
	if pileIndex < 0 || pileIndex >= PileCount {
		gs.Message = cfg.Messages.InvalidMove
		return false
	}

	actorPlayer := gs.side(actor)
	handIndex := findInHand(actorPlayer.Hand, cardID)
	if handIndex == -1 {
		gs.Message = cfg.Messages.CardNotInHand
		return false
	}
	card := actorPlayer.Hand[handIndex]

	targetPile := &gs.side(target).Piles[pileIndex]
	verdict := Validate(card, targetPile.Cards, actor, target)
	if !verdict.OK {
		gs.Message = verdict.Reason
		return false
	}

	switch {
	case IsNumericOrAce(card):
		targetPile.Cards = append(targetPile.Cards, card)

	case targetIndex == nil:
		if len(targetPile.Cards) > 0 {
			gs.Message = cfg.Messages.PickTarget
			return false
		}
		if card.Rank == "K" {
			gs.Message = cfg.Messages.KingNeedsNumber
			return false
		}
		// J is rejected by Validate on an empty pile, so only a Queen
		// reaches here: it opens the pile without a target.
		targetPile.Cards = append(targetPile.Cards, card)

	default:
		ti := *targetIndex
		if ti < 0 || ti >= len(targetPile.Cards) {
			gs.Message = cfg.Messages.InvalidMove
			return false
		}
		targetCard := targetPile.Cards[ti]
		if card.Rank == "K" && (!IsNumericOrAce(targetCard) || targetCard.Removed) {
			gs.Message = cfg.Messages.KingNeedsLiveNumber
			return false
		}

		// Insert immediately after the target; the target keeps its index.
		insertAt := ti + 1
		targetPile.Cards = append(targetPile.Cards, Card{})
		copy(targetPile.Cards[insertAt+1:], targetPile.Cards[insertAt:])
		targetPile.Cards[insertAt] = card

		if card.Rank == "J" {
			targetPile.Cards[ti].Removed = true
		}
	}

	// Take the card out of the hand and replace it from the deck if one is
	// left; an exhausted deck just shrinks the hand.
	actorPlayer.Hand = append(actorPlayer.Hand[:handIndex], actorPlayer.Hand[handIndex+1:]...)
	if drawn, rest, ok := Draw(gs.Deck); ok {
		gs.Deck = rest
		actorPlayer.Hand = append(actorPlayer.Hand, drawn)
	}

	turnBefore := gs.Turn
	gs.Turn = actor.Opponent()
	gs.MoveCount++
	gs.Message = ""
	gs.MoveLog = append(gs.MoveLog, MoveRecord{
		Actor:       actor,
		Target:      target,
		CardRank:    card.Rank,
		PileIndex:   pileIndex,
		TargetIndex: targetIndex,
		TurnBefore:  turnBefore,
		TurnAfter:   gs.Turn,
		Sequence:    gs.MoveCount,
		Timestamp:   time.Now().UnixMilli(),
	})

	gs.checkWinner(cfg)
	return true
}

// ForfeitTurn passes the turn without a card played, used when the AI has no
// legal move. No MoveRecord is written and MoveCount is unchanged.
func (gs *GameState) ForfeitTurn(side Side, message string) {
	if gs.GameOver || gs.Turn != side {
		return
	}
	gs.Turn = side.Opponent()
	gs.Message = message
}

// DecideWinner applies the win rule to a state snapshot: a side is in-range
// when all of its pile totals fall in [TargetLow, TargetHigh]. Exactly one
// in-range side wins outright; with both in range the higher combined total
// wins and equal totals tie. done is false while the game continues.
func DecideWinner(gs *GameState, cfg *RulesConfig) (winner string, done bool) {
	playerTotals := ComputeTotals(gs.Players.Player.Piles)
	aiTotals := ComputeTotals(gs.Players.AI.Piles)

	playerIn := allInRange(playerTotals.PerPile, cfg)
	aiIn := allInRange(aiTotals.PerPile, cfg)

	switch {
	case !playerIn && !aiIn:
		return "", false
	case playerIn && !aiIn:
		return WinnerPlayer, true
	case aiIn && !playerIn:
		return WinnerAI, true
	case playerTotals.Total > aiTotals.Total:
		return WinnerPlayer, true
	case aiTotals.Total > playerTotals.Total:
		return WinnerAI, true
	default:
		return WinnerTie, true
	}
}

func allInRange(perPile []int, cfg *RulesConfig) bool {
	for _, total := range perPile {
		if total < cfg.TargetLow || total > cfg.TargetHigh {
			return false
		}
	}
	return true
}

// checkWinner runs after every accepted move. Winner is set atomically with
// GameOver; from then on ApplyMove is a no-op.
func (gs *GameState) checkWinner(cfg *RulesConfig) {
	winner, done := DecideWinner(gs, cfg)
	if !done {
		return
	}
	gs.GameOver = true
	gs.Winner = winner
	switch winner {
	case WinnerPlayer:
		gs.Message = cfg.Messages.PlayerWins
	case WinnerAI:
		gs.Message = cfg.Messages.AIWins
	default:
		gs.Message = cfg.Messages.TieGame
	}
}

// Clone returns a deep copy of the state, safe to hand to the AI selector or
// a transport while the original keeps mutating.
func (gs *GameState) Clone() *GameState {
	out := *gs
	out.Deck = append([]Card(nil), gs.Deck...)
	out.MoveLog = append([]MoveRecord(nil), gs.MoveLog...)
	out.Players.Player = clonePlayer(gs.Players.Player)
	out.Players.AI = clonePlayer(gs.Players.AI)
	return &out
}

func clonePlayer(p Player) Player {
	out := Player{
		Hand:  append([]Card(nil), p.Hand...),
		Piles: make([]Pile, len(p.Piles)),
	}
	for i, pile := range p.Piles {
		out.Piles[i].Cards = append([]Card(nil), pile.Cards...)
	}
	return out
}
