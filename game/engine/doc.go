// Package engine provides the core rule logic for the Caravan Card Game.
//
// The engine package implements the game mechanics including:
//   - Deck construction, shuffling, dealing, and drawing
//   - Pile scoring with King multipliers and Jack removals
//   - Direction establishment and Queen reversals
//   - Move legality validation with human-readable reasons
//   - The turn-based game state machine and win detection
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents one game in progress,
// while RulesConfig defines a rule profile loaded from JSON files.
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultRulesConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	state := eng.GetState()
//	card := state.Hand(engine.SidePlayer)[0]
//	ok := eng.ApplyMove(engine.SidePlayer, engine.SidePlayer, card.ID, 0, nil)
//
// Game Rules:
//
// Each side builds three piles, racing to bring every pile's total into the
// target range (21-26 in the classic profile). Number cards and Aces must
// follow the pile's established ascending or descending direction. Jacks
// neutralize a target card, Queens flip an established direction, and Kings
// double the card they land on. Face cards are the only cards playable onto
// an opponent's pile. When one side has all three piles in range it wins; if
// both are in range the higher combined total takes the game.
package engine
