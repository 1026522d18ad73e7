package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	Snapshot() *GameState
	IsGameOver() bool
	Winner() string
	MoveCount() int

	// Moves
	ApplyMove(actor, target Side, cardID string, pileIndex int, targetIndex *int) bool
	CanPlace(card Card, pileCards []Card, actor, target Side) bool
	ForfeitTurn(side Side, message string)
	SetAIEnabled(enabled bool)

	// Projections
	PileView(side Side, pileIndex int) PileView
	SideTotals(side Side) Totals

	// Configuration
	GetConfig() *RulesConfig
	SetConfig(cfg *RulesConfig) error

	// History
	GetMoveLog() []MoveRecord
	GetLastMove() *MoveRecord
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *RulesConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine with the provided rule profile and a
// time-seeded shuffle.
func NewEngine(cfg *RulesConfig) (*GameEngine, error) {
	return NewEngineWithSeed(cfg, time.Now().UnixNano())
}

// NewEngineWithSeed creates an engine whose shuffles are reproducible from
// the given seed.
func NewEngineWithSeed(cfg *RulesConfig, seed int64) (*GameEngine, error) {
	if cfg == nil {
		cfg = DefaultRulesConfig()
	}
	if err := ValidateRulesConfig(cfg); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	state, err := NewGame(cfg, e.rng)
	if err != nil {
		return nil, err
	}
	e.state = state
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the classic profile.
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultRulesConfig())
	if err != nil {
		// The default profile always validates.
		panic(err)
	}
	return e
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset starts a brand-new game from a fresh shuffle. Nothing survives the
// reset; the move log belongs to one game only.
func (e *GameEngine) Reset() *GameState {
	aiEnabled := e.state.AIEnabled
	state, err := NewGame(e.config, e.rng)
	if err != nil {
		// Only reachable with a config whose hands exceed the deck, which
		// validation rejects.
		panic(err)
	}
	state.AIEnabled = aiEnabled
	e.state = state
	return e.state
}

// Snapshot returns a deep copy for read-only consumers.
func (e *GameEngine) Snapshot() *GameState {
	return e.state.Clone()
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// Winner returns "player", "ai", "tie", or "" while the game continues.
func (e *GameEngine) Winner() string {
	return e.state.Winner
}

// MoveCount returns the number of accepted moves this game.
func (e *GameEngine) MoveCount() int {
	return e.state.MoveCount
}

// ApplyMove plays a card through the state machine's single mutator.
func (e *GameEngine) ApplyMove(actor, target Side, cardID string, pileIndex int, targetIndex *int) bool {
	return e.state.ApplyMove(e.config, actor, target, cardID, pileIndex, targetIndex)
}

// CanPlace is the boolean placement predicate, for pre-validating drops.
func (e *GameEngine) CanPlace(card Card, pileCards []Card, actor, target Side) bool {
	return CanPlace(card, pileCards, actor, target)
}

// ForfeitTurn passes the turn without a move.
func (e *GameEngine) ForfeitTurn(side Side, message string) {
	e.state.ForfeitTurn(side, message)
}

// SetAIEnabled toggles the computer opponent.
func (e *GameEngine) SetAIEnabled(enabled bool) {
	e.state.AIEnabled = enabled
}

// PileView projects one pile for display.
func (e *GameEngine) PileView(side Side, pileIndex int) PileView {
	return ComputePileView(e.state.PileCards(side, pileIndex))
}

// SideTotals scores all of one side's piles.
func (e *GameEngine) SideTotals(side Side) Totals {
	if side == SideAI {
		return ComputeTotals(e.state.Players.AI.Piles)
	}
	return ComputeTotals(e.state.Players.Player.Piles)
}

// GetConfig returns the current rule profile
func (e *GameEngine) GetConfig() *RulesConfig {
	return e.config
}

// SetConfig sets a new rule profile and starts a fresh game under it
func (e *GameEngine) SetConfig(cfg *RulesConfig) error {
	if err := ValidateRulesConfig(cfg); err != nil {
		return err
	}
	e.config = cfg
	state, err := NewGame(cfg, e.rng)
	if err != nil {
		return err
	}
	e.state = state
	return nil
}

// GetMoveLog returns the complete move log
func (e *GameEngine) GetMoveLog() []MoveRecord {
	return e.state.MoveLog
}

// GetLastMove returns the last accepted move, or nil if none
func (e *GameEngine) GetLastMove() *MoveRecord {
	if len(e.state.MoveLog) == 0 {
		return nil
	}
	return &e.state.MoveLog[len(e.state.MoveLog)-1]
}
