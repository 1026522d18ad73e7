package service

import (
	"time"

	"github.com/harrypdev/caravan-card-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	GameState      *engine.GameState   `json:"game_state"`
	GameConfig     *engine.RulesConfig `json:"game_config"`
}

// PlayRequest names one placement attempt: the actor plays the card with
// CardID onto Target's pile PileIndex. TargetIndex picks the in-pile card a
// picture card lands on and is omitted for plain numeric placement.
type PlayRequest struct {
	Actor       engine.Side `json:"actor"`
	Target      engine.Side `json:"target"`
	CardID      string      `json:"card_id"`
	PileIndex   int         `json:"pile_index"`
	TargetIndex *int        `json:"target_index,omitempty"`
}

// MoveResult contains the result of a play operation. Success false is a
// rejected move, not an error: Message carries the rule text and the state is
// unchanged apart from it.
type MoveResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "play", "reset", "forfeit", "game_over", "ai_armed"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LogOptions configures move log retrieval
type LogOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// LogResponse contains a paginated move log
type LogResponse struct {
	Moves       []engine.MoveRecord `json:"moves"`
	TotalMoves  int                 `json:"total_moves"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// ConfigInfo provides information about a rule profile
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	HandSize    int    `json:"hand_size"`
	TargetLow   int    `json:"target_low"`
	TargetHigh  int    `json:"target_high"`
}
