package service

import (
	"context"
	"time"

	"github.com/harrypdev/caravan-card-game/game/ai"
	"github.com/harrypdev/caravan-card-game/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Play(ctx context.Context, sessionID string, req PlayRequest) (*MoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)
	SetAIEnabled(ctx context.Context, sessionID string, enabled bool) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.RulesConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.RulesConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.RulesConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.RulesConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles rule profile loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.RulesConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.RulesConfig
	SaveConfig(name string, config *engine.RulesConfig) error
}

// Notifier receives the fresh state after any mutation the service performs,
// including moves the computer opponent plays on its own timer. Transports
// use it to push updates to connected clients.
type Notifier func(sessionID string, state *engine.GameState)

// Session represents an active game session. Opponent is armed lazily by the
// service the first time the session needs a computer move.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.RulesConfig
	Opponent       *ai.Scheduler
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
