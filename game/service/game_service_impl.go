package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/harrypdev/caravan-card-game/game/ai"
	"github.com/harrypdev/caravan-card-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	notify   Notifier
	rng      *rand.Rand
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGameServiceWithNotifier creates a game service that pushes every state
// change, including autonomous opponent moves, to the given notifier.
func NewGameServiceWithNotifier(sessions SessionManager, configs ConfigManager, notify Notifier) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		notify:   notify,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.RulesConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate the ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState().Clone(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	s.resumeOpponent(session)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState().Clone(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState().Clone(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err == nil && sess.Opponent != nil {
		sess.Opponent.Invalidate()
	}
	return s.sessions.Delete(sessionID)
}

// Play executes one placement for a session. An accepted human move arms the
// opponent's think timer when the computer is enabled and has the next turn.
func (s *gameServiceImpl) Play(ctx context.Context, sessionID string, req PlayRequest) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	success := sess.Engine.ApplyMove(req.Actor, req.Target, req.CardID, req.PileIndex, req.TargetIndex)
	state := sess.Engine.GetState()

	// The result leaves the lock with the caller, so it carries a snapshot
	// rather than the live state the think timer mutates.
	result := &MoveResult{
		Success:   success,
		GameState: state.Clone(),
		Message:   state.Message,
	}

	if success {
		result.Events = append(result.Events, GameEvent{
			Type:      "play",
			Message:   fmt.Sprintf("%s played %s onto %s pile %d", req.Actor, lastPlayedRank(state), req.Target, req.PileIndex),
			Timestamp: time.Now(),
		})
		if state.GameOver {
			result.Events = append(result.Events, GameEvent{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}
		if s.armOpponent(sess) {
			result.Events = append(result.Events, GameEvent{
				Type:      "ai_armed",
				Message:   "Opponent is thinking",
				Timestamp: time.Now(),
			})
		}
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after play: %v", sessionID, err)
	}
	s.push(sessionID, state)

	return result, nil
}

// lastPlayedRank recovers the rank of the card that was just played; once the
// card left the hand it lives in the move log.
func lastPlayedRank(state *engine.GameState) engine.Rank {
	if n := len(state.MoveLog); n > 0 {
		return state.MoveLog[n-1].CardRank
	}
	return ""
}

// Reset resets a game session to a fresh deal
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	if sess.Opponent != nil {
		// Any timer armed for the old game must never act on the new one.
		sess.Opponent.Invalidate()
	}
	state := sess.Engine.Reset()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}
	s.push(sessionID, state)

	return state.Clone(), nil
}

// SetAIEnabled toggles the computer opponent for a session. Enabling it while
// the computer already has the turn arms the think timer immediately.
func (s *gameServiceImpl) SetAIEnabled(ctx context.Context, sessionID string, enabled bool) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Engine.SetAIEnabled(enabled)
	if enabled {
		s.armOpponent(sess)
	} else if sess.Opponent != nil {
		sess.Opponent.Invalidate()
	}

	state := sess.Engine.GetState()
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after AI toggle: %v", sessionID, err)
	}
	s.push(sessionID, state)

	return state.Clone(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	s.resumeOpponent(sess)
	return sess.Engine.GetState().Clone(), nil
}

// GetMoveLog returns the paginated move log
func (s *gameServiceImpl) GetMoveLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	moveLog := sess.Engine.GetMoveLog()
	total := len(moveLog)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveRecord
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, moveLog[i])
		}
	} else if start < total {
		moves = moveLog[start:end]
	}
	if moves == nil {
		moves = []engine.MoveRecord{}
	}

	return &LogResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available rule profiles
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific rule profile
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.RulesConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a rule profile to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.RulesConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// armOpponent schedules the computer's move when the computer is enabled, the
// game is live, and the computer has the turn. Returns whether a timer was
// armed. Caller holds s.mu.
func (s *gameServiceImpl) armOpponent(sess *Session) bool {
	state := sess.Engine.GetState()
	if state.GameOver || !state.AIEnabled || state.Turn != engine.SideAI {
		return false
	}

	if sess.Opponent == nil {
		sessionID := sess.ID
		sess.Opponent = ai.NewScheduler(func(gen uint64, expectedMoves int) {
			s.fireOpponentMove(sessionID, gen, expectedMoves)
		})
	}
	sess.Opponent.Schedule(sess.Config, state.MoveCount)
	return true
}

// resumeOpponent re-arms the think timer for a session restored from disk on
// the computer's turn. Restored sessions carry no scheduler, so this arms at
// most once per restore and never disturbs a timer that is already pending.
// Caller holds s.mu.
func (s *gameServiceImpl) resumeOpponent(sess *Session) {
	if sess.Opponent == nil {
		s.armOpponent(sess)
	}
}

// fireOpponentMove runs on the think-timer goroutine. It re-validates the
// generation and the game situation before playing, so timers armed for a
// game that has since been reset, toggled, or advanced fall through silently.
func (s *gameServiceImpl) fireOpponentMove(sessionID string, gen uint64, expectedMoves int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return
	}
	if sess.Opponent == nil || gen != sess.Opponent.Current() {
		return
	}
	state := sess.Engine.GetState()
	if state.GameOver || !state.AIEnabled || state.Turn != engine.SideAI || state.MoveCount != expectedMoves {
		return
	}

	candidates := ai.Enumerate(state)
	if pick, ok := ai.Pick(candidates, s.rng); ok {
		if !sess.Engine.ApplyMove(engine.SideAI, pick.Target, pick.CardID, pick.PileIndex, pick.TargetIndex) {
			log.Printf("Warning: opponent candidate rejected in session %s: %q", sessionID, sess.Engine.GetState().Message)
			return
		}
	} else {
		sess.Engine.ForfeitTurn(engine.SideAI, sess.Config.Messages.OpponentSkipped)
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after opponent move: %v", sessionID, err)
	}
	s.push(sessionID, sess.Engine.GetState())
}

// push fans the fresh state out to the notifier, if one is installed. Caller
// holds s.mu; the notifier gets a snapshot so it can serialize without racing
// the next mutation.
func (s *gameServiceImpl) push(sessionID string, state *engine.GameState) {
	if s.notify == nil {
		return
	}
	snapshot := state.Clone()
	go s.notify(sessionID, snapshot)
}
