// Package service provides the business logic layer for the caravan card
// game.
//
// The service package implements:
//   - Multi-session game management
//   - Rule profile management and loading
//   - Play processing and turn orchestration
//   - The computer opponent's think timer
//   - Session lifecycle management
//   - Move log retrieval with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages rule profile loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, rule profile management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state plus a scheduler for the computer opponent,
// so an opponent move in one session never blocks another.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play a card
//	result, err := gameService.Play(ctx, sessionInfo.ID, service.PlayRequest{
//		Actor:     engine.SidePlayer,
//		Target:    engine.SidePlayer,
//		CardID:    cardID,
//		PileIndex: 0,
//	})
//
// Session Management:
//
// Sessions are identified by unique IDs and maintain independent game state.
// Multiple sessions can run concurrently with different rule profiles.
// Sessions track creation time, last access time, and the full move log for
// analytics and debugging.
package service
