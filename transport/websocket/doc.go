// Package websocket provides WebSocket transport for the caravan card game.
//
// The websocket package implements:
//   - Real-time bidirectional communication
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting on changes
//   - Connection lifecycle management
//   - Inbound play message routing
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded:
//   - Incoming: {type: "play", actor: "player", card_id: "h7", pile_index: 0}
//   - Outgoing: {session_id, event: "state_update", game_state: {...}}
//
// Inbound messages that do not parse as a play are ignored. The connection
// stays pinged even for read-only clients.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
// The game service pushes every state change, including moves the computer
// opponent plays on its own timer, through the hub's BroadcastToSession.
//
// Usage:
//
//	hub := websocket.NewHub()
//	hub.SetPlayHandler(playFn)
//	go hub.Run()
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and send messages simultaneously
// without blocking each other.
package websocket
