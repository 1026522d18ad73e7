// Package api provides the HTTP REST surface for the caravan card game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Rule profile listing, loading and saving
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/unified - Multi-session view
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/play - Place a card
//   - POST /api/sessions/{id}/reset - Fresh deal with the same profile
//   - POST /api/sessions/{id}/ai - Enable or disable the computer opponent
//   - GET /api/sessions/{id}/log - Move log with pagination
//
// Configuration:
//   - GET /api/configs - List available rule profiles
//   - GET /api/configs/{name} - Get a single profile
//   - POST /api/configs - Save a new profile
//
// Play requests are sent as POST with JSON body:
//
//	{
//	  "actor": "player|ai",
//	  "target": "player|ai",        // defaults to actor
//	  "card_id": "h7",
//	  "pile_index": 0,
//	  "target_index": 2             // picture cards only
//	}
//
// A rejected placement is not an HTTP error: the response carries
// success=false and the rule message explaining the rejection.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
