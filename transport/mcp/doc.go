// Package mcp provides a Model Context Protocol surface for the caravan card game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with pile totals and directions
//   - play_card: Place a card from a hand onto a pile
//   - reset_game: Fresh deal with the same rule profile
//   - move_log: Retrieve the move log with pagination
//   - set_ai: Enable or disable the computer opponent
//   - create_session: Create new game session with profile selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available rule profiles
//   - game_instructions: Full rules and strategy notes
//
// Architecture:
//
// The MCP layer is a thin client over the REST API rather than a second
// service wiring. Every tool call is translated to an HTTP request against
// the running server, so MCP agents and browser clients always observe the
// same session state.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: Streamable HTTP endpoint for remote MCP integration
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play full games against the built-in opponent
//   - Manage multiple concurrent game sessions
//   - Inspect the move log and reason about pile state
package mcp
