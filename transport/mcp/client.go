package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harrypdev/caravan-card-game/game/engine"
	"github.com/harrypdev/caravan-card-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Caravan Card Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Caravan Card Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Build three piles whose totals all land inside the target range (21-26 in the
classic profile) before your opponent does.

AVAILABLE TOOLS:
- game_state: Get current game state
- play_card: Place a card from a hand onto a pile - requires intent explanation
- reset_game: Fresh deal with the same rule profile
- move_log: View past moves
- set_ai: Enable or disable the computer opponent
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available rule profiles
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on play_card serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional rule profile selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Rule profile to use, e.g. classic or quickdraw (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_card",
		Description: "Place a card from your hand onto a pile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"card_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the card to play (from the hand)",
				},
				"pile_index": map[string]interface{}{
					"type":        "integer",
					"description": "Pile to place onto (0-2)",
				},
				"target": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"player", "ai"},
					"description": "Whose pile to place onto (defaults to your own). Only J/Q/K may target the opponent.",
				},
				"target_index": map[string]interface{}{
					"type":        "integer",
					"description": "Index of the in-pile card a picture card lands on (J/Q/K only)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this play (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "card_id", "pile_index"},
		},
	}, c.handlePlayCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to a fresh deal with the same rule profile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_log",
		Description: "Get the move log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_ai",
		Description: "Enable or disable the computer opponent for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"enabled": map[string]interface{}{
					"type":        "boolean",
					"description": "true to let the computer play the AI side",
				},
			},
			Required: []string{"session_id", "enabled"},
		},
	}, c.handleSetAI)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule profiles",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	cardID, _ := args["card_id"].(string)
	target, _ := args["target"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	pileIndex := 0
	if v, ok := args["pile_index"].(float64); ok {
		pileIndex = int(v)
	}

	body := map[string]interface{}{
		"actor":      string(engine.SidePlayer),
		"card_id":    cardID,
		"pile_index": pileIndex,
	}
	if target != "" {
		body["target"] = target
	}
	if v, ok := args["target_index"].(float64); ok {
		body["target_index"] = int(v)
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/play", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var log service.LogResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/log%s", sessionID, params), nil, &log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatMoveLog(&log)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSetAI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	enabled, _ := args["enabled"].(bool)

	var response struct {
		AIEnabled bool              `json:"ai_enabled"`
		State     *engine.GameState `json:"state"`
	}

	body := map[string]bool{"enabled": enabled}
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/ai", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status := "disabled"
	if response.AIEnabled {
		status = "enabled"
	}
	result := fmt.Sprintf("Computer opponent %s\n\n%s", status, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Rule Profiles:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Hand: %d cards, Target: %d-%d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.HandSize, config.TargetLow, config.TargetHigh)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Caravan Card Game - Complete Instructions

GAME OBJECTIVE:
Each side builds three piles. You win the moment ALL THREE of your pile totals
land inside the target range (21-26 in the classic profile). If both sides
qualify on the same move, the higher combined total wins; equal totals tie.

CARD VALUES:
• A = 1, number cards = face value
• J, Q, K score 0 and act as effects
• K doubles the value of the card it is attached to (stacked Kings compound)
• Removed cards (hit by a Jack) score 0

NUMBER CARDS AND ACES:
• May only be played onto YOUR OWN piles
• The first number on a pile is free
• The second number sets the pile's direction: up if higher, down if lower
• Equal to the previous number poisons the pile - no numbers can ever be
  played on it again (picture cards still work)
• Once a direction is set, every new number must follow it (Queens flip it)

PICTURE CARDS (J/Q/K):
• May be played onto EITHER side's piles, but never onto an empty opponent pile
• Must name a target card in the pile (target_index); without one on a
  non-empty pile you will be asked to pick a target
• J - removes the target card from scoring (stays visible, scores 0)
• Q - attaches to the target and flips the pile's direction
• K - attaches to the target and doubles it; the target must be a live
  (not removed) number or Ace
• Exception: a lone Q may open your own empty pile with no target

TURNS:
• Each accepted play draws a replacement card (while the deck lasts) and ends
  your turn
• When the computer opponent is enabled it plays the AI side on a short,
  human-feeling delay; if it has no legal move it forfeits the turn

STRATEGY HINTS FOR AI AGENTS:
• Watch both direction and range: a pile at 20 going up wants a small card
• Jacks are surgical - remove the opponent's big cards or your own overshoot
• Kings on your own 10s and Queens to reverse a doomed direction are the
  strongest swings
• A poisoned pile (equal numbers) is dead weight; stop investing in it

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Sessions maintain independent state and rule profile
- Use session-specific tools for multi-game management`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Turn: %s | Moves: %d | Deck: %d cards | Opponent: %s\n\n",
		state.Turn, state.MoveCount, len(state.Deck), onOff(state.AIEnabled)))

	result.WriteString("AI piles:\n")
	result.WriteString(formatPiles(state.Players.AI.Piles))
	result.WriteString(fmt.Sprintf("AI hand: %d cards\n\n", len(state.Players.AI.Hand)))

	result.WriteString("Your piles:\n")
	result.WriteString(formatPiles(state.Players.Player.Piles))
	result.WriteString("Your hand: ")
	result.WriteString(formatHand(state.Players.Player.Hand))
	result.WriteString("\n")

	if state.GameOver {
		switch state.Winner {
		case engine.WinnerPlayer:
			result.WriteString("\nGame over: you win")
		case engine.WinnerAI:
			result.WriteString("\nGame over: opponent wins")
		case engine.WinnerTie:
			result.WriteString("\nGame over: tie")
		default:
			result.WriteString("\nGame over")
		}
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatPiles(piles []engine.Pile) string {
	var b strings.Builder
	for i, pile := range piles {
		view := engine.ComputePileView(pile.Cards)
		b.WriteString(fmt.Sprintf("  [%d] total=%-3d dir=%-7s ", i, view.Total, view.Direction))
		if len(pile.Cards) == 0 {
			b.WriteString("(empty)")
		} else {
			parts := make([]string, 0, len(pile.Cards))
			for _, card := range pile.Cards {
				parts = append(parts, formatCard(card))
			}
			b.WriteString(strings.Join(parts, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatHand(hand []engine.Card) string {
	if len(hand) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(hand))
	for _, card := range hand {
		parts = append(parts, fmt.Sprintf("%s(id=%s)", formatCard(card), card.ID))
	}
	return strings.Join(parts, " ")
}

func formatCard(card engine.Card) string {
	s := string(card.Rank) + suitSymbol(card.Suit)
	if card.Removed {
		s += "(removed)"
	}
	return s
}

func suitSymbol(suit engine.Suit) string {
	switch suit {
	case engine.Hearts:
		return "♥"
	case engine.Diamonds:
		return "♦"
	case engine.Clubs:
		return "♣"
	case engine.Spades:
		return "♠"
	}
	return "?"
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Play accepted\n"
	} else {
		response = "✗ Play rejected\n"
	}

	if result.Message != "" {
		response += fmt.Sprintf("Message: %s\n", result.Message)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatMoveLog(log *service.LogResponse) string {
	result := fmt.Sprintf("Move Log (Page %d/%d) — Total: %d\n\n",
		log.Page, log.TotalPages, log.TotalMoves)

	for _, move := range log.Moves {
		targetIdx := "-"
		if move.TargetIndex != nil {
			targetIdx = fmt.Sprintf("%d", *move.TargetIndex)
		}
		result += fmt.Sprintf("%d. %s played %s onto %s pile %d (target %s)\n",
			move.Sequence+1, move.Actor, move.CardRank, move.Target, move.PileIndex, targetIdx)
	}

	return result
}
