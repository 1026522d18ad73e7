package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cardWidth    = 52
	cardHeight   = 72
	pileWidth    = 180
	screenWidth  = 900
	screenHeight = 700
	baseURL      = "http://localhost:8080"
)

// ScreenType represents different screens in the app
type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenTable
)

// Card represents a single card in the state from the server
type Card struct {
	ID      string `json:"id"`
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	Color   string `json:"color"`
	Removed bool   `json:"removed,omitempty"`
}

// Pile represents one pile of cards
type Pile struct {
	Cards []Card `json:"cards"`
}

// PlayerState represents one side of the table
type PlayerState struct {
	Hand  []Card `json:"hand"`
	Piles []Pile `json:"piles"`
}

// GameState represents the state from the caravan game server
type GameState struct {
	Deck    []Card `json:"deck"`
	Players struct {
		Player PlayerState `json:"player"`
		AI     PlayerState `json:"ai"`
	} `json:"players"`
	Turn       string `json:"turn"`
	AIEnabled  bool   `json:"ai_enabled"`
	GameOver   bool   `json:"game_over"`
	Winner     string `json:"winner,omitempty"`
	Message    string `json:"message,omitempty"`
	MoveCount  int    `json:"move_count"`
	ConfigName string `json:"config_name"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string     `json:"session_id"`
	GameState *GameState `json:"game_state,omitempty"`
	Event     string     `json:"event,omitempty"`
}

// SessionListItem represents a session from the server
type SessionListItem struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	CreatedAt  string     `json:"created_at"`
	GameState  *GameState `json:"game_state"`
}

// ConfigListItem represents a rule profile
type ConfigListItem struct {
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HandSize    int    `json:"hand_size"`
	TargetLow   int    `json:"target_low"`
	TargetHigh  int    `json:"target_high"`
}

// Game represents the desktop table client
type Game struct {
	sessionID  string
	state      *GameState
	wsConn     *websocket.Conn
	lastUpdate time.Time
	stateMutex sync.RWMutex

	currentScreen ScreenType
	welcomeScreen *WelcomeScreen

	// Target window for the active session, looked up from the profile list
	targetLow  int
	targetHigh int

	selectedCard int    // index into the player's hand
	statusMsg    string // last play result or server message
}

// WelcomeScreen manages the welcome screen state
type WelcomeScreen struct {
	availableSessions []SessionListItem
	availableConfigs  []ConfigListItem
	cursorPos         int
	loading           bool
	errorMsg          string
	newSessionConfig  string // selected config ID for new session
}

// NewGame creates a new game instance
func NewGame(sessionID string) *Game {
	g := &Game{
		currentScreen: ScreenWelcome,
		targetLow:     21,
		targetHigh:    26,
		welcomeScreen: &WelcomeScreen{
			availableSessions: make([]SessionListItem, 0),
			availableConfigs:  make([]ConfigListItem, 0),
		},
	}

	g.loadWelcomeData()

	// If a session ID was provided, skip the welcome screen
	if sessionID != "" {
		g.joinSession(sessionID)
		g.currentScreen = ScreenTable
	}

	return g
}

// joinSession attaches to an existing session and starts live updates
func (g *Game) joinSession(sessionID string) {
	g.sessionID = sessionID
	g.state = nil

	if err := g.connectWebSocket(); err != nil {
		log.Printf("Failed to connect WebSocket for %s: %v (falling back to polling)", sessionID, err)
	} else {
		go g.listenWebSocket()
	}

	if err := g.fetchGameState(); err != nil {
		log.Printf("Failed to fetch state for %s: %v", sessionID, err)
	}

	g.lookupTargetWindow()
}

// lookupTargetWindow resolves the session's profile to its target window
func (g *Game) lookupTargetWindow() {
	g.stateMutex.RLock()
	configName := ""
	if g.state != nil {
		configName = g.state.ConfigName
	}
	g.stateMutex.RUnlock()

	for _, cfg := range g.welcomeScreen.availableConfigs {
		if cfg.Name == configName || cfg.ConfigID == configName {
			g.targetLow = cfg.TargetLow
			g.targetHigh = cfg.TargetHigh
			return
		}
	}
}

// connectWebSocket establishes the WebSocket connection
func (g *Game) connectWebSocket() error {
	if g.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", g.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	g.wsConn = conn
	log.Printf("WebSocket connected for session %s", g.sessionID)
	return nil
}

// listenWebSocket listens for WebSocket updates
func (g *Game) listenWebSocket() {
	defer func() {
		if g.wsConn != nil {
			g.wsConn.Close()
		}
	}()

	for {
		_, message, err := g.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error for %s: %v", g.sessionID, err)
			return
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.GameState == nil {
			continue
		}

		g.stateMutex.Lock()
		g.state = wsMsg.GameState
		g.lastUpdate = time.Now()
		g.clampSelection()
		g.stateMutex.Unlock()
	}
}

// fetchGameState gets the current game state from the server
func (g *Game) fetchGameState() error {
	if g.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	resp, err := http.Get(fmt.Sprintf("%s/api/sessions/%s/state", baseURL, g.sessionID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	g.stateMutex.Lock()
	g.state = &state
	g.lastUpdate = time.Now()
	g.clampSelection()
	g.stateMutex.Unlock()

	return nil
}

// clampSelection keeps the hand cursor inside the current hand. Caller holds
// stateMutex.
func (g *Game) clampSelection() {
	if g.state == nil {
		g.selectedCard = 0
		return
	}
	handLen := len(g.state.Players.Player.Hand)
	if handLen == 0 {
		g.selectedCard = 0
	} else if g.selectedCard >= handLen {
		g.selectedCard = handLen - 1
	}
}

// loadWelcomeData fetches available sessions and profiles from the server
func (g *Game) loadWelcomeData() {
	ws := g.welcomeScreen
	ws.loading = true
	ws.errorMsg = ""

	resp, err := http.Get(fmt.Sprintf("%s/api/sessions", baseURL))
	if err != nil {
		ws.errorMsg = fmt.Sprintf("Error loading sessions: %v", err)
		ws.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sessionsResp struct {
		Sessions []SessionListItem `json:"sessions"`
	}
	if err := json.Unmarshal(body, &sessionsResp); err == nil {
		ws.availableSessions = sessionsResp.Sessions
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/configs", baseURL))
	if err != nil {
		ws.errorMsg = fmt.Sprintf("Error loading profiles: %v", err)
		ws.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ = io.ReadAll(resp.Body)
	var configs []ConfigListItem
	if err := json.Unmarshal(body, &configs); err == nil {
		ws.availableConfigs = configs
	}

	ws.loading = false
}

// createNewSessionFromWelcome creates a new session with the selected profile
func (g *Game) createNewSessionFromWelcome() error {
	configID := g.welcomeScreen.newSessionConfig

	payload := "{}"
	if configID != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configID)
	}

	resp, err := http.Post(fmt.Sprintf("%s/api/sessions", baseURL), "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}

	log.Printf("Created new session: %s (profile: %s)", result.ID, configID)

	// Reload session list
	g.loadWelcomeData()
	return nil
}

// sendPlay posts a play for the selected hand card onto the given pile.
// Picture cards are aimed at the topmost live card of the pile.
func (g *Game) sendPlay(targetSide string, pileIndex int) {
	g.stateMutex.RLock()
	state := g.state
	selected := g.selectedCard
	g.stateMutex.RUnlock()

	if state == nil || selected >= len(state.Players.Player.Hand) {
		return
	}
	card := state.Players.Player.Hand[selected]

	payload := map[string]interface{}{
		"actor":      "player",
		"target":     targetSide,
		"card_id":    card.ID,
		"pile_index": pileIndex,
	}

	if card.Rank == "J" || card.Rank == "Q" || card.Rank == "K" {
		var piles []Pile
		if targetSide == "ai" {
			piles = state.Players.AI.Piles
		} else {
			piles = state.Players.Player.Piles
		}
		if pileIndex >= len(piles) {
			return
		}
		idx := topmostLiveIndex(piles[pileIndex])
		if idx < 0 {
			g.statusMsg = "That pile has no card to target"
			return
		}
		payload["target_index"] = idx
	}

	body, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("%s/api/sessions/%s/play", baseURL, g.sessionID),
		"application/json", strings.NewReader(string(body)))
	if err != nil {
		g.statusMsg = fmt.Sprintf("Play failed: %v", err)
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	var result struct {
		Success   bool       `json:"success"`
		GameState *GameState `json:"game_state"`
		Message   string     `json:"message"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		g.statusMsg = fmt.Sprintf("Bad play response: %v", err)
		return
	}

	g.statusMsg = result.Message
	if result.GameState != nil {
		g.stateMutex.Lock()
		g.state = result.GameState
		g.lastUpdate = time.Now()
		g.clampSelection()
		g.stateMutex.Unlock()
	}
}

// sendReset resets the active session
func (g *Game) sendReset() {
	resp, err := http.Post(fmt.Sprintf("%s/api/sessions/%s/reset", baseURL, g.sessionID),
		"application/json", strings.NewReader("{}"))
	if err != nil {
		g.statusMsg = fmt.Sprintf("Reset failed: %v", err)
		return
	}
	defer resp.Body.Close()
	g.statusMsg = "Game reset"
	g.fetchGameState()
}

// toggleAI flips the autonomous opponent on or off
func (g *Game) toggleAI() {
	g.stateMutex.RLock()
	enabled := g.state != nil && g.state.AIEnabled
	g.stateMutex.RUnlock()

	payload := fmt.Sprintf(`{"enabled":%t}`, !enabled)
	resp, err := http.Post(fmt.Sprintf("%s/api/sessions/%s/ai", baseURL, g.sessionID),
		"application/json", strings.NewReader(payload))
	if err != nil {
		g.statusMsg = fmt.Sprintf("AI toggle failed: %v", err)
		return
	}
	defer resp.Body.Close()
	g.fetchGameState()
}

// topmostLiveIndex returns the index of the last card in the pile that has
// not been removed, or -1 for an empty pile.
func topmostLiveIndex(pile Pile) int {
	for i := len(pile.Cards) - 1; i >= 0; i-- {
		if !pile.Cards[i].Removed {
			return i
		}
	}
	return -1
}

// Update updates game logic
func (g *Game) Update() error {
	switch g.currentScreen {
	case ScreenWelcome:
		return g.updateWelcomeScreen()
	case ScreenTable:
		return g.updateTableScreen()
	}
	return nil
}

// updateWelcomeScreen handles welcome screen input
func (g *Game) updateWelcomeScreen() error {
	ws := g.welcomeScreen

	// Refresh data with F5
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.loadWelcomeData()
	}

	// Navigate with arrow keys
	totalItems := len(ws.availableSessions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ws.cursorPos++
		if ws.cursorPos >= totalItems {
			ws.cursorPos = totalItems - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ws.cursorPos--
		if ws.cursorPos < 0 {
			ws.cursorPos = 0
		}
	}

	// Cycle through profiles with Tab
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if len(ws.availableConfigs) > 0 {
			currentIdx := -1
			for i, cfg := range ws.availableConfigs {
				if cfg.ConfigID == ws.newSessionConfig {
					currentIdx = i
					break
				}
			}
			currentIdx++
			if currentIdx >= len(ws.availableConfigs) {
				ws.newSessionConfig = "" // No profile (default)
			} else {
				ws.newSessionConfig = ws.availableConfigs[currentIdx].ConfigID
			}
		}
	}

	// Create new session with N
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.createNewSessionFromWelcome(); err != nil {
			ws.errorMsg = fmt.Sprintf("Failed to create session: %v", err)
		}
	}

	// Join highlighted session with Enter
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ws.cursorPos < len(ws.availableSessions) {
			g.joinSession(ws.availableSessions[ws.cursorPos].ID)
			g.currentScreen = ScreenTable
		} else {
			ws.errorMsg = "No session selected"
		}
	}

	// Back to table with Escape (if a session is joined)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.sessionID != "" {
		g.currentScreen = ScreenTable
	}

	return nil
}

// updateTableScreen handles table screen input
func (g *Game) updateTableScreen() error {
	// Poll if the WebSocket is not connected
	if g.wsConn == nil {
		g.stateMutex.RLock()
		stale := g.state == nil || time.Since(g.lastUpdate) > 500*time.Millisecond
		g.stateMutex.RUnlock()
		if stale {
			if err := g.fetchGameState(); err != nil {
				log.Printf("Error fetching state for %s: %v", g.sessionID, err)
			}
		}
	}

	// Hand cursor
	g.stateMutex.Lock()
	handLen := 0
	if g.state != nil {
		handLen = len(g.state.Players.Player.Hand)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && g.selectedCard < handLen-1 {
		g.selectedCard++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && g.selectedCard > 0 {
		g.selectedCard--
	}
	g.stateMutex.Unlock()

	// 1/2/3 plays onto own piles; Shift+1/2/3 targets the opponent's piles
	shiftHeld := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i := ebiten.Key1; i <= ebiten.Key3; i++ {
		if inpututil.IsKeyJustPressed(i) {
			pileIndex := int(i - ebiten.Key1)
			if shiftHeld {
				g.sendPlay("ai", pileIndex)
			} else {
				g.sendPlay("player", pileIndex)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sendReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.toggleAI()
	}

	// Return to welcome screen with Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.currentScreen = ScreenWelcome
		g.loadWelcomeData()
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.currentScreen {
	case ScreenWelcome:
		g.drawWelcomeScreen(screen)
	case ScreenTable:
		g.drawTableScreen(screen)
	}
}

// drawWelcomeScreen renders the welcome/session selection screen
func (g *Game) drawWelcomeScreen(screen *ebiten.Image) {
	ws := g.welcomeScreen

	screen.Fill(color.RGBA{20, 20, 30, 255})

	y := 20
	ebitenutil.DebugPrintAt(screen, "=== CARAVAN - SESSION SELECT ===", 300, y)
	y += 30

	if ws.loading {
		ebitenutil.DebugPrintAt(screen, "Loading sessions...", 20, y)
		return
	}

	if ws.errorMsg != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ERROR: %s", ws.errorMsg), 20, y)
		y += 20
	}

	ebitenutil.DebugPrintAt(screen, "Available Sessions:", 20, y)
	y += 20

	if len(ws.availableSessions) == 0 {
		ebitenutil.DebugPrintAt(screen, "  No sessions found. Press N to create one.", 20, y)
		y += 20
	} else {
		for i, session := range ws.availableSessions {
			cursor := "  "
			if i == ws.cursorPos {
				cursor = "> "
			}

			status := ""
			moves := 0
			if session.GameState != nil {
				moves = session.GameState.MoveCount
				if session.GameState.GameOver {
					status = fmt.Sprintf(" OVER (%s)", session.GameState.Winner)
				}
			}

			line := fmt.Sprintf("%s%s | %s | Moves:%d%s",
				cursor, session.ID, session.ConfigName, moves, status)

			ebitenutil.DebugPrintAt(screen, line, 20, y)
			y += 15
		}
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	ebitenutil.DebugPrintAt(screen, "Create New Session:", 20, y)
	y += 20

	configDisplay := "default"
	if ws.newSessionConfig != "" {
		configDisplay = ws.newSessionConfig
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  Selected Profile: %s", configDisplay), 20, y)
	y += 15

	ebitenutil.DebugPrintAt(screen, "  Available Profiles:", 20, y)
	y += 15
	for _, cfg := range ws.availableConfigs {
		marker := "  "
		if cfg.ConfigID == ws.newSessionConfig {
			marker = "→ "
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("    %s%s - %s (hand %d, window %d-%d)",
				marker, cfg.Name, cfg.Description, cfg.HandSize, cfg.TargetLow, cfg.TargetHigh), 20, y)
		y += 15
	}

	y += 30
	ebitenutil.DebugPrintAt(screen, "CONTROLS:", 20, y)
	y += 20
	ebitenutil.DebugPrintAt(screen, "  ↑/↓      - Navigate sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  TAB      - Cycle profile for new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  N        - Create new session with selected profile", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  ENTER    - Join highlighted session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  F5       - Refresh session list", 20, y)
	y += 15
	if g.sessionID != "" {
		ebitenutil.DebugPrintAt(screen, "  ESC      - Back to table", 20, y)
	}
}

// drawTableScreen renders the card table
func (g *Game) drawTableScreen(screen *ebiten.Image) {
	g.stateMutex.RLock()
	defer g.stateMutex.RUnlock()

	screen.Fill(color.RGBA{18, 64, 38, 255}) // felt

	if g.state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}
	state := g.state

	// Header
	connStatus := "POLL"
	if g.wsConn != nil {
		connStatus = "WS"
	}
	header := fmt.Sprintf("%s [%s] | %s | Turn: %s | Moves: %d | Deck: %d | Window: %d-%d",
		g.sessionID, connStatus, state.ConfigName, state.Turn,
		state.MoveCount, len(state.Deck), g.targetLow, g.targetHigh)
	ebitenutil.DebugPrintAt(screen, header, 10, 5)

	if state.GameOver {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(">>> GAME OVER - winner: %s <<<", state.Winner), 330, 25)
	} else if state.Message != "" {
		ebitenutil.DebugPrintAt(screen, state.Message, 10, 25)
	}

	// Opponent piles on top, ours below
	g.drawSide(screen, "OPPONENT", state.Players.AI, 50, false)
	g.drawSide(screen, "YOU", state.Players.Player, 330, true)

	// Hand
	handY := 600
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HAND (%d):", len(state.Players.Player.Hand)), 10, handY-18)
	for i, card := range state.Players.Player.Hand {
		x := 10 + i*(cardWidth+8)
		g.drawCard(screen, card, x, handY, i == g.selectedCard)
	}

	if g.statusMsg != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMsg, 10, screenHeight-38)
	}
	ebitenutil.DebugPrintAt(screen,
		"←/→: Select card | 1-3: Play on your pile | SHIFT+1-3: Play on opponent pile | R: Reset | A: Toggle AI | ESC: Menu",
		10, screenHeight-20)
}

// drawSide renders one side's three piles
func (g *Game) drawSide(screen *ebiten.Image, label string, side PlayerState, offsetY int, mine bool) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (hand: %d)", label, len(side.Hand)), 10, offsetY-18)

	for i, pile := range side.Piles {
		x := 10 + i*(pileWidth+40)

		total := pileTotal(pile)
		inWindow := total >= g.targetLow && total <= g.targetHigh

		// Pile frame: highlight piles inside the window
		frame := color.RGBA{40, 90, 60, 255}
		if inWindow {
			frame = color.RGBA{170, 140, 30, 255}
		} else if total > g.targetHigh {
			frame = color.RGBA{140, 40, 40, 255}
		}
		ebitenutil.DrawRect(screen, float64(x-4), float64(offsetY-4),
			pileWidth+8, cardHeight+48, frame)
		ebitenutil.DrawRect(screen, float64(x), float64(offsetY),
			pileWidth, cardHeight+40, color.RGBA{24, 72, 44, 255})

		marker := ""
		if inWindow {
			marker = " ✓"
		} else if total > g.targetHigh {
			marker = " !"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d] total %d%s", i+1, total, marker), x, offsetY)

		// Cards fan out with a small horizontal offset
		for j, card := range pile.Cards {
			cx := x + j*16
			if cx > x+pileWidth-cardWidth {
				cx = x + pileWidth - cardWidth
			}
			g.drawCard(screen, card, cx, offsetY+18, false)
		}
	}
}

// drawCard renders a single card
func (g *Game) drawCard(screen *ebiten.Image, card Card, x, y int, selected bool) {
	bg := color.RGBA{45, 45, 55, 255}
	if card.Color == "red" {
		bg = color.RGBA{120, 35, 35, 255}
	}
	if card.Removed {
		bg = color.RGBA{60, 60, 60, 180}
	}

	if selected {
		ebitenutil.DrawRect(screen, float64(x-3), float64(y-3),
			cardWidth+6, cardHeight+6, color.RGBA{240, 220, 90, 255})
	}
	ebitenutil.DrawRect(screen, float64(x), float64(y), cardWidth, cardHeight, bg)

	label := card.Rank + suitLetter(card.Suit)
	if card.Removed {
		label += "x"
	}
	ebitenutil.DebugPrintAt(screen, label, x+6, y+6)
}

func suitLetter(suit string) string {
	switch suit {
	case "hearts":
		return "h"
	case "diamonds":
		return "d"
	case "clubs":
		return "c"
	case "spades":
		return "s"
	default:
		return "?"
	}
}

// pileTotal mirrors the server's scoring for display: live number cards count
// face value and each live King doubles the most recent number beneath it.
func pileTotal(pile Pile) int {
	total := 0
	lastContribution := 0
	for _, card := range pile.Cards {
		if card.Removed {
			continue
		}
		v := rankValue(card.Rank)
		if v > 0 {
			total += v
			lastContribution = v
		} else if card.Rank == "K" && lastContribution > 0 {
			total += lastContribution
			lastContribution *= 2
		}
	}
	return total
}

func rankValue(rank string) int {
	switch rank {
	case "A":
		return 1
	case "J", "Q", "K":
		return 0
	default:
		v := 0
		fmt.Sscanf(rank, "%d", &v)
		return v
	}
}

// Layout returns the game screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	sessionID := ""
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	}

	game := NewGame(sessionID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Caravan - Desktop Table Client")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
