package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Card struct {
	ID      string `json:"id"`
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	Color   string `json:"color"`
	Removed bool   `json:"removed,omitempty"`
}

type Pile struct {
	Cards []Card `json:"cards"`
}

type PlayerState struct {
	Hand  []Card `json:"hand"`
	Piles []Pile `json:"piles"`
}

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

type RulesConfig struct {
	Name       string `json:"name"`
	HandSize   int    `json:"hand_size"`
	TargetLow  int    `json:"target_low"`
	TargetHigh int    `json:"target_high"`
}

type SessionResponse struct {
	ID         string       `json:"id"`
	ConfigName string       `json:"config_name"`
	GameState  *GameState   `json:"game_state"`
	GameConfig *RulesConfig `json:"game_config"`
}

type PlayRequest struct {
	Actor       string `json:"actor"`
	Target      string `json:"target"`
	CardID      string `json:"card_id"`
	PileIndex   int    `json:"pile_index"`
	TargetIndex *int   `json:"target_index,omitempty"`
}

type MoveResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"game_state"`
	Message   string     `json:"message"`
}

type ResetResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*SessionResponse, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return &session, nil
}

func (c *Client) GetSession() (*SessionResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	return &session, nil
}

func (c *Client) GetState() (*GameState, error) {
	session, err := c.GetSession()
	if err != nil {
		return nil, err
	}
	return session.GameState, nil
}

func (c *Client) Play(req *PlayRequest) (*MoveResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal play: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/play", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute play: %w", err)
	}
	defer resp.Body.Close()

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, fmt.Errorf("parse play response: %w", err)
	}

	return &moveResp, nil
}

func (c *Client) Reset() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

// waitForTurn polls the server until it is the player's turn again or the
// game ends. The opponent moves asynchronously after a think delay.
func (c *Client) waitForTurn(state *GameState) (*GameState, error) {
	deadline := time.Now().Add(10 * time.Second)
	for state.Turn != "player" && !state.GameOver {
		if time.Now().After(deadline) {
			return state, fmt.Errorf("timed out waiting for player turn")
		}
		time.Sleep(100 * time.Millisecond)

		fresh, err := c.GetState()
		if err != nil {
			return state, err
		}
		state = fresh
	}
	return state, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configID := flag.String("config", "", "Rule profile ID (classic, quickdraw)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	maxMoves := flag.Int("max-moves", 200, "Maximum plays per attempt")
	maxAttempts := flag.Int("max-attempts", 100, "Maximum attempts before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between plays in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	var session *SessionResponse
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		// Use explicitly provided session
		savedSessionID = *continueSession
	} else {
		// Try to load saved session
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		// Resume existing session
		client.sessionID = savedSessionID
		log.Printf("🔄 Resuming session: %s", client.sessionID)
		session, err = client.GetSession()
		if err != nil {
			log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = "" // Force create new
		}
	}

	if savedSessionID == "" {
		// Create new session
		session, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s", client.sessionID)

		// Save session ID for next run
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	targetLow, targetHigh := 21, 26
	if session.GameConfig != nil {
		targetLow = session.GameConfig.TargetLow
		targetHigh = session.GameConfig.TargetHigh
	}
	log.Printf("Profile: %s, target window: %d-%d, hand: %d cards",
		session.ConfigName, targetLow, targetHigh, len(session.GameState.Players.Player.Hand))

	// RESET the game state at the beginning of each run
	log.Printf("🔄 Resetting game state...")
	state, err := client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset game: %v", err)
	}
	log.Printf("Game reset - Deck: %d cards, Moves: %d", len(state.Deck), state.MoveCount)

	strategy := NewGreedyStrategy(targetLow, targetHigh)

	// Keep trying until victory or max attempts
	attemptNum := 0
	for attemptNum < *maxAttempts {
		attemptNum++

		// Reset the game for this attempt
		if attemptNum > 1 {
			state, err = client.Reset()
			if err != nil {
				log.Printf("Failed to reset: %v", err)
				break
			}
		}

		// Reset strategy for new attempt
		strategy.Reset()

		log.Printf("\n=== 🎮 Attempt %d/%d ===", attemptNum, *maxAttempts)

		playCount := 0
		for !state.GameOver && playCount < *maxMoves {
			// Wait for our turn; the opponent plays on its own schedule
			state, err = client.waitForTurn(state)
			if err != nil {
				log.Printf("⚠️  %v", err)
				break
			}
			if state.GameOver {
				break
			}

			if *verbose && playCount%10 == 0 {
				totals := pileTotals(state.Players.Player.Piles)
				log.Printf("Piles: %v, Hand: %d, Deck: %d",
					totals, len(state.Players.Player.Hand), len(state.Deck))
			}

			// Get next play from strategy
			play := strategy.NextPlay(state)
			if play == nil {
				log.Printf("⚠️  No valid plays available")
				break
			}

			resp, err := client.Play(play)
			if err != nil {
				log.Printf("Play request failed: %v", err)
				break
			}

			if !resp.Success {
				if *verbose {
					log.Printf("Play rejected: %s", resp.Message)
				}
				strategy.MarkRejected(play)
				if resp.GameState != nil {
					state = resp.GameState
				}
				continue
			}

			state = resp.GameState
			strategy.ClearRejected()
			playCount++

			// Add delay if specified
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		totals := pileTotals(state.Players.Player.Piles)
		inWindow := 0
		for _, t := range totals {
			if t >= targetLow && t <= targetHigh {
				inWindow++
			}
		}
		log.Printf("Attempt %d: Plays=%d, Piles=%v, InWindow=%d/3",
			attemptNum, playCount, totals, inWindow)

		// Check if we won
		if state.GameOver && state.Winner == "player" {
			log.Printf("\n🎉 VICTORY! Game won in attempt %d with %d plays!", attemptNum, playCount)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}
		if state.GameOver {
			log.Printf("Game over: winner=%s", state.Winner)
		}
	}

	// Failed to win after all attempts
	log.Printf("\n❌ Failed to win after %d attempts", attemptNum)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}

func pileTotals(piles []Pile) []int {
	totals := make([]int, len(piles))
	for i, pile := range piles {
		totals[i] = pileTotal(pile)
	}
	return totals
}
