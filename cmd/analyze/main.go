// Command analyze prints quick, human-readable heuristics about persisted
// session snapshots in the project's sessions directory. It summarizes rule
// profile, move counts, pile totals against the target window, and highlights
// sides that have stalled or overshot.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harrypdev/caravan-card-game/game/engine"
)

// AnalysisSession is a light struct for reading session snapshot files.
type AnalysisSession struct {
	ID             string           `json:"id"`
	ConfigName     string           `json:"config_name"`
	CreatedAt      time.Time        `json:"created_at"`
	LastAccessedAt time.Time        `json:"last_accessed_at"`
	GameState      engine.GameState `json:"game_state"`
}

// AnalysisProfile holds the fields of a rule profile that matter here.
type AnalysisProfile struct {
	Name       string `json:"name"`
	HandSize   int    `json:"hand_size"`
	TargetLow  int    `json:"target_low"`
	TargetHigh int    `json:"target_high"`
}

func main() {
	files, err := filepath.Glob(filepath.Join("sessions", "*.json"))
	if err != nil {
		fmt.Printf("Error finding session files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No session snapshots found in sessions/")
		return
	}

	for _, sessionFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(sessionFile))
		analyzeSession(sessionFile)
	}
}

func analyzeSession(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var session AnalysisSession
	if err := json.Unmarshal(data, &session); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	profile := loadProfile(session.ConfigName)

	fmt.Printf("Session: %s\n", session.ID)
	fmt.Printf("Profile: %s (window %d-%d)\n", profile.Name, profile.TargetLow, profile.TargetHigh)
	fmt.Printf("Created: %s\n", session.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Last Accessed: %s\n", session.LastAccessedAt.Format(time.RFC3339))
	fmt.Printf("Moves Played: %d\n", session.GameState.MoveCount)
	fmt.Printf("Deck Remaining: %d\n", len(session.GameState.Deck))
	fmt.Printf("Turn: %s\n", session.GameState.Turn)

	if session.GameState.GameOver {
		fmt.Printf("Game Over: winner=%s\n", session.GameState.Winner)
	}

	analyzeSide("Player", session.GameState.Players.Player, profile)
	analyzeSide("Opponent", session.GameState.Players.AI, profile)
}

func analyzeSide(label string, player engine.Player, profile AnalysisProfile) {
	fmt.Printf("%s: %d cards in hand\n", label, len(player.Hand))

	totals := make([]int, len(player.Piles))
	for i, pile := range player.Piles {
		view := engine.ComputePileView(pile.Cards)
		totals[i] = view.Total

		marker := ""
		if view.Total > profile.TargetHigh {
			marker = " ⚠️  overshot"
		} else if view.Total >= profile.TargetLow {
			marker = " ✓ in window"
		}
		fmt.Printf("  Pile %d: total=%d dir=%s cards=%d%s\n", i, view.Total, view.Direction, len(pile.Cards), marker)
	}

	inWindow := pilesInWindow(totals, profile.TargetLow, profile.TargetHigh)
	if inWindow == len(totals) && len(totals) > 0 {
		fmt.Printf("  ✅ All %s piles are inside the target window\n", label)
	} else {
		fmt.Printf("  %d/%d piles in window\n", inWindow, len(totals))
	}

	overshot := 0
	for _, t := range totals {
		if t > profile.TargetHigh {
			overshot++
		}
	}
	if overshot > 0 {
		fmt.Printf("  ⚠️  WARNING: %d pile(s) overshot the window; a King on a lower card or a Jack is needed\n", overshot)
	}
}

// pilesInWindow counts totals inside [low, high].
func pilesInWindow(totals []int, low, high int) int {
	count := 0
	for _, t := range totals {
		if t >= low && t <= high {
			count++
		}
	}
	return count
}

// loadProfile reads the rule profile referenced by a snapshot. Snapshots store
// the profile's config ID, so the file lives at configs/<id>.json. Falls back
// to the classic window when the file is missing.
func loadProfile(configID string) AnalysisProfile {
	fallback := AnalysisProfile{Name: configID, HandSize: 5, TargetLow: 21, TargetHigh: 26}

	data, err := os.ReadFile(filepath.Join("configs", configID+".json"))
	if err != nil {
		return fallback
	}

	var profile AnalysisProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fallback
	}

	return profile
}
