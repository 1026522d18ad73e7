// Command validate provides a small CLI that validates rule profile JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Hand size bounds
//   - Target range sanity (positive, low <= high)
//   - Opponent think delay bounds (min <= max, within limits)
//   - Required message keys
//   - Playability: the target window must be landable by legal pile builds
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	minHandSize   = 1
	maxHandSize   = 10
	minThinkDelay = 0
	maxThinkDelay = 10000
)

// Config mirrors the JSON schema for a rule profile.
type Config struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	HandSize        int               `json:"hand_size"`
	TargetLow       int               `json:"target_low"`
	TargetHigh      int               `json:"target_high"`
	ThinkDelayMinMS int               `json:"think_delay_min_ms"`
	ThinkDelayMaxMS int               `json:"think_delay_max_ms"`
	Messages        map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single rule profile JSON file.
// It performs structural checks, message presence, and a playability
// analysis of the target window.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Profile name is required")
	}

	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Profile description is required")
	}

	if config.HandSize < minHandSize || config.HandSize > maxHandSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("hand_size must be between %d and %d, got %d", minHandSize, maxHandSize, config.HandSize))
	}

	if config.TargetLow < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("target_low must be positive, got %d", config.TargetLow))
	}

	if config.TargetHigh < config.TargetLow {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("target_high (%d) cannot be below target_low (%d)", config.TargetHigh, config.TargetLow))
	}

	if config.ThinkDelayMinMS < minThinkDelay || config.ThinkDelayMaxMS > maxThinkDelay {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("think delays must be between %d and %d ms, got %d-%d", minThinkDelay, maxThinkDelay, config.ThinkDelayMinMS, config.ThinkDelayMaxMS))
	}

	if config.ThinkDelayMinMS > config.ThinkDelayMaxMS {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("think_delay_min_ms (%d) cannot exceed think_delay_max_ms (%d)", config.ThinkDelayMinMS, config.ThinkDelayMaxMS))
	}

	// Validate messages
	requiredMessages := []string{
		"invalid_move",
		"not_your_turn",
		"card_not_in_hand",
		"pick_target",
		"king_needs_number",
		"king_needs_live_number",
		"opponent_skipped",
		"player_wins",
		"ai_wins",
		"tie_game",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Playability analysis on the target window
	if result.Valid {
		playResult := validatePlayability(config)
		if !playResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, playResult.Errors...)
		} else {
			result.Errors = append(result.Errors, playResult.Errors...)
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Hand size: %d", config.HandSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Target window: %d-%d", config.TargetLow, config.TargetHigh))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Think delay: %d-%d ms", config.ThinkDelayMinMS, config.ThinkDelayMaxMS))
	}

	return result
}

// validatePlayability checks that the target window can actually be hit by
// legal pile builds. Piles are built from ascending or descending runs of
// card values 1..10, so any window whose low end is reachable by such a run
// is playable; a window that no run of distinct ascending values can land in
// would make the profile unwinnable.
func validatePlayability(config Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	// Largest total an ascending run of distinct values 1..10 can reach.
	maxRunTotal := 0
	for v := 1; v <= 10; v++ {
		maxRunTotal += v
	}

	if config.TargetLow > maxRunTotal {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Unwinnable window: target_low %d exceeds the maximum ascending run total %d (Kings aside)", config.TargetLow, maxRunTotal))
		return result
	}

	// A window narrower than the smallest card step is still landable (the
	// smallest step is 1), but flag suspiciously tight windows.
	width := config.TargetHigh - config.TargetLow
	if width == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Playability: window is a single value (%d); games will run long", config.TargetLow))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Playability: window width %d is landable", width))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All rule profiles are valid!")
	} else {
		fmt.Println("❌ Some rule profiles have errors")
		os.Exit(1)
	}
}
