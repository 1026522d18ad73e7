// Package config provides rule profile management for the caravan card game.
//
// The config package handles:
//   - Loading rule profiles from JSON files
//   - Profile validation and verification
//   - Default profile management
//   - Profile discovery and listing
//
// Profile Format:
//
// Rule profiles are stored as JSON files in the configs directory.
// Each profile defines:
//   - Hand size dealt to each side
//   - The scoring window every pile must land in
//   - The computer opponent's think delay range
//   - Game messages for rejected moves and outcomes
//
// Available Profiles:
//
//   - classic: the original game, 5-card hands scored into 21-26
//   - quickdraw: 3-card hands with a snappier opponent
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific profile
//	rules, err := manager.LoadConfig("quickdraw")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default profile
//	defaultRules := manager.GetDefault()
//
//	// List available profiles
//	profiles, err := manager.ListConfigs()
//
// Validation:
//
// All profiles are validated for:
//   - Hand sizes the deck can actually deal twice
//   - A positive, well-ordered scoring window
//   - Think delay bounds
//   - Required message templates
package config
