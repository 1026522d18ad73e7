package engine

import "fmt"

// RuleMessages are the user-facing strings the state machine reports through
// GameState.Message. Validation reasons from Validate are fixed rule text and
// not configurable.
type RuleMessages struct {
	InvalidMove         string `json:"invalid_move"`
	NotYourTurn         string `json:"not_your_turn"`
	CardNotInHand       string `json:"card_not_in_hand"`
	PickTarget          string `json:"pick_target"`
	KingNeedsNumber     string `json:"king_needs_number"`
	KingNeedsLiveNumber string `json:"king_needs_live_number"`
	OpponentSkipped     string `json:"opponent_skipped"`
	PlayerWins          string `json:"player_wins"`
	AIWins              string `json:"ai_wins"`
	TieGame             string `json:"tie_game"`
}

// RulesConfig is a rule profile loaded from JSON. The classic profile matches
// the original game: 5-card hands, piles scored into 21..26, and an AI think
// delay of 600-1200ms.
type RulesConfig struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	HandSize        int          `json:"hand_size"`
	TargetLow       int          `json:"target_low"`
	TargetHigh      int          `json:"target_high"`
	ThinkDelayMinMS int          `json:"think_delay_min_ms"`
	ThinkDelayMaxMS int          `json:"think_delay_max_ms"`
	Messages        RuleMessages `json:"messages"`
}

// DefaultRulesConfig returns the classic caravan profile.
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{
		Name:            "Classic Caravan",
		Description:     "Three piles each, race every pile into 21-26.",
		HandSize:        5,
		TargetLow:       21,
		TargetHigh:      26,
		ThinkDelayMinMS: 600,
		ThinkDelayMaxMS: 1200,
		Messages:        DefaultRuleMessages(),
	}
}

// DefaultRuleMessages returns the stock message set.
func DefaultRuleMessages() RuleMessages {
	return RuleMessages{
		InvalidMove:         "Invalid move.",
		NotYourTurn:         "It is not your turn.",
		CardNotInHand:       "That card is not in your hand.",
		PickTarget:          "Choose a specific card to place J/Q/K onto.",
		KingNeedsNumber:     "King must be placed on a number or Ace.",
		KingNeedsLiveNumber: "King must be placed on a number or Ace that is not removed.",
		OpponentSkipped:     "Opponent skipped (no valid moves).",
		PlayerWins:          "You win! All your piles are in range.",
		AIWins:              "Opponent wins.",
		TieGame:             "Tie game.",
	}
}

// ValidateRulesConfig checks a rule profile for correctness and playability.
func ValidateRulesConfig(cfg *RulesConfig) error {
	if cfg == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if cfg.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if cfg.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if cfg.HandSize < MinHandSize || cfg.HandSize > MaxHandSize {
		return fmt.Errorf("config validation: hand_size must be between %d and %d, got %d",
			MinHandSize, MaxHandSize, cfg.HandSize)
	}
	if 2*cfg.HandSize > DeckSize {
		return fmt.Errorf("config validation: two hands of %d exceed a %d-card deck",
			cfg.HandSize, DeckSize)
	}
	if cfg.TargetLow <= 0 {
		return fmt.Errorf("config validation: target_low must be positive, got %d", cfg.TargetLow)
	}
	if cfg.TargetHigh < cfg.TargetLow {
		return fmt.Errorf("config validation: target_high (%d) cannot be below target_low (%d)",
			cfg.TargetHigh, cfg.TargetLow)
	}
	if cfg.ThinkDelayMinMS < MinThinkDelay || cfg.ThinkDelayMinMS > MaxThinkDelay {
		return fmt.Errorf("config validation: think_delay_min_ms must be between %d and %d, got %d",
			MinThinkDelay, MaxThinkDelay, cfg.ThinkDelayMinMS)
	}
	if cfg.ThinkDelayMaxMS < cfg.ThinkDelayMinMS || cfg.ThinkDelayMaxMS > MaxThinkDelay {
		return fmt.Errorf("config validation: think_delay_max_ms must be between think_delay_min_ms (%d) and %d, got %d",
			cfg.ThinkDelayMinMS, MaxThinkDelay, cfg.ThinkDelayMaxMS)
	}

	required := map[string]string{
		"invalid_move":           cfg.Messages.InvalidMove,
		"not_your_turn":          cfg.Messages.NotYourTurn,
		"card_not_in_hand":       cfg.Messages.CardNotInHand,
		"pick_target":            cfg.Messages.PickTarget,
		"king_needs_number":      cfg.Messages.KingNeedsNumber,
		"king_needs_live_number": cfg.Messages.KingNeedsLiveNumber,
		"opponent_skipped":       cfg.Messages.OpponentSkipped,
		"player_wins":            cfg.Messages.PlayerWins,
		"ai_wins":                cfg.Messages.AIWins,
		"tie_game":               cfg.Messages.TieGame,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("config validation: messages.%s is required", key)
		}
	}

	return nil
}
