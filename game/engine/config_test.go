package engine

import (
	"strings"
	"testing"
)

func TestDefaultRulesConfigIsValid(t *testing.T) {
	if err := ValidateRulesConfig(DefaultRulesConfig()); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
}

func TestValidateRulesConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RulesConfig)
		wantErr string
	}{
		{"nil handled separately", nil, "config is nil"},
		{"missing name", func(c *RulesConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *RulesConfig) { c.Description = "" }, "description is required"},
		{"hand too small", func(c *RulesConfig) { c.HandSize = 0 }, "hand_size"},
		{"hand too large", func(c *RulesConfig) { c.HandSize = MaxHandSize + 1 }, "hand_size"},
		{"target low not positive", func(c *RulesConfig) { c.TargetLow = 0 }, "target_low"},
		{"inverted range", func(c *RulesConfig) { c.TargetHigh = c.TargetLow - 1 }, "target_high"},
		{"negative think delay", func(c *RulesConfig) { c.ThinkDelayMinMS = -1 }, "think_delay_min_ms"},
		{"max delay below min", func(c *RulesConfig) { c.ThinkDelayMaxMS = c.ThinkDelayMinMS - 1 }, "think_delay_max_ms"},
		{"missing message", func(c *RulesConfig) { c.Messages.NotYourTurn = "" }, "messages.not_your_turn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *RulesConfig
			if tt.mutate != nil {
				cfg = DefaultRulesConfig()
				tt.mutate(cfg)
			}
			err := ValidateRulesConfig(cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRulesConfig_NonClassicProfiles(t *testing.T) {
	cfg := &RulesConfig{
		Name:            "Quick Draw",
		Description:     "Three-card hands and a snappier opponent.",
		HandSize:        3,
		TargetLow:       15,
		TargetHigh:      20,
		ThinkDelayMinMS: 100,
		ThinkDelayMaxMS: 300,
		Messages:        DefaultRuleMessages(),
	}
	if err := ValidateRulesConfig(cfg); err != nil {
		t.Fatalf("profile rejected: %v", err)
	}
}
