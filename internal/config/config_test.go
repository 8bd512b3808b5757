package config

import (
	"os"
	"path/filepath"
	"testing"

	"rummy/internal/domain"
)

func TestDefaultsWithoutConfig(t *testing.T) {
	if cfg != nil {
		t.Skip("config already loaded in this process")
	}
	if rules := Rules(); rules.AceHighRuns || len(rules.WildRanks) != 0 {
		t.Errorf("expected base variant rules, got %+v", rules)
	}
	if d := GetTurnDuration(); d != 30 {
		t.Errorf("expected default turn duration 30, got %d", d)
	}
	min, max := GetBotThinkDelay()
	if min != 1 || max != 3 {
		t.Errorf("expected default think delay 1..3, got %d..%d", min, max)
	}
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	body := `{
		"wild_ranks": [2, 99],
		"ace_high_runs": true,
		"turn_duration_seconds": 45,
		"bot_auto_fill_delay_seconds": 5,
		"bot_min_delay_seconds": 2,
		"bot_max_delay_seconds": 4,
		"bot_level": "greedy"
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := LoadGameConfig(path); err != nil {
		t.Fatalf("load config: %v", err)
	}

	rules := Rules()
	if !rules.AceHighRuns {
		t.Error("expected ace-high runs enabled")
	}
	// Rank 99 is out of range and must be dropped.
	if len(rules.WildRanks) != 1 || rules.WildRanks[0] != domain.Two {
		t.Errorf("expected wild ranks [Two], got %v", rules.WildRanks)
	}
	if d := GetTurnDuration(); d != 45 {
		t.Errorf("expected turn duration 45, got %d", d)
	}
	if d := GetBotAutoFillDelay(); d != 5 {
		t.Errorf("expected auto-fill delay 5, got %d", d)
	}
	if min, max := GetBotThinkDelay(); min != 2 || max != 4 {
		t.Errorf("expected think delay 2..4, got %d..%d", min, max)
	}
	if GetBotLevel() != "greedy" {
		t.Errorf("expected bot level greedy, got %q", GetBotLevel())
	}
}
