package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"rummy/internal/domain"
)

type GameConfig struct {
	// WildRanks lists ranks that act as wildcards in addition to the joker,
	// e.g. [2] to make twos wild.
	WildRanks   []int `json:"wild_ranks"`
	AceHighRuns bool  `json:"ace_high_runs"`

	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int    `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      int    `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      int    `json:"bot_max_delay_seconds"`
	BotLevel                string `json:"bot_level"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// Rules converts the configured variant knobs into meld validation rules.
// Without a loaded config it returns the base variant.
func Rules() domain.Rules {
	if cfg == nil {
		return domain.DefaultRules()
	}
	rules := domain.Rules{AceHighRuns: cfg.AceHighRuns}
	for _, r := range cfg.WildRanks {
		if r >= int(domain.Ace) && r <= int(domain.King) {
			rules.WildRanks = append(rules.WildRanks, domain.Rank(r))
		}
	}
	return rules
}

// GetTurnDuration returns the per-turn clock in seconds.
func GetTurnDuration() int {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 30 // Safe default
	}
	return cfg.TurnDurationSeconds
}

// GetBotAutoFillDelay returns how long a solo human lobby waits before bots
// are seated.
func GetBotAutoFillDelay() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 10
	}
	return cfg.BotAutoFillDelaySeconds
}

// GetBotThinkDelay returns the bot action pacing window in seconds.
func GetBotThinkDelay() (min, max int) {
	if cfg == nil || cfg.BotMinDelaySeconds <= 0 || cfg.BotMaxDelaySeconds < cfg.BotMinDelaySeconds {
		return 1, 3
	}
	return cfg.BotMinDelaySeconds, cfg.BotMaxDelaySeconds
}

// GetBotLevel returns the configured bot strategy name.
func GetBotLevel() string {
	if cfg == nil {
		return ""
	}
	return cfg.BotLevel
}
