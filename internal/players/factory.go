package players

import (
	"fmt"

	"rummy/internal/app"
	"rummy/internal/domain"
)

// Level selects a bot strategy.
type Level int

const (
	LevelBasic Level = iota
	LevelGreedy
)

// ParseLevel maps a configuration string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "basic", "easy":
		return LevelBasic, nil
	case "greedy", "normal":
		return LevelGreedy, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", s)
	}
}

// New creates a strategy for the given level.
func New(level Level, rules domain.Rules) (app.Player, error) {
	switch level {
	case LevelBasic:
		return Basic{}, nil
	case LevelGreedy:
		return NewGreedy(rules), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
