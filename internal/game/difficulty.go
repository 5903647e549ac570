package game

import (
	"fmt"
	"time"
)

// Difficulty is selected before a session starts and is fixed while it runs.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Profile holds the timing and base-scoring parameters of one difficulty.
type Profile struct {
	RevealDuration time.Duration `json:"reveal_duration_ms"`
	PauseDuration  time.Duration `json:"pause_duration_ms"`
	BaseMultiplier int           `json:"base_multiplier"`
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {RevealDuration: 400 * time.Millisecond, PauseDuration: 400 * time.Millisecond, BaseMultiplier: 1},
	DifficultyMedium: {RevealDuration: 300 * time.Millisecond, PauseDuration: 300 * time.Millisecond, BaseMultiplier: 2},
	DifficultyHard:   {RevealDuration: 200 * time.Millisecond, PauseDuration: 200 * time.Millisecond, BaseMultiplier: 3},
}

// ProfileFor returns the fixed profile of a difficulty level.
// Unknown levels fall back to easy.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyEasy]
}

// Difficulties lists all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty validates a client-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}
