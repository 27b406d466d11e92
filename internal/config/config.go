// Package config provides YAML-based game configuration loading and
// difficulty management for the Lines variants.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// maxColors mirrors the size of the ball palette.
const maxColors = 9

// LinesConfig contains all configuration for one Lines variant.
type LinesConfig struct {
	Board      LinesBoard       `yaml:"board"`
	Rules      LinesRules       `yaml:"rules"`
	Animation  LinesAnimation   `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LinesBoard defines the board size in cells.
type LinesBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LinesRules defines the rule parameters handed to the engine.
type LinesRules struct {
	MinRun       int `yaml:"min_run"`        // Balls in a row that clear the row
	BallsPerTurn int `yaml:"balls_per_turn"` // Balls spawned after a move that cleared nothing
	InitialBalls int `yaml:"initial_balls"`  // Balls seeded on an empty board
	Colors       int `yaml:"colors"`         // Palette size
}

// LinesAnimation defines how many ticks each animated phase lasts.
type LinesAnimation struct {
	MoveTicks  int `yaml:"move_ticks"`
	ClearTicks int `yaml:"clear_ticks"`
	SpawnTicks int `yaml:"spawn_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "turns", or "none"
	MaxAt int    `yaml:"max_at"` // Score/turns at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraColors int `yaml:"extra_colors"` // Colours added at max difficulty
	ExtraBalls  int `yaml:"extra_balls"`  // Balls per turn added at max difficulty
}

// Validate rejects configurations the engine cannot play.
func (c LinesConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	b, r, a := c.Board, c.Rules, c.Animation
	switch {
	case b.Width < 1 || b.Height < 1:
		return invalid("board %dx%d", b.Width, b.Height)
	case r.MinRun < 2:
		return invalid("min_run %d is below 2", r.MinRun)
	case r.MinRun > max(b.Width, b.Height):
		return invalid("min_run %d does not fit a %dx%d board", r.MinRun, b.Width, b.Height)
	case r.Colors < 1 || r.Colors > maxColors:
		return invalid("colors %d outside [1, %d]", r.Colors, maxColors)
	case r.BallsPerTurn < 1:
		return invalid("balls_per_turn %d is below 1", r.BallsPerTurn)
	case r.InitialBalls < 0 || r.InitialBalls >= b.Width*b.Height:
		return invalid("initial_balls %d does not leave an empty cell", r.InitialBalls)
	case a.MoveTicks < 0 || a.ClearTicks < 0 || a.SpawnTicks < 0:
		return invalid("negative animation ticks")
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "turns":
	default:
		return invalid("unknown progression type %q", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return invalid("initial_level %.2f outside [0, 1]", c.Difficulty.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
