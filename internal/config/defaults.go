package config

import (
	_ "embed"
)

// Game IDs with their own defaults.
const (
	GameLines     = "lines"
	GameLinesMini = "lines_mini"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

//go:embed defaults/lines_mini.yaml
var defaultLinesMiniYAML []byte

// DefaultLinesConfig returns the classic 9x9, seven-colour configuration.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Board: LinesBoard{Width: 9, Height: 9},
		Rules: LinesRules{
			MinRun:       5,
			BallsPerTurn: 3,
			InitialBalls: 5,
			Colors:       7,
		},
		Animation: LinesAnimation{
			MoveTicks:  8,
			ClearTicks: 18,
			SpawnTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				ExtraColors: 2,
				ExtraBalls:  0,
			},
		},
	}
}

// DefaultLinesMiniConfig returns the 7x7, five-colour configuration.
func DefaultLinesMiniConfig() LinesConfig {
	return LinesConfig{
		Board: LinesBoard{Width: 7, Height: 7},
		Rules: LinesRules{
			MinRun:       4,
			BallsPerTurn: 3,
			InitialBalls: 4,
			Colors:       5,
		},
		Animation: LinesAnimation{
			MoveTicks:  8,
			ClearTicks: 18,
			SpawnTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "turns",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				ExtraColors: 1,
				ExtraBalls:  0,
			},
		},
	}
}

// DefaultFor returns the hardcoded defaults of a game ID, falling back to
// the classic configuration.
func DefaultFor(gameID string) LinesConfig {
	if gameID == GameLinesMini {
		return DefaultLinesMiniConfig()
	}
	return DefaultLinesConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameLines:
		return defaultLinesYAML
	case GameLinesMini:
		return defaultLinesMiniYAML
	default:
		return nil
	}
}
