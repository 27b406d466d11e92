package config

import "math"

// DifficultyManager derives the palette size and spawn count from the
// progress of a game.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// score (balls cleared) and completed turns.
func (d *DifficultyManager) Level(score, turns int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "turns":
		progress = float64(turns) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Colors returns the palette size to draw new balls from, never above the
// palette limit.
func (d *DifficultyManager) Colors(base, score, turns int) int {
	level := d.Level(score, turns)
	extra := int(level * float64(d.cfg.Scaling.ExtraColors))
	return min(base+extra, maxColors)
}

// BallsPerTurn returns how many balls to spawn after a non-clearing move.
func (d *DifficultyManager) BallsPerTurn(base, score, turns int) int {
	level := d.Level(score, turns)
	return base + int(level*float64(d.cfg.Scaling.ExtraBalls))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
