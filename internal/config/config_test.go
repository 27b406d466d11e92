package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, id := range []string{GameLines, GameLinesMini} {
		t.Run(id, func(t *testing.T) {
			cfg, err := parseLines(id, GetDefaultYAML(id))
			require.NoError(t, err)
			assert.Equal(t, DefaultFor(id), cfg)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadLinesEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadLines(GameLinesMini, "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Width)
	assert.Equal(t, 4, cfg.Rules.MinRun)
}

func TestLoadLinesUnknownGameFallsBack(t *testing.T) {
	isolate(t)

	cfg, err := LoadLines("lines_unknown", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLinesConfig(), cfg)
}

func TestLoadLinesCustomPathOverridesDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "rules:\n  colors: 4\nanimation:\n  move_ticks: 0\n")

	cfg, err := LoadLines(GameLines, path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rules.Colors)
	assert.Equal(t, 0, cfg.Animation.MoveTicks)
	assert.Equal(t, 9, cfg.Board.Width, "unset keys keep their defaults")
	assert.Equal(t, 5, cfg.Rules.MinRun)
}

func TestLoadLinesCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	_, err := LoadLines(GameLines, filepath.Join(work, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "rules: [not a map")
	_, err = LoadLines(GameLines, broken)
	assert.Error(t, err)

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "rules:\n  min_run: 1\n")
	cfg, err := LoadLines(GameLines, invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DefaultLinesConfig(), cfg, "failed loads return the defaults")
}

func TestLoadLinesSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "lines.yaml"), "rules:\n  colors: 6\n")
	cfg, err := LoadLines(GameLines, "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rules.Colors, "local configs directory")

	writeFile(t, filepath.Join(home, ".arcade", "configs", "lines.yaml"), "rules:\n  colors: 8\n")
	cfg, err = LoadLines(GameLines, "")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Rules.Colors, "user directory wins over local")
}

func TestLoadLinesSkipsInvalidUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "lines.yaml"), "board:\n  width: 0\n")
	writeFile(t, filepath.Join(work, "configs", "lines.yaml"), "rules:\n  colors: 6\n")

	cfg, err := LoadLines(GameLines, "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rules.Colors)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LinesConfig)
		ok     bool
	}{
		{"defaults", func(*LinesConfig) {}, true},
		{"zero width", func(c *LinesConfig) { c.Board.Width = 0 }, false},
		{"min run of one", func(c *LinesConfig) { c.Rules.MinRun = 1 }, false},
		{"run longer than board", func(c *LinesConfig) { c.Rules.MinRun = 10 }, false},
		{"run fits the long side", func(c *LinesConfig) { c.Board.Width = 3; c.Rules.MinRun = 9 }, true},
		{"no colours", func(c *LinesConfig) { c.Rules.Colors = 0 }, false},
		{"too many colours", func(c *LinesConfig) { c.Rules.Colors = 10 }, false},
		{"no spawns", func(c *LinesConfig) { c.Rules.BallsPerTurn = 0 }, false},
		{"board seeded full", func(c *LinesConfig) { c.Rules.InitialBalls = 81 }, false},
		{"nothing seeded", func(c *LinesConfig) { c.Rules.InitialBalls = 0 }, true},
		{"negative ticks", func(c *LinesConfig) { c.Animation.ClearTicks = -1 }, false},
		{"unknown progression", func(c *LinesConfig) { c.Difficulty.Progression.Type = "time" }, false},
		{"level above one", func(c *LinesConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLinesConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err, s)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyLinesPreset(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		cfg := DefaultLinesConfig()
		ApplyLinesPreset(&cfg, "")
		assert.Equal(t, DefaultLinesConfig(), cfg)
	})

	t.Run("easy", func(t *testing.T) {
		cfg := DefaultLinesConfig()
		ApplyLinesPreset(&cfg, DifficultyEasy)
		assert.Equal(t, 5, cfg.Rules.Colors)
		assert.Equal(t, 2, cfg.Rules.BallsPerTurn)
		assert.True(t, cfg.Difficulty.Enabled)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("hard", func(t *testing.T) {
		cfg := DefaultLinesConfig()
		ApplyLinesPreset(&cfg, DifficultyHard)
		assert.Equal(t, 8, cfg.Rules.Colors)
		assert.Equal(t, 4, cfg.Rules.BallsPerTurn)
		assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("hard keeps palette limit", func(t *testing.T) {
		cfg := DefaultLinesConfig()
		cfg.Rules.Colors = 9
		ApplyLinesPreset(&cfg, DifficultyHard)
		assert.Equal(t, 9, cfg.Rules.Colors)
	})

	t.Run("fixed", func(t *testing.T) {
		cfg := DefaultLinesConfig()
		ApplyLinesPreset(&cfg, DifficultyFixed)
		assert.False(t, cfg.Difficulty.Enabled)
		assert.Equal(t, 7, cfg.Rules.Colors)
	})
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultLinesConfig().Difficulty
	d := NewDifficultyManager(cfg)

	assert.True(t, d.IsEnabled())
	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(150, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(9000, 0), 1e-9, "progress is clamped")

	assert.Equal(t, 7, d.Colors(7, 0, 0))
	assert.Equal(t, 8, d.Colors(7, 150, 0))
	assert.Equal(t, 9, d.Colors(7, 300, 0))
	assert.Equal(t, 9, d.Colors(8, 300, 0), "palette limit")
	assert.Equal(t, 3, d.BallsPerTurn(3, 300, 0))

	cfg.InitialLevel = 0.5
	d = NewDifficultyManager(cfg)
	assert.InDelta(t, 0.75, d.Level(150, 0), 1e-9)
}

func TestDifficultyManagerTurns(t *testing.T) {
	cfg := DefaultLinesMiniConfig().Difficulty
	cfg.Scaling.ExtraBalls = 2
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.0, d.Level(500, 0), 1e-9, "score is ignored")
	assert.InDelta(t, 0.5, d.Level(0, 60), 1e-9)
	assert.Equal(t, 4, d.BallsPerTurn(3, 0, 60))
	assert.Equal(t, 5, d.BallsPerTurn(3, 0, 120))
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultLinesConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.3, d.Level(10000, 10000), 1e-9)
	assert.Equal(t, 7, d.Colors(7, 10000, 0))
}
