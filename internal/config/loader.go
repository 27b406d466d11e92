package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLines loads the configuration of a Lines variant.
// Search order: customPath -> ~/.arcade/configs/<gameID>.yaml ->
// ./configs/<gameID>.yaml -> embedded default -> DefaultFor(gameID).
//
// Files are layered over the hardcoded defaults, so they only need the keys
// they change. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadLines(gameID, customPath string) (LinesConfig, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFor(gameID), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseLines(gameID, data)
		if err != nil {
			return DefaultFor(gameID), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLines(gameID, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parseLines(gameID, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(gameID); data != nil {
		if cfg, err := parseLines(gameID, data); err == nil {
			return cfg, nil
		}
	}
	return DefaultFor(gameID), nil
}

// parseLines decodes data over the defaults of gameID and validates the result.
func parseLines(gameID string, data []byte) (LinesConfig, error) {
	cfg := DefaultFor(gameID)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyLinesPreset modifies the config based on a difficulty preset.
func ApplyLinesPreset(cfg *LinesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the palette and spawn rate, keeping the board size
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Colors = max(cfg.Rules.Colors-2, 3)
		cfg.Rules.BallsPerTurn = max(cfg.Rules.BallsPerTurn-1, 1)
	case DifficultyHard:
		cfg.Rules.Colors = min(cfg.Rules.Colors+1, maxColors)
		cfg.Rules.BallsPerTurn++
	}
}
